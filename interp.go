package foundation

import (
	"math"

	"github.com/seedlight/go-render-foundation/internal/contract"
)

// Clamp returns x limited to [min, max].
//
// Precondition: min <= max.
func Clamp[T Number](x, min, max T) T {
	contract.Assert(min <= max, "Clamp: min <= max")
	switch {
	case x <= min:
		return min
	case x >= max:
		return max
	default:
		return x
	}
}

// Saturate clamps x to the unit interval [0, 1].
func Saturate[F Float](x F) F {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	default:
		return x
	}
}

// Wrap maps x into [0, 1). Negative inputs wrap around from the top:
// Wrap(-0.25) is 0.75.
func Wrap[F Float](x F) F {
	y := F(math.Mod(float64(x), 1.0))
	if y < 0 {
		y++
	}
	return y
}

// NormalizeAngle maps an angle in radians to its canonical representative
// in [0, 2π).
func NormalizeAngle[F Float](angle F) F {
	a := F(math.Mod(float64(angle), TwoPi))
	if a < 0 {
		a += F(TwoPi)
	}
	return a
}

// Truncate converts x to an integer type by truncation toward zero.
// The result is unspecified when x does not fit in I.
func Truncate[I Integer, F Float](x F) I {
	return I(x)
}

// Round rounds x to the nearest integer with the round-half-away-from-zero
// tie breaking rule: Round(2.5) is 3 and Round(-2.5) is -3. This is not
// banker's rounding; sampling code depends on ties breaking symmetrically
// about zero.
func Round[I Integer, F Float](x F) I {
	if x < 0 {
		return Truncate[I](x - 0.5)
	}
	return Truncate[I](x + 0.5)
}

// Mod computes a % n normalized to [0, n), unlike the built-in remainder
// operator which follows the sign of a: Mod(-1, 3) is 2.
func Mod[T Integer](a, n T) T {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// FMod computes the floating-point remainder of a/n normalized to [0, n):
// FMod(-1.0, 3.0) is 2.0.
func FMod[F Float](a, n F) F {
	m := F(math.Mod(float64(a), float64(n)))
	if m < 0 {
		m += n
	}
	return m
}

// Linearstep returns 0 for x <= a, 1 for x >= b, and a linear ramp from 0
// to 1 in between.
//
// Precondition: a < b.
func Linearstep[F Float](a, b, x F) F {
	contract.Assert(a < b, "Linearstep: a < b")
	switch {
	case x <= a:
		return 0
	case x >= b:
		return 1
	default:
		return (x - a) / (b - a)
	}
}

// Smoothstep returns 0 for x <= a, 1 for x >= b, and a cubic Hermite ramp
// 3t²-2t³ in between. The first derivative is zero at both endpoints.
//
// Precondition: a < b.
func Smoothstep[F Float](a, b, x F) F {
	contract.Assert(a < b, "Smoothstep: a < b")
	if x <= a {
		return 0
	}
	if x >= b {
		return 1
	}
	y := (x - a) / (b - a)
	return y * y * (3 - y - y)
}

// Mix returns a for x <= 0, b for x >= 1, and the linear blend Lerp(a, b, x)
// in between.
func Mix[F Float](a, b, x F) F {
	switch {
	case x <= 0:
		return a
	case x >= 1:
		return b
	default:
		return Lerp(a, b, x)
	}
}

// Lerp returns the linear interpolation (1-x)*a + x*b. x is not clamped;
// values outside [0, 1] extrapolate.
func Lerp[F Float](a, b, x F) F {
	return (1-x)*a + x*b
}

// Fit remaps x from the range [minX, maxX] to the range [minY, maxY].
// Outside [minX, maxX] the mapping extrapolates linearly.
//
// Preconditions: minX != maxX, minY != maxY.
func Fit[F Float](x, minX, maxX, minY, maxY F) F {
	contract.Assert(minX != maxX, "Fit: minX != maxX")
	contract.Assert(minY != maxY, "Fit: minY != maxY")
	k := (x - minX) / (maxX - minX)
	return minY*(1-k) + maxY*k
}
