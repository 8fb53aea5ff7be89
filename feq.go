package foundation

// Robust approximate-equality tests.
//
// The comparison is relative: two values are equal when their ratio lies
// strictly inside (1-eps, 1+eps). An absolute comparison with a fixed eps is
// meaningless for a renderer that juggles radiance values spanning dozens of
// orders of magnitude; a relative one stays honest at any scale.
//
// TODO: add FeqUlp/FzUlp with the tolerance expressed in ulps for the
// sampler's stratification checks (integer comparison on the bit patterns).

// DefaultEps returns the default comparison tolerance for F:
// 1e-6 for float32, 1e-14 for float64.
func DefaultEps[F Float]() F {
	var eps F
	switch p := any(&eps).(type) {
	case *float32:
		*p = defaultEps32
	case *float64:
		*p = defaultEps64
	}
	return eps
}

// maxValue returns the largest finite value of F.
func maxValue[F Float]() F {
	var v F
	switch p := any(&v).(type) {
	case *float32:
		*p = maxFloat32
	case *float64:
		*p = maxFloat64
	}
	return v
}

// minNormal returns the smallest positive normal value of F.
func minNormal[F Float]() F {
	var v F
	switch p := any(&v).(type) {
	case *float32:
		*p = minNormalFloat32
	case *float64:
		*p = minNormalFloat64
	}
	return v
}

// Feq reports whether lhs and rhs are approximately equal under the default
// tolerance for F.
func Feq[F Float](lhs, rhs F) bool {
	return FeqEps(lhs, rhs, DefaultEps[F]())
}

// FeqEps reports whether lhs and rhs are approximately equal under the given
// relative tolerance.
//
// When either operand is exactly zero the test degrades to an absolute zero
// test of the other operand against eps, since a ratio against zero carries
// no information. Magnitude ratios that would overflow or underflow the
// division are reported as not equal; the test never faults, whatever the
// operands.
func FeqEps[F Float](lhs, rhs, eps F) bool {
	// Either operand exactly +0.0 or -0.0.
	if lhs == 0 {
		return Abs(rhs) < eps
	}
	if rhs == 0 {
		return Abs(lhs) < eps
	}

	absLhs := Abs(lhs)
	absRhs := Abs(rhs)

	// No equality if lhs/rhs would overflow.
	if absRhs < 1 && absLhs > absRhs*maxValue[F]() {
		return false
	}

	// No equality if lhs/rhs would underflow.
	if absRhs > 1 && absLhs < absRhs*minNormal[F]() {
		return false
	}

	ratio := lhs / rhs
	return ratio > 1-eps && ratio < 1+eps
}

// Fz reports whether x is approximately zero under the default tolerance
// for F.
func Fz[F Float](x F) bool {
	return FzEps(x, DefaultEps[F]())
}

// FzEps reports whether |x| < eps.
func FzEps[F Float](x, eps F) bool {
	return Abs(x) < eps
}

// FeqInt reports whether lhs and rhs are exactly equal. Integers carry no
// rounding error, so no tolerance applies.
func FeqInt[T Integer](lhs, rhs T) bool {
	return lhs == rhs
}

// FzInt reports whether x is exactly zero.
func FzInt[T Integer](x T) bool {
	return x == 0
}
