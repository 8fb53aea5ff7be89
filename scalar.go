package foundation

// Type constraints for the scalar helpers. Declared here rather than pulled
// from x/exp so the package stays dependency-free for its consumers.

// Float is the constraint for supported floating-point types.
type Float interface {
	~float32 | ~float64
}

// Signed is the constraint for signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the constraint for unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the constraint for all integer types.
type Integer interface {
	Signed | Unsigned
}

// Number is the constraint for all supported scalar types.
type Number interface {
	Integer | Float
}

// DegToRad converts an angle from degrees to radians.
func DegToRad[F Float](angle F) F {
	return angle * F(Pi/180.0)
}

// RadToDeg converts an angle from radians to degrees.
func RadToDeg[F Float](angle F) F {
	return angle * F(180.0/Pi)
}

// Abs returns the absolute value of x. Unlike math.Abs it works for any
// scalar type without a round trip through float64.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Square returns x*x.
func Square[T Number](x T) T {
	return x * x
}

// PowInt returns x raised to the non-negative integer power p.
// PowInt(x, 0) is 1 for any x; for negative x the sign of the result
// follows the parity of p.
//
// The loop is O(p). Exponents in the renderer are small (Phong-style lobes,
// table sizing), so exponentiation by squaring has not been worth the extra
// branches.
func PowInt[T Number](x T, p uint) T {
	y := T(1)
	for ; p > 0; p-- {
		y *= x
	}
	return y
}
