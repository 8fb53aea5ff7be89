package foundation

// Circle constants at double precision. The float32 flavors of the angle
// helpers derive their values from these by explicit narrowing, so both
// precisions agree on the canonical source values.
const (
	Pi        = 3.1415926535897932
	TwoPi     = 6.2831853071795865
	HalfPi    = 1.5707963267948966
	RcpPi     = 0.3183098861837907
	RcpTwoPi  = 0.1591549430918953
	RcpHalfPi = 0.6366197723675813
)

// Default tolerances for the approximate float comparisons.
const (
	defaultEps32 float32 = 1e-6
	defaultEps64 float64 = 1e-14
)

// Per-type representable-range limits used by the overflow and underflow
// guards in Feq. The small limits are the smallest positive normal values,
// not the subnormal minimums.
const (
	maxFloat32       float32 = 0x1.fffffep+127
	minNormalFloat32 float32 = 0x1p-126

	maxFloat64       float64 = 0x1.fffffffffffffp+1023
	minNormalFloat64 float64 = 0x1p-1022
)
