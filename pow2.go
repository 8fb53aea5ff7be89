package foundation

import (
	"unsafe"

	"github.com/seedlight/go-render-foundation/internal/contract"
)

// NextPow2 returns the smallest power of two greater than or equal to x.
// When x is already a power of two, x itself is returned.
//
// Precondition: x > 0.
//
// The implementation smears the highest set bit of x-1 into all lower
// positions, then increments. The extra smear step needed for 64-bit
// operands is selected by the operand's size, which resolves per generic
// instantiation rather than per call.
func NextPow2[T Integer](x T) T {
	contract.Assert(x > 0, "NextPow2: x > 0")
	x--
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	if unsafe.Sizeof(x) == 8 {
		x |= x >> 32
	}
	return x + 1
}

// IsPow2 reports whether x is a power of two.
//
// IsPow2(0) returns true: the bit trick 0&(0-1) == 0 holds and callers have
// come to rely on zero passing the test (a zero-sized table is "aligned").
// Do not add a zero guard here without auditing the sizing code.
func IsPow2[T Integer](x T) bool {
	return x&(x-1) == 0
}

// Log2 returns the integer base-2 logarithm of x, i.e. the position of the
// highest set bit.
//
// Precondition: x > 0.
func Log2[T Integer](x T) T {
	contract.Assert(x > 0, "Log2: x > 0")
	var n T
	for x >>= 1; x != 0; x >>= 1 {
		n++
	}
	return n
}

// Factorial returns x!. Factorial(x) is 1 for x <= 1.
//
// Precondition: x >= 0.
func Factorial[T Integer](x T) T {
	contract.Assert(x >= 0, "Factorial: x >= 0")
	fac := T(1)
	for ; x > 1; x-- {
		fac *= x
	}
	return fac
}
