// Package simdops provides SIMD-accelerated slice kernels for float32 and
// float64, so table construction and bulk shading helpers share one generic
// codebase.
//
// With Profile-Guided Optimization (Go 1.22+), the function pointer calls
// can be devirtualized and inlined in hot paths.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated kernels for type F. Function pointers allow
// type-safe generic code while delegating to optimized type-specific
// implementations.
type Ops[F Float] struct {
	// Sum returns the sum of all elements.
	Sum func(a []F) F

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s.
	Scale func(dst, a []F, s F)

	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []F) F
}

// Pre-instantiated kernel sets for each float type.
var (
	ops32 = Ops[float32]{
		Sum:              f32.Sum,
		Scale:            f32.Scale,
		DotProductUnsafe: f32.DotProductUnsafe,
	}
	ops64 = Ops[float64]{
		Sum:              f64.Sum,
		Scale:            f64.Scale,
		DotProductUnsafe: f64.DotProductUnsafe,
	}
)

// For returns the Ops instance for type F. The type switch happens at
// instantiation time, not in hot paths.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Float64Ops returns the float64 kernels. Convenience for non-generic code.
func Float64Ops() *Ops[float64] {
	return &ops64
}
