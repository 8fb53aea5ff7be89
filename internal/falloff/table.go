// Package falloff provides precomputed smooth ramp tables for angular light
// falloff.
//
// Cone falloff is evaluated once per light sample, so spot lights bake their
// ramp into a table at creation time and answer lookups with a clamped
// linear interpolation instead of re-deriving the cubic each time.
package falloff

import (
	foundation "github.com/seedlight/go-render-foundation"
	"github.com/seedlight/go-render-foundation/internal/simdops"
)

// minResolution keeps degenerate requests from producing tables too small
// to interpolate.
const minResolution = 16

// Table is a precomputed ramp sampled uniformly over the unit interval.
// Lookups outside [0, 1] clamp to the endpoint values.
type Table struct {
	values []float64
}

// New builds a table sampling fn at uniformly spaced points over [0, 1].
// The table length is rounded up to the next power of two so downstream
// sizing code can assume aligned lengths.
func New(resolution int, fn func(t float64) float64) *Table {
	if resolution < minResolution {
		resolution = minResolution
	}
	n := foundation.NextPow2(resolution)

	values := make([]float64, n)
	for i := range values {
		values[i] = fn(float64(i) / float64(n-1))
	}
	return &Table{values: values}
}

// NewSmooth builds a cubic Hermite ramp from 0 to 1 with zero endpoint
// derivatives, the classic spot light cone falloff.
func NewSmooth(resolution int) *Table {
	return New(resolution, func(t float64) float64 {
		return foundation.Smoothstep(0, 1, t)
	})
}

// NewLinear builds a straight ramp from 0 to 1.
func NewLinear(resolution int) *Table {
	return New(resolution, func(t float64) float64 {
		return foundation.Linearstep(0, 1, t)
	})
}

// Len returns the number of table entries. Always a power of two.
func (t *Table) Len() int {
	return len(t.values)
}

// Lookup returns the ramp value at x, with x clamped to [0, 1] and the
// result linearly interpolated between the two surrounding entries.
func (t *Table) Lookup(x float64) float64 {
	pos := foundation.Saturate(x) * float64(len(t.values)-1)
	i := foundation.Truncate[int](pos)
	if i >= len(t.values)-1 {
		return t.values[len(t.values)-1]
	}
	return foundation.Lerp(t.values[i], t.values[i+1], pos-float64(i))
}

// Scale multiplies every entry by gain, baking a constant factor into the
// table.
func (t *Table) Scale(gain float64) {
	simdops.Float64Ops().Scale(t.values, t.values, gain)
}

// Mean returns the average table value, the ramp's integral over [0, 1].
// Light sampling uses it to weight emitter selection.
func (t *Table) Mean() float64 {
	return simdops.Float64Ops().Sum(t.values) / float64(len(t.values))
}
