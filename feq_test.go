package foundation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

// TestDefaultEps tests the per-type default tolerances.
func TestDefaultEps(t *testing.T) {
	assert.Equal(t, float32(1e-6), DefaultEps[float32]())
	assert.Equal(t, 1e-14, DefaultEps[float64]())
}

// TestFeq tests the approximate-equality predicate at default tolerance.
func TestFeq(t *testing.T) {
	tests := []struct {
		name     string
		lhs, rhs float64
		expected bool
	}{
		{"Identical", 1.0, 1.0, true},
		{"Tiny perturbation", 1.0, 1.0 + 1e-15, true},
		{"Ten percent apart", 1.0, 1.1, false},
		{"Zero against tiny", 0.0, 1e-20, true},
		{"Tiny against zero", 1e-20, 0.0, true},
		{"Zero against small but real", 0.0, 1e-10, false},
		{"Both zero", 0.0, 0.0, true},
		{"Opposite signs", 1.0, -1.0, false},
		{"Negative pair", -2.0, -2.0 - 1e-15, true},
		{"Huge equal", 1e300, 1e300, true},
		{"Tiny equal", 1e-300, 1e-300, true},
		{"Extreme magnitude gap", 1e300, 1e-300, false},
		{"Extreme magnitude gap reversed", 1e-300, 1e300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Feq(tt.lhs, tt.rhs))
			assert.Equal(t, tt.expected, Feq(tt.rhs, tt.lhs), "Feq should be symmetric here")
		})
	}
}

// TestFeq_Float32 tests the float32 flavor with its looser default epsilon.
func TestFeq_Float32(t *testing.T) {
	assert.True(t, Feq(float32(1.0), float32(1.0)+1e-8))
	assert.False(t, Feq(float32(1.0), float32(1.001)))
	assert.True(t, Feq(float32(0), float32(1e-7)))
	assert.False(t, Feq(float32(1e30), float32(1e-30)))
}

// TestFeqEps tests caller-supplied tolerances.
func TestFeqEps(t *testing.T) {
	assert.True(t, FeqEps(100.0, 101.0, 0.02))
	assert.False(t, FeqEps(100.0, 101.0, 0.005))
	assert.True(t, FeqEps(1e-9, 1.1e-9, 0.2), "relative test must hold at tiny magnitudes")
	assert.False(t, FeqEps(1e-9, 2e-9, 0.2))
}

// TestFeq_NoFault tests that extreme magnitude ratios produce a logical
// "not equal" rather than any fault. The overflow guard rejects before the
// division can blow up; either way no panic and no NaN comparison occurs.
func TestFeq_NoFault(t *testing.T) {
	extremes := []float64{1e-308, 1e-300, 1e-100, 1e-1, 1.0, 1e1, 1e100, 1e300, maxFloat64}
	for _, lhs := range extremes {
		for _, rhs := range extremes {
			assert.NotPanics(t, func() {
				_ = Feq(lhs, rhs)
				_ = Feq(-lhs, rhs)
			})
		}
	}
}

// TestFeq_AgreesWithGonum cross-checks the verdicts against gonum's
// relative comparison for values far from the decision boundary.
func TestFeq_AgreesWithGonum(t *testing.T) {
	const eps = 1e-14

	pairs := []struct {
		lhs, rhs float64
		equal    bool
	}{
		{1.0, 1.0 + 1e-15, true},
		{12345.678, 12345.678, true},
		{1.0, 1.1, false},
		{-4.2, 4.2, false},
		{3e8, 3e8 * (1 + 1e-15), true},
	}

	for _, p := range pairs {
		assert.Equal(t, p.equal, Feq(p.lhs, p.rhs))
		assert.Equal(t, p.equal, scalar.EqualWithinRel(p.lhs, p.rhs, eps),
			"gonum disagrees for %v vs %v", p.lhs, p.rhs)
	}
}

// TestFz tests the approximate-zero predicate.
func TestFz(t *testing.T) {
	assert.True(t, Fz(0.0))
	assert.True(t, Fz(1e-15))
	assert.True(t, Fz(-1e-15))
	assert.False(t, Fz(1e-13))
	assert.False(t, Fz(1.0))

	assert.True(t, Fz(float32(1e-7)))
	assert.False(t, Fz(float32(1e-5)))

	assert.True(t, FzEps(0.5, 1.0))
	assert.False(t, FzEps(0.5, 0.5), "comparison is strict")
}

// TestFeqInt tests that integer comparison is exact regardless of any
// notional tolerance.
func TestFeqInt(t *testing.T) {
	assert.True(t, FeqInt(42, 42))
	assert.False(t, FeqInt(42, 43))
	assert.True(t, FeqInt(int64(-9), int64(-9)))
	assert.True(t, FzInt(0))
	assert.False(t, FzInt(-1))
	assert.False(t, FzInt(uint8(1)))
}

// BenchmarkFeq benchmarks the relative comparison on the ratio path.
func BenchmarkFeq(b *testing.B) {
	for b.Loop() {
		_ = Feq(1.0000001, 1.0000002)
	}
}
