package light

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	foundation "github.com/seedlight/go-render-foundation"
	"github.com/seedlight/go-render-foundation/internal/testutil"
)

// newSpot builds a spot light for tests, failing the test on error.
func newSpot(t *testing.T, params ParamSet) Light {
	t.Helper()
	l, err := SpotLightFactory{}.Create("key", params)
	require.NoError(t, err)
	return l
}

// TestSpotLight_ConeRegions tests the three falloff regions: full intensity
// inside the inner cone, zero outside the outer cone, and a ramp between.
func TestSpotLight_ConeRegions(t *testing.T) {
	l := newSpot(t, ParamSet{
		"intensity":   2.0,
		"inner_angle": 20.0,
		"outer_angle": 30.0,
	})

	assert.Equal(t, 2.0, l.Intensity(0), "on axis")
	assert.Equal(t, 2.0, l.Intensity(foundation.DegToRad(10.0)), "inside inner cone")
	assert.Equal(t, 0.0, l.Intensity(foundation.DegToRad(45.0)), "outside outer cone")
	assert.Equal(t, 0.0, l.Intensity(foundation.DegToRad(90.0)))

	mid := l.Intensity(foundation.DegToRad(25.0))
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 2.0)
}

// TestSpotLight_FalloffMatchesSmoothstep tests the table lookup against the
// analytic cubic ramp.
func TestSpotLight_FalloffMatchesSmoothstep(t *testing.T) {
	l := newSpot(t, ParamSet{
		"inner_angle": 20.0,
		"outer_angle": 30.0,
	})

	cosInner := math.Cos(foundation.DegToRad(20.0))
	cosOuter := math.Cos(foundation.DegToRad(30.0))

	for deg := 20.5; deg < 30.0; deg += 0.5 {
		theta := foundation.DegToRad(deg)
		tt := foundation.Fit(math.Cos(theta), cosOuter, cosInner, 0.0, 1.0)
		want := foundation.Smoothstep(0.0, 1.0, tt)
		assert.InDelta(t, want, l.Intensity(theta), 1e-4, "at %v degrees", deg)
	}
}

// TestSpotLight_FalloffMonotonic tests that intensity never increases as
// the angle moves away from the axis.
func TestSpotLight_FalloffMonotonic(t *testing.T) {
	l := newSpot(t, nil)

	var samples []float64
	for deg := 0.0; deg <= 90.0; deg += 0.25 {
		samples = append(samples, l.Intensity(foundation.DegToRad(deg)))
	}
	testutil.AssertMonotonicNonIncreasing(t, samples)
	testutil.AssertAllInRange(t, samples, 0, 1)
}

// TestSpotLight_AngleFolding tests that negative angles and extra full
// turns reach the same cone position.
func TestSpotLight_AngleFolding(t *testing.T) {
	l := newSpot(t, nil)

	theta := foundation.DegToRad(25.0)
	want := l.Intensity(theta)

	assert.InDelta(t, want, l.Intensity(-theta), 1e-9, "cone is symmetric")
	assert.InDelta(t, want, l.Intensity(theta+foundation.TwoPi), 1e-9, "full turn folds away")
	assert.InDelta(t, want, l.Intensity(theta-2*foundation.TwoPi), 1e-9)
}

// TestSpotLight_HardEdge tests that equal cone angles produce a hard-edged
// cone with no transition region.
func TestSpotLight_HardEdge(t *testing.T) {
	l := newSpot(t, ParamSet{
		"intensity":   3.0,
		"inner_angle": 25.0,
		"outer_angle": 25.0,
	})

	assert.Equal(t, 3.0, l.Intensity(foundation.DegToRad(24.0)))
	assert.Equal(t, 0.0, l.Intensity(foundation.DegToRad(26.0)))
}

// TestSpotLight_RejectsInvertedCone tests that inner_angle > outer_angle is
// rejected.
func TestSpotLight_RejectsInvertedCone(t *testing.T) {
	_, err := SpotLightFactory{}.Create("key", ParamSet{
		"inner_angle": 40.0,
		"outer_angle": 30.0,
	})
	assert.ErrorIs(t, err, ErrInvalidParam)
}

// TestSpotLight_RejectsOutOfRangeAngle tests the metadata range check.
func TestSpotLight_RejectsOutOfRangeAngle(t *testing.T) {
	_, err := SpotLightFactory{}.Create("key", ParamSet{"outer_angle": 200.0})
	assert.ErrorIs(t, err, ErrInvalidParam)

	_, err = SpotLightFactory{}.Create("key", ParamSet{"inner_angle": -5.0})
	assert.ErrorIs(t, err, ErrInvalidParam)
}

// TestSpotLight_SamplingWeight tests that a soft cone weighs less than its
// peak and a hard cone weighs exactly its peak.
func TestSpotLight_SamplingWeight(t *testing.T) {
	soft := newSpot(t, ParamSet{"intensity": 2.0})
	w := SamplingWeight(soft)
	assert.Greater(t, w, 0.0)
	assert.Less(t, w, 2.0)

	hard := newSpot(t, ParamSet{
		"intensity":   2.0,
		"inner_angle": 25.0,
		"outer_angle": 25.0,
	})
	assert.Equal(t, 2.0, SamplingWeight(hard))
}

// BenchmarkSpotLightIntensity benchmarks a lookup in the transition region.
func BenchmarkSpotLightIntensity(b *testing.B) {
	l, err := SpotLightFactory{}.Create("key", nil)
	if err != nil {
		b.Fatal(err)
	}
	theta := foundation.DegToRad(25.0)
	for b.Loop() {
		_ = l.Intensity(theta)
	}
}
