package light

import (
	"fmt"
	"math"

	foundation "github.com/seedlight/go-render-foundation"
	"github.com/seedlight/go-render-foundation/internal/falloff"
)

// Spot light parameter defaults. Angles are half-angles in degrees.
const (
	defaultInnerAngle = 20.0
	defaultOuterAngle = 30.0
	maxConeAngle      = 180.0

	// falloffResolution is the requested falloff table resolution; the
	// table rounds it up to a power of two.
	falloffResolution = 256
)

// SpotLightFactory builds spot lights with a smooth cone falloff.
type SpotLightFactory struct{}

// Model returns the spot light model identifier.
func (SpotLightFactory) Model() string {
	return "spot_light"
}

// ModelMetadata returns metadata for the spot light model.
func (SpotLightFactory) ModelMetadata() Metadata {
	return Metadata{
		Name:  "spot_light",
		Label: "Spot Light",
	}
}

// InputMetadata returns metadata for the spot light inputs.
func (SpotLightFactory) InputMetadata() []InputMetadata {
	return []InputMetadata{
		{
			Name:    "intensity",
			Label:   "Intensity",
			Type:    ParamNumeric,
			Default: defaultIntensity,
		},
		{
			Name:    "intensity_multiplier",
			Label:   "Intensity Multiplier",
			Type:    ParamNumeric,
			Default: defaultMultiplier,
		},
		{
			Name:    "inner_angle",
			Label:   "Inner Cone Angle",
			Type:    ParamAngle,
			Default: defaultInnerAngle,
			Min:     0.0,
			Max:     maxConeAngle,
		},
		{
			Name:    "outer_angle",
			Label:   "Outer Cone Angle",
			Type:    ParamAngle,
			Default: defaultOuterAngle,
			Min:     0.0,
			Max:     maxConeAngle,
		},
	}
}

// Create builds a spot light instance. The inner cone angle must not exceed
// the outer cone angle; equal angles produce a hard-edged cone.
func (f SpotLightFactory) Create(name string, params ParamSet) (Light, error) {
	if err := params.validate(f.InputMetadata()); err != nil {
		return nil, fmt.Errorf("spot_light %q: %w", name, err)
	}

	intensity := params.Get("intensity", defaultIntensity)
	multiplier := params.Get("intensity_multiplier", defaultMultiplier)
	if intensity < 0 {
		return nil, fmt.Errorf("spot_light %q: %w: intensity must be non-negative",
			name, ErrInvalidParam)
	}

	innerDeg := params.Get("inner_angle", defaultInnerAngle)
	outerDeg := params.Get("outer_angle", defaultOuterAngle)
	if innerDeg > outerDeg {
		return nil, fmt.Errorf("spot_light %q: %w: inner_angle %v exceeds outer_angle %v",
			name, ErrInvalidParam, innerDeg, outerDeg)
	}

	// Falloff is driven by the cosine of the polar angle, so the ramp runs
	// from cos(outer) up to cos(inner).
	cosInner := math.Cos(foundation.DegToRad(innerDeg))
	cosOuter := math.Cos(foundation.DegToRad(outerDeg))

	l := &spotLight{
		name:     name,
		peak:     intensity * multiplier,
		cosInner: cosInner,
		cosOuter: cosOuter,
	}

	// Equal cone angles (within float tolerance) collapse the transition
	// region to nothing: hard edge, no table.
	if !foundation.Feq(cosOuter, cosInner) {
		l.ramp = falloff.NewSmooth(falloffResolution)
		l.ramp.Scale(l.peak)
	}

	return l, nil
}

// spotLight restricts emission to a cone about the principal axis, with a
// smooth transition between the inner and outer cone.
type spotLight struct {
	name     string
	peak     float64
	cosInner float64
	cosOuter float64

	// ramp holds the falloff scaled by peak intensity; nil for a hard edge.
	ramp *falloff.Table
}

func (l *spotLight) Model() string { return "spot_light" }
func (l *spotLight) Name() string  { return l.name }

// Intensity returns the radiant intensity at polar angle theta off the spot
// axis: the peak inside the inner cone, zero outside the outer cone, and a
// smooth ramp in between.
func (l *spotLight) Intensity(theta float64) float64 {
	// Fold the angle to [0, π]; the cone is symmetric about the axis.
	a := foundation.NormalizeAngle(theta)
	if a > foundation.Pi {
		a = foundation.TwoPi - a
	}

	cosTheta := math.Cos(a)
	switch {
	case cosTheta <= l.cosOuter:
		return 0
	case cosTheta >= l.cosInner:
		return l.peak
	default:
		if l.ramp == nil {
			// Hard edge: the transition region is empty up to float
			// tolerance.
			return l.peak
		}
		t := foundation.Fit(cosTheta, l.cosOuter, l.cosInner, 0.0, 1.0)
		return l.ramp.Lookup(t)
	}
}

// SamplingWeight returns the emitter-selection weight: the ramp's mean value
// for soft cones, the peak for hard-edged ones.
func (l *spotLight) SamplingWeight() float64 {
	if l.ramp == nil {
		return l.peak
	}
	return l.ramp.Mean()
}
