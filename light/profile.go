package light

import (
	"fmt"

	"gonum.org/v1/gonum/interp"

	foundation "github.com/seedlight/go-render-foundation"
)

// minProfilePoints is the minimum number of samples a measured profile
// needs for piecewise-linear fitting.
const minProfilePoints = 2

// Profile is a measured angular intensity profile, the goniometric-diagram
// style data photometric light formats carry: intensity samples at
// increasing polar angles, interpolated piecewise-linearly in between.
//
// Profiles are symmetric about the light axis: queries are folded into
// [0, π] before evaluation, and angles outside the measured range clamp to
// the nearest endpoint.
type Profile struct {
	pl       interp.PiecewiseLinear
	minAngle float64
	maxAngle float64
}

// NewProfile fits a profile to intensity samples measured at the given
// polar angles (degrees). Angles must be strictly increasing and at least
// two samples are required; intensities must be non-negative.
func NewProfile(anglesDeg, intensities []float64) (*Profile, error) {
	if len(anglesDeg) != len(intensities) {
		return nil, fmt.Errorf("%w: %d angles but %d intensities",
			ErrInvalidParam, len(anglesDeg), len(intensities))
	}
	if len(anglesDeg) < minProfilePoints {
		return nil, fmt.Errorf("%w: need at least %d profile points",
			ErrInvalidParam, minProfilePoints)
	}

	xs := make([]float64, len(anglesDeg))
	for i, deg := range anglesDeg {
		xs[i] = foundation.DegToRad(deg)
		if i > 0 && xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w: profile angles must be strictly increasing",
				ErrInvalidParam)
		}
	}
	for _, v := range intensities {
		if v < 0 {
			return nil, fmt.Errorf("%w: profile intensities must be non-negative",
				ErrInvalidParam)
		}
	}

	p := &Profile{
		minAngle: xs[0],
		maxAngle: xs[len(xs)-1],
	}
	if err := p.pl.Fit(xs, intensities); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParam, err)
	}
	return p, nil
}

// Intensity returns the interpolated profile value at polar angle theta
// (radians). The angle is folded to [0, π] and clamped to the measured
// range.
func (p *Profile) Intensity(theta float64) float64 {
	a := foundation.NormalizeAngle(theta)
	if a > foundation.Pi {
		a = foundation.TwoPi - a
	}
	a = foundation.Clamp(a, p.minAngle, p.maxAngle)
	return p.pl.Predict(a)
}
