package light

import (
	"fmt"
)

// Point light parameter defaults.
const (
	defaultIntensity  = 1.0
	defaultMultiplier = 1.0
)

// PointLightFactory builds omnidirectional point lights.
type PointLightFactory struct{}

// Model returns the point light model identifier.
func (PointLightFactory) Model() string {
	return "point_light"
}

// ModelMetadata returns metadata for the point light model.
func (PointLightFactory) ModelMetadata() Metadata {
	return Metadata{
		Name:  "point_light",
		Label: "Point Light",
	}
}

// InputMetadata returns metadata for the point light inputs.
func (PointLightFactory) InputMetadata() []InputMetadata {
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
	}
}

// Create builds a point light instance.
func (f PointLightFactory) Create(name string, params ParamSet) (Light, error) {
	if err := params.validate(f.InputMetadata()); err != nil {
		return nil, fmt.Errorf("point_light %q: %w", name, err)
	}

	intensity := params.Get("intensity", defaultIntensity)
	multiplier := params.Get("intensity_multiplier", defaultMultiplier)
	if intensity < 0 {
		return nil, fmt.Errorf("point_light %q: %w: intensity must be non-negative",
			name, ErrInvalidParam)
	}

	return &pointLight{
		name: name,
		peak: intensity * multiplier,
	}, nil
}

// pointLight emits uniformly in all directions.
type pointLight struct {
	name string
	peak float64
}

func (l *pointLight) Model() string { return "point_light" }
func (l *pointLight) Name() string  { return l.name }

// Intensity is direction-independent for a point light.
func (l *pointLight) Intensity(float64) float64 {
	return l.peak
}

// SamplingWeight returns the emitter-selection weight: for an
// omnidirectional light, simply the peak intensity.
func (l *pointLight) SamplingWeight() float64 {
	return l.peak
}
