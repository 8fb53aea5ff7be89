package light

import (
	"fmt"

	foundation "github.com/seedlight/go-render-foundation"
)

// ParamSet maps parameter names to scalar values. Angle parameters are
// expressed in degrees; the typed getters convert.
type ParamSet map[string]float64

// Get returns the named parameter, or def when absent.
func (p ParamSet) Get(name string, def float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}

// GetSaturated returns the named parameter clamped to [0, 1].
func (p ParamSet) GetSaturated(name string, def float64) float64 {
	return foundation.Saturate(p.Get(name, def))
}

// GetAngle returns the named parameter, interpreted as degrees, converted
// to radians and normalized to [0, 2π).
func (p ParamSet) GetAngle(name string, defDegrees float64) float64 {
	return foundation.NormalizeAngle(foundation.DegToRad(p.Get(name, defDegrees)))
}

// validate checks a parameter set against a model's input metadata:
// every name must be declared, and bounded inputs must hold their value
// within [Min, Max].
func (p ParamSet) validate(inputs []InputMetadata) error {
	byName := make(map[string]*InputMetadata, len(inputs))
	for i := range inputs {
		byName[inputs[i].Name] = &inputs[i]
	}

	for name, value := range p {
		meta, ok := byName[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownParam, name)
		}
		if meta.Bounded() && (value < meta.Min || value > meta.Max) {
			return fmt.Errorf("%w: %q = %v outside [%v, %v]",
				ErrInvalidParam, name, value, meta.Min, meta.Max)
		}
	}

	return nil
}
