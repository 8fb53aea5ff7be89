// Package light defines the pluggable light model boundary of the seedlight
// renderer: the factory interface, model and input metadata, parameter sets,
// and an in-process model registry.
//
// A light model is identified by a string such as "point_light". Its factory
// describes the model and its configurable inputs as structured metadata
// (used by host applications to build UI and validate scene files), and
// constructs light instances from a parameter-name-to-value mapping.
//
// Parameter validation and normalization go through the foundation scalar
// utilities, so hosts and the renderer agree on angle conversion, clamping,
// and approximate comparison semantics.
//
// Dynamic library loading is out of scope; models are registered in-process
// via [Registry].
package light

import "errors"

// Light is a constructed light instance.
//
// Intensity is expressed as a function of the polar angle theta (radians)
// off the light's principal axis; the renderer's shading code multiplies it
// by the model-independent distance falloff.
type Light interface {
	// Model returns the identifier of the model this light was built from.
	Model() string

	// Name returns the instance name given at creation.
	Name() string

	// Intensity returns the radiant intensity toward the direction at polar
	// angle theta (radians) off the light's principal axis.
	Intensity(theta float64) float64
}

// SamplingWeighter is an optional interface for lights that can estimate
// their emitter-selection weight.
type SamplingWeighter interface {
	SamplingWeight() float64
}

// SamplingWeight returns the emitter-selection weight for a light.
// Models that do not implement SamplingWeighter fall back to their on-axis
// intensity.
func SamplingWeight(l Light) float64 {
	if w, ok := l.(SamplingWeighter); ok {
		return w.SamplingWeight()
	}
	return l.Intensity(0)
}

// Factory creates lights of one model and describes the model's inputs.
type Factory interface {
	// Model returns the string identifying this light model.
	Model() string

	// ModelMetadata returns metadata for this light model.
	ModelMetadata() Metadata

	// InputMetadata returns metadata for the inputs of this light model.
	InputMetadata() []InputMetadata

	// Create builds a new light instance from a parameter set.
	// Unknown parameter names and out-of-range values are rejected.
	Create(name string, params ParamSet) (Light, error)
}

// Metadata describes a light model for host applications.
type Metadata struct {
	// Name is the model identifier, e.g. "spot_light".
	Name string

	// Label is the human-readable model name shown in UI.
	Label string
}

// ParamType enumerates the types a light input can take.
type ParamType string

const (
	// ParamNumeric is a scalar numeric input.
	ParamNumeric ParamType = "numeric"

	// ParamAngle is a scalar angle input, expressed in degrees in parameter
	// sets and converted to radians internally.
	ParamAngle ParamType = "angle"
)

// InputMetadata describes one configurable input of a light model:
// its type, default, and UI hints.
type InputMetadata struct {
	// Name is the parameter name used in ParamSet.
	Name string

	// Label is the human-readable name shown in UI.
	Label string

	// Type is the parameter type.
	Type ParamType

	// Default is the value used when the parameter is absent.
	Default float64

	// Min and Max bound the accepted values. A Min == Max pair means
	// unbounded (no range hint).
	Min, Max float64
}

// Bounded reports whether the input carries a usable [Min, Max] range.
func (m *InputMetadata) Bounded() bool {
	return m.Min < m.Max
}

// Common errors returned by the light layer.
var (
	// ErrUnknownModel indicates a lookup for a model that was never registered.
	ErrUnknownModel = errors.New("unknown light model")

	// ErrDuplicateModel indicates a second registration under the same identifier.
	ErrDuplicateModel = errors.New("light model already registered")

	// ErrInvalidParam indicates a parameter value outside its documented range.
	ErrInvalidParam = errors.New("invalid light parameter")

	// ErrUnknownParam indicates a parameter name the model does not declare.
	ErrUnknownParam = errors.New("unknown light parameter")
)
