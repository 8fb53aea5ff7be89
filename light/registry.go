package light

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps model identifiers to factories. The zero value is not
// usable; construct with NewRegistry.
//
// Registration typically happens once at startup, lookups happen from any
// number of render threads, so the map is guarded by a read-write mutex.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under its model identifier.
// Registering the same identifier twice is an error.
func (r *Registry) Register(f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	model := f.Model()
	if _, exists := r.factories[model]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateModel, model)
	}
	r.factories[model] = f
	return nil
}

// Lookup returns the factory registered under the given model identifier.
func (r *Registry) Lookup(model string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[model]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}
	return f, nil
}

// Models returns the registered model identifiers in sorted order.
func (r *Registry) Models() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	models := make([]string, 0, len(r.factories))
	for model := range r.factories {
		models = append(models, model)
	}
	sort.Strings(models)
	return models
}

// Create looks up a model and builds a light instance in one step.
func (r *Registry) Create(model, name string, params ParamSet) (Light, error) {
	f, err := r.Lookup(model)
	if err != nil {
		return nil, err
	}
	return f.Create(name, params)
}

// DefaultRegistry holds the built-in light models.
var DefaultRegistry = func() *Registry {
	r := NewRegistry()
	for _, f := range []Factory{
		PointLightFactory{},
		SpotLightFactory{},
	} {
		if err := r.Register(f); err != nil {
			panic(err)
		}
	}
	return r
}()
