// Package registry provides a name-keyed registry of description factories.
//
// The core resolves descriptions statically, so the library itself needs no
// registry. Tooling that works with type names at runtime (documentation
// servers, schema exporters) instead registers one factory per type, usually
// from an init function in generated code, and looks descriptions up by
// name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/matthiasbeyer/type-description/desc"
)

// Factory produces the description of one registered type.
type Factory func() desc.TypeDescription

// Registry associates type names with description factories. The zero value
// is not usable; call New. All methods are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Factory
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]Factory),
	}
}

// Register associates a name with a factory. Registering the same name twice
// is an error; registration is expected to happen once at process start.
func (r *Registry) Register(name string, fn Factory) error {
	if name == "" {
		return fmt.Errorf("registry: name must not be empty")
	}
	if fn == nil {
		return fmt.Errorf("registry: factory for %q must not be nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("registry: %q is already registered", name)
	}
	r.entries[name] = fn
	return nil
}

// MustRegister is Register but panics on error. Intended for generated init
// functions, where a duplicate name is a build defect.
func (r *Registry) MustRegister(name string, fn Factory) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// RegisterMap registers every entry of an index map, as emitted by
// typedesc-gen. Registration stops at the first error.
func (r *Registry) RegisterMap(m map[string]func() desc.TypeDescription) error {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := r.Register(name, Factory(m[name])); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.entries[name]
	return fn, ok
}

// Describe computes the description of the type registered under name.
func (r *Registry) Describe(name string) (desc.TypeDescription, error) {
	fn, ok := r.Lookup(name)
	if !ok {
		return desc.TypeDescription{}, fmt.Errorf("registry: %q is not registered", name)
	}
	return fn(), nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
