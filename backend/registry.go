// SPDX-License-Identifier: MIT
// Package backend: named backend registry.
package backend

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Registry maps names to backends. Safe for concurrent use.
// Re-registering a name replaces the previous entry.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

// Register adds b under b.Name(). Nil or unnamed backends are
// rejected with ErrNilBackend.
func (r *Registry) Register(b Backend) error {
	if b == nil || b.Name() == "" {
		return ErrNilBackend
	}
	r.mu.Lock()
	r.backends[b.Name()] = b
	r.mu.Unlock()

	return nil
}

// Get returns the backend registered under name, or ErrUnknownBackend
// annotated with the name.
func (r *Registry) Get(name string) (Backend, error) {
	r.mu.RLock()
	b, ok := r.backends[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrap(ErrUnknownBackend, name)
	}

	return b, nil
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)

	return names
}

// defaultRegistry carries the backends every consumer gets for free.
var defaultRegistry = func() *Registry {
	r := NewRegistry()
	_ = r.Register(NewSim())

	return r
}()

// Default returns the package registry, pre-loaded with the ideal
// simulator under SimName.
func Default() *Registry { return defaultRegistry }
