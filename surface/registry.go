// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"slices"
	"sync"
)

// Factory creates a new Surface with the given options.
type Factory func(opts Options) (Surface, error)

// Backend is a registered surface backend.
type Backend struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	Priority int

	// Factory creates surface instances.
	Factory Factory

	// Available reports if the backend can be used on this system.
	Available func() bool
}

// Registry manages named surface backends. The zero value is ready to use.
//
//	func init() {
//		surface.Register("mine", 20, newMine, nil)
//	}
type Registry struct {
	mu       sync.RWMutex
	backends map[string]*Backend
}

var defaultRegistry = &Registry{}

// Register adds a backend to the default registry.
// A nil available function means always available.
// Registering a name again replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	defaultRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the default registry.
func Unregister(name string) { defaultRegistry.Unregister(name) }

// Names returns the available backends of the default registry, best first.
func Names() []string { return defaultRegistry.Names() }

// NewSurface creates a surface on the best available backend.
func NewSurface(width, height int) (Surface, error) {
	return defaultRegistry.New("", Options{Width: width, Height: height})
}

// NewSurfaceByName creates a surface on a named backend. An empty name
// selects the best available backend.
func NewSurfaceByName(name string, width, height int) (Surface, error) {
	return defaultRegistry.New(name, Options{Width: width, Height: height})
}

// Open creates a surface on a named backend of the default registry,
// honoring every field of opts.
func Open(name string, opts Options) (Surface, error) {
	return defaultRegistry.New(name, opts)
}

// Register adds a backend to r.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.backends == nil {
		r.backends = make(map[string]*Backend)
	}
	r.backends[name] = &Backend{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from r.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.backends, name)
}

// Lookup returns a copy of a registered backend.
func (r *Registry) Lookup(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.backends[name]
	if !ok {
		return Backend{}, false
	}
	return *b, true
}

// Names returns the available backends sorted by priority, highest first.
// Equal priorities are ordered by name.
func (r *Registry) Names() []string {
	r.mu.RLock()
	list := make([]*Backend, 0, len(r.backends))
	for _, b := range r.backends {
		list = append(list, b)
	}
	r.mu.RUnlock()

	slices.SortFunc(list, func(a, b *Backend) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	names := make([]string, 0, len(list))
	for _, b := range list {
		if b.Available() {
			names = append(names, b.Name)
		}
	}
	return names
}

// New creates a surface. An empty name tries every available backend in
// priority order and returns the first success. When opts.Background is
// set the new surface is cleared to it.
func (r *Registry) New(name string, opts Options) (Surface, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if name != "" {
		return r.open(name, opts)
	}

	names := r.Names()
	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}
	var errs []error
	for _, n := range names {
		s, err := r.open(n, opts)
		if err == nil {
			return s, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

func (r *Registry) open(name string, opts Options) (Surface, error) {
	b, ok := r.Lookup(name)
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !b.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	s, err := b.Factory(opts)
	if err != nil {
		return nil, err
	}
	if opts.Background != nil {
		s.Clear(opts.Background)
	}
	return s, nil
}

// ErrNoBackendAvailable is returned when no backend is registered or
// available.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

func init() {
	Register("image", 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height)
	}, nil)
	Register("paletted", 5, func(opts Options) (Surface, error) {
		return NewPalettedSurface(opts.Width, opts.Height)
	}, nil)
}
