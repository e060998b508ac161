package driver

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/belphemur/hypersql/internal/constants"
	"github.com/belphemur/hypersql/internal/signals"
)

var (
	ErrDriverMissing = errors.New("driver not registered")
	ErrDriverExists  = errors.New("driver already registered")
)

// Registry maps driver names to drivers. Names are case-insensitive.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	drivers map[string]Driver
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{drivers: make(map[string]Driver)}
}

// NewDefaultRegistry creates a registry holding the HyperSQL driver
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	// cannot fail on an empty registry
	_ = r.Register(NewHyperSQL())
	return r
}

// Register adds d under its Name
func (r *Registry) Register(d Driver) error {
	key := strings.ToLower(d.Name())

	r.mu.Lock()
	if _, exists := r.drivers[key]; exists {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrDriverExists, d.Name())
	}
	r.drivers[key] = d
	r.mu.Unlock()

	signals.EmitDriverRegistered(context.Background(), d.Name())
	return nil
}

// Lookup returns the driver registered under name. An empty name selects HyperSQL.
func (r *Registry) Lookup(name string) (Driver, error) {
	if name == "" {
		name = constants.DriverName
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.drivers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDriverMissing, name)
	}
	return d, nil
}

// Names returns the names of the registered drivers in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.drivers))
	for _, d := range r.drivers {
		names = append(names, d.Name())
	}
	sort.Strings(names)
	return names
}
