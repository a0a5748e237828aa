package activator

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/aretw0/arbor/pkg/domain"
)

// ErrDuplicateActivator is returned when an activator name is registered twice.
var ErrDuplicateActivator = errors.New("activator already registered")

// Registry keeps the activators of a scenario in registration order.
type Registry struct {
	mu         sync.RWMutex
	activators []Activator
	names      map[string]struct{}
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]struct{}),
	}
}

// ErrInvalidActivator is returned when registering a nil or unnamed activator.
var ErrInvalidActivator = errors.New("invalid activator")

// Register appends an activator. Names must be unique and non-empty.
func (r *Registry) Register(a Activator) error {
	if isNil(a) {
		return fmt.Errorf("%w: nil", ErrInvalidActivator)
	}
	if a.Name() == "" {
		return fmt.Errorf("%w: activator must have a name", ErrInvalidActivator)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.names[a.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateActivator, a.Name())
	}
	r.names[a.Name()] = struct{}{}
	r.activators = append(r.activators, a)
	return nil
}

// Get looks up an activator by name.
func (r *Registry) Get(name string) (Activator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.activators {
		if a.Name() == name {
			return a, true
		}
	}
	return nil, false
}

// Activators returns a snapshot of the registered activators.
func (r *Registry) Activators() []Activator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Activator, len(r.activators))
	copy(out, r.activators)
	return out
}

// Len returns the number of registered activators.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activators)
}

// Collect asks every participating activator for a candidate.
// Candidates are returned in registration order, which is the tie-break order of ranking.
func (r *Registry) Collect(req domain.Request) []domain.Activation {
	var out []domain.Activation
	for _, a := range r.Activators() {
		if !a.CanHandle(req) {
			continue
		}
		if act, ok := a.Activate(req); ok {
			out = append(out, act)
		}
	}
	return out
}

// isNil also catches typed nil pointers such as (*Regex)(nil), whose Name would panic.
func isNil(a Activator) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
