package activator

import "github.com/aretw0/arbor/pkg/domain"

// DefaultConfidence is the confidence assigned by exact-match activators.
const DefaultConfidence = 1.0

// Activator produces candidate transitions from a request.
type Activator interface {
	// Name identifies the activator in activations, logs and metrics.
	Name() string

	// CanHandle reports whether the activator participates for this request.
	CanHandle(req domain.Request) bool

	// Activate tries the activator's rules against the request.
	// It returns false when no rule fires.
	Activate(req domain.Request) (domain.Activation, bool)
}
