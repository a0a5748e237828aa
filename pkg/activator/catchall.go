package activator

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
)

// DefaultCatchAllConfidence keeps the fallback below any exact match
// until the distance penalty of the match drops under it.
const DefaultCatchAllConfidence = 0.1

// CatchAll activates a fixed target for every textual query.
// Registering one guarantees a non-empty candidate list for query turns.
type CatchAll struct {
	name       string
	target     string
	confidence float64
}

// NewCatchAll creates a fallback activator.
func NewCatchAll(name, target string, confidence float64) (*CatchAll, error) {
	if confidence < 0 || confidence > 1 {
		return nil, &domain.ConfigError{
			Activator: name,
			Errors:    []error{fmt.Errorf("confidence %v out of range [0,1]", confidence)},
		}
	}
	return &CatchAll{name: name, target: target, confidence: confidence}, nil
}

func (c *CatchAll) Name() string { return c.name }

// Target returns the fallback state.
func (c *CatchAll) Target() string { return c.target }

func (c *CatchAll) CanHandle(req domain.Request) bool {
	return req.HasQuery()
}

func (c *CatchAll) Activate(req domain.Request) (domain.Activation, bool) {
	if !c.CanHandle(req) {
		return domain.Activation{}, false
	}
	return domain.Activation{
		Activator:  c.name,
		Target:     c.target,
		Confidence: c.confidence,
		Context:    domain.CatchAllContext{Query: req.Query},
	}, true
}
