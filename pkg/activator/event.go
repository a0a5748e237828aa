package activator

import (
	"errors"
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
)

// ErrEmptyEvent is reported for event rules declared without an event name.
var ErrEmptyEvent = errors.New("event name is empty")

// Event activates the target of the first rule registered for the request's event.
type Event struct {
	name  string
	rules []domain.EventRule
}

// NewEvent validates the rule set. Rules without an event name are rejected.
func NewEvent(name string, rules []domain.EventRule) (*Event, error) {
	var errs []error
	for i, rule := range rules {
		if rule.Event == "" {
			errs = append(errs, fmt.Errorf("rule %d (-> %s): %w", i, rule.Target, ErrEmptyEvent))
		}
	}
	if len(errs) > 0 {
		return nil, &domain.ConfigError{Activator: name, Errors: errs}
	}

	out := make([]domain.EventRule, len(rules))
	copy(out, rules)
	return &Event{name: name, rules: out}, nil
}

func (e *Event) Name() string { return e.name }

// Rules returns the rule set in declaration order.
func (e *Event) Rules() []domain.EventRule {
	out := make([]domain.EventRule, len(e.rules))
	copy(out, e.rules)
	return out
}

// CanHandle accepts only requests carrying an event.
func (e *Event) CanHandle(req domain.Request) bool {
	return req.HasEvent()
}

func (e *Event) Activate(req domain.Request) (domain.Activation, bool) {
	if !e.CanHandle(req) {
		return domain.Activation{}, false
	}
	for _, rule := range e.rules {
		if rule.Event == req.Event {
			return domain.Activation{
				Activator:  e.name,
				Target:     rule.Target,
				Confidence: DefaultConfidence,
				Context:    domain.EventContext{Event: req.Event},
			}, true
		}
	}
	return domain.Activation{}, false
}
