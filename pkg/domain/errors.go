package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoActivation is returned when a selection is requested without any rankable activation.
var ErrNoActivation = errors.New("no activation to select")

// ErrInvalidPattern is matched (via errors.Is) by every PatternError.
var ErrInvalidPattern = errors.New("invalid pattern")

// PatternError describes a rule whose pattern failed to compile.
type PatternError struct {
	Index   int    // Position of the rule in its rule set
	Pattern string // The offending pattern
	Target  string // Target state of the rule
	Err     error  // Underlying compiler error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("rule %d (%q -> %s): %v", e.Index, e.Pattern, e.Target, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

func (e *PatternError) Is(target error) bool { return target == ErrInvalidPattern }

// ConfigError aggregates the configuration failures of one activator.
type ConfigError struct {
	Activator string
	Errors    []error
}

func (e *ConfigError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("activator %q: %s", e.Activator, e.Errors[0].Error())
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("activator %q: %d configuration errors:\n", e.Activator, len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

func (e *ConfigError) Unwrap() []error { return e.Errors }
