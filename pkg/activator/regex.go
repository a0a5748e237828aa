package activator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/domain"
)

// Regex activates the target of the first rule whose pattern matches the whole query.
type Regex struct {
	name       string
	rules      []compiledRule
	dialect    Dialect
	timeout    time.Duration
	confidence float64
	logger     *slog.Logger
}

type compiledRule struct {
	rule    domain.Rule
	matcher matcher
}

// RegexOption configures a Regex activator.
type RegexOption func(*Regex)

// WithDialect selects the pattern engine (default DialectRE2).
func WithDialect(d Dialect) RegexOption {
	return func(r *Regex) {
		r.dialect = d
	}
}

// WithMatchTimeout bounds a single match in DialectBacktracking. Zero means no limit.
func WithMatchTimeout(d time.Duration) RegexOption {
	return func(r *Regex) {
		r.timeout = d
	}
}

// WithConfidence overrides the confidence of produced activations.
func WithConfidence(c float64) RegexOption {
	return func(r *Regex) {
		r.confidence = c
	}
}

// WithLogger sets the logger used to report match timeouts.
func WithLogger(logger *slog.Logger) RegexOption {
	return func(r *Regex) {
		r.logger = logger
	}
}

// NewRegex compiles every rule eagerly.
// All invalid patterns are reported together in a *domain.ConfigError.
func NewRegex(name string, rules []domain.Rule, opts ...RegexOption) (*Regex, error) {
	r := &Regex{
		name:       name,
		dialect:    DialectRE2,
		confidence: DefaultConfidence,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	var errs []error
	if r.confidence < 0 || r.confidence > 1 {
		errs = append(errs, fmt.Errorf("confidence %v out of range [0,1]", r.confidence))
	}

	r.rules = make([]compiledRule, 0, len(rules))
	for i, rule := range rules {
		m, err := compilePattern(rule.Pattern, r.dialect, r.timeout)
		if err != nil {
			errs = append(errs, &domain.PatternError{
				Index:   i,
				Pattern: rule.Pattern,
				Target:  rule.Target,
				Err:     err,
			})
			continue
		}
		r.rules = append(r.rules, compiledRule{rule: rule, matcher: m})
	}

	if len(errs) > 0 {
		return nil, &domain.ConfigError{Activator: name, Errors: errs}
	}
	return r, nil
}

// Name returns the activator name.
func (r *Regex) Name() string {
	return r.name
}

// Rules returns the rule set in declaration order.
func (r *Regex) Rules() []domain.Rule {
	out := make([]domain.Rule, len(r.rules))
	for i, cr := range r.rules {
		out[i] = cr.rule
	}
	return out
}

// CanHandle accepts only requests carrying a textual query.
func (r *Regex) CanHandle(req domain.Request) bool {
	return req.HasQuery()
}

// Activate implements Activator.
func (r *Regex) Activate(req domain.Request) (domain.Activation, bool) {
	if !r.CanHandle(req) {
		return domain.Activation{}, false
	}
	return r.Match(req.Query)
}

// Match tests the rules in declaration order against the raw input and
// returns the activation of the first rule that matches the whole string.
func (r *Regex) Match(input string) (domain.Activation, bool) {
	for _, cr := range r.rules {
		caps, ok, err := cr.matcher.match(input)
		if err != nil {
			r.logger.Warn("pattern match aborted",
				"activator", r.name,
				"pattern", cr.rule.Pattern,
				"err", err,
			)
			continue
		}
		if !ok {
			continue
		}
		return domain.Activation{
			Activator:  r.name,
			Target:     cr.rule.Target,
			Confidence: r.confidence,
			Context: domain.RegexContext{
				Groups: caps.groups,
				Named:  caps.named,
			},
		}, true
	}
	return domain.Activation{}, false
}
