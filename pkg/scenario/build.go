package scenario

import (
	"errors"
	"fmt"

	"github.com/aretw0/arbor/pkg/activator"
	"github.com/aretw0/arbor/pkg/domain"
)

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	regexOpts []activator.RegexOption
}

// WithRegexOptions applies options (dialect, timeout, logger) to every regex activator.
// A dialect declared on the activator itself takes precedence.
func WithRegexOptions(opts ...activator.RegexOption) BuildOption {
	return func(c *buildConfig) {
		c.regexOpts = append(c.regexOpts, opts...)
	}
}

// Build compiles every activator of the scenario and registers them in order.
// All configuration errors are reported together.
func Build(s *Scenario, opts ...BuildOption) (*activator.Registry, error) {
	cfg := &buildConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	reg := activator.NewRegistry()
	var errs []error
	for _, spec := range s.Activators {
		a, err := buildActivator(spec, cfg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := reg.Register(a); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return reg, nil
}

func buildActivator(spec ActivatorSpec, cfg *buildConfig) (activator.Activator, error) {
	switch spec.Type {
	case TypeRegex:
		rules, err := decodeRules[domain.Rule](spec.Rules)
		if err != nil {
			return nil, fmt.Errorf("activator %q: %w", spec.Name, err)
		}
		opts := append([]activator.RegexOption(nil), cfg.regexOpts...)
		if spec.Dialect != "" {
			d, err := activator.ParseDialect(spec.Dialect)
			if err != nil {
				return nil, fmt.Errorf("activator %q: %w", spec.Name, err)
			}
			opts = append(opts, activator.WithDialect(d))
		}
		if spec.Confidence != nil {
			opts = append(opts, activator.WithConfidence(*spec.Confidence))
		}
		return activator.NewRegex(spec.Name, rules, opts...)

	case TypeEvent:
		rules, err := decodeRules[domain.EventRule](spec.Rules)
		if err != nil {
			return nil, fmt.Errorf("activator %q: %w", spec.Name, err)
		}
		return activator.NewEvent(spec.Name, rules)

	case TypeCatchAll:
		if spec.Target == "" {
			return nil, fmt.Errorf("activator %q: catchall requires a target", spec.Name)
		}
		confidence := activator.DefaultCatchAllConfidence
		if spec.Confidence != nil {
			confidence = *spec.Confidence
		}
		return activator.NewCatchAll(spec.Name, spec.Target, confidence)
	}

	return nil, fmt.Errorf("activator %q: unknown type %q", spec.Name, spec.Type)
}
