package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Activator types understood by the loader.
const (
	TypeRegex    = "regex"
	TypeEvent    = "event"
	TypeCatchAll = "catchall"
)

// Scenario is the decoded content of a scenario file.
type Scenario struct {
	Name       string
	Activators []ActivatorSpec
}

// ActivatorSpec is the declaration of one activator.
// Rules are kept raw until Build decodes them for the declared type.
type ActivatorSpec struct {
	Name       string           `mapstructure:"name"`
	Type       string           `mapstructure:"type"`
	Confidence *float64         `mapstructure:"confidence"`
	Dialect    string           `mapstructure:"dialect"`
	Target     string           `mapstructure:"target"`
	Rules      []map[string]any `mapstructure:"rules"`
}

type file struct {
	Name       string           `yaml:"name" json:"name"`
	Activators []map[string]any `yaml:"activators" json:"activators"`
}

// Load reads a scenario file (YAML, or JSON by extension).
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	var raw file
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if raw.Name == "" {
		raw.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return decode(raw)
}

// Parse decodes a YAML scenario held in memory.
func Parse(data []byte) (*Scenario, error) {
	var raw file
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	return decode(raw)
}

func decode(raw file) (*Scenario, error) {
	sc := &Scenario{Name: raw.Name}
	var errs []error
	for i, entry := range raw.Activators {
		var spec ActivatorSpec
		if err := decodeStrict(entry, &spec); err != nil {
			errs = append(errs, fmt.Errorf("activator #%d: %w", i, err))
			continue
		}
		if spec.Name == "" {
			spec.Name = fmt.Sprintf("%s-%d", spec.Type, i)
		}
		sc.Activators = append(sc.Activators, spec)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return sc, nil
}

func decodeStrict(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

func decodeRules[T any](raw []map[string]any) ([]T, error) {
	out := make([]T, 0, len(raw))
	for i, r := range raw {
		var rule T
		if err := decodeStrict(r, &rule); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		out = append(out, rule)
	}
	return out, nil
}

// Targets lists every target state declared by the scenario, in declaration order, without duplicates.
func (s *Scenario) Targets() ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	add := func(t string) {
		if t != "" && !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}

	for _, spec := range s.Activators {
		switch spec.Type {
		case TypeRegex:
			rules, err := decodeRules[domain.Rule](spec.Rules)
			if err != nil {
				return nil, fmt.Errorf("activator %q: %w", spec.Name, err)
			}
			for _, r := range rules {
				add(r.Target)
			}
		case TypeEvent:
			rules, err := decodeRules[domain.EventRule](spec.Rules)
			if err != nil {
				return nil, fmt.Errorf("activator %q: %w", spec.Name, err)
			}
			for _, r := range rules {
				add(r.Target)
			}
		case TypeCatchAll:
			add(spec.Target)
		}
	}
	return out, nil
}
