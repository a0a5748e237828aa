package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/scenario"
	"github.com/mitchellh/mapstructure"
)

// ValidateScenario reports declarations that compile but can never win a turn:
// rules without a target (always excluded by ranking), rules repeating an earlier
// pattern or event of the same activator (shadowed by first-match), and relative targets.
func ValidateScenario(sc *scenario.Scenario) error {
	var problems []string

	for _, spec := range sc.Activators {
		seen := make(map[string]int)

		for i, raw := range spec.Rules {
			var rule struct {
				Pattern string `mapstructure:"pattern"`
				Event   string `mapstructure:"event"`
				Target  string `mapstructure:"target"`
			}
			// Unknown keys are reported by scenario.Build.
			if err := mapstructure.WeakDecode(raw, &rule); err != nil {
				problems = append(problems, fmt.Sprintf("%s rule %d: %v", spec.Name, i, err))
				continue
			}

			key := rule.Pattern
			if spec.Type == scenario.TypeEvent {
				key = rule.Event
			} else {
				// Patterns match case-insensitively.
				key = strings.ToLower(key)
			}
			if first, ok := seen[key]; ok {
				problems = append(problems, fmt.Sprintf("%s rule %d: shadowed by rule %d", spec.Name, i, first))
			} else {
				seen[key] = i
			}

			problems = append(problems, checkTarget(spec.Name, fmt.Sprintf("rule %d", i), rule.Target)...)
		}

		if spec.Type == scenario.TypeCatchAll {
			problems = append(problems, checkTarget(spec.Name, "catchall", spec.Target)...)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("found %d problems:\n- %s", len(problems), strings.Join(problems, "\n- "))
	}
	return nil
}

func checkTarget(activator, where, target string) []string {
	if target == "" {
		return []string{fmt.Sprintf("%s %s: no target, it will never be selected", activator, where)}
	}
	if !strings.HasPrefix(target, domain.PathSeparator) {
		return []string{fmt.Sprintf("%s %s: target %q is relative, it is resolved from the root", activator, where, target)}
	}
	return nil
}
