package validator

import (
	"testing"

	"github.com/aretw0/arbor/internal/testutils"
	"github.com/aretw0/arbor/pkg/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, content string) *scenario.Scenario {
	t.Helper()
	sc, err := scenario.Load(testutils.WriteScenario(t, "scenario.yaml", content))
	require.NoError(t, err)
	return sc
}

func TestValidateScenario(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		sc := load(t, `
activators:
  - name: global
    type: regex
    rules:
      - pattern: "help.*"
        target: /help
      - pattern: "bye"
        target: /bye
  - name: fallback
    type: catchall
    target: /fallback
`)
		assert.NoError(t, ValidateScenario(sc))
	})

	t.Run("Shadowed Pattern", func(t *testing.T) {
		sc := load(t, `
activators:
  - name: global
    type: regex
    rules:
      - pattern: "help"
        target: /help
      - pattern: "HELP"
        target: /other
`)
		err := ValidateScenario(sc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "global rule 1: shadowed by rule 0")
	})

	t.Run("Shadowed Event", func(t *testing.T) {
		sc := load(t, `
activators:
  - name: events
    type: event
    rules:
      - event: start
        target: /a
      - event: start
        target: /b
`)
		err := ValidateScenario(sc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "events rule 1: shadowed by rule 0")
	})

	t.Run("Targets", func(t *testing.T) {
		sc := load(t, `
activators:
  - name: global
    type: regex
    rules:
      - pattern: "a"
      - pattern: "b"
        target: main/b
`)
		err := ValidateScenario(sc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "found 2 problems")
		assert.Contains(t, err.Error(), "global rule 0: no target")
		assert.Contains(t, err.Error(), `target "main/b" is relative`)
	})
}
