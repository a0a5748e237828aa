package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/aretw0/arbor/internal/testutils"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append(args,
		"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		"--scenario", filepath.Join("testdata", "weather.yaml"),
	))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, `Scenario "weather" is valid!`)
	assert.Contains(t, out, "4 activators")
}

func TestRankCommand(t *testing.T) {
	t.Run("Query", func(t *testing.T) {
		out, err := execute(t, "rank", "--state", "/main", "--event=", "Paris", "weather")
		require.NoError(t, err)
		assert.Contains(t, out, "winner: greetings -> /main/weather")
		assert.Contains(t, out, "fallback")
	})

	t.Run("Event", func(t *testing.T) {
		out, err := execute(t, "rank", "--state", "/", "--event", "start")
		require.NoError(t, err)
		assert.Contains(t, out, "winner: events -> /main")
	})

	t.Run("Nothing Fires", func(t *testing.T) {
		_, err := execute(t, "rank", "--state", "/", "--event", "unknown")
		assert.ErrorIs(t, err, domain.ErrNoActivation)
	})
}

func TestGraphCommand(t *testing.T) {
	out, err := execute(t, "graph", "--state", "/main", "--event=", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, "class s_main current;")
	assert.Contains(t, out, "class s_main_hello winner;")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "arbor version")
}

func TestValidateCommand_Strict(t *testing.T) {
	path := testutils.WriteScenario(t, "dup.yaml", `
activators:
  - name: global
    type: regex
    rules:
      - pattern: "help"
        target: /help
      - pattern: "help"
        target: /other
`)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"validate", "--strict",
		"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		"--scenario", path,
	})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shadowed by rule 0")
}
