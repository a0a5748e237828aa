package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteScenario writes a scenario document into a temporary directory.
// It returns the absolute path to the file and fails the test immediately on error.
func WriteScenario(t *testing.T, name, content string) string {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join(t.TempDir(), name))
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	require.NoError(t, os.WriteFile(absPath, []byte(content), 0o644), "Failed to write scenario")
	return absPath
}
