package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/observability"
	"github.com/aretw0/arbor/pkg/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var turn = []domain.Activation{
	{Activator: "greet", Target: "/main/hello", Confidence: 1},
	{Activator: "fallback", Target: "/main/fallback", Confidence: 0.1},
	{Activator: "orphan", Confidence: 1},
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelDebug, logging.FormatText)
	sel := selection.NewSelector(selection.WithLifecycleHooks(observability.LogHooks(logger)))

	_, err := sel.Select(context.Background(), domain.DialogContext{CurrentState: "/main"}, turn)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "activation_selected")
	assert.Contains(t, out, "target=/main/hello")
	assert.Contains(t, out, "excluded=1")
	assert.Equal(t, 2, strings.Count(out, "activation_candidate"))
}
