package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		targets  []string
		overlay  *graph.GraphOverlay
		contains []string
		excludes []string
	}{
		{
			name:    "Root Node Shape",
			targets: nil,
			contains: []string{
				"root((\"/\"))",
			},
		},
		{
			name:    "Intermediate States Are Implied",
			targets: []string{"/main/booking/help"},
			contains: []string{
				"root --> s_main",
				"s_main([\"main\"])",
				"s_main --> s_main_booking",
				"s_main_booking_help[\"help\"]",
			},
		},
		{
			name:    "Shared Prefix Is Drawn Once",
			targets: []string{"/main/a", "/main/b", "main/a"},
			contains: []string{
				"s_main --> s_main_a",
				"s_main --> s_main_b",
			},
		},
		{
			name:    "ID Sanitization",
			targets: []string{"/café-menu/item.1"},
			contains: []string{
				"s_caf__menu_item_1[\"item.1\"]",
			},
		},
		{
			name:    "Overlay",
			targets: []string{"/main/weather", "/help"},
			overlay: &graph.GraphOverlay{
				Candidates: []string{"/main/weather", "/help", "/help"},
				Current:    "/main/booking",
				Winner:     "/main/weather",
			},
			contains: []string{
				"s_main_booking([\"booking\"])",
				"class s_main_weather candidate;",
				"class s_help candidate;",
				"class s_main_booking current;",
				"class s_main_weather winner;",
			},
		},
		{
			name:     "No Overlay",
			targets:  []string{"/main"},
			excludes: []string{"classDef"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.targets, tt.overlay)
			assert.True(t, strings.HasPrefix(got, "graph TD\n"))
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestGenerateMermaid_CandidateStyledOnce(t *testing.T) {
	got := graph.GenerateMermaid([]string{"/help"}, &graph.GraphOverlay{Candidates: []string{"/help", "help"}})
	assert.Equal(t, 1, strings.Count(got, "class s_help candidate;"))
}
