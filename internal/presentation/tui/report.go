package tui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/muesli/termenv"
)

// Report describes one ranked turn for display.
type Report struct {
	Position string
	Request  domain.Request
	Strategy string
	Ranked   []domain.ScoredActivation
	Excluded int // candidates dropped by the strategy
}

// Winner returns the head of the ranking, if any.
func (r Report) Winner() (domain.ScoredActivation, bool) {
	if len(r.Ranked) == 0 {
		return domain.ScoredActivation{}, false
	}
	return r.Ranked[0], true
}

// Markdown renders the report as a markdown document (for glamour).
func (r Report) Markdown() string {
	var sb strings.Builder
	sb.WriteString("# Ranking\n\n")
	sb.WriteString(fmt.Sprintf("- **Position:** `%s`\n", r.Position))
	sb.WriteString(fmt.Sprintf("- **Input:** %s\n", describeRequest(r.Request)))
	if r.Strategy != "" {
		sb.WriteString(fmt.Sprintf("- **Strategy:** %s\n", r.Strategy))
	}
	if r.Excluded > 0 {
		sb.WriteString(fmt.Sprintf("- **Excluded:** %d without target\n", r.Excluded))
	}
	sb.WriteString("\n")

	if len(r.Ranked) == 0 {
		sb.WriteString("_No candidate._\n")
		return sb.String()
	}

	sb.WriteString("| # | Activator | Target | Confidence | Distance | Penalty | Score |\n")
	sb.WriteString("|---|---|---|---|---|---|---|\n")
	for i, s := range r.Ranked {
		sb.WriteString(fmt.Sprintf("| %d | %s | `%s` | %.3f | %d | %.3f | %.3f |\n",
			i+1, s.Activation.Activator, targetOf(s), s.Activation.Confidence, s.Distance, s.Penalty, s.Score))
	}
	return sb.String()
}

// Plain renders the report as aligned text, without styling.
func (r Report) Plain() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("position: %s\n", r.Position))
	sb.WriteString(fmt.Sprintf("input:    %s\n", describeRequest(r.Request)))
	if r.Strategy != "" {
		sb.WriteString(fmt.Sprintf("strategy: %s\n", r.Strategy))
	}
	if r.Excluded > 0 {
		sb.WriteString(fmt.Sprintf("excluded: %d\n", r.Excluded))
	}
	sb.WriteString("\n")

	if len(r.Ranked) == 0 {
		sb.WriteString("no candidate\n")
		return sb.String()
	}

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tACTIVATOR\tTARGET\tCONFIDENCE\tDISTANCE\tPENALTY\tSCORE")
	for i, s := range r.Ranked {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.3f\t%d\t%.3f\t%.3f\n",
			i+1, s.Activation.Activator, targetOf(s), s.Activation.Confidence, s.Distance, s.Penalty, s.Score)
	}
	_ = tw.Flush()
	return sb.String()
}

// Print writes the report. Interactive output goes through glamour and colors
// the winner line; otherwise the plain table is written.
func Print(w io.Writer, r Report, interactive bool) error {
	if !interactive {
		if _, err := io.WriteString(w, r.Plain()); err != nil {
			return err
		}
		if win, ok := r.Winner(); ok {
			_, err := fmt.Fprintf(w, "\nwinner: %s -> %s\n", win.Activation.Activator, targetOf(win))
			return err
		}
		return nil
	}

	render, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to init renderer: %w", err)
	}
	out, err := render(r.Markdown())
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if _, err := io.WriteString(w, out); err != nil {
		return err
	}

	if win, ok := r.Winner(); ok {
		p := termenv.ColorProfile()
		line := termenv.String(fmt.Sprintf("  ✔ %s -> %s", win.Activation.Activator, targetOf(win))).
			Foreground(p.Color("#22c55e")).
			Bold()
		_, err = fmt.Fprintln(w, line)
	}
	return err
}

func describeRequest(req domain.Request) string {
	switch {
	case req.HasEvent():
		return fmt.Sprintf("event %q", req.Event)
	case req.HasQuery():
		return fmt.Sprintf("%q", req.Query)
	}
	return "(empty)"
}

func targetOf(s domain.ScoredActivation) string {
	if !s.Activation.HasTarget() {
		return "-"
	}
	return s.Activation.Target
}
