package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rankCmd = &cobra.Command{
	Use:   "rank [query...]",
	Short: "Explain which rule fires for an input",
	Long: `Runs one turn against the scenario: every activator is asked for a candidate,
the candidates are ranked for the given dialogue state and the winner is printed.`,
	Example: `  arbor rank --state /main/booking "help me"
  arbor rank --state / --event start`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		state, _ := cmd.Flags().GetString("state")
		event, _ := cmd.Flags().GetString("event")
		plain, _ := cmd.Flags().GetBool("plain")
		showMetrics, _ := cmd.Flags().GetBool("metrics")
		scenarioPath, _ := cmd.Flags().GetString("scenario")

		req := domain.Request{Query: strings.Join(args, " "), Event: event}
		if !req.HasQuery() && !req.HasEvent() {
			return errors.New("nothing to rank: pass a query or --event")
		}

		reg := prometheus.NewRegistry()
		metrics, err := observability.NewMetrics(reg)
		if err != nil {
			return err
		}

		_, eng, err := loadScenario(scenarioPath, cfg, logger,
			arbor.WithLifecycleHooks(observability.LogHooks(logger)),
			arbor.WithLifecycleHooks(metrics.Hooks()),
		)
		if err != nil {
			return err
		}

		dialog := domain.DialogContext{CurrentState: state}
		candidates := eng.Candidates(req)
		ranked := eng.Rank(dialog, candidates)

		report := tui.Report{
			Position: dialog.Position().String(),
			Request:  req,
			Strategy: cfg.Selection.Strategy,
			Ranked:   ranked,
			Excluded: len(candidates) - len(ranked),
		}

		out := cmd.OutOrStdout()
		interactive := !plain && isTerminal(out)
		if interactive {
			tui.PrintBanner(out)
		}
		if err := tui.Print(out, report, interactive); err != nil {
			return err
		}

		if len(candidates) > 0 {
			// Runs the hooks; the ranking printed above is the same one.
			if _, err := eng.Select(cmd.Context(), dialog, candidates); err != nil {
				return err
			}
		}

		if showMetrics {
			if err := writeMetrics(cmd.ErrOrStderr(), reg); err != nil {
				return err
			}
		}

		if len(ranked) == 0 {
			return fmt.Errorf("%w for %s", domain.ErrNoActivation, report.Position)
		}
		return nil
	},
}

func init() {
	rankCmd.Flags().String("state", "/", "Current dialogue state")
	rankCmd.Flags().String("event", "", "Send a named event instead of a query")
	rankCmd.Flags().Bool("plain", false, "Disable styled output even on a terminal")
	rankCmd.Flags().Bool("metrics", false, "Dump the selection metrics to stderr")
	rootCmd.AddCommand(rankCmd)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
