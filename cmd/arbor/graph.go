package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [query...]",
	Short: "Export the state tree visualization",
	Long: `Outputs a Mermaid diagram (graph TD) of the states targeted by the scenario.
With a query (or --event) the candidates, the current state and the winner are highlighted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		scenarioPath, _ := cmd.Flags().GetString("scenario")
		sc, eng, err := loadScenario(scenarioPath, cfg, logger)
		if err != nil {
			return err
		}

		targets, err := sc.Targets()
		if err != nil {
			return err
		}

		var overlay *graph.GraphOverlay
		state, _ := cmd.Flags().GetString("state")
		event, _ := cmd.Flags().GetString("event")
		req := domain.Request{Query: strings.Join(args, " "), Event: event}

		if req.HasQuery() || req.HasEvent() || cmd.Flags().Changed("state") {
			dialog := domain.DialogContext{CurrentState: state}
			overlay = &graph.GraphOverlay{Current: dialog.Position().String()}

			candidates := eng.Candidates(req)
			for _, c := range candidates {
				if c.HasTarget() {
					overlay.Candidates = append(overlay.Candidates, c.Target)
				}
			}
			if len(candidates) > 0 {
				if winner, err := eng.Select(cmd.Context(), dialog, candidates); err == nil {
					overlay.Winner = winner.Target
				}
			}
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(targets, overlay))
		return nil
	},
}

func init() {
	graphCmd.Flags().String("state", "/", "Current dialogue state to highlight")
	graphCmd.Flags().String("event", "", "Highlight the candidates of a named event")
	rootCmd.AddCommand(graphCmd)
}
