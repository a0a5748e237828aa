package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/activator"
	"github.com/aretw0/arbor/pkg/config"
	"github.com/aretw0/arbor/pkg/scenario"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arbor",
	Short: "Arbor selects which dialogue rule fires for an input",
	Long: `Arbor matches user input against the rules of a scenario and ranks the
candidates by confidence and by their distance from the current dialogue state.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFile, "Engine configuration file")
	rootCmd.PersistentFlags().StringP("scenario", "s", "scenario.yaml", "Scenario file declaring the activators")
	rootCmd.PersistentFlags().String("log-level", "", "Override the configured log level (debug, info, warn, error)")
}

// setup loads the configuration and builds the logger shared by the commands.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logging.New(level, cfg.Log.Format), nil
}

// loadScenario reads a scenario file and builds an engine over its activators.
func loadScenario(path string, cfg config.Config, logger *slog.Logger, opts ...arbor.Option) (*scenario.Scenario, *arbor.Engine, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, nil, err
	}

	regexOpts, err := cfg.RegexOptions()
	if err != nil {
		return nil, nil, err
	}
	regexOpts = append(regexOpts, activator.WithLogger(logger))

	reg, err := scenario.Build(sc, scenario.WithRegexOptions(regexOpts...))
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	strategy, err := cfg.Strategy()
	if err != nil {
		return nil, nil, err
	}

	base := []arbor.Option{
		arbor.WithRegistry(reg),
		arbor.WithStrategy(strategy),
		arbor.WithTopN(cfg.Selection.TopN),
		arbor.WithLogger(logger),
	}
	eng, err := arbor.New(append(base, opts...)...)
	if err != nil {
		return nil, nil, err
	}
	return sc, eng, nil
}
