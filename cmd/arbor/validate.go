package main

import (
	"fmt"

	"github.com/aretw0/arbor/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [scenario]",
	Short: "Check a scenario for invalid rules",
	Long:  `Compiles every activator of the scenario and reports all invalid patterns and declarations at once.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		path, _ := cmd.Flags().GetString("scenario")
		if !cmd.Flags().Changed("scenario") && len(args) > 0 {
			path = args[0]
		}

		sc, eng, err := loadScenario(path, cfg, logger)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		targets, err := sc.Targets()
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		if err := validator.ValidateScenario(sc); err != nil {
			if strict, _ := cmd.Flags().GetBool("strict"); strict {
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Scenario %q is valid! ✅ (%d activators, %d targets)\n",
			sc.Name, eng.Registry().Len(), len(targets))
		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("strict", false, "Treat unreachable rules and relative targets as errors")
	rootCmd.AddCommand(validateCmd)
}
