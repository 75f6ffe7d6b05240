package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/vigil/cmd/vigil/commands"
	"github.com/teranos/vigil/logger"
)

var rootCmd = &cobra.Command{
	Use:   "vigil",
	Short: "vigil - batch execution watchdog",
	Long: `vigil - nightly batch execution watchdog.

vigil reconciles the expected batch-job schedule against the execution
history recorded in the batch database and reports every job that did not
run, did not complete, or ran the wrong number of times.

Available commands:
  check    - Reconcile expected jobs against recorded executions
  schedule - Inspect and lint schedule files
  version  - Show version information

Examples:
  vigil check                          # Check yesterday and this morning
  vigil check --window Yesterday       # Check only the yesterday window
  vigil schedule lint batch.csv        # Lint a schedule file
  vigil schedule show batch.csv        # Show a schedule and derived checks`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(jsonOutput); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "Emit machine-readable JSON output")

	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.ScheduleCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
