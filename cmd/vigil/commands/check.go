package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/vigil/config"
	"github.com/teranos/vigil/db"
	"github.com/teranos/vigil/errors"
	"github.com/teranos/vigil/logger"
	"github.com/teranos/vigil/reconcile"
	"github.com/teranos/vigil/run"
	"github.com/teranos/vigil/schedule"
	"github.com/teranos/vigil/store"
)

// CheckCmd reconciles the expected schedule against recorded executions.
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Reconcile expected jobs against recorded executions",
	Long: `Reconcile the expected-job schedule against the execution history in
the batch database.

Two passes run by default: yesterday's full day against the main schedule,
and today 00:00-06:00 against the morning schedule. Every expected job is
checked for presence, completion, and (for hourly jobs) execution count.

A diagnostic line is printed per check, followed by the total failure
count. The command exits non-zero when any check fails, so schedulers and
alerting can key off the exit status.

Example:
  vigil check
  vigil check --schedule batch.csv --morning-schedule batchAMJobs.csv
  vigil check --window Today --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		schedulePath, _ := cmd.Flags().GetString("schedule")
		morningPath, _ := cmd.Flags().GetString("morning-schedule")
		window, _ := cmd.Flags().GetString("window")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		if schedulePath != "" {
			cfg.Schedule.Path = schedulePath
		}
		if morningPath != "" {
			cfg.Schedule.MorningPath = morningPath
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		windows, err := selectWindows(window)
		if err != nil {
			return err
		}

		entries, err := schedule.Load(cfg.Schedule.Path)
		if err != nil {
			return err
		}
		morningEntries := entries
		if cfg.MorningSchedulePath() != cfg.Schedule.Path {
			morningEntries, err = schedule.Load(cfg.MorningSchedulePath())
			if err != nil {
				return err
			}
		}

		database, err := db.Open(cfg, logger.Logger)
		if err != nil {
			return err
		}
		defer database.Close()

		runner := run.NewRunner(store.NewStore(database), logger.Logger)
		summary, err := runner.Run(run.Params{
			Schedule:        entries,
			MorningSchedule: morningEntries,
			Now:             time.Now(),
			Windows:         windows,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			output, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to marshal summary")
			}
			fmt.Println(string(output))
		} else {
			renderSummary(summary)
		}

		return summary.Err()
	},
}

func init() {
	CheckCmd.Flags().String("schedule", "", "Schedule file for the yesterday window (overrides config)")
	CheckCmd.Flags().String("morning-schedule", "", "Schedule file for the today window (overrides config)")
	CheckCmd.Flags().String("window", "", "Restrict to one window: Yesterday or Today (default both)")
}

// selectWindows maps the --window flag to the runner's window list.
func selectWindows(window string) ([]string, error) {
	switch window {
	case "":
		return nil, nil
	case run.WindowYesterday, run.WindowToday:
		return []string{window}, nil
	default:
		return nil, errors.Newf("unknown window %q (expected %s or %s)",
			window, run.WindowYesterday, run.WindowToday)
	}
}

// renderSummary prints one diagnostic line per evaluated check and the
// final failure count. The count is the last line on stdout, bare, so
// wrapper scripts can read it.
func renderSummary(summary *run.Summary) {
	for _, report := range summary.Reports {
		for _, result := range report.Results {
			renderResult(result)
		}
	}
	fmt.Println(summary.Failures)
}

func renderResult(result reconcile.Result) {
	switch result.Verdict {
	case reconcile.VerdictCompletedMatch:
		pterm.Printf("%s This job completed successfully: %s\n",
			pterm.LightGreen("✓"), result.JobName)
	case reconcile.VerdictNotLaunched:
		pterm.Printf("%s This job was not launched on %s: %s\n",
			pterm.LightRed("✗"), result.Window, result.JobName)
	case reconcile.VerdictCompletedMismatch:
		pterm.Printf("%s Job count mismatch for %s: Expected %s, Found %d\n",
			pterm.LightRed("✗"), result.JobName, result.Expected, result.Found)
	case reconcile.VerdictLaunchedNotCompleted:
		pterm.Printf("%s This job launched on %s but did not complete successfully: %s (status %s)\n",
			pterm.LightRed("✗"), result.Window, result.JobName, result.Status)
	}
}
