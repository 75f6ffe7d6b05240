package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/vigil/errors"
	"github.com/teranos/vigil/schedule"
)

// ScheduleCmd groups the schedule-file inspection commands.
var ScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Inspect and lint schedule files",
	Long: `Inspect and lint expected-job schedule files.

A schedule file is comma-separated with a header row and eight positional
columns: job name, hourly flag, hourly count, daily flag, specific-day
flag, day values, specific-weekday flag, weekday values. Flags hold "YES"
when the category applies.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// ScheduleLintCmd reports schedule-file problems that the loader accepts
// but an operator probably did not intend.
var ScheduleLintCmd = &cobra.Command{
	Use:   "lint <file>",
	Short: "Lint a schedule file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := schedule.Load(args[0])
		if err != nil {
			return err
		}

		findings := lintEntries(entries)
		for _, finding := range findings {
			pterm.Printf("%s %s\n", pterm.Yellow("!"), finding)
		}

		fmt.Printf("%d entries, %d findings\n", len(entries), len(findings))
		if len(findings) > 0 {
			return errors.Newf("schedule has %d lint findings", len(findings))
		}
		return nil
	},
}

// ScheduleShowCmd renders a schedule file and its derived checks.
var ScheduleShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Show a schedule file and its derived checks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := schedule.Load(args[0])
		if err != nil {
			return err
		}

		rows := pterm.TableData{
			{"Job", "Hourly", "Count", "Daily", "Days", "Weekdays"},
		}
		for _, e := range entries {
			rows = append(rows, []string{
				e.JobName,
				yesNo(e.Hourly),
				e.HourlyCount,
				yesNo(e.Daily),
				valueList(e.SpecificDay, e.DayValues),
				valueList(e.SpecificWeekday, e.WeekdayValues),
			})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
			return err
		}

		fmt.Printf("checks: %d hourly, %d daily, %d specific-day, %d specific-weekday\n",
			len(schedule.HourlyChecks(entries)),
			len(schedule.DailyChecks(entries)),
			len(schedule.DayChecks(entries)),
			len(schedule.WeekdayChecks(entries)),
		)
		return nil
	},
}

func init() {
	ScheduleCmd.AddCommand(ScheduleLintCmd)
	ScheduleCmd.AddCommand(ScheduleShowCmd)
}

// lintEntries returns one human-readable finding per suspicious entry.
func lintEntries(entries []schedule.Entry) []string {
	var findings []string

	seen := make(map[string]int)
	for _, e := range entries {
		seen[e.JobName]++
	}
	for _, e := range entries {
		if seen[e.JobName] > 1 {
			findings = append(findings,
				fmt.Sprintf("job %s appears %d times", e.JobName, seen[e.JobName]))
			seen[e.JobName] = 1 // report each duplicate group once
		}
	}

	for _, e := range entries {
		if !e.Hourly && !e.Daily && !e.SpecificDay && !e.SpecificWeekday {
			findings = append(findings,
				fmt.Sprintf("job %s has no category flag set and will never be checked", e.JobName))
		}
		if e.SpecificDay && e.DayValues == "" {
			findings = append(findings,
				fmt.Sprintf("job %s has the specific-day flag but no day values", e.JobName))
		}
		if e.SpecificDay {
			for _, check := range schedule.DayChecks([]schedule.Entry{e}) {
				if _, err := strconv.Atoi(check.Condition); err != nil && check.Condition != "" {
					findings = append(findings,
						fmt.Sprintf("job %s has non-numeric day value %q", e.JobName, check.Condition))
				}
			}
		}
		if e.SpecificWeekday && e.WeekdayValues == "" {
			findings = append(findings,
				fmt.Sprintf("job %s has the specific-weekday flag but no weekday values", e.JobName))
		}
	}

	return findings
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return ""
}

func valueList(flag bool, values string) string {
	if !flag {
		return ""
	}
	if values == "" {
		return "(none)"
	}
	return values
}
