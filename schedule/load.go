package schedule

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/teranos/vigil/errors"
)

// Load parses the schedule file at path into its entries.
//
// The first row is a header and is skipped unconditionally. Every data row
// must carry at least the eight positional columns and a non-empty job
// name; hourly rows must carry an integer expected count. Any violation
// aborts the load - a half-read schedule would silently drop checks.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open schedule file %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Rows are validated positionally below; the reader must not reject
	// files whose rows carry trailing extra columns.
	r.FieldsPerRecord = -1

	// Skip header
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, errors.Newf("schedule file %s is empty", path)
		}
		return nil, errors.Wrapf(err, "failed to read schedule header from %s", path)
	}

	var entries []Entry
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read schedule row from %s", path)
		}
		line++

		if len(row) < minColumns {
			return nil, errors.Newf("schedule file %s line %d: expected %d columns, got %d",
				path, line, minColumns, len(row))
		}

		entry := Entry{
			JobName:         row[colJobName],
			Hourly:          row[colHourlyFlag] == flagYes,
			HourlyCount:     row[colHourlyCount],
			Daily:           row[colDailyFlag] == flagYes,
			SpecificDay:     row[colSpecificDayFlag] == flagYes,
			DayValues:       row[colSpecificDayValues],
			SpecificWeekday: row[colSpecificWeekdayFlag] == flagYes,
			WeekdayValues:   row[colSpecificWeekdayValues],
		}

		if entry.JobName == "" {
			return nil, errors.Newf("schedule file %s line %d: empty job name", path, line)
		}
		if entry.Hourly {
			if _, err := strconv.Atoi(entry.HourlyCount); err != nil {
				return nil, errors.Newf("schedule file %s line %d: hourly count %q for job %s is not an integer",
					path, line, entry.HourlyCount, entry.JobName)
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
