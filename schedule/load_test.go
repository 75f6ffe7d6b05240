package schedule

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "job_name,hourly,hourly_count,daily,specific_day,day_values,specific_weekday,weekday_values\n"

func writeSchedule(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeSchedule(t, header+
		"ingest-orders,YES,24,,,,,\n"+
		"nightly-report,,,YES,,,,\n"+
		"month-close,,,,YES,\"1,15\",,\n"+
		"weekly-digest,,,,,,YES,Monday\n")

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, "ingest-orders", entries[0].JobName)
	assert.True(t, entries[0].Hourly)
	assert.Equal(t, "24", entries[0].HourlyCount)
	assert.False(t, entries[0].Daily)

	assert.True(t, entries[1].Daily)
	assert.False(t, entries[1].Hourly)

	assert.True(t, entries[2].SpecificDay)
	assert.Equal(t, "1,15", entries[2].DayValues)

	assert.True(t, entries[3].SpecificWeekday)
	assert.Equal(t, "Monday", entries[3].WeekdayValues)
}

func TestLoadSkipsHeaderUnconditionally(t *testing.T) {
	// The header row is positionally identical to a data row; it must
	// never surface as an entry.
	path := writeSchedule(t, header+"only-job,,,YES,,,,\n")

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "only-job", entries[0].JobName)
}

func TestLoadFlagMustBeExactlyYES(t *testing.T) {
	path := writeSchedule(t, header+
		"lower,yes,3,,,,,\n"+
		"padded,YES ,3,,,,,\n")

	entries, err := Load(path)
	require.NoError(t, err)
	assert.False(t, entries[0].Hourly)
	assert.False(t, entries[1].Hourly)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open schedule file")
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeSchedule(t, "")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadTooFewColumns(t *testing.T) {
	path := writeSchedule(t, header+"short-row,YES,4\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 8 columns")
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadEmptyJobName(t *testing.T) {
	path := writeSchedule(t, header+",YES,4,,,,,\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty job name")
}

func TestLoadNonIntegerHourlyCount(t *testing.T) {
	path := writeSchedule(t, header+"bad-count,YES,often,,,,,\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an integer")
	assert.Contains(t, err.Error(), "bad-count")
}

func TestLoadHourlyCountOnlyValidatedWhenFlagSet(t *testing.T) {
	// A stray value in the count column of a non-hourly row is inert.
	path := writeSchedule(t, header+"daily-job,,n/a,YES,,,,\n")
	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Daily)
}
