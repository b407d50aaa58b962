package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepalcal/bsdate/internal/errorutil"
	"github.com/nepalcal/bsdate/internal/locale"
	"github.com/nepalcal/bsdate/internal/nepalidate"
)

func execute(t *testing.T, configFile string, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"BSDATE_LOCALE", "BSDATE_FORMAT", "BSDATE_FIRST_DAY_OF_WEEK", "BSDATE_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	if configFile == "" {
		configFile = filepath.Join(t.TempDir(), "missing.toml")
	}

	root := newRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", configFile, "--log-level", "error"}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"tobs", []string{"tobs", "1986-01-01"}, "2042-09-17\n"},
		{"tobs pattern", []string{"tobs", "-f", "DDDD, MMMM D", "1986-01-01"}, "Wednesday, Poush 17\n"},
		{"tobs flexible", []string{"tobs", "--flexible", "Apr 13, 2024"}, "2081-01-01\n"},
		{"tobs nepali", []string{"--locale", "ne", "tobs", "2024-04-13"}, "२०८१-०१-०१\n"},
		{"toad", []string{"toad", "2081-01-01"}, "2024-04-13\n"},
		{"toad pattern", []string{"toad", "-f", "DDDD, MMMM D, YYYY", "2081-01-01"}, "Saturday, April 13, 2024\n"},
		{"format quoted", []string{"format", "2042-09-17", `"Y"MM-DD`}, "Y09-17\n"},
		{"format default", []string{"format", "2042/9/17"}, "2042-09-17\n"},
		{"add months clamps", []string{"add", "2080-04-32", "2", "month"}, "2080-06-30\n"},
		{"add years", []string{"add", "2081-12-31", "1", "year"}, "2082-12-30\n"},
		{"add years keeps day", []string{"add", "2080-12-30", "1", "year"}, "2081-12-30\n"},
		{"add days", []string{"add", "2080-12-30", "1", "day"}, "2081-01-01\n"},
		{"diff days", []string{"diff", "2080-12-30", "2081-01-01"}, "1\n"},
		{"diff months", []string{"diff", "2081-01-01", "2083-06-01", "month"}, "29\n"},
		{"range", []string{"range"}, "BS 1976-01-01 - 2100-12-31\nAD 1919-04-13 - 2044-04-12\n"},
		{"version", []string{"version"}, "bsdate 1.0.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToADToday(t *testing.T) {
	got, err := execute(t, "", "toad")
	require.NoError(t, err)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}\n$`, got)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"tobs bad shape", []string{"tobs", "1986/01/01"}, errorutil.ErrConversion},
		{"tobs out of range", []string{"tobs", "2050-01-01"}, errorutil.ErrRange},
		{"toad missing day", []string{"toad", "2080-12-31"}, errorutil.ErrConversion},
		{"format bad date", []string{"format", "2080-13-01"}, errorutil.ErrRange},
		{"add bad unit", []string{"add", "2081-01-01", "1", "week"}, errorutil.ErrInvalidArgument},
		{"add past table", []string{"add", "2100-01-01", "1", "year"}, errorutil.ErrRange},
		{"cal bad month", []string{"cal", "2081", "13"}, errorutil.ErrRange},
		{"fiscal past table", []string{"fiscal", "2100"}, errorutil.ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCalendarCommand(t *testing.T) {
	got, err := execute(t, "", "cal", "2081", "1")
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	assert.Equal(t, "       Baisakh 2081        ", lines[0])
	assert.Equal(t, "Sun Mon Tue Wed Thu Fri Sat", lines[1])
	assert.Equal(t, "                          1", lines[2])

	got, err = execute(t, "", "cal", "--first-day", "6", "2081", "1")
	require.NoError(t, err)
	lines = strings.Split(got, "\n")
	assert.Equal(t, "Sat Sun Mon Tue Wed Thu Fri", lines[1])
	assert.Equal(t, "  1   2   3   4   5   6   7", lines[2])
}

func TestCalendarWholeYear(t *testing.T) {
	got, err := execute(t, "", "cal", "2081")
	require.NoError(t, err)
	for _, month := range []string{"Baisakh 2081", "Asar 2081", "Chaitra 2081"} {
		assert.Contains(t, got, month)
	}
	assert.Equal(t, 12, strings.Count(got, "Sun Mon Tue"))
}

func TestFiscalCommand(t *testing.T) {
	got, err := execute(t, "", "fiscal", "2081")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Fiscal year 2081/82", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Q1  2081-04-01 - 2081-06-30  AD 2024-07-16 - "), lines[1])
	assert.True(t, strings.HasPrefix(lines[4], "Q4  2082-01-01 - 2082-03-32  AD 2025-04-14 - "), lines[4])
}

func TestInfoCommand(t *testing.T) {
	got, err := execute(t, "", "info", "2081-01-01")
	require.NoError(t, err)

	for _, want := range []string{
		"2081-01-01 (Saturday)",
		"2024-04-13",
		"Days in month:  31",
		"Leap year:      yes",
		"Quarter:        Q1 (2081-01-01 - 2081-03-31)",
		"Fiscal year:    2080/81 Q4 (2081-01-01 - 2081-03-31)",
		"Week:           2080-12-25 - 2081-01-01",
	} {
		assert.Contains(t, got, want)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[display]
format = "YYYY/MM/DD"
first_day_of_week = 1
`), 0644))

	got, err := execute(t, path, "tobs", "1986-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2042/09/17\n", got)

	got, err = execute(t, path, "info", "2081-01-01")
	require.NoError(t, err)
	assert.Contains(t, got, "Week:           2080/12/26 - 2081/01/02")
}

func TestMonthAliases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[display.month_aliases]
Asoja = "Aswin"
`), 0644))

	got, err := execute(t, path, "cal", "2081", "ASOJA")
	require.NoError(t, err)
	assert.Contains(t, got, "Aswin 2081")

	got, err = execute(t, path, "cal", "2081", "Saun")
	require.NoError(t, err)
	assert.Contains(t, got, "Shrawan 2081")

	require.NoError(t, os.WriteFile(path, []byte("[display.month_aliases]\nSaun = \"Bhadra\"\n"), 0644))
	_, err = execute(t, path, "range")
	var verr *errorutil.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestInvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[display]\nfirst_day_of_week = 9\n"), 0644))

	_, err := execute(t, path, "range")
	var verr *errorutil.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCalendarMonths(t *testing.T) {
	resolver, err := locale.NewMonthResolver(nil)
	require.NoError(t, err)
	today := nepalidate.MustNew(2081, 0, 1)

	months, err := calendarMonths([]string{"2081", "4"}, today, resolver)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{2081, 3}}, months)

	months, err = calendarMonths([]string{"2081", "saun"}, today, resolver)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{2081, 3}}, months)

	months, err = calendarMonths(nil, today, resolver)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{2081, 0}}, months)

	_, err = calendarMonths([]string{"x"}, today, resolver)
	assert.Error(t, err)

	_, err = calendarMonths([]string{"2081", "13"}, today, resolver)
	assert.Error(t, err)
}
