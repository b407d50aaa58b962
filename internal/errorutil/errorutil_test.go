package errorutil

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateErrorsMatchSentinels(t *testing.T) {
	cause := errors.New("bad digit")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{"format", &FormatError{Input: "20x1", Expected: "YYYY-MM-DD", Err: cause}, ErrFormat,
			`invalid date format "20x1", expected YYYY-MM-DD: bad digit`},
		{"range", NewRangeError("month", 13, 1, 12), ErrRange,
			"month 13 out of range, must be between 1 - 12"},
		{"range message", &RangeError{Field: "day", Msg: "day 32 does not exist in 2081 Baisakh"}, ErrRange,
			"day 32 does not exist in 2081 Baisakh"},
		{"argument", &InvalidArgumentError{Argument: "unit", Value: "week", Msg: "use day, month or year"}, ErrInvalidArgument,
			"invalid unit week: use day, month or year"},
		{"argument bare", &InvalidArgumentError{Argument: "weekday", Value: 7}, ErrInvalidArgument,
			"invalid weekday 7"},
		{"conversion", &ConversionError{Op: "AD to BS", Input: "1900-01-01"}, ErrConversion,
			`failed to convert AD to BS "1900-01-01"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestConversionErrorReachesCause(t *testing.T) {
	err := error(&ConversionError{Op: "BS to AD", Input: "2200-01-01", Err: NewRangeError("year", 2200, 1976, 2100)})

	assert.ErrorIs(t, err, ErrConversion)
	assert.ErrorIs(t, err, ErrRange)

	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 2200, rangeErr.Value)
	assert.Contains(t, err.Error(), "year 2200 out of range")
}

func TestValidationBuilder(t *testing.T) {
	err := ValidateConfig("bsdate", func(vb *ValidationBuilder) *ValidationBuilder {
		return vb.RequiredString("display.format", "  ").
			IntRange("display.first_day_of_week", 3, 0, 6).
			OneOf("logging.level", "WARN", []string{"debug", "warn"}).
			OneOf("logging.level", "loud", []string{"debug", "warn"}).
			Check("display.locale", "xx!", errors.New("bad tag")).
			Check("display.locale", "en", nil)
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "bsdate configuration", verr.Context)
	require.Len(t, verr.Errors, 3)
	assert.Equal(t, "display.format", verr.Errors[0].Field)
	assert.Equal(t, "logging.level", verr.Errors[1].Field)
	assert.Equal(t, "display.locale", verr.Errors[2].Field)
	assert.Equal(t, "bsdate configuration validation failed: display.format: is required; "+
		"logging.level: must be one of: debug, warn; display.locale: bad tag", err.Error())
}

func TestValidationBuilderClean(t *testing.T) {
	vb := NewValidationBuilder("empty")
	assert.NoError(t, vb.RequiredString("a", "x").IntRange("b", 0, 0, 6).Build())
}

func TestFileOps(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	require.NoError(t, SafeWriteFile(path, []byte("x"), "save config"))
	assert.NoError(t, ValidateFileExists(path, "load config"))

	err := ValidateFileExists(filepath.Join(dir, "missing"), "load config")
	assert.ErrorIs(t, err, os.ErrNotExist)

	var fileErr *FileOpError
	require.ErrorAs(t, ValidateFileExists(dir, "load config"), &fileErr)
	assert.Equal(t, "load config", fileErr.Operation)

	assert.Error(t, EnsureDirectory(path, "create log directory"), "a file is not a directory")
	assert.Error(t, ValidateFileExists("", "load config"))
}

func TestLogHelpers(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cause := errors.New("boom")

	err := LogAndWrap(log, "validate configuration", cause, ConfigContext("/tmp/c.toml")...)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "validate configuration: boom", err.Error())

	LogWarning(log, "close previous log file", cause)
	LogDebug(log, "convert AD to BS", cause, DateContext("1900-01-01")...)

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "config_file=/tmp/c.toml")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "input=1900-01-01")
	assert.Equal(t, 3, strings.Count(out, "error=boom"))

	assert.Nil(t, LogAndWrap(log, "noop", nil))
	assert.Nil(t, DateContext(""))
	assert.Nil(t, ConfigContext(""))
}
