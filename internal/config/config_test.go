package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepalcal/bsdate/internal/errorutil"
)

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"BSDATE_LOCALE", "BSDATE_FORMAT", "BSDATE_FIRST_DAY_OF_WEEK", "BSDATE_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "en", cfg.Display.Locale)
	assert.Equal(t, "YYYY-MM-DD", cfg.Display.Format)
	assert.Equal(t, 0, cfg.FirstDay())
	assert.Equal(t, DefaultWeekTemplate, cfg.Calendar.Week)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigMergesDefaults(t *testing.T) {
	clearEnv(t)
	path := createTempConfigFile(t, `
[display]
locale = "ne-NP"
first_day_of_week = 1

[calendar]
week = "{{range .Days}}{{.Day}} {{end}}\n"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "ne-NP", cfg.Display.Locale)
	assert.Equal(t, 1, cfg.FirstDay())
	assert.Equal(t, "YYYY-MM-DD", cfg.Display.Format, "unset format keeps the default")
	assert.Equal(t, "{{range .Days}}{{.Day}} {{end}}\n", cfg.Calendar.Week)
	assert.Equal(t, DefaultHeaderTemplate, cfg.Calendar.Header)
	assert.Equal(t, "warn", cfg.Logging.Level)

	loc, err := cfg.Locale()
	require.NoError(t, err)
	assert.True(t, loc.Localized())
}

func TestLoadConfigExplicitSunday(t *testing.T) {
	clearEnv(t)
	path := createTempConfigFile(t, "[display]\nfirst_day_of_week = 0\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Display.FirstDayOfWeek)
	assert.Equal(t, 0, cfg.FirstDay())
}

func TestLoadConfigLoggingSection(t *testing.T) {
	clearEnv(t)
	path := createTempConfigFile(t, `
[logging]
enabled = true
level = "debug"
console_output = false
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Logging.Enabled)
	assert.False(t, cfg.Logging.ConsoleOutput)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "bsdate-%Y%m%d.log", cfg.Logging.FilenamePattern)
	assert.Equal(t, 7, cfg.Logging.MaxFiles)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrFileNotFound)

	path := createTempConfigFile(t, "[display\nlocale = ")
	_, err = LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = LoadOrDefault(t.TempDir())
	var fileErr *errorutil.FileOpError
	assert.ErrorAs(t, err, &fileErr, "a directory is not a missing file")
}

func TestLoadOrDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("BSDATE_FORMAT", "YYYY/MM/DD")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "YYYY/MM/DD", cfg.Display.Format)
	assert.Equal(t, "en", cfg.Display.Locale)
}

func TestEnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BSDATE_LOCALE", "ne")
	t.Setenv("BSDATE_FORMAT", "DDDD")
	t.Setenv("BSDATE_FIRST_DAY_OF_WEEK", " 6 ")
	t.Setenv("BSDATE_LOG_LEVEL", "debug")

	path := createTempConfigFile(t, "[display]\nlocale = \"en\"\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "ne", cfg.Display.Locale)
	assert.Equal(t, "DDDD", cfg.Display.Format)
	assert.Equal(t, 6, cfg.FirstDay())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestEnvironmentOverrideBadNumber(t *testing.T) {
	clearEnv(t)
	t.Setenv("BSDATE_FIRST_DAY_OF_WEEK", "monday")

	err := DefaultConfig().ApplyEnvironmentOverrides()
	var cfgErr ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "display.first_day_of_week", cfgErr.Field)
}

func TestValidate(t *testing.T) {
	seven := 7

	tests := []struct {
		name   string
		modify func(*Config)
		fields []string
	}{
		{"defaults", func(*Config) {}, nil},
		{"bad locale", func(c *Config) { c.Display.Locale = "not a tag!" }, []string{"display.locale"}},
		{"empty format", func(c *Config) { c.Display.Format = " " }, []string{"display.format"}},
		{"first day", func(c *Config) { c.Display.FirstDayOfWeek = &seven }, []string{"display.first_day_of_week"}},
		{"no week template", func(c *Config) { c.Calendar.Week = "" }, []string{"calendar.week"}},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, []string{"logging.level"}},
		{"month alias target", func(c *Config) {
			c.Display.MonthAliases = map[string]string{"harvest": "Octember"}
		}, []string{"display.month_aliases"}},
		{"month alias conflict", func(c *Config) {
			c.Display.MonthAliases = map[string]string{"jeth": "Asar"}
		}, []string{"display.month_aliases"}},
		{"filename pattern", func(c *Config) {
			c.Logging.Enabled = true
			c.Logging.FilenamePattern = "logs/bsdate.log"
		}, []string{"logging.filename_pattern"}},
		{"several", func(c *Config) {
			c.Display.Format = ""
			c.Logging.Level = "loud"
		}, []string{"display.format", "logging.level"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr *errorutil.ValidationError
			require.True(t, errors.As(err, &verr), "error %v is not a ValidationError", err)
			var got []string
			for _, fe := range verr.Errors {
				got = append(got, fe.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Display.Locale = "ne"
	monday := 1
	cfg.Display.FirstDayOfWeek = &monday

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "ne", loaded.Display.Locale)
	assert.Equal(t, 1, loaded.FirstDay())
	assert.Equal(t, cfg.Calendar, loaded.Calendar)
	assert.Equal(t, cfg.Logging, loaded.Logging)

	assert.Error(t, SaveConfig(nil, path))
}
