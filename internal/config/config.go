// Package config provides configuration management for bsdate. It loads a
// TOML file, fills unset values from defaults, applies BSDATE_* environment
// overrides and validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nepalcal/bsdate/internal/constants"
	"github.com/nepalcal/bsdate/internal/errorutil"
	"github.com/nepalcal/bsdate/internal/locale"
	"github.com/nepalcal/bsdate/internal/logger"
)

// Config represents the main configuration structure
type Config struct {
	Display  DisplayConfig  `toml:"display"`
	Calendar CalendarConfig `toml:"calendar"`
	Logging  logger.Config  `toml:"logging"`
}

// DisplayConfig controls how dates are printed.
type DisplayConfig struct {
	Locale string `toml:"locale"`
	Format string `toml:"format"`
	// FirstDayOfWeek is 0 for Sunday through 6 for Saturday. A pointer keeps
	// an explicit 0 in the file apart from an unset value.
	FirstDayOfWeek *int `toml:"first_day_of_week"`
	// MonthAliases maps extra spellings to English month names for the cal
	// command, e.g. Ashoj = "Aswin".
	MonthAliases map[string]string `toml:"month_aliases"`
}

// CalendarConfig holds the text/template sources for the month view.
type CalendarConfig struct {
	Header string `toml:"header"`
	Week   string `toml:"week"`
	Footer string `toml:"footer"`
}

// ConfigError represents configuration-related errors
type ConfigError struct {
	Field   string
	Message string
}

func (e ConfigError) Error() string {
	if e.Field != "" {
		return "config." + e.Field + ": " + e.Message
	}
	return e.Message
}

var (
	ErrFileNotFound  = errors.New("configuration file not found")
	ErrInvalidFormat = errors.New("invalid configuration file format")
)

// Default calendar templates. Cells are three runes wide and separated by a
// space, so a row is 27 runes.
const (
	DefaultHeaderTemplate = `{{center 27 (printf "%s %s" (monthName .Month) (digits .Year))}}
{{range $i, $d := .Weekdays}}{{if $i}} {{end}}{{pad 3 (dayName $d)}}{{end}}
`
	DefaultWeekTemplate = `{{range $i, $d := .Days}}{{if $i}} {{end}}{{if not $d.Current}}   {{else if $d.Today}}{{pad 2 (digits $d.Day)}}*{{else}}{{pad 3 (digits $d.Day)}}{{end}}{{end}}
`
	DefaultFooterTemplate = `{{if .Today}}
Today: {{.Today.Format "DDDD, MMMM D, YYYY"}}
{{end}}`
)

// DefaultConfig returns a Config struct with sensible default values
func DefaultConfig() *Config {
	firstDay := 0
	return &Config{
		Display: DisplayConfig{
			Locale:         "en",
			Format:         constants.DefaultBSPattern,
			FirstDayOfWeek: &firstDay,
		},
		Calendar: CalendarConfig{
			Header: DefaultHeaderTemplate,
			Week:   DefaultWeekTemplate,
			Footer: DefaultFooterTemplate,
		},
		Logging: logger.Config{
			Enabled:         false,
			Directory:       "",
			FilenamePattern: "bsdate-%Y%m%d.log",
			Level:           "warn",
			MaxFiles:        constants.DefaultMaxLogFiles,
			MaxSizeMB:       constants.DefaultMaxLogSizeMB,
			ConsoleOutput:   true,
		},
	}
}

// DefaultConfigPath returns the per-user configuration file location.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "bsdate.toml"
	}
	return filepath.Join(dir, "bsdate", "config.toml")
}

// LoadConfig reads and parses a TOML configuration file
// AIDEV-NOTE: values missing from the file keep their defaults, env overrides win over both
func LoadConfig(path string) (*Config, error) {
	if err := errorutil.ValidateFileExists(path, "load config"); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var loaded Config
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("%w: %s - %v", ErrInvalidFormat, path, err)
	}

	config := mergeWithDefaults(&loaded, DefaultConfig())
	if err := config.ApplyEnvironmentOverrides(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadOrDefault is LoadConfig that falls back to the defaults, with
// environment overrides applied, when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	config, err := LoadConfig(path)
	if errors.Is(err, ErrFileNotFound) {
		config = DefaultConfig()
		return config, config.ApplyEnvironmentOverrides()
	}
	return config, err
}

// FirstDay returns the configured first day of the week.
func (c *Config) FirstDay() int {
	if c.Display.FirstDayOfWeek == nil {
		return 0
	}
	return *c.Display.FirstDayOfWeek
}

// Locale resolves the configured locale tag.
func (c *Config) Locale() (locale.Locale, error) {
	return locale.Parse(c.Display.Locale)
}

// MonthResolver builds the month name resolver including configured aliases.
func (c *Config) MonthResolver() (*locale.MonthResolver, error) {
	return locale.NewMonthResolver(c.Display.MonthAliases)
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	return errorutil.ValidateConfig("bsdate", func(vb *errorutil.ValidationBuilder) *errorutil.ValidationBuilder {
		_, localeErr := c.Locale()
		_, aliasErr := c.MonthResolver()
		vb.Check("display.locale", c.Display.Locale, localeErr).
			Check("display.month_aliases", len(c.Display.MonthAliases), aliasErr).
			RequiredString("display.format", c.Display.Format).
			IntRange("display.first_day_of_week", c.FirstDay(), 0, constants.DaysPerWeek-1).
			RequiredString("calendar.week", c.Calendar.Week).
			OneOf("logging.level", c.Logging.Level, []string{"debug", "info", "warn", "warning", "error"})

		if c.Logging.Enabled {
			vb.Check("logging.filename_pattern", c.Logging.FilenamePattern,
				logger.ValidateFilenamePattern(c.Logging.FilenamePattern))
			vb.IntRange("logging.max_files", c.Logging.MaxFiles, 0, 365)
		}
		return vb
	})
}

// mergeWithDefaults takes a loaded config and merges it with default values
// AIDEV-NOTE: Only non-zero values from loaded config override defaults
func mergeWithDefaults(loaded, defaults *Config) *Config {
	result := *defaults

	if loaded.Display.Locale != "" {
		result.Display.Locale = loaded.Display.Locale
	}
	if loaded.Display.Format != "" {
		result.Display.Format = loaded.Display.Format
	}
	if loaded.Display.FirstDayOfWeek != nil {
		result.Display.FirstDayOfWeek = loaded.Display.FirstDayOfWeek
	}
	if len(loaded.Display.MonthAliases) > 0 {
		result.Display.MonthAliases = loaded.Display.MonthAliases
	}

	if loaded.Calendar.Header != "" {
		result.Calendar.Header = loaded.Calendar.Header
	}
	if loaded.Calendar.Week != "" {
		result.Calendar.Week = loaded.Calendar.Week
	}
	if loaded.Calendar.Footer != "" {
		result.Calendar.Footer = loaded.Calendar.Footer
	}

	// Booleans in [logging] are taken as written once the section sets anything.
	if loaded.Logging != (logger.Config{}) {
		result.Logging.Enabled = loaded.Logging.Enabled
		result.Logging.ConsoleOutput = loaded.Logging.ConsoleOutput
	}
	if loaded.Logging.Directory != "" {
		result.Logging.Directory = loaded.Logging.Directory
	}
	if loaded.Logging.FilenamePattern != "" {
		result.Logging.FilenamePattern = loaded.Logging.FilenamePattern
	}
	if loaded.Logging.Level != "" {
		result.Logging.Level = loaded.Logging.Level
	}
	if loaded.Logging.MaxFiles > 0 {
		result.Logging.MaxFiles = loaded.Logging.MaxFiles
	}
	if loaded.Logging.MaxSizeMB > 0 {
		result.Logging.MaxSizeMB = loaded.Logging.MaxSizeMB
	}

	return &result
}

// ApplyEnvironmentOverrides checks for BSDATE_* environment variables and
// overrides config values.
func (c *Config) ApplyEnvironmentOverrides() error {
	if envVal := os.Getenv("BSDATE_LOCALE"); envVal != "" {
		c.Display.Locale = envVal
	}
	if envVal := os.Getenv("BSDATE_FORMAT"); envVal != "" {
		c.Display.Format = envVal
	}
	if envVal := os.Getenv("BSDATE_FIRST_DAY_OF_WEEK"); envVal != "" {
		day, err := strconv.Atoi(strings.TrimSpace(envVal))
		if err != nil {
			return ConfigError{Field: "display.first_day_of_week", Message: fmt.Sprintf("BSDATE_FIRST_DAY_OF_WEEK %q is not a number", envVal)}
		}
		c.Display.FirstDayOfWeek = &day
	}
	if envVal := os.Getenv("BSDATE_LOG_LEVEL"); envVal != "" {
		c.Logging.Level = envVal
	}
	return nil
}

// SaveConfig writes a Config struct to a TOML file, creating its directory.
func SaveConfig(config *Config, path string) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to TOML: %w", err)
	}

	return errorutil.SafeWriteFile(path, data, "save config")
}
