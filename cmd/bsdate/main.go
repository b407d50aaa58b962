// Command bsdate converts between the Gregorian and Bikram Sambat calendars,
// formats BS dates and prints BS month calendars and fiscal quarters.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nepalcal/bsdate/internal/config"
	"github.com/nepalcal/bsdate/internal/errorutil"
	"github.com/nepalcal/bsdate/internal/formatter"
	"github.com/nepalcal/bsdate/internal/locale"
	"github.com/nepalcal/bsdate/internal/logger"
	"github.com/nepalcal/bsdate/internal/template"
)

const version = "1.0.0"

// app carries the state shared by all subcommands once the persistent
// flags and configuration are resolved.
type app struct {
	configFile string
	localeTag  string
	logLevel   string

	cfg    *config.Config
	locale locale.Locale
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "bsdate",
		Short:        "Bikram Sambat calendar tool",
		Long:         "Convert between AD and BS dates, format BS dates and print BS calendars and fiscal quarters.",
		SilenceUsage: true,
		Version:      version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Path to the configuration file (default "+config.DefaultConfigPath()+")")
	flags.StringVar(&a.localeTag, "locale", "", "Output locale, en or ne")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	root.AddCommand(
		a.newToBSCommand(),
		a.newToADCommand(),
		a.newFormatCommand(),
		a.newInfoCommand(),
		a.newAddCommand(),
		a.newDiffCommand(),
		a.newCalendarCommand(),
		a.newFiscalCommand(),
		a.newRangeCommand(),
		newVersionCommand(),
	)
	return root
}

// setup loads configuration, applies flag overrides and starts logging.
func (a *app) setup() error {
	path := a.configFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return err
	}
	if a.localeTag != "" {
		cfg.Display.Locale = a.localeTag
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return errorutil.LogAndWrap(logger.Get().Logger, "validate configuration", err, errorutil.ConfigContext(path)...)
	}
	if err := template.ValidateTemplates(cfg.Calendar); err != nil {
		return fmt.Errorf("calendar templates: %w", err)
	}
	if err := logger.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	a.cfg = cfg
	a.locale, err = cfg.Locale()
	return err
}

// pattern returns the explicit pattern or the configured one, switched to
// Devanagari letters for the Nepali locale.
func (a *app) pattern(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if a.locale.Localized() {
		return formatter.Localize(a.cfg.Display.Format)
	}
	return a.cfg.Display.Format
}

// run wraps a command body so its outcome is logged.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		err := fn(cmd, args)
		logger.Get().LogCommandSummary(start, cmd.Name(), args, err)
		return err
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the bsdate version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bsdate %s\n", version)
		},
	}
}
