package errorutil

import (
	"fmt"
	"log/slog"
)

// LogAndWrap logs an error with structured context and returns it wrapped
// with the operation name.
func LogAndWrap(logger *slog.Logger, operation string, err error, attrs ...slog.Attr) error {
	if logger == nil || err == nil {
		return err
	}

	logger.Error(operation+" failed", toArgs(err, attrs)...)
	return fmt.Errorf("%s: %w", operation, err)
}

// LogWarning logs a non-fatal error as a warning without wrapping it.
func LogWarning(logger *slog.Logger, operation string, err error, attrs ...slog.Attr) {
	if logger == nil || err == nil {
		return
	}

	logger.Warn("Non-fatal error in "+operation, toArgs(err, attrs)...)
}

// LogDebug records a failure that is returned to the caller anyway, so it is
// only interesting when tracing.
func LogDebug(logger *slog.Logger, operation string, err error, attrs ...slog.Attr) {
	if logger == nil || err == nil {
		return
	}

	logger.Debug(operation+" failed", toArgs(err, attrs)...)
}

func toArgs(err error, attrs []slog.Attr) []any {
	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.String("error", err.Error()))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	return args
}

// DateContext returns the attributes describing a date input.
func DateContext(input string) []slog.Attr {
	if input == "" {
		return nil
	}
	return []slog.Attr{slog.String("input", input)}
}

// ConfigContext returns the attributes describing a configuration file.
func ConfigContext(configFile string) []slog.Attr {
	if configFile == "" {
		return nil
	}
	return []slog.Attr{slog.String("config_file", configFile)}
}
