// Package logger provides structured logging for bsdate on top of log/slog.
// Output goes to the console, to a dated log file, or both; log files are
// rotated by date and size and old files are pruned.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/nepalcal/bsdate/internal/errorutil"
)

// Config represents logging configuration
type Config struct {
	Enabled         bool   `toml:"enabled"`
	Directory       string `toml:"directory"`
	FilenamePattern string `toml:"filename_pattern"`
	Level           string `toml:"level"`
	MaxFiles        int    `toml:"max_files"`
	MaxSizeMB       int    `toml:"max_size_mb"`
	ConsoleOutput   bool   `toml:"console_output"`
}

const defaultFilenamePattern = "bsdate-%Y%m%d.log"

// Logger wraps slog.Logger with file management capabilities. The slog
// handler writes through Logger.Write so every record passes the rotation
// check.
type Logger struct {
	*slog.Logger
	config   Config
	console  io.Writer
	file     *os.File
	fileName string
	fileSize int64
	out      io.Writer
	mu       sync.Mutex
	now      func() time.Time
}

var (
	globalLogger *Logger
	globalMu     sync.Mutex
)

// Initialize creates the global logger. Calling it again replaces the
// previous logger and closes its file.
func Initialize(config Config) error {
	l, err := NewLogger(config)
	if err != nil {
		return err
	}

	globalMu.Lock()
	previous := globalLogger
	globalLogger = l
	globalMu.Unlock()

	if previous != nil {
		if err := previous.Close(); err != nil {
			errorutil.LogWarning(l.Logger, "close previous log file", err, slog.String("file", previous.FileName()))
		}
	}
	return nil
}

// Get returns the global logger, or a stderr logger at warn level when
// Initialize has not been called.
func Get() *Logger {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalLogger == nil {
		globalLogger = &Logger{
			Logger: slog.New(newHandler(os.Stderr, slog.LevelWarn)),
			config: Config{Level: "warn"},
		}
	}
	return globalLogger
}

// NewLogger creates a logger writing to stderr and, when enabled, a log file.
func NewLogger(config Config) (*Logger, error) {
	return newLogger(config, os.Stderr, time.Now)
}

func newLogger(config Config, console io.Writer, now func() time.Time) (*Logger, error) {
	l := &Logger{config: config, console: console, now: now}

	if config.Enabled {
		logDir := expandLogDirectory(config.Directory)
		if err := errorutil.EnsureDirectory(logDir, "create log directory"); err != nil {
			return nil, err
		}

		file, err := l.openLogFile()
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = file
	}
	l.out = l.writers()

	l.Logger = slog.New(newHandler(l, parseLogLevel(config.Level)))
	l.Debug("Logger initialized",
		slog.String("log_file", l.fileName),
		slog.String("level", config.Level),
		slog.Bool("console", config.ConsoleOutput))

	return l, nil
}

func newHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format("2006-01-02T15:04:05.000-07:00"))
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", filepath.Base(source.File), source.Line))
				}
			}
			return a
		},
	})
}

// writers returns the destinations for the current file. The console is used
// when requested or when there is nowhere else to write.
func (l *Logger) writers() io.Writer {
	var ws []io.Writer
	if l.config.ConsoleOutput || l.file == nil {
		ws = append(ws, l.console)
	}
	if l.file != nil {
		ws = append(ws, l.file)
	}
	return io.MultiWriter(ws...)
}

// openLogFile creates or opens the current log file
func (l *Logger) openLogFile() (*os.File, error) {
	fileName := generateLogFilename(l.config.FilenamePattern, l.now())
	filePath := filepath.Join(expandLogDirectory(l.config.Directory), fileName)

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	l.fileName = filePath
	l.fileSize = info.Size()
	return file, nil
}

// expandLogDirectory resolves the configured directory. Empty means
// ~/.bsdate/logs and a leading ~ is the home directory.
func expandLogDirectory(dir string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	switch {
	case dir == "":
		if home == "" {
			return "logs"
		}
		return filepath.Join(home, ".bsdate", "logs")
	case dir == "~":
		if home != "" {
			return home
		}
	case strings.HasPrefix(dir, "~/") || strings.HasPrefix(dir, `~\`):
		if home != "" {
			return filepath.Join(home, dir[2:])
		}
	}
	return dir
}

// generateLogFilename expands %Y %m %d %H %M in pattern for t.
func generateLogFilename(pattern string, t time.Time) string {
	if pattern == "" {
		pattern = defaultFilenamePattern
	}

	replacer := strings.NewReplacer(
		"%Y", fmt.Sprintf("%04d", t.Year()),
		"%m", fmt.Sprintf("%02d", t.Month()),
		"%d", fmt.Sprintf("%02d", t.Day()),
		"%H", fmt.Sprintf("%02d", t.Hour()),
		"%M", fmt.Sprintf("%02d", t.Minute()),
	)
	return replacer.Replace(pattern)
}

// parseLogLevel converts string level to slog.Level
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Write implements io.Writer for the slog handler, rotating first if needed.
func (l *Logger) Write(p []byte) (n int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkRotation(); err != nil {
		fmt.Fprintf(os.Stderr, "Log rotation error: %v\n", err)
	}

	n, err = l.out.Write(p)
	if l.file != nil {
		l.fileSize += int64(n)
	}
	return n, err
}

// FileName returns the path of the current log file, empty without one.
func (l *Logger) FileName() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fileName
}

// Close closes the log file
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.out = l.writers()
	return err
}

// LogCommandSummary records how a CLI command ended.
func (l *Logger) LogCommandSummary(startTime time.Time, command string, args []string, err error) {
	attrs := []any{
		slog.String("command", command),
		slog.String("args", strings.Join(args, " ")),
		slog.Duration("duration", time.Since(startTime)),
	}
	if err != nil {
		l.Warn("Command failed", append(attrs, slog.String("error", err.Error()))...)
		return
	}
	l.Debug("Command finished", attrs...)
}
