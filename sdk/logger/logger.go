// Package logger provides a slog-based logger configured from the
// environment.
package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/rsalas/taskdeck/sdk/environment"
)

// Logger is a wrapper around the standard slog.Logger.
type Logger struct {
	*slog.Logger
}

// Level aliases so callers do not need to import slog directly.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// options holds all configurable settings for the logger.
type options struct {
	level      slog.Level
	output     io.Writer
	addSource  bool
	format     string // "json" or "text"
	timeFormat string // "RFC3339", "Unix", "UnixMilli", or custom format
}

// Options is the exportable configuration struct.
type Options struct {
	Level      string `env:"LOG_LEVEL" default:"INFO"`
	Output     string `env:"LOG_OUTPUT" default:"STDOUT"`
	Format     string `env:"LOG_FORMAT" default:"json"`
	TimeFormat string `env:"LOG_TIME_FORMAT" default:"RFC3339"`
}

// Option takes a config option and returns formatted config.
type Option func(*options)

func WithLevel(level string) Option {
	return func(o *options) {
		o.level = parseLevel(level)
	}
}

func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// NewDefault creates a logger with baked-in defaults, useful for tests and
// tooling that should not depend on the environment.
func NewDefault(opts ...Option) *Logger {
	options := Options{
		Level:      "INFO",
		Output:     "STDOUT",
		Format:     "json",
		TimeFormat: time.RFC3339,
	}
	return newLogger(options, opts...)
}

// NewStdLogger adapts a Logger to the standard library log.Logger, for
// consumers like http.Server that only speak *log.Logger.
func NewStdLogger(logger *Logger, level slog.Level) *log.Logger {
	return slog.NewLogLogger(logger.Logger.Handler(), level)
}

// NewFromEnv creates a logger configured from prefixed environment variables.
func NewFromEnv(prefix string, opts ...Option) (*Logger, error) {
	var options Options
	if err := environment.ParseEnvTags(prefix, &options); err != nil {
		return nil, fmt.Errorf("parsing logger config: %w", err)
	}
	return newLogger(options, opts...), nil
}

// newLogger creates a new Logger with the given config and applies options.
func newLogger(cfg Options, opts ...Option) *Logger {
	options := &options{
		level:      parseLevel(cfg.Level),
		output:     parseOutput(cfg.Output),
		timeFormat: cfg.TimeFormat,
		format:     cfg.Format,
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.output == nil {
		options.output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     options.level,
		AddSource: options.addSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && options.timeFormat != "" {
				switch options.timeFormat {
				case "Unix":
					return slog.Int64(slog.TimeKey, a.Value.Time().Unix())
				case "UnixMilli":
					return slog.Int64(slog.TimeKey, a.Value.Time().UnixMilli())
				case "RFC3339":
					return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
				case "RFC3339Nano":
					return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339Nano))
				default:
					// Treat as a custom layout string.
					return slog.String(slog.TimeKey, a.Value.Time().Format(options.timeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	switch options.format {
	case "text":
		handler = slog.NewTextHandler(options.output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(options.output, handlerOpts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// DebugContextf logs a debug message with formatting.
func (l *Logger) DebugContextf(ctx context.Context, format string, args ...any) {
	l.DebugContext(ctx, fmt.Sprintf(format, args...))
}

// InfoContextf logs an info message with formatting.
func (l *Logger) InfoContextf(ctx context.Context, format string, args ...any) {
	l.InfoContext(ctx, fmt.Sprintf(format, args...))
}

// WarnContextf logs a warning message with formatting.
func (l *Logger) WarnContextf(ctx context.Context, format string, args ...any) {
	l.WarnContext(ctx, fmt.Sprintf(format, args...))
}

// ErrorContextf logs an error message with formatting.
func (l *Logger) ErrorContextf(ctx context.Context, format string, args ...any) {
	l.ErrorContext(ctx, fmt.Sprintf(format, args...))
}
