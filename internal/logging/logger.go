package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	var output io.Writer = os.Stderr

	switch cfg.Format {
	case "console":
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: cfg.TimeFormat,
		}
	case "json":
		// JSON is the default zerolog format
		output = os.Stderr
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromConfigValues creates a logger from plain level/format strings,
// falling back to defaults for unrecognized values. The level is applied
// process-wide so a later SetLevel takes effect without rebuilding loggers.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = zerolog.TraceLevel
	switch format {
	case "json", "console":
		cfg.Format = format
	}
	zerolog.SetGlobalLevel(parseLevel(level))
	return New(cfg)
}

// SetLevel adjusts the process-wide log level. Used when the configuration
// file changes while the server is running.
func SetLevel(level string) {
	zerolog.SetGlobalLevel(parseLevel(level))
}

// NewFromEnv creates a logger based on environment variables
// COMBOBUILDER_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// COMBOBUILDER_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(
		os.Getenv("COMBOBUILDER_LOG_LEVEL"),
		os.Getenv("COMBOBUILDER_LOG_FORMAT"),
	)
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
