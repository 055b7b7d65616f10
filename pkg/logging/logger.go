// Package logging provides structured logging configuration using zerolog.
//
// Loggers are built per run and handed to components through their
// constructors. Nothing in this package touches zerolog's global logger or
// global level.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// LogLevel represents the logging level.
type LogLevel string

const (
	// LevelDebug logs debug messages and above.
	LevelDebug LogLevel = "debug"

	// LevelInfo logs info messages and above.
	LevelInfo LogLevel = "info"

	// LevelWarn logs warning messages and above.
	LevelWarn LogLevel = "warn"

	// LevelError logs error messages only.
	LevelError LogLevel = "error"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level to output.
	Level LogLevel

	// Pretty enables human-readable console output (default: false for JSON).
	Pretty bool

	// Output is the writer to output logs to (default: os.Stderr).
	Output io.Writer
}

// DefaultConfig returns a default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Pretty: false,
		Output: os.Stderr,
	}
}

// Setup builds the root logger for a scrape run.
func Setup(cfg Config) zerolog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: "2006-01-02 15:04:05"}
	}

	return zerolog.New(output).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

// parseLevel converts LogLevel to zerolog.Level.
func parseLevel(level LogLevel) zerolog.Level {
	switch strings.ToLower(string(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger derives a logger tagged with the given component name.
func NewLogger(root zerolog.Logger, component string) zerolog.Logger {
	return root.With().Str("component", component).Logger()
}

// Log Level Guidelines:
//
// Debug: Detailed information for debugging
//   - Every page fetch (url, status, bytes, duration)
//   - Every extracted product (brand)
//   - Every skipped product block ("missing attribute")
//
// Info: Normal operation events
//   - Page count discovered
//   - Batch fetch start/completion
//   - Output files written
//
// Warn: Warning conditions that don't prevent operation
//   - Pages that did not parse as HTML
//
// Error: Error conditions requiring attention
//   - Fetch failures (the run aborts)
//   - Pagination parse failures (the run aborts)
//   - Output write failures
//
// Context Fields:
//   - component: fetch, pagination, catalog, output, scraper
//   - url: page URL
//   - status_code: HTTP status code
//   - duration: request or batch duration
//   - page / block: indexes of a skipped product block
//   - total_pages: catalog page count
