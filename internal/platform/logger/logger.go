// Package logger provides structured logging functionality for the application.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/mergington-activities/internal/config"
)

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger with the
// appropriate log level and sets it as the default logger for the application.
//
// It accepts a ServerConfig containing the log level setting and returns the
// configured logger and any error encountered during setup.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	return setup(cfg, os.Stdout, os.Stderr)
}

func setup(cfg config.ServerConfig, out, warnOut io.Writer) (*slog.Logger, error) {
	if out == nil {
		return nil, fmt.Errorf("log output writer cannot be nil")
	}

	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		// Use a temporary text logger so the warning is visible even before
		// the JSON logger exists.
		tmpLogger := slog.New(slog.NewTextHandler(warnOut, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	logger := slog.New(slog.NewJSONHandler(out, opts))

	// Allows using the slog package functions directly (slog.Info, slog.Error, etc.)
	slog.SetDefault(logger)

	return logger, nil
}

// ParseLevel converts a case-insensitive level name to a slog.Level.
// Unknown names return slog.LevelInfo together with an error.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}
