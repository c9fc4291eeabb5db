// Package main implements the entry point for the Mergington activities
// server, which lets students browse extracurricular activities and sign up
// or unregister by email.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/mergington-activities/internal/config"
	"github.com/phrazzld/mergington-activities/internal/platform/logger"
)

// main is the entry point for the server. It loads configuration, sets up
// logging, builds the application and serves HTTP until interrupted.
func main() {
	cfg, l, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(cfg, l)
	if err != nil {
		l.Error("Failed to build application", "error", err)
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		l.Error("Server stopped with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up the logger.
// Returns the loaded config, the logger and any initialization error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"metrics_enabled", cfg.Metrics.Enabled)

	if cfg.Registry.SeedFile != "" {
		l.Debug("Registry configuration", "seed_file_present", true)
	}

	return cfg, l, nil
}
