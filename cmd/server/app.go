package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/mergington-activities/internal/config"
	"github.com/phrazzld/mergington-activities/internal/domain"
	"github.com/phrazzld/mergington-activities/internal/events"
	"github.com/phrazzld/mergington-activities/internal/platform/memory"
	"github.com/phrazzld/mergington-activities/internal/platform/metrics"
	"github.com/phrazzld/mergington-activities/internal/redact"
	"github.com/phrazzld/mergington-activities/internal/service"
	"github.com/phrazzld/mergington-activities/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	activityStore store.ActivityStore

	// Service interfaces
	activityService service.ActivityService

	// Event system
	eventEmitter *events.InMemoryEventEmitter

	// Metrics
	metricsRegistry *prometheus.Registry
	metricsRecorder *metrics.Recorder
}

// newApplication creates a new application instance with all dependencies initialized.
// The activity registry is seeded here and lives as long as the application.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	seed, err := loadSeed(cfg.Registry)
	if err != nil {
		return nil, describeSeedError(err)
	}

	activityStore, err := memory.NewActivityStore(seed, logger)
	if err != nil {
		return nil, describeSeedError(err)
	}
	app.activityStore = activityStore

	// Initialize event emitter
	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.EventHandlerFunc(app.logActivityEvent))

	if cfg.Metrics.Enabled {
		app.metricsRegistry = prometheus.NewRegistry()
		app.metricsRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		app.metricsRecorder = metrics.NewRecorder(app.metricsRegistry)
		app.metricsRecorder.Prime(seed)
		app.eventEmitter.RegisterHandler(app.metricsRecorder)
		logger.Info("Metrics enabled", "path", cfg.Metrics.Path)
	}

	app.activityService, err = service.NewActivityService(app.activityStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity service: %w", err)
	}

	logger.Info("Application initialized successfully", "activity_count", len(seed))
	return app, nil
}

// loadSeed returns the activities the registry starts with.
func loadSeed(cfg config.RegistryConfig) ([]*domain.Activity, error) {
	if cfg.SeedFile == "" {
		return memory.DefaultSeed(), nil
	}

	return memory.LoadSeedFile(cfg.SeedFile)
}

// describeSeedError names the seed problem an operator has to fix.
func describeSeedError(err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fmt.Errorf("invalid activity seed: %w", err)
	case store.IsDuplicateError(err):
		return fmt.Errorf("activity seed lists an activity twice: %w", err)
	default:
		return fmt.Errorf("failed to load activity seed: %w", err)
	}
}

// logActivityEvent records every participant change at debug level.
func (app *application) logActivityEvent(ctx context.Context, event *events.ActivityEvent) error {
	app.logger.DebugContext(ctx, "activity event",
		"event_id", event.ID,
		"event_type", event.Type,
		"activity", event.Activity,
		"email", redact.Email(event.Email),
		"participant_count", event.Participants)
	return nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
// The registry is not persisted; its state is dropped with the process.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
