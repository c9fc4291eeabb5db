package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/mergington-activities/internal/api"
	apiMiddleware "github.com/phrazzld/mergington-activities/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultMetricsPath = "/metrics"

// setupRouter creates and configures the application router with all routes and middleware.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	activityHandler := api.NewActivityHandler(app.activityService, app.logger)
	activityHandler.RegisterRoutes(r)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	if app.metricsRegistry != nil {
		path := app.config.Metrics.Path
		if path == "" {
			path = defaultMetricsPath
		}
		r.Method(http.MethodGet, path, promhttp.HandlerFor(app.metricsRegistry, promhttp.HandlerOpts{}))
	}

	return r
}
