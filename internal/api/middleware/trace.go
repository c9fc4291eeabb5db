// Package middleware contains HTTP middleware shared by all API routes.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/mergington-activities/internal/api/shared"
	"github.com/phrazzld/mergington-activities/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that adds a trace ID to the request
// context together with a logger annotated with it.
// It should be applied early in the middleware chain to ensure that all
// subsequent handlers have access to the trace ID.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
