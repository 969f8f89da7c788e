package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/timesheet-backend/internal/config"
	"github.com/heartmarshall/timesheet-backend/internal/transport/middleware"
)

// RouterDeps bundles everything NewRouter mounts.
type RouterDeps struct {
	TimeEntries *TimeEntryHandler
	Reports     *ReportHandler
	Health      *HealthHandler
	// RateLimiter throttles mutating routes. Nil or a zero
	// WritesPerMinute leaves them unthrottled.
	RateLimiter *middleware.RateLimiter
	Logger      *slog.Logger
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
}

// NewRouter builds the HTTP handler for the whole API.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(
		middleware.RequestID,
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORS(deps.CORS),
	))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", deps.Health.Live)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/health", deps.Health.Health)

	var limit middleware.Middleware
	if deps.RateLimiter != nil && deps.RateLimit.WritesPerMinute > 0 {
		limit = deps.RateLimiter.Limit(deps.RateLimit.WritesPerMinute)
	}
	writes := middleware.Chain(limit)

	te := deps.TimeEntries
	r.Route("/api", func(r chi.Router) {
		r.Route("/time-entries", func(r chi.Router) {
			r.Get("/", te.List)
			r.With(writes).Post("/", te.Create)
			r.Get("/{id}", te.Get)
			r.With(writes).Put("/{id}", te.Update)
			r.With(writes).Patch("/{id}", te.Update)
			r.With(writes).Delete("/{id}", te.Delete)
		})
		r.Get("/audit-logs/{timeEntryId}", te.AuditTrail)
		r.Get("/reports/summary", deps.Reports.Summary)
	})

	return r
}
