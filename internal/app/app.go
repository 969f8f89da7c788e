package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/timesheet-backend/internal/config"
	"github.com/heartmarshall/timesheet-backend/internal/service/audit"
	"github.com/heartmarshall/timesheet-backend/internal/service/report"
	"github.com/heartmarshall/timesheet-backend/internal/service/timeentry"
	"github.com/heartmarshall/timesheet-backend/internal/transport/middleware"
	"github.com/heartmarshall/timesheet-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// configured storage, wires services into the HTTP router and serves until
// ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage_driver", cfg.Storage.Driver),
	)

	storage, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer storage.Close()

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.WritesPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	handler := NewHandler(cfg, storage, limiter, logger)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// NewHandler wires services over storage and returns the API router.
func NewHandler(cfg *config.Config, storage *Storage, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	recorder := audit.NewRecorder(logger, storage.Audit, nil)
	entries := timeentry.NewService(logger, storage.Entries, recorder, storage.Tx, cfg.TimeEntry)
	reports := report.NewService(logger, storage.Entries)

	return rest.NewRouter(rest.RouterDeps{
		TimeEntries: rest.NewTimeEntryHandler(entries, logger),
		Reports:     rest.NewReportHandler(reports, logger),
		Health:      rest.NewHealthHandler(storage.Pinger, storage.Driver, BuildVersion()),
		RateLimiter: limiter,
		Logger:      logger,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
	})
}
