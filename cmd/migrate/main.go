// Command migrate applies pending database migrations and exits. Use it
// when database.auto_migrate is off.
//
// Flags:
//
//	--status  print applied and pending versions instead of migrating
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/timesheet-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timesheet-backend/internal/app"
	"github.com/heartmarshall/timesheet-backend/internal/config"
)

func main() {
	statusFlag := flag.Bool("status", false, "print migration status and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if *statusFlag {
		if err := postgres.MigrationStatus(ctx, pool, logger); err != nil {
			logger.Error("migration status", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	if err := postgres.Migrate(ctx, pool, logger); err != nil {
		logger.Error("migrate failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrations up to date")
}
