// Command seeder fills the configured storage with demo time entries.
// Entries are created through the time entry service, so each one gets
// a create audit record.
//
// Flags:
//
//	--dry-run        build the plan without writing
//	--seeder-config  path to seeder YAML config file
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

	"github.com/heartmarshall/timesheet-backend/internal/app"
	"github.com/heartmarshall/timesheet-backend/internal/app/seeder"
	"github.com/heartmarshall/timesheet-backend/internal/config"
	"github.com/heartmarshall/timesheet-backend/internal/service/audit"
	"github.com/heartmarshall/timesheet-backend/internal/service/timeentry"
)

func main() {
	dryRunFlag := flag.Bool("dry-run", false, "build the plan without writing")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for storage).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	storage, err := app.OpenStorage(ctx, appCfg, logger)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	recorder := audit.NewRecorder(logger, storage.Audit, nil)
	svc := timeentry.NewService(logger, storage.Entries, recorder, storage.Tx, appCfg.TimeEntry)

	pipeline := seeder.NewPipeline(logger, svc, *seederCfg, nil)
	result, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if result.HasErrors() {
		logger.Warn("seeding completed with errors", slog.Int("errors", result.Errors))
		os.Exit(1)
	}

	logger.Info("seeding completed successfully", slog.Int("inserted", result.Inserted))
}
