package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/timesheet-backend/internal/adapter/memory"
	"github.com/heartmarshall/timesheet-backend/internal/adapter/postgres"
	pgaudit "github.com/heartmarshall/timesheet-backend/internal/adapter/postgres/audit"
	pgtimeentry "github.com/heartmarshall/timesheet-backend/internal/adapter/postgres/timeentry"
	"github.com/heartmarshall/timesheet-backend/internal/config"
	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

// EntryStore is the time entry repository contract shared by both drivers.
type EntryStore interface {
	Create(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	Update(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error)
	Find(ctx context.Context, filter domain.TimeEntryFilter) ([]domain.TimeEntry, error)
}

// AuditStore is the audit log repository contract shared by both drivers.
type AuditStore interface {
	Create(ctx context.Context, log domain.AuditLog) (*domain.AuditLog, error)
	ListByTimeEntry(ctx context.Context, timeEntryID int64) ([]domain.AuditLog, error)
}

// TxRunner runs fn in a single transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Pinger reports storage liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Storage is one realization of the repositories chosen by storage.driver.
type Storage struct {
	Driver  string
	Entries EntryStore
	Audit   AuditStore
	Tx      TxRunner
	Pinger  Pinger
	close   func()
}

// Close releases the underlying resources.
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStorage builds the repositories for the configured driver. For
// postgres it connects, and applies migrations when auto_migrate is set.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		logger.Warn("using in-memory storage; data is lost on restart")
		return &Storage{
			Driver:  config.StorageDriverMemory,
			Entries: memory.NewTimeEntryRepo(store),
			Audit:   memory.NewAuditRepo(store),
			Tx:      memory.NewTxManager(store),
			Pinger:  store,
		}, nil

	case config.StorageDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}

		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, fmt.Errorf("auto-migrate: %w", err)
			}
		}

		logger.Info("connected to postgres",
			slog.Int("max_conns", int(cfg.Database.MaxConns)),
			slog.Bool("auto_migrate", cfg.Database.AutoMigrate),
		)

		return &Storage{
			Driver:  config.StorageDriverPostgres,
			Entries: pgtimeentry.New(pool),
			Audit:   pgaudit.New(pool),
			Tx:      postgres.NewTxManager(pool),
			Pinger:  pool,
			close:   pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
