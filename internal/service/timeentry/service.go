package timeentry

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/heartmarshall/timesheet-backend/internal/config"
	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryRepo interface {
	Create(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	Update(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error)
	Find(ctx context.Context, filter domain.TimeEntryFilter) ([]domain.TimeEntry, error)
}

type auditRecorder interface {
	Record(ctx context.Context, timeEntryID, userID int64, action domain.AuditAction, previous, next json.RawMessage) (*domain.AuditLog, error)
	LogsForEntry(ctx context.Context, timeEntryID int64) ([]domain.AuditLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements time entry mutations and reads. Every mutation writes
// the row and its audit log in a single transaction.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	audit   auditRecorder
	tx      txManager
	cfg     config.TimeEntryConfig
}

// NewService creates a new time entry service.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	audit auditRecorder,
	tx txManager,
	cfg config.TimeEntryConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "timeentry"),
		entries: entries,
		audit:   audit,
		tx:      tx,
		cfg:     cfg,
	}
}
