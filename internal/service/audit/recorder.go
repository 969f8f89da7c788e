// Package audit records immutable time entry audit logs.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

// logRepo defines the audit log persistence needed by the recorder.
type logRepo interface {
	Create(ctx context.Context, log domain.AuditLog) (*domain.AuditLog, error)
	ListByTimeEntry(ctx context.Context, timeEntryID int64) ([]domain.AuditLog, error)
}

// Recorder appends audit logs. It joins whatever transaction is carried in
// ctx, so a failed Record aborts the enclosing mutation.
type Recorder struct {
	log  *slog.Logger
	logs logRepo
	now  func() time.Time
}

// NewRecorder creates a new audit recorder. A nil clock means time.Now in UTC.
func NewRecorder(logger *slog.Logger, logs logRepo, clock func() time.Time) *Recorder {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &Recorder{
		log:  logger.With("service", "audit"),
		logs: logs,
		now:  clock,
	}
}

// Record appends one log. The timestamp comes from the recorder's clock;
// snapshots are stored as given without inspection.
func (r *Recorder) Record(
	ctx context.Context,
	timeEntryID, userID int64,
	action domain.AuditAction,
	previous, next json.RawMessage,
) (*domain.AuditLog, error) {
	created, err := r.logs.Create(ctx, domain.AuditLog{
		TimeEntryID:   timeEntryID,
		UserID:        userID,
		Action:        action,
		PreviousValue: previous,
		NewValue:      next,
		Timestamp:     r.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("audit.Record %s: %w", action, err)
	}

	r.log.DebugContext(ctx, "audit recorded",
		slog.Int64("time_entry_id", timeEntryID),
		slog.String("action", action.String()),
		slog.Int64("audit_id", created.ID),
	)

	return created, nil
}

// LogsForEntry returns the trail of one entry, oldest first. An entry with
// no history yields an empty slice.
func (r *Recorder) LogsForEntry(ctx context.Context, timeEntryID int64) ([]domain.AuditLog, error) {
	logs, err := r.logs.ListByTimeEntry(ctx, timeEntryID)
	if err != nil {
		return nil, fmt.Errorf("audit.LogsForEntry: %w", err)
	}
	if logs == nil {
		logs = []domain.AuditLog{}
	}
	return logs, nil
}
