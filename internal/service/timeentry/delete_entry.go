package timeentry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

// Delete removes an entry and records a "delete" audit log holding its last
// state. If the audit write fails the entry is not deleted.
func (s *Service) Delete(ctx context.Context, id int64) error {
	var owner int64
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.entries.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get time entry: %w", err)
		}
		owner = current.UserID

		previous, err := current.Snapshot()
		if err != nil {
			return err
		}

		if err := s.entries.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete time entry: %w", err)
		}

		if _, err := s.audit.Record(txCtx, id, current.UserID, domain.AuditActionDelete, previous, nil); err != nil {
			return fmt.Errorf("audit delete: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	s.log.InfoContext(ctx, "time entry deleted",
		slog.Int64("time_entry_id", id),
		slog.Int64("user_id", owner),
	)

	return nil
}
