package timeentry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

// Update applies a partial patch to an existing entry. The current row is
// re-read inside the transaction; if the patch carries a date, year/month/week
// are recomputed from it. The audit log holds the pre- and post-merge
// snapshots and is attributed to the patch's user when it sets one,
// otherwise to the entry's owner before the merge.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.TimeEntry, error) {
	if err := input.Validate(s.cfg.MaxDescriptionLength); err != nil {
		return nil, err
	}

	var updated *domain.TimeEntry
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.entries.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get time entry: %w", err)
		}

		previous, err := current.Snapshot()
		if err != nil {
			return err
		}

		merged := *current
		input.apply(&merged)

		updated, err = s.entries.Update(txCtx, &merged)
		if err != nil {
			return fmt.Errorf("update time entry: %w", err)
		}

		next, err := updated.Snapshot()
		if err != nil {
			return err
		}

		actor := current.UserID
		if input.UserID != nil {
			actor = *input.UserID
		}

		if _, err := s.audit.Record(txCtx, updated.ID, actor, domain.AuditActionUpdate, previous, next); err != nil {
			return fmt.Errorf("audit update: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "time entry updated",
		slog.Int64("time_entry_id", updated.ID),
		slog.Int64("user_id", updated.UserID),
	)

	return updated, nil
}
