package timeentry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

// Create validates the input, derives year/month/week from the date, stores
// the entry and records a "create" audit log owned by the entry's user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.TimeEntry, error) {
	if err := input.Validate(s.cfg.MaxDescriptionLength); err != nil {
		return nil, err
	}

	entry := &domain.TimeEntry{
		UserID:      input.UserID,
		ClientID:    input.ClientID,
		ProjectID:   input.ProjectID,
		Hours:       input.Hours,
		Description: strings.TrimSpace(input.Description),
	}
	entry.SetDate(input.Date)

	var created *domain.TimeEntry
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.entries.Create(txCtx, entry)
		if err != nil {
			return fmt.Errorf("create time entry: %w", err)
		}

		next, err := created.Snapshot()
		if err != nil {
			return err
		}

		if _, err := s.audit.Record(txCtx, created.ID, created.UserID, domain.AuditActionCreate, nil, next); err != nil {
			return fmt.Errorf("audit create: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "time entry created",
		slog.Int64("time_entry_id", created.ID),
		slog.Int64("user_id", created.UserID),
		slog.String("hours", created.Hours.StringFixed(domain.HoursScale)),
	)

	return created, nil
}
