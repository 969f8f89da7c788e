package timeentry

import (
	"context"
	"fmt"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

// AuditTrail returns every audit log of an entry, oldest first. Deleted
// entries keep their trail; an id with no history at all is not found.
func (s *Service) AuditTrail(ctx context.Context, id int64) ([]domain.AuditLog, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}

	logs, err := s.audit.LogsForEntry(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("timeentry.AuditTrail: %w", err)
	}
	if len(logs) == 0 {
		return nil, fmt.Errorf("time_entry %d: %w", id, domain.ErrNotFound)
	}
	return logs, nil
}
