package timeentry

import (
	"context"
	"fmt"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

// Get returns a single entry or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}

	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("timeentry.Get: %w", err)
	}
	return entry, nil
}
