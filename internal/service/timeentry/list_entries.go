package timeentry

import (
	"context"
	"fmt"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

// List returns the entries matching the input, newest date first with ties
// broken by id descending. A zero limit falls back to the configured default.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.TimeEntry, error) {
	if err := input.Validate(s.cfg.MaxListLimit); err != nil {
		return nil, err
	}

	filter := input.Filter()
	if filter.Limit == 0 {
		filter.Limit = s.cfg.DefaultListLimit
	}

	entries, err := s.entries.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("timeentry.List: %w", err)
	}
	return entries, nil
}
