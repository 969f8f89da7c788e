// Package report aggregates time entries into hour summaries. It only reads.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

type entryRepo interface {
	Find(ctx context.Context, filter domain.TimeEntryFilter) ([]domain.TimeEntry, error)
}

// Service implements reporting over time entries.
type Service struct {
	log     *slog.Logger
	entries entryRepo
}

// NewService creates a new report service.
func NewService(logger *slog.Logger, entries entryRepo) *Service {
	return &Service{
		log:     logger.With("service", "report"),
		entries: entries,
	}
}

// Summarize selects the entries matching the input and reduces them to
// total hours and per-user, per-client and per-project totals.
func (s *Service) Summarize(ctx context.Context, input SummaryInput) (*domain.Summary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.entries.Find(ctx, input.Filter())
	if err != nil {
		return nil, fmt.Errorf("report.Summarize: %w", err)
	}

	summary := domain.Summarize(entries)

	s.log.DebugContext(ctx, "summary computed",
		slog.Int("entry_count", summary.EntryCount),
		slog.String("total_hours", summary.TotalHours.StringFixed(domain.HoursScale)),
	)

	return &summary, nil
}
