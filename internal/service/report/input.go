package report

import (
	"time"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

// SummaryInput selects the entries to aggregate. Every predicate is
// optional; the zero value summarizes all entries.
type SummaryInput struct {
	UserID    *int64
	ClientID  *int64
	ProjectID *int64
	Year      *int
	Month     *int
	Week      *int
	StartDate *time.Time
	EndDate   *time.Time
}

// Validate checks predicate ranges.
func (i *SummaryInput) Validate() error {
	if errs := domain.ValidateFilter(i.Filter()); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Filter converts the input to an unpaginated repository filter.
func (i *SummaryInput) Filter() domain.TimeEntryFilter {
	return domain.TimeEntryFilter{
		UserID:    i.UserID,
		ClientID:  i.ClientID,
		ProjectID: i.ProjectID,
		Year:      i.Year,
		Month:     i.Month,
		Week:      i.Week,
		StartDate: i.StartDate,
		EndDate:   i.EndDate,
	}
}
