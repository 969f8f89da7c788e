package timeentry

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

// CreateInput holds the parameters for creating a time entry.
// Year, month and week are never accepted; they are derived from Date.
type CreateInput struct {
	UserID      int64
	ClientID    int64
	ProjectID   int64
	Date        time.Time
	Hours       decimal.Decimal
	Description string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate(maxDescriptionLength int) error {
	var errs []domain.FieldError

	errs = validateRef(errs, "user_id", i.UserID)
	errs = validateRef(errs, "client_id", i.ClientID)
	errs = validateRef(errs, "project_id", i.ProjectID)

	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	errs = validateHours(errs, i.Hours)
	errs = validateDescription(errs, i.Description, maxDescriptionLength)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput is a partial update. A nil field is left unchanged.
type UpdateInput struct {
	UserID      *int64
	ClientID    *int64
	ProjectID   *int64
	Date        *time.Time
	Hours       *decimal.Decimal
	Description *string
}

// IsEmpty reports whether the patch changes nothing.
func (i *UpdateInput) IsEmpty() bool {
	return i.UserID == nil && i.ClientID == nil && i.ProjectID == nil &&
		i.Date == nil && i.Hours == nil && i.Description == nil
}

// Validate checks every present field against the create rules.
func (i *UpdateInput) Validate(maxDescriptionLength int) error {
	if i.IsEmpty() {
		return domain.NewValidationError("input", "at least one field is required")
	}

	var errs []domain.FieldError

	if i.UserID != nil {
		errs = validateRef(errs, "user_id", *i.UserID)
	}
	if i.ClientID != nil {
		errs = validateRef(errs, "client_id", *i.ClientID)
	}
	if i.ProjectID != nil {
		errs = validateRef(errs, "project_id", *i.ProjectID)
	}
	if i.Date != nil && i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.Hours != nil {
		errs = validateHours(errs, *i.Hours)
	}
	if i.Description != nil {
		errs = validateDescription(errs, *i.Description, maxDescriptionLength)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// apply merges the patch into e. A new date recomputes year, month and week.
func (i *UpdateInput) apply(e *domain.TimeEntry) {
	if i.UserID != nil {
		e.UserID = *i.UserID
	}
	if i.ClientID != nil {
		e.ClientID = *i.ClientID
	}
	if i.ProjectID != nil {
		e.ProjectID = *i.ProjectID
	}
	if i.Date != nil {
		e.SetDate(*i.Date)
	}
	if i.Hours != nil {
		e.Hours = *i.Hours
	}
	if i.Description != nil {
		e.Description = strings.TrimSpace(*i.Description)
	}
}

// ListInput selects time entries. All predicates are optional.
type ListInput struct {
	UserID    *int64
	ClientID  *int64
	ProjectID *int64
	Year      *int
	Month     *int
	Week      *int
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// Validate checks predicate ranges and pagination bounds.
func (i *ListInput) Validate(maxLimit int) error {
	errs := domain.ValidateFilter(i.Filter())

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	} else if maxLimit > 0 && i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "too large"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Filter converts the input to a repository filter.
func (i *ListInput) Filter() domain.TimeEntryFilter {
	return domain.TimeEntryFilter{
		UserID:    i.UserID,
		ClientID:  i.ClientID,
		ProjectID: i.ProjectID,
		Year:      i.Year,
		Month:     i.Month,
		Week:      i.Week,
		StartDate: i.StartDate,
		EndDate:   i.EndDate,
		Limit:     i.Limit,
		Offset:    i.Offset,
	}
}

// ---------------------------------------------------------------------------
// Field rules
// ---------------------------------------------------------------------------

func validateRef(errs []domain.FieldError, field string, id int64) []domain.FieldError {
	if id <= 0 {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	return errs
}

func validateHours(errs []domain.FieldError, h decimal.Decimal) []domain.FieldError {
	switch {
	case !h.IsPositive():
		return append(errs, domain.FieldError{Field: "hours", Message: "must be greater than 0"})
	case h.GreaterThan(domain.MaxHoursPerEntry):
		return append(errs, domain.FieldError{Field: "hours", Message: "must be at most 24"})
	case !h.Equal(h.Round(domain.HoursScale)):
		return append(errs, domain.FieldError{Field: "hours", Message: "at most 2 decimal places"})
	}
	return errs
}

func validateDescription(errs []domain.FieldError, s string, maxLen int) []domain.FieldError {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if maxLen > 0 && utf8.RuneCountInString(trimmed) > maxLen {
		return append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	return errs
}
