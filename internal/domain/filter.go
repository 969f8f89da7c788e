package domain

import "time"

// TimeEntryFilter is a conjunction of optional predicates over time
// entries. A nil field imposes no constraint; the zero value matches all
// entries. StartDate and EndDate are inclusive and may be set alone.
type TimeEntryFilter struct {
	UserID    *int64
	ClientID  *int64
	ProjectID *int64
	Year      *int
	Month     *int
	Week      *int
	StartDate *time.Time
	EndDate   *time.Time

	// Limit caps the number of returned entries; 0 means no limit.
	Limit int
	// Offset skips entries in date DESC, id DESC order.
	Offset int
}

// IsEmpty reports whether no predicate is set. Pagination is not a predicate.
func (f TimeEntryFilter) IsEmpty() bool {
	return f.UserID == nil && f.ClientID == nil && f.ProjectID == nil &&
		f.Year == nil && f.Month == nil && f.Week == nil &&
		f.StartDate == nil && f.EndDate == nil
}

// Matches reports whether e satisfies every predicate of the filter.
// Date bounds are compared on calendar days.
func (f TimeEntryFilter) Matches(e *TimeEntry) bool {
	if f.UserID != nil && e.UserID != *f.UserID {
		return false
	}
	if f.ClientID != nil && e.ClientID != *f.ClientID {
		return false
	}
	if f.ProjectID != nil && e.ProjectID != *f.ProjectID {
		return false
	}
	if f.Year != nil && e.Year != *f.Year {
		return false
	}
	if f.Month != nil && e.Month != *f.Month {
		return false
	}
	if f.Week != nil && e.Week != *f.Week {
		return false
	}

	date := NormalizeDate(e.Date)
	if f.StartDate != nil && date.Before(NormalizeDate(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && date.After(NormalizeDate(*f.EndDate)) {
		return false
	}
	return true
}

// ValidateFilter checks predicate ranges: ids positive, month 1..12,
// week 1..53, and StartDate not after EndDate.
func ValidateFilter(f TimeEntryFilter) []FieldError {
	var errs []FieldError

	for _, ref := range []struct {
		field string
		id    *int64
	}{
		{"user_id", f.UserID},
		{"client_id", f.ClientID},
		{"project_id", f.ProjectID},
	} {
		if ref.id != nil && *ref.id <= 0 {
			errs = append(errs, FieldError{Field: ref.field, Message: "must be positive"})
		}
	}

	if f.Year != nil && (*f.Year < 1 || *f.Year > 9999) {
		errs = append(errs, FieldError{Field: "year", Message: "out of range"})
	}
	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		errs = append(errs, FieldError{Field: "month", Message: "must be between 1 and 12"})
	}
	if f.Week != nil && (*f.Week < 1 || *f.Week > 53) {
		errs = append(errs, FieldError{Field: "week", Message: "must be between 1 and 53"})
	}
	if f.StartDate != nil && f.EndDate != nil && NormalizeDate(*f.StartDate).After(NormalizeDate(*f.EndDate)) {
		errs = append(errs, FieldError{Field: "start_date", Message: "must not be after end_date"})
	}

	return errs
}
