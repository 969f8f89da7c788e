package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire and snapshot format of a calendar date.
const DateLayout = "2006-01-02"

// HoursScale is the number of decimal places hours are stored with.
const HoursScale = 2

// MaxHoursPerEntry caps a single entry at one full day.
var MaxHoursPerEntry = decimal.NewFromInt(24)

// TimeEntry is one unit of logged work. Year, Month and Week are cached
// projections of Date and must only be written through SetDate.
type TimeEntry struct {
	ID          int64
	UserID      int64
	ClientID    int64
	ProjectID   int64
	Date        time.Time
	Year        int
	Month       int
	Week        int
	Hours       decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DateParts holds the fields derived from an entry date.
type DateParts struct {
	Year  int
	Month int
	Week  int
}

// DeriveDateParts returns the calendar year, calendar month and ISO-8601
// week number of date. Week 1 is the week containing the year's first
// Thursday, so early-January and late-December dates may carry a week
// number belonging to the neighbouring year.
func DeriveDateParts(date time.Time) DateParts {
	d := NormalizeDate(date)
	_, week := d.ISOWeek()
	return DateParts{
		Year:  d.Year(),
		Month: int(d.Month()),
		Week:  week,
	}
}

// NormalizeDate truncates t to its calendar day at 00:00 UTC, keeping the
// wall-clock date of t's own location.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a normalized date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// SetDate sets the entry date and recomputes Year, Month and Week.
func (e *TimeEntry) SetDate(date time.Time) {
	e.Date = NormalizeDate(date)
	parts := DeriveDateParts(e.Date)
	e.Year = parts.Year
	e.Month = parts.Month
	e.Week = parts.Week
}

// DateParts returns the cached derived fields of the entry.
func (e *TimeEntry) DateParts() DateParts {
	return DateParts{Year: e.Year, Month: e.Month, Week: e.Week}
}

// Snapshot is the serialized form of a TimeEntry stored in audit logs.
type Snapshot struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	ClientID    int64     `json:"clientId"`
	ProjectID   int64     `json:"projectId"`
	Date        string    `json:"date"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	Week        int       `json:"week"`
	Hours       string    `json:"hours"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Snapshot serializes the full entry state for an audit record.
func (e *TimeEntry) Snapshot() (json.RawMessage, error) {
	raw, err := json.Marshal(Snapshot{
		ID:          e.ID,
		UserID:      e.UserID,
		ClientID:    e.ClientID,
		ProjectID:   e.ProjectID,
		Date:        e.Date.Format(DateLayout),
		Year:        e.Year,
		Month:       e.Month,
		Week:        e.Week,
		Hours:       e.Hours.StringFixed(HoursScale),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot time_entry %d: %w", e.ID, err)
	}
	return raw, nil
}

// DecodeSnapshot parses an audit snapshot. A nil or JSON-null payload
// yields (nil, nil).
func DecodeSnapshot(raw json.RawMessage) (*Snapshot, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &s, nil
}

// HoursDecimal parses the snapshot hours string.
func (s *Snapshot) HoursDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(s.Hours)
}
