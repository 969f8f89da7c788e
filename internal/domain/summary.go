package domain

import "github.com/shopspring/decimal"

// Summary is the reduction of a set of time entries into hour totals.
type Summary struct {
	TotalHours decimal.Decimal
	ByUser     map[int64]decimal.Decimal
	ByClient   map[int64]decimal.Decimal
	ByProject  map[int64]decimal.Decimal
	EntryCount int
}

// NewSummary returns an empty summary with initialized maps.
func NewSummary() Summary {
	return Summary{
		TotalHours: decimal.Zero,
		ByUser:     make(map[int64]decimal.Decimal),
		ByClient:   make(map[int64]decimal.Decimal),
		ByProject:  make(map[int64]decimal.Decimal),
	}
}

// Summarize sums entry hours overall and per user, client and project.
// Arithmetic is decimal, so the result is exact for 2-place inputs.
func Summarize(entries []TimeEntry) Summary {
	s := NewSummary()
	for i := range entries {
		s.Add(&entries[i])
	}
	return s
}

// Add accumulates a single entry into the summary. A zero Summary is ready
// to use.
func (s *Summary) Add(e *TimeEntry) {
	if s.ByUser == nil {
		s.ByUser = make(map[int64]decimal.Decimal)
	}
	if s.ByClient == nil {
		s.ByClient = make(map[int64]decimal.Decimal)
	}
	if s.ByProject == nil {
		s.ByProject = make(map[int64]decimal.Decimal)
	}
	s.TotalHours = s.TotalHours.Add(e.Hours)
	s.ByUser[e.UserID] = s.ByUser[e.UserID].Add(e.Hours)
	s.ByClient[e.ClientID] = s.ByClient[e.ClientID].Add(e.Hours)
	s.ByProject[e.ProjectID] = s.ByProject[e.ProjectID].Add(e.Hours)
	s.EntryCount++
}
