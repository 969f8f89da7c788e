package rest

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

// createTimeEntryRequest is the POST body. Hours accept a JSON number or a
// numeric string. Year, month and week are not part of the request and are
// dropped if a client sends them.
type createTimeEntryRequest struct {
	UserID      int64            `json:"userId"`
	ClientID    int64            `json:"clientId"`
	ProjectID   int64            `json:"projectId"`
	Date        string           `json:"date"`
	Hours       *decimal.Decimal `json:"hours"`
	Description string           `json:"description"`
}

// updateTimeEntryRequest is the PUT/PATCH body; absent fields are unchanged.
type updateTimeEntryRequest struct {
	UserID      *int64           `json:"userId"`
	ClientID    *int64           `json:"clientId"`
	ProjectID   *int64           `json:"projectId"`
	Date        *string          `json:"date"`
	Hours       *decimal.Decimal `json:"hours"`
	Description *string          `json:"description"`
}

type timeEntryResponse struct {
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

func toTimeEntryResponse(e *domain.TimeEntry) timeEntryResponse {
	return timeEntryResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		ClientID:    e.ClientID,
		ProjectID:   e.ProjectID,
		Date:        e.Date.Format(domain.DateLayout),
		Year:        e.Year,
		Month:       e.Month,
		Week:        e.Week,
		Hours:       e.Hours.StringFixed(domain.HoursScale),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

type timeEntryListResponse struct {
	Items []timeEntryResponse `json:"items"`
	Count int                 `json:"count"`
}

// auditLogResponse carries snapshots as embedded JSON; a missing side is null.
type auditLogResponse struct {
	ID            int64              `json:"id"`
	TimeEntryID   int64              `json:"timeEntryId"`
	UserID        int64              `json:"userId"`
	Action        domain.AuditAction `json:"action"`
	PreviousValue rawJSON            `json:"previousValue"`
	NewValue      rawJSON            `json:"newValue"`
	Timestamp     time.Time          `json:"timestamp"`
}

func toAuditLogResponse(l domain.AuditLog) auditLogResponse {
	return auditLogResponse{
		ID:            l.ID,
		TimeEntryID:   l.TimeEntryID,
		UserID:        l.UserID,
		Action:        l.Action,
		PreviousValue: rawJSON(l.PreviousValue),
		NewValue:      rawJSON(l.NewValue),
		Timestamp:     l.Timestamp,
	}
}

// rawJSON emits stored snapshot bytes verbatim, or null when empty.
// Snapshots that are not valid JSON are emitted as a JSON string.
type rawJSON []byte

func (r rawJSON) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	if !json.Valid(r) {
		return json.Marshal(string(r))
	}
	return r, nil
}

type summaryResponse struct {
	TotalHours string            `json:"totalHours"`
	ByUser     map[string]string `json:"byUser"`
	ByClient   map[string]string `json:"byClient"`
	ByProject  map[string]string `json:"byProject"`
	EntryCount int               `json:"entryCount"`
}

func toSummaryResponse(s *domain.Summary) summaryResponse {
	return summaryResponse{
		TotalHours: s.TotalHours.StringFixed(domain.HoursScale),
		ByUser:     hoursByKey(s.ByUser),
		ByClient:   hoursByKey(s.ByClient),
		ByProject:  hoursByKey(s.ByProject),
		EntryCount: s.EntryCount,
	}
}

func hoursByKey(m map[int64]decimal.Decimal) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strconv.FormatInt(k, 10)] = v.StringFixed(domain.HoursScale)
	}
	return out
}
