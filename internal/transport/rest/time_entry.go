package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
	"github.com/heartmarshall/timesheet-backend/internal/service/timeentry"
)

// timeEntryService defines the operations needed by TimeEntryHandler.
type timeEntryService interface {
	Create(ctx context.Context, input timeentry.CreateInput) (*domain.TimeEntry, error)
	Update(ctx context.Context, id int64, input timeentry.UpdateInput) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.TimeEntry, error)
	List(ctx context.Context, input timeentry.ListInput) ([]domain.TimeEntry, error)
	AuditTrail(ctx context.Context, id int64) ([]domain.AuditLog, error)
}

// TimeEntryHandler serves time entry and audit trail endpoints.
type TimeEntryHandler struct {
	svc timeEntryService
	log *slog.Logger
}

// NewTimeEntryHandler creates a TimeEntryHandler.
func NewTimeEntryHandler(svc timeEntryService, logger *slog.Logger) *TimeEntryHandler {
	return &TimeEntryHandler{svc: svc, log: logger.With("handler", "time_entry")}
}

// List handles GET /api/time-entries.
func (h *TimeEntryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	input := timeentry.ListInput{
		UserID:    q.int64Ptr("userId"),
		ClientID:  q.int64Ptr("clientId"),
		ProjectID: q.int64Ptr("projectId"),
		Year:      q.intPtr("year"),
		Month:     q.intPtr("month"),
		Week:      q.intPtr("week"),
		StartDate: q.date("startDate"),
		EndDate:   q.date("endDate"),
		Limit:     q.intValue("limit"),
		Offset:    q.intValue("offset"),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := timeEntryListResponse{Items: make([]timeEntryResponse, 0, len(entries)), Count: len(entries)}
	for i := range entries {
		resp.Items = append(resp.Items, toTimeEntryResponse(&entries[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/time-entries/{id}.
func (h *TimeEntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimeEntryResponse(entry))
}

// Create handles POST /api/time-entries.
func (h *TimeEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := parseBodyDate(req.Date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	hours := decimal.Zero
	if req.Hours != nil {
		hours = *req.Hours
	}

	entry, err := h.svc.Create(r.Context(), timeentry.CreateInput{
		UserID:      req.UserID,
		ClientID:    req.ClientID,
		ProjectID:   req.ProjectID,
		Date:        date,
		Hours:       hours,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTimeEntryResponse(entry))
}

// Update handles PUT and PATCH /api/time-entries/{id}. Both are partial.
func (h *TimeEntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := timeentry.UpdateInput{
		UserID:      req.UserID,
		ClientID:    req.ClientID,
		ProjectID:   req.ProjectID,
		Hours:       req.Hours,
		Description: req.Description,
	}
	if req.Date != nil {
		date, err := parseBodyDate(*req.Date)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		input.Date = &date
	}

	entry, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimeEntryResponse(entry))
}

// Delete handles DELETE /api/time-entries/{id}.
func (h *TimeEntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AuditTrail handles GET /api/audit-logs/{timeEntryId}.
func (h *TimeEntryHandler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "timeEntryId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	logs, err := h.svc.AuditTrail(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]auditLogResponse, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, toAuditLogResponse(l))
	}
	writeJSON(w, http.StatusOK, resp)
}
