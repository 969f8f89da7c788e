package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
	"github.com/heartmarshall/timesheet-backend/internal/service/report"
)

type reportService interface {
	Summarize(ctx context.Context, input report.SummaryInput) (*domain.Summary, error)
}

// ReportHandler serves aggregation endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

// Summary handles GET /api/reports/summary. It accepts the same filter
// parameters as the list endpoint, without pagination.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	input := report.SummaryInput{
		UserID:    q.int64Ptr("userId"),
		ClientID:  q.int64Ptr("clientId"),
		ProjectID: q.int64Ptr("projectId"),
		Year:      q.intPtr("year"),
		Month:     q.intPtr("month"),
		Week:      q.intPtr("week"),
		StartDate: q.date("startDate"),
		EndDate:   q.date("endDate"),
	}
	if err := q.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	summary, err := h.svc.Summarize(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}
