package rest

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

// queryParser reads optional typed query parameters and collects every
// malformed one as a field error.
type queryParser struct {
	values url.Values
	errs   []domain.FieldError
}

func newQueryParser(r *http.Request) *queryParser {
	return &queryParser{values: r.URL.Query()}
}

func (p *queryParser) int64Ptr(name string) *int64 {
	raw := p.values.Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.errs = append(p.errs, domain.FieldError{Field: name, Message: "must be an integer"})
		return nil
	}
	return &v
}

func (p *queryParser) intPtr(name string) *int {
	raw := p.values.Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, domain.FieldError{Field: name, Message: "must be an integer"})
		return nil
	}
	return &v
}

func (p *queryParser) intValue(name string) int {
	if v := p.intPtr(name); v != nil {
		return *v
	}
	return 0
}

func (p *queryParser) date(name string) *time.Time {
	raw := p.values.Get(name)
	if raw == "" {
		return nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		p.errs = append(p.errs, domain.FieldError{Field: name, Message: "must be YYYY-MM-DD"})
		return nil
	}
	return &d
}

func (p *queryParser) err() error {
	if len(p.errs) > 0 {
		return domain.NewValidationErrors(p.errs)
	}
	return nil
}

// pathID parses a positive int64 URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// parseBodyDate parses a request date, reporting failures against "date".
func parseBodyDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}
	return d, nil
}
