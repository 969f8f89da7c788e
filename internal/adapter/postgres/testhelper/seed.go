package testhelper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

// idSeq hands out owner ids that do not collide between tests sharing
// the container.
var idSeq atomic.Int64

func init() {
	idSeq.Store(time.Now().UnixNano() / int64(time.Microsecond))
}

// UniqueID returns a fresh int64 for user/client/project/time entry ids
// used as filter keys, so parallel tests see only their own rows.
func UniqueID() int64 {
	return idSeq.Add(1)
}

// EntryOption tweaks a seeded time entry before insertion.
type EntryOption func(*domain.TimeEntry)

// WithDate sets the entry date (YYYY-MM-DD) and the derived year/month/week.
func WithDate(s string) EntryOption {
	return func(e *domain.TimeEntry) {
		d, err := domain.ParseDate(s)
		if err != nil {
			panic(err)
		}
		e.SetDate(d)
	}
}

// WithHours sets the entry hours from a decimal string.
func WithHours(s string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Hours = decimal.RequireFromString(s)
	}
}

// WithOwner sets the user, client and project ids.
func WithOwner(userID, clientID, projectID int64) EntryOption {
	return func(e *domain.TimeEntry) {
		e.UserID = userID
		e.ClientID = clientID
		e.ProjectID = projectID
	}
}

// SeedTimeEntry inserts a time entry directly via SQL and returns it with
// the assigned id. Defaults: fresh owner ids, 2024-03-15, 4.50 hours.
func SeedTimeEntry(t *testing.T, pool *pgxpool.Pool, opts ...EntryOption) domain.TimeEntry {
	t.Helper()
	ctx := context.Background()

	e := domain.TimeEntry{
		UserID:      UniqueID(),
		ClientID:    UniqueID(),
		ProjectID:   UniqueID(),
		Hours:       decimal.RequireFromString("4.50"),
		Description: "seeded entry",
	}
	WithDate("2024-03-15")(&e)
	for _, opt := range opts {
		opt(&e)
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO time_entries (user_id, client_id, project_id, date, year, month, week, hours, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		e.UserID, e.ClientID, e.ProjectID, e.Date, e.Year, e.Month, e.Week, e.Hours, e.Description,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTimeEntry insert: %v", err)
	}

	return e
}

// CountAuditLogs returns how many audit rows exist for a time entry.
func CountAuditLogs(t *testing.T, pool *pgxpool.Pool, timeEntryID int64) int {
	t.Helper()
	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM audit_logs WHERE time_entry_id = $1`, timeEntryID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountAuditLogs: %v", err)
	}
	return n
}
