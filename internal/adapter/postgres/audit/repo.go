// Package audit implements the AuditLog repository using PostgreSQL.
// It provides append-only operations: there is no update or delete.
package audit

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/timesheet-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

const entity = "audit_log"

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit log and returns it with the assigned id.
// Snapshots are stored as opaque text; their content is not inspected.
func (r *Repo) Create(ctx context.Context, log domain.AuditLog) (*domain.AuditLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO audit_logs (time_entry_id, user_id, action, previous_value, new_value, timestamp)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, time_entry_id, user_id, action, previous_value, new_value, timestamp`,
		log.TimeEntryID, log.UserID, string(log.Action),
		rawToText(log.PreviousValue), rawToText(log.NewValue), log.Timestamp,
	)

	created, err := scanLog(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, log.TimeEntryID)
	}
	return created, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByTimeEntry returns every log for a time entry, oldest first.
// Ties on timestamp are broken by insertion order (id).
func (r *Repo) ListByTimeEntry(ctx context.Context, timeEntryID int64) ([]domain.AuditLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT id, time_entry_id, user_id, action, previous_value, new_value, timestamp
		 FROM audit_logs
		 WHERE time_entry_id = $1
		 ORDER BY timestamp ASC, id ASC`,
		timeEntryID,
	)
	if err != nil {
		return nil, postgres.MapError(err, entity, timeEntryID)
	}
	defer rows.Close()

	logs := make([]domain.AuditLog, 0)
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, postgres.MapError(err, entity, timeEntryID)
		}
		logs = append(logs, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entity, timeEntryID)
	}

	return logs, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanLog(row pgx.Row) (*domain.AuditLog, error) {
	var (
		l        domain.AuditLog
		action   string
		previous *string
		next     *string
	)
	if err := row.Scan(&l.ID, &l.TimeEntryID, &l.UserID, &action, &previous, &next, &l.Timestamp); err != nil {
		return nil, err
	}
	l.Action = domain.AuditAction(action)
	l.PreviousValue = textToRaw(previous)
	l.NewValue = textToRaw(next)
	return &l, nil
}

// rawToText maps a nil snapshot to SQL NULL.
func rawToText(raw json.RawMessage) *string {
	if raw == nil {
		return nil
	}
	s := string(raw)
	return &s
}

func textToRaw(s *string) json.RawMessage {
	if s == nil {
		return nil
	}
	return json.RawMessage(*s)
}
