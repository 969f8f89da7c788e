// Package timeentry implements the TimeEntry repository using PostgreSQL.
// Dynamic filters are built with squirrel; all statements run on the
// transaction carried in the context when there is one.
package timeentry

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/timesheet-backend/internal/adapter/postgres"
	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

const (
	table  = "time_entries"
	entity = "time_entry"
)

// hours is read back as text so it lands in decimal.Decimal without a float hop.
var columns = []string{
	"id", "user_id", "client_id", "project_id",
	"date", "year", "month", "week",
	"hours::text", "description", "created_at", "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides time entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new time entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new row and returns it with the assigned id and timestamps.
func (r *Repo) Create(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	query, args, err := psql.Insert(table).
		Columns("user_id", "client_id", "project_id", "date", "year", "month", "week", "hours", "description").
		Values(e.UserID, e.ClientID, e.ProjectID, e.Date, e.Year, e.Month, e.Week, e.Hours, e.Description).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", entity, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	created, err := scanEntry(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, 0)
	}
	return created, nil
}

// Update overwrites every mutable column of the row identified by e.ID and
// bumps updated_at. Returns domain.ErrNotFound if the row no longer exists.
func (r *Repo) Update(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	query, args, err := psql.Update(table).
		SetMap(map[string]any{
			"user_id":     e.UserID,
			"client_id":   e.ClientID,
			"project_id":  e.ProjectID,
			"date":        e.Date,
			"year":        e.Year,
			"month":       e.Month,
			"week":        e.Week,
			"hours":       e.Hours,
			"description": e.Description,
			"updated_at":  sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": e.ID}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update %s: %w", entity, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	updated, err := scanEntry(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, e.ID)
	}
	return updated, nil
}

// Delete removes the row. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", entity, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a single row or domain.ErrNotFound. Inside a transaction
// the row is locked FOR UPDATE until commit, so a read-merge-write sequence
// always merges onto the row it overwrites.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	builder := psql.Select(columns...).From(table).Where(sq.Eq{"id": id})
	if postgres.InTx(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", entity, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	e, err := scanEntry(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return e, nil
}

// Find returns the rows matching every predicate of filter, ordered by
// date DESC, id DESC. An empty filter returns all rows.
func (r *Repo) Find(ctx context.Context, filter domain.TimeEntryFilter) ([]domain.TimeEntry, error) {
	builder := applyFilter(psql.Select(columns...).From(table), filter).
		OrderBy("date DESC", "id DESC")
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find %s: %w", entity, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, 0)
	}
	defer rows.Close()

	entries := make([]domain.TimeEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, postgres.MapError(err, entity, 0)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entity, 0)
	}

	return entries, nil
}

// applyFilter adds one WHERE clause per predicate present in f.
func applyFilter(b sq.SelectBuilder, f domain.TimeEntryFilter) sq.SelectBuilder {
	if f.UserID != nil {
		b = b.Where(sq.Eq{"user_id": *f.UserID})
	}
	if f.ClientID != nil {
		b = b.Where(sq.Eq{"client_id": *f.ClientID})
	}
	if f.ProjectID != nil {
		b = b.Where(sq.Eq{"project_id": *f.ProjectID})
	}
	if f.Year != nil {
		b = b.Where(sq.Eq{"year": *f.Year})
	}
	if f.Month != nil {
		b = b.Where(sq.Eq{"month": *f.Month})
	}
	if f.Week != nil {
		b = b.Where(sq.Eq{"week": *f.Week})
	}
	if f.StartDate != nil {
		b = b.Where(sq.GtOrEq{"date": domain.NormalizeDate(*f.StartDate)})
	}
	if f.EndDate != nil {
		b = b.Where(sq.LtOrEq{"date": domain.NormalizeDate(*f.EndDate)})
	}
	return b
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func scanEntry(row pgx.Row) (*domain.TimeEntry, error) {
	var (
		e     domain.TimeEntry
		date  time.Time
		hours string
	)
	err := row.Scan(
		&e.ID, &e.UserID, &e.ClientID, &e.ProjectID,
		&date, &e.Year, &e.Month, &e.Week,
		&hours, &e.Description, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.Date = domain.NormalizeDate(date)
	e.Hours, err = decimal.NewFromString(hours)
	if err != nil {
		return nil, fmt.Errorf("parse hours %q: %w", hours, err)
	}
	return &e, nil
}
