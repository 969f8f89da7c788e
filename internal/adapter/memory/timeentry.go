package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

const entryEntity = "time_entry"

// TimeEntryRepo stores time entries in a Store.
type TimeEntryRepo struct {
	store *Store
}

// NewTimeEntryRepo creates a time entry repository over store.
func NewTimeEntryRepo(store *Store) *TimeEntryRepo {
	return &TimeEntryRepo{store: store}
}

// Create assigns the next id and timestamps and stores a copy of e.
func (r *TimeEntryRepo) Create(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewStorageError(fmt.Sprintf("%s 0", entryEntity), err)
	}

	s := r.store
	defer s.write(ctx)()

	s.nextEntryID++
	row := *e
	row.ID = s.nextEntryID
	row.SetDate(e.Date)
	row.CreatedAt = s.now()
	row.UpdatedAt = row.CreatedAt
	s.entries[row.ID] = row

	return &row, nil
}

// Update overwrites the mutable fields of the entry identified by e.ID.
func (r *TimeEntryRepo) Update(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewStorageError(fmt.Sprintf("%s %d", entryEntity, e.ID), err)
	}

	s := r.store
	defer s.write(ctx)()

	current, ok := s.entries[e.ID]
	if !ok {
		return nil, notFound(e.ID)
	}

	row := *e
	row.SetDate(e.Date)
	row.CreatedAt = current.CreatedAt
	row.UpdatedAt = s.now()
	s.entries[row.ID] = row

	return &row, nil
}

// Delete removes the entry. Returns domain.ErrNotFound if it does not exist.
func (r *TimeEntryRepo) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return domain.NewStorageError(fmt.Sprintf("%s %d", entryEntity, id), err)
	}

	s := r.store
	defer s.write(ctx)()

	if _, ok := s.entries[id]; !ok {
		return notFound(id)
	}
	delete(s.entries, id)
	return nil
}

// GetByID returns a copy of the entry or domain.ErrNotFound.
func (r *TimeEntryRepo) GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewStorageError(fmt.Sprintf("%s %d", entryEntity, id), err)
	}

	s := r.store
	defer s.read(ctx)()

	row, ok := s.entries[id]
	if !ok {
		return nil, notFound(id)
	}
	return &row, nil
}

// Find returns the entries matching filter, ordered by date DESC, id DESC,
// with Offset and Limit applied after ordering.
func (r *TimeEntryRepo) Find(ctx context.Context, filter domain.TimeEntryFilter) ([]domain.TimeEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewStorageError(fmt.Sprintf("%s 0", entryEntity), err)
	}

	s := r.store
	unlock := s.read(ctx)
	result := make([]domain.TimeEntry, 0)
	for _, e := range s.entries {
		if filter.Matches(&e) {
			result = append(result, e)
		}
	}
	unlock()

	slices.SortFunc(result, func(a, b domain.TimeEntry) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(result) {
			return make([]domain.TimeEntry, 0), nil
		}
		result = result[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(result) {
		result = result[:filter.Limit]
	}
	return result, nil
}

func notFound(id int64) error {
	return fmt.Errorf("%s %d: %w", entryEntity, id, domain.ErrNotFound)
}
