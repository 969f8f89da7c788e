package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

// AuditRepo is an append-only audit log store.
type AuditRepo struct {
	store *Store
}

// NewAuditRepo creates an audit repository over store.
func NewAuditRepo(store *Store) *AuditRepo {
	return &AuditRepo{store: store}
}

// Create appends log with the next id.
func (r *AuditRepo) Create(ctx context.Context, log domain.AuditLog) (*domain.AuditLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewStorageError(fmt.Sprintf("audit_log %d", log.TimeEntryID), err)
	}

	s := r.store
	defer s.write(ctx)()

	s.nextLogID++
	log.ID = s.nextLogID
	log.PreviousValue = cloneRaw(log.PreviousValue)
	log.NewValue = cloneRaw(log.NewValue)
	s.logs = append(s.logs, log)

	out := log
	return &out, nil
}

// ListByTimeEntry returns the logs of one entry ordered by timestamp, then id.
func (r *AuditRepo) ListByTimeEntry(ctx context.Context, timeEntryID int64) ([]domain.AuditLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewStorageError(fmt.Sprintf("audit_log %d", timeEntryID), err)
	}

	s := r.store
	unlock := s.read(ctx)
	logs := make([]domain.AuditLog, 0)
	for _, l := range s.logs {
		if l.TimeEntryID == timeEntryID {
			logs = append(logs, l)
		}
	}
	unlock()

	slices.SortStableFunc(logs, func(a, b domain.AuditLog) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return logs, nil
}

func cloneRaw(raw []byte) []byte {
	if raw == nil {
		return nil
	}
	return slices.Clone(raw)
}
