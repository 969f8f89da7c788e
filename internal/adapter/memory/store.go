// Package memory is an in-process realization of the time entry and
// audit repositories. It keeps the same contracts as the PostgreSQL
// adapter (ids, ordering, not-found errors, all-or-nothing transactions)
// and is used by the memory storage driver and by service tests.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

// Store holds all rows. Repositories and the TxManager share one Store.
type Store struct {
	// txMu is held by an open transaction, and briefly by every access made
	// outside one, so no caller observes or interleaves with uncommitted
	// writes. mu guards the data below.
	txMu sync.Mutex
	mu   sync.RWMutex

	entries     map[int64]domain.TimeEntry
	logs        []domain.AuditLog
	nextEntryID int64
	nextLogID   int64

	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		entries: make(map[int64]domain.TimeEntry),
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// state is a point-in-time copy used to undo a failed transaction.
type state struct {
	entries     map[int64]domain.TimeEntry
	logCount    int
	nextEntryID int64
	nextLogID   int64
}

// Ping reports whether the store can serve requests. It only fails when
// ctx is already done.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// read locks the store for reading on behalf of ctx and returns the
// release func. Outside a transaction it first waits for any open one to
// finish.
func (s *Store) read(ctx context.Context) func() {
	if s.inTx(ctx) {
		s.mu.RLock()
		return s.mu.RUnlock
	}
	s.txMu.Lock()
	s.mu.RLock()
	return func() {
		s.mu.RUnlock()
		s.txMu.Unlock()
	}
}

// write is read's exclusive counterpart.
func (s *Store) write(ctx context.Context) func() {
	if s.inTx(ctx) {
		s.mu.Lock()
		return s.mu.Unlock
	}
	s.txMu.Lock()
	s.mu.Lock()
	return func() {
		s.mu.Unlock()
		s.txMu.Unlock()
	}
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txCtxKey{}).(*Store)
	return owner == s
}

func (s *Store) save() state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return state{
		entries:     maps.Clone(s.entries),
		logCount:    len(s.logs),
		nextEntryID: s.nextEntryID,
		nextLogID:   s.nextLogID,
	}
}

func (s *Store) restore(st state) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = st.entries
	s.logs = s.logs[:st.logCount]
	s.nextEntryID = st.nextEntryID
	s.nextLogID = st.nextLogID
}

// ---------------------------------------------------------------------------
// TxManager
// ---------------------------------------------------------------------------

type txCtxKey struct{}

// TxManager gives RunInTx the same all-or-nothing semantics as the
// PostgreSQL TxManager: if fn fails or panics, every write it made is undone.
type TxManager struct {
	store *Store
}

// NewTxManager creates a TxManager over store.
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// RunInTx executes fn as one transaction. Transactions are serialized.
// A RunInTx call nested inside fn joins the outer transaction.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if m.store.inTx(ctx) {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return domain.NewStorageError("begin transaction", err)
	}

	m.store.txMu.Lock()
	defer m.store.txMu.Unlock()

	saved := m.store.save()

	defer func() {
		if r := recover(); r != nil {
			m.store.restore(saved)
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txCtxKey{}, m.store)); err != nil {
		m.store.restore(saved)
		return err
	}
	return nil
}
