package audit

import (
	"context"
	"sync"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	CreateFunc          func(ctx context.Context, log domain.AuditLog) (*domain.AuditLog, error)
	ListByTimeEntryFunc func(ctx context.Context, timeEntryID int64) ([]domain.AuditLog, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Log domain.AuditLog
		}
		ListByTimeEntry []struct {
			Ctx         context.Context
			TimeEntryID int64
		}
	}
	lockCreate          sync.RWMutex
	lockListByTimeEntry sync.RWMutex
}

func (mock *logRepoMock) Create(ctx context.Context, log domain.AuditLog) (*domain.AuditLog, error) {
	if mock.CreateFunc == nil {
		panic("logRepoMock.CreateFunc: method is nil but logRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Log domain.AuditLog
	}{Ctx: ctx, Log: log}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, log)
}

func (mock *logRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Log domain.AuditLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *logRepoMock) ListByTimeEntry(ctx context.Context, timeEntryID int64) ([]domain.AuditLog, error) {
	if mock.ListByTimeEntryFunc == nil {
		panic("logRepoMock.ListByTimeEntryFunc: method is nil but logRepo.ListByTimeEntry was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		TimeEntryID int64
	}{Ctx: ctx, TimeEntryID: timeEntryID}
	mock.lockListByTimeEntry.Lock()
	mock.calls.ListByTimeEntry = append(mock.calls.ListByTimeEntry, callInfo)
	mock.lockListByTimeEntry.Unlock()
	return mock.ListByTimeEntryFunc(ctx, timeEntryID)
}

func (mock *logRepoMock) ListByTimeEntryCalls() []struct {
	Ctx         context.Context
	TimeEntryID int64
} {
	mock.lockListByTimeEntry.RLock()
	calls := mock.calls.ListByTimeEntry
	mock.lockListByTimeEntry.RUnlock()
	return calls
}
