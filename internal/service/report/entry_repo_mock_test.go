package report

import (
	"context"
	"sync"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	FindFunc func(ctx context.Context, filter domain.TimeEntryFilter) ([]domain.TimeEntry, error)

	calls struct {
		Find []struct {
			Ctx    context.Context
			Filter domain.TimeEntryFilter
		}
	}
	lockFind sync.RWMutex
}

func (mock *entryRepoMock) Find(ctx context.Context, filter domain.TimeEntryFilter) ([]domain.TimeEntry, error) {
	if mock.FindFunc == nil {
		panic("entryRepoMock.FindFunc: method is nil but entryRepo.Find was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.TimeEntryFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, filter)
}

func (mock *entryRepoMock) FindCalls() []struct {
	Ctx    context.Context
	Filter domain.TimeEntryFilter
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}
