package timeentry

import (
	"context"
	"sync"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	CreateFunc  func(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	DeleteFunc  func(ctx context.Context, id int64) error
	FindFunc    func(ctx context.Context, filter domain.TimeEntryFilter) ([]domain.TimeEntry, error)
	GetByIDFunc func(ctx context.Context, id int64) (*domain.TimeEntry, error)
	UpdateFunc  func(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.TimeEntry
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		Find []struct {
			Ctx    context.Context
			Filter domain.TimeEntryFilter
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		Update []struct {
			Ctx context.Context
			E   *domain.TimeEntry
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockFind    sync.RWMutex
	lockGetByID sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *entryRepoMock) Create(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.TimeEntry
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.TimeEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *entryRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
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

func (mock *entryRepoMock) GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *entryRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *entryRepoMock) Update(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	if mock.UpdateFunc == nil {
		panic("entryRepoMock.UpdateFunc: method is nil but entryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.TimeEntry
	}{Ctx: ctx, E: e}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, e)
}

func (mock *entryRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	E   *domain.TimeEntry
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
