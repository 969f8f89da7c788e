package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
	"github.com/heartmarshall/timesheet-backend/internal/service/timeentry"
)

var _ timeEntryService = &timeEntryServiceMock{}

type timeEntryServiceMock struct {
	AuditTrailFunc func(ctx context.Context, id int64) ([]domain.AuditLog, error)
	CreateFunc     func(ctx context.Context, input timeentry.CreateInput) (*domain.TimeEntry, error)
	DeleteFunc     func(ctx context.Context, id int64) error
	GetFunc        func(ctx context.Context, id int64) (*domain.TimeEntry, error)
	ListFunc       func(ctx context.Context, input timeentry.ListInput) ([]domain.TimeEntry, error)
	UpdateFunc     func(ctx context.Context, id int64, input timeentry.UpdateInput) (*domain.TimeEntry, error)

	calls struct {
		AuditTrail []struct {
			Ctx context.Context
			ID  int64
		}
		Create []struct {
			Ctx   context.Context
			Input timeentry.CreateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		Get []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx   context.Context
			Input timeentry.ListInput
		}
		Update []struct {
			Ctx   context.Context
			ID    int64
			Input timeentry.UpdateInput
		}
	}
	lockAuditTrail sync.RWMutex
	lockCreate     sync.RWMutex
	lockDelete     sync.RWMutex
	lockGet        sync.RWMutex
	lockList       sync.RWMutex
	lockUpdate     sync.RWMutex
}

func (mock *timeEntryServiceMock) AuditTrail(ctx context.Context, id int64) ([]domain.AuditLog, error) {
	if mock.AuditTrailFunc == nil {
		panic("timeEntryServiceMock.AuditTrailFunc: method is nil but timeEntryService.AuditTrail was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockAuditTrail.Lock()
	mock.calls.AuditTrail = append(mock.calls.AuditTrail, callInfo)
	mock.lockAuditTrail.Unlock()
	return mock.AuditTrailFunc(ctx, id)
}

func (mock *timeEntryServiceMock) AuditTrailCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockAuditTrail.RLock()
	calls := mock.calls.AuditTrail
	mock.lockAuditTrail.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) Create(ctx context.Context, input timeentry.CreateInput) (*domain.TimeEntry, error) {
	if mock.CreateFunc == nil {
		panic("timeEntryServiceMock.CreateFunc: method is nil but timeEntryService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input timeentry.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *timeEntryServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input timeentry.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("timeEntryServiceMock.DeleteFunc: method is nil but timeEntryService.Delete was just called")
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

func (mock *timeEntryServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) Get(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	if mock.GetFunc == nil {
		panic("timeEntryServiceMock.GetFunc: method is nil but timeEntryService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *timeEntryServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) List(ctx context.Context, input timeentry.ListInput) ([]domain.TimeEntry, error) {
	if mock.ListFunc == nil {
		panic("timeEntryServiceMock.ListFunc: method is nil but timeEntryService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input timeentry.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *timeEntryServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input timeentry.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *timeEntryServiceMock) Update(ctx context.Context, id int64, input timeentry.UpdateInput) (*domain.TimeEntry, error) {
	if mock.UpdateFunc == nil {
		panic("timeEntryServiceMock.UpdateFunc: method is nil but timeEntryService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    int64
		Input timeentry.UpdateInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *timeEntryServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    int64
	Input timeentry.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
