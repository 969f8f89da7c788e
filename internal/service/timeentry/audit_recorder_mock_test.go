package timeentry

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
)

var _ auditRecorder = &auditRecorderMock{}

type auditRecorderMock struct {
	LogsForEntryFunc func(ctx context.Context, timeEntryID int64) ([]domain.AuditLog, error)
	RecordFunc       func(ctx context.Context, timeEntryID int64, userID int64, action domain.AuditAction, previous json.RawMessage, next json.RawMessage) (*domain.AuditLog, error)

	calls struct {
		LogsForEntry []struct {
			Ctx         context.Context
			TimeEntryID int64
		}
		Record []struct {
			Ctx         context.Context
			TimeEntryID int64
			UserID      int64
			Action      domain.AuditAction
			Previous    json.RawMessage
			Next        json.RawMessage
		}
	}
	lockLogsForEntry sync.RWMutex
	lockRecord       sync.RWMutex
}

func (mock *auditRecorderMock) LogsForEntry(ctx context.Context, timeEntryID int64) ([]domain.AuditLog, error) {
	if mock.LogsForEntryFunc == nil {
		panic("auditRecorderMock.LogsForEntryFunc: method is nil but auditRecorder.LogsForEntry was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		TimeEntryID int64
	}{Ctx: ctx, TimeEntryID: timeEntryID}
	mock.lockLogsForEntry.Lock()
	mock.calls.LogsForEntry = append(mock.calls.LogsForEntry, callInfo)
	mock.lockLogsForEntry.Unlock()
	return mock.LogsForEntryFunc(ctx, timeEntryID)
}

func (mock *auditRecorderMock) LogsForEntryCalls() []struct {
	Ctx         context.Context
	TimeEntryID int64
} {
	mock.lockLogsForEntry.RLock()
	calls := mock.calls.LogsForEntry
	mock.lockLogsForEntry.RUnlock()
	return calls
}

func (mock *auditRecorderMock) Record(ctx context.Context, timeEntryID int64, userID int64, action domain.AuditAction, previous json.RawMessage, next json.RawMessage) (*domain.AuditLog, error) {
	if mock.RecordFunc == nil {
		panic("auditRecorderMock.RecordFunc: method is nil but auditRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		TimeEntryID int64
		UserID      int64
		Action      domain.AuditAction
		Previous    json.RawMessage
		Next        json.RawMessage
	}{Ctx: ctx, TimeEntryID: timeEntryID, UserID: userID, Action: action, Previous: previous, Next: next}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, timeEntryID, userID, action, previous, next)
}

func (mock *auditRecorderMock) RecordCalls() []struct {
	Ctx         context.Context
	TimeEntryID int64
	UserID      int64
	Action      domain.AuditAction
	Previous    json.RawMessage
	Next        json.RawMessage
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
