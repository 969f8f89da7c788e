package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/timesheet-backend/internal/domain"
	"github.com/heartmarshall/timesheet-backend/internal/service/report"
)

var _ reportService = &reportServiceMock{}

type reportServiceMock struct {
	SummarizeFunc func(ctx context.Context, input report.SummaryInput) (*domain.Summary, error)

	calls struct {
		Summarize []struct {
			Ctx   context.Context
			Input report.SummaryInput
		}
	}
	lockSummarize sync.RWMutex
}

func (mock *reportServiceMock) Summarize(ctx context.Context, input report.SummaryInput) (*domain.Summary, error) {
	if mock.SummarizeFunc == nil {
		panic("reportServiceMock.SummarizeFunc: method is nil but reportService.Summarize was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input report.SummaryInput
	}{Ctx: ctx, Input: input}
	mock.lockSummarize.Lock()
	mock.calls.Summarize = append(mock.calls.Summarize, callInfo)
	mock.lockSummarize.Unlock()
	return mock.SummarizeFunc(ctx, input)
}

func (mock *reportServiceMock) SummarizeCalls() []struct {
	Ctx   context.Context
	Input report.SummaryInput
} {
	mock.lockSummarize.RLock()
	calls := mock.calls.Summarize
	mock.lockSummarize.RUnlock()
	return calls
}
