package result

import (
	"context"
	"sync"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

var _ pageSource = &pageSourceMock{}

type pageSourceMock struct {
	FetchResultPageFunc func(ctx context.Context, q domain.ResultQuery) ([]domain.ResultRow, error)

	calls struct {
		FetchResultPage []struct {
			Ctx context.Context
			Q   domain.ResultQuery
		}
	}
	lockFetchResultPage sync.RWMutex
}

func (mock *pageSourceMock) FetchResultPage(ctx context.Context, q domain.ResultQuery) ([]domain.ResultRow, error) {
	if mock.FetchResultPageFunc == nil {
		panic("pageSourceMock.FetchResultPageFunc: method is nil but pageSource.FetchResultPage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   domain.ResultQuery
	}{
		Ctx: ctx,
		Q:   q,
	}
	mock.lockFetchResultPage.Lock()
	mock.calls.FetchResultPage = append(mock.calls.FetchResultPage, callInfo)
	mock.lockFetchResultPage.Unlock()
	return mock.FetchResultPageFunc(ctx, q)
}

func (mock *pageSourceMock) FetchResultPageCalls() []struct {
	Ctx context.Context
	Q   domain.ResultQuery
} {
	mock.lockFetchResultPage.RLock()
	calls := mock.calls.FetchResultPage
	mock.lockFetchResultPage.RUnlock()
	return calls
}
