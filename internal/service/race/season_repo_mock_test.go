package race

import (
	"context"
	"sync"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

var _ seasonRepo = &seasonRepoMock{}

type seasonRepoMock struct {
	GetByNumberFunc func(ctx context.Context, number int) (*domain.Season, error)
	ListFunc        func(ctx context.Context) ([]domain.Season, error)

	calls struct {
		GetByNumber []struct {
			Ctx    context.Context
			Number int
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockGetByNumber sync.RWMutex
	lockList        sync.RWMutex
}

func (mock *seasonRepoMock) GetByNumber(ctx context.Context, number int) (*domain.Season, error) {
	if mock.GetByNumberFunc == nil {
		panic("seasonRepoMock.GetByNumberFunc: method is nil but seasonRepo.GetByNumber was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Number int
	}{
		Ctx:    ctx,
		Number: number,
	}
	mock.lockGetByNumber.Lock()
	mock.calls.GetByNumber = append(mock.calls.GetByNumber, callInfo)
	mock.lockGetByNumber.Unlock()
	return mock.GetByNumberFunc(ctx, number)
}

func (mock *seasonRepoMock) GetByNumberCalls() []struct {
	Ctx    context.Context
	Number int
} {
	mock.lockGetByNumber.RLock()
	calls := mock.calls.GetByNumber
	mock.lockGetByNumber.RUnlock()
	return calls
}

func (mock *seasonRepoMock) List(ctx context.Context) ([]domain.Season, error) {
	if mock.ListFunc == nil {
		panic("seasonRepoMock.ListFunc: method is nil but seasonRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *seasonRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
