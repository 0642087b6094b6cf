package season

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/hyrox-results/internal/domain"
)

var _ seasonRepo = &seasonRepoMock{}

type seasonRepoMock struct {
	CreateFunc      func(ctx context.Context, s domain.Season) (domain.Season, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
	GetByNumberFunc func(ctx context.Context, number int) (*domain.Season, error)
	ListFunc        func(ctx context.Context) ([]domain.Season, error)
	UpdateFunc      func(ctx context.Context, s domain.Season) (domain.Season, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   domain.Season
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByNumber []struct {
			Ctx    context.Context
			Number int
		}
		List []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx context.Context
			S   domain.Season
		}
	}
	lockCreate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockGetByNumber sync.RWMutex
	lockList        sync.RWMutex
	lockUpdate      sync.RWMutex
}

func (mock *seasonRepoMock) Create(ctx context.Context, s domain.Season) (domain.Season, error) {
	if mock.CreateFunc == nil {
		panic("seasonRepoMock.CreateFunc: method is nil but seasonRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Season
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *seasonRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   domain.Season
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *seasonRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("seasonRepoMock.DeleteFunc: method is nil but seasonRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *seasonRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
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

func (mock *seasonRepoMock) Update(ctx context.Context, s domain.Season) (domain.Season, error) {
	if mock.UpdateFunc == nil {
		panic("seasonRepoMock.UpdateFunc: method is nil but seasonRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Season
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, s)
}

func (mock *seasonRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	S   domain.Season
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
