package season

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ cascadeRepo = &cascadeRepoMock{}

type cascadeRepoMock struct {
	DeleteBySeasonFunc func(ctx context.Context, seasonID uuid.UUID) (int64, error)

	calls struct {
		DeleteBySeason []struct {
			Ctx      context.Context
			SeasonID uuid.UUID
		}
	}
	lockDeleteBySeason sync.RWMutex
}

func (mock *cascadeRepoMock) DeleteBySeason(ctx context.Context, seasonID uuid.UUID) (int64, error) {
	if mock.DeleteBySeasonFunc == nil {
		panic("cascadeRepoMock.DeleteBySeasonFunc: method is nil but cascadeRepo.DeleteBySeason was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SeasonID uuid.UUID
	}{
		Ctx:      ctx,
		SeasonID: seasonID,
	}
	mock.lockDeleteBySeason.Lock()
	mock.calls.DeleteBySeason = append(mock.calls.DeleteBySeason, callInfo)
	mock.lockDeleteBySeason.Unlock()
	return mock.DeleteBySeasonFunc(ctx, seasonID)
}

func (mock *cascadeRepoMock) DeleteBySeasonCalls() []struct {
	Ctx      context.Context
	SeasonID uuid.UUID
} {
	mock.lockDeleteBySeason.RLock()
	calls := mock.calls.DeleteBySeason
	mock.lockDeleteBySeason.RUnlock()
	return calls
}
