package race

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ cascadeRepo = &cascadeRepoMock{}

type cascadeRepoMock struct {
	DeleteByRaceFunc func(ctx context.Context, raceID uuid.UUID) (int64, error)

	calls struct {
		DeleteByRace []struct {
			Ctx    context.Context
			RaceID uuid.UUID
		}
	}
	lockDeleteByRace sync.RWMutex
}

func (mock *cascadeRepoMock) DeleteByRace(ctx context.Context, raceID uuid.UUID) (int64, error) {
	if mock.DeleteByRaceFunc == nil {
		panic("cascadeRepoMock.DeleteByRaceFunc: method is nil but cascadeRepo.DeleteByRace was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		RaceID uuid.UUID
	}{
		Ctx:    ctx,
		RaceID: raceID,
	}
	mock.lockDeleteByRace.Lock()
	mock.calls.DeleteByRace = append(mock.calls.DeleteByRace, callInfo)
	mock.lockDeleteByRace.Unlock()
	return mock.DeleteByRaceFunc(ctx, raceID)
}

func (mock *cascadeRepoMock) DeleteByRaceCalls() []struct {
	Ctx    context.Context
	RaceID uuid.UUID
} {
	mock.lockDeleteByRace.RLock()
	calls := mock.calls.DeleteByRace
	mock.lockDeleteByRace.RUnlock()
	return calls
}
