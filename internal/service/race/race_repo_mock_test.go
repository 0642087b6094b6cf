package race

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/hyrox-results/internal/domain"
)

var _ raceRepo = &raceRepoMock{}

type raceRepoMock struct {
	CreateFunc             func(ctx context.Context, race domain.Race) (domain.Race, error)
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error
	GetBySeasonAndNameFunc func(ctx context.Context, seasonID uuid.UUID, name string) (*domain.Race, error)
	ListBySeasonFunc       func(ctx context.Context, seasonID uuid.UUID) ([]domain.Race, error)
	ListWithSeasonFunc     func(ctx context.Context, name string) ([]domain.RaceWithSeason, error)
	UpdateFunc             func(ctx context.Context, race domain.Race) (domain.Race, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Race domain.Race
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetBySeasonAndName []struct {
			Ctx      context.Context
			SeasonID uuid.UUID
			Name     string
		}
		ListBySeason []struct {
			Ctx      context.Context
			SeasonID uuid.UUID
		}
		ListWithSeason []struct {
			Ctx  context.Context
			Name string
		}
		Update []struct {
			Ctx  context.Context
			Race domain.Race
		}
	}
	lockCreate             sync.RWMutex
	lockDelete             sync.RWMutex
	lockGetBySeasonAndName sync.RWMutex
	lockListBySeason       sync.RWMutex
	lockListWithSeason     sync.RWMutex
	lockUpdate             sync.RWMutex
}

func (mock *raceRepoMock) Create(ctx context.Context, race domain.Race) (domain.Race, error) {
	if mock.CreateFunc == nil {
		panic("raceRepoMock.CreateFunc: method is nil but raceRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Race domain.Race
	}{
		Ctx:  ctx,
		Race: race,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, race)
}

func (mock *raceRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Race domain.Race
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *raceRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("raceRepoMock.DeleteFunc: method is nil but raceRepo.Delete was just called")
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

func (mock *raceRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *raceRepoMock) GetBySeasonAndName(ctx context.Context, seasonID uuid.UUID, name string) (*domain.Race, error) {
	if mock.GetBySeasonAndNameFunc == nil {
		panic("raceRepoMock.GetBySeasonAndNameFunc: method is nil but raceRepo.GetBySeasonAndName was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SeasonID uuid.UUID
		Name     string
	}{
		Ctx:      ctx,
		SeasonID: seasonID,
		Name:     name,
	}
	mock.lockGetBySeasonAndName.Lock()
	mock.calls.GetBySeasonAndName = append(mock.calls.GetBySeasonAndName, callInfo)
	mock.lockGetBySeasonAndName.Unlock()
	return mock.GetBySeasonAndNameFunc(ctx, seasonID, name)
}

func (mock *raceRepoMock) GetBySeasonAndNameCalls() []struct {
	Ctx      context.Context
	SeasonID uuid.UUID
	Name     string
} {
	mock.lockGetBySeasonAndName.RLock()
	calls := mock.calls.GetBySeasonAndName
	mock.lockGetBySeasonAndName.RUnlock()
	return calls
}

func (mock *raceRepoMock) ListBySeason(ctx context.Context, seasonID uuid.UUID) ([]domain.Race, error) {
	if mock.ListBySeasonFunc == nil {
		panic("raceRepoMock.ListBySeasonFunc: method is nil but raceRepo.ListBySeason was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SeasonID uuid.UUID
	}{
		Ctx:      ctx,
		SeasonID: seasonID,
	}
	mock.lockListBySeason.Lock()
	mock.calls.ListBySeason = append(mock.calls.ListBySeason, callInfo)
	mock.lockListBySeason.Unlock()
	return mock.ListBySeasonFunc(ctx, seasonID)
}

func (mock *raceRepoMock) ListBySeasonCalls() []struct {
	Ctx      context.Context
	SeasonID uuid.UUID
} {
	mock.lockListBySeason.RLock()
	calls := mock.calls.ListBySeason
	mock.lockListBySeason.RUnlock()
	return calls
}

func (mock *raceRepoMock) ListWithSeason(ctx context.Context, name string) ([]domain.RaceWithSeason, error) {
	if mock.ListWithSeasonFunc == nil {
		panic("raceRepoMock.ListWithSeasonFunc: method is nil but raceRepo.ListWithSeason was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockListWithSeason.Lock()
	mock.calls.ListWithSeason = append(mock.calls.ListWithSeason, callInfo)
	mock.lockListWithSeason.Unlock()
	return mock.ListWithSeasonFunc(ctx, name)
}

func (mock *raceRepoMock) ListWithSeasonCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockListWithSeason.RLock()
	calls := mock.calls.ListWithSeason
	mock.lockListWithSeason.RUnlock()
	return calls
}

func (mock *raceRepoMock) Update(ctx context.Context, race domain.Race) (domain.Race, error) {
	if mock.UpdateFunc == nil {
		panic("raceRepoMock.UpdateFunc: method is nil but raceRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Race domain.Race
	}{
		Ctx:  ctx,
		Race: race,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, race)
}

func (mock *raceRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	Race domain.Race
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
