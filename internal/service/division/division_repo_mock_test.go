package division

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/hyrox-results/internal/domain"
)

var _ divisionRepo = &divisionRepoMock{}

type divisionRepoMock struct {
	CountRacesPerDivisionFunc func(ctx context.Context) ([]domain.DivisionFrequency, error)
	CreateFunc                func(ctx context.Context, d domain.Division) (domain.Division, error)
	GetFunc                   func(ctx context.Context, raceID uuid.UUID, name domain.DivisionName, gender domain.Gender) (*domain.Division, error)
	ListByRaceFunc            func(ctx context.Context, raceID uuid.UUID) ([]domain.Division, error)
	SetSiteEventIDFunc        func(ctx context.Context, id uuid.UUID, siteEventID string) error

	calls struct {
		CountRacesPerDivision []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			D   domain.Division
		}
		Get []struct {
			Ctx    context.Context
			RaceID uuid.UUID
			Name   domain.DivisionName
			Gender domain.Gender
		}
		ListByRace []struct {
			Ctx    context.Context
			RaceID uuid.UUID
		}
		SetSiteEventID []struct {
			Ctx         context.Context
			Id          uuid.UUID
			SiteEventID string
		}
	}
	lockCountRacesPerDivision sync.RWMutex
	lockCreate                sync.RWMutex
	lockGet                   sync.RWMutex
	lockListByRace            sync.RWMutex
	lockSetSiteEventID        sync.RWMutex
}

func (mock *divisionRepoMock) CountRacesPerDivision(ctx context.Context) ([]domain.DivisionFrequency, error) {
	if mock.CountRacesPerDivisionFunc == nil {
		panic("divisionRepoMock.CountRacesPerDivisionFunc: method is nil but divisionRepo.CountRacesPerDivision was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCountRacesPerDivision.Lock()
	mock.calls.CountRacesPerDivision = append(mock.calls.CountRacesPerDivision, callInfo)
	mock.lockCountRacesPerDivision.Unlock()
	return mock.CountRacesPerDivisionFunc(ctx)
}

func (mock *divisionRepoMock) CountRacesPerDivisionCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountRacesPerDivision.RLock()
	calls := mock.calls.CountRacesPerDivision
	mock.lockCountRacesPerDivision.RUnlock()
	return calls
}

func (mock *divisionRepoMock) Create(ctx context.Context, d domain.Division) (domain.Division, error) {
	if mock.CreateFunc == nil {
		panic("divisionRepoMock.CreateFunc: method is nil but divisionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.Division
	}{
		Ctx: ctx,
		D:   d,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *divisionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	D   domain.Division
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *divisionRepoMock) Get(ctx context.Context, raceID uuid.UUID, name domain.DivisionName, gender domain.Gender) (*domain.Division, error) {
	if mock.GetFunc == nil {
		panic("divisionRepoMock.GetFunc: method is nil but divisionRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		RaceID uuid.UUID
		Name   domain.DivisionName
		Gender domain.Gender
	}{
		Ctx:    ctx,
		RaceID: raceID,
		Name:   name,
		Gender: gender,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, raceID, name, gender)
}

func (mock *divisionRepoMock) GetCalls() []struct {
	Ctx    context.Context
	RaceID uuid.UUID
	Name   domain.DivisionName
	Gender domain.Gender
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *divisionRepoMock) ListByRace(ctx context.Context, raceID uuid.UUID) ([]domain.Division, error) {
	if mock.ListByRaceFunc == nil {
		panic("divisionRepoMock.ListByRaceFunc: method is nil but divisionRepo.ListByRace was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		RaceID uuid.UUID
	}{
		Ctx:    ctx,
		RaceID: raceID,
	}
	mock.lockListByRace.Lock()
	mock.calls.ListByRace = append(mock.calls.ListByRace, callInfo)
	mock.lockListByRace.Unlock()
	return mock.ListByRaceFunc(ctx, raceID)
}

func (mock *divisionRepoMock) ListByRaceCalls() []struct {
	Ctx    context.Context
	RaceID uuid.UUID
} {
	mock.lockListByRace.RLock()
	calls := mock.calls.ListByRace
	mock.lockListByRace.RUnlock()
	return calls
}

func (mock *divisionRepoMock) SetSiteEventID(ctx context.Context, id uuid.UUID, siteEventID string) error {
	if mock.SetSiteEventIDFunc == nil {
		panic("divisionRepoMock.SetSiteEventIDFunc: method is nil but divisionRepo.SetSiteEventID was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Id          uuid.UUID
		SiteEventID string
	}{
		Ctx:         ctx,
		Id:          id,
		SiteEventID: siteEventID,
	}
	mock.lockSetSiteEventID.Lock()
	mock.calls.SetSiteEventID = append(mock.calls.SetSiteEventID, callInfo)
	mock.lockSetSiteEventID.Unlock()
	return mock.SetSiteEventIDFunc(ctx, id, siteEventID)
}

func (mock *divisionRepoMock) SetSiteEventIDCalls() []struct {
	Ctx         context.Context
	Id          uuid.UUID
	SiteEventID string
} {
	mock.lockSetSiteEventID.RLock()
	calls := mock.calls.SetSiteEventID
	mock.lockSetSiteEventID.RUnlock()
	return calls
}
