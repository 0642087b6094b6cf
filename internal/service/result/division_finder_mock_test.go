package result

import (
	"context"
	"sync"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

var _ divisionFinder = &divisionFinderMock{}

type divisionFinderMock struct {
	FindFunc func(ctx context.Context, seasonNumber int, raceName string, name domain.DivisionName, gender domain.Gender) (domain.DivisionWithRace, error)

	calls struct {
		Find []struct {
			Ctx          context.Context
			SeasonNumber int
			RaceName     string
			Name         domain.DivisionName
			Gender       domain.Gender
		}
	}
	lockFind sync.RWMutex
}

func (mock *divisionFinderMock) Find(ctx context.Context, seasonNumber int, raceName string, name domain.DivisionName, gender domain.Gender) (domain.DivisionWithRace, error) {
	if mock.FindFunc == nil {
		panic("divisionFinderMock.FindFunc: method is nil but divisionFinder.Find was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SeasonNumber int
		RaceName     string
		Name         domain.DivisionName
		Gender       domain.Gender
	}{
		Ctx:          ctx,
		SeasonNumber: seasonNumber,
		RaceName:     raceName,
		Name:         name,
		Gender:       gender,
	}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, seasonNumber, raceName, name, gender)
}

func (mock *divisionFinderMock) FindCalls() []struct {
	Ctx          context.Context
	SeasonNumber int
	RaceName     string
	Name         domain.DivisionName
	Gender       domain.Gender
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}
