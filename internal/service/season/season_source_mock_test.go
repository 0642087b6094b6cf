package season

import (
	"context"
	"sync"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

var _ seasonSource = &seasonSourceMock{}

type seasonSourceMock struct {
	ListSeasonsFunc func(ctx context.Context) ([]domain.ScrapedSeason, error)

	calls struct {
		ListSeasons []struct {
			Ctx context.Context
		}
	}
	lockListSeasons sync.RWMutex
}

func (mock *seasonSourceMock) ListSeasons(ctx context.Context) ([]domain.ScrapedSeason, error) {
	if mock.ListSeasonsFunc == nil {
		panic("seasonSourceMock.ListSeasonsFunc: method is nil but seasonSource.ListSeasons was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListSeasons.Lock()
	mock.calls.ListSeasons = append(mock.calls.ListSeasons, callInfo)
	mock.lockListSeasons.Unlock()
	return mock.ListSeasonsFunc(ctx)
}

func (mock *seasonSourceMock) ListSeasonsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListSeasons.RLock()
	calls := mock.calls.ListSeasons
	mock.lockListSeasons.RUnlock()
	return calls
}
