package division

import (
	"context"
	"sync"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

var _ eventSource = &eventSourceMock{}

type eventSourceMock struct {
	ListEventsFunc  func(ctx context.Context, season int, groupID string) ([]domain.SourceEvent, error)
	ListGendersFunc func(ctx context.Context, season int, groupID string, eventID string) ([]domain.SourceEvent, error)

	calls struct {
		ListEvents []struct {
			Ctx     context.Context
			Season  int
			GroupID string
		}
		ListGenders []struct {
			Ctx     context.Context
			Season  int
			GroupID string
			EventID string
		}
	}
	lockListEvents  sync.RWMutex
	lockListGenders sync.RWMutex
}

func (mock *eventSourceMock) ListEvents(ctx context.Context, season int, groupID string) ([]domain.SourceEvent, error) {
	if mock.ListEventsFunc == nil {
		panic("eventSourceMock.ListEventsFunc: method is nil but eventSource.ListEvents was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Season  int
		GroupID string
	}{
		Ctx:     ctx,
		Season:  season,
		GroupID: groupID,
	}
	mock.lockListEvents.Lock()
	mock.calls.ListEvents = append(mock.calls.ListEvents, callInfo)
	mock.lockListEvents.Unlock()
	return mock.ListEventsFunc(ctx, season, groupID)
}

func (mock *eventSourceMock) ListEventsCalls() []struct {
	Ctx     context.Context
	Season  int
	GroupID string
} {
	mock.lockListEvents.RLock()
	calls := mock.calls.ListEvents
	mock.lockListEvents.RUnlock()
	return calls
}

func (mock *eventSourceMock) ListGenders(ctx context.Context, season int, groupID string, eventID string) ([]domain.SourceEvent, error) {
	if mock.ListGendersFunc == nil {
		panic("eventSourceMock.ListGendersFunc: method is nil but eventSource.ListGenders was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Season  int
		GroupID string
		EventID string
	}{
		Ctx:     ctx,
		Season:  season,
		GroupID: groupID,
		EventID: eventID,
	}
	mock.lockListGenders.Lock()
	mock.calls.ListGenders = append(mock.calls.ListGenders, callInfo)
	mock.lockListGenders.Unlock()
	return mock.ListGendersFunc(ctx, season, groupID, eventID)
}

func (mock *eventSourceMock) ListGendersCalls() []struct {
	Ctx     context.Context
	Season  int
	GroupID string
	EventID string
} {
	mock.lockListGenders.RLock()
	calls := mock.calls.ListGenders
	mock.lockListGenders.RUnlock()
	return calls
}
