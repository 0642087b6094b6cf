package division

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/hyrox-results/internal/config"
	"github.com/heartmarshall/hyrox-results/internal/domain"
)

type divisionRepo interface {
	Get(ctx context.Context, raceID uuid.UUID, name domain.DivisionName, gender domain.Gender) (*domain.Division, error)
	ListByRace(ctx context.Context, raceID uuid.UUID) ([]domain.Division, error)
	CountRacesPerDivision(ctx context.Context) ([]domain.DivisionFrequency, error)
	Create(ctx context.Context, d domain.Division) (domain.Division, error)
	SetSiteEventID(ctx context.Context, id uuid.UUID, siteEventID string) error
}

type raceFinder interface {
	Find(ctx context.Context, seasonNumber int, name string) (domain.RaceWithSeason, error)
	List(ctx context.Context, seasonNumber int) ([]domain.RaceWithSeason, error)
}

type eventSource interface {
	ListEvents(ctx context.Context, season int, groupID string) ([]domain.SourceEvent, error)
	ListGenders(ctx context.Context, season int, groupID, eventID string) ([]domain.SourceEvent, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service turns a race's event listing into divisions.
type Service struct {
	divisions   divisionRepo
	races       raceFinder
	source      eventSource
	tx          txManager
	politeDelay time.Duration
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new Division service.
func NewService(
	log *slog.Logger,
	divisions divisionRepo,
	races raceFinder,
	source eventSource,
	tx txManager,
	cfg config.ScrapeConfig,
) *Service {
	return &Service{
		divisions:   divisions,
		races:       races,
		source:      source,
		tx:          tx,
		politeDelay: cfg.PoliteDelay,
		log:         log.With("service", "division"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// groupID is the event_main_group value the results site knows the race by.
func groupID(race domain.RaceWithSeason) string {
	if race.SiteGroupID != "" {
		return race.SiteGroupID
	}
	return race.Name
}
