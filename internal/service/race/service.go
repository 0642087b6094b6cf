package race

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/hyrox-results/internal/config"
	"github.com/heartmarshall/hyrox-results/internal/domain"
)

type raceRepo interface {
	GetBySeasonAndName(ctx context.Context, seasonID uuid.UUID, name string) (*domain.Race, error)
	ListBySeason(ctx context.Context, seasonID uuid.UUID) ([]domain.Race, error)
	ListWithSeason(ctx context.Context, name string) ([]domain.RaceWithSeason, error)
	Create(ctx context.Context, race domain.Race) (domain.Race, error)
	Update(ctx context.Context, race domain.Race) (domain.Race, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type seasonRepo interface {
	GetByNumber(ctx context.Context, number int) (*domain.Season, error)
	List(ctx context.Context) ([]domain.Season, error)
}

// cascadeRepo removes the rows of one table that belong to a race.
type cascadeRepo interface {
	DeleteByRace(ctx context.Context, raceID uuid.UUID) (int64, error)
}

type groupSource interface {
	ListRaceGroups(ctx context.Context, season int) ([]domain.RaceGroup, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service scrapes event groups into races and answers race lookups.
type Service struct {
	races       raceRepo
	seasons     seasonRepo
	divisions   cascadeRepo
	results     cascadeRepo
	source      groupSource
	tx          txManager
	politeDelay time.Duration
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new Race service. cfg.PoliteDelay is the pause
// between seasons when scraping all of them.
func NewService(
	log *slog.Logger,
	races raceRepo,
	seasons seasonRepo,
	divisions cascadeRepo,
	results cascadeRepo,
	source groupSource,
	tx txManager,
	cfg config.ScrapeConfig,
) *Service {
	return &Service{
		races:       races,
		seasons:     seasons,
		divisions:   divisions,
		results:     results,
		source:      source,
		tx:          tx,
		politeDelay: cfg.PoliteDelay,
		log:         log.With("service", "race"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// sleepCtx waits for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
