package season

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/hyrox-results/internal/domain"
)

type seasonRepo interface {
	GetByNumber(ctx context.Context, number int) (*domain.Season, error)
	List(ctx context.Context) ([]domain.Season, error)
	Create(ctx context.Context, s domain.Season) (domain.Season, error)
	Update(ctx context.Context, s domain.Season) (domain.Season, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// cascadeRepo removes the rows of one table that belong to a season.
type cascadeRepo interface {
	DeleteBySeason(ctx context.Context, seasonID uuid.UUID) (int64, error)
}

type seasonSource interface {
	ListSeasons(ctx context.Context) ([]domain.ScrapedSeason, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service discovers, stores and removes seasons.
type Service struct {
	seasons   seasonRepo
	races     cascadeRepo
	divisions cascadeRepo
	results   cascadeRepo
	source    seasonSource
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Season service.
func NewService(
	log *slog.Logger,
	seasons seasonRepo,
	races cascadeRepo,
	divisions cascadeRepo,
	results cascadeRepo,
	source seasonSource,
	tx txManager,
) *Service {
	return &Service{
		seasons:   seasons,
		races:     races,
		divisions: divisions,
		results:   results,
		source:    source,
		tx:        tx,
		log:       log.With("service", "season"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}
