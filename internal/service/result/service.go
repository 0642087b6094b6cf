package result

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/hyrox-results/internal/config"
	"github.com/heartmarshall/hyrox-results/internal/domain"
)

type resultRepo interface {
	ListByDivision(ctx context.Context, divisionID uuid.UUID) ([]domain.Result, error)
	CreateBatch(ctx context.Context, results []domain.Result) (int, error)
	DeleteByDivision(ctx context.Context, divisionID uuid.UUID) (int64, error)
}

type divisionFinder interface {
	Find(ctx context.Context, seasonNumber int, raceName string, name domain.DivisionName, gender domain.Gender) (domain.DivisionWithRace, error)
}

type pageSource interface {
	FetchResultPage(ctx context.Context, q domain.ResultQuery) ([]domain.ResultRow, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service ingests and lists the results of a division.
type Service struct {
	results   resultRepo
	divisions divisionFinder
	source    pageSource
	tx        txManager
	cfg       config.ScrapeConfig
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Result service.
func NewService(
	log *slog.Logger,
	results resultRepo,
	divisions divisionFinder,
	source pageSource,
	tx txManager,
	cfg config.ScrapeConfig,
) *Service {
	return &Service{
		results:   results,
		divisions: divisions,
		source:    source,
		tx:        tx,
		cfg:       cfg,
		log:       log.With("service", "result"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ReplaceStats describes one division re-ingest.
type ReplaceStats struct {
	Deleted  int64
	Inserted int
	// Dropped counts rows without a name or with a repeated overall rank.
	Dropped int
}
