package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hyrox-results/internal/adapter/postgres"
	divisionrepo "github.com/heartmarshall/hyrox-results/internal/adapter/postgres/division"
	racerepo "github.com/heartmarshall/hyrox-results/internal/adapter/postgres/race"
	resultrepo "github.com/heartmarshall/hyrox-results/internal/adapter/postgres/result"
	seasonrepo "github.com/heartmarshall/hyrox-results/internal/adapter/postgres/season"
	"github.com/heartmarshall/hyrox-results/internal/adapter/source/hyrox"
	"github.com/heartmarshall/hyrox-results/internal/config"
	"github.com/heartmarshall/hyrox-results/internal/service/division"
	"github.com/heartmarshall/hyrox-results/internal/service/race"
	"github.com/heartmarshall/hyrox-results/internal/service/result"
	"github.com/heartmarshall/hyrox-results/internal/service/season"
	"github.com/heartmarshall/hyrox-results/pkg/ctxutil"
)

// App holds the services of one command invocation.
type App struct {
	Config    *config.Config
	Log       *slog.Logger
	Seasons   *season.Service
	Races     *race.Service
	Divisions *division.Service
	Results   *result.Service

	pool   *pgxpool.Pool
	checks map[string]pinger
}

// Load reads configuration and sets up logging. It does not touch the
// database, so commands such as migrate can run before New.
func Load() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, NewLogger(cfg.Log), nil
}

// New opens the database pool and wires repositories, the results-site
// client and services. Call Close when done.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	txm := postgres.NewTxManager(pool)
	seasons := seasonrepo.New(pool)
	races := racerepo.New(pool)
	divisions := divisionrepo.New(pool)
	results := resultrepo.New(pool)
	client := hyrox.NewClient(cfg.Source, logger)

	raceSvc := race.NewService(logger, races, seasons, divisions, results, client, txm, cfg.Scrape)
	divisionSvc := division.NewService(logger, divisions, raceSvc, client, txm, cfg.Scrape)

	sitePing := pingFunc(func(ctx context.Context) error {
		_, err := client.ListSeasons(ctx)
		return err
	})

	logger.DebugContext(ctx, "application wired",
		slog.String("version", BuildVersion()),
		slog.String("source", cfg.Source.BaseURL),
	)

	return &App{
		Config:    cfg,
		Log:       logger,
		Seasons:   season.NewService(logger, seasons, races, divisions, results, client, txm),
		Races:     raceSvc,
		Divisions: divisionSvc,
		Results:   result.NewService(logger, results, divisionSvc, client, txm, cfg.Scrape),
		pool:      pool,
		checks:    map[string]pinger{"database": pool, "results_site": sitePing},
	}, nil
}

// Close releases the database pool.
func (a *App) Close() {
	a.pool.Close()
}

// Run wires the application, calls fn and releases resources afterwards.
// SIGINT and SIGTERM cancel the context passed to fn. Every log record
// written during the run carries the same run_id.
func Run(ctx context.Context, fn func(ctx context.Context, a *App) error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = ctxutil.WithRunID(ctx, uuid.NewString())

	cfg, logger, err := Load()
	if err != nil {
		return err
	}

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}
