package race

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

// Scrape fetches the event groups of one stored season and upserts them.
func (s *Service) Scrape(ctx context.Context, seasonNumber int) (domain.UpsertStats, error) {
	season, err := s.seasons.GetByNumber(ctx, seasonNumber)
	if err != nil {
		return domain.UpsertStats{}, fmt.Errorf("get season %d: %w", seasonNumber, err)
	}

	groups, err := s.source.ListRaceGroups(ctx, seasonNumber)
	if err != nil {
		return domain.UpsertStats{}, fmt.Errorf("list race groups of season %d: %w", seasonNumber, err)
	}
	s.log.InfoContext(ctx, "race groups discovered",
		slog.Int("season", seasonNumber),
		slog.Int("count", len(groups)),
	)

	return s.Upsert(ctx, *season, groups)
}

// ScrapeAll scrapes every stored season in turn, pausing between them. A
// failing season does not stop the others; all failures are joined.
func (s *Service) ScrapeAll(ctx context.Context) (domain.UpsertStats, error) {
	seasons, err := s.seasons.List(ctx)
	if err != nil {
		return domain.UpsertStats{}, fmt.Errorf("list seasons: %w", err)
	}

	var total domain.UpsertStats
	var errs []error
	for i, season := range seasons {
		if i > 0 {
			if err := sleepCtx(ctx, s.politeDelay); err != nil {
				return total, err
			}
		}

		stats, err := s.Scrape(ctx, season.Number)
		if err != nil {
			if ctx.Err() != nil {
				return total, err
			}
			s.log.ErrorContext(ctx, "season scrape failed",
				slog.Int("season", season.Number),
				slog.String("error", err.Error()),
			)
			errs = append(errs, fmt.Errorf("season %d: %w", season.Number, err))
			continue
		}
		total.Add(stats)
	}
	return total, errors.Join(errs...)
}
