package result

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

// Scrape pages through a division's ranking on the results site and
// replaces its stored results. Paging stops at the first short page or
// after cfg.MaxPages. An empty ranking leaves the store untouched.
func (s *Service) Scrape(
	ctx context.Context,
	seasonNumber int,
	raceName string,
	name domain.DivisionName,
	gender domain.Gender,
) (ReplaceStats, error) {
	div, err := s.divisions.Find(ctx, seasonNumber, raceName, name, gender)
	if err != nil {
		return ReplaceStats{}, err
	}
	if div.SiteEventID == "" {
		return ReplaceStats{}, domain.NewValidationError("division", "no results-site event id, scrape the race divisions first")
	}

	rows, err := s.fetchAll(ctx, div)
	if err != nil {
		return ReplaceStats{}, err
	}
	if len(rows) == 0 {
		s.log.WarnContext(ctx, "results site returned no rows",
			slog.String("race", div.Race.Name),
			slog.String("division", div.Name.String()),
			slog.String("gender", div.Gender.String()),
		)
		return ReplaceStats{}, nil
	}

	return s.Replace(ctx, div.ID, rows)
}

func (s *Service) fetchAll(ctx context.Context, div domain.DivisionWithRace) ([]domain.ResultRow, error) {
	group := div.Race.SiteGroupID
	if group == "" {
		group = div.Race.Name
	}

	var rows []domain.ResultRow
	for page := 1; page <= s.cfg.MaxPages; page++ {
		if page > 1 {
			if err := sleepCtx(ctx, s.cfg.PoliteDelay); err != nil {
				return nil, err
			}
		}

		batch, err := s.source.FetchResultPage(ctx, domain.ResultQuery{
			Season:   div.Race.SeasonNumber,
			GroupID:  group,
			EventID:  div.SiteEventID,
			SexCode:  div.Gender.SiteCode(),
			Page:     page,
			PageSize: s.cfg.PageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("%s %s %s page %d: %w", div.Race.Name, div.Name, div.Gender, page, err)
		}
		rows = append(rows, batch...)

		if len(batch) < s.cfg.PageSize {
			return rows, nil
		}
	}

	s.log.WarnContext(ctx, "result paging stopped at page limit",
		slog.String("race", div.Race.Name),
		slog.String("division", div.Name.String()),
		slog.Int("max_pages", s.cfg.MaxPages),
	)
	return rows, nil
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
