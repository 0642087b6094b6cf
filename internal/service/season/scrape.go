package season

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

// Scrape reads the season dropdown of the results site and upserts what it finds.
func (s *Service) Scrape(ctx context.Context, overwrite bool) (domain.UpsertStats, error) {
	scraped, err := s.source.ListSeasons(ctx)
	if err != nil {
		return domain.UpsertStats{}, fmt.Errorf("list seasons: %w", err)
	}
	if len(scraped) == 0 {
		s.log.WarnContext(ctx, "results site lists no seasons")
		return domain.UpsertStats{}, nil
	}

	s.log.InfoContext(ctx, "seasons discovered", slog.Int("count", len(scraped)))
	return s.Upsert(ctx, scraped, overwrite)
}
