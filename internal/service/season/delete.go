package season

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

// Delete removes a season together with its races, divisions and results.
// Children go first, all in one transaction.
func (s *Service) Delete(ctx context.Context, number int) (domain.DeleteStats, error) {
	season, err := s.Get(ctx, number)
	if err != nil {
		return domain.DeleteStats{}, err
	}

	var stats domain.DeleteStats
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if stats.Results, err = s.results.DeleteBySeason(txCtx, season.ID); err != nil {
			return fmt.Errorf("delete results: %w", err)
		}
		if stats.Divisions, err = s.divisions.DeleteBySeason(txCtx, season.ID); err != nil {
			return fmt.Errorf("delete divisions: %w", err)
		}
		if stats.Races, err = s.races.DeleteBySeason(txCtx, season.ID); err != nil {
			return fmt.Errorf("delete races: %w", err)
		}
		if err := s.seasons.Delete(txCtx, season.ID); err != nil {
			return fmt.Errorf("delete season: %w", err)
		}
		stats.Seasons = 1
		return nil
	})
	if err != nil {
		return domain.DeleteStats{}, err
	}

	s.log.InfoContext(ctx, "season deleted",
		slog.Int("number", number),
		slog.Int64("races", stats.Races),
		slog.Int64("divisions", stats.Divisions),
		slog.Int64("results", stats.Results),
	)
	return stats, nil
}
