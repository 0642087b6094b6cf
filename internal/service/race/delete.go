package race

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

// Delete removes a race with its divisions and results in one transaction.
func (s *Service) Delete(ctx context.Context, seasonNumber int, name string) (domain.DeleteStats, error) {
	race, err := s.Find(ctx, seasonNumber, name)
	if err != nil {
		return domain.DeleteStats{}, err
	}

	var stats domain.DeleteStats
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if stats.Results, err = s.results.DeleteByRace(txCtx, race.ID); err != nil {
			return fmt.Errorf("delete results: %w", err)
		}
		if stats.Divisions, err = s.divisions.DeleteByRace(txCtx, race.ID); err != nil {
			return fmt.Errorf("delete divisions: %w", err)
		}
		if err := s.races.Delete(txCtx, race.ID); err != nil {
			return fmt.Errorf("delete race: %w", err)
		}
		stats.Races = 1
		return nil
	})
	if err != nil {
		return domain.DeleteStats{}, err
	}

	s.log.InfoContext(ctx, "race deleted",
		slog.Int("season", race.SeasonNumber),
		slog.String("race", race.Name),
		slog.Int64("divisions", stats.Divisions),
		slog.Int64("results", stats.Results),
	)
	return stats, nil
}
