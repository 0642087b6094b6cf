package result

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/hyrox-results/internal/domain"
)

// Replace swaps the stored results of a division for the given rows in one
// transaction. Repeated overall ranks keep their first row only.
func (s *Service) Replace(ctx context.Context, divisionID uuid.UUID, rows []domain.ResultRow) (ReplaceStats, error) {
	var stats ReplaceStats

	now := s.now()
	seen := make(map[int]bool, len(rows))
	results := make([]domain.Result, 0, len(rows))
	for _, row := range rows {
		res, ok := ParseRow(row)
		if !ok {
			stats.Dropped++
			continue
		}
		if res.RankOverall != nil {
			if seen[*res.RankOverall] {
				s.log.WarnContext(ctx, "duplicate overall rank dropped",
					slog.String("division_id", divisionID.String()),
					slog.Int("rank", *res.RankOverall),
					slog.String("name", res.FullName),
				)
				stats.Dropped++
				continue
			}
			seen[*res.RankOverall] = true
		}
		res.ID = uuid.New()
		res.DivisionID = divisionID
		res.CreatedAt = now
		results = append(results, res)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		deleted, err := s.results.DeleteByDivision(txCtx, divisionID)
		if err != nil {
			return fmt.Errorf("delete results: %w", err)
		}
		inserted, err := s.results.CreateBatch(txCtx, results)
		if err != nil {
			return fmt.Errorf("insert results: %w", err)
		}
		stats.Deleted = deleted
		stats.Inserted = inserted
		return nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "result replace rolled back",
			slog.String("division_id", divisionID.String()),
			slog.String("error", err.Error()),
		)
		return ReplaceStats{}, err
	}

	s.log.InfoContext(ctx, "results replaced",
		slog.String("division_id", divisionID.String()),
		slog.Int64("deleted", stats.Deleted),
		slog.Int("inserted", stats.Inserted),
		slog.Int("dropped", stats.Dropped),
	)
	return stats, nil
}
