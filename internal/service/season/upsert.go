package season

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/hyrox-results/internal/domain"
)

// Upsert reconciles scraped seasons with the store by season number. The
// whole batch runs in one transaction. Existing seasons are left untouched
// unless overwrite is set, in which case name and URL are replaced in place.
// Seasons are never deleted here.
func (s *Service) Upsert(ctx context.Context, scraped []domain.ScrapedSeason, overwrite bool) (domain.UpsertStats, error) {
	var stats domain.UpsertStats

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		stats = domain.UpsertStats{}
		seen := make(map[int]bool, len(scraped))

		for _, sc := range scraped {
			sc.Name = strings.TrimSpace(sc.Name)
			sc.URL = strings.TrimSpace(sc.URL)

			if err := validateScraped(sc); err != nil {
				s.log.WarnContext(ctx, "season skipped",
					slog.Int("number", sc.Number),
					slog.String("reason", err.Error()),
				)
				stats.Skipped++
				continue
			}
			if seen[sc.Number] {
				stats.Skipped++
				continue
			}
			seen[sc.Number] = true

			action, err := s.upsertOne(txCtx, sc, overwrite)
			if err != nil {
				return err
			}
			stats.Record(action)
		}
		return nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "season upsert rolled back", slog.String("error", err.Error()))
		return domain.UpsertStats{}, err
	}

	s.log.InfoContext(ctx, "seasons upserted",
		slog.Int("inserted", stats.Inserted),
		slog.Int("updated", stats.Updated),
		slog.Int("skipped", stats.Skipped),
		slog.Bool("overwrite", overwrite),
	)
	return stats, nil
}

func (s *Service) upsertOne(ctx context.Context, sc domain.ScrapedSeason, overwrite bool) (domain.UpsertAction, error) {
	existing, err := s.seasons.GetByNumber(ctx, sc.Number)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		_, err = s.seasons.Create(ctx, domain.Season{
			ID:          uuid.New(),
			Number:      sc.Number,
			Name:        sc.Name,
			ResultsURL:  sc.URL,
			LastUpdated: s.now(),
		})
		if err != nil {
			return domain.ActionSkipped, fmt.Errorf("create season %d: %w", sc.Number, err)
		}
		return domain.ActionInserted, nil
	case err != nil:
		return domain.ActionSkipped, fmt.Errorf("get season %d: %w", sc.Number, err)
	}

	if !overwrite {
		return domain.ActionSkipped, nil
	}

	existing.Name = sc.Name
	existing.ResultsURL = sc.URL
	existing.LastUpdated = s.now()
	if _, err := s.seasons.Update(ctx, *existing); err != nil {
		return domain.ActionSkipped, fmt.Errorf("update season %d: %w", sc.Number, err)
	}
	return domain.ActionUpdated, nil
}

func validateScraped(sc domain.ScrapedSeason) error {
	var errs []domain.FieldError
	if sc.Number <= 0 {
		errs = append(errs, domain.FieldError{Field: "number", Message: "must be positive"})
	}
	if sc.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if sc.URL == "" {
		errs = append(errs, domain.FieldError{Field: "url", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
