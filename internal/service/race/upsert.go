package race

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/hyrox-results/internal/domain"
)

// Upsert reconciles event groups with the races of a season by name, in one
// transaction. Matching races get city, placeholder date and site group id
// refreshed. New races start with every championship flag off.
func (s *Service) Upsert(ctx context.Context, season domain.Season, groups []domain.RaceGroup) (domain.UpsertStats, error) {
	var stats domain.UpsertStats

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		stats = domain.UpsertStats{}
		seen := make(map[string]bool, len(groups))

		for _, g := range groups {
			g.Name = strings.TrimSpace(g.Name)
			if g.Name == "" || seen[g.Name] {
				stats.Skipped++
				continue
			}
			seen[g.Name] = true

			action, err := s.upsertOne(txCtx, season, g)
			if err != nil {
				return err
			}
			stats.Record(action)
		}
		return nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "race upsert rolled back",
			slog.Int("season", season.Number),
			slog.String("error", err.Error()),
		)
		return domain.UpsertStats{}, err
	}

	s.log.InfoContext(ctx, "races upserted",
		slog.Int("season", season.Number),
		slog.Int("inserted", stats.Inserted),
		slog.Int("updated", stats.Updated),
		slog.Int("skipped", stats.Skipped),
	)
	return stats, nil
}

func (s *Service) upsertOne(ctx context.Context, season domain.Season, g domain.RaceGroup) (domain.UpsertAction, error) {
	meta := ParseGroupMetadata(g.Name)

	existing, err := s.races.GetBySeasonAndName(ctx, season.ID, g.Name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		now := s.now()
		_, err = s.races.Create(ctx, domain.Race{
			ID:                uuid.New(),
			SeasonID:          season.ID,
			Name:              g.Name,
			SiteGroupID:       g.SiteID,
			DateStart:         meta.DateStart,
			DateIsApproximate: meta.DateStart != nil,
			City:              strOrNil(meta.City),
			CreatedAt:         now,
			UpdatedAt:         now,
		})
		if err != nil {
			return domain.ActionSkipped, fmt.Errorf("create race %q: %w", g.Name, err)
		}
		return domain.ActionInserted, nil
	case err != nil:
		return domain.ActionSkipped, fmt.Errorf("get race %q: %w", g.Name, err)
	}

	merged, changed := applyGroup(*existing, g, meta)
	if !changed {
		return domain.ActionSkipped, nil
	}
	merged.UpdatedAt = s.now()
	if _, err := s.races.Update(ctx, merged); err != nil {
		return domain.ActionSkipped, fmt.Errorf("update race %q: %w", g.Name, err)
	}
	return domain.ActionUpdated, nil
}

// applyGroup copies scraped attributes onto a stored race. An exact date
// already on the race is never replaced by the January 1 placeholder.
func applyGroup(r domain.Race, g domain.RaceGroup, meta GroupMetadata) (domain.Race, bool) {
	changed := false

	if g.SiteID != "" && g.SiteID != r.SiteGroupID {
		r.SiteGroupID = g.SiteID
		changed = true
	}
	if meta.City != "" && (r.City == nil || *r.City != meta.City) {
		r.City = strOrNil(meta.City)
		changed = true
	}
	if meta.DateStart != nil {
		if r.DateStart == nil || (r.DateIsApproximate && !r.DateStart.Equal(*meta.DateStart)) {
			r.DateStart = meta.DateStart
			r.DateIsApproximate = true
			changed = true
		}
	}
	return r, changed
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
