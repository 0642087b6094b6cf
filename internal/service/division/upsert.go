package division

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/hyrox-results/internal/domain"
)

// Upsert creates the division (race, name, gender) unless it already exists.
// Existing divisions are immutable apart from backfilling an empty site
// event id. Mixed-gender combinations that the format does not allow are
// logged and skipped.
func (s *Service) Upsert(
	ctx context.Context,
	raceID uuid.UUID,
	name domain.DivisionName,
	gender domain.Gender,
	siteEventID string,
) (domain.UpsertAction, error) {
	if err := domain.CheckCombination(name, gender); err != nil {
		if errors.Is(err, domain.ErrInvalidCombination) {
			s.log.WarnContext(ctx, "division skipped",
				slog.String("race_id", raceID.String()),
				slog.String("division", name.String()),
				slog.String("gender", gender.String()),
				slog.String("reason", err.Error()),
			)
			return domain.ActionSkipped, nil
		}
		return domain.ActionSkipped, err
	}

	existing, err := s.divisions.Get(ctx, raceID, name, gender)
	switch {
	case err == nil:
		if existing.SiteEventID == "" && siteEventID != "" {
			if err := s.divisions.SetSiteEventID(ctx, existing.ID, siteEventID); err != nil {
				return domain.ActionSkipped, fmt.Errorf("backfill event id of %s %s: %w", name, gender, err)
			}
			return domain.ActionUpdated, nil
		}
		s.log.DebugContext(ctx, "division exists",
			slog.String("race_id", raceID.String()),
			slog.String("division", name.String()),
			slog.String("gender", gender.String()),
		)
		return domain.ActionSkipped, nil
	case !errors.Is(err, domain.ErrNotFound):
		return domain.ActionSkipped, fmt.Errorf("get division %s %s: %w", name, gender, err)
	}

	_, err = s.divisions.Create(ctx, domain.Division{
		ID:          uuid.New(),
		RaceID:      raceID,
		Name:        name,
		Gender:      gender,
		SiteEventID: siteEventID,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return domain.ActionSkipped, fmt.Errorf("create division %s %s: %w", name, gender, err)
	}
	return domain.ActionInserted, nil
}
