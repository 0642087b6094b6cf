package race

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

// List returns the races of one season, or of every season when
// seasonNumber is zero.
func (s *Service) List(ctx context.Context, seasonNumber int) ([]domain.RaceWithSeason, error) {
	if seasonNumber == 0 {
		races, err := s.races.ListWithSeason(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("list races: %w", err)
		}
		return races, nil
	}

	season, err := s.seasons.GetByNumber(ctx, seasonNumber)
	if err != nil {
		return nil, fmt.Errorf("get season %d: %w", seasonNumber, err)
	}
	races, err := s.races.ListBySeason(ctx, season.ID)
	if err != nil {
		return nil, fmt.Errorf("list races of season %d: %w", seasonNumber, err)
	}

	out := make([]domain.RaceWithSeason, len(races))
	for i, r := range races {
		out[i] = domain.RaceWithSeason{Race: r, SeasonNumber: season.Number}
	}
	return out, nil
}

// Find resolves a race by name. With seasonNumber zero the name must be
// unique across seasons, otherwise domain.ErrConflict is returned.
func (s *Service) Find(ctx context.Context, seasonNumber int, name string) (domain.RaceWithSeason, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.RaceWithSeason{}, domain.NewValidationError("race", "required")
	}

	if seasonNumber != 0 {
		season, err := s.seasons.GetByNumber(ctx, seasonNumber)
		if err != nil {
			return domain.RaceWithSeason{}, fmt.Errorf("get season %d: %w", seasonNumber, err)
		}
		race, err := s.races.GetBySeasonAndName(ctx, season.ID, name)
		if err != nil {
			return domain.RaceWithSeason{}, fmt.Errorf("get race %q in season %d: %w", name, seasonNumber, err)
		}
		return domain.RaceWithSeason{Race: *race, SeasonNumber: season.Number}, nil
	}

	matches, err := s.races.ListWithSeason(ctx, name)
	if err != nil {
		return domain.RaceWithSeason{}, fmt.Errorf("find race %q: %w", name, err)
	}
	switch len(matches) {
	case 0:
		return domain.RaceWithSeason{}, fmt.Errorf("race %q: %w", name, domain.ErrNotFound)
	case 1:
		return matches[0], nil
	}

	numbers := make([]string, len(matches))
	for i, m := range matches {
		numbers[i] = fmt.Sprint(m.SeasonNumber)
	}
	return domain.RaceWithSeason{}, fmt.Errorf("race %q exists in seasons %s, pick one: %w",
		name, strings.Join(numbers, ", "), domain.ErrConflict)
}
