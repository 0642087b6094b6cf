package division

import (
	"context"
	"fmt"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

// List returns the divisions of one race.
func (s *Service) List(ctx context.Context, seasonNumber int, raceName string) ([]domain.DivisionWithRace, error) {
	race, err := s.races.Find(ctx, seasonNumber, raceName)
	if err != nil {
		return nil, err
	}

	divisions, err := s.divisions.ListByRace(ctx, race.ID)
	if err != nil {
		return nil, fmt.Errorf("list divisions of %q: %w", race.Name, err)
	}

	out := make([]domain.DivisionWithRace, len(divisions))
	for i, d := range divisions {
		out[i] = domain.DivisionWithRace{Division: d, Race: race}
	}
	return out, nil
}

// Find resolves one division by race, discipline and gender.
func (s *Service) Find(
	ctx context.Context,
	seasonNumber int,
	raceName string,
	name domain.DivisionName,
	gender domain.Gender,
) (domain.DivisionWithRace, error) {
	race, err := s.races.Find(ctx, seasonNumber, raceName)
	if err != nil {
		return domain.DivisionWithRace{}, err
	}

	d, err := s.divisions.Get(ctx, race.ID, name, gender)
	if err != nil {
		return domain.DivisionWithRace{}, fmt.Errorf("division %s %s in %q: %w", name, gender, race.Name, err)
	}
	return domain.DivisionWithRace{Division: *d, Race: race}, nil
}

// Rank counts in how many races each division/gender pair appears, most
// common first.
func (s *Service) Rank(ctx context.Context) ([]domain.DivisionFrequency, error) {
	freq, err := s.divisions.CountRacesPerDivision(ctx)
	if err != nil {
		return nil, fmt.Errorf("rank divisions: %w", err)
	}
	return freq, nil
}
