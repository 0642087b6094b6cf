package result

import (
	"context"
	"fmt"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

// List returns a division with its stored results, best rank first.
func (s *Service) List(
	ctx context.Context,
	seasonNumber int,
	raceName string,
	name domain.DivisionName,
	gender domain.Gender,
) (domain.DivisionWithRace, []domain.Result, error) {
	div, err := s.divisions.Find(ctx, seasonNumber, raceName, name, gender)
	if err != nil {
		return domain.DivisionWithRace{}, nil, err
	}

	results, err := s.results.ListByDivision(ctx, div.ID)
	if err != nil {
		return domain.DivisionWithRace{}, nil, fmt.Errorf("list results: %w", err)
	}
	return div, results, nil
}
