package season

import (
	"context"
	"fmt"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

// List returns every stored season ordered by number.
func (s *Service) List(ctx context.Context) ([]domain.Season, error) {
	seasons, err := s.seasons.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return seasons, nil
}

// Get returns the season with the given number.
func (s *Service) Get(ctx context.Context, number int) (*domain.Season, error) {
	if number <= 0 {
		return nil, domain.NewValidationError("season", "must be positive")
	}
	season, err := s.seasons.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("get season %d: %w", number, err)
	}
	return season, nil
}
