// Package season implements the Season repository using PostgreSQL.
package season

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/hyrox-results/internal/adapter/postgres"
	"github.com/heartmarshall/hyrox-results/internal/domain"
)

const table = "seasons"

var (
	columns   = []string{"id", "number", "name", "results_url", "last_updated"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

// Repo provides season persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new season repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByNumber returns the season with the given sequence number.
// Returns domain.ErrNotFound if none exists.
func (r *Repo) GetByNumber(ctx context.Context, number int) (*domain.Season, error) {
	stmt := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"number": number})

	s, err := scanSeason(postgres.QueryRow(ctx, r.pool, stmt))
	if err != nil {
		return nil, postgres.MapError(err, "season", number)
	}
	return &s, nil
}

// List returns all seasons ordered by number.
func (r *Repo) List(ctx context.Context) ([]domain.Season, error) {
	stmt := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("number ASC")

	rows, err := postgres.Query(ctx, r.pool, stmt)
	if err != nil {
		return nil, postgres.MapError(err, "season", "list")
	}
	defer rows.Close()

	seasons := []domain.Season{}
	for rows.Next() {
		s, err := scanSeason(rows)
		if err != nil {
			return nil, postgres.MapError(err, "season", "list")
		}
		seasons = append(seasons, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "season", "list")
	}
	return seasons, nil
}

// Create inserts a season and returns the stored row.
func (r *Repo) Create(ctx context.Context, s domain.Season) (domain.Season, error) {
	stmt := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(s.ID, s.Number, s.Name, s.ResultsURL, s.LastUpdated).
		Suffix(returning)

	created, err := scanSeason(postgres.QueryRow(ctx, r.pool, stmt))
	if err != nil {
		return domain.Season{}, postgres.MapError(err, "season", s.Number)
	}
	return created, nil
}

// Update overwrites name, results URL and last-updated of an existing season.
func (r *Repo) Update(ctx context.Context, s domain.Season) (domain.Season, error) {
	stmt := postgres.Builder().
		Update(table).
		Set("name", s.Name).
		Set("results_url", s.ResultsURL).
		Set("last_updated", s.LastUpdated).
		Where(sq.Eq{"id": s.ID}).
		Suffix(returning)

	updated, err := scanSeason(postgres.QueryRow(ctx, r.pool, stmt))
	if err != nil {
		return domain.Season{}, postgres.MapError(err, "season", s.Number)
	}
	return updated, nil
}

// Delete removes a season row. Child races must already be gone.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, r.pool, postgres.Builder().Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "season", id)
	}
	if n == 0 {
		return fmt.Errorf("season %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanSeason(row pgx.Row) (domain.Season, error) {
	var s domain.Season
	err := row.Scan(&s.ID, &s.Number, &s.Name, &s.ResultsURL, &s.LastUpdated)
	return s, err
}
