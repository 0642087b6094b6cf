// Package race implements the Race repository using PostgreSQL.
// Races are addressed by their (season, name) natural key.
package race

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

const table = "races"

var columns = []string{
	"r.id", "r.season_id", "r.name", "r.site_group_id",
	"r.date_start", "r.date_end", "r.date_is_approximate",
	"r.country", "r.city", "r.venue", "r.region",
	"r.is_world_championship", "r.is_regional_championship", "r.is_national_championship",
	"r.created_at", "r.updated_at",
}

// Repo provides race persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new race repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetBySeasonAndName looks a race up by its natural key.
// Returns domain.ErrNotFound if none exists.
func (r *Repo) GetBySeasonAndName(ctx context.Context, seasonID uuid.UUID, name string) (*domain.Race, error) {
	stmt := postgres.Builder().
		Select(columns...).
		From(table + " r").
		Where(sq.Eq{"r.season_id": seasonID, "r.name": name})

	race, err := scanRace(postgres.QueryRow(ctx, r.pool, stmt))
	if err != nil {
		return nil, postgres.MapError(err, "race", name)
	}
	return &race, nil
}

// ListBySeason returns the races of one season ordered by name.
func (r *Repo) ListBySeason(ctx context.Context, seasonID uuid.UUID) ([]domain.Race, error) {
	stmt := postgres.Builder().
		Select(columns...).
		From(table + " r").
		Where(sq.Eq{"r.season_id": seasonID}).
		OrderBy("r.name ASC")

	rows, err := postgres.Query(ctx, r.pool, stmt)
	if err != nil {
		return nil, postgres.MapError(err, "race", seasonID)
	}
	defer rows.Close()

	races := []domain.Race{}
	for rows.Next() {
		race, err := scanRace(rows)
		if err != nil {
			return nil, postgres.MapError(err, "race", seasonID)
		}
		races = append(races, race)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "race", seasonID)
	}
	return races, nil
}

// ListWithSeason returns races together with their season number, ordered by
// season then name. An empty name returns every race; otherwise only races
// with exactly that name are returned, across all seasons.
func (r *Repo) ListWithSeason(ctx context.Context, name string) ([]domain.RaceWithSeason, error) {
	stmt := postgres.Builder().
		Select(append(append([]string{}, columns...), "s.number")...).
		From(table + " r").
		Join("seasons s ON s.id = r.season_id").
		OrderBy("s.number ASC", "r.name ASC")
	if name != "" {
		stmt = stmt.Where(sq.Eq{"r.name": name})
	}

	rows, err := postgres.Query(ctx, r.pool, stmt)
	if err != nil {
		return nil, postgres.MapError(err, "race", name)
	}
	defer rows.Close()

	races := []domain.RaceWithSeason{}
	for rows.Next() {
		var rs domain.RaceWithSeason
		if err := rows.Scan(append(raceDest(&rs.Race), &rs.SeasonNumber)...); err != nil {
			return nil, postgres.MapError(err, "race", name)
		}
		races = append(races, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "race", name)
	}
	return races, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a race and returns the stored row.
func (r *Repo) Create(ctx context.Context, race domain.Race) (domain.Race, error) {
	stmt := postgres.Builder().
		Insert(table).
		Columns(bare(columns)...).
		Values(
			race.ID, race.SeasonID, race.Name, race.SiteGroupID,
			race.DateStart, race.DateEnd, race.DateIsApproximate,
			race.Country, race.City, race.Venue, race.Region,
			race.IsWorldChampionship, race.IsRegionalChampionship, race.IsNationalChampionship,
			race.CreatedAt, race.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(bare(columns), ", "))

	created, err := scanRace(postgres.QueryRow(ctx, r.pool, stmt))
	if err != nil {
		return domain.Race{}, postgres.MapError(err, "race", race.Name)
	}
	return created, nil
}

// Update overwrites the mutable attributes of a race. Championship flags
// are left alone: they are curated by hand, not scraped.
func (r *Repo) Update(ctx context.Context, race domain.Race) (domain.Race, error) {
	stmt := postgres.Builder().
		Update(table).
		Set("site_group_id", race.SiteGroupID).
		Set("date_start", race.DateStart).
		Set("date_end", race.DateEnd).
		Set("date_is_approximate", race.DateIsApproximate).
		Set("country", race.Country).
		Set("city", race.City).
		Set("venue", race.Venue).
		Set("region", race.Region).
		Set("updated_at", race.UpdatedAt).
		Where(sq.Eq{"id": race.ID}).
		Suffix("RETURNING " + strings.Join(bare(columns), ", "))

	updated, err := scanRace(postgres.QueryRow(ctx, r.pool, stmt))
	if err != nil {
		return domain.Race{}, postgres.MapError(err, "race", race.Name)
	}
	return updated, nil
}

// Delete removes one race row. Its divisions must already be gone.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, r.pool, postgres.Builder().Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "race", id)
	}
	if n == 0 {
		return fmt.Errorf("race %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteBySeason removes every race of a season and returns how many were deleted.
func (r *Repo) DeleteBySeason(ctx context.Context, seasonID uuid.UUID) (int64, error) {
	n, err := postgres.Exec(ctx, r.pool, postgres.Builder().Delete(table).Where(sq.Eq{"season_id": seasonID}))
	if err != nil {
		return 0, postgres.MapError(err, "race", seasonID)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// bare strips the "r." alias for INSERT/RETURNING clauses.
func bare(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = strings.TrimPrefix(c, "r.")
	}
	return out
}

func raceDest(race *domain.Race) []any {
	return []any{
		&race.ID, &race.SeasonID, &race.Name, &race.SiteGroupID,
		&race.DateStart, &race.DateEnd, &race.DateIsApproximate,
		&race.Country, &race.City, &race.Venue, &race.Region,
		&race.IsWorldChampionship, &race.IsRegionalChampionship, &race.IsNationalChampionship,
		&race.CreatedAt, &race.UpdatedAt,
	}
}

func scanRace(row pgx.Row) (domain.Race, error) {
	var race domain.Race
	err := row.Scan(raceDest(&race)...)
	return race, err
}
