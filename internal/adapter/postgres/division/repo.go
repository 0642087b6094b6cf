// Package division implements the Division repository using PostgreSQL.
package division

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

const table = "divisions"

var (
	columns   = []string{"id", "race_id", "division", "gender", "site_event_id", "created_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

// Repo provides division persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new division repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the division of a race for a discipline and gender.
// Returns domain.ErrNotFound if none exists.
func (r *Repo) Get(ctx context.Context, raceID uuid.UUID, name domain.DivisionName, gender domain.Gender) (*domain.Division, error) {
	stmt := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"race_id": raceID, "division": string(name), "gender": string(gender)})

	d, err := scanDivision(postgres.QueryRow(ctx, r.pool, stmt))
	if err != nil {
		return nil, postgres.MapError(err, "division", key(name, gender))
	}
	return &d, nil
}

// ListByRace returns the divisions of a race ordered by discipline and gender.
func (r *Repo) ListByRace(ctx context.Context, raceID uuid.UUID) ([]domain.Division, error) {
	stmt := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"race_id": raceID}).
		OrderBy("division ASC", "gender ASC")

	rows, err := postgres.Query(ctx, r.pool, stmt)
	if err != nil {
		return nil, postgres.MapError(err, "division", raceID)
	}
	defer rows.Close()

	divisions := []domain.Division{}
	for rows.Next() {
		d, err := scanDivision(rows)
		if err != nil {
			return nil, postgres.MapError(err, "division", raceID)
		}
		divisions = append(divisions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "division", raceID)
	}
	return divisions, nil
}

// CountRacesPerDivision ranks (discipline, gender) pairs by the number of
// distinct races they appear in, most frequent first.
func (r *Repo) CountRacesPerDivision(ctx context.Context) ([]domain.DivisionFrequency, error) {
	stmt := postgres.Builder().
		Select("division", "gender", "COUNT(DISTINCT race_id) AS races").
		From(table).
		GroupBy("division", "gender").
		OrderBy("races DESC", "division ASC", "gender ASC")

	rows, err := postgres.Query(ctx, r.pool, stmt)
	if err != nil {
		return nil, postgres.MapError(err, "division", "rank")
	}
	defer rows.Close()

	out := []domain.DivisionFrequency{}
	for rows.Next() {
		var (
			name, gender string
			f            domain.DivisionFrequency
		)
		if err := rows.Scan(&name, &gender, &f.Races); err != nil {
			return nil, postgres.MapError(err, "division", "rank")
		}
		f.Name = domain.DivisionName(name)
		f.Gender = domain.Gender(gender)
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "division", "rank")
	}
	return out, nil
}

// Create inserts a division. A duplicate (race, discipline, gender) yields
// domain.ErrAlreadyExists; a forbidden mixed combination yields domain.ErrValidation.
func (r *Repo) Create(ctx context.Context, d domain.Division) (domain.Division, error) {
	stmt := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(d.ID, d.RaceID, string(d.Name), string(d.Gender), d.SiteEventID, d.CreatedAt).
		Suffix(returning)

	created, err := scanDivision(postgres.QueryRow(ctx, r.pool, stmt))
	if err != nil {
		return domain.Division{}, postgres.MapError(err, "division", key(d.Name, d.Gender))
	}
	return created, nil
}

// SetSiteEventID backfills the results-site event id of a division.
func (r *Repo) SetSiteEventID(ctx context.Context, id uuid.UUID, siteEventID string) error {
	n, err := postgres.Exec(ctx, r.pool, postgres.Builder().
		Update(table).
		Set("site_event_id", siteEventID).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "division", id)
	}
	if n == 0 {
		return fmt.Errorf("division %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByRace removes every division of a race.
func (r *Repo) DeleteByRace(ctx context.Context, raceID uuid.UUID) (int64, error) {
	n, err := postgres.Exec(ctx, r.pool, postgres.Builder().Delete(table).Where(sq.Eq{"race_id": raceID}))
	if err != nil {
		return 0, postgres.MapError(err, "division", raceID)
	}
	return n, nil
}

// DeleteBySeason removes every division of every race in a season.
func (r *Repo) DeleteBySeason(ctx context.Context, seasonID uuid.UUID) (int64, error) {
	n, err := postgres.Exec(ctx, r.pool, postgres.Builder().
		Delete(table).
		Where(sq.Expr("race_id IN (SELECT id FROM races WHERE season_id = ?)", seasonID)))
	if err != nil {
		return 0, postgres.MapError(err, "division", seasonID)
	}
	return n, nil
}

func key(name domain.DivisionName, gender domain.Gender) string {
	return string(name) + "/" + string(gender)
}

func scanDivision(row pgx.Row) (domain.Division, error) {
	var (
		d            domain.Division
		name, gender string
	)
	if err := row.Scan(&d.ID, &d.RaceID, &name, &gender, &d.SiteEventID, &d.CreatedAt); err != nil {
		return domain.Division{}, err
	}
	d.Name = domain.DivisionName(name)
	d.Gender = domain.Gender(gender)
	return d, nil
}
