// Package result implements the Result repository using PostgreSQL.
// Results are leaf rows: they are inserted in bulk and replaced wholesale
// when a division is scraped again.
package result

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/hyrox-results/internal/adapter/postgres"
	"github.com/heartmarshall/hyrox-results/internal/domain"
)

const table = "results"

// insertChunkSize keeps a multi-row INSERT well below the 65535 bind-parameter limit.
const insertChunkSize = 500

var columns = []string{
	"id", "division_id", "full_name", "nationality", "age_group",
	"rank_overall", "rank_age_group", "total_time_ms", "detail_link", "created_at",
}

// Repo provides result persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new result repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByDivision returns the results of a division ordered by overall rank;
// unranked rows come last.
func (r *Repo) ListByDivision(ctx context.Context, divisionID uuid.UUID) ([]domain.Result, error) {
	stmt := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"division_id": divisionID}).
		OrderBy("rank_overall ASC NULLS LAST", "full_name ASC")

	rows, err := postgres.Query(ctx, r.pool, stmt)
	if err != nil {
		return nil, postgres.MapError(err, "result", divisionID)
	}
	defer rows.Close()

	results := []domain.Result{}
	for rows.Next() {
		var res domain.Result
		if err := rows.Scan(
			&res.ID, &res.DivisionID, &res.FullName, &res.Nationality, &res.AgeGroup,
			&res.RankOverall, &res.RankAgeGroup, &res.TotalTimeMS, &res.DetailLink, &res.CreatedAt,
		); err != nil {
			return nil, postgres.MapError(err, "result", divisionID)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "result", divisionID)
	}
	return results, nil
}

// CreateBatch inserts results with multi-row INSERTs. It should run inside a
// transaction so a failing chunk does not leave a partial division behind.
func (r *Repo) CreateBatch(ctx context.Context, results []domain.Result) (int, error) {
	inserted := 0
	for start := 0; start < len(results); start += insertChunkSize {
		end := min(start+insertChunkSize, len(results))

		stmt := postgres.Builder().Insert(table).Columns(columns...)
		for _, res := range results[start:end] {
			stmt = stmt.Values(
				res.ID, res.DivisionID, res.FullName, res.Nationality, res.AgeGroup,
				res.RankOverall, res.RankAgeGroup, res.TotalTimeMS, res.DetailLink, res.CreatedAt,
			)
		}

		n, err := postgres.Exec(ctx, r.pool, stmt)
		if err != nil {
			return inserted, postgres.MapError(err, "result batch", results[start].DivisionID)
		}
		inserted += int(n)
	}
	return inserted, nil
}

// DeleteByDivision removes every result of a division.
func (r *Repo) DeleteByDivision(ctx context.Context, divisionID uuid.UUID) (int64, error) {
	n, err := postgres.Exec(ctx, r.pool, postgres.Builder().Delete(table).Where(sq.Eq{"division_id": divisionID}))
	if err != nil {
		return 0, postgres.MapError(err, "result", divisionID)
	}
	return n, nil
}

// DeleteByRace removes every result of every division of a race.
func (r *Repo) DeleteByRace(ctx context.Context, raceID uuid.UUID) (int64, error) {
	n, err := postgres.Exec(ctx, r.pool, postgres.Builder().
		Delete(table).
		Where(sq.Expr("division_id IN (SELECT id FROM divisions WHERE race_id = ?)", raceID)))
	if err != nil {
		return 0, postgres.MapError(err, "result", raceID)
	}
	return n, nil
}

// DeleteBySeason removes every result below a season.
func (r *Repo) DeleteBySeason(ctx context.Context, seasonID uuid.UUID) (int64, error) {
	n, err := postgres.Exec(ctx, r.pool, postgres.Builder().
		Delete(table).
		Where(sq.Expr(`division_id IN (
			SELECT d.id FROM divisions d JOIN races r ON r.id = d.race_id WHERE r.season_id = ?)`, seasonID)))
	if err != nil {
		return 0, postgres.MapError(err, "result", seasonID)
	}
	return n, nil
}
