package testhelper

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

// Season numbers handed out by NextSeasonNumber; they must not collide
// across parallel tests sharing one database.
var (
	seasonMu   sync.Mutex
	seasonNext = 1000
)

// NextSeasonNumber returns a season number unused by any other seeded season.
func NextSeasonNumber() int {
	seasonMu.Lock()
	defer seasonMu.Unlock()
	seasonNext++
	return seasonNext
}

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedSeason inserts a season with a fresh number, name and URL.
func SeedSeason(t *testing.T, pool *pgxpool.Pool) domain.Season {
	t.Helper()

	n := NextSeasonNumber()
	s := domain.Season{
		ID:          uuid.New(),
		Number:      n,
		Name:        "Season " + uniqueSuffix(),
		ResultsURL:  "https://results.example.com/season-" + uniqueSuffix() + "/",
		LastUpdated: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO seasons (id, number, name, results_url, last_updated) VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.Number, s.Name, s.ResultsURL, s.LastUpdated,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSeason: %v", err)
	}
	return s
}

// SeedRace inserts a race named name into the season.
func SeedRace(t *testing.T, pool *pgxpool.Pool, seasonID uuid.UUID, name string) domain.Race {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	r := domain.Race{
		ID:          uuid.New(),
		SeasonID:    seasonID,
		Name:        name,
		SiteGroupID: "grp-" + uniqueSuffix(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO races (id, season_id, name, site_group_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		r.ID, r.SeasonID, r.Name, r.SiteGroupID, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRace: %v", err)
	}
	return r
}

// SeedDivision inserts a division into the race.
func SeedDivision(t *testing.T, pool *pgxpool.Pool, raceID uuid.UUID, name domain.DivisionName, gender domain.Gender) domain.Division {
	t.Helper()

	d := domain.Division{
		ID:          uuid.New(),
		RaceID:      raceID,
		Name:        name,
		Gender:      gender,
		SiteEventID: "evt-" + uniqueSuffix(),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO divisions (id, race_id, division, gender, site_event_id, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		d.ID, d.RaceID, string(d.Name), string(d.Gender), d.SiteEventID, d.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDivision: %v", err)
	}
	return d
}

// SeedResults inserts n ranked results into the division and returns them.
func SeedResults(t *testing.T, pool *pgxpool.Pool, divisionID uuid.UUID, n int) []domain.Result {
	t.Helper()

	out := make([]domain.Result, 0, n)
	for i := 1; i <= n; i++ {
		rank := i
		ms := int64(3600000 + i*1000)
		res := domain.Result{
			ID:          uuid.New(),
			DivisionID:  divisionID,
			FullName:    "Athlete " + uniqueSuffix(),
			Nationality: "GER",
			AgeGroup:    "30-34",
			RankOverall: &rank,
			TotalTimeMS: &ms,
			CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
		}
		_, err := pool.Exec(context.Background(),
			`INSERT INTO results (id, division_id, full_name, nationality, age_group, rank_overall, total_time_ms, detail_link, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			res.ID, res.DivisionID, res.FullName, res.Nationality, res.AgeGroup, res.RankOverall, res.TotalTimeMS, res.DetailLink, res.CreatedAt,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedResults: %v", err)
		}
		out = append(out, res)
	}
	return out
}
