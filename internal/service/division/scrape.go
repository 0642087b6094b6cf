package division

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

type discovered struct {
	name    domain.DivisionName
	gender  domain.Gender
	eventID string
}

// Scrape discovers the divisions of one race. All source calls happen
// before the store is touched; the writes then run in one transaction.
func (s *Service) Scrape(ctx context.Context, seasonNumber int, raceName string) (domain.UpsertStats, error) {
	race, err := s.races.Find(ctx, seasonNumber, raceName)
	if err != nil {
		return domain.UpsertStats{}, err
	}
	return s.scrapeRace(ctx, race)
}

// ScrapeSeason discovers divisions for every race of a season. Races are
// independent: a failing race is logged and reported, the rest still run.
func (s *Service) ScrapeSeason(ctx context.Context, seasonNumber int) (domain.UpsertStats, error) {
	if seasonNumber <= 0 {
		return domain.UpsertStats{}, domain.NewValidationError("season", "must be positive")
	}

	races, err := s.races.List(ctx, seasonNumber)
	if err != nil {
		return domain.UpsertStats{}, err
	}

	var total domain.UpsertStats
	var errs []error
	for i, race := range races {
		if i > 0 {
			if err := sleepCtx(ctx, s.politeDelay); err != nil {
				return total, err
			}
		}

		stats, err := s.scrapeRace(ctx, race)
		if err != nil {
			if ctx.Err() != nil {
				return total, err
			}
			s.log.ErrorContext(ctx, "race scrape failed",
				slog.String("race", race.Name),
				slog.String("error", err.Error()),
			)
			errs = append(errs, err)
			continue
		}
		total.Add(stats)
	}
	return total, errors.Join(errs...)
}

func (s *Service) scrapeRace(ctx context.Context, race domain.RaceWithSeason) (domain.UpsertStats, error) {
	group := groupID(race)

	events, err := s.source.ListEvents(ctx, race.SeasonNumber, group)
	if err != nil {
		return domain.UpsertStats{}, fmt.Errorf("race %q: list events: %w", race.Name, err)
	}
	filtered, err := FilterEvents(events)
	if err != nil {
		return domain.UpsertStats{}, fmt.Errorf("race %q: %w", race.Name, err)
	}

	var found []discovered
	for _, ev := range filtered {
		name, ok := domain.ClassifyDivision(ev.Label)
		if !ok {
			continue
		}
		options, err := s.source.ListGenders(ctx, race.SeasonNumber, group, ev.ID)
		if err != nil {
			return domain.UpsertStats{}, fmt.Errorf("race %q: list genders of %s: %w", race.Name, name, err)
		}
		for _, opt := range options {
			gender, ok := domain.ClassifyGender(opt.Label)
			if !ok {
				s.log.DebugContext(ctx, "gender option ignored",
					slog.String("race", race.Name),
					slog.String("label", opt.Label),
				)
				continue
			}
			found = append(found, discovered{name: name, gender: gender, eventID: ev.ID})
		}
	}

	var stats domain.UpsertStats
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		stats = domain.UpsertStats{}
		for _, d := range found {
			action, err := s.Upsert(txCtx, race.ID, d.name, d.gender, d.eventID)
			if err != nil {
				return err
			}
			stats.Record(action)
		}
		return nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "division upsert rolled back",
			slog.String("race", race.Name),
			slog.String("error", err.Error()),
		)
		return domain.UpsertStats{}, fmt.Errorf("race %q: %w", race.Name, err)
	}

	s.log.InfoContext(ctx, "divisions upserted",
		slog.Int("season", race.SeasonNumber),
		slog.String("race", race.Name),
		slog.Int("events", len(events)),
		slog.Int("kept", len(filtered)),
		slog.Int("inserted", stats.Inserted),
		slog.Int("updated", stats.Updated),
		slog.Int("skipped", stats.Skipped),
	)
	return stats, nil
}

// sleepCtx waits for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
