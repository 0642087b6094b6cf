package domain

import (
	"time"

	"github.com/google/uuid"
)

// Race is one city event within a season. Name is the natural key within
// the season.
type Race struct {
	ID          uuid.UUID
	SeasonID    uuid.UUID
	Name        string
	SiteGroupID string
	DateStart   *time.Time
	DateEnd     *time.Time
	// DateIsApproximate marks DateStart as the January 1 placeholder derived
	// from the year in the event-group identifier.
	DateIsApproximate bool
	Country           *string
	City              *string
	Venue             *string
	Region            *string

	IsWorldChampionship    bool
	IsRegionalChampionship bool
	IsNationalChampionship bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RaceGroup is an event-group listing ("2025 Stuttgart") from the results site.
type RaceGroup struct {
	SiteID string
	Name   string
}

// RaceWithSeason pairs a race with the number of the season that owns it.
type RaceWithSeason struct {
	Race
	SeasonNumber int
}
