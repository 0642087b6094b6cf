package domain

import (
	"time"

	"github.com/google/uuid"
)

// Division is a scored category (discipline + gender) within one race.
// At most one division exists per (race, name, gender).
type Division struct {
	ID          uuid.UUID
	RaceID      uuid.UUID
	Name        DivisionName
	Gender      Gender
	SiteEventID string
	CreatedAt   time.Time
}

// SourceEvent is a {label, id} option from a results-site listing: an
// event of a race or a sex option of an event.
type SourceEvent struct {
	Label string
	ID    string
}

// DivisionFrequency is the number of races a division/gender pair appears in.
type DivisionFrequency struct {
	Name   DivisionName
	Gender Gender
	Races  int
}

// DivisionWithRace pairs a division with the race (and season number) that owns it.
type DivisionWithRace struct {
	Division
	Race RaceWithSeason
}
