package domain

import (
	"time"

	"github.com/google/uuid"
)

// Season is one yearly competition cycle on the results site.
type Season struct {
	ID          uuid.UUID
	Number      int
	Name        string
	ResultsURL  string
	LastUpdated time.Time
}

// ScrapedSeason is a season listing as published by the results site.
type ScrapedSeason struct {
	Number int
	Name   string
	URL    string
}

// UpsertStats counts what a reconciliation batch did.
type UpsertStats struct {
	Inserted int
	Updated  int
	Skipped  int
}

// Add accumulates o into s.
func (s *UpsertStats) Add(o UpsertStats) {
	s.Inserted += o.Inserted
	s.Updated += o.Updated
	s.Skipped += o.Skipped
}

// UpsertAction is what a single upsert did to the store.
type UpsertAction int

const (
	ActionSkipped UpsertAction = iota
	ActionInserted
	ActionUpdated
)

// Record counts one upsert outcome.
func (s *UpsertStats) Record(a UpsertAction) {
	switch a {
	case ActionInserted:
		s.Inserted++
	case ActionUpdated:
		s.Updated++
	default:
		s.Skipped++
	}
}

// DeleteStats counts rows removed by a cascading delete.
type DeleteStats struct {
	Seasons   int64
	Races     int64
	Divisions int64
	Results   int64
}
