package domain

import (
	"time"

	"github.com/google/uuid"
)

// Result is one athlete's (or team's) finish in a division.
type Result struct {
	ID           uuid.UUID
	DivisionID   uuid.UUID
	FullName     string
	Nationality  string
	AgeGroup     string
	RankOverall  *int
	RankAgeGroup *int
	// TotalTimeMS is nil for rows without a finish time (DNF, DSQ).
	TotalTimeMS *int64
	DetailLink  string
	CreatedAt   time.Time
}

// TotalTime returns the formatted finish time or "-" if there is none.
func (r Result) TotalTime() string {
	if r.TotalTimeMS == nil {
		return "-"
	}
	return FormatMS(*r.TotalTimeMS)
}

// ResultRow is a result line as scraped from a ranking page, before parsing.
type ResultRow struct {
	RankOverall   string
	RankAgeGroup  string
	FullName      string
	Nationality   string
	AgeGroup      string
	TotalTimeText string
	DetailLink    string
}

// ResultQuery addresses one page of a division's ranking on the results site.
type ResultQuery struct {
	Season   int
	GroupID  string
	EventID  string
	SexCode  string
	Page     int
	PageSize int
}
