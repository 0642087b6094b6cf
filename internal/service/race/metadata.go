package race

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var groupNameRe = regexp.MustCompile(`^(\d{4})\s*(.+)`)

// GroupMetadata is what can be read from an event-group name such as
// "2025 Stuttgart".
type GroupMetadata struct {
	Year int
	City string
	// DateStart is January 1 of Year. It is a placeholder, not the event date.
	DateStart *time.Time
}

// ParseGroupMetadata splits a leading four-digit year from the city. Names
// without a year fall back to their last word as the city.
func ParseGroupMetadata(name string) GroupMetadata {
	name = strings.TrimSpace(name)

	if m := groupNameRe.FindStringSubmatch(name); m != nil {
		year, _ := strconv.Atoi(m[1])
		meta := GroupMetadata{Year: year, City: strings.TrimSpace(m[2])}
		if year > 0 {
			d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
			meta.DateStart = &d
		}
		return meta
	}

	fields := strings.Fields(name)
	if len(fields) == 0 {
		return GroupMetadata{}
	}
	return GroupMetadata{City: fields[len(fields)-1]}
}
