package result

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

// ParseRow converts a scraped ranking row. Ranks that are not positive
// integers and times that do not parse (DNF, DSQ) become nil. Rows
// without an athlete name are rejected.
func ParseRow(row domain.ResultRow) (domain.Result, bool) {
	name := strings.TrimSpace(row.FullName)
	if name == "" {
		return domain.Result{}, false
	}

	return domain.Result{
		FullName:     name,
		Nationality:  strings.TrimSpace(row.Nationality),
		AgeGroup:     strings.TrimSpace(row.AgeGroup),
		RankOverall:  parseRank(row.RankOverall),
		RankAgeGroup: parseRank(row.RankAgeGroup),
		TotalTimeMS:  parseTime(row.TotalTimeText),
		DetailLink:   strings.TrimSpace(row.DetailLink),
	}, true
}

func parseRank(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

func parseTime(s string) *int64 {
	ms, err := domain.ParseTimeMS(s)
	if err != nil {
		return nil
	}
	return &ms
}
