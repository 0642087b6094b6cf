package division

import (
	"sort"
	"strings"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

const overallMarker = "OVERALL"

// longestFirst is the division vocabulary ordered by descending length.
// Equal lengths keep declaration order.
var longestFirst = func() []domain.DivisionName {
	names := domain.DivisionNames()
	sort.SliceStable(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	return names
}()

type candidate struct {
	event domain.SourceEvent
	norm  string
}

// FilterEvents reduces a race's event listing to at most one event per
// division. Only labels whose text before the first hyphen is exactly a
// division name are considered. When a division has several events (an
// aggregate plus per-day rankings) exactly one of them must be the
// "Overall" event; anything else is reported as *domain.AmbiguityError.
//
// The result is ordered longest division name first.
func FilterEvents(events []domain.SourceEvent) ([]domain.SourceEvent, error) {
	pool := make([]candidate, 0, len(events))
	for _, ev := range events {
		prefix, _, _ := strings.Cut(ev.Label, "-")
		if _, err := domain.ParseDivisionName(prefix); err != nil {
			continue
		}
		pool = append(pool, candidate{event: ev, norm: domain.NormalizeLabel(ev.Label)})
	}

	var out []domain.SourceEvent
	for _, name := range longestFirst {
		if len(pool) == 0 {
			break
		}

		var group, rest []candidate
		for _, c := range pool {
			if strings.Contains(c.norm, string(name)) {
				group = append(group, c)
			} else {
				rest = append(rest, c)
			}
		}
		pool = rest

		switch len(group) {
		case 0:
			continue
		case 1:
			out = append(out, group[0].event)
			continue
		}

		var overall []candidate
		for _, c := range group {
			if strings.Contains(c.norm, overallMarker) {
				overall = append(overall, c)
			}
		}
		if len(overall) != 1 {
			labels := make([]string, len(group))
			for i, c := range group {
				labels[i] = c.event.Label
			}
			return nil, &domain.AmbiguityError{Division: name, Labels: labels, Overall: len(overall)}
		}
		out = append(out, overall[0].event)
	}
	return out, nil
}
