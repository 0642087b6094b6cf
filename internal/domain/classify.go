package domain

import (
	"fmt"
	"strings"
)

// ClassifyDivision resolves a raw event label to a division. Among all
// vocabulary values contained in the label (case-insensitive) the longest
// wins, so "HYROX PRO DOUBLES" is never reported as "HYROX PRO". Equal-length
// matches resolve to the value declared first.
func ClassifyDivision(label string) (DivisionName, bool) {
	norm := NormalizeLabel(label)
	if norm == "" {
		return "", false
	}

	var best DivisionName
	for _, e := range divisionTable {
		if len(e.name) <= len(best) {
			continue
		}
		if strings.Contains(norm, string(e.name)) {
			best = e.name
		}
	}
	return best, best != ""
}

// ClassifyGender resolves a raw gender option to a gender. Only whole-label
// matches count: "Women's Doubles" is not classified.
func ClassifyGender(label string) (Gender, bool) {
	norm := NormalizeLabel(label)
	for _, e := range genderTable {
		if string(e.gender) == norm {
			return e.gender, true
		}
	}
	return "", false
}

// ValidCombination reports whether a division may be created for the gender.
// Mixed categories exist only for doubles and team relay.
func ValidCombination(division DivisionName, gender Gender) bool {
	if gender != GenderMixed {
		return true
	}
	return division.AllowsMixed()
}

// CheckCombination validates both vocabulary membership and the
// mixed-gender rule. The returned error wraps ErrValidation or
// ErrInvalidCombination.
func CheckCombination(division DivisionName, gender Gender) error {
	if !division.IsValid() {
		return NewValidationError("division", fmt.Sprintf("unknown division %q", division))
	}
	if !gender.IsValid() {
		return NewValidationError("gender", fmt.Sprintf("unknown gender %q", gender))
	}
	if !ValidCombination(division, gender) {
		return fmt.Errorf("%s + %s: %w", division, gender, ErrInvalidCombination)
	}
	return nil
}
