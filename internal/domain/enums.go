package domain

import "strings"

// DivisionName is the canonical competition discipline of a division.
type DivisionName string

const (
	DivisionHyrox               DivisionName = "HYROX"
	DivisionHyroxDoubles        DivisionName = "HYROX DOUBLES"
	DivisionHyroxPro            DivisionName = "HYROX PRO"
	DivisionHyroxProDoubles     DivisionName = "HYROX PRO DOUBLES"
	DivisionHyroxTeamRelay      DivisionName = "HYROX TEAM RELAY"
	DivisionHyroxElite15        DivisionName = "HYROX ELITE 15"
	DivisionHyroxElite          DivisionName = "HYROX ELITE"
	DivisionHyroxDoublesElite15 DivisionName = "HYROX DOUBLES ELITE 15"
	DivisionHyroxAdaptive       DivisionName = "HYROX ADAPTIVE"
)

// divisionTable is the closed division vocabulary in declaration order.
// Declaration order breaks ties between equal-length matches.
var divisionTable = [...]struct {
	name    DivisionName
	display string
}{
	{DivisionHyrox, "Hyrox"},
	{DivisionHyroxDoubles, "Hyrox Doubles"},
	{DivisionHyroxPro, "Hyrox Pro"},
	{DivisionHyroxProDoubles, "Hyrox Pro Doubles"},
	{DivisionHyroxTeamRelay, "Hyrox Team Relay"},
	{DivisionHyroxElite15, "Hyrox Elite 15"},
	{DivisionHyroxElite, "Hyrox Elite"},
	{DivisionHyroxDoublesElite15, "Hyrox Doubles Elite 15"},
	{DivisionHyroxAdaptive, "Hyrox Adaptive"},
}

// DivisionNames returns the division vocabulary in declaration order.
func DivisionNames() []DivisionName {
	names := make([]DivisionName, len(divisionTable))
	for i, e := range divisionTable {
		names[i] = e.name
	}
	return names
}

func (d DivisionName) String() string { return string(d) }

func (d DivisionName) IsValid() bool {
	switch d {
	case DivisionHyrox, DivisionHyroxDoubles, DivisionHyroxPro, DivisionHyroxProDoubles,
		DivisionHyroxTeamRelay, DivisionHyroxElite15, DivisionHyroxElite,
		DivisionHyroxDoublesElite15, DivisionHyroxAdaptive:
		return true
	}
	return false
}

// Display returns the human-readable name, or the raw value for unknown divisions.
func (d DivisionName) Display() string {
	for _, e := range divisionTable {
		if e.name == d {
			return e.display
		}
	}
	return string(d)
}

// AllowsMixed reports whether the discipline has a mixed-gender category.
func (d DivisionName) AllowsMixed() bool {
	return d == DivisionHyroxDoubles || d == DivisionHyroxTeamRelay
}

// ParseDivisionName resolves operator input such as "hyrox pro" to a
// vocabulary value. Unlike ClassifyDivision it requires an exact match.
func ParseDivisionName(s string) (DivisionName, error) {
	norm := NormalizeLabel(s)
	for _, e := range divisionTable {
		if string(e.name) == norm {
			return e.name, nil
		}
	}
	return "", NewValidationError("division", "unknown division "+strings.TrimSpace(s))
}

// Gender is the canonical gender category of a division.
type Gender string

const (
	GenderMen   Gender = "MEN"
	GenderWomen Gender = "WOMEN"
	GenderMixed Gender = "MIXED"
)

var genderTable = [...]struct {
	gender   Gender
	display  string
	siteCode string
}{
	{GenderMen, "Men", "M"},
	{GenderWomen, "Women", "W"},
	{GenderMixed, "Mixed", "X"},
}

// Genders returns the gender vocabulary in declaration order.
func Genders() []Gender {
	out := make([]Gender, len(genderTable))
	for i, e := range genderTable {
		out[i] = e.gender
	}
	return out
}

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMen, GenderWomen, GenderMixed:
		return true
	}
	return false
}

// Display returns the human-readable name, or the raw value for unknown genders.
func (g Gender) Display() string {
	for _, e := range genderTable {
		if e.gender == g {
			return e.display
		}
	}
	return string(g)
}

// SiteCode returns the value the results site expects in its sex filter.
func (g Gender) SiteCode() string {
	for _, e := range genderTable {
		if e.gender == g {
			return e.siteCode
		}
	}
	return "%"
}

// ParseGender resolves operator input such as "women" to a vocabulary value.
func ParseGender(s string) (Gender, error) {
	if g, ok := ClassifyGender(s); ok {
		return g, nil
	}
	return "", NewValidationError("gender", "unknown gender "+strings.TrimSpace(s))
}
