package domain

import (
	"strings"
	"unicode"
)

// NormalizeLabel prepares a scraped label for vocabulary matching:
//   - trims leading/trailing whitespace
//   - converts to uppercase
//   - collapses any run of whitespace (including NBSP) into one space
//
// Hyphens and digits are preserved.
func NormalizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return ""
	}
	label = strings.ToUpper(label)

	var b strings.Builder
	b.Grow(len(label))
	prevSpace := false
	for _, r := range label {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
