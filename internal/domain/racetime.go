package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimeMS converts a race clock reading to milliseconds.
// Accepted forms are "H:MM:SS" and "MM:SS"; anything else wraps ErrInvalidFormat.
func ParseTimeMS(text string) (int64, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("race time %q: %w", text, ErrInvalidFormat)
	}

	nums := make([]int64, len(parts))
	for i, p := range parts {
		if p == "" || strings.TrimLeft(p, "0123456789") != "" {
			return 0, fmt.Errorf("race time %q: %w", text, ErrInvalidFormat)
		}
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("race time %q: %w", text, ErrInvalidFormat)
		}
		nums[i] = n
	}

	var hours, minutes, seconds int64
	if len(nums) == 3 {
		hours, minutes, seconds = nums[0], nums[1], nums[2]
		if minutes >= 60 {
			return 0, fmt.Errorf("race time %q: minutes out of range: %w", text, ErrInvalidFormat)
		}
	} else {
		minutes, seconds = nums[0], nums[1]
	}
	if seconds >= 60 {
		return 0, fmt.Errorf("race time %q: seconds out of range: %w", text, ErrInvalidFormat)
	}

	return ((hours*60+minutes)*60 + seconds) * 1000, nil
}

// FormatMS renders milliseconds as "H:MM:SS" when at least one hour has
// elapsed and as "MM:SS" otherwise. Sub-second precision is truncated.
func FormatMS(ms int64) string {
	if ms < 0 {
		return "-" + FormatMS(-ms)
	}
	total := ms / 1000
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
