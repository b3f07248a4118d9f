package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts an HH:MM 24-hour string to minutes since midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in %q", clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in %q", clock)
	}
	return hours*60 + minutes, nil
}

// MinutesApart returns the absolute difference between two minutes-since-
// midnight values. Deliberately no midnight wraparound: 23:30 and 00:10 are
// 1400 minutes apart under this policy.
func MinutesApart(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
