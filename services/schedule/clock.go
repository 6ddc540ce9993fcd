package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts an "HH:MM" or "HH:MM:SS" label to minutes from
// midnight. Seconds are truncated; all slot math is minute arithmetic.
func ParseClock(raw string) (int, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("malformed clock value %q", raw)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("malformed hour in clock value %q", raw)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("malformed minute in clock value %q", raw)
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes from midnight as a zero-padded "HH:MM" label.
// Zero padding keeps lexicographic and chronological order identical.
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
