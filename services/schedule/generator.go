package schedule

import (
	"fmt"
	"sort"

	"tablero/models"
)

// GenerateSlots turns opening intervals into a sorted, deduplicated sequence
// of "HH:MM" labels on a fixed cadence. The walk is inclusive of the closing
// time: a seating exactly at closing is still a valid last slot. An empty
// interval list yields an empty slice, not an error.
func GenerateSlots(intervals []models.OpeningInterval, stepMinutes int) ([]string, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %d", ErrInvalidSchedule, stepMinutes)
	}

	seen := make(map[int]struct{})
	minutes := make([]int, 0)

	for _, iv := range intervals {
		if !iv.IsActive {
			continue
		}
		open, closeAt, err := IntervalBounds(iv)
		if err != nil {
			return nil, err
		}
		for m := open; m <= closeAt; m += stepMinutes {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			minutes = append(minutes, m)
		}
	}

	sort.Ints(minutes)

	slots := make([]string, len(minutes))
	for i, m := range minutes {
		slots[i] = FormatClock(m)
	}
	return slots, nil
}

// IntervalBounds parses an interval into minute bounds, rejecting intervals
// that close before they open.
func IntervalBounds(iv models.OpeningInterval) (open, closeAt int, err error) {
	open, err = ParseClock(iv.OpeningTime)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	closeAt, err = ParseClock(iv.ClosingTime)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	if open > closeAt {
		return 0, 0, fmt.Errorf("%w: closes %s before opening %s", ErrInvalidSchedule, iv.ClosingTime, iv.OpeningTime)
	}
	return open, closeAt, nil
}

// WithinInterval reports whether a minute of the day falls inside an
// interval, closing bound included. This is the slot-generation rule: the
// last seating may start exactly at closing time.
func WithinInterval(minute int, iv models.OpeningInterval) bool {
	if !iv.IsActive {
		return false
	}
	open, closeAt, err := IntervalBounds(iv)
	if err != nil {
		return false
	}
	return minute >= open && minute <= closeAt
}

// OpenAt reports whether the restaurant is open at the given minute. Unlike
// WithinInterval the closing bound is exclusive: at exactly closing time the
// restaurant reads closed. Both rules are intentional and must not be merged.
func OpenAt(minute int, intervals []models.OpeningInterval) bool {
	for _, iv := range intervals {
		if !iv.IsActive {
			continue
		}
		open, closeAt, err := IntervalBounds(iv)
		if err != nil {
			continue
		}
		if minute >= open && minute < closeAt {
			return true
		}
	}
	return false
}

// HourHeaders derives the distinct hour labels ("12:00", "13:00", ...) for
// the timeline header row, in slot order.
func HourHeaders(slots []string) []string {
	seen := make(map[string]struct{})
	headers := make([]string, 0)
	for _, slot := range slots {
		if len(slot) < 2 {
			continue
		}
		header := slot[:2] + ":00"
		if _, dup := seen[header]; dup {
			continue
		}
		seen[header] = struct{}{}
		headers = append(headers, header)
	}
	return headers
}
