package schedule

import (
	"fmt"

	"tablero/models"
)

// ShiftLabel names an opening interval by position: the first service of the
// day is lunch, the second dinner.
func ShiftLabel(intervalIndex int) string {
	switch intervalIndex {
	case 0:
		return "comida"
	case 1:
		return "cena"
	default:
		return fmt.Sprintf("turno %d", intervalIndex+1)
	}
}

// GroupByInterval buckets generated slots by the interval they fall in,
// closing bound included. When malformed intervals overlap, a slot may land
// in more than one bucket; duplication across labeled groups is preferred
// over silently dropping a valid slot.
func GroupByInterval(slots []string, intervals []models.OpeningInterval) []models.ShiftGroup {
	groups := make([]models.ShiftGroup, 0, len(intervals))

	for i, iv := range intervals {
		if !iv.IsActive {
			continue
		}
		group := models.ShiftGroup{
			IntervalIndex: i,
			Label:         ShiftLabel(i),
			Slots:         make([]string, 0),
		}
		for _, slot := range slots {
			minute, err := ParseClock(slot)
			if err != nil {
				continue
			}
			if WithinInterval(minute, iv) {
				group.Slots = append(group.Slots, slot)
			}
		}
		groups = append(groups, group)
	}

	return groups
}
