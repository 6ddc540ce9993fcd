package timeline

import "tablero/models"

// PlacementAt returns the placement occupying a minute on a table, or nil.
// Placements are half-open on the minute axis: [start, start+duration).
// When upstream assignment misbehaves and placements overlap, the first
// match claims the minute; callers still see the others through NeedsTurn.
func PlacementAt(minute int, tablePlacements []models.Placement) *models.Placement {
	for i := range tablePlacements {
		p := &tablePlacements[i]
		if minute >= p.StartMinute && minute < p.EndMinute() {
			return p
		}
	}
	return nil
}

// NeedsTurn flags a slot on a table when a second, distinct reservation
// starts within the lookahead window after it: the table must be cleared
// and reset between the two seatings. Identity comparison keeps a long
// reservation's own continuation from flagging itself.
func NeedsTurn(slotMinute int, tablePlacements []models.Placement, lookaheadMinutes int) bool {
	occupying := PlacementAt(slotMinute, tablePlacements)
	if occupying == nil {
		return false
	}
	for i := range tablePlacements {
		next := &tablePlacements[i]
		if next.ReservationID == occupying.ReservationID {
			continue
		}
		if next.StartMinute > slotMinute && next.StartMinute-slotMinute <= lookaheadMinutes {
			return true
		}
	}
	return false
}
