package timeline

import (
	"tablero/models"
	"tablero/services/schedule"
)

// ResolveDuration applies the duration fallback chain: explicit stored
// duration, then the delta of a start/end timestamp pair, then the default.
// Non-positive values at any step fall through to the next.
func ResolveDuration(res models.Reservation, defaultMinutes int) int {
	if res.DurationMinutes != nil && *res.DurationMinutes > 0 {
		return *res.DurationMinutes
	}
	if res.StartAt != nil && res.EndAt != nil {
		if delta := int(res.EndAt.Sub(*res.StartAt).Minutes()); delta > 0 {
			return delta
		}
	}
	return defaultMinutes
}

// BuildPlacements projects reservations onto the day's minute axis. The
// canonical wall-clock Time field is authoritative; timestamp-derived values
// never override it, which avoids timezone drift between a stored absolute
// timestamp and the intended seating slot. Rows with an unparseable time are
// dropped.
func BuildPlacements(reservations []models.Reservation, defaultMinutes int) []models.Placement {
	placements := make([]models.Placement, 0, len(reservations))
	for _, res := range reservations {
		startMinute, err := schedule.ParseClock(res.Time)
		if err != nil {
			continue
		}
		placements = append(placements, models.Placement{
			ReservationID:   res.ID,
			TableID:         res.TableID,
			StartMinute:     startMinute,
			DurationMinutes: ResolveDuration(res, defaultMinutes),
			Guests:          res.Guests,
			CustomerLabel:   res.CustomerName,
		})
	}
	return placements
}

// Place clamps a placement to the visible window and returns its fractional
// position, or nil when the placement lies entirely outside the window.
// Clamping happens here only; conflict detection always uses the true span.
func Place(p models.Placement, windowStartMinute, windowEndMinute int) *models.BlockPosition {
	if windowEndMinute <= windowStartMinute {
		return nil
	}
	visibleStart := max(p.StartMinute, windowStartMinute)
	visibleEnd := min(p.EndMinute(), windowEndMinute)
	if visibleEnd <= visibleStart {
		return nil
	}
	span := float64(windowEndMinute - windowStartMinute)
	return &models.BlockPosition{
		StartPct: float64(visibleStart-windowStartMinute) / span,
		WidthPct: float64(visibleEnd-visibleStart) / span,
	}
}
