package timeline

import (
	"time"

	"tablero/models"
	"tablero/services/schedule"
)

// BuildInput carries everything the render model is computed from. The build
// is a pure function of this input: same input, same model.
type BuildInput struct {
	Date                   string
	Intervals              []models.OpeningInterval
	Tables                 []models.Table
	Reservations           []models.Reservation
	StepMinutes            int
	DefaultDurationMinutes int
	TurnLookaheadMinutes   int
	WindowStartMinute      int
	WindowEndMinute        int
	Now                    *time.Time // nil suppresses the now marker
}

// DayWindow derives the full visible window from the day's intervals:
// earliest opening to latest closing. ok is false when the day has no active
// schedule.
func DayWindow(intervals []models.OpeningInterval) (start, end int, ok bool) {
	first := true
	for _, iv := range intervals {
		if !iv.IsActive {
			continue
		}
		open, closeAt, err := schedule.IntervalBounds(iv)
		if err != nil {
			continue
		}
		if first || open < start {
			start = open
		}
		if first || closeAt > end {
			end = closeAt
		}
		first = false
	}
	return start, end, !first
}

// PeriodWindow narrows the window to one service (0 = lunch, 1 = dinner) for
// narrow viewports. Falls back to the full day when the period is missing.
func PeriodWindow(intervals []models.OpeningInterval, periodIndex int) (start, end int, ok bool) {
	active := make([]models.OpeningInterval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.IsActive {
			active = append(active, iv)
		}
	}
	if periodIndex >= 0 && periodIndex < len(active) {
		open, closeAt, err := schedule.IntervalBounds(active[periodIndex])
		if err == nil {
			return open, closeAt, true
		}
	}
	return DayWindow(intervals)
}

// BuildModel assembles the render-ready occupancy grid: background cells
// marked open/closed, reservation blocks keyed by table with turn flags, and
// the now marker. Fetch errors are handled upstream; this layer only ever
// receives already-validated inputs and has no error state of its own.
func BuildModel(in BuildInput) *models.TimelineModel {
	model := &models.TimelineModel{
		Date:              in.Date,
		WindowStartMinute: in.WindowStartMinute,
		WindowEndMinute:   in.WindowEndMinute,
		Cells:             make([]models.TimelineCell, 0),
		Rows:              make([]models.TimelineRow, 0, len(in.Tables)),
		GeneratedAt:       time.Now(),
	}

	slots, err := schedule.GenerateSlots(in.Intervals, in.StepMinutes)
	if err != nil || len(slots) == 0 || in.WindowEndMinute <= in.WindowStartMinute {
		// No usable schedule: an explicit closed grid, never a crash.
		model.Closed = true
		model.HourHeaders = make([]string, 0)
		return model
	}
	model.HourHeaders = schedule.HourHeaders(slots)

	// Background cells use the live-open rule (closing bound exclusive): a
	// cell starting exactly at closing time reads closed.
	for m := in.WindowStartMinute; m < in.WindowEndMinute; m += in.StepMinutes {
		model.Cells = append(model.Cells, models.TimelineCell{
			Time:   schedule.FormatClock(m),
			Minute: m,
			Open:   schedule.OpenAt(m, in.Intervals),
		})
	}

	placements := BuildPlacements(in.Reservations, in.DefaultDurationMinutes)
	byTable := make(map[string][]models.Placement, len(in.Tables))
	for _, p := range placements {
		byTable[p.TableID] = append(byTable[p.TableID], p)
	}

	for _, table := range in.Tables {
		row := models.TimelineRow{Table: table, Blocks: make([]models.TimelineBlock, 0)}
		tablePlacements := byTable[table.ID]
		for _, p := range tablePlacements {
			pos := Place(p, in.WindowStartMinute, in.WindowEndMinute)
			if pos == nil {
				continue
			}
			row.Blocks = append(row.Blocks, models.TimelineBlock{
				Placement: p,
				Position:  *pos,
				NeedsTurn: NeedsTurn(p.StartMinute, tablePlacements, in.TurnLookaheadMinutes),
			})
		}
		model.Rows = append(model.Rows, row)
	}

	if in.Now != nil {
		nowMinute := in.Now.Hour()*60 + in.Now.Minute()
		if nowMinute >= in.WindowStartMinute && nowMinute <= in.WindowEndMinute {
			span := float64(in.WindowEndMinute - in.WindowStartMinute)
			pct := float64(nowMinute-in.WindowStartMinute) / span
			model.NowMarkerPct = &pct
		}
	}

	return model
}
