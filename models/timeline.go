package models

import "time"

// Placement is a reservation projected onto the day's minute axis. It carries
// the true (unclamped) duration; clamping to the visible window happens at
// render time only, so conflict detection always sees the full span.
type Placement struct {
	ReservationID   string `json:"reservationId"`
	TableID         string `json:"tableId"`
	StartMinute     int    `json:"startMinute"` // minutes from midnight
	DurationMinutes int    `json:"durationMinutes"`
	Guests          int    `json:"guests"`
	CustomerLabel   string `json:"customerLabel"`
}

// EndMinute returns the true end of the placement on the minute axis.
func (p Placement) EndMinute() int {
	return p.StartMinute + p.DurationMinutes
}

// BlockPosition is the fractional position of a block within the visible
// window, driving absolute positioning with minute-level granularity.
type BlockPosition struct {
	StartPct float64 `json:"startPct"`
	WidthPct float64 `json:"widthPct"`
}

// TimelineBlock is a render-ready reservation block on a table row.
type TimelineBlock struct {
	Placement Placement     `json:"placement"`
	Position  BlockPosition `json:"position"`
	NeedsTurn bool          `json:"needsTurn"`
}

// TimelineCell is one background cell of the occupancy grid.
type TimelineCell struct {
	Time   string `json:"time"` // "HH:MM"
	Minute int    `json:"minute"`
	Open   bool   `json:"open"`
}

// TimelineRow is one table's lane on the staff timeline.
type TimelineRow struct {
	Table  Table           `json:"table"`
	Blocks []TimelineBlock `json:"blocks"`
}

// TimelineModel is the render-ready grid for one date and visible window.
type TimelineModel struct {
	Date              string         `json:"date"`
	WindowStartMinute int            `json:"windowStartMinute"`
	WindowEndMinute   int            `json:"windowEndMinute"`
	Closed            bool           `json:"closed"` // no schedule for this date
	HourHeaders       []string       `json:"hourHeaders"`
	Cells             []TimelineCell `json:"cells"`
	Rows              []TimelineRow  `json:"rows"`
	NowMarkerPct      *float64       `json:"nowMarkerPct,omitempty"` // nil when now is outside the window
	GeneratedAt       time.Time      `json:"generatedAt"`
}
