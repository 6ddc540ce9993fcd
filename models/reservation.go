package models

import "time"

// Reservation is one row from the platform's reservation feed. The Time field
// is the canonical wall-clock seating time; StartAt/EndAt are derived
// timestamps that may be absent and must never override Time.
type Reservation struct {
	ID              string     `json:"id"`
	TableID         string     `json:"tableId"`
	Date            string     `json:"date"` // "2006-01-02", local calendar date
	Time            string     `json:"time"` // "HH:MM" or "HH:MM:SS"
	DurationMinutes *int       `json:"durationMinutes,omitempty"`
	StartAt         *time.Time `json:"startAt,omitempty"`
	EndAt           *time.Time `json:"endAt,omitempty"`
	Guests          int        `json:"guests"`
	CustomerName    string     `json:"customerName"`
}

// Table is an active restaurant table as reported by the platform feed.
type Table struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	ZoneID   string `json:"zoneId,omitempty"`
}

// Zone is a named grouping of tables with a display color and priority order.
type Zone struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Priority int    `json:"priority"` // ascending = higher priority
}

// ReservationFeed bundles everything the staff timeline needs for one date.
type ReservationFeed struct {
	Date         string        `json:"date"`
	Reservations []Reservation `json:"reservations"`
	Tables       []Table       `json:"tables"`
	Zones        []Zone        `json:"zones,omitempty"`
}
