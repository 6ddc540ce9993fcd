package platform

import (
	"time"

	"tablero/models"
)

// Wire shapes for the platform RPC layer. The RPC owns storage, table
// assignment, customer dedup and audit logging; this service only consumes
// the contracts below.

// AvailabilityRequest is the input of the availability query. Date is the
// local calendar date ("2006-01-02").
type AvailabilityRequest struct {
	Date            string `json:"date"`
	Guests          int    `json:"guests"`
	DurationMinutes int    `json:"duration_minutes"`
}

type scheduleRow struct {
	DayOfWeek   int    `json:"day_of_week"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
	IsActive    bool   `json:"is_active"`
}

type availabilityRow struct {
	SlotTime     string `json:"slot_time"` // "HH:MM" or "HH:MM:SS"
	Capacity     int    `json:"capacity"`
	ZoneID       string `json:"zone_id,omitempty"`
	ZoneName     string `json:"zone_name,omitempty"`
	ZoneColor    string `json:"zone_color,omitempty"`
	ZonePriority *int   `json:"zone_priority,omitempty"`
}

type availabilityResponse struct {
	Slots []availabilityRow `json:"slots"`
}

type reservationRow struct {
	ID              string     `json:"id"`
	TableID         string     `json:"table_id"`
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	StartAt         *time.Time `json:"start_at,omitempty"`
	EndAt           *time.Time `json:"end_at,omitempty"`
	Guests          int        `json:"guests"`
	CustomerName    string     `json:"customer_name"`
}

type tableRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	ZoneID   string `json:"zone_id,omitempty"`
}

type zoneRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Priority int    `json:"priority"`
}

type feedResponse struct {
	Date         string           `json:"date"`
	Reservations []reservationRow `json:"reservations"`
	Tables       []tableRow       `json:"tables"`
	Zones        []zoneRow        `json:"zones,omitempty"`
}

func (r scheduleRow) toModel() models.OpeningInterval {
	return models.OpeningInterval{
		DayOfWeek:   r.DayOfWeek,
		OpeningTime: r.OpeningTime,
		ClosingTime: r.ClosingTime,
		IsActive:    r.IsActive,
	}
}

func (r availabilityRow) toModel() models.AvailabilitySlot {
	return models.AvailabilitySlot{
		Time:         trimSeconds(r.SlotTime),
		Capacity:     r.Capacity,
		ZoneID:       r.ZoneID,
		ZoneName:     r.ZoneName,
		ZoneColor:    r.ZoneColor,
		ZonePriority: r.ZonePriority,
	}
}

// trimSeconds normalizes "HH:MM:SS" rows to the "HH:MM" label the UIs use.
func trimSeconds(clock string) string {
	if len(clock) > 5 {
		return clock[:5]
	}
	return clock
}

func (r feedResponse) toModel() *models.ReservationFeed {
	feed := &models.ReservationFeed{
		Date:         r.Date,
		Reservations: make([]models.Reservation, 0, len(r.Reservations)),
		Tables:       make([]models.Table, 0, len(r.Tables)),
		Zones:        make([]models.Zone, 0, len(r.Zones)),
	}
	for _, row := range r.Reservations {
		feed.Reservations = append(feed.Reservations, models.Reservation{
			ID:              row.ID,
			TableID:         row.TableID,
			Date:            row.Date,
			Time:            trimSeconds(row.Time),
			DurationMinutes: row.DurationMinutes,
			StartAt:         row.StartAt,
			EndAt:           row.EndAt,
			Guests:          row.Guests,
			CustomerName:    row.CustomerName,
		})
	}
	for _, row := range r.Tables {
		feed.Tables = append(feed.Tables, models.Table(row))
	}
	for _, row := range r.Zones {
		feed.Zones = append(feed.Zones, models.Zone(row))
	}
	return feed
}
