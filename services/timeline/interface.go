package timeline

import (
	"context"

	"tablero/models"
)

// ScheduleSource resolves the opening intervals for a weekday. Backed by the
// platform RPC layer (with an optional cache in front).
type ScheduleSource interface {
	GetDaySchedule(ctx context.Context, dayOfWeek int) ([]models.OpeningInterval, error)
}

// FeedSource delivers the reservations and active tables for a date.
// Reloads are idempotent full fetches, never incremental patches.
type FeedSource interface {
	GetReservationFeed(ctx context.Context, date string) (*models.ReservationFeed, error)
}
