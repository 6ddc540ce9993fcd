package platform

import (
	"context"

	"tablero/models"
)

// MockClient is a hand-rolled test double for the RPC layer. Unset functions
// return empty results.
type MockClient struct {
	GetDayScheduleFunc     func(ctx context.Context, dayOfWeek int) ([]models.OpeningInterval, error)
	QueryAvailabilityFunc  func(ctx context.Context, req AvailabilityRequest) ([]models.AvailabilitySlot, error)
	GetReservationFeedFunc func(ctx context.Context, date string) (*models.ReservationFeed, error)
}

func (m *MockClient) GetDaySchedule(ctx context.Context, dayOfWeek int) ([]models.OpeningInterval, error) {
	if m.GetDayScheduleFunc == nil {
		return []models.OpeningInterval{}, nil
	}
	return m.GetDayScheduleFunc(ctx, dayOfWeek)
}

func (m *MockClient) QueryAvailability(ctx context.Context, req AvailabilityRequest) ([]models.AvailabilitySlot, error) {
	if m.QueryAvailabilityFunc == nil {
		return []models.AvailabilitySlot{}, nil
	}
	return m.QueryAvailabilityFunc(ctx, req)
}

func (m *MockClient) GetReservationFeed(ctx context.Context, date string) (*models.ReservationFeed, error) {
	if m.GetReservationFeedFunc == nil {
		return &models.ReservationFeed{Date: date}, nil
	}
	return m.GetReservationFeedFunc(ctx, date)
}
