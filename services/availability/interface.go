package availability

import (
	"context"

	"tablero/models"
	"tablero/services/platform"
)

// Client is the slice of the platform RPC contract the resolver consumes.
type Client interface {
	QueryAvailability(ctx context.Context, req platform.AvailabilityRequest) ([]models.AvailabilitySlot, error)
}
