package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// Guest slot picker.
	GetSlotsHandler gin.HandlerFunc

	// Availability checks.
	CheckAvailabilityHandler  gin.HandlerFunc
	LatestAvailabilityHandler gin.HandlerFunc

	// Staff timeline.
	GetTimelineHandler     gin.HandlerFunc
	RefreshTimelineHandler gin.HandlerFunc
}
