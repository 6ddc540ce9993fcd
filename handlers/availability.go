package handlers

import (
	"net/http"
	"time"

	"tablero/config"
	"tablero/services/availability"
	"tablero/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the guest-facing availability check. Checks
// run only when a caller asks; there is no automatic refetch on input
// change.
type AvailabilityHandler struct {
	Resolver *availability.Resolver
}

func NewAvailabilityHandler(resolver *availability.Resolver) *AvailabilityHandler {
	return &AvailabilityHandler{Resolver: resolver}
}

func (h *AvailabilityHandler) CheckAvailabilityHandler(c *gin.Context) {
	var req struct {
		Date            string `json:"date" binding:"required"`
		Guests          int    `json:"guests" binding:"required,gt=0"`
		DurationMinutes int    `json:"durationMinutes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	day, err := time.ParseInLocation(utils.DateLayout, req.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = config.AppConfig.DefaultDiningMinutes
	}

	result, err := h.Resolver.Check(c.Request.Context(), day, req.Guests, duration)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to check availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AvailabilityHandler) LatestAvailabilityHandler(c *gin.Context) {
	state := h.Resolver.Latest()
	resp := gin.H{"loading": state.Loading}
	if state.Err != nil {
		resp["error"] = state.Err.Error()
	}
	if state.Result != nil {
		resp["result"] = state.Result
	}
	c.JSON(http.StatusOK, resp)
}
