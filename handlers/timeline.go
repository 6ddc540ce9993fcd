package handlers

import (
	"net/http"
	"time"

	"tablero/services/timeline"
	"tablero/utils"

	"github.com/gin-gonic/gin"
)

// TimelineHandler serves the staff occupancy timeline and its manual
// refresh trigger.
type TimelineHandler struct {
	Controller *timeline.Controller
}

func NewTimelineHandler(ctrl *timeline.Controller) *TimelineHandler {
	return &TimelineHandler{Controller: ctrl}
}

func (h *TimelineHandler) GetTimelineHandler(c *gin.Context) {
	dateStr := c.DefaultQuery("date", time.Now().Format(utils.DateLayout))
	if _, err := time.ParseInLocation(utils.DateLayout, dateStr, time.Local); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}
	period := c.Query("period") // "", "comida" or "cena"

	// A date change is a refetch trigger; re-serving the committed snapshot
	// otherwise keeps reads cheap.
	if h.Controller.CurrentDate() != dateStr {
		if _, err := h.Controller.Refresh(c.Request.Context(), dateStr); err != nil {
			utils.JSONError(c, http.StatusBadGateway, "Failed to load timeline", err.Error())
			return
		}
	}

	model, ready := h.Controller.Model(period)
	if !ready {
		c.JSON(http.StatusOK, gin.H{"loading": true})
		return
	}
	c.JSON(http.StatusOK, model)
}

func (h *TimelineHandler) RefreshTimelineHandler(c *gin.Context) {
	var req struct {
		Date string `json:"date"`
	}
	// The body is optional; an empty refresh reloads the date in view.
	_ = c.ShouldBindJSON(&req)

	dateStr := req.Date
	if dateStr == "" {
		dateStr = h.Controller.CurrentDate()
	}
	if dateStr == "" {
		dateStr = time.Now().Format(utils.DateLayout)
	}
	if _, err := time.ParseInLocation(utils.DateLayout, dateStr, time.Local); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	model, err := h.Controller.Refresh(c.Request.Context(), dateStr)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to refresh timeline", err.Error())
		return
	}
	c.JSON(http.StatusOK, model)
}
