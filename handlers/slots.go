package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"tablero/services/schedule"
	"tablero/services/timeline"
	"tablero/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SlotPickerHandler serves the guest-facing slot picker: the day's schedule
// turned into labeled lunch/dinner slot groups.
type SlotPickerHandler struct {
	Schedule    timeline.ScheduleSource
	StepMinutes int
}

func NewSlotPickerHandler(scheduleSrc timeline.ScheduleSource, stepMinutes int) *SlotPickerHandler {
	return &SlotPickerHandler{Schedule: scheduleSrc, StepMinutes: stepMinutes}
}

func (h *SlotPickerHandler) GetSlotsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	dateStr := c.DefaultQuery("date", time.Now().Format(utils.DateLayout))
	day, err := time.ParseInLocation(utils.DateLayout, dateStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	step := h.StepMinutes
	if raw := c.Query("step"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid step, expected a positive number of minutes"})
			return
		}
		step = parsed
	}

	intervals, err := h.Schedule.GetDaySchedule(c.Request.Context(), int(day.Weekday()))
	if err != nil {
		logger.Error("Failed to load day schedule", zap.String("date", dateStr), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to load schedule", err.Error())
		return
	}

	slots, err := schedule.GenerateSlots(intervals, step)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidSchedule) {
			// Bad schedule is distinct from no schedule; the picker renders
			// an explicit degraded state for it.
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Schedule configuration is invalid", "details": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate slots", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":        dateStr,
		"open":        len(slots) > 0,
		"groups":      schedule.GroupByInterval(slots, intervals),
		"hourHeaders": schedule.HourHeaders(slots),
	})
}
