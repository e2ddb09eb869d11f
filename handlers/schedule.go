package handlers

import (
	"net/http"
	"time"

	"homebook/models"
	"homebook/services/availability"
	"homebook/services/schedule"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves the provider-side schedule endpoints.
type ScheduleHandler struct {
	Service schedule.ScheduleService
	Now     func() time.Time
}

func NewScheduleHandler(service schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: service, Now: time.Now}
}

func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	s, err := h.Service.GetSchedule(c.Request.Context(), c.Param("providerID"))
	if err != nil {
		respondError(c, "Failed to fetch schedule", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": s})
}

func (h *ScheduleHandler) ReplaceSchedule(c *gin.Context) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload", err)
		return
	}
	s, err := h.Service.ReplaceSchedule(c.Request.Context(), c.Param("providerID"), req)
	if err != nil {
		respondError(c, "Failed to save schedule", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule saved", "schedule": s})
}

func (h *ScheduleHandler) CreateDefaultSchedule(c *gin.Context) {
	s, err := h.Service.CreateDefaultSchedule(c.Request.Context(), c.Param("providerID"))
	if err != nil {
		respondError(c, "Failed to create default schedule", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Default schedule created", "schedule": s})
}

func (h *ScheduleHandler) SetWorkingDays(c *gin.Context) {
	var req models.WorkingDaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload", err)
		return
	}
	s, err := h.Service.SetWorkingDays(c.Request.Context(), c.Param("providerID"), req.Days)
	if err != nil {
		respondError(c, "Failed to update working days", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Working days updated", "schedule": s})
}

func (h *ScheduleHandler) SetWorkingHours(c *gin.Context) {
	var req models.WorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload", err)
		return
	}
	hours := models.WorkingHours{Start: req.Start, End: req.End}
	s, err := h.Service.SetWorkingHours(c.Request.Context(), c.Param("providerID"), hours)
	if err != nil {
		respondError(c, "Failed to update working hours", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Working hours updated", "schedule": s})
}

func (h *ScheduleHandler) SetHoliday(c *gin.Context) {
	var req models.HolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload", err)
		return
	}
	s, err := h.Service.SetHoliday(c.Request.Context(), c.Param("providerID"), *req.OnHoliday)
	if err != nil {
		respondError(c, "Failed to update holiday mode", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Holiday mode updated", "schedule": s})
}

func (h *ScheduleHandler) BlockDate(c *gin.Context) {
	var req models.BlockedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload", err)
		return
	}
	s, err := h.Service.BlockDate(c.Request.Context(), c.Param("providerID"), req.Date)
	if err != nil {
		respondError(c, "Failed to block date", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Date blocked", "schedule": s})
}

func (h *ScheduleHandler) UnblockDate(c *gin.Context) {
	s, err := h.Service.UnblockDate(c.Request.Context(), c.Param("providerID"), c.Param("date"))
	if err != nil {
		respondError(c, "Failed to unblock date", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Date unblocked", "schedule": s})
}

func (h *ScheduleHandler) ToggleSlot(c *gin.Context) {
	var req models.SlotToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload", err)
		return
	}
	s, token, err := h.Service.ToggleSlot(c.Request.Context(), c.Param("providerID"), req.Date, req.Time)
	if err != nil {
		respondError(c, "Failed to toggle slot", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocked": s.IsSlotBlocked(token), "token": token, "schedule": s})
}

// DayStatus resolves the provider's state at ?at=YYYY-MM-DDTHH:MM, or now
// when at is omitted.
func (h *ScheduleHandler) DayStatus(c *gin.Context) {
	at := h.Now()
	if raw := c.Query("at"); raw != "" {
		parsed, err := availability.ParseToken(raw)
		if err != nil {
			badRequest(c, "Invalid at query parameter", err)
			return
		}
		at = parsed
	}
	status, err := h.Service.DayStatus(c.Request.Context(), c.Param("providerID"), at)
	if err != nil {
		respondError(c, "Failed to resolve availability", err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *ScheduleHandler) SlotBoard(c *gin.Context) {
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}
	board, err := h.Service.SlotBoard(c.Request.Context(), c.Param("providerID"), date)
	if err != nil {
		respondError(c, "Failed to build slot board", err)
		return
	}
	c.JSON(http.StatusOK, board)
}
