package handlers

import (
	"net/http"
	"strconv"

	"homebook/models"
	"homebook/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves slot lookup and booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

func (h *BookingHandler) AvailableSlots(c *gin.Context) {
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}
	result, err := h.Service.AvailableSlots(c.Request.Context(), c.Param("providerID"), date)
	if err != nil {
		respondError(c, "Failed to fetch available slots", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) WeeklyAvailability(c *gin.Context) {
	weekIndex := 0
	if raw := c.Query("weekIndex"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, "Invalid weekIndex query parameter", err)
			return
		}
		weekIndex = n
	}
	week, err := h.Service.WeeklyAvailability(c.Request.Context(), c.Param("providerID"), weekIndex)
	if err != nil {
		respondError(c, "Failed to fetch weekly availability", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weekIndex": weekIndex, "days": week})
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}
	bookings, err := h.Service.ListBookings(c.Request.Context(), c.Param("providerID"), date)
	if err != nil {
		respondError(c, "Failed to fetch bookings", err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload", err)
		return
	}
	b, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to create booking", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Booking request sent", "booking": b})
}

// CreateManualBooking records an offline booking on behalf of a provider.
func (h *BookingHandler) CreateManualBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload", err)
		return
	}
	b, err := h.Service.CreateManualBooking(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to record booking", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Booking recorded", "booking": b})
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload", err)
		return
	}
	b, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("bookingID"), req.Status)
	if err != nil {
		respondError(c, "Failed to update booking status", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking " + string(b.Status), "booking": b})
}
