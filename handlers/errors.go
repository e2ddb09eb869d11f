package handlers

import (
	"errors"
	"net/http"
	"time"

	"homebook/services/availability"
	"homebook/services/booking"
	"homebook/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its HTTP status. Anything not
// recognised is a 500 and keeps its cause out of the response body; the
// request logger still records it from c.Errors.
func respondError(c *gin.Context, action string, err error) {
	status := http.StatusInternalServerError
	var rangeErr *availability.InvalidRangeError

	switch {
	case errors.Is(err, booking.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, booking.ErrBookingNotFound):
		status = http.StatusNotFound
	case errors.Is(err, booking.ErrSlotTaken),
		errors.Is(err, booking.ErrSlotUnavailable),
		errors.Is(err, booking.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, booking.ErrPastDate), errors.As(err, &rangeErr):
		status = http.StatusUnprocessableEntity
	}

	_ = c.Error(err)
	if status >= http.StatusInternalServerError {
		utils.JSONError(c, status, action, "")
		return
	}
	utils.JSONError(c, status, action, err.Error())
}

func badRequest(c *gin.Context, message string, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}
	utils.JSONError(c, http.StatusBadRequest, message, details)
}

// dateQuery reads a required "YYYY-MM-DD" query parameter. It writes the
// 400 itself and reports false when the value is missing or malformed.
func dateQuery(c *gin.Context, key string) (time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		badRequest(c, "Missing "+key+" query parameter", nil)
		return time.Time{}, false
	}
	d, err := availability.ParseDate(raw)
	if err != nil {
		badRequest(c, "Invalid "+key+" query parameter", err)
		return time.Time{}, false
	}
	return d, true
}
