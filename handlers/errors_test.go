package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"homebook/services/availability"
	"homebook/services/booking"
	"homebook/services/schedule"
	"homebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input from schedule service", fmt.Errorf("%w: unknown weekday", schedule.ErrInvalidInput), http.StatusBadRequest},
		{"invalid range", fmt.Errorf("wrapped: %w", &availability.InvalidRangeError{Start: "a", End: "b"}), http.StatusUnprocessableEntity},
		{"past date", booking.ErrPastDate, http.StatusUnprocessableEntity},
		{"not found", booking.ErrBookingNotFound, http.StatusNotFound},
		{"transition", fmt.Errorf("%w: confirmed -> rejected", booking.ErrInvalidTransition), http.StatusConflict},
		{"granularity misconfigured", availability.ErrInvalidGranularity, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, "Failed", tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestServerErrorsHideDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondError(c, "Failed to fetch schedule", errors.New("mongo: connection refused"))
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestDateQuery(t *testing.T) {
	for raw, ok := range map[string]bool{"2024-01-01": true, "": false, "2024-13-01": false} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/?date="+raw, nil)

		_, got := dateQuery(c, "date")
		assert.Equal(t, ok, got, raw)
		if !ok {
			assert.Equal(t, http.StatusBadRequest, w.Code, raw)
		}
	}
}
