package routes

import (
	"net/http"
	"time"

	"homebook/handlers"
	"homebook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint reporting the last
// dependency snapshot taken by the health monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		health := utils.GetHealthStatus()
		status := "ok"
		if !health.Mongo {
			status = "degraded"
		}
		for _, ok := range health.Redis {
			if !ok {
				status = "degraded"
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": status, "dependencies": health})
	})
}

// RegisterScheduleRoutes registers the provider schedule endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	provider := r.Group("/api/providers/:providerID")
	{
		provider.GET("/schedule", hb.Schedule.GetSchedule)
		provider.PUT("/schedule", hb.Schedule.ReplaceSchedule)
		provider.POST("/schedule/defaults", hb.Schedule.CreateDefaultSchedule)
		provider.PUT("/schedule/working-days", hb.Schedule.SetWorkingDays)
		provider.PUT("/schedule/working-hours", hb.Schedule.SetWorkingHours)
		provider.PUT("/schedule/holiday", hb.Schedule.SetHoliday)
		provider.POST("/schedule/blocked-dates", hb.Schedule.BlockDate)
		provider.DELETE("/schedule/blocked-dates/:date", hb.Schedule.UnblockDate)
		provider.POST("/schedule/blocked-slots/toggle", hb.Schedule.ToggleSlot)

		provider.GET("/status", hb.Schedule.DayStatus)
		provider.GET("/slot-board", hb.Schedule.SlotBoard)
	}
}

// RegisterBookingRoutes registers slot lookup and booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	provider := r.Group("/api/providers/:providerID")
	{
		provider.GET("/slots", hb.Booking.AvailableSlots)
		provider.GET("/week", hb.Booking.WeeklyAvailability)
		provider.GET("/bookings", hb.Booking.ListBookings)
	}

	bookings := r.Group("/api/bookings")
	{
		bookings.POST("", hb.Booking.CreateBooking)
		bookings.PATCH("/:bookingID/status", hb.Booking.UpdateStatus)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/bookings", hb.Booking.CreateManualBooking)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterScheduleRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
