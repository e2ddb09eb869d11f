// File: handlers/bundle.go
package handlers

import (
	"homebook/services/booking"
	"homebook/services/schedule"
)

// HandlerBundle groups the endpoint handlers the router needs.
type HandlerBundle struct {
	Schedule *ScheduleHandler
	Booking  *BookingHandler
}

func NewHandlerBundle(scheduleSvc schedule.ScheduleService, bookingSvc booking.BookingService) *HandlerBundle {
	return &HandlerBundle{
		Schedule: NewScheduleHandler(scheduleSvc),
		Booking:  NewBookingHandler(bookingSvc),
	}
}
