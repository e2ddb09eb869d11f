package booking

import (
	"errors"

	bookingRepo "homebook/database/repository/booking"
	"homebook/services/schedule"
)

var (
	ErrInvalidInput      = schedule.ErrInvalidInput
	ErrPastDate          = errors.New("cannot book a date in the past")
	ErrSlotUnavailable   = errors.New("requested slot is not available")
	ErrSlotTaken         = bookingRepo.ErrSlotTaken
	ErrBookingNotFound   = bookingRepo.ErrNotFound
	ErrInvalidTransition = errors.New("booking status can no longer change")
)
