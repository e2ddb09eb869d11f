package booking

import (
	"context"
	"time"

	bookingRepo "homebook/database/repository/booking"
	"homebook/models"
	slotCache "homebook/services/cache"
	"homebook/services/schedule"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// BookingService answers "which slots can I book" and records bookings.
type BookingService interface {
	AvailableSlots(ctx context.Context, providerID string, date time.Time) (models.AvailableSlotsResult, error)
	WeeklyAvailability(ctx context.Context, providerID string, weekIndex int) ([]models.DayAvailability, error)
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	CreateManualBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) (*models.Booking, error)
	ListBookings(ctx context.Context, providerID string, date time.Time) ([]models.Booking, error)
}

// ReminderScheduler is the part of *asynq.Client the service needs.
type ReminderScheduler interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	Schedules    schedule.ScheduleService
	Cache        slotCache.SlotCache
	Reminders    ReminderScheduler // nil disables reminders
	Granularity  int
	ReminderLead time.Duration
	Logger       *zap.Logger
	Now          func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

var _ BookingService = (*DefaultBookingService)(nil)
