// File: services/schedule/interface.go
package schedule

import (
	"context"
	"time"

	bookingRepo "homebook/database/repository/booking"
	scheduleRepo "homebook/database/repository/schedule"
	"homebook/models"
	slotCache "homebook/services/cache"

	"go.uber.org/zap"
)

// ScheduleService lets providers manage their recurring availability and the
// exceptions on top of it.
type ScheduleService interface {
	GetSchedule(ctx context.Context, providerID string) (models.Schedule, error)
	CreateDefaultSchedule(ctx context.Context, providerID string) (models.Schedule, error)
	ReplaceSchedule(ctx context.Context, providerID string, req models.ScheduleRequest) (models.Schedule, error)
	SetWorkingDays(ctx context.Context, providerID string, days []string) (models.Schedule, error)
	SetWorkingHours(ctx context.Context, providerID string, hours models.WorkingHours) (models.Schedule, error)
	SetHoliday(ctx context.Context, providerID string, onHoliday bool) (models.Schedule, error)
	BlockDate(ctx context.Context, providerID, date string) (models.Schedule, error)
	UnblockDate(ctx context.Context, providerID, date string) (models.Schedule, error)
	ToggleSlot(ctx context.Context, providerID, date, clock string) (models.Schedule, string, error)

	DayStatus(ctx context.Context, providerID string, at time.Time) (models.DayStatus, error)
	SlotBoard(ctx context.Context, providerID string, date time.Time) (models.SlotBoard, error)
}

// DefaultScheduleService implements ScheduleService on top of the schedule
// and booking repositories.
type DefaultScheduleService struct {
	Repo        scheduleRepo.ScheduleRepository
	Bookings    bookingRepo.BookingRepository
	Cache       slotCache.SlotCache
	Granularity int
	Logger      *zap.Logger
	Now         func() time.Time
}

func (s *DefaultScheduleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultScheduleService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
