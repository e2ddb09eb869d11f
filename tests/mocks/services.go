package mocks

import (
	"context"
	"time"

	"homebook/models"

	"github.com/hibiken/asynq"
	testifymock "github.com/stretchr/testify/mock"
)

// ReminderScheduler mocks the asynq client's Enqueue.
type ReminderScheduler struct {
	testifymock.Mock
}

func (m *ReminderScheduler) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(task, opts)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}

// ScheduleService mocks schedule.ScheduleService.
type ScheduleService struct {
	testifymock.Mock
}

func (m *ScheduleService) schedule(args testifymock.Arguments) (models.Schedule, error) {
	s, _ := args.Get(0).(models.Schedule)
	return s, args.Error(1)
}

func (m *ScheduleService) GetSchedule(ctx context.Context, providerID string) (models.Schedule, error) {
	return m.schedule(m.Called(ctx, providerID))
}

func (m *ScheduleService) CreateDefaultSchedule(ctx context.Context, providerID string) (models.Schedule, error) {
	return m.schedule(m.Called(ctx, providerID))
}

func (m *ScheduleService) ReplaceSchedule(ctx context.Context, providerID string, req models.ScheduleRequest) (models.Schedule, error) {
	return m.schedule(m.Called(ctx, providerID, req))
}

func (m *ScheduleService) SetWorkingDays(ctx context.Context, providerID string, days []string) (models.Schedule, error) {
	return m.schedule(m.Called(ctx, providerID, days))
}

func (m *ScheduleService) SetWorkingHours(ctx context.Context, providerID string, hours models.WorkingHours) (models.Schedule, error) {
	return m.schedule(m.Called(ctx, providerID, hours))
}

func (m *ScheduleService) SetHoliday(ctx context.Context, providerID string, onHoliday bool) (models.Schedule, error) {
	return m.schedule(m.Called(ctx, providerID, onHoliday))
}

func (m *ScheduleService) BlockDate(ctx context.Context, providerID, date string) (models.Schedule, error) {
	return m.schedule(m.Called(ctx, providerID, date))
}

func (m *ScheduleService) UnblockDate(ctx context.Context, providerID, date string) (models.Schedule, error) {
	return m.schedule(m.Called(ctx, providerID, date))
}

func (m *ScheduleService) ToggleSlot(ctx context.Context, providerID, date, clock string) (models.Schedule, string, error) {
	args := m.Called(ctx, providerID, date, clock)
	s, _ := args.Get(0).(models.Schedule)
	return s, args.String(1), args.Error(2)
}

func (m *ScheduleService) DayStatus(ctx context.Context, providerID string, at time.Time) (models.DayStatus, error) {
	args := m.Called(ctx, providerID, at)
	s, _ := args.Get(0).(models.DayStatus)
	return s, args.Error(1)
}

func (m *ScheduleService) SlotBoard(ctx context.Context, providerID string, date time.Time) (models.SlotBoard, error) {
	args := m.Called(ctx, providerID, date)
	s, _ := args.Get(0).(models.SlotBoard)
	return s, args.Error(1)
}

// BookingService mocks booking.BookingService.
type BookingService struct {
	testifymock.Mock
}

func (m *BookingService) AvailableSlots(ctx context.Context, providerID string, date time.Time) (models.AvailableSlotsResult, error) {
	args := m.Called(ctx, providerID, date)
	r, _ := args.Get(0).(models.AvailableSlotsResult)
	return r, args.Error(1)
}

func (m *BookingService) WeeklyAvailability(ctx context.Context, providerID string, weekIndex int) ([]models.DayAvailability, error) {
	args := m.Called(ctx, providerID, weekIndex)
	w, _ := args.Get(0).([]models.DayAvailability)
	return w, args.Error(1)
}

func (m *BookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	args := m.Called(ctx, req)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *BookingService) CreateManualBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	args := m.Called(ctx, req)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *BookingService) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) (*models.Booking, error) {
	args := m.Called(ctx, bookingID, status)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *BookingService) ListBookings(ctx context.Context, providerID string, date time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, providerID, date)
	b, _ := args.Get(0).([]models.Booking)
	return b, args.Error(1)
}
