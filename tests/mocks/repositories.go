// Package mocks holds testify mocks shared by the service and handler tests.
package mocks

import (
	"context"
	"time"

	"homebook/models"
	slotCache "homebook/services/cache"

	testifymock "github.com/stretchr/testify/mock"
)

// ScheduleRepository mocks scheduleRepo.ScheduleRepository.
type ScheduleRepository struct {
	testifymock.Mock
}

func (m *ScheduleRepository) GetByProviderID(ctx context.Context, providerID string) (*models.Schedule, error) {
	args := m.Called(ctx, providerID)
	s, _ := args.Get(0).(*models.Schedule)
	return s, args.Error(1)
}

func (m *ScheduleRepository) Replace(ctx context.Context, s models.Schedule) error {
	return m.Called(ctx, s).Error(0)
}

func (m *ScheduleRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// BookingRepository mocks bookingRepo.BookingRepository.
type BookingRepository struct {
	testifymock.Mock
}

func (m *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *BookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *BookingRepository) ListByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	args := m.Called(ctx, providerID, date)
	b, _ := args.Get(0).([]models.Booking)
	return b, args.Error(1)
}

func (m *BookingRepository) ListByProviderInRange(ctx context.Context, providerID, from, to string) ([]models.Booking, error) {
	args := m.Called(ctx, providerID, from, to)
	b, _ := args.Get(0).([]models.Booking)
	return b, args.Error(1)
}

func (m *BookingRepository) UpdateStatus(ctx context.Context, id string, from, to models.BookingStatus, at time.Time) error {
	return m.Called(ctx, id, from, to, at).Error(0)
}

func (m *BookingRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// SlotCache mocks slotCache.SlotCache.
type SlotCache struct {
	testifymock.Mock
}

func (m *SlotCache) Get(ctx context.Context, providerID, date string, granularity int) (slotCache.Lookup, error) {
	args := m.Called(ctx, providerID, date, granularity)
	l, _ := args.Get(0).(slotCache.Lookup)
	return l, args.Error(1)
}

func (m *SlotCache) Set(ctx context.Context, providerID, date string, granularity int, generation int64, slots []string) error {
	return m.Called(ctx, providerID, date, granularity, generation, slots).Error(0)
}

func (m *SlotCache) InvalidateProvider(ctx context.Context, providerID string) error {
	return m.Called(ctx, providerID).Error(0)
}
