package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"homebook/models"
	"homebook/services/availability"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking records a customer's pending claim on a slot. The slot must
// be in the open set for its date at the time of the request; two customers
// racing for the same slot are settled by the store, and the loser gets
// ErrSlotTaken.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	date, clock, err := parseRequest(req)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if availability.IsBefore(date, now) {
		return nil, ErrPastDate
	}

	sched, err := s.Schedules.GetSchedule(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}
	day := availability.FormatDate(date)
	existing, err := s.Repo.ListByProviderAndDate(ctx, req.ProviderID, day)
	if err != nil {
		return nil, err
	}
	open, err := availability.AvailableSlotsForDate(sched, date, existing, s.Granularity)
	if err != nil {
		return nil, err
	}
	if !containsSlot(open, clock) {
		return nil, ErrSlotUnavailable
	}

	b := newBooking(req, day, clock, models.StatusPending, models.SourceCustomer, now)
	if err := s.insert(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// CreateManualBooking records an offline booking entered by an admin. It is
// confirmed straight away and may be on any date, but it still cannot share a
// slot with another pending or confirmed booking.
func (s *DefaultBookingService) CreateManualBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	date, clock, err := parseRequest(req)
	if err != nil {
		return nil, err
	}
	b := newBooking(req, availability.FormatDate(date), clock, models.StatusConfirmed, models.SourceManual, s.now())
	if err := s.insert(ctx, b); err != nil {
		return nil, err
	}
	s.scheduleReminder(b)
	return b, nil
}

func (s *DefaultBookingService) ListBookings(ctx context.Context, providerID string, date time.Time) ([]models.Booking, error) {
	if strings.TrimSpace(providerID) == "" {
		return nil, fmt.Errorf("%w: provider id is required", ErrInvalidInput)
	}
	return s.Repo.ListByProviderAndDate(ctx, providerID, availability.FormatDate(date))
}

func (s *DefaultBookingService) insert(ctx context.Context, b *models.Booking) error {
	log := s.logger().With(
		zap.String("providerId", b.ProviderID),
		zap.String("date", b.Date),
		zap.String("time", b.Time),
		zap.String("source", string(b.Source)),
	)
	if err := s.Repo.Create(ctx, b); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			log.Info("Booking lost slot race")
		}
		return err
	}
	s.invalidate(ctx, b.ProviderID)
	log.Info("Booking created", zap.String("bookingId", b.ID), zap.String("status", string(b.Status)))
	return nil
}

func (s *DefaultBookingService) invalidate(ctx context.Context, providerID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.InvalidateProvider(ctx, providerID); err != nil {
		s.logger().Warn("Failed to invalidate slot cache", zap.String("providerId", providerID), zap.Error(err))
	}
}

func newBooking(req models.BookingRequest, day, clock string, status models.BookingStatus, source models.BookingSource, now time.Time) *models.Booking {
	return &models.Booking{
		ID:         uuid.New().String(),
		ProviderID: req.ProviderID,
		CustomerID: req.CustomerID,
		Date:       day,
		Time:       clock,
		Status:     status,
		Source:     source,
		Notes:      req.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func parseRequest(req models.BookingRequest) (time.Time, string, error) {
	if strings.TrimSpace(req.ProviderID) == "" {
		return time.Time{}, "", fmt.Errorf("%w: provider id is required", ErrInvalidInput)
	}
	date, err := availability.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	clock := strings.TrimSpace(req.Time)
	if _, err := availability.ParseClock(clock); err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return date, clock, nil
}

func containsSlot(slots []string, clock string) bool {
	for _, s := range slots {
		if s == clock {
			return true
		}
	}
	return false
}
