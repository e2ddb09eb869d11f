// File: services/booking/availabilityModule.go
package booking

import (
	"context"
	"fmt"
	"time"

	"homebook/models"
	"homebook/services/availability"
	slotCache "homebook/services/cache"

	"go.uber.org/zap"
)

const noSlotsMessage = "No available slots for this date"

// MaxWeekIndex is the furthest week ahead WeeklyAvailability will look.
const MaxWeekIndex = 52

// AvailableSlots returns the slots a customer may pick on date. Dates before
// today yield an empty list without touching storage.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, providerID string, date time.Time) (models.AvailableSlotsResult, error) {
	day := availability.FormatDate(date)
	result := models.AvailableSlotsResult{ProviderID: providerID, Date: day, Slots: []string{}}

	if availability.IsBefore(date, s.now()) {
		result.Message = "Date is in the past"
		return result, nil
	}

	slots, err := s.openSlots(ctx, providerID, date)
	if err != nil {
		return result, err
	}
	result.Slots = slots
	if len(slots) == 0 {
		result.Message = noSlotsMessage
	}
	return result, nil
}

// openSlots serves from the cache when it can and fills it otherwise.
func (s *DefaultBookingService) openSlots(ctx context.Context, providerID string, date time.Time) ([]string, error) {
	day := availability.FormatDate(date)
	log := s.logger().With(zap.String("providerId", providerID), zap.String("date", day))

	// The generation is read before the snapshot so that an invalidation
	// racing with this computation orphans the entry written below.
	var lookup slotCache.Lookup
	cacheable := false
	if s.Cache != nil {
		var err error
		lookup, err = s.Cache.Get(ctx, providerID, day, s.Granularity)
		switch {
		case err != nil:
			log.Warn("Slot cache read failed", zap.Error(err))
		case lookup.Hit:
			return lookup.Slots, nil
		default:
			cacheable = true
		}
	}

	sched, err := s.Schedules.GetSchedule(ctx, providerID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Repo.ListByProviderAndDate(ctx, providerID, day)
	if err != nil {
		return nil, err
	}
	slots, err := availability.AvailableSlotsForDate(sched, date, bookings, s.Granularity)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.Cache.Set(ctx, providerID, day, s.Granularity, lookup.Generation, slots); err != nil {
			log.Warn("Slot cache write failed", zap.Error(err))
		}
	}
	return slots, nil
}

// WeeklyAvailability returns seven consecutive days starting today plus
// weekIndex weeks, each with its resolved state and open slots.
func (s *DefaultBookingService) WeeklyAvailability(ctx context.Context, providerID string, weekIndex int) ([]models.DayAvailability, error) {
	if weekIndex < 0 || weekIndex > MaxWeekIndex {
		return nil, fmt.Errorf("%w: weekIndex must be between 0 and %d", ErrInvalidInput, MaxWeekIndex)
	}

	start := availability.StartOfDay(s.now()).AddDate(0, 0, 7*weekIndex)
	end := start.AddDate(0, 0, 7)

	sched, err := s.Schedules.GetSchedule(ctx, providerID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Repo.ListByProviderInRange(ctx, providerID, availability.FormatDate(start), availability.FormatDate(end))
	if err != nil {
		return nil, err
	}

	week := make([]models.DayAvailability, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		state := availability.ResolveDay(sched, d)
		desc := availability.Describe(state)

		slots, err := availability.AvailableSlotsForDate(sched, d, bookings, s.Granularity)
		if err != nil {
			return nil, err
		}
		week = append(week, models.DayAvailability{
			Date:     availability.FormatDate(d),
			Weekday:  availability.WeekdayCodeOf(d),
			State:    state,
			Label:    desc.Label,
			Severity: desc.Severity,
			Slots:    slots,
		})
	}
	return week, nil
}
