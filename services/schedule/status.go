package schedule

import (
	"context"
	"time"

	"homebook/models"
	"homebook/services/availability"
)

// DayStatus resolves the provider's state at a single instant for the
// dashboard badge.
func (s *DefaultScheduleService) DayStatus(ctx context.Context, providerID string, at time.Time) (models.DayStatus, error) {
	sched, err := s.GetSchedule(ctx, providerID)
	if err != nil {
		return models.DayStatus{}, err
	}
	state := availability.Resolve(sched, at)
	desc := availability.Describe(state)
	return models.DayStatus{
		ProviderID: providerID,
		At:         at.Format(availability.TokenLayout),
		State:      state,
		Label:      desc.Label,
		Severity:   desc.Severity,
	}, nil
}

// SlotBoard lists every slot of date with its blocked and booked flags.
func (s *DefaultScheduleService) SlotBoard(ctx context.Context, providerID string, date time.Time) (models.SlotBoard, error) {
	sched, err := s.GetSchedule(ctx, providerID)
	if err != nil {
		return models.SlotBoard{}, err
	}
	day := availability.FormatDate(date)
	bookings, err := s.Bookings.ListByProviderAndDate(ctx, providerID, day)
	if err != nil {
		return models.SlotBoard{}, err
	}
	entries, err := availability.BoardForDate(sched, date, bookings, s.Granularity)
	if err != nil {
		return models.SlotBoard{}, err
	}
	return models.SlotBoard{
		ProviderID: providerID,
		Date:       day,
		State:      availability.ResolveDay(sched, date),
		Entries:    entries,
	}, nil
}
