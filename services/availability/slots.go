package availability

import (
	"time"

	"homebook/models"
)

// GenerateSlots partitions [hours.Start, hours.End) into steps of
// granularityMinutes and returns the start of every full step, ascending.
// A trailing step that would run past End is dropped.
func GenerateSlots(hours models.WorkingHours, granularityMinutes int) ([]string, error) {
	if granularityMinutes <= 0 {
		return nil, ErrInvalidGranularity
	}
	start, end, err := parseHours(hours)
	if err != nil {
		return nil, err
	}

	slots := make([]string, 0, (end-start)/granularityMinutes)
	for t := start; t+granularityMinutes <= end; t += granularityMinutes {
		slots = append(slots, FormatMinutes(t))
	}
	return slots, nil
}

// ValidateHours returns an *InvalidRangeError unless hours is a well-formed
// same-day interval with Start before End.
func ValidateHours(hours models.WorkingHours) error {
	_, _, err := parseHours(hours)
	return err
}

func parseHours(hours models.WorkingHours) (int, int, error) {
	start, err := ParseClock(hours.Start)
	if err != nil {
		return 0, 0, &InvalidRangeError{Start: hours.Start, End: hours.End, Reason: err.Error()}
	}
	end, err := ParseClock(hours.End)
	if err != nil {
		return 0, 0, &InvalidRangeError{Start: hours.Start, End: hours.End, Reason: err.Error()}
	}
	if start >= end {
		return 0, 0, &InvalidRangeError{Start: hours.Start, End: hours.End, Reason: "start must be before end"}
	}
	return start, end, nil
}

// AvailableSlotsForDate returns the slots of date a customer can book.
//
// Days that resolve to HOLIDAY, BLOCKED or DAY_OFF, and days without working
// hours, yield no slots. Otherwise the generated slots lose every entry whose
// token is a blocked slot and every entry held by an occupying booking on the
// same date. Blocked slots match by exact token, so they must have been
// created with the same granularity.
//
// Past dates are not filtered here. Customer-facing callers are expected to
// drop them with IsBefore; admin tooling may legitimately look at any date.
func AvailableSlotsForDate(schedule models.Schedule, date time.Time, bookings []models.Booking, granularityMinutes int) ([]string, error) {
	entries, err := slotEntries(schedule, date, bookings, granularityMinutes)
	if err != nil {
		return nil, err
	}

	slots := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Blocked || e.Booked {
			continue
		}
		slots = append(slots, e.Time)
	}
	return slots, nil
}

// BoardForDate lists every generated slot of date with its blocked and booked
// flags. It backs the provider's manual slot-blocking toggles and follows the
// same day-level short circuit as AvailableSlotsForDate.
func BoardForDate(schedule models.Schedule, date time.Time, bookings []models.Booking, granularityMinutes int) ([]models.SlotBoardEntry, error) {
	return slotEntries(schedule, date, bookings, granularityMinutes)
}

func slotEntries(schedule models.Schedule, date time.Time, bookings []models.Booking, granularityMinutes int) ([]models.SlotBoardEntry, error) {
	switch ResolveDay(schedule, date) {
	case models.StateHoliday, models.StateBlocked, models.StateDayOff:
		return []models.SlotBoardEntry{}, nil
	}
	if schedule.WorkingHours == nil {
		return []models.SlotBoardEntry{}, nil
	}

	raw, err := GenerateSlots(*schedule.WorkingHours, granularityMinutes)
	if err != nil {
		return nil, err
	}

	day := FormatDate(date)
	booked := occupiedSlots(schedule.ProviderID, day, bookings)

	entries := make([]models.SlotBoardEntry, 0, len(raw))
	for _, clock := range raw {
		token := SlotToken(day, clock)
		entries = append(entries, models.SlotBoardEntry{
			Time:    clock,
			Token:   token,
			Blocked: schedule.IsSlotBlocked(token),
			Booked:  booked[clock],
		})
	}
	return entries, nil
}

// occupiedSlots collects the clock times held on day. A booking for another
// provider is ignored; one without a provider id is assumed to be ours.
func occupiedSlots(providerID, day string, bookings []models.Booking) map[string]bool {
	held := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		if b.Date != day || !b.Occupies() {
			continue
		}
		if providerID != "" && b.ProviderID != "" && b.ProviderID != providerID {
			continue
		}
		held[b.Time] = true
	}
	return held
}
