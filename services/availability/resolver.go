// Package availability decides whether a provider can be booked at a given
// date and time and which slots a customer may pick.
//
// Everything in this package is a pure function of its arguments. Callers
// fetch the schedule and booking snapshot from storage and pass them in; the
// functions never block, never write, and are safe for concurrent use.
package availability

import (
	"fmt"
	"time"

	"homebook/models"
)

// Resolve classifies at against schedule. Rules are checked in this order and
// the first match wins:
//
//	HOLIDAY   schedule.OnHoliday
//	BLOCKED   the date of at is a blocked date
//	DAY_OFF   the weekday of at is not a working day
//	CLOSED    the clock time of at is outside [start, end)
//	AVAILABLE otherwise
//
// Missing or malformed working hours resolve to CLOSED.
func Resolve(schedule models.Schedule, at time.Time) models.AvailabilityState {
	if state, closed := resolveDay(schedule, at); closed {
		return state
	}
	if !withinHours(schedule.WorkingHours, at.Hour()*60+at.Minute()) {
		return models.StateClosed
	}
	return models.StateAvailable
}

// ResolveDay classifies a whole calendar day. It applies the day-level rules
// of Resolve and then reports CLOSED only when the day has no usable working
// hours at all; individual hours are left to the slot level.
func ResolveDay(schedule models.Schedule, date time.Time) models.AvailabilityState {
	if state, closed := resolveDay(schedule, date); closed {
		return state
	}
	if _, _, ok := hoursRange(schedule.WorkingHours); !ok {
		return models.StateClosed
	}
	return models.StateAvailable
}

func resolveDay(schedule models.Schedule, at time.Time) (models.AvailabilityState, bool) {
	switch {
	case schedule.OnHoliday:
		return models.StateHoliday, true
	case schedule.IsDateBlocked(FormatDate(at)):
		return models.StateBlocked, true
	case !schedule.WorksOn(WeekdayCodeOf(at)):
		return models.StateDayOff, true
	}
	return "", false
}

func withinHours(h *models.WorkingHours, minute int) bool {
	start, end, ok := hoursRange(h)
	if !ok {
		return false
	}
	return minute >= start && minute < end
}

func hoursRange(h *models.WorkingHours) (int, int, bool) {
	if h == nil {
		return 0, 0, false
	}
	start, end, err := parseHours(*h)
	return start, end, err == nil
}

// Describe maps a state to its badge label and severity. Every state has an
// entry; an unknown state is a programming error and panics.
func Describe(state models.AvailabilityState) models.StateDescription {
	switch state {
	case models.StateHoliday:
		return models.StateDescription{Label: "On holiday", Severity: models.SeverityCritical}
	case models.StateBlocked:
		return models.StateDescription{Label: "Blocked", Severity: models.SeverityCritical}
	case models.StateDayOff:
		return models.StateDescription{Label: "Day off", Severity: models.SeverityMuted}
	case models.StateClosed:
		return models.StateDescription{Label: "Outside working hours", Severity: models.SeverityWarning}
	case models.StateAvailable:
		return models.StateDescription{Label: "Available", Severity: models.SeveritySuccess}
	}
	panic(fmt.Sprintf("availability: no description for state %q", state))
}
