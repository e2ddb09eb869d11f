package availability

import (
	"fmt"
	"strings"
	"time"

	"homebook/models"
)

// All dates and clock times are naive wall-clock values in the provider's own
// local time. Nothing here converts between locations: a time.Time is read
// through its own Year/Month/Day/Hour/Minute fields, whatever its Location.
// The engine therefore cannot serve customers in a different timezone from
// the provider.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
	TokenLayout = "2006-01-02T15:04"
)

// WeekdayCodeOf returns the weekday code of t's calendar date.
func WeekdayCodeOf(t time.Time) models.WeekdayCode {
	// time.Weekday is Sunday-first; AllWeekdays is Monday-first.
	return models.AllWeekdays[(int(t.Weekday())+6)%7]
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// ParseDate parses an ISO "YYYY-MM-DD" date as a naive calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}

// ParseToken parses a "YYYY-MM-DDTHH:MM" date-time token.
func ParseToken(s string) (time.Time, error) {
	t, err := time.Parse(TokenLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date-time %q: expected YYYY-MM-DDTHH:MM", s)
	}
	return t, nil
}

// ParseClock returns the minutes since midnight of a zero-padded "HH:MM".
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinutes renders minutes since midnight as "HH:MM".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// CompareClock orders two "HH:MM" strings. Zero-padded 24-hour times sort
// lexically in chronological order.
func CompareClock(a, b string) int {
	return strings.Compare(a, b)
}

// SlotToken builds the "YYYY-MM-DDTHH:MM" token identifying a slot.
func SlotToken(date, clock string) string {
	return date + "T" + clock
}

// StartOfDay drops the clock part of t, keeping its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsBefore reports whether date falls on an earlier calendar day than today.
// Only the calendar fields are compared.
func IsBefore(date, today time.Time) bool {
	dy, dm, dd := date.Date()
	ty, tm, td := today.Date()
	if dy != ty {
		return dy < ty
	}
	if dm != tm {
		return dm < tm
	}
	return dd < td
}
