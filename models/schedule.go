package models

import (
	"sort"
	"strings"
	"time"
)

// WeekdayCode identifies a day of the week, e.g. "Mon".
type WeekdayCode string

const (
	Monday    WeekdayCode = "Mon"
	Tuesday   WeekdayCode = "Tue"
	Wednesday WeekdayCode = "Wed"
	Thursday  WeekdayCode = "Thu"
	Friday    WeekdayCode = "Fri"
	Saturday  WeekdayCode = "Sat"
	Sunday    WeekdayCode = "Sun"
)

// AllWeekdays lists the codes in week order, Monday first.
var AllWeekdays = []WeekdayCode{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func weekdayIndex(code WeekdayCode) int {
	for i, c := range AllWeekdays {
		if c == code {
			return i
		}
	}
	return -1
}

// Valid reports whether w is one of the seven canonical codes.
func (w WeekdayCode) Valid() bool {
	return weekdayIndex(w) >= 0
}

// ParseWeekdayCode accepts "mon", "Mon", "MONDAY" and friends.
func ParseWeekdayCode(s string) (WeekdayCode, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return "", false
	}
	code := WeekdayCode(strings.ToUpper(s[:1]) + strings.ToLower(s[1:3]))
	if !code.Valid() {
		return "", false
	}
	return code, true
}

// WorkingHours is the half-open clock interval [Start, End) applied to every
// working day. Both bounds are 24-hour "HH:MM" wall-clock times.
type WorkingHours struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// Schedule is a provider's recurring availability plus its exceptions.
//
// A Schedule is treated as an immutable value: the With* methods return a
// modified copy and never touch the receiver's slices, so a schedule shared by
// several callers cannot be changed behind their backs. Persisting a schedule
// replaces the stored record as a whole.
type Schedule struct {
	ProviderID   string        `bson:"providerId" json:"providerId"`
	WorkingDays  []WeekdayCode `bson:"workingDays" json:"workingDays"`
	WorkingHours *WorkingHours `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
	BlockedDates []string      `bson:"blockedDates" json:"blockedDates"`
	BlockedSlots []string      `bson:"blockedSlots" json:"blockedSlots"`
	OnHoliday    bool          `bson:"onHoliday" json:"onHoliday"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// RestrictiveSchedule is what a provider without a stored schedule gets:
// no working days and no hours, i.e. never bookable.
func RestrictiveSchedule(providerID string) Schedule {
	return Schedule{
		ProviderID:   providerID,
		WorkingDays:  []WeekdayCode{},
		BlockedDates: []string{},
		BlockedSlots: []string{},
	}
}

// DefaultSchedule is the schedule created at provider onboarding.
func DefaultSchedule(providerID string) Schedule {
	return RestrictiveSchedule(providerID).
		WithWorkingDays(Monday, Tuesday, Wednesday, Thursday, Friday).
		WithWorkingHours(WorkingHours{Start: "09:00", End: "17:00"})
}

// Normalize drops unknown weekday codes, de-duplicates and sorts every set
// and replaces nil slices with empty ones. Records read from storage go
// through here once so the rest of the code can rely on the shape.
func (s Schedule) Normalize() Schedule {
	out := s
	out.WorkingDays = normalizeDays(s.WorkingDays)
	out.BlockedDates = normalizeSet(s.BlockedDates)
	out.BlockedSlots = normalizeSet(s.BlockedSlots)
	if s.WorkingHours != nil {
		h := WorkingHours{
			Start: strings.TrimSpace(s.WorkingHours.Start),
			End:   strings.TrimSpace(s.WorkingHours.End),
		}
		out.WorkingHours = &h
	}
	return out
}

// WorksOn reports whether code is one of the schedule's working days.
func (s Schedule) WorksOn(code WeekdayCode) bool {
	for _, d := range s.WorkingDays {
		if d == code {
			return true
		}
	}
	return false
}

// IsDateBlocked reports whether the ISO date is a blocked date.
func (s Schedule) IsDateBlocked(date string) bool {
	return contains(s.BlockedDates, date)
}

// IsSlotBlocked reports whether the "YYYY-MM-DDTHH:MM" token is blocked.
func (s Schedule) IsSlotBlocked(token string) bool {
	return contains(s.BlockedSlots, token)
}

func (s Schedule) WithWorkingDays(days ...WeekdayCode) Schedule {
	out := s
	out.WorkingDays = normalizeDays(days)
	return out
}

func (s Schedule) WithWorkingHours(h WorkingHours) Schedule {
	out := s
	out.WorkingHours = &WorkingHours{Start: h.Start, End: h.End}
	return out
}

func (s Schedule) WithHoliday(on bool) Schedule {
	out := s
	out.OnHoliday = on
	return out
}

func (s Schedule) WithBlockedDate(date string) Schedule {
	out := s
	out.BlockedDates = normalizeSet(append(clone(s.BlockedDates), date))
	return out
}

func (s Schedule) WithoutBlockedDate(date string) Schedule {
	out := s
	out.BlockedDates = without(s.BlockedDates, date)
	return out
}

func (s Schedule) WithBlockedSlot(token string) Schedule {
	out := s
	out.BlockedSlots = normalizeSet(append(clone(s.BlockedSlots), token))
	return out
}

func (s Schedule) WithoutBlockedSlot(token string) Schedule {
	out := s
	out.BlockedSlots = without(s.BlockedSlots, token)
	return out
}

// WithToggledSlot blocks token if it is open and opens it if it is blocked.
func (s Schedule) WithToggledSlot(token string) Schedule {
	if s.IsSlotBlocked(token) {
		return s.WithoutBlockedSlot(token)
	}
	return s.WithBlockedSlot(token)
}

func normalizeDays(days []WeekdayCode) []WeekdayCode {
	seen := make(map[WeekdayCode]bool, len(days))
	out := make([]WeekdayCode, 0, len(days))
	for _, d := range days {
		if !d.Valid() || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return weekdayIndex(out[i]) < weekdayIndex(out[j]) })
	return out
}

func normalizeSet(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func without(values []string, drop string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != drop {
			out = append(out, v)
		}
	}
	return out
}

func clone(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
