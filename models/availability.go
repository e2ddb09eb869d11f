package models

// AvailabilityState classifies a provider's availability at a date/time.
type AvailabilityState string

const (
	StateHoliday   AvailabilityState = "HOLIDAY"
	StateBlocked   AvailabilityState = "BLOCKED"
	StateDayOff    AvailabilityState = "DAY_OFF"
	StateClosed    AvailabilityState = "CLOSED"
	StateAvailable AvailabilityState = "AVAILABLE"
)

// Severity drives how a state is rendered on a badge.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityMuted    Severity = "muted"
	SeveritySuccess  Severity = "success"
)

// StateDescription is the human-facing rendering of an AvailabilityState.
type StateDescription struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
}

// DayStatus is a resolved state for one instant, as shown on the dashboard.
type DayStatus struct {
	ProviderID string            `json:"providerId"`
	At         string            `json:"at"` // "YYYY-MM-DDTHH:MM"
	State      AvailabilityState `json:"state"`
	Label      string            `json:"label"`
	Severity   Severity          `json:"severity"`
}

// DayAvailability is one day of the weekly calendar a customer browses.
type DayAvailability struct {
	Date     string            `json:"date"`
	Weekday  WeekdayCode       `json:"weekday"`
	State    AvailabilityState `json:"state"`
	Label    string            `json:"label"`
	Severity Severity          `json:"severity"`
	Slots    []string          `json:"slots"`
}

// SlotBoardEntry is one row of the provider's manual blocking board.
type SlotBoardEntry struct {
	Time    string `json:"time"`
	Token   string `json:"token"`
	Blocked bool   `json:"blocked"`
	Booked  bool   `json:"booked"`
}

// SlotBoard lists every slot of a day with its blocked/booked flags.
type SlotBoard struct {
	ProviderID string            `json:"providerId"`
	Date       string            `json:"date"`
	State      AvailabilityState `json:"state"`
	Entries    []SlotBoardEntry  `json:"entries"`
}

// AvailableSlotsResult is what the booking UI renders as slot buttons.
type AvailableSlotsResult struct {
	ProviderID string   `json:"providerId"`
	Date       string   `json:"date"`
	Slots      []string `json:"slots"`
	Message    string   `json:"message,omitempty"`
}
