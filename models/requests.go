package models

// BookingRequest is the payload for customer and manual booking creation.
type BookingRequest struct {
	ProviderID string `json:"providerId" binding:"required"`
	CustomerID string `json:"customerId"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Notes      string `json:"notes"`
}

// StatusUpdateRequest moves a booking along its lifecycle.
type StatusUpdateRequest struct {
	Status BookingStatus `json:"status" binding:"required"`
}

// ScheduleRequest replaces a provider's schedule wholesale.
type ScheduleRequest struct {
	WorkingDays  []string      `json:"workingDays"`
	WorkingHours *WorkingHours `json:"workingHours"`
	BlockedDates []string      `json:"blockedDates"`
	BlockedSlots []string      `json:"blockedSlots"`
	OnHoliday    bool          `json:"onHoliday"`
}

type WorkingDaysRequest struct {
	Days []string `json:"days" binding:"required"`
}

type WorkingHoursRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type HolidayRequest struct {
	OnHoliday *bool `json:"onHoliday" binding:"required"`
}

type BlockedDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type SlotToggleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}
