package models

// ReminderPayload is the body of a booking reminder task.
type ReminderPayload struct {
	BookingID  string `json:"bookingId"`
	ProviderID string `json:"providerId"`
	CustomerID string `json:"customerId,omitempty"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Title      string `json:"title"`
	Body       string `json:"body"`
}
