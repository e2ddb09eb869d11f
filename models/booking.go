package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
)

// OccupyingStatuses are the statuses that hold a slot.
var OccupyingStatuses = []BookingStatus{StatusPending, StatusConfirmed}

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether s may move to next. Only pending bookings
// move, and only once.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return s == StatusPending && (next == StatusConfirmed || next == StatusRejected)
}

// BookingSource records who created a booking.
type BookingSource string

const (
	SourceCustomer BookingSource = "customer"
	SourceManual   BookingSource = "manual" // offline entry by an admin
)

// Booking is an append-only record of a customer's claim on a slot.
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	ProviderID string        `bson:"providerId" json:"providerId"`
	CustomerID string        `bson:"customerId,omitempty" json:"customerId,omitempty"`
	Date       string        `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time       string        `bson:"time" json:"time"` // "HH:MM", slot start
	Status     BookingStatus `bson:"status" json:"status"`
	Source     BookingSource `bson:"source" json:"source"`
	Notes      string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Occupies reports whether the booking holds its slot. Anything that is not
// explicitly rejected, including a missing or unknown status, does.
func (b Booking) Occupies() bool {
	return b.Status != StatusRejected
}
