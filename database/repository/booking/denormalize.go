package bookingRepo

import "homebook/models"

// bookingDocument is the stored shape of a booking. Active mirrors
// Booking.Occupies so the unique slot index can be a plain partial index on
// a boolean, which every MongoDB version supports.
type bookingDocument struct {
	models.Booking `bson:",inline"`
	Active         bool `bson:"active"`
}

func toDocument(b models.Booking) bookingDocument {
	return bookingDocument{Booking: b, Active: b.Occupies()}
}
