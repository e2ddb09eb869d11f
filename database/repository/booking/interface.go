// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"
	"time"

	"homebook/database"
	"homebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound = errors.New("booking not found")
	// ErrSlotTaken means another pending or confirmed booking already holds
	// the same provider, date and time.
	ErrSlotTaken = errors.New("slot already booked")
	// ErrStatusConflict means the booking was no longer in the expected
	// status when the update ran.
	ErrStatusConflict = errors.New("booking status changed concurrently")
)

type BookingRepository interface {
	Create(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Booking, error)
	// ListByProviderInRange returns bookings with from <= date < to.
	ListByProviderInRange(ctx context.Context, providerID, from, to string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, from, to models.BookingStatus, at time.Time) error
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.Database().Collection("bookings"),
	}
}
