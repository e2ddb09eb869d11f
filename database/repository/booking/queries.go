// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"homebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoBookingRepo) ListByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"providerId": providerID, "date": date})
}

func (r *mongoBookingRepo) ListByProviderInRange(ctx context.Context, providerID, from, to string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{
		"providerId": providerID,
		"date":       bson.M{"$gte": from, "$lt": to},
	})
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bookingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}

	bookings := make([]models.Booking, 0, len(docs))
	for _, d := range docs {
		bookings = append(bookings, d.Booking)
	}
	return bookings, nil
}
