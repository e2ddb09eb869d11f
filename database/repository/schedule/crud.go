// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoScheduleRepo) GetByProviderID(ctx context.Context, providerID string) (*models.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Schedule
	err := r.coll.FindOne(ctx, bson.M{"providerId": providerID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule for provider %s: %w", providerID, err)
	}

	normalized := s.Normalize()
	return &normalized, nil
}

func (r *mongoScheduleRepo) Replace(ctx context.Context, s models.Schedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if s.ProviderID == "" {
		return fmt.Errorf("schedule has no provider id")
	}

	doc := s.Normalize()
	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"providerId": s.ProviderID},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to replace schedule for provider %s: %w", s.ProviderID, err)
	}
	return nil
}
