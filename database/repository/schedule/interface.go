// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"errors"

	"homebook/database"
	"homebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a provider has no stored schedule.
var ErrNotFound = errors.New("schedule not found")

type ScheduleRepository interface {
	GetByProviderID(ctx context.Context, providerID string) (*models.Schedule, error)
	// Replace stores s as the provider's whole schedule, creating it if needed.
	Replace(ctx context.Context, s models.Schedule) error
	EnsureIndexes(ctx context.Context) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	return &mongoScheduleRepo{
		coll: database.Database().Collection("schedules"),
	}
}
