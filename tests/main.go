// Command tests seeds a development database with provider schedules and a
// week of bookings so the slot endpoints have something to show.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"homebook/config"
	"homebook/database"
	bookingRepo "homebook/database/repository/booking"
	scheduleRepo "homebook/database/repository/schedule"
	"homebook/models"
	"homebook/services/availability"

	"go.mongodb.org/mongo-driver/bson"
)

const providerCount = 10

func main() {
	config.LoadConfig()
	database.InitDB()
	defer database.CloseDB(context.Background()) //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.Database()
	for _, coll := range []string{"schedules", "bookings"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}

	schedules := scheduleRepo.NewMongoScheduleRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	if err := schedules.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure schedule indexes: %v", err)
	}
	if err := bookings.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure booking indexes: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := availability.StartOfDay(time.Now())
	granularity := config.AppConfig.SlotGranularityMinutes

	// Start times vary so the fleet does not all open at nine.
	shifts := []models.WorkingHours{
		{Start: "08:00", End: "16:00"},
		{Start: "09:00", End: "17:00"},
		{Start: "10:00", End: "18:30"},
	}

	created := 0
	for i := 1; i <= providerCount; i++ {
		providerID := fmt.Sprintf("prov-%d", i)

		s := models.DefaultSchedule(providerID).WithWorkingHours(shifts[i%len(shifts)])
		if i%4 == 0 {
			s = s.WithWorkingDays(models.AllWeekdays...)
		}
		if i%3 == 0 {
			s = s.WithBlockedDate(availability.FormatDate(today.AddDate(0, 0, 2)))
		}
		if i == providerCount {
			s = s.WithHoliday(true)
		}
		s.UpdatedAt = time.Now()
		if err := schedules.Replace(ctx, s); err != nil {
			log.Fatalf("Failed to save schedule for %s: %v", providerID, err)
		}

		for d := 0; d < 7; d++ {
			day := today.AddDate(0, 0, d)
			open, err := availability.AvailableSlotsForDate(s, day, nil, granularity)
			if err != nil {
				log.Fatalf("Failed to compute slots for %s: %v", providerID, err)
			}
			for _, clock := range open {
				if rng.Intn(4) != 0 {
					continue
				}
				status := models.StatusPending
				if rng.Intn(2) == 0 {
					status = models.StatusConfirmed
				}
				b := &models.Booking{
					ProviderID: providerID,
					CustomerID: fmt.Sprintf("cust-%d", rng.Intn(50)+1),
					Date:       availability.FormatDate(day),
					Time:       clock,
					Status:     status,
					Source:     models.SourceCustomer,
					CreatedAt:  time.Now(),
					UpdatedAt:  time.Now(),
				}
				if err := bookings.Create(ctx, b); err != nil {
					if errors.Is(err, bookingRepo.ErrSlotTaken) {
						continue
					}
					log.Fatalf("Failed to insert booking: %v", err)
				}
				created++
			}
		}
	}

	fmt.Printf("Seeded %d schedules and %d bookings.\n", providerCount, created)
}
