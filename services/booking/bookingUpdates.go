// File: services/booking/bookingUpdates.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "homebook/database/repository/booking"
	"homebook/models"
	"homebook/services/availability"
	"homebook/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// UpdateStatus confirms or rejects a pending booking. A booking changes
// status at most once; any later attempt gets ErrInvalidTransition.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) (*models.Booking, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, displayStatus(b.Status), status)
	}

	now := s.now()
	if err := s.Repo.UpdateStatus(ctx, b.ID, b.Status, status, now); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			return nil, fmt.Errorf("%w: booking was updated concurrently", ErrInvalidTransition)
		}
		return nil, err
	}
	b.Status = status
	b.UpdatedAt = now

	s.invalidate(ctx, b.ProviderID)
	s.logger().Info("Booking status updated",
		zap.String("bookingId", b.ID),
		zap.String("providerId", b.ProviderID),
		zap.String("status", string(status)),
	)

	if status == models.StatusConfirmed {
		s.scheduleReminder(b)
	}
	return b, nil
}

// scheduleReminder enqueues a reminder ReminderLead before the slot starts.
// Reminders that would already be due are skipped. Failures are logged; the
// booking itself is already stored.
func (s *DefaultBookingService) scheduleReminder(b *models.Booking) {
	if s.Reminders == nil {
		return
	}
	log := s.logger().With(zap.String("bookingId", b.ID))

	fireAt, err := reminderTime(b, s.ReminderLead, s.now().Location())
	if err != nil {
		log.Warn("Cannot compute reminder time", zap.Error(err))
		return
	}
	if !fireAt.After(s.now()) {
		log.Debug("Reminder time already passed, skipping", zap.Time("fireAt", fireAt))
		return
	}

	payload := models.ReminderPayload{
		BookingID:  b.ID,
		ProviderID: b.ProviderID,
		CustomerID: b.CustomerID,
		Date:       b.Date,
		Time:       b.Time,
		Title:      "Upcoming booking",
		Body:       fmt.Sprintf("You have a booking on %s at %s.", b.Date, b.Time),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		log.Error("Failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.Reminders.Enqueue(task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return
		}
		log.Error("Failed to enqueue reminder task", zap.Error(err))
		return
	}
	log.Info("Reminder scheduled", zap.Time("fireAt", fireAt))
}

// reminderTime reads the booking's naive wall-clock slot start in loc.
func reminderTime(b *models.Booking, lead time.Duration, loc *time.Location) (time.Time, error) {
	start, err := availability.ParseToken(availability.SlotToken(b.Date, b.Time))
	if err != nil {
		return time.Time{}, err
	}
	local := time.Date(start.Year(), start.Month(), start.Day(), start.Hour(), start.Minute(), 0, 0, loc)
	return local.Add(-lead), nil
}

func displayStatus(s models.BookingStatus) string {
	if s == "" {
		return "unknown"
	}
	return string(s)
}
