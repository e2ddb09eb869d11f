// File: services/schedule/service.go
package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	scheduleRepo "homebook/database/repository/schedule"
	"homebook/models"
	"homebook/services/availability"

	"go.uber.org/zap"
)

// GetSchedule returns the provider's stored schedule. A provider that never
// saved one gets the restrictive default, so an unknown provider is never
// bookable.
func (s *DefaultScheduleService) GetSchedule(ctx context.Context, providerID string) (models.Schedule, error) {
	if strings.TrimSpace(providerID) == "" {
		return models.Schedule{}, fmt.Errorf("%w: provider id is required", ErrInvalidInput)
	}
	stored, err := s.Repo.GetByProviderID(ctx, providerID)
	if errors.Is(err, scheduleRepo.ErrNotFound) {
		return models.RestrictiveSchedule(providerID), nil
	}
	if err != nil {
		return models.Schedule{}, err
	}
	return *stored, nil
}

func (s *DefaultScheduleService) CreateDefaultSchedule(ctx context.Context, providerID string) (models.Schedule, error) {
	return s.update(ctx, providerID, func(models.Schedule) (models.Schedule, error) {
		return models.DefaultSchedule(providerID), nil
	})
}

func (s *DefaultScheduleService) ReplaceSchedule(ctx context.Context, providerID string, req models.ScheduleRequest) (models.Schedule, error) {
	days, err := parseDays(req.WorkingDays)
	if err != nil {
		return models.Schedule{}, err
	}
	var hours *models.WorkingHours
	if req.WorkingHours != nil {
		h := trimHours(*req.WorkingHours)
		if err := availability.ValidateHours(h); err != nil {
			return models.Schedule{}, err
		}
		hours = &h
	}
	dates := make([]string, 0, len(req.BlockedDates))
	for _, d := range req.BlockedDates {
		date, err := canonicalDate(d)
		if err != nil {
			return models.Schedule{}, err
		}
		dates = append(dates, date)
	}
	tokens := make([]string, 0, len(req.BlockedSlots))
	for _, tok := range req.BlockedSlots {
		parsed, err := availability.ParseToken(tok)
		if err != nil {
			return models.Schedule{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		tokens = append(tokens, parsed.Format(availability.TokenLayout))
	}

	return s.update(ctx, providerID, func(models.Schedule) (models.Schedule, error) {
		next := models.RestrictiveSchedule(providerID).
			WithWorkingDays(days...).
			WithHoliday(req.OnHoliday)
		if hours != nil {
			next = next.WithWorkingHours(*hours)
		}
		next.BlockedDates = dates
		next.BlockedSlots = tokens
		return next, nil
	})
}

func (s *DefaultScheduleService) SetWorkingDays(ctx context.Context, providerID string, days []string) (models.Schedule, error) {
	codes, err := parseDays(days)
	if err != nil {
		return models.Schedule{}, err
	}
	return s.update(ctx, providerID, func(cur models.Schedule) (models.Schedule, error) {
		return cur.WithWorkingDays(codes...), nil
	})
}

// SetWorkingHours rejects hours that are malformed or where start is not
// strictly before end. The error is an *availability.InvalidRangeError.
func (s *DefaultScheduleService) SetWorkingHours(ctx context.Context, providerID string, hours models.WorkingHours) (models.Schedule, error) {
	hours = trimHours(hours)
	if err := availability.ValidateHours(hours); err != nil {
		return models.Schedule{}, err
	}
	return s.update(ctx, providerID, func(cur models.Schedule) (models.Schedule, error) {
		return cur.WithWorkingHours(hours), nil
	})
}

func (s *DefaultScheduleService) SetHoliday(ctx context.Context, providerID string, onHoliday bool) (models.Schedule, error) {
	return s.update(ctx, providerID, func(cur models.Schedule) (models.Schedule, error) {
		return cur.WithHoliday(onHoliday), nil
	})
}

func (s *DefaultScheduleService) BlockDate(ctx context.Context, providerID, date string) (models.Schedule, error) {
	d, err := canonicalDate(date)
	if err != nil {
		return models.Schedule{}, err
	}
	return s.update(ctx, providerID, func(cur models.Schedule) (models.Schedule, error) {
		return cur.WithBlockedDate(d), nil
	})
}

func (s *DefaultScheduleService) UnblockDate(ctx context.Context, providerID, date string) (models.Schedule, error) {
	d, err := canonicalDate(date)
	if err != nil {
		return models.Schedule{}, err
	}
	return s.update(ctx, providerID, func(cur models.Schedule) (models.Schedule, error) {
		return cur.WithoutBlockedDate(d), nil
	})
}

// ToggleSlot blocks the slot starting at clock on date, or reopens it if it is
// already blocked, and returns the canonical token it toggled. The token is
// stored exactly, so it only ever matches slots generated at the same
// granularity.
func (s *DefaultScheduleService) ToggleSlot(ctx context.Context, providerID, date, clock string) (models.Schedule, string, error) {
	d, err := canonicalDate(date)
	if err != nil {
		return models.Schedule{}, "", err
	}
	clock = strings.TrimSpace(clock)
	if _, err := availability.ParseClock(clock); err != nil {
		return models.Schedule{}, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	token := availability.SlotToken(d, clock)
	next, err := s.update(ctx, providerID, func(cur models.Schedule) (models.Schedule, error) {
		return cur.WithToggledSlot(token), nil
	})
	if err != nil {
		return models.Schedule{}, "", err
	}
	return next, token, nil
}

// update runs a read-modify-replace cycle. Concurrent edits of one provider's
// schedule are last-writer-wins.
func (s *DefaultScheduleService) update(ctx context.Context, providerID string, change func(models.Schedule) (models.Schedule, error)) (models.Schedule, error) {
	current, err := s.GetSchedule(ctx, providerID)
	if err != nil {
		return models.Schedule{}, err
	}
	next, err := change(current)
	if err != nil {
		return models.Schedule{}, err
	}
	next.ProviderID = providerID
	next.UpdatedAt = s.now()
	next = next.Normalize()

	if err := s.Repo.Replace(ctx, next); err != nil {
		return models.Schedule{}, err
	}
	s.invalidate(ctx, providerID)

	s.logger().Info("Schedule updated",
		zap.String("providerId", providerID),
		zap.Bool("onHoliday", next.OnHoliday),
		zap.Int("blockedDates", len(next.BlockedDates)),
		zap.Int("blockedSlots", len(next.BlockedSlots)),
	)
	return next, nil
}

// invalidate drops cached slot lists. A failure only means stale reads until
// the cache TTL expires, so it is logged rather than returned.
func (s *DefaultScheduleService) invalidate(ctx context.Context, providerID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.InvalidateProvider(ctx, providerID); err != nil {
		s.logger().Warn("Failed to invalidate slot cache", zap.String("providerId", providerID), zap.Error(err))
	}
}

func parseDays(days []string) ([]models.WeekdayCode, error) {
	codes := make([]models.WeekdayCode, 0, len(days))
	for _, d := range days {
		code, ok := models.ParseWeekdayCode(d)
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, d)
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func trimHours(h models.WorkingHours) models.WorkingHours {
	return models.WorkingHours{Start: strings.TrimSpace(h.Start), End: strings.TrimSpace(h.End)}
}

func canonicalDate(date string) (string, error) {
	d, err := availability.ParseDate(date)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return availability.FormatDate(d), nil
}

var _ ScheduleService = (*DefaultScheduleService)(nil)
