package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingRepo "homebook/database/repository/booking"
	"homebook/models"
	"homebook/services/availability"
	slotCache "homebook/services/cache"
	"homebook/tests/mocks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Monday 2024-01-01, 08:00.
var fixedNow = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

type fixture struct {
	svc       *DefaultBookingService
	repo      *mocks.BookingRepository
	schedules *mocks.ScheduleService
	cache     *mocks.SlotCache
	reminders *mocks.ReminderScheduler
}

func newFixture() fixture {
	f := fixture{
		repo:      new(mocks.BookingRepository),
		schedules: new(mocks.ScheduleService),
		cache:     new(mocks.SlotCache),
		reminders: new(mocks.ReminderScheduler),
	}
	f.svc = &DefaultBookingService{
		Repo:         f.repo,
		Schedules:    f.schedules,
		Cache:        f.cache,
		Reminders:    f.reminders,
		Granularity:  60,
		ReminderLead: time.Hour,
		Now:          func() time.Time { return fixedNow },
	}
	return f
}

func weekdaysNineToEleven() models.Schedule {
	return models.DefaultSchedule("prov-1").
		WithWorkingHours(models.WorkingHours{Start: "09:00", End: "11:00"})
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := availability.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestAvailableSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("past date short circuits", func(t *testing.T) {
		f := newFixture()
		got, err := f.svc.AvailableSlots(ctx, "prov-1", date(t, "2023-12-31"))
		require.NoError(t, err)
		assert.Empty(t, got.Slots)
		assert.NotNil(t, got.Slots)
		assert.NotEmpty(t, got.Message)
		f.schedules.AssertNotCalled(t, "GetSchedule", testifymock.Anything, testifymock.Anything)
	})

	t.Run("cache hit", func(t *testing.T) {
		f := newFixture()
		f.cache.On("Get", ctx, "prov-1", "2024-01-01", 60).Return(slotCache.Lookup{Slots: []string{"10:00"}, Hit: true}, nil)

		got, err := f.svc.AvailableSlots(ctx, "prov-1", date(t, "2024-01-01"))
		require.NoError(t, err)
		assert.Equal(t, []string{"10:00"}, got.Slots)
		f.repo.AssertNotCalled(t, "ListByProviderAndDate", testifymock.Anything, testifymock.Anything, testifymock.Anything)
	})

	t.Run("cache miss computes and stores", func(t *testing.T) {
		f := newFixture()
		f.cache.On("Get", ctx, "prov-1", "2024-01-01", 60).Return(slotCache.Lookup{Generation: 4}, nil)
		f.schedules.On("GetSchedule", ctx, "prov-1").Return(weekdaysNineToEleven(), nil)
		f.repo.On("ListByProviderAndDate", ctx, "prov-1", "2024-01-01").Return([]models.Booking{
			{ProviderID: "prov-1", Date: "2024-01-01", Time: "09:00", Status: models.StatusPending},
		}, nil)
		f.cache.On("Set", ctx, "prov-1", "2024-01-01", 60, int64(4), []string{"10:00"}).Return(nil)

		got, err := f.svc.AvailableSlots(ctx, "prov-1", date(t, "2024-01-01"))
		require.NoError(t, err)
		assert.Equal(t, []string{"10:00"}, got.Slots)
		assert.Empty(t, got.Message)
		f.cache.AssertExpectations(t)
	})

	t.Run("cache errors are not fatal", func(t *testing.T) {
		f := newFixture()
		f.cache.On("Get", ctx, "prov-1", "2024-01-06", 60).Return(slotCache.Lookup{}, errors.New("redis down"))
		f.schedules.On("GetSchedule", ctx, "prov-1").Return(weekdaysNineToEleven(), nil)
		f.repo.On("ListByProviderAndDate", ctx, "prov-1", "2024-01-06").Return(nil, nil)

		got, err := f.svc.AvailableSlots(ctx, "prov-1", date(t, "2024-01-06")) // Saturday
		require.NoError(t, err)
		assert.Empty(t, got.Slots)
		assert.Equal(t, noSlotsMessage, got.Message)
		f.cache.AssertNotCalled(t, "Set", testifymock.Anything, testifymock.Anything, testifymock.Anything,
			testifymock.Anything, testifymock.Anything, testifymock.Anything)
	})

	t.Run("cache write failure is not fatal", func(t *testing.T) {
		f := newFixture()
		f.cache.On("Get", ctx, "prov-1", "2024-01-06", 60).Return(slotCache.Lookup{}, nil)
		f.schedules.On("GetSchedule", ctx, "prov-1").Return(weekdaysNineToEleven(), nil)
		f.repo.On("ListByProviderAndDate", ctx, "prov-1", "2024-01-06").Return(nil, nil)
		f.cache.On("Set", ctx, "prov-1", "2024-01-06", 60, int64(0), []string{}).Return(errors.New("redis down"))

		got, err := f.svc.AvailableSlots(ctx, "prov-1", date(t, "2024-01-06"))
		require.NoError(t, err)
		assert.Empty(t, got.Slots)
	})
}

func TestWeeklyAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("index out of range", func(t *testing.T) {
		for _, idx := range []int{-1, MaxWeekIndex + 1, int(^uint(0) >> 1)} {
			f := newFixture()
			_, err := f.svc.WeeklyAvailability(ctx, "prov-1", idx)
			assert.ErrorIs(t, err, ErrInvalidInput, idx)
			f.schedules.AssertNotCalled(t, "GetSchedule", testifymock.Anything, testifymock.Anything)
		}
	})

	t.Run("second week", func(t *testing.T) {
		f := newFixture()
		f.schedules.On("GetSchedule", ctx, "prov-1").Return(weekdaysNineToEleven().WithBlockedDate("2024-01-09"), nil)
		f.repo.On("ListByProviderInRange", ctx, "prov-1", "2024-01-08", "2024-01-15").Return([]models.Booking{
			{ProviderID: "prov-1", Date: "2024-01-08", Time: "09:00", Status: models.StatusConfirmed},
		}, nil)

		week, err := f.svc.WeeklyAvailability(ctx, "prov-1", 1)
		require.NoError(t, err)
		require.Len(t, week, 7)

		assert.Equal(t, "2024-01-08", week[0].Date)
		assert.Equal(t, models.Monday, week[0].Weekday)
		assert.Equal(t, []string{"10:00"}, week[0].Slots)

		assert.Equal(t, models.StateBlocked, week[1].State)
		assert.Empty(t, week[1].Slots)

		assert.Equal(t, models.StateAvailable, week[2].State)
		assert.Equal(t, []string{"09:00", "10:00"}, week[2].Slots)

		assert.Equal(t, models.StateDayOff, week[5].State)
		assert.Equal(t, models.SeverityMuted, week[5].Severity)
		assert.Equal(t, "2024-01-14", week[6].Date)
	})
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	req := models.BookingRequest{ProviderID: "prov-1", CustomerID: "cust-1", Date: "2024-01-02", Time: "10:00"}

	t.Run("pending booking stored", func(t *testing.T) {
		f := newFixture()
		f.schedules.On("GetSchedule", ctx, "prov-1").Return(weekdaysNineToEleven(), nil)
		f.repo.On("ListByProviderAndDate", ctx, "prov-1", "2024-01-02").Return(nil, nil)
		f.repo.On("Create", ctx, testifymock.MatchedBy(func(b *models.Booking) bool {
			return b.Status == models.StatusPending && b.Source == models.SourceCustomer && b.ID != ""
		})).Return(nil)
		f.cache.On("InvalidateProvider", ctx, "prov-1").Return(nil)

		b, err := f.svc.CreateBooking(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "2024-01-02", b.Date)
		assert.Equal(t, "10:00", b.Time)
		assert.Equal(t, fixedNow, b.CreatedAt)
		f.repo.AssertExpectations(t)
		f.cache.AssertExpectations(t)
		f.reminders.AssertNotCalled(t, "Enqueue", testifymock.Anything, testifymock.Anything)
	})

	t.Run("past date", func(t *testing.T) {
		f := newFixture()
		past := req
		past.Date = "2023-12-29"
		_, err := f.svc.CreateBooking(ctx, past)
		assert.ErrorIs(t, err, ErrPastDate)
	})

	t.Run("slot already held", func(t *testing.T) {
		f := newFixture()
		f.schedules.On("GetSchedule", ctx, "prov-1").Return(weekdaysNineToEleven(), nil)
		f.repo.On("ListByProviderAndDate", ctx, "prov-1", "2024-01-02").Return([]models.Booking{
			{ProviderID: "prov-1", Date: "2024-01-02", Time: "10:00", Status: models.StatusConfirmed},
		}, nil)

		_, err := f.svc.CreateBooking(ctx, req)
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("off grid time", func(t *testing.T) {
		f := newFixture()
		f.schedules.On("GetSchedule", ctx, "prov-1").Return(weekdaysNineToEleven(), nil)
		f.repo.On("ListByProviderAndDate", ctx, "prov-1", "2024-01-02").Return(nil, nil)

		offGrid := req
		offGrid.Time = "09:30"
		_, err := f.svc.CreateBooking(ctx, offGrid)
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("lost race", func(t *testing.T) {
		f := newFixture()
		f.schedules.On("GetSchedule", ctx, "prov-1").Return(weekdaysNineToEleven(), nil)
		f.repo.On("ListByProviderAndDate", ctx, "prov-1", "2024-01-02").Return(nil, nil)
		f.repo.On("Create", ctx, testifymock.Anything).Return(bookingRepo.ErrSlotTaken)

		_, err := f.svc.CreateBooking(ctx, req)
		assert.ErrorIs(t, err, ErrSlotTaken)
		f.cache.AssertNotCalled(t, "InvalidateProvider", testifymock.Anything, testifymock.Anything)
	})

	t.Run("malformed input", func(t *testing.T) {
		f := newFixture()
		for _, bad := range []models.BookingRequest{
			{Date: "2024-01-02", Time: "10:00"},
			{ProviderID: "prov-1", Date: "02-01-2024", Time: "10:00"},
			{ProviderID: "prov-1", Date: "2024-01-02", Time: "10am"},
		} {
			_, err := f.svc.CreateBooking(ctx, bad)
			assert.ErrorIs(t, err, ErrInvalidInput, "%+v", bad)
		}
	})
}

func TestCreateManualBooking(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	f.repo.On("Create", ctx, testifymock.MatchedBy(func(b *models.Booking) bool {
		return b.Status == models.StatusConfirmed && b.Source == models.SourceManual
	})).Return(nil)
	f.cache.On("InvalidateProvider", ctx, "prov-1").Return(nil)

	// A past date is accepted and no reminder is due.
	b, err := f.svc.CreateManualBooking(ctx, models.BookingRequest{ProviderID: "prov-1", Date: "2023-06-01", Time: "14:00"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, b.Status)
	f.schedules.AssertNotCalled(t, "GetSchedule", testifymock.Anything, testifymock.Anything)
	f.reminders.AssertNotCalled(t, "Enqueue", testifymock.Anything, testifymock.Anything)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	pending := func() *models.Booking {
		return &models.Booking{ID: "b-1", ProviderID: "prov-1", Date: "2024-01-02", Time: "10:00", Status: models.StatusPending}
	}

	t.Run("confirm schedules reminder", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", ctx, "b-1").Return(pending(), nil)
		f.repo.On("UpdateStatus", ctx, "b-1", models.StatusPending, models.StatusConfirmed, fixedNow).Return(nil)
		f.cache.On("InvalidateProvider", ctx, "prov-1").Return(nil)
		f.reminders.On("Enqueue", testifymock.MatchedBy(func(task *asynq.Task) bool {
			return task.Type() == "reminder:send"
		}), testifymock.Anything).Return(&asynq.TaskInfo{ID: "reminder:b-1"}, nil)

		b, err := f.svc.UpdateStatus(ctx, "b-1", models.StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, models.StatusConfirmed, b.Status)
		f.reminders.AssertExpectations(t)
	})

	t.Run("reject frees slot without reminder", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", ctx, "b-1").Return(pending(), nil)
		f.repo.On("UpdateStatus", ctx, "b-1", models.StatusPending, models.StatusRejected, fixedNow).Return(nil)
		f.cache.On("InvalidateProvider", ctx, "prov-1").Return(nil)

		b, err := f.svc.UpdateStatus(ctx, "b-1", models.StatusRejected)
		require.NoError(t, err)
		assert.Equal(t, models.StatusRejected, b.Status)
		f.cache.AssertExpectations(t)
		f.reminders.AssertNotCalled(t, "Enqueue", testifymock.Anything, testifymock.Anything)
	})

	t.Run("only once", func(t *testing.T) {
		f := newFixture()
		done := pending()
		done.Status = models.StatusConfirmed
		f.repo.On("GetByID", ctx, "b-1").Return(done, nil)

		_, err := f.svc.UpdateStatus(ctx, "b-1", models.StatusRejected)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("concurrent update", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", ctx, "b-1").Return(pending(), nil)
		f.repo.On("UpdateStatus", ctx, "b-1", models.StatusPending, models.StatusConfirmed, fixedNow).Return(bookingRepo.ErrStatusConflict)

		_, err := f.svc.UpdateStatus(ctx, "b-1", models.StatusConfirmed)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.UpdateStatus(ctx, "b-1", "cancelled")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newFixture()
		f.repo.On("GetByID", ctx, "nope").Return(nil, bookingRepo.ErrNotFound)
		_, err := f.svc.UpdateStatus(ctx, "nope", models.StatusConfirmed)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestReminderTime(t *testing.T) {
	b := &models.Booking{Date: "2024-01-02", Time: "10:00"}
	got, err := reminderTime(b, 30*time.Minute, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC), got)
}

func TestListBookings(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.repo.On("ListByProviderAndDate", ctx, "prov-1", "2024-01-02").Return([]models.Booking{{ID: "b-1"}}, nil)

	got, err := f.svc.ListBookings(ctx, "prov-1", date(t, "2024-01-02"))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = f.svc.ListBookings(ctx, "", date(t, "2024-01-02"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
