package availability

import (
	"fmt"
	"testing"
	"time"

	"homebook/models"

	"github.com/stretchr/testify/assert"
)

func at(t *testing.T, token string) time.Time {
	t.Helper()
	v, err := ParseToken(token)
	if err != nil {
		t.Fatalf("bad fixture token %q: %v", token, err)
	}
	return v
}

func mondayNineToFive() models.Schedule {
	return models.RestrictiveSchedule("prov-1").
		WithWorkingDays(models.Monday).
		WithWorkingHours(models.WorkingHours{Start: "09:00", End: "17:00"})
}

// Every combination of the four overlapping conditions must land on the
// first matching rule.
func TestResolvePrecedenceGrid(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		holiday := mask&1 != 0
		blocked := mask&2 != 0
		offDay := mask&4 != 0
		outside := mask&8 != 0

		name := fmt.Sprintf("holiday=%t blocked=%t offDay=%t outside=%t", holiday, blocked, offDay, outside)
		t.Run(name, func(t *testing.T) {
			day := "2024-01-01" // Monday
			if offDay {
				day = "2024-01-02" // Tuesday
			}
			clock := "10:00"
			if outside {
				clock = "18:00"
			}

			s := mondayNineToFive().WithHoliday(holiday)
			if blocked {
				s = s.WithBlockedDate(day)
			}

			var want models.AvailabilityState
			switch {
			case holiday:
				want = models.StateHoliday
			case blocked:
				want = models.StateBlocked
			case offDay:
				want = models.StateDayOff
			case outside:
				want = models.StateClosed
			default:
				want = models.StateAvailable
			}

			assert.Equal(t, want, Resolve(s, at(t, SlotToken(day, clock))))
		})
	}
}

func TestResolveHolidayOverridesEverything(t *testing.T) {
	s := models.RestrictiveSchedule("prov-1").
		WithWorkingDays(models.AllWeekdays...).
		WithWorkingHours(models.WorkingHours{Start: "00:00", End: "23:59"}).
		WithHoliday(true)

	start := at(t, "2024-03-01T00:00")
	for i := 0; i < 14*24; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		assert.Equal(t, models.StateHoliday, Resolve(s, ts), ts.String())
	}
}

func TestResolveBlockedDateBeatsWorkingDay(t *testing.T) {
	s := mondayNineToFive().WithBlockedDate("2024-01-08")

	assert.Equal(t, models.StateBlocked, Resolve(s, at(t, "2024-01-08T10:00")))
	assert.Equal(t, models.StateBlocked, Resolve(s, at(t, "2024-01-08T20:00")))
	assert.Equal(t, models.StateAvailable, Resolve(s, at(t, "2024-01-15T10:00")))
}

func TestResolveWorkingHoursAreHalfOpen(t *testing.T) {
	s := mondayNineToFive()

	tests := []struct {
		clock string
		want  models.AvailabilityState
	}{
		{"08:59", models.StateClosed},
		{"09:00", models.StateAvailable},
		{"12:30", models.StateAvailable},
		{"16:59", models.StateAvailable},
		{"17:00", models.StateClosed},
		{"23:00", models.StateClosed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Resolve(s, at(t, "2024-01-01T"+tt.clock)), tt.clock)
	}
}

func TestResolveFailsClosed(t *testing.T) {
	monday := at(t, "2024-01-01T10:00")

	t.Run("zero schedule", func(t *testing.T) {
		assert.Equal(t, models.StateDayOff, Resolve(models.Schedule{}, monday))
	})

	t.Run("working day without hours", func(t *testing.T) {
		s := models.RestrictiveSchedule("prov-1").WithWorkingDays(models.Monday)
		assert.Equal(t, models.StateClosed, Resolve(s, monday))
	})

	t.Run("malformed hours", func(t *testing.T) {
		s := mondayNineToFive().WithWorkingHours(models.WorkingHours{Start: "nine", End: "17:00"})
		assert.Equal(t, models.StateClosed, Resolve(s, monday))
	})

	t.Run("inverted hours", func(t *testing.T) {
		s := mondayNineToFive().WithWorkingHours(models.WorkingHours{Start: "17:00", End: "09:00"})
		assert.Equal(t, models.StateClosed, Resolve(s, monday))
	})
}

func TestResolveDay(t *testing.T) {
	monday := at(t, "2024-01-01T00:00")

	assert.Equal(t, models.StateAvailable, ResolveDay(mondayNineToFive(), monday))
	assert.Equal(t, models.StateHoliday, ResolveDay(mondayNineToFive().WithHoliday(true), monday))
	assert.Equal(t, models.StateBlocked, ResolveDay(mondayNineToFive().WithBlockedDate("2024-01-01"), monday))
	assert.Equal(t, models.StateDayOff, ResolveDay(mondayNineToFive(), monday.AddDate(0, 0, 1)))
	assert.Equal(t, models.StateClosed, ResolveDay(models.RestrictiveSchedule("p").WithWorkingDays(models.Monday), monday))
}

func TestDescribe(t *testing.T) {
	states := []models.AvailabilityState{
		models.StateHoliday,
		models.StateBlocked,
		models.StateDayOff,
		models.StateClosed,
		models.StateAvailable,
	}
	labels := map[string]bool{}
	for _, s := range states {
		d := Describe(s)
		assert.NotEmpty(t, d.Label, s)
		assert.NotEmpty(t, d.Severity, s)
		labels[d.Label] = true
	}
	assert.Len(t, labels, len(states), "labels must be distinct")

	assert.Equal(t, models.SeveritySuccess, Describe(models.StateAvailable).Severity)
	assert.Panics(t, func() { Describe("SOMETHING_ELSE") })
}
