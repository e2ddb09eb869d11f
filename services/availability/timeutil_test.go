package availability

import (
	"testing"
	"time"

	"homebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayCodeOf(t *testing.T) {
	// 2024-01-01 was a Monday.
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, want := range models.AllWeekdays {
		assert.Equal(t, want, WeekdayCodeOf(start.AddDate(0, 0, i)))
	}
}

func TestWeekdayCodeOfUsesWallClock(t *testing.T) {
	// 23:30 on a Monday in UTC-10 is already Tuesday in UTC; the local
	// calendar day must win.
	loc := time.FixedZone("HST", -10*60*60)
	late := time.Date(2024, 1, 1, 23, 30, 0, 0, loc)
	assert.Equal(t, models.Monday, WeekdayCodeOf(late))
	assert.Equal(t, "2024-01-01", FormatDate(late))
	assert.Equal(t, "23:30", FormatClock(late))
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	for _, bad := range []string{"", "9:30", "09:60", "24:00", "0930", "09:30:00", "ab:cd"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "09:05", FormatMinutes(545))
	assert.Equal(t, "23:59", FormatMinutes(23*60+59))
}

func TestCompareClock(t *testing.T) {
	assert.Negative(t, CompareClock("09:00", "17:00"))
	assert.Zero(t, CompareClock("09:00", "09:00"))
	assert.Positive(t, CompareClock("10:00", "09:59"))
}

func TestSlotToken(t *testing.T) {
	assert.Equal(t, "2024-01-01T10:00", SlotToken("2024-01-01", "10:00"))

	parsed, err := ParseToken(SlotToken("2024-01-01", "10:00"))
	require.NoError(t, err)
	assert.Equal(t, 10, parsed.Hour())

	_, err = ParseToken("2024-01-01 10:00")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-02-29 ")
	require.NoError(t, err)
	assert.Equal(t, models.Thursday, WeekdayCodeOf(d))

	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)
	_, err = ParseDate("01/02/2024")
	assert.Error(t, err)
}

func TestIsBefore(t *testing.T) {
	today := time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC)

	assert.True(t, IsBefore(time.Date(2024, 6, 14, 23, 59, 0, 0, time.UTC), today))
	assert.True(t, IsBefore(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), today))
	assert.False(t, IsBefore(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), today))
	assert.False(t, IsBefore(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), today))
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("EAT", 3*60*60)
	got := StartOfDay(time.Date(2024, 6, 15, 18, 45, 12, 0, loc))
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, loc), got)
}
