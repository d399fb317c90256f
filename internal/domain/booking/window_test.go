//go:build unit

package booking_test

import (
	"testing"
	"time"

	"resort-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeWindow(t *testing.T) {
	hours := booking.DefaultHours()

	t.Run("day tour runs 07:00 to 17:00 same day", func(t *testing.T) {
		date := time.Date(2024, 6, 10, 12, 34, 56, 789, time.UTC)
		start, end := hours.ModeWindow(date, booking.ModeDay)

		assert.Equal(t, time.Date(2024, 6, 10, 7, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, 6, 10, 17, 0, 0, 0, time.UTC), end)
	})

	t.Run("night tour runs 17:00 to next-day 07:00", func(t *testing.T) {
		date := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
		start, end := hours.ModeWindow(date, booking.ModeNight)

		assert.Equal(t, time.Date(2024, 6, 10, 17, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, 6, 11, 7, 0, 0, 0, time.UTC), end)
	})

	t.Run("night start hour is configurable", func(t *testing.T) {
		shifted := booking.Hours{DayStart: 7, DayEnd: 17, NightStart: 19, NightEnd: 7}
		start := shifted.ModeStart(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), booking.ModeNight)

		assert.Equal(t, 19, start.Hour())
	})

	t.Run("night window crosses month boundary", func(t *testing.T) {
		date := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
		_, end := hours.ModeWindow(date, booking.ModeNight)

		assert.Equal(t, time.Date(2024, 7, 1, 7, 0, 0, 0, time.UTC), end)
	})

	t.Run("zero date passes through", func(t *testing.T) {
		start, end := hours.ModeWindow(time.Time{}, booking.ModeDay)
		assert.True(t, start.IsZero())
		assert.True(t, end.IsZero())
	})

	t.Run("end is strictly after start for all dates and modes", func(t *testing.T) {
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		for day := 0; day < 400; day++ {
			date := base.AddDate(0, 0, day)
			for _, mode := range []booking.TourMode{booking.ModeDay, booking.ModeNight} {
				start, end := hours.ModeWindow(date, mode)
				require.True(t, end.After(start), "date=%s mode=%s", date, mode)
			}
		}
	})
}

func TestOvernightEnd(t *testing.T) {
	t.Run("adds max stay duration", func(t *testing.T) {
		checkIn := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
		end := booking.OvernightEnd(checkIn, 10)

		assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("defaults to ten hours when unspecified", func(t *testing.T) {
		checkIn := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
		assert.Equal(t, booking.OvernightEnd(checkIn, 10), booking.OvernightEnd(checkIn, 0))
	})

	t.Run("zero check-in passes through", func(t *testing.T) {
		assert.True(t, booking.OvernightEnd(time.Time{}, 10).IsZero())
	})
}

func TestNewTourMode(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  booking.TourMode
		errIs error
	}{
		{name: "day", input: "day", want: booking.ModeDay},
		{name: "night", input: "night", want: booking.ModeNight},
		{name: "unknown rejected", input: "afternoon", errIs: booking.ErrInvalidTourMode},
		{name: "empty rejected", input: "", errIs: booking.ErrInvalidTourMode},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mode, err := booking.NewTourMode(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, mode)
		})
	}
}
