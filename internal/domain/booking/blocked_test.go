//go:build unit

package booking_test

import (
	"math/rand"
	"testing"
	"time"

	"resort-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blockFor(accID *uuid.UUID, start, end time.Time) booking.BlockedRange {
	r, err := booking.NewBlockedRange(accID, start, end, "test")
	if err != nil {
		panic(err)
	}
	return r
}

func TestNewBlockedRange(t *testing.T) {
	start := time.Date(2024, 6, 10, 7, 0, 0, 0, time.UTC)

	t.Run("start must precede end", func(t *testing.T) {
		_, err := booking.NewBlockedRange(nil, start, start, "maintenance")
		require.ErrorIs(t, err, booking.ErrInvalidBlockedRange)

		_, err = booking.NewBlockedRange(nil, start, start.Add(-time.Hour), "maintenance")
		require.ErrorIs(t, err, booking.ErrInvalidBlockedRange)
	})

	t.Run("valid range gets an ID", func(t *testing.T) {
		r, err := booking.NewBlockedRange(nil, start, start.Add(time.Hour), "maintenance")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, r.ID)
		assert.False(t, r.IsFromReservation())
	})
}

func TestIsWindowBlocked(t *testing.T) {
	accID := uuid.New()
	otherID := uuid.New()
	dayStart := time.Date(2024, 6, 10, 7, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2024, 6, 10, 17, 0, 0, 0, time.UTC)

	t.Run("touching endpoints do not conflict", func(t *testing.T) {
		ranges := []booking.BlockedRange{blockFor(&accID, dayStart, dayEnd)}

		// Night tour starts exactly when the day tour ends.
		assert.False(t, booking.IsWindowBlocked(dayEnd, dayEnd.Add(14*time.Hour), ranges, accID))
		assert.True(t, booking.IsWindowBlocked(dayEnd.Add(-time.Minute), dayEnd.Add(time.Hour), ranges, accID))
	})

	t.Run("ranges for other accommodations are ignored", func(t *testing.T) {
		ranges := []booking.BlockedRange{blockFor(&otherID, dayStart, dayEnd)}
		assert.False(t, booking.IsWindowBlocked(dayStart, dayEnd, ranges, accID))
	})

	t.Run("resort-wide ranges apply to every accommodation", func(t *testing.T) {
		ranges := []booking.BlockedRange{blockFor(nil, dayStart, dayEnd)}
		assert.True(t, booking.IsWindowBlocked(dayStart, dayEnd, ranges, accID))
		assert.True(t, booking.IsWindowBlocked(dayStart, dayEnd, ranges, otherID))
	})

	t.Run("zero boundaries short-circuit to available", func(t *testing.T) {
		ranges := []booking.BlockedRange{blockFor(&accID, dayStart, dayEnd)}
		assert.False(t, booking.IsWindowBlocked(time.Time{}, dayEnd, ranges, accID))
		assert.False(t, booking.IsWindowBlocked(dayStart, time.Time{}, ranges, accID))
	})

	t.Run("overlap matches numeric interval intersection", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		for i := 0; i < 1000; i++ {
			a := rng.Intn(1000)
			b := a + 1 + rng.Intn(100)
			c := rng.Intn(1000)
			d := c + 1 + rng.Intn(100)

			blocked := blockFor(&accID, base.Add(time.Duration(a)*time.Hour), base.Add(time.Duration(b)*time.Hour))
			got := booking.IsWindowBlocked(
				base.Add(time.Duration(c)*time.Hour),
				base.Add(time.Duration(d)*time.Hour),
				[]booking.BlockedRange{blocked},
				accID,
			)
			want := a < d && b > c
			require.Equal(t, want, got, "blocked=[%d,%d) candidate=[%d,%d)", a, b, c, d)
		}
	})
}

func TestIsModeBlocked(t *testing.T) {
	hours := booking.DefaultHours()
	accID := uuid.New()
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	// A day-tour reservation holds 07:00-17:00.
	ranges := []booking.BlockedRange{blockFor(&accID,
		time.Date(2024, 6, 10, 7, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 10, 17, 0, 0, 0, time.UTC),
	)}

	assert.True(t, booking.IsModeBlocked(hours, date, booking.ModeDay, ranges, accID))
	assert.False(t, booking.IsModeBlocked(hours, date, booking.ModeNight, ranges, accID))
}

func TestIsInstantBlocked(t *testing.T) {
	accID := uuid.New()
	start := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
	end := start.Add(10 * time.Hour)
	ranges := []booking.BlockedRange{blockFor(&accID, start, end)}

	assert.True(t, booking.IsInstantBlocked(start, ranges, accID), "start is inside [start, end)")
	assert.True(t, booking.IsInstantBlocked(start.Add(time.Hour), ranges, accID))
	assert.False(t, booking.IsInstantBlocked(end, ranges, accID), "end is outside [start, end)")
	assert.False(t, booking.IsInstantBlocked(time.Time{}, ranges, accID))
}
