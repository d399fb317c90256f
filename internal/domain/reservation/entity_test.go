//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/pricing"
	"resort-booking/internal/domain/reservation"
	"resort-booking/internal/pkg/clock"
	"resort-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeReservation(t *testing.T, now time.Time, date time.Time) *reservation.Reservation {
	t.Helper()

	acc, err := builder.NewAccommodationBuilder().BuildDomain()
	require.NoError(t, err)

	factory := reservation.NewFactory(reservation.NewResolver(booking.DefaultHours()), clock.NewMockClock(now))
	guest, err := reservation.NewGuest("Maria Santos", "maria@example.com", "+63 912 345 6789")
	require.NoError(t, err)

	res, err := factory.CreateReservation(guest, reservation.QuoteInput{
		Accommodation: acc,
		Date:          date,
		Mode:          booking.ModeDay,
		ManualGuests:  intPtr(3),
		Entrance:      pricing.EntranceCounts{Adult: 2, Child: 1},
		Rates:         testRates,
	}, reservation.NewNote("birthday banner"))
	require.NoError(t, err)
	return res
}

func TestFactoryCreateReservation(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("new reservations start pending with a snapshot of the quote", func(t *testing.T) {
		res := makeReservation(t, now, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))

		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Equal(t, int64(195000), res.Price().Total.Centavos())
		assert.Equal(t, "Maria Santos", res.Guest().Name())
		assert.Equal(t, 3, res.Guests().Value())
	})

	t.Run("stays must start in the future", func(t *testing.T) {
		acc, err := builder.NewAccommodationBuilder().BuildDomain()
		require.NoError(t, err)

		factory := reservation.NewFactory(reservation.NewResolver(booking.DefaultHours()), clock.NewMockClock(now))
		guest, err := reservation.NewGuest("Maria Santos", "", "")
		require.NoError(t, err)

		_, err = factory.CreateReservation(guest, reservation.QuoteInput{
			Accommodation: acc,
			Date:          time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Mode:          booking.ModeDay,
			ManualGuests:  intPtr(2),
			Rates:         testRates,
		}, reservation.Note{})
		require.ErrorIs(t, err, reservation.ErrStartInPast)
	})
}

func TestStatusTransitions(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	stayDate := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("pending to confirmed to checked in", func(t *testing.T) {
		res := makeReservation(t, now, stayDate)

		require.NoError(t, res.Confirm())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		require.ErrorIs(t, res.Confirm(), reservation.ErrNotPending)

		require.NoError(t, res.CheckIn())
		assert.Equal(t, reservation.StatusCheckedIn, res.Status())
	})

	t.Run("check-in requires confirmation", func(t *testing.T) {
		res := makeReservation(t, now, stayDate)
		require.ErrorIs(t, res.CheckIn(), reservation.ErrNotConfirmed)
	})

	t.Run("cancellation honors the day-before cutoff", func(t *testing.T) {
		res := makeReservation(t, now, stayDate)

		tooLate := res.Window().Start().Add(-2 * time.Hour)
		require.ErrorIs(t, res.Cancel(tooLate, false), reservation.ErrCancellationCutoff)

		// Staff can override the cutoff.
		require.NoError(t, res.Cancel(tooLate, true))
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("in-time cancellation succeeds", func(t *testing.T) {
		res := makeReservation(t, now, stayDate)
		early := res.Window().Start().Add(-48 * time.Hour)
		require.NoError(t, res.Cancel(early, false))
		require.ErrorIs(t, res.Cancel(early, false), reservation.ErrAlreadyFinalized)
	})

	t.Run("no-show only after the stay starts", func(t *testing.T) {
		res := makeReservation(t, now, stayDate)
		require.NoError(t, res.Confirm())

		require.ErrorIs(t, res.MarkNoShow(res.Window().Start().Add(-time.Hour)), reservation.ErrStayNotStarted)
		require.NoError(t, res.MarkNoShow(res.Window().Start().Add(time.Hour)))
		assert.Equal(t, reservation.StatusNoShow, res.Status())
	})
}

func TestReschedule(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	res := makeReservation(t, now, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))

	acc, err := builder.NewAccommodationBuilder().BuildDomain()
	require.NoError(t, err)

	resolver := reservation.NewResolver(booking.DefaultHours())
	quote, err := resolver.Resolve(reservation.QuoteInput{
		Accommodation: acc,
		Date:          time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		Mode:          booking.ModeNight,
		ManualGuests:  intPtr(2),
		Rates:         testRates,
	})
	require.NoError(t, err)

	require.NoError(t, res.Reschedule(quote))
	assert.Equal(t, time.Date(2024, 6, 12, 17, 0, 0, 0, time.UTC), res.Window().Start())
	assert.Equal(t, int64(180000), res.Price().AccommodationTotal.Centavos())

	require.NoError(t, res.Cancel(now, true))
	require.ErrorIs(t, res.Reschedule(quote), reservation.ErrAlreadyFinalized)
}

func TestNewGuest(t *testing.T) {
	cases := []struct {
		name  string
		guest [3]string
		errIs error
	}{
		{name: "full identity", guest: [3]string{"Maria Santos", "maria@example.com", "+63 912 345 6789"}},
		{name: "email and phone optional", guest: [3]string{"Juan Dela Cruz", "", ""}},
		{name: "name required", guest: [3]string{"  ", "a@b.co", ""}, errIs: reservation.ErrMissingGuestName},
		{name: "malformed email rejected", guest: [3]string{"Juan", "not-an-email", ""}, errIs: reservation.ErrInvalidGuestEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reservation.NewGuest(tc.guest[0], tc.guest[1], tc.guest[2])
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}
