//go:build unit

package pricing_test

import (
	"testing"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtraPersonFee(t *testing.T) {
	fee := pricing.NewMoney(20000)

	t.Run("zero at or below capacity", func(t *testing.T) {
		for guests := 0; guests <= 4; guests++ {
			assert.True(t, pricing.ExtraPersonFee(guests, 4, fee).IsZero(), "guests=%d", guests)
		}
	})

	t.Run("linear in the overflow", func(t *testing.T) {
		for extra := 1; extra <= 10; extra++ {
			got := pricing.ExtraPersonFee(4+extra, 4, fee)
			assert.Equal(t, int64(extra)*20000, got.Centavos())
		}
	})
}

func TestMinimumPayable(t *testing.T) {
	assert.Equal(t, int64(75000), pricing.MinimumPayable(pricing.NewMoney(150000)).Centavos())
	// Odd centavo rounds down in the guest's favor.
	assert.Equal(t, int64(50), pricing.MinimumPayable(pricing.NewMoney(101)).Centavos())
}

func TestGuestCount(t *testing.T) {
	t.Run("derived from entrance tickets", func(t *testing.T) {
		counts := pricing.EntranceCounts{Adult: 2, Child: 1, PwdSenior: 1}
		guests := pricing.GuestsFromEntrances(counts)
		assert.Equal(t, 4, guests.Value())
		assert.True(t, guests.IsDerived())
	})

	t.Run("manual entry", func(t *testing.T) {
		guests, err := pricing.ManualGuests(5)
		require.NoError(t, err)
		assert.Equal(t, 5, guests.Value())
		assert.False(t, guests.IsDerived())

		_, err = pricing.ManualGuests(-1)
		require.ErrorIs(t, err, pricing.ErrNegativeGuestCount)
	})
}

// Day tour without pool access: 1500 base, capacity 4, 200 extra fee,
// 2 adults + 1 child at 100/50 day rates, 5 guests.
func TestCompute(t *testing.T) {
	rates := pricing.RateTable{
		EntranceFees: map[pricing.Category]pricing.ModeRate{
			pricing.CategoryAdult: {Day: pricing.NewMoney(10000)},
			pricing.CategoryChild: {Day: pricing.NewMoney(5000)},
		},
	}
	guests, err := pricing.ManualGuests(5)
	require.NoError(t, err)

	result := pricing.Compute(
		pricing.NewMoney(150000),
		4,
		pricing.NewMoney(20000),
		guests,
		pricing.EntranceCounts{Adult: 2, Child: 1},
		booking.ModeDay,
		rates,
	)

	assert.Equal(t, int64(150000), result.AccommodationTotal.Centavos())
	assert.Equal(t, int64(25000), result.EntranceTotal.Centavos())
	assert.Equal(t, int64(20000), result.ExtraPersonFee.Centavos())
	assert.Equal(t, int64(195000), result.Total.Centavos())
	assert.Equal(t, int64(75000), result.MinimumPayable.Centavos())
}

func TestMoney(t *testing.T) {
	t.Run("checked constructor rejects negatives", func(t *testing.T) {
		_, err := pricing.NewMoneyChecked(-1)
		require.ErrorIs(t, err, pricing.ErrNegativeMoney)
	})

	t.Run("peso rendering", func(t *testing.T) {
		assert.InDelta(t, 1500.50, pricing.NewMoney(150050).Pesos(), 0.001)
	})
}
