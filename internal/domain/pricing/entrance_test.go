//go:build unit

package pricing_test

import (
	"math/rand"
	"testing"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateTable() pricing.RateTable {
	return pricing.RateTable{
		EntranceFees: map[pricing.Category]pricing.ModeRate{
			pricing.CategoryAdult:     {Day: pricing.NewMoney(10000), Night: pricing.NewMoney(15000)},
			pricing.CategoryChild:     {Day: pricing.NewMoney(5000), Night: pricing.NewMoney(7500)},
			pricing.CategoryPwdSenior: {Day: pricing.NewMoney(8000), Night: pricing.NewMoney(12000)},
		},
	}
}

func TestRateTableUnit(t *testing.T) {
	t.Run("looks up category by mode", func(t *testing.T) {
		rates := rateTable()
		assert.Equal(t, int64(10000), rates.Unit(pricing.CategoryAdult, booking.ModeDay).Centavos())
		assert.Equal(t, int64(15000), rates.Unit(pricing.CategoryAdult, booking.ModeNight).Centavos())
	})

	t.Run("missing category prices to zero", func(t *testing.T) {
		empty := pricing.RateTable{}
		assert.True(t, empty.Unit(pricing.CategoryAdult, booking.ModeDay).IsZero())
	})
}

func TestNewEntranceCounts(t *testing.T) {
	_, err := pricing.NewEntranceCounts(2, -1, 0)
	require.ErrorIs(t, err, pricing.ErrNegativeEntranceCount)

	counts, err := pricing.NewEntranceCounts(2, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, counts.Total())
}

func TestComputeEntranceAmounts(t *testing.T) {
	rates := rateTable()

	t.Run("multiplies counts by unit prices", func(t *testing.T) {
		counts := pricing.EntranceCounts{Adult: 2, Child: 1, PwdSenior: 3}
		amounts := pricing.ComputeEntranceAmounts(counts, booking.ModeDay, rates)

		assert.Equal(t, int64(20000), amounts.Adult.Centavos())
		assert.Equal(t, int64(5000), amounts.Child.Centavos())
		assert.Equal(t, int64(24000), amounts.PwdSenior.Centavos())
		assert.Equal(t, int64(49000), amounts.Total().Centavos())
	})

	t.Run("total is the sum of the category amounts for any counts", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 500; i++ {
			counts := pricing.EntranceCounts{
				Adult:     rng.Intn(50),
				Child:     rng.Intn(50),
				PwdSenior: rng.Intn(50),
			}
			for _, mode := range []booking.TourMode{booking.ModeDay, booking.ModeNight} {
				amounts := pricing.ComputeEntranceAmounts(counts, mode, rates)
				want := amounts.Adult.Add(amounts.Child).Add(amounts.PwdSenior)
				require.Equal(t, want, amounts.Total())
			}
		}
	})
}
