package pricing

import (
	"errors"

	"resort-booking/internal/domain/booking"
)

var ErrNegativeGuestCount = errors.New("guest count cannot be negative")

// GuestCount carries the headcount together with where it came from. Pool
// accommodations derive it from entrance tickets; everything else takes a
// manually entered number. Keeping the source explicit avoids the two paths
// silently overwriting each other.
type GuestCount struct {
	value   int
	derived bool
}

func GuestsFromEntrances(counts EntranceCounts) GuestCount {
	return GuestCount{value: counts.Total(), derived: true}
}

func ManualGuests(n int) (GuestCount, error) {
	if n < 0 {
		return GuestCount{}, ErrNegativeGuestCount
	}
	return GuestCount{value: n}, nil
}

// ReconstructGuestCount rehydrates a persisted headcount without
// revalidating; the stored value already passed through a constructor.
func ReconstructGuestCount(value int, derived bool) GuestCount {
	return GuestCount{value: value, derived: derived}
}

func (g GuestCount) Value() int {
	return g.value
}

func (g GuestCount) IsDerived() bool {
	return g.derived
}

// ExtraPersonFee charges the per-head surcharge for guests beyond capacity.
func ExtraPersonFee(guests, capacity int, feePerHead Money) Money {
	extra := guests - capacity
	if extra <= 0 {
		return Money{}
	}
	return feePerHead.MulCount(extra)
}

// MinimumPayable is the 50% deposit. It is computed from the accommodation
// base price alone, not the grand total; the resort confirmed this is how
// the front desk quotes deposits.
func MinimumPayable(accommodationBase Money) Money {
	return accommodationBase.Half()
}

// Result is the full pricing breakdown returned to the booking form. It is
// recomputed on every input change and never persisted on its own; the
// reservation snapshots it at creation time.
type Result struct {
	AccommodationTotal Money
	EntranceAmounts    EntranceAmounts
	EntranceTotal      Money
	ExtraPersonFee     Money
	Total              Money
	MinimumPayable     Money
}

// Compute aggregates the accommodation base price, entrance revenue, and
// extra-person surcharge into one payable total.
func Compute(base Money, capacity int, extraFeePerHead Money, guests GuestCount, counts EntranceCounts, mode booking.TourMode, rates RateTable) Result {
	amounts := ComputeEntranceAmounts(counts, mode, rates)
	entranceTotal := amounts.Total()
	extraFee := ExtraPersonFee(guests.Value(), capacity, extraFeePerHead)

	return Result{
		AccommodationTotal: base,
		EntranceAmounts:    amounts,
		EntranceTotal:      entranceTotal,
		ExtraPersonFee:     extraFee,
		Total:              base.Add(entranceTotal).Add(extraFee),
		MinimumPayable:     MinimumPayable(base),
	}
}
