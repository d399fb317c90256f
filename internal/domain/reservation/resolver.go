package reservation

import (
	"errors"
	"time"

	"resort-booking/internal/domain/accommodation"
	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/pricing"
)

var (
	ErrMissingDate        = errors.New("a tour date is required")
	ErrMissingCheckIn     = errors.New("a check-in time is required")
	ErrMissingTourMode    = errors.New("a tour mode is required")
	ErrDateUnavailable    = errors.New("the selected dates are unavailable")
	ErrCapacityExceeded   = errors.New("entrance tickets exceed accommodation capacity")
	ErrGuestCountRequired = errors.New("a guest count is required")
)

// QuoteInput is everything the resolver needs, already fetched: the
// accommodation, the candidate date or check-in, ticket counts, the current
// rate table, and the blocked ranges to check against.
type QuoteInput struct {
	Accommodation *accommodation.Accommodation
	Date          time.Time
	Mode          booking.TourMode
	CheckIn       time.Time
	ManualGuests  *int
	Entrance      pricing.EntranceCounts
	Rates         pricing.RateTable
	Blocked       []booking.BlockedRange
}

// Quote is the resolved window plus the full pricing breakdown. Resolving is
// pure; identical inputs always produce an identical quote.
type Quote struct {
	Window   StayWindow
	Guests   pricing.GuestCount
	Entrance pricing.EntranceCounts
	Pricing  pricing.Result
}

// Resolver derives the canonical stay window for a candidate booking, rejects
// it on conflicts, and prices it. It is the one computation the booking form
// re-runs on every input change.
type Resolver struct {
	hours booking.Hours
}

func NewResolver(hours booking.Hours) *Resolver {
	return &Resolver{hours: hours}
}

func (r *Resolver) Resolve(in QuoteInput) (Quote, error) {
	acc := in.Accommodation

	window, mode, err := r.resolveWindow(in)
	if err != nil {
		return Quote{}, err
	}

	if booking.IsWindowBlocked(window.Start(), window.End(), in.Blocked, acc.ID()) {
		return Quote{}, ErrDateUnavailable
	}

	guests, err := resolveGuests(acc, in)
	if err != nil {
		return Quote{}, err
	}

	result := pricing.Compute(
		acc.BasePrice(mode),
		acc.Capacity(),
		acc.ExtraPersonFee(),
		guests,
		in.Entrance,
		mode,
		in.Rates,
	)

	return Quote{Window: window, Guests: guests, Entrance: in.Entrance, Pricing: result}, nil
}

// resolveWindow also returns the tour mode used for rate lookups; overnight
// stays price entrance tickets at night rates.
func (r *Resolver) resolveWindow(in QuoteInput) (StayWindow, booking.TourMode, error) {
	if in.Accommodation.Overnight() {
		if in.CheckIn.IsZero() {
			return StayWindow{}, "", ErrMissingCheckIn
		}
		end := booking.OvernightEnd(in.CheckIn, in.Accommodation.MaxStayHours())
		window, err := NewOvernightWindow(in.CheckIn, end)
		if err != nil {
			return StayWindow{}, "", err
		}
		return window, booking.ModeNight, nil
	}

	if in.Date.IsZero() {
		return StayWindow{}, "", ErrMissingDate
	}
	if !in.Mode.IsValid() {
		return StayWindow{}, "", ErrMissingTourMode
	}
	start, end := r.hours.ModeWindow(in.Date, in.Mode)
	window, err := NewStayWindow(start, end, in.Mode)
	if err != nil {
		return StayWindow{}, "", err
	}
	return window, in.Mode, nil
}

func resolveGuests(acc *accommodation.Accommodation, in QuoteInput) (pricing.GuestCount, error) {
	if acc.PoolAccess() {
		if !acc.AllowsEntranceTotal(in.Entrance.Total()) {
			return pricing.GuestCount{}, ErrCapacityExceeded
		}
		return pricing.GuestsFromEntrances(in.Entrance), nil
	}

	if in.ManualGuests == nil {
		return pricing.GuestCount{}, ErrGuestCountRequired
	}
	return pricing.ManualGuests(*in.ManualGuests)
}
