package reservation

import (
	"resort-booking/internal/pkg/clock"
)

// Factory creates reservations from resolved quotes. It owns the one
// time-dependent rule the pure resolver cannot: stays must start in the
// future.
type Factory struct {
	resolver *Resolver
	clock    clock.Clock
}

func NewFactory(resolver *Resolver, clk clock.Clock) *Factory {
	return &Factory{resolver: resolver, clock: clk}
}

func (f *Factory) Resolver() *Resolver {
	return f.resolver
}

func (f *Factory) CreateReservation(guest Guest, in QuoteInput, note Note) (*Reservation, error) {
	quote, err := f.resolver.Resolve(in)
	if err != nil {
		return nil, err
	}

	if !quote.Window.Start().After(f.clock.Now()) {
		return nil, ErrStartInPast
	}

	return newReservation(in.Accommodation.ID(), guest, quote, note), nil
}
