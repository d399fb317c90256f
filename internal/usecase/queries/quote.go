package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resort-booking/internal/domain/accommodation"
	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/pricing"
	"resort-booking/internal/domain/reservation"
	"resort-booking/internal/infra"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/pkg/ptr"
)

var ErrInvalidQuoteRequest = errs.New("invalid quote request")

// QuoteRequest is the raw booking-form state. Optional fields stay nil until
// the guest fills them in; the resolver decides which ones the selected
// accommodation actually needs.
type QuoteRequest struct {
	AccommodationID      uuid.UUID
	Date                 *time.Time
	TourMode             *string
	CheckIn              *time.Time
	GuestCount           *int
	AdultCount           int
	ChildCount           int
	PwdSeniorCount       int
	ExcludeReservationID *uuid.UUID
}

type QuoteQueries interface {
	Resolve(ctx context.Context, req QuoteRequest) (*QuoteView, error)
}

// AccommodationLoader supplies the domain entity the resolver prices against.
type AccommodationLoader interface {
	DomainByID(ctx context.Context, id uuid.UUID) (*accommodation.Accommodation, error)
}

// BlockedRangeLoader returns every range that could still collide with a stay
// starting at or after the given instant, scoped to one accommodation plus
// resort-wide blocks. ExcludeReservationID drops a reservation's own range so
// reschedule previews do not conflict with themselves.
type BlockedRangeLoader interface {
	ActiveFrom(ctx context.Context, accommodationID uuid.UUID, from time.Time, excludeReservationID *uuid.UUID) ([]booking.BlockedRange, error)
}

type quoteQueriesImpl struct {
	accommodations AccommodationLoader
	blocked        BlockedRangeLoader
	rates          RateReadStore
	resolver       *reservation.Resolver
}

func NewQuoteQueries(
	accommodations AccommodationLoader,
	blocked BlockedRangeLoader,
	rates RateReadStore,
	resolver *reservation.Resolver,
) QuoteQueries {
	return &quoteQueriesImpl{
		accommodations: accommodations,
		blocked:        blocked,
		rates:          rates,
		resolver:       resolver,
	}
}

// Resolve recomputes the price breakdown for the current form state. An
// unavailable or incomplete selection comes back as a view with
// Available=false and a reason, never as an error; the form keeps rendering
// while the guest types.
func (q *quoteQueriesImpl) Resolve(ctx context.Context, req QuoteRequest) (*QuoteView, error) {
	acc, err := q.accommodations.DomainByID(ctx, req.AccommodationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccommodationNotFound
		}
		return nil, err
	}

	rateView, err := q.rates.FindCurrent(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRateTableMissing
		}
		return nil, err
	}

	input, err := q.buildInput(ctx, acc, rateView.ToDomain(), req)
	if err != nil {
		return nil, err
	}

	quote, err := q.resolver.Resolve(input)
	if err != nil {
		return unavailableView(err)
	}

	return availableView(quote), nil
}

func (q *quoteQueriesImpl) buildInput(
	ctx context.Context,
	acc *accommodation.Accommodation,
	rates pricing.RateTable,
	req QuoteRequest,
) (reservation.QuoteInput, error) {
	counts, err := pricing.NewEntranceCounts(req.AdultCount, req.ChildCount, req.PwdSeniorCount)
	if err != nil {
		return reservation.QuoteInput{}, errs.Mark(err, ErrInvalidQuoteRequest)
	}

	input := reservation.QuoteInput{
		Accommodation: acc,
		ManualGuests:  req.GuestCount,
		Entrance:      counts,
		Rates:         rates,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}
	if req.CheckIn != nil {
		input.CheckIn = *req.CheckIn
	}
	if req.TourMode != nil {
		mode, err := booking.NewTourMode(*req.TourMode)
		if err != nil {
			return reservation.QuoteInput{}, errs.Mark(err, ErrInvalidQuoteRequest)
		}
		input.Mode = mode
	}

	// Conflict candidates only matter once a start instant exists.
	from := earliestStart(req)
	if !from.IsZero() {
		ranges, err := q.blocked.ActiveFrom(ctx, acc.ID(), from, req.ExcludeReservationID)
		if err != nil {
			return reservation.QuoteInput{}, err
		}
		input.Blocked = ranges
	}

	return input, nil
}

// earliestStart picks the day before the candidate date so a night slot
// spilling over from the previous evening is still fetched.
func earliestStart(req QuoteRequest) time.Time {
	switch {
	case req.CheckIn != nil && !req.CheckIn.IsZero():
		return req.CheckIn.AddDate(0, 0, -1)
	case req.Date != nil && !req.Date.IsZero():
		return req.Date.AddDate(0, 0, -1)
	default:
		return time.Time{}
	}
}

func availableView(quote reservation.Quote) *QuoteView {
	view := &QuoteView{
		Available:              true,
		StartsAt:               ptr.To(quote.Window.Start()),
		EndsAt:                 ptr.To(quote.Window.End()),
		GuestCount:             int32(quote.Guests.Value()),
		GuestCountDerived:      quote.Guests.IsDerived(),
		AccommodationCentavos:  quote.Pricing.AccommodationTotal.Centavos(),
		AdultAmountCentavos:    quote.Pricing.EntranceAmounts.Adult.Centavos(),
		ChildAmountCentavos:    quote.Pricing.EntranceAmounts.Child.Centavos(),
		PwdSeniorAmtCentavos:   quote.Pricing.EntranceAmounts.PwdSenior.Centavos(),
		EntranceTotalCentavos:  quote.Pricing.EntranceTotal.Centavos(),
		ExtraPersonFeeCentavos: quote.Pricing.ExtraPersonFee.Centavos(),
		TotalCentavos:          quote.Pricing.Total.Centavos(),
		MinimumPayableCentavos: quote.Pricing.MinimumPayable.Centavos(),
	}
	if mode := quote.Window.Mode(); mode != nil {
		view.TourMode = ptr.To(mode.String())
	}
	return view
}

func unavailableView(cause error) (*QuoteView, error) {
	return &QuoteView{
		Available: false,
		Reason:    cause.Error(),
	}, nil
}
