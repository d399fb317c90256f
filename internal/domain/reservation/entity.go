package reservation

import (
	"errors"
	"time"

	"resort-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrStartInPast         = errors.New("reservation cannot start in the past")
	ErrNotPending          = errors.New("only pending reservations can be confirmed")
	ErrNotConfirmed        = errors.New("only confirmed reservations can be checked in")
	ErrAlreadyFinalized    = errors.New("reservation is already finalized")
	ErrCancellationCutoff  = errors.New("reservations can only be cancelled up to a day before the stay")
	ErrStayNotStarted      = errors.New("reservation cannot be marked no-show before the stay starts")
)

// CancellationCutoff is how long before the stay a guest-initiated
// cancellation must arrive.
const CancellationCutoff = 24 * time.Hour

type Reservation struct {
	id              uuid.UUID
	accommodationID uuid.UUID
	guest           Guest
	window          StayWindow
	guests          pricing.GuestCount
	entrance        pricing.EntranceCounts
	price           pricing.Result
	status          Status
	note            Note
	createdAt       time.Time
	updatedAt       time.Time
}

func newReservation(accommodationID uuid.UUID, guest Guest, quote Quote, note Note) *Reservation {
	return &Reservation{
		id:              uuid.New(),
		accommodationID: accommodationID,
		guest:           guest,
		window:          quote.Window,
		guests:          quote.Guests,
		entrance:        quote.Entrance,
		price:           quote.Pricing,
		status:          StatusPending,
		note:            note,
	}
}

func ReconstructReservation(
	id, accommodationID uuid.UUID,
	guest Guest,
	window StayWindow,
	guests pricing.GuestCount,
	entrance pricing.EntranceCounts,
	price pricing.Result,
	status Status,
	note Note,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		accommodationID: accommodationID,
		guest:           guest,
		window:          window,
		guests:          guests,
		entrance:        entrance,
		price:           price,
		status:          status,
		note:            note,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (r *Reservation) Confirm() error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusConfirmed
	return nil
}

func (r *Reservation) CheckIn() error {
	if r.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	r.status = StatusCheckedIn
	return nil
}

// Cancel releases the stay. Guests must cancel at least a day before the
// window opens; staff override skips the cutoff.
func (r *Reservation) Cancel(now time.Time, staffOverride bool) error {
	if !r.status.IsActive() {
		return ErrAlreadyFinalized
	}
	if !staffOverride && now.After(r.window.Start().Add(-CancellationCutoff)) {
		return ErrCancellationCutoff
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) MarkNoShow(now time.Time) error {
	if r.status != StatusConfirmed && r.status != StatusPending {
		return ErrAlreadyFinalized
	}
	if now.Before(r.window.Start()) {
		return ErrStayNotStarted
	}
	r.status = StatusNoShow
	return nil
}

// Reschedule replaces the window, counts, and pricing with a freshly resolved
// quote. The quote's conflict check must have excluded this reservation's own
// blocked range.
func (r *Reservation) Reschedule(quote Quote) error {
	if !r.status.IsActive() {
		return ErrAlreadyFinalized
	}
	r.window = quote.Window
	r.guests = quote.Guests
	r.entrance = quote.Entrance
	r.price = quote.Pricing
	return nil
}

func (r *Reservation) HasExpired(now time.Time) bool {
	return now.After(r.window.End())
}

func (r *Reservation) ID() uuid.UUID                    { return r.id }
func (r *Reservation) AccommodationID() uuid.UUID       { return r.accommodationID }
func (r *Reservation) Guest() Guest                     { return r.guest }
func (r *Reservation) Window() StayWindow               { return r.window }
func (r *Reservation) Guests() pricing.GuestCount       { return r.guests }
func (r *Reservation) Entrance() pricing.EntranceCounts { return r.entrance }
func (r *Reservation) Price() pricing.Result            { return r.price }
func (r *Reservation) Status() Status                   { return r.status }
func (r *Reservation) Note() Note                       { return r.note }
func (r *Reservation) CreatedAt() time.Time             { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time             { return r.updatedAt }
