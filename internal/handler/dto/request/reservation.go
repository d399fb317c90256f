package request

import (
	"time"

	"github.com/google/uuid"
)

// StaySelection is the booking-form state shared by quotes, creation, and
// rescheduling. Which fields are required depends on the accommodation:
// overnight stays take a check-in instant, day and night tours take a
// calendar date plus a mode, and only non-pool accommodations take a manual
// guest count.
type StaySelection struct {
	Date           *time.Time `json:"date,omitempty"`
	TourMode       *string    `json:"tour_mode,omitempty" binding:"omitempty,oneof=day night"`
	CheckIn        *time.Time `json:"check_in,omitempty"`
	GuestCount     *int       `json:"guest_count,omitempty" binding:"omitempty,min=0"`
	AdultCount     int        `json:"adult_count" binding:"min=0"`
	ChildCount     int        `json:"child_count" binding:"min=0"`
	PwdSeniorCount int        `json:"pwd_senior_count" binding:"min=0"`
}

type CreateReservationRequest struct {
	AccommodationID uuid.UUID `json:"accommodation_id" binding:"required"`
	GuestName       string    `json:"guest_name" binding:"required,max=255"`
	GuestEmail      string    `json:"guest_email,omitempty" binding:"omitempty,email"`
	GuestPhone      string    `json:"guest_phone,omitempty" binding:"omitempty,max=32"`
	Note            string    `json:"note,omitempty" binding:"omitempty,max=1000"`
	StaySelection
}

type RescheduleReservationRequest struct {
	StaySelection
}

type QuoteRequest struct {
	AccommodationID      uuid.UUID  `json:"accommodation_id" binding:"required"`
	ExcludeReservationID *uuid.UUID `json:"exclude_reservation_id,omitempty"`
	StaySelection
}
