package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidBlockedRange = errors.New("blocked range start must be before end")

// BlockedRange marks a period during which one accommodation (or the whole
// resort when AccommodationID is nil) cannot be booked. Ranges are created by
// confirmed reservations or manual admin blocks.
type BlockedRange struct {
	ID              uuid.UUID
	AccommodationID *uuid.UUID
	ReservationID   *uuid.UUID
	Start           time.Time
	End             time.Time
	Reason          string
}

func NewBlockedRange(accommodationID *uuid.UUID, start, end time.Time, reason string) (BlockedRange, error) {
	if !start.Before(end) {
		return BlockedRange{}, ErrInvalidBlockedRange
	}
	return BlockedRange{
		ID:              uuid.New(),
		AccommodationID: accommodationID,
		Start:           start,
		End:             end,
		Reason:          reason,
	}, nil
}

func (r BlockedRange) IsFromReservation() bool {
	return r.ReservationID != nil
}

// AppliesTo reports whether the range constrains the given accommodation.
// A nil AccommodationID is a resort-wide block.
func (r BlockedRange) AppliesTo(accommodationID uuid.UUID) bool {
	return r.AccommodationID == nil || *r.AccommodationID == accommodationID
}

// Overlaps uses half-open interval semantics: touching endpoints do not
// conflict, so a day tour ending 17:00 coexists with a night tour starting
// 17:00.
func (r BlockedRange) Overlaps(start, end time.Time) bool {
	return r.Start.Before(end) && r.End.After(start)
}

// Contains reports whether the instant falls inside [Start, End).
func (r BlockedRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// IsWindowBlocked reports whether a candidate window conflicts with any range
// scoped to the accommodation. Zero boundaries short-circuit to available;
// callers validate required fields before asking for conflicts.
func IsWindowBlocked(start, end time.Time, ranges []BlockedRange, accommodationID uuid.UUID) bool {
	_, blocked := FirstConflict(start, end, ranges, accommodationID)
	return blocked
}

// FirstConflict returns the first range that makes the window unavailable.
func FirstConflict(start, end time.Time, ranges []BlockedRange, accommodationID uuid.UUID) (BlockedRange, bool) {
	if start.IsZero() || end.IsZero() {
		return BlockedRange{}, false
	}
	for _, r := range ranges {
		if r.AppliesTo(accommodationID) && r.Overlaps(start, end) {
			return r, true
		}
	}
	return BlockedRange{}, false
}

// IsModeBlocked resolves the canonical slot for a date and checks it for
// conflicts.
func IsModeBlocked(h Hours, date time.Time, mode TourMode, ranges []BlockedRange, accommodationID uuid.UUID) bool {
	start, end := h.ModeWindow(date, mode)
	return IsWindowBlocked(start, end, ranges, accommodationID)
}

// IsInstantBlocked reports whether any applicable range contains the instant,
// used to reject overnight check-ins landing inside an existing stay.
func IsInstantBlocked(t time.Time, ranges []BlockedRange, accommodationID uuid.UUID) bool {
	if t.IsZero() {
		return false
	}
	for _, r := range ranges {
		if r.AppliesTo(accommodationID) && r.Contains(t) {
			return true
		}
	}
	return false
}
