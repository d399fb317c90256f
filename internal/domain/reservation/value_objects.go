package reservation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"resort-booking/internal/domain/booking"
)

var (
	ErrInvalidStayWindow = errors.New("stay window start must be before end")
	ErrMissingGuestName  = errors.New("guest name is required")
	ErrInvalidGuestEmail = errors.New("invalid guest email format")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// StayWindow is the booked occupancy interval, half-open [start, end).
type StayWindow struct {
	start time.Time
	end   time.Time
	mode  *booking.TourMode
}

// NewStayWindow builds a window for a fixed day/night slot.
func NewStayWindow(start, end time.Time, mode booking.TourMode) (StayWindow, error) {
	if !start.Before(end) {
		return StayWindow{}, ErrInvalidStayWindow
	}
	m := mode
	return StayWindow{start: start, end: end, mode: &m}, nil
}

// NewOvernightWindow builds a window for a guest-house stay, which has no
// tour mode.
func NewOvernightWindow(start, end time.Time) (StayWindow, error) {
	if !start.Before(end) {
		return StayWindow{}, ErrInvalidStayWindow
	}
	return StayWindow{start: start, end: end}, nil
}

func (w StayWindow) Start() time.Time         { return w.start }
func (w StayWindow) End() time.Time           { return w.end }
func (w StayWindow) Mode() *booking.TourMode  { return w.mode }
func (w StayWindow) IsOvernight() bool        { return w.mode == nil }
func (w StayWindow) Duration() time.Duration  { return w.end.Sub(w.start) }

func (w StayWindow) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}

// Guest is the customer identity captured on the booking form. Guests do not
// have accounts; reservations carry their contact details inline.
type Guest struct {
	name  string
	email string
	phone string
}

func NewGuest(name, email, phone string) (Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Guest{}, ErrMissingGuestName
	}
	email = strings.TrimSpace(email)
	if email != "" && !emailRegex.MatchString(email) {
		return Guest{}, ErrInvalidGuestEmail
	}
	return Guest{name: name, email: email, phone: strings.TrimSpace(phone)}, nil
}

func (g Guest) Name() string  { return g.name }
func (g Guest) Email() string { return g.email }
func (g Guest) Phone() string { return g.phone }

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
