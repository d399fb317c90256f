package booking

import (
	"errors"
	"time"
)

var ErrInvalidTourMode = errors.New("invalid tour mode")

// TourMode selects the fixed booking slot for non-overnight accommodations.
type TourMode string

const (
	ModeDay   TourMode = "day"
	ModeNight TourMode = "night"
)

func (m TourMode) String() string {
	return string(m)
}

func (m TourMode) IsValid() bool {
	switch m {
	case ModeDay, ModeNight:
		return true
	default:
		return false
	}
}

func NewTourMode(s string) (TourMode, error) {
	mode := TourMode(s)
	if !mode.IsValid() {
		return "", ErrInvalidTourMode
	}
	return mode, nil
}

// DefaultMaxStayHours is the overnight stay duration applied when an
// accommodation does not specify one.
const DefaultMaxStayHours = 10

// Hours holds the canonical slot boundaries for day and night tours.
// The night start hour is configurable because the resort has shifted it
// between 17:00 and 19:00 over time.
type Hours struct {
	DayStart   int
	DayEnd     int
	NightStart int
	NightEnd   int
}

func DefaultHours() Hours {
	return Hours{
		DayStart:   7,
		DayEnd:     17,
		NightStart: 17,
		NightEnd:   7,
	}
}

// ModeStart pins the given calendar date to the slot's start-of-day instant.
// A zero date passes through unchanged; required-field validation happens
// upstream.
func (h Hours) ModeStart(date time.Time, mode TourMode) time.Time {
	if date.IsZero() {
		return time.Time{}
	}
	hour := h.DayStart
	if mode == ModeNight {
		hour = h.NightStart
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, date.Location())
}

// ModeEnd derives the slot end from its start: same-day close for day tours,
// next-morning close for night tours.
func (h Hours) ModeEnd(start time.Time, mode TourMode) time.Time {
	if start.IsZero() {
		return time.Time{}
	}
	y, m, d := start.Date()
	if mode == ModeNight {
		return time.Date(y, m, d+1, h.NightEnd, 0, 0, 0, start.Location())
	}
	return time.Date(y, m, d, h.DayEnd, 0, 0, 0, start.Location())
}

// ModeWindow resolves both boundaries of the canonical slot for a date.
func (h Hours) ModeWindow(date time.Time, mode TourMode) (time.Time, time.Time) {
	start := h.ModeStart(date, mode)
	return start, h.ModeEnd(start, mode)
}

// OvernightEnd computes checkout for guest-house stays billed from an
// arbitrary check-in instant.
func OvernightEnd(checkIn time.Time, maxStayHours int) time.Time {
	if checkIn.IsZero() {
		return time.Time{}
	}
	if maxStayHours <= 0 {
		maxStayHours = DefaultMaxStayHours
	}
	return checkIn.Add(time.Duration(maxStayHours) * time.Hour)
}
