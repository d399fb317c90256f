package pricing

import (
	"errors"

	"resort-booking/internal/domain/booking"
)

var ErrNegativeEntranceCount = errors.New("entrance counts cannot be negative")

// Category is an entrance-ticket price class.
type Category string

const (
	CategoryAdult     Category = "adult"
	CategoryChild     Category = "child"
	CategoryPwdSenior Category = "pwdSenior"
)

// EntranceCounts are the per-category ticket quantities entered on the
// booking form.
type EntranceCounts struct {
	Adult     int
	Child     int
	PwdSenior int
}

func NewEntranceCounts(adult, child, pwdSenior int) (EntranceCounts, error) {
	if adult < 0 || child < 0 || pwdSenior < 0 {
		return EntranceCounts{}, ErrNegativeEntranceCount
	}
	return EntranceCounts{Adult: adult, Child: child, PwdSenior: pwdSenior}, nil
}

func (c EntranceCounts) Total() int {
	return c.Adult + c.Child + c.PwdSenior
}

func (c EntranceCounts) IsZero() bool {
	return c.Total() == 0
}

// ModeRate is a day/night unit price pair for one category.
type ModeRate struct {
	Day   Money
	Night Money
}

func (r ModeRate) For(mode booking.TourMode) Money {
	if mode == booking.ModeNight {
		return r.Night
	}
	return r.Day
}

// RateTable is the resort's entrance fee schedule. A missing category prices
// to zero rather than failing, matching how the booking form treats a rate
// table that has not finished loading.
type RateTable struct {
	EntranceFees map[Category]ModeRate
}

func (t RateTable) Unit(category Category, mode booking.TourMode) Money {
	rate, ok := t.EntranceFees[category]
	if !ok {
		return Money{}
	}
	return rate.For(mode)
}

// EntranceAmounts are the per-category revenue lines of one quote.
type EntranceAmounts struct {
	Adult     Money
	Child     Money
	PwdSenior Money
}

func (a EntranceAmounts) Total() Money {
	return a.Adult.Add(a.Child).Add(a.PwdSenior)
}

func ComputeEntranceAmounts(counts EntranceCounts, mode booking.TourMode, rates RateTable) EntranceAmounts {
	return EntranceAmounts{
		Adult:     rates.Unit(CategoryAdult, mode).MulCount(counts.Adult),
		Child:     rates.Unit(CategoryChild, mode).MulCount(counts.Child),
		PwdSenior: rates.Unit(CategoryPwdSenior, mode).MulCount(counts.PwdSenior),
	}
}
