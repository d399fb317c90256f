//go:build unit || e2e

package builder

import (
	"resort-booking/internal/domain/accommodation"
	"resort-booking/internal/domain/pricing"
)

type AccommodationBuilder struct {
	TypeName       string
	TypeSlug       string
	Overnight      bool
	Name           string
	Slug           string
	DayPrice       int64
	NightPrice     int64
	Capacity       int
	ExtraPersonFee int64
	PoolAccess     bool
	MaxStayHours   int
}

func NewAccommodationBuilder() *AccommodationBuilder {
	return &AccommodationBuilder{
		TypeName:       "Open Cottage",
		TypeSlug:       "open-cottage",
		Overnight:      false,
		Name:           "Cottage A",
		Slug:           "cottage-a",
		DayPrice:       150000,
		NightPrice:     180000,
		Capacity:       4,
		ExtraPersonFee: 20000,
		PoolAccess:     false,
		MaxStayHours:   0,
	}
}

func (b *AccommodationBuilder) With(mutate func(*AccommodationBuilder)) *AccommodationBuilder {
	mutate(b)
	return b
}

func (b *AccommodationBuilder) WithOvernight() *AccommodationBuilder {
	b.TypeName = "Guest House"
	b.TypeSlug = "guest-house"
	b.Overnight = true
	b.MaxStayHours = 10
	return b
}

func (b *AccommodationBuilder) WithPoolAccess() *AccommodationBuilder {
	b.PoolAccess = true
	return b
}

func (b *AccommodationBuilder) WithCapacity(capacity int) *AccommodationBuilder {
	b.Capacity = capacity
	return b
}

func (b *AccommodationBuilder) BuildDomain() (*accommodation.Accommodation, error) {
	typ, err := accommodation.NewType(b.TypeName, b.TypeSlug, b.Overnight)
	if err != nil {
		return nil, err
	}
	return accommodation.NewAccommodation(
		typ,
		b.Name,
		b.Slug,
		pricing.NewMoney(b.DayPrice),
		pricing.NewMoney(b.NightPrice),
		b.Capacity,
		pricing.NewMoney(b.ExtraPersonFee),
		b.PoolAccess,
		b.MaxStayHours,
	)
}
