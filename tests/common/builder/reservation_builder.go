//go:build unit || e2e

package builder

import (
	"time"

	reqdto "resort-booking/internal/handler/dto/request"
	"resort-booking/internal/pkg/ptr"
	"resort-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	AccommodationID uuid.UUID
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	Note            string
	Date            *time.Time
	TourMode        *string
	CheckIn         *time.Time
	GuestCount      *int
	AdultCount      int
	ChildCount      int
	PwdSeniorCount  int
}

// NewReservationBuilder defaults to a day-tour booking two weeks out, which
// clears the cancellation cutoff in every lifecycle test.
func NewReservationBuilder() *ReservationBuilder {
	date := time.Now().AddDate(0, 0, 14).Truncate(24 * time.Hour)
	return &ReservationBuilder{
		AccommodationID: uuid.New(),
		GuestName:       "Juan dela Cruz",
		GuestEmail:      "juan@example.com",
		GuestPhone:      "09171234567",
		Date:            &date,
		TourMode:        ptr.To("day"),
		GuestCount:      ptr.To(4),
		AdultCount:      2,
		ChildCount:      2,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) ForAccommodation(id uuid.UUID) *ReservationBuilder {
	b.AccommodationID = id
	return b
}

func (b *ReservationBuilder) AsOvernight(checkIn time.Time) *ReservationBuilder {
	b.Date = nil
	b.TourMode = nil
	b.CheckIn = &checkIn
	return b
}

func (b *ReservationBuilder) AsNightTour() *ReservationBuilder {
	b.TourMode = ptr.To("night")
	return b
}

func (b *ReservationBuilder) BuildDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		AccommodationID: b.AccommodationID,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		Note:            b.Note,
		StaySelection:   b.buildSelection(),
	}
}

func (b *ReservationBuilder) BuildRescheduleDTO() reqdto.RescheduleReservationRequest {
	return reqdto.RescheduleReservationRequest{
		StaySelection: b.buildSelection(),
	}
}

func (b *ReservationBuilder) buildSelection() reqdto.StaySelection {
	return reqdto.StaySelection{
		Date:           b.Date,
		TourMode:       b.TourMode,
		CheckIn:        b.CheckIn,
		GuestCount:     b.GuestCount,
		AdultCount:     b.AdultCount,
		ChildCount:     b.ChildCount,
		PwdSeniorCount: b.PwdSeniorCount,
	}
}

func (b *ReservationBuilder) BuildReadModel() *queries.ReservationView {
	now := time.Now()
	start := now.AddDate(0, 0, 14)
	view := &queries.ReservationView{
		ID:                         uuid.New(),
		AccommodationID:            b.AccommodationID,
		AccommodationName:          "Cottage A",
		GuestName:                  b.GuestName,
		StartsAt:                   start,
		EndsAt:                     start.Add(10 * time.Hour),
		TourMode:                   b.TourMode,
		GuestCount:                 4,
		AdultCount:                 int32(b.AdultCount),
		ChildCount:                 int32(b.ChildCount),
		PwdSeniorCount:             int32(b.PwdSeniorCount),
		AccommodationTotalCentavos: 150000,
		AdultAmountCentavos:        20000,
		ChildAmountCentavos:        10000,
		EntranceTotalCentavos:      30000,
		TotalCentavos:              180000,
		MinimumPayableCentavos:     75000,
		Status:                     "pending",
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
	if b.GuestEmail != "" {
		view.GuestEmail = &b.GuestEmail
	}
	if b.GuestPhone != "" {
		view.GuestPhone = &b.GuestPhone
	}
	return view
}
