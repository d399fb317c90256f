package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AccommodationTypeView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Overnight bool      `json:"overnight"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AccommodationView struct {
	ID                     uuid.UUID `json:"id"`
	TypeID                 uuid.UUID `json:"type_id"`
	TypeName               string    `json:"type_name"`
	TypeSlug               string    `json:"type_slug"`
	Name                   string    `json:"name"`
	Slug                   string    `json:"slug"`
	DayPriceCentavos       int64     `json:"day_price_centavos"`
	NightPriceCentavos     int64     `json:"night_price_centavos"`
	Capacity               int32     `json:"capacity"`
	ExtraPersonFeeCentavos int64     `json:"extra_person_fee_centavos"`
	PoolAccess             bool      `json:"pool_access"`
	MaxStayHours           int32     `json:"max_stay_hours"`
	Overnight              bool      `json:"overnight"`
	Archived               bool      `json:"archived"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type RateTableView struct {
	ID                      uuid.UUID `json:"id"`
	AdultDayCentavos        int64     `json:"adult_day_centavos"`
	AdultNightCentavos      int64     `json:"adult_night_centavos"`
	ChildDayCentavos        int64     `json:"child_day_centavos"`
	ChildNightCentavos      int64     `json:"child_night_centavos"`
	PwdSeniorDayCentavos    int64     `json:"pwd_senior_day_centavos"`
	PwdSeniorNightCentavos  int64     `json:"pwd_senior_night_centavos"`
	EffectiveFrom           time.Time `json:"effective_from"`
	UpdatedAt               time.Time `json:"updated_at"`
}

type BlockedRangeView struct {
	ID                uuid.UUID  `json:"id"`
	AccommodationID   *uuid.UUID `json:"accommodation_id,omitempty"`
	AccommodationName *string    `json:"accommodation_name,omitempty"`
	ReservationID     *uuid.UUID `json:"reservation_id,omitempty"`
	StartsAt          time.Time  `json:"starts_at"`
	EndsAt            time.Time  `json:"ends_at"`
	Reason            string     `json:"reason"`
	IsFromReservation bool       `json:"is_from_reservation"`
	CreatedAt         time.Time  `json:"created_at"`
}

type ReservationView struct {
	ID                         uuid.UUID `json:"id"`
	AccommodationID            uuid.UUID `json:"accommodation_id"`
	AccommodationName          string    `json:"accommodation_name"`
	GuestName                  string    `json:"guest_name"`
	GuestEmail                 *string   `json:"guest_email,omitempty"`
	GuestPhone                 *string   `json:"guest_phone,omitempty"`
	StartsAt                   time.Time `json:"starts_at"`
	EndsAt                     time.Time `json:"ends_at"`
	TourMode                   *string   `json:"tour_mode,omitempty"`
	GuestCount                 int32     `json:"guest_count"`
	GuestCountDerived          bool      `json:"guest_count_derived"`
	AdultCount                 int32     `json:"adult_count"`
	ChildCount                 int32     `json:"child_count"`
	PwdSeniorCount             int32     `json:"pwd_senior_count"`
	AccommodationTotalCentavos int64     `json:"accommodation_total_centavos"`
	AdultAmountCentavos        int64     `json:"adult_amount_centavos"`
	ChildAmountCentavos        int64     `json:"child_amount_centavos"`
	PwdSeniorAmountCentavos    int64     `json:"pwd_senior_amount_centavos"`
	EntranceTotalCentavos      int64     `json:"entrance_total_centavos"`
	ExtraPersonFeeCentavos     int64     `json:"extra_person_fee_centavos"`
	TotalCentavos              int64     `json:"total_centavos"`
	MinimumPayableCentavos     int64     `json:"minimum_payable_centavos"`
	Status                     string    `json:"status"`
	Note                       *string   `json:"note,omitempty"`
	CreatedAt                  time.Time `json:"created_at"`
	UpdatedAt                  time.Time `json:"updated_at"`
}

type ReservationListItem struct {
	ID                uuid.UUID `json:"id"`
	AccommodationID   uuid.UUID `json:"accommodation_id"`
	AccommodationName string    `json:"accommodation_name"`
	GuestName         string    `json:"guest_name"`
	StartsAt          time.Time `json:"starts_at"`
	EndsAt            time.Time `json:"ends_at"`
	Status            string    `json:"status"`
	TotalCentavos     int64     `json:"total_centavos"`
	CreatedAt         time.Time `json:"created_at"`
}

// QuoteView mirrors what the booking form recomputes on every input change.
// An unavailable date is a quote outcome, not an error; the flow stays
// interactive.
type QuoteView struct {
	Available              bool       `json:"available"`
	Reason                 string     `json:"reason,omitempty"`
	StartsAt               *time.Time `json:"starts_at,omitempty"`
	EndsAt                 *time.Time `json:"ends_at,omitempty"`
	TourMode               *string    `json:"tour_mode,omitempty"`
	GuestCount             int32      `json:"guest_count"`
	GuestCountDerived      bool       `json:"guest_count_derived"`
	AccommodationCentavos  int64      `json:"accommodation_total_centavos"`
	AdultAmountCentavos    int64      `json:"adult_amount_centavos"`
	ChildAmountCentavos    int64      `json:"child_amount_centavos"`
	PwdSeniorAmtCentavos   int64      `json:"pwd_senior_amount_centavos"`
	EntranceTotalCentavos  int64      `json:"entrance_total_centavos"`
	ExtraPersonFeeCentavos int64      `json:"extra_person_fee_centavos"`
	TotalCentavos          int64      `json:"total_centavos"`
	MinimumPayableCentavos int64      `json:"minimum_payable_centavos"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
