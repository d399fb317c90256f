package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/pricing"
	"resort-booking/internal/domain/reservation"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	const query = `
		INSERT INTO reservations (
			id, accommodation_id,
			guest_name, guest_email, guest_phone,
			starts_at, ends_at, tour_mode,
			guest_count, guest_count_derived,
			adult_count, child_count, pwd_senior_count,
			accommodation_total_centavos,
			adult_amount_centavos, child_amount_centavos, pwd_senior_amount_centavos,
			entrance_total_centavos, extra_person_fee_centavos,
			total_centavos, minimum_payable_centavos,
			status, note, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, now(), now())`

	_, err := tx.Exec(ctx, query, reservationArgs(res)...)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err, classifyPgErr(err))
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	const query = `
		UPDATE reservations
		SET guest_name = $3, guest_email = $4, guest_phone = $5,
			starts_at = $6, ends_at = $7, tour_mode = $8,
			guest_count = $9, guest_count_derived = $10,
			adult_count = $11, child_count = $12, pwd_senior_count = $13,
			accommodation_total_centavos = $14,
			adult_amount_centavos = $15, child_amount_centavos = $16, pwd_senior_amount_centavos = $17,
			entrance_total_centavos = $18, extra_person_fee_centavos = $19,
			total_centavos = $20, minimum_payable_centavos = $21,
			status = $22, note = $23, updated_at = now()
		WHERE id = $1 AND accommodation_id = $2`

	tag, err := tx.Exec(ctx, query, reservationArgs(res)...)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err, classifyPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// reservationArgs flattens the entity into the shared column order used by
// both Create and Update.
func reservationArgs(res *reservation.Reservation) []any {
	var mode *string
	if m := res.Window().Mode(); m != nil {
		s := m.String()
		mode = &s
	}
	var email, phone *string
	if v := res.Guest().Email(); v != "" {
		email = &v
	}
	if v := res.Guest().Phone(); v != "" {
		phone = &v
	}
	var note *string
	if !res.Note().IsEmpty() {
		v := res.Note().String()
		note = &v
	}
	price := res.Price()
	entrance := res.Entrance()

	return []any{
		res.ID(), res.AccommodationID(),
		res.Guest().Name(), email, phone,
		res.Window().Start(), res.Window().End(), mode,
		res.Guests().Value(), res.Guests().IsDerived(),
		entrance.Adult, entrance.Child, entrance.PwdSenior,
		price.AccommodationTotal.Centavos(),
		price.EntranceAmounts.Adult.Centavos(),
		price.EntranceAmounts.Child.Centavos(),
		price.EntranceAmounts.PwdSenior.Centavos(),
		price.EntranceTotal.Centavos(), price.ExtraPersonFee.Centavos(),
		price.Total.Centavos(), price.MinimumPayable.Centavos(),
		res.Status().String(), note,
	}
}

func (r *ReservationRepository) DomainByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	const query = `
		SELECT id, accommodation_id,
			guest_name, guest_email, guest_phone,
			starts_at, ends_at, tour_mode,
			guest_count, guest_count_derived,
			adult_count, child_count, pwd_senior_count,
			accommodation_total_centavos,
			adult_amount_centavos, child_amount_centavos, pwd_senior_amount_centavos,
			entrance_total_centavos, extra_person_fee_centavos,
			total_centavos, minimum_payable_centavos,
			status, note, created_at, updated_at
		FROM reservations
		WHERE id = $1`

	var (
		rowID, accommodationID               uuid.UUID
		guestName                            string
		guestEmail, guestPhone               *string
		startsAt, endsAt                     time.Time
		tourMode                             *string
		guestCount                           int
		guestCountDerived                    bool
		adultCount, childCount, pwdCount     int
		accommodationTotal                   int64
		adultAmount, childAmount, pwdAmount  int64
		entranceTotal, extraFee              int64
		total, minimumPayable                int64
		status                               string
		note                                 *string
		createdAt, updatedAt                 time.Time
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rowID, &accommodationID,
		&guestName, &guestEmail, &guestPhone,
		&startsAt, &endsAt, &tourMode,
		&guestCount, &guestCountDerived,
		&adultCount, &childCount, &pwdCount,
		&accommodationTotal,
		&adultAmount, &childAmount, &pwdAmount,
		&entranceTotal, &extraFee,
		&total, &minimumPayable,
		&status, &note, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	guest, err := reservation.NewGuest(guestName, deref(guestEmail), deref(guestPhone))
	if err != nil {
		return nil, infra.WrapRepoErr("stored guest details are invalid", err)
	}

	var window reservation.StayWindow
	if tourMode != nil {
		mode, merr := booking.NewTourMode(*tourMode)
		if merr != nil {
			return nil, infra.WrapRepoErr("stored tour mode is invalid", merr)
		}
		window, err = reservation.NewStayWindow(startsAt, endsAt, mode)
	} else {
		window, err = reservation.NewOvernightWindow(startsAt, endsAt)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("stored stay window is invalid", err)
	}

	statusVO, err := reservation.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored status is invalid", err)
	}

	entrance := pricing.EntranceCounts{Adult: adultCount, Child: childCount, PwdSenior: pwdCount}
	price := pricing.Result{
		AccommodationTotal: pricing.NewMoney(accommodationTotal),
		EntranceAmounts: pricing.EntranceAmounts{
			Adult:     pricing.NewMoney(adultAmount),
			Child:     pricing.NewMoney(childAmount),
			PwdSenior: pricing.NewMoney(pwdAmount),
		},
		EntranceTotal:  pricing.NewMoney(entranceTotal),
		ExtraPersonFee: pricing.NewMoney(extraFee),
		Total:          pricing.NewMoney(total),
		MinimumPayable: pricing.NewMoney(minimumPayable),
	}

	return reservation.ReconstructReservation(
		rowID, accommodationID,
		guest, window,
		pricing.ReconstructGuestCount(guestCount, guestCountDerived),
		entrance, price, statusVO,
		reservation.NewNote(deref(note)),
		createdAt, updatedAt,
	), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
