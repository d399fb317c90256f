package readstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"resort-booking/internal/infra"
	"resort-booking/internal/usecase/queries"
)

type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	const query = `
		SELECT r.id, r.accommodation_id, a.name,
			r.guest_name, r.guest_email, r.guest_phone,
			r.starts_at, r.ends_at, r.tour_mode,
			r.guest_count, r.guest_count_derived,
			r.adult_count, r.child_count, r.pwd_senior_count,
			r.accommodation_total_centavos,
			r.adult_amount_centavos, r.child_amount_centavos, r.pwd_senior_amount_centavos,
			r.entrance_total_centavos, r.extra_person_fee_centavos,
			r.total_centavos, r.minimum_payable_centavos,
			r.status, r.note, r.created_at, r.updated_at
		FROM reservations r
		JOIN accommodations a ON a.id = r.accommodation_id
		WHERE r.id = $1`

	var view queries.ReservationView
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.AccommodationID, &view.AccommodationName,
		&view.GuestName, &view.GuestEmail, &view.GuestPhone,
		&view.StartsAt, &view.EndsAt, &view.TourMode,
		&view.GuestCount, &view.GuestCountDerived,
		&view.AdultCount, &view.ChildCount, &view.PwdSeniorCount,
		&view.AccommodationTotalCentavos,
		&view.AdultAmountCentavos, &view.ChildAmountCentavos, &view.PwdSeniorAmountCentavos,
		&view.EntranceTotalCentavos, &view.ExtraPersonFeeCentavos,
		&view.TotalCentavos, &view.MinimumPayableCentavos,
		&view.Status, &view.Note, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return &view, nil
}

// FindPage runs the keyset query: newest first, strictly after the cursor row
// when one is given. Filters are optional and combine with AND.
func (s *ReservationReadStore) FindPage(ctx context.Context, filter queries.ReservationFilter, afterCreatedAt *time.Time, afterID *uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	query := `
		SELECT r.id, r.accommodation_id, a.name, r.guest_name,
			r.starts_at, r.ends_at, r.status, r.total_centavos, r.created_at
		FROM reservations r
		JOIN accommodations a ON a.id = r.accommodation_id
		WHERE 1=1`
	var args []any

	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != nil {
		query += ` AND r.status = ` + next(*filter.Status)
	}
	if filter.AccommodationID != nil {
		query += ` AND r.accommodation_id = ` + next(*filter.AccommodationID)
	}
	if filter.From != nil {
		query += ` AND r.ends_at > ` + next(*filter.From)
	}
	if filter.To != nil {
		query += ` AND r.starts_at < ` + next(*filter.To)
	}
	if afterCreatedAt != nil && afterID != nil {
		query += ` AND (r.created_at, r.id) < (` + next(*afterCreatedAt) + `, ` + next(*afterID) + `)`
	}
	query += ` ORDER BY r.created_at DESC, r.id DESC LIMIT ` + next(limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var items []*queries.ReservationListItem
	for rows.Next() {
		var item queries.ReservationListItem
		if err := rows.Scan(
			&item.ID, &item.AccommodationID, &item.AccommodationName, &item.GuestName,
			&item.StartsAt, &item.EndsAt, &item.Status, &item.TotalCentavos, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return items, nil
}
