package readstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"resort-booking/internal/infra"
	"resort-booking/internal/usecase/queries"
)

type BlockedRangeReadStore struct {
	pool *pgxpool.Pool
}

func NewBlockedRangeReadStore(pool *pgxpool.Pool) *BlockedRangeReadStore {
	return &BlockedRangeReadStore{pool: pool}
}

func (s *BlockedRangeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BlockedRangeView, error) {
	const query = `
		SELECT b.id, b.accommodation_id, a.name, b.reservation_id,
			b.starts_at, b.ends_at, b.reason, b.created_at
		FROM blocked_ranges b
		LEFT JOIN accommodations a ON a.id = b.accommodation_id
		WHERE b.id = $1`

	view, err := scanBlockedRange(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("blocked range not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find blocked range", err)
	}
	return view, nil
}

// FindWithin lists ranges overlapping [from, to), newest period first.
// Passing an accommodation keeps resort-wide rows in the result since those
// affect every calendar.
func (s *BlockedRangeReadStore) FindWithin(ctx context.Context, from, to time.Time, accommodationID *uuid.UUID) ([]*queries.BlockedRangeView, error) {
	const query = `
		SELECT b.id, b.accommodation_id, a.name, b.reservation_id,
			b.starts_at, b.ends_at, b.reason, b.created_at
		FROM blocked_ranges b
		LEFT JOIN accommodations a ON a.id = b.accommodation_id
		WHERE b.starts_at < $2 AND b.ends_at > $1
			AND ($3::uuid IS NULL OR b.accommodation_id = $3 OR b.accommodation_id IS NULL)
		ORDER BY b.starts_at`

	rows, err := s.pool.Query(ctx, query, from, to, accommodationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked ranges", err)
	}
	defer rows.Close()

	var views []*queries.BlockedRangeView
	for rows.Next() {
		view, err := scanBlockedRange(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocked range", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocked ranges", err)
	}
	return views, nil
}

func scanBlockedRange(row pgx.Row) (*queries.BlockedRangeView, error) {
	var view queries.BlockedRangeView
	err := row.Scan(
		&view.ID, &view.AccommodationID, &view.AccommodationName, &view.ReservationID,
		&view.StartsAt, &view.EndsAt, &view.Reason, &view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.IsFromReservation = view.ReservationID != nil
	return &view, nil
}
