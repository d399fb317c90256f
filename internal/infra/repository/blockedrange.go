package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
)

type BlockedRangeRepository struct {
	pool *pgxpool.Pool
}

func NewBlockedRangeRepository(pool *pgxpool.Pool) *BlockedRangeRepository {
	return &BlockedRangeRepository{pool: pool}
}

func (r *BlockedRangeRepository) Create(ctx context.Context, tx db.DBTX, blocked booking.BlockedRange) error {
	const query = `
		INSERT INTO blocked_ranges (id, accommodation_id, reservation_id, starts_at, ends_at, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())`

	_, err := tx.Exec(ctx, query,
		blocked.ID, blocked.AccommodationID, blocked.ReservationID,
		blocked.Start, blocked.End, blocked.Reason,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create blocked range", err, classifyPgErr(err))
	}
	return nil
}

func (r *BlockedRangeRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `DELETE FROM blocked_ranges WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete blocked range", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("blocked range not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *BlockedRangeRepository) DeleteByReservationID(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) error {
	const query = `DELETE FROM blocked_ranges WHERE reservation_id = $1`

	if _, err := tx.Exec(ctx, query, reservationID); err != nil {
		return infra.WrapRepoErr("failed to delete reservation blocked range", err)
	}
	return nil
}

func (r *BlockedRangeRepository) DomainByID(ctx context.Context, id uuid.UUID) (booking.BlockedRange, error) {
	const query = `
		SELECT id, accommodation_id, reservation_id, starts_at, ends_at, reason
		FROM blocked_ranges
		WHERE id = $1`

	var blocked booking.BlockedRange
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&blocked.ID, &blocked.AccommodationID, &blocked.ReservationID,
		&blocked.Start, &blocked.End, &blocked.Reason,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return booking.BlockedRange{}, infra.WrapRepoErr("blocked range not found", err, infra.KindNotFound)
		}
		return booking.BlockedRange{}, infra.WrapRepoErr("failed to find blocked range", err)
	}
	return blocked, nil
}

// ActiveFrom returns ranges scoped to the accommodation, plus resort-wide
// ones, that end after the given instant. The domain layer does the precise
// half-open overlap check.
func (r *BlockedRangeRepository) ActiveFrom(ctx context.Context, accommodationID uuid.UUID, from time.Time, excludeReservationID *uuid.UUID) ([]booking.BlockedRange, error) {
	const query = `
		SELECT id, accommodation_id, reservation_id, starts_at, ends_at, reason
		FROM blocked_ranges
		WHERE (accommodation_id = $1 OR accommodation_id IS NULL)
			AND ends_at > $2
			AND ($3::uuid IS NULL OR reservation_id IS DISTINCT FROM $3)
		ORDER BY starts_at`

	rows, err := r.pool.Query(ctx, query, accommodationID, from, excludeReservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked ranges", err)
	}
	defer rows.Close()

	var ranges []booking.BlockedRange
	for rows.Next() {
		var blocked booking.BlockedRange
		if err := rows.Scan(
			&blocked.ID, &blocked.AccommodationID, &blocked.ReservationID,
			&blocked.Start, &blocked.End, &blocked.Reason,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocked range", err)
		}
		ranges = append(ranges, blocked)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocked ranges", err)
	}
	return ranges, nil
}
