package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"resort-booking/internal/domain/booking"
	reqdto "resort-booking/internal/handler/dto/request"
	"resort-booking/internal/infra"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/usecase/queries"
)

var (
	ErrBlockedRangeNotFound    = errs.New("blocked range not found")
	ErrReservationManagedRange = errs.New("blocked range is managed by its reservation")
)

type BlockedRangeCommands interface {
	Block(ctx context.Context, req reqdto.CreateBlockedRangeRequest) (*queries.BlockedRangeView, error)
	Unblock(ctx context.Context, id uuid.UUID) error
}

type blockedRangeCommandsImpl struct {
	repo    BlockedRangeRepository
	queries queries.BlockedRangeQueries
	pool    *pgxpool.Pool
}

func NewBlockedRangeCommands(repo BlockedRangeRepository, q queries.BlockedRangeQueries, pool *pgxpool.Pool) BlockedRangeCommands {
	return &blockedRangeCommandsImpl{
		repo:    repo,
		queries: q,
		pool:    pool,
	}
}

// Block creates a manual maintenance or event block. A nil accommodation ID
// closes the whole resort for the period.
func (c *blockedRangeCommandsImpl) Block(ctx context.Context, req reqdto.CreateBlockedRangeRequest) (*queries.BlockedRangeView, error) {
	blocked, err := booking.NewBlockedRange(req.AccommodationID, req.StartsAt, req.EndsAt, req.Reason)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.repo.Create(ctx, c.pool, blocked); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrAccommodationNotFound
		}
		return nil, err
	}

	return c.queries.GetByID(ctx, blocked.ID)
}

// Unblock removes a manual block. Reservation-sourced ranges are released
// through the reservation lifecycle, never directly.
func (c *blockedRangeCommandsImpl) Unblock(ctx context.Context, id uuid.UUID) error {
	blocked, err := c.repo.DomainByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBlockedRangeNotFound
		}
		return err
	}

	if blocked.IsFromReservation() {
		return ErrReservationManagedRange
	}

	return c.repo.Delete(ctx, c.pool, id)
}
