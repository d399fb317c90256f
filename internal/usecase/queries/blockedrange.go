package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resort-booking/internal/infra"
	"resort-booking/internal/pkg/errs"
)

var ErrBlockedRangeNotFound = errs.New("blocked range not found")

type BlockedRangeQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BlockedRangeView, error)
	ListWithin(ctx context.Context, from, to time.Time, accommodationID *uuid.UUID) ([]*BlockedRangeView, error)
}

type BlockedRangeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BlockedRangeView, error)
	FindWithin(ctx context.Context, from, to time.Time, accommodationID *uuid.UUID) ([]*BlockedRangeView, error)
}

type blockedRangeQueriesImpl struct {
	readStore BlockedRangeReadStore
}

func NewBlockedRangeQueries(readStore BlockedRangeReadStore) BlockedRangeQueries {
	return &blockedRangeQueriesImpl{
		readStore: readStore,
	}
}

func (q *blockedRangeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BlockedRangeView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBlockedRangeNotFound
		}
		return nil, err
	}
	return view, nil
}

// ListWithin returns ranges overlapping [from, to), including resort-wide
// blocks when an accommodation filter is set. The calendar UI asks one month
// at a time.
func (q *blockedRangeQueriesImpl) ListWithin(ctx context.Context, from, to time.Time, accommodationID *uuid.UUID) ([]*BlockedRangeView, error) {
	return q.readStore.FindWithin(ctx, from, to, accommodationID)
}
