package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resort-booking/internal/infra"
	"resort-booking/internal/pkg/errs"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidCursor       = errs.New("invalid pagination cursor")
)

// ReservationFilter narrows the front-desk list view.
type ReservationFilter struct {
	Status          *string
	AccommodationID *uuid.UUID
	From            *time.Time
	To              *time.Time
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindPage(ctx context.Context, filter ReservationFilter, afterCreatedAt *time.Time, afterID *uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{
		readStore: readStore,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

// List pages newest-first with a keyset cursor over (created_at, id). The
// extra row fetched beyond the limit tells us whether another page exists.
func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var afterCreatedAt *time.Time
	var afterID *uuid.UUID
	if after != nil && after.After != "" {
		t, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidCursor)
		}
		afterCreatedAt = &t
		afterID = &id
	}

	rows, err := q.readStore.FindPage(ctx, filter, afterCreatedAt, afterID, int32(limit)+1)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}

	return rows, next, nil
}
