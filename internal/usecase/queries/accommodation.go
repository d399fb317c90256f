package queries

import (
	"context"

	"github.com/google/uuid"

	"resort-booking/internal/infra"
	"resort-booking/internal/pkg/errs"
)

var (
	ErrAccommodationNotFound     = errs.New("accommodation not found")
	ErrAccommodationTypeNotFound = errs.New("accommodation type not found")
)

type AccommodationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AccommodationView, error)
	GetBySlug(ctx context.Context, slug string) (*AccommodationView, error)
	List(ctx context.Context, includeArchived bool) ([]*AccommodationView, error)
	ListByType(ctx context.Context, typeID uuid.UUID) ([]*AccommodationView, error)
	ListTypes(ctx context.Context) ([]*AccommodationTypeView, error)
	GetTypeByID(ctx context.Context, id uuid.UUID) (*AccommodationTypeView, error)
}

type AccommodationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AccommodationView, error)
	FindBySlug(ctx context.Context, slug string) (*AccommodationView, error)
	FindAll(ctx context.Context, includeArchived bool) ([]*AccommodationView, error)
	FindByTypeID(ctx context.Context, typeID uuid.UUID) ([]*AccommodationView, error)
	FindAllTypes(ctx context.Context) ([]*AccommodationTypeView, error)
	FindTypeByID(ctx context.Context, id uuid.UUID) (*AccommodationTypeView, error)
}

type accommodationQueriesImpl struct {
	readStore AccommodationReadStore
}

func NewAccommodationQueries(readStore AccommodationReadStore) AccommodationQueries {
	return &accommodationQueriesImpl{
		readStore: readStore,
	}
}

func (q *accommodationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AccommodationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccommodationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *accommodationQueriesImpl) GetBySlug(ctx context.Context, slug string) (*AccommodationView, error) {
	view, err := q.readStore.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccommodationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *accommodationQueriesImpl) List(ctx context.Context, includeArchived bool) ([]*AccommodationView, error) {
	return q.readStore.FindAll(ctx, includeArchived)
}

func (q *accommodationQueriesImpl) ListByType(ctx context.Context, typeID uuid.UUID) ([]*AccommodationView, error) {
	if _, err := q.GetTypeByID(ctx, typeID); err != nil {
		return nil, err
	}
	return q.readStore.FindByTypeID(ctx, typeID)
}

func (q *accommodationQueriesImpl) ListTypes(ctx context.Context) ([]*AccommodationTypeView, error) {
	return q.readStore.FindAllTypes(ctx)
}

func (q *accommodationQueriesImpl) GetTypeByID(ctx context.Context, id uuid.UUID) (*AccommodationTypeView, error) {
	view, err := q.readStore.FindTypeByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccommodationTypeNotFound
		}
		return nil, err
	}
	return view, nil
}
