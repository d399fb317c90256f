package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"resort-booking/internal/infra"
	"resort-booking/internal/usecase/queries"
)

const accommodationColumns = `
	a.id, a.type_id, t.name, t.slug, a.name, a.slug,
	a.day_price_centavos, a.night_price_centavos, a.capacity,
	a.extra_person_fee_centavos, a.pool_access, a.max_stay_hours,
	t.overnight, a.is_archived, a.created_at, a.updated_at`

type AccommodationReadStore struct {
	pool *pgxpool.Pool
}

func NewAccommodationReadStore(pool *pgxpool.Pool) *AccommodationReadStore {
	return &AccommodationReadStore{pool: pool}
}

func scanAccommodation(row pgx.Row) (*queries.AccommodationView, error) {
	var view queries.AccommodationView
	err := row.Scan(
		&view.ID, &view.TypeID, &view.TypeName, &view.TypeSlug, &view.Name, &view.Slug,
		&view.DayPriceCentavos, &view.NightPriceCentavos, &view.Capacity,
		&view.ExtraPersonFeeCentavos, &view.PoolAccess, &view.MaxStayHours,
		&view.Overnight, &view.Archived, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *AccommodationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AccommodationView, error) {
	query := `
		SELECT ` + accommodationColumns + `
		FROM accommodations a
		JOIN accommodation_types t ON t.id = a.type_id
		WHERE a.id = $1`

	view, err := scanAccommodation(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("accommodation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find accommodation", err)
	}
	return view, nil
}

func (s *AccommodationReadStore) FindBySlug(ctx context.Context, slug string) (*queries.AccommodationView, error) {
	query := `
		SELECT ` + accommodationColumns + `
		FROM accommodations a
		JOIN accommodation_types t ON t.id = a.type_id
		WHERE a.slug = $1`

	view, err := scanAccommodation(s.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("accommodation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find accommodation", err)
	}
	return view, nil
}

func (s *AccommodationReadStore) FindAll(ctx context.Context, includeArchived bool) ([]*queries.AccommodationView, error) {
	query := `
		SELECT ` + accommodationColumns + `
		FROM accommodations a
		JOIN accommodation_types t ON t.id = a.type_id
		WHERE ($1 OR NOT a.is_archived)
		ORDER BY t.name, a.name`

	return s.queryMany(ctx, query, includeArchived)
}

func (s *AccommodationReadStore) FindByTypeID(ctx context.Context, typeID uuid.UUID) ([]*queries.AccommodationView, error) {
	query := `
		SELECT ` + accommodationColumns + `
		FROM accommodations a
		JOIN accommodation_types t ON t.id = a.type_id
		WHERE a.type_id = $1 AND NOT a.is_archived
		ORDER BY a.name`

	return s.queryMany(ctx, query, typeID)
}

func (s *AccommodationReadStore) queryMany(ctx context.Context, query string, args ...any) ([]*queries.AccommodationView, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list accommodations", err)
	}
	defer rows.Close()

	var views []*queries.AccommodationView
	for rows.Next() {
		view, err := scanAccommodation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan accommodation", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate accommodations", err)
	}
	return views, nil
}

func (s *AccommodationReadStore) FindAllTypes(ctx context.Context) ([]*queries.AccommodationTypeView, error) {
	const query = `
		SELECT id, name, slug, overnight, created_at, updated_at
		FROM accommodation_types
		ORDER BY name`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list accommodation types", err)
	}
	defer rows.Close()

	var views []*queries.AccommodationTypeView
	for rows.Next() {
		var view queries.AccommodationTypeView
		if err := rows.Scan(&view.ID, &view.Name, &view.Slug, &view.Overnight, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan accommodation type", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate accommodation types", err)
	}
	return views, nil
}

func (s *AccommodationReadStore) FindTypeByID(ctx context.Context, id uuid.UUID) (*queries.AccommodationTypeView, error) {
	const query = `
		SELECT id, name, slug, overnight, created_at, updated_at
		FROM accommodation_types
		WHERE id = $1`

	var view queries.AccommodationTypeView
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Name, &view.Slug, &view.Overnight, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("accommodation type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find accommodation type", err)
	}
	return &view, nil
}
