package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"resort-booking/internal/domain/accommodation"
	"resort-booking/internal/domain/pricing"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
)

type AccommodationRepository struct {
	pool *pgxpool.Pool
}

func NewAccommodationRepository(pool *pgxpool.Pool) *AccommodationRepository {
	return &AccommodationRepository{pool: pool}
}

func (r *AccommodationRepository) CreateType(ctx context.Context, tx db.DBTX, t *accommodation.Type) error {
	const query = `
		INSERT INTO accommodation_types (id, name, slug, overnight, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())`

	_, err := tx.Exec(ctx, query, t.ID(), t.Name(), t.Slug(), t.Overnight())
	if err != nil {
		return infra.WrapRepoErr("failed to create accommodation type", err, classifyPgErr(err))
	}
	return nil
}

func (r *AccommodationRepository) Create(ctx context.Context, tx db.DBTX, acc *accommodation.Accommodation) error {
	const query = `
		INSERT INTO accommodations (
			id, type_id, name, slug,
			day_price_centavos, night_price_centavos, capacity,
			extra_person_fee_centavos, pool_access, max_stay_hours, is_archived,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())`

	_, err := tx.Exec(ctx, query,
		acc.ID(), acc.TypeID(), acc.Name(), acc.Slug(),
		acc.DayPrice().Centavos(), acc.NightPrice().Centavos(), acc.Capacity(),
		acc.ExtraPersonFee().Centavos(), acc.PoolAccess(), acc.MaxStayHours(), acc.Archived(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create accommodation", err, classifyPgErr(err))
	}
	return nil
}

func (r *AccommodationRepository) Update(ctx context.Context, tx db.DBTX, acc *accommodation.Accommodation) error {
	const query = `
		UPDATE accommodations
		SET name = $2, slug = $3,
			day_price_centavos = $4, night_price_centavos = $5, capacity = $6,
			extra_person_fee_centavos = $7, pool_access = $8, max_stay_hours = $9,
			is_archived = $10, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		acc.ID(), acc.Name(), acc.Slug(),
		acc.DayPrice().Centavos(), acc.NightPrice().Centavos(), acc.Capacity(),
		acc.ExtraPersonFee().Centavos(), acc.PoolAccess(), acc.MaxStayHours(),
		acc.Archived(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update accommodation", err, classifyPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("accommodation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *AccommodationRepository) DomainByID(ctx context.Context, id uuid.UUID) (*accommodation.Accommodation, error) {
	const query = `
		SELECT a.id, a.type_id, a.name, a.slug,
			a.day_price_centavos, a.night_price_centavos, a.capacity,
			a.extra_person_fee_centavos, a.pool_access, a.max_stay_hours,
			t.overnight, a.is_archived, a.created_at, a.updated_at
		FROM accommodations a
		JOIN accommodation_types t ON t.id = a.type_id
		WHERE a.id = $1`

	var (
		rowID, typeID        uuid.UUID
		name, slug           string
		dayPrice, nightPrice int64
		capacity             int
		extraFee             int64
		poolAccess           bool
		maxStayHours         int
		overnight, archived  bool
		createdAt, updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rowID, &typeID, &name, &slug,
		&dayPrice, &nightPrice, &capacity,
		&extraFee, &poolAccess, &maxStayHours,
		&overnight, &archived, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("accommodation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find accommodation", err)
	}

	return accommodation.ReconstructAccommodation(
		rowID, typeID, name, slug,
		pricing.NewMoney(dayPrice), pricing.NewMoney(nightPrice),
		capacity, pricing.NewMoney(extraFee),
		poolAccess, maxStayHours, overnight, archived,
		createdAt, updatedAt,
	), nil
}

func (r *AccommodationRepository) TypeByID(ctx context.Context, id uuid.UUID) (*accommodation.Type, error) {
	const query = `
		SELECT id, name, slug, overnight, created_at, updated_at
		FROM accommodation_types
		WHERE id = $1`

	var (
		rowID                uuid.UUID
		name, slug           string
		overnight            bool
		createdAt, updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(&rowID, &name, &slug, &overnight, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("accommodation type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find accommodation type", err)
	}

	return accommodation.ReconstructType(rowID, name, slug, overnight, createdAt, updatedAt), nil
}
