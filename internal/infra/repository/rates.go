package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/usecase/commands"
)

type RateRepository struct {
	pool *pgxpool.Pool
}

func NewRateRepository(pool *pgxpool.Pool) *RateRepository {
	return &RateRepository{pool: pool}
}

func (r *RateRepository) Insert(ctx context.Context, tx db.DBTX, rates commands.RateSchedule) error {
	const query = `
		INSERT INTO resort_rates (
			id,
			adult_day_centavos, adult_night_centavos,
			child_day_centavos, child_night_centavos,
			pwd_senior_day_centavos, pwd_senior_night_centavos,
			effective_from, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`

	_, err := tx.Exec(ctx, query,
		uuid.New(),
		rates.AdultDayCentavos, rates.AdultNightCentavos,
		rates.ChildDayCentavos, rates.ChildNightCentavos,
		rates.PwdSeniorDayCentavos, rates.PwdSeniorNightCentavos,
		rates.EffectiveFrom,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert rate schedule", err, classifyPgErr(err))
	}
	return nil
}
