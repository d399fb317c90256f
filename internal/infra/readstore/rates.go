package readstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"resort-booking/internal/infra"
	"resort-booking/internal/usecase/queries"
)

type RateReadStore struct {
	pool *pgxpool.Pool
}

func NewRateReadStore(pool *pgxpool.Pool) *RateReadStore {
	return &RateReadStore{pool: pool}
}

// FindCurrent returns the latest schedule already in effect. Future-dated
// revisions stay invisible until their effective_from passes.
func (s *RateReadStore) FindCurrent(ctx context.Context) (*queries.RateTableView, error) {
	const query = `
		SELECT id,
			adult_day_centavos, adult_night_centavos,
			child_day_centavos, child_night_centavos,
			pwd_senior_day_centavos, pwd_senior_night_centavos,
			effective_from, updated_at
		FROM resort_rates
		WHERE effective_from <= now()
		ORDER BY effective_from DESC
		LIMIT 1`

	var view queries.RateTableView
	err := s.pool.QueryRow(ctx, query).Scan(
		&view.ID,
		&view.AdultDayCentavos, &view.AdultNightCentavos,
		&view.ChildDayCentavos, &view.ChildNightCentavos,
		&view.PwdSeniorDayCentavos, &view.PwdSeniorNightCentavos,
		&view.EffectiveFrom, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("rate table not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find current rates", err)
	}
	return &view, nil
}
