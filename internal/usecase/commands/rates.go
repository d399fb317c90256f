package commands

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	reqdto "resort-booking/internal/handler/dto/request"
	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/usecase/queries"
)

var ErrInvalidRates = errs.New("invalid rate schedule")

type RateCommands interface {
	Update(ctx context.Context, req reqdto.UpdateRatesRequest) (*queries.RateTableView, error)
}

type rateCommandsImpl struct {
	repo    RateRepository
	queries queries.RateQueries
	clock   clock.Clock
	pool    *pgxpool.Pool
}

func NewRateCommands(repo RateRepository, q queries.RateQueries, clk clock.Clock, pool *pgxpool.Pool) RateCommands {
	return &rateCommandsImpl{
		repo:    repo,
		queries: q,
		clock:   clk,
		pool:    pool,
	}
}

// Update appends a new fee revision rather than mutating the current one, so
// reservations priced under an older schedule stay explainable.
func (c *rateCommandsImpl) Update(ctx context.Context, req reqdto.UpdateRatesRequest) (*queries.RateTableView, error) {
	for _, v := range []int64{
		req.AdultDayCentavos, req.AdultNightCentavos,
		req.ChildDayCentavos, req.ChildNightCentavos,
		req.PwdSeniorDayCentavos, req.PwdSeniorNightCentavos,
	} {
		if v < 0 {
			return nil, ErrInvalidRates
		}
	}

	effectiveFrom := c.clock.Now()
	if req.EffectiveFrom != nil {
		effectiveFrom = *req.EffectiveFrom
	}

	schedule := RateSchedule{
		AdultDayCentavos:       req.AdultDayCentavos,
		AdultNightCentavos:     req.AdultNightCentavos,
		ChildDayCentavos:       req.ChildDayCentavos,
		ChildNightCentavos:     req.ChildNightCentavos,
		PwdSeniorDayCentavos:   req.PwdSeniorDayCentavos,
		PwdSeniorNightCentavos: req.PwdSeniorNightCentavos,
		EffectiveFrom:          effectiveFrom,
	}

	if err := c.repo.Insert(ctx, c.pool, schedule); err != nil {
		return nil, err
	}

	return c.queries.Current(ctx)
}
