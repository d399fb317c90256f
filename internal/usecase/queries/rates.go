package queries

import (
	"context"

	"resort-booking/internal/domain/pricing"
	"resort-booking/internal/infra"
	"resort-booking/internal/pkg/errs"
)

var ErrRateTableMissing = errs.New("no rate table is configured")

type RateQueries interface {
	Current(ctx context.Context) (*RateTableView, error)
}

type RateReadStore interface {
	FindCurrent(ctx context.Context) (*RateTableView, error)
}

type rateQueriesImpl struct {
	readStore RateReadStore
}

func NewRateQueries(readStore RateReadStore) RateQueries {
	return &rateQueriesImpl{
		readStore: readStore,
	}
}

func (q *rateQueriesImpl) Current(ctx context.Context) (*RateTableView, error) {
	view, err := q.readStore.FindCurrent(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRateTableMissing
		}
		return nil, err
	}
	return view, nil
}

// ToDomain converts the persisted fee schedule into the pricing table the
// resolver consumes.
func (v *RateTableView) ToDomain() pricing.RateTable {
	return pricing.RateTable{
		EntranceFees: map[pricing.Category]pricing.ModeRate{
			pricing.CategoryAdult: {
				Day:   pricing.NewMoney(v.AdultDayCentavos),
				Night: pricing.NewMoney(v.AdultNightCentavos),
			},
			pricing.CategoryChild: {
				Day:   pricing.NewMoney(v.ChildDayCentavos),
				Night: pricing.NewMoney(v.ChildNightCentavos),
			},
			pricing.CategoryPwdSenior: {
				Day:   pricing.NewMoney(v.PwdSeniorDayCentavos),
				Night: pricing.NewMoney(v.PwdSeniorNightCentavos),
			},
		},
	}
}
