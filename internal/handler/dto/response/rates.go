package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"resort-booking/internal/usecase/queries"
)

type RateTableResponse struct {
	ID                     uuid.UUID `json:"id"`
	AdultDayCentavos       int64     `json:"adultDayCentavos"`
	AdultNightCentavos     int64     `json:"adultNightCentavos"`
	ChildDayCentavos       int64     `json:"childDayCentavos"`
	ChildNightCentavos     int64     `json:"childNightCentavos"`
	PwdSeniorDayCentavos   int64     `json:"pwdSeniorDayCentavos"`
	PwdSeniorNightCentavos int64     `json:"pwdSeniorNightCentavos"`
	EffectiveFrom          time.Time `json:"effectiveFrom"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

func FromRateTableView(view *queries.RateTableView) *RateTableResponse {
	var resp RateTableResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
