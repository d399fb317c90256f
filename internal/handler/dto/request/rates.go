package request

import "time"

type UpdateRatesRequest struct {
	AdultDayCentavos       int64      `json:"adult_day_centavos" binding:"min=0"`
	AdultNightCentavos     int64      `json:"adult_night_centavos" binding:"min=0"`
	ChildDayCentavos       int64      `json:"child_day_centavos" binding:"min=0"`
	ChildNightCentavos     int64      `json:"child_night_centavos" binding:"min=0"`
	PwdSeniorDayCentavos   int64      `json:"pwd_senior_day_centavos" binding:"min=0"`
	PwdSeniorNightCentavos int64      `json:"pwd_senior_night_centavos" binding:"min=0"`
	EffectiveFrom          *time.Time `json:"effective_from,omitempty"`
}
