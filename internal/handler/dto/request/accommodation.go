package request

import "github.com/google/uuid"

type CreateAccommodationTypeRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	Slug      string `json:"slug" binding:"required,max=255"`
	Overnight bool   `json:"overnight"`
}

type CreateAccommodationRequest struct {
	TypeID                 uuid.UUID `json:"type_id" binding:"required"`
	Name                   string    `json:"name" binding:"required,max=255"`
	Slug                   string    `json:"slug" binding:"required,max=255"`
	DayPriceCentavos       int64     `json:"day_price_centavos" binding:"min=0"`
	NightPriceCentavos     int64     `json:"night_price_centavos" binding:"min=0"`
	Capacity               int       `json:"capacity" binding:"required,min=1"`
	ExtraPersonFeeCentavos int64     `json:"extra_person_fee_centavos" binding:"min=0"`
	PoolAccess             bool      `json:"pool_access"`
	MaxStayHours           int       `json:"max_stay_hours" binding:"min=0"`
}

type UpdateAccommodationRequest struct {
	Name                   *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Slug                   *string `json:"slug,omitempty" binding:"omitempty,max=255"`
	DayPriceCentavos       *int64  `json:"day_price_centavos,omitempty" binding:"omitempty,min=0"`
	NightPriceCentavos     *int64  `json:"night_price_centavos,omitempty" binding:"omitempty,min=0"`
	Capacity               *int    `json:"capacity,omitempty" binding:"omitempty,min=1"`
	ExtraPersonFeeCentavos *int64  `json:"extra_person_fee_centavos,omitempty" binding:"omitempty,min=0"`
	PoolAccess             *bool   `json:"pool_access,omitempty"`
	MaxStayHours           *int    `json:"max_stay_hours,omitempty" binding:"omitempty,min=0"`
}
