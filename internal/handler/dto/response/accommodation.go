package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"resort-booking/internal/usecase/queries"
)

type AccommodationTypeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Overnight bool      `json:"overnight"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AccommodationResponse struct {
	ID                     uuid.UUID `json:"id"`
	TypeID                 uuid.UUID `json:"typeId"`
	TypeName               string    `json:"typeName"`
	TypeSlug               string    `json:"typeSlug"`
	Name                   string    `json:"name"`
	Slug                   string    `json:"slug"`
	DayPriceCentavos       int64     `json:"dayPriceCentavos"`
	NightPriceCentavos     int64     `json:"nightPriceCentavos"`
	Capacity               int32     `json:"capacity"`
	ExtraPersonFeeCentavos int64     `json:"extraPersonFeeCentavos"`
	PoolAccess             bool      `json:"poolAccess"`
	MaxStayHours           int32     `json:"maxStayHours"`
	Overnight              bool      `json:"overnight"`
	Archived               bool      `json:"archived"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

func FromAccommodationTypeView(view *queries.AccommodationTypeView) *AccommodationTypeResponse {
	var resp AccommodationTypeResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromAccommodationView(view *queries.AccommodationView) *AccommodationResponse {
	var resp AccommodationResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromAccommodationViews(views []*queries.AccommodationView) []*AccommodationResponse {
	resp := make([]*AccommodationResponse, len(views))
	for i, v := range views {
		resp[i] = FromAccommodationView(v)
	}
	return resp
}

func FromAccommodationTypeViews(views []*queries.AccommodationTypeView) []*AccommodationTypeResponse {
	resp := make([]*AccommodationTypeResponse, len(views))
	for i, v := range views {
		resp[i] = FromAccommodationTypeView(v)
	}
	return resp
}
