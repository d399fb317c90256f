package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"resort-booking/internal/usecase/queries"
)

type BlockedRangeResponse struct {
	ID                uuid.UUID  `json:"id"`
	AccommodationID   *uuid.UUID `json:"accommodationId,omitempty"`
	AccommodationName *string    `json:"accommodationName,omitempty"`
	ReservationID     *uuid.UUID `json:"reservationId,omitempty"`
	StartsAt          time.Time  `json:"startsAt"`
	EndsAt            time.Time  `json:"endsAt"`
	Reason            string     `json:"reason"`
	IsFromReservation bool       `json:"isFromReservation"`
	CreatedAt         time.Time  `json:"createdAt"`
}

func FromBlockedRangeView(view *queries.BlockedRangeView) *BlockedRangeResponse {
	var resp BlockedRangeResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBlockedRangeViews(views []*queries.BlockedRangeView) []*BlockedRangeResponse {
	resp := make([]*BlockedRangeResponse, len(views))
	for i, v := range views {
		resp[i] = FromBlockedRangeView(v)
	}
	return resp
}
