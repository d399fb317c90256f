package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"resort-booking/internal/usecase/queries"
)

type ReservationResponse struct {
	ID                         uuid.UUID `json:"id"`
	AccommodationID            uuid.UUID `json:"accommodationId"`
	AccommodationName          string    `json:"accommodationName"`
	GuestName                  string    `json:"guestName"`
	GuestEmail                 *string   `json:"guestEmail,omitempty"`
	GuestPhone                 *string   `json:"guestPhone,omitempty"`
	StartsAt                   time.Time `json:"startsAt"`
	EndsAt                     time.Time `json:"endsAt"`
	TourMode                   *string   `json:"tourMode,omitempty"`
	GuestCount                 int32     `json:"guestCount"`
	GuestCountDerived          bool      `json:"guestCountDerived"`
	AdultCount                 int32     `json:"adultCount"`
	ChildCount                 int32     `json:"childCount"`
	PwdSeniorCount             int32     `json:"pwdSeniorCount"`
	AccommodationTotalCentavos int64     `json:"accommodationTotalCentavos"`
	AdultAmountCentavos        int64     `json:"adultAmountCentavos"`
	ChildAmountCentavos        int64     `json:"childAmountCentavos"`
	PwdSeniorAmountCentavos    int64     `json:"pwdSeniorAmountCentavos"`
	EntranceTotalCentavos      int64     `json:"entranceTotalCentavos"`
	ExtraPersonFeeCentavos     int64     `json:"extraPersonFeeCentavos"`
	TotalCentavos              int64     `json:"totalCentavos"`
	MinimumPayableCentavos     int64     `json:"minimumPayableCentavos"`
	Status                     string    `json:"status"`
	Note                       *string   `json:"note,omitempty"`
	CreatedAt                  time.Time `json:"createdAt"`
	UpdatedAt                  time.Time `json:"updatedAt"`
}

type ReservationListItemResponse struct {
	ID                uuid.UUID `json:"id"`
	AccommodationID   uuid.UUID `json:"accommodationId"`
	AccommodationName string    `json:"accommodationName"`
	GuestName         string    `json:"guestName"`
	StartsAt          time.Time `json:"startsAt"`
	EndsAt            time.Time `json:"endsAt"`
	Status            string    `json:"status"`
	TotalCentavos     int64     `json:"totalCentavos"`
	CreatedAt         time.Time `json:"createdAt"`
}

type ReservationListResponse struct {
	Items      []*ReservationListItemResponse `json:"items"`
	NextCursor *string                        `json:"nextCursor,omitempty"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromReservationPage(items []*queries.ReservationListItem, next *queries.Cursor) *ReservationListResponse {
	resp := &ReservationListResponse{
		Items: make([]*ReservationListItemResponse, len(items)),
	}
	for i, item := range items {
		var r ReservationListItemResponse
		_ = copier.Copy(&r, item)
		resp.Items[i] = &r
	}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}
