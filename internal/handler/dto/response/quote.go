package response

import (
	"time"

	"github.com/jinzhu/copier"

	"resort-booking/internal/usecase/queries"
)

// QuoteResponse is the live price breakdown the booking form renders. When
// Available is false only Reason is meaningful.
type QuoteResponse struct {
	Available              bool       `json:"available"`
	Reason                 string     `json:"reason,omitempty"`
	StartsAt               *time.Time `json:"startsAt,omitempty"`
	EndsAt                 *time.Time `json:"endsAt,omitempty"`
	TourMode               *string    `json:"tourMode,omitempty"`
	GuestCount             int32      `json:"guestCount"`
	GuestCountDerived      bool       `json:"guestCountDerived"`
	AccommodationCentavos  int64      `json:"accommodationTotalCentavos"`
	AdultAmountCentavos    int64      `json:"adultAmountCentavos"`
	ChildAmountCentavos    int64      `json:"childAmountCentavos"`
	PwdSeniorAmtCentavos   int64      `json:"pwdSeniorAmountCentavos"`
	EntranceTotalCentavos  int64      `json:"entranceTotalCentavos"`
	ExtraPersonFeeCentavos int64      `json:"extraPersonFeeCentavos"`
	TotalCentavos          int64      `json:"totalCentavos"`
	MinimumPayableCentavos int64      `json:"minimumPayableCentavos"`
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	var resp QuoteResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
