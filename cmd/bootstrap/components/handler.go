package components

import (
	"resort-booking/internal/handler"
	"resort-booking/internal/handler/api"
	"resort-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAccommodationHandler,
		api.NewBlockedRangeHandler,
		api.NewRateHandler,
		api.NewQuoteHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	accommodation *api.AccommodationHandler,
	blockedRange *api.BlockedRangeHandler,
	rate *api.RateHandler,
	quote *api.QuoteHandler,
	reservation *api.ReservationHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:          auth,
		Accommodation: accommodation,
		BlockedRange:  blockedRange,
		Rate:          rate,
		Quote:         quote,
		Reservation:   reservation,
	}
}
