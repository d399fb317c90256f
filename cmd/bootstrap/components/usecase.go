package components

import (
	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/reservation"
	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/usecase"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) booking.Hours {
		return booking.Hours{
			DayStart:   cfg.Booking.DayStartHour,
			DayEnd:     cfg.Booking.DayEndHour,
			NightStart: cfg.Booking.NightStartHour,
			NightEnd:   cfg.Booking.NightEndHour,
		}
	},
	reservation.NewResolver,
	reservation.NewFactory,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewAccommodationQueries,
		queries.NewRateQueries,
		queries.NewBlockedRangeQueries,
		queries.NewReservationQueries,
		queries.NewQuoteQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAccommodationCommands,
		commands.NewRateCommands,
		commands.NewBlockedRangeCommands,
		commands.NewReservationCommands,
	),
)
