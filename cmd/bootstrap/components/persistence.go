package components

import (
	"resort-booking/internal/infra/readstore"
	"resort-booking/internal/infra/repository"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewAccommodationReadStore,
			fx.As(new(queries.AccommodationReadStore)),
		),
		fx.Annotate(
			readstore.NewRateReadStore,
			fx.As(new(queries.RateReadStore)),
		),
		fx.Annotate(
			readstore.NewBlockedRangeReadStore,
			fx.As(new(queries.BlockedRangeReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		// The accommodation and blocked-range repositories double as the
		// quote resolver's loaders; one instance backs both interfaces.
		fx.Annotate(
			repository.NewAccommodationRepository,
			fx.As(new(commands.AccommodationRepository)),
			fx.As(new(queries.AccommodationLoader)),
		),
		fx.Annotate(
			repository.NewBlockedRangeRepository,
			fx.As(new(commands.BlockedRangeRepository)),
			fx.As(new(queries.BlockedRangeLoader)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewRateRepository,
			fx.As(new(commands.RateRepository)),
		),
	),
)
