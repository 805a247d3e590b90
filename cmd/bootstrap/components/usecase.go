package components

import (
	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/usecase"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseAuthModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewSettingsCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewDashboardQueries,
		queries.NewSettingsQueries,
	),
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		usecase.NewAuthUseCase,
	),
)
