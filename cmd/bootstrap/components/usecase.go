package components

import (
	"guidely/internal/pkg/config"
	"guidely/internal/usecase"
	"guidely/internal/usecase/commands"
	"guidely/internal/usecase/queries"
	"guidely/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) config.BookingConfig {
		return cfg.Booking
	},
	shared.NewSlotPlanner,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewAvailabilityUseCase,
		commands.NewServiceUseCase,
		commands.NewSweeperUseCase,
		commands.NewPaymentUseCase,
		// reads reconcile through the same sweeper the scheduler runs
		func(s commands.SweepCommands) queries.StatusReconciler { return s },
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewServiceQueries,
		queries.NewUserQueries,
		queries.NewRatingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
