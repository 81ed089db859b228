package components

import (
	"savor-sync/internal/domain/reservation"
	"savor-sync/internal/pkg/clock"
	"savor-sync/internal/usecase/commands"
	"savor-sync/internal/usecase/credentials"
	"savor-sync/internal/usecase/ownership"
	"savor-sync/internal/usecase/queries"
	"savor-sync/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
	fx.Annotate(
		credentials.NewResolver,
		fx.As(new(shared.CredentialResolver)),
	),
	ownership.NewGate,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewSessionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewSessionQueries,
	),
)
