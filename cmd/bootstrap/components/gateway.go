package components

import (
	"savor-sync/internal/infra/gateway"
	"savor-sync/internal/infra/session"
	"savor-sync/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		func(s *session.Store) gateway.GuestSessionSource { return s },
		gateway.NewClient,
		fx.Annotate(
			gateway.NewReservationGateway,
			fx.As(new(shared.ReservationGateway)),
		),
		fx.Annotate(
			gateway.NewStoreGateway,
			fx.As(new(shared.StoreGateway)),
		),
	),
)
