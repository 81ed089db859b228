package components

import (
	"savor-sync/internal/handler"
	"savor-sync/internal/handler/api"
	"savor-sync/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSessionHandler,
		api.NewReservationHandler,
		api.NewOwnerHandler,
		middleware.NewActorMiddleware,
		func(s *api.SessionHandler, r *api.ReservationHandler, o *api.OwnerHandler) handler.Handlers {
			return handler.Handlers{Session: s, Reservation: r, Owner: o}
		},
	),
	fx.Invoke(handler.NewRouter),
)
