package components

import (
	"savor-sync/internal/infra/federated"
	"savor-sync/internal/infra/ledger"
	"savor-sync/internal/infra/session"
	"savor-sync/internal/usecase/commands"
	"savor-sync/internal/usecase/credentials"
	"savor-sync/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	ledgerModule,
	sessionModule,
)

var ledgerModule = fx.Module("persistence/ledger",
	fx.Provide(
		fx.Annotate(
			ledger.NewLedger,
			fx.As(new(shared.ReservationLedger)),
		),
	),
)

var sessionModule = fx.Module("persistence/session",
	fx.Provide(
		session.NewStore,
		func(s *session.Store) shared.SessionStore { return s },
		func(s *session.Store) shared.OwnerStateStore { return s },
		func(s *session.Store) credentials.LocalTokenSource { return s },
		federated.NewSession,
		func(s *federated.Session) credentials.FederatedSource { return s },
		func(s *federated.Session) commands.FederatedSessionWriter { return s },
	),
)
