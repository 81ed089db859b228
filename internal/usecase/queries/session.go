package queries

import (
	"context"
	"log/slog"

	"savor-sync/internal/domain/auth"
	"savor-sync/internal/domain/store"
	"savor-sync/internal/pkg/errs"
	"savor-sync/internal/usecase/shared"
)

//go:generate mockgen -source=session.go -destination=../../../tests/mock/queries/session_mock.go -package=queriesmock

type SessionView struct {
	Actor          auth.ActorClass
	UserID         string
	IsGuest        bool
	HasCredential  bool // local session token present
	GuestSessionID string
	Owner          store.OwnerState
}

type SessionQueries interface {
	Current(ctx context.Context) (*SessionView, error)
}

type sessionQueriesImpl struct {
	sessions shared.SessionStore
	owners   shared.OwnerStateStore
	logger   *slog.Logger
}

func NewSessionQueries(
	sessions shared.SessionStore,
	owners shared.OwnerStateStore,
	logger *slog.Logger,
) SessionQueries {
	return &sessionQueriesImpl{
		sessions: sessions,
		owners:   owners,
		logger:   logger,
	}
}

// Current reports the actor class the device is operating as. A federated
// sign-in stores only the user id; a local login also stores the token.
func (q *sessionQueriesImpl) Current(ctx context.Context) (*SessionView, error) {
	session, err := q.sessions.Load(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "load session"), errs.ErrStorageFailure)
	}
	owner, err := q.owners.LoadOwnerState(ctx)
	if err != nil {
		q.logger.Warn("failed to load owner state", "error", err)
		owner = store.Reset()
	}

	view := &SessionView{
		Actor:          auth.ActorGuest,
		UserID:         session.UserID,
		IsGuest:        session.IsGuest,
		GuestSessionID: session.GuestSessionID,
		Owner:          owner,
	}
	if !session.IsGuest && (session.Token != "" || session.UserID != "") {
		view.Actor = auth.ActorAuthenticated
		view.HasCredential = session.Token != ""
	}
	if view.Actor == auth.ActorGuest {
		view.Owner = store.Reset()
	}
	return view, nil
}
