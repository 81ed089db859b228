package queries

import (
	"context"
	"log/slog"

	"savor-sync/internal/domain/auth"
	"savor-sync/internal/domain/reservation"
	"savor-sync/internal/pkg/errs"
	"savor-sync/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

// GroupedView splits the merged list for display. Slices are never nil.
type GroupedView struct {
	Current      []reservation.Reservation
	Past         []reservation.Reservation
	CurrentCount int
	PastCount    int
}

type ReservationQueries interface {
	List(ctx context.Context, actor auth.ActorClass) ([]reservation.Reservation, error)
	ListGrouped(ctx context.Context, actor auth.ActorClass) (*GroupedView, error)
}

type reservationQueriesImpl struct {
	gateway  shared.ReservationGateway
	ledger   shared.ReservationLedger
	resolver shared.CredentialResolver
	logger   *slog.Logger
}

func NewReservationQueries(
	gateway shared.ReservationGateway,
	ledger shared.ReservationLedger,
	resolver shared.CredentialResolver,
	logger *slog.Logger,
) ReservationQueries {
	return &reservationQueriesImpl{
		gateway:  gateway,
		ledger:   ledger,
		resolver: resolver,
		logger:   logger,
	}
}

// List merges the remote list with the actor's ledger partition. Both sources
// are read concurrently and either may fail without failing the call.
func (q *reservationQueriesImpl) List(ctx context.Context, actor auth.ActorClass) ([]reservation.Reservation, error) {
	if !actor.IsValid() {
		return nil, errs.Mark(auth.ErrInvalidActorClass, errs.ErrInvalidRequest)
	}

	var (
		remote []reservation.Reservation
		local  []reservation.Reservation
		g      errgroup.Group
	)
	g.Go(func() error {
		remote = q.fetchRemote(ctx, actor)
		return nil
	})
	g.Go(func() error {
		local = q.readLocal(ctx, actor)
		return nil
	})
	_ = g.Wait()

	return reservation.Merge(remote, local), nil
}

func (q *reservationQueriesImpl) ListGrouped(ctx context.Context, actor auth.ActorClass) (*GroupedView, error) {
	merged, err := q.List(ctx, actor)
	if err != nil {
		return nil, err
	}
	current, past := reservation.Group(merged)
	return &GroupedView{
		Current:      current,
		Past:         past,
		CurrentCount: len(current),
		PastCount:    len(past),
	}, nil
}

func (q *reservationQueriesImpl) fetchRemote(ctx context.Context, actor auth.ActorClass) []reservation.Reservation {
	var (
		list shared.RemoteReservations
		err  error
	)
	switch actor {
	case auth.ActorAuthenticated:
		cred, ok := q.resolver.Resolve(ctx)
		if !ok {
			q.logger.Debug("no credential for remote list, showing local reservations only")
			return nil
		}
		list, err = q.gateway.ListAuthenticated(ctx, cred)
	default:
		list, err = q.gateway.ListGuest(ctx)
	}
	if err != nil {
		q.logger.Warn("remote reservation list unavailable", "actor", actor.String(), "error", err)
		return nil
	}
	return list.All()
}

func (q *reservationQueriesImpl) readLocal(ctx context.Context, actor auth.ActorClass) []reservation.Reservation {
	local, err := q.ledger.ReadAll(ctx, actor)
	if err != nil {
		q.logger.Warn("local reservation ledger unreadable", "actor", actor.String(), "error", err)
		return nil
	}
	return local
}
