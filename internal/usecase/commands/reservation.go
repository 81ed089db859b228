package commands

import (
	"context"
	"log/slog"

	"savor-sync/internal/domain/auth"
	"savor-sync/internal/domain/reservation"
	"savor-sync/internal/pkg/clock"
	"savor-sync/internal/pkg/errs"
	"savor-sync/internal/usecase/ownership"
	"savor-sync/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

type ResyncResult struct {
	Attempted int
	Synced    []reservation.Reservation
	Remaining []reservation.Reservation
}

type ReservationCommands interface {
	Create(ctx context.Context, req reservation.CreateRequest, actor auth.ActorClass) (reservation.Reservation, error)
	TransitionStatus(ctx context.Context, id string, from, to reservation.Status) (reservation.Reservation, error)
	Delete(ctx context.Context, id string, actor auth.ActorClass) error
	Resync(ctx context.Context, actor auth.ActorClass) (*ResyncResult, error)
}

type reservationCommandsImpl struct {
	gateway   shared.ReservationGateway
	ledger    shared.ReservationLedger
	resolver  shared.CredentialResolver
	sessions  shared.SessionStore
	gate      ownership.Gate
	publisher shared.EventPublisher
	factory   *reservation.Factory
	clock     clock.Clock
	logger    *slog.Logger
}

func NewReservationCommands(
	gateway shared.ReservationGateway,
	ledger shared.ReservationLedger,
	resolver shared.CredentialResolver,
	sessions shared.SessionStore,
	gate ownership.Gate,
	publisher shared.EventPublisher,
	factory *reservation.Factory,
	clock clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		gateway:   gateway,
		ledger:    ledger,
		resolver:  resolver,
		sessions:  sessions,
		gate:      gate,
		publisher: publisher,
		factory:   factory,
		clock:     clock,
		logger:    logger,
	}
}

// Create returns a reservation for every valid request. When the backend does
// not accept the write, the returned record is synthesized and queued on the
// device. Only invalid input and a missing credential are reported as errors.
func (c *reservationCommandsImpl) Create(ctx context.Context, req reservation.CreateRequest, actor auth.ActorClass) (reservation.Reservation, error) {
	if !actor.IsValid() {
		return reservation.Reservation{}, errs.Mark(auth.ErrInvalidActorClass, errs.ErrInvalidRequest)
	}

	req = req.Normalized()
	if actor == auth.ActorGuest && req.Contact.HasBlankField() {
		req.Contact = c.fillGuestContact(ctx, req.Contact)
	}
	if err := req.Contact.Validate(); err != nil {
		return reservation.Reservation{}, errs.Mark(err, errs.ErrInvalidContactInfo)
	}
	if err := req.Validate(); err != nil {
		return reservation.Reservation{}, errs.Mark(err, errs.ErrInvalidRequest)
	}
	if req.ClientRequestID == "" {
		req.ClientRequestID = uuid.NewString()
	}

	var (
		created   reservation.Reservation
		remoteErr error
		userID    string
	)
	switch actor {
	case auth.ActorAuthenticated:
		cred, ok := c.resolver.Resolve(ctx)
		if !ok {
			return reservation.Reservation{}, errs.ErrUnauthenticated
		}
		userID = c.sessionUserID(ctx)
		created, remoteErr = c.gateway.CreateAuthenticated(ctx, req, cred)
	default:
		created, remoteErr = c.gateway.CreateGuest(ctx, req)
	}

	if remoteErr != nil {
		return c.queueLocally(ctx, req, actor, userID, remoteErr)
	}

	created = created.Confirmed()
	if created.ClientRequestID == "" {
		created.ClientRequestID = req.ClientRequestID
	}
	if err := c.ledger.Append(ctx, actor, created); err != nil {
		c.logger.Error("failed to cache confirmed reservation", "reservation_id", created.ID, "error", err)
	}
	if actor == auth.ActorGuest {
		if err := c.sessions.SaveGuestContact(ctx, req.Contact); err != nil {
			c.logger.Warn("failed to cache guest contact info", "error", err)
		}
	}
	c.publish(ctx, shared.EventReservationCreated, actor, created)
	return created, nil
}

func (c *reservationCommandsImpl) queueLocally(ctx context.Context, req reservation.CreateRequest, actor auth.ActorClass, userID string, cause error) (reservation.Reservation, error) {
	c.logger.Warn("remote create failed, queueing reservation locally",
		"actor", actor.String(),
		"client_request_id", req.ClientRequestID,
		"error", cause,
	)

	local, err := c.factory.NewLocalReservation(req, userID)
	if err != nil {
		return reservation.Reservation{}, errs.Mark(err, errs.ErrInvalidRequest)
	}
	if err := c.ledger.Append(ctx, actor, local); err != nil {
		c.logger.Error("failed to persist locally queued reservation",
			"reservation_id", local.ID,
			"error", errs.Mark(err, errs.ErrStorageFailure),
		)
	}
	if actor == auth.ActorGuest {
		if err := c.sessions.SaveGuestContact(ctx, req.Contact); err != nil {
			c.logger.Warn("failed to cache guest contact info", "error", err)
		}
	}
	c.publish(ctx, shared.EventReservationQueuedLocally, actor, local)
	return local, nil
}

// TransitionStatus is the owner-side write. Failures are surfaced because
// there is no local fallback for a status change.
func (c *reservationCommandsImpl) TransitionStatus(ctx context.Context, id string, from, to reservation.Status) (reservation.Reservation, error) {
	if err := c.gate.RequireOwnerMode(ctx); err != nil {
		return reservation.Reservation{}, err
	}
	if id == "" {
		return reservation.Reservation{}, errs.Mark(errs.New("reservation id is required"), errs.ErrInvalidRequest)
	}
	if reservation.IsLocalID(id) {
		return reservation.Reservation{}, errs.ErrLocalOnlyReservation
	}
	if err := reservation.ValidateClientTransition(from, to); err != nil {
		return reservation.Reservation{}, errs.Wrapf(err, "%s -> %s", from, to)
	}

	cred, ok := c.resolver.Resolve(ctx)
	if !ok {
		return reservation.Reservation{}, errs.ErrUnauthenticated
	}

	updated, err := c.gateway.UpdateStatus(ctx, id, to, cred)
	if err != nil {
		return reservation.Reservation{}, errs.Mark(errs.Wrap(err, "update reservation status"), errs.ErrStatusUpdateFailed)
	}
	updated = updated.Confirmed()
	if updated.ID == "" {
		updated.ID = id
	}
	if updated.Status != to {
		c.logger.Warn("backend returned unexpected status after update",
			"reservation_id", id, "requested", to.String(), "returned", updated.Status.String())
	}
	c.publish(ctx, shared.EventReservationStatusChanged, auth.ActorAuthenticated, updated)
	return updated, nil
}

func (c *reservationCommandsImpl) Delete(ctx context.Context, id string, actor auth.ActorClass) error {
	if !actor.IsValid() {
		return errs.Mark(auth.ErrInvalidActorClass, errs.ErrInvalidRequest)
	}
	if id == "" {
		return errs.Mark(errs.New("reservation id is required"), errs.ErrInvalidRequest)
	}
	if reservation.IsLocalID(id) {
		return errs.ErrLocalOnlyReservation
	}

	var err error
	switch actor {
	case auth.ActorAuthenticated:
		cred, ok := c.resolver.Resolve(ctx)
		if !ok {
			return errs.ErrUnauthenticated
		}
		err = c.gateway.Delete(ctx, id, cred)
	default:
		err = c.gateway.DeleteGuest(ctx, id)
	}
	if err != nil {
		return errs.Mark(errs.Wrap(err, "delete reservation"), errs.ErrRemoteWriteFailed)
	}

	tombstone := reservation.Tombstone(id, c.clock.Now().UTC())
	if err := c.ledger.Append(ctx, actor, tombstone); err != nil {
		c.logger.Error("failed to record deleted reservation", "reservation_id", id, "error", err)
	}
	c.publish(ctx, shared.EventReservationDeleted, actor, tombstone)
	return nil
}

// Resync replays local-only records with their original client request id.
// Confirmed copies are appended to the same partition so the merged view
// retires the local record. Replay stops at the first remote failure.
func (c *reservationCommandsImpl) Resync(ctx context.Context, actor auth.ActorClass) (*ResyncResult, error) {
	if !actor.IsValid() {
		return nil, errs.Mark(auth.ErrInvalidActorClass, errs.ErrInvalidRequest)
	}

	records, err := c.ledger.ReadAll(ctx, actor)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read local reservations"), errs.ErrStorageFailure)
	}
	pending := reservation.PendingLocalOnly(reservation.Merge(nil, records))
	result := &ResyncResult{
		Synced:    []reservation.Reservation{},
		Remaining: []reservation.Reservation{},
	}
	if len(pending) == 0 {
		return result, nil
	}

	var cred auth.Credential
	if actor == auth.ActorAuthenticated {
		var ok bool
		if cred, ok = c.resolver.Resolve(ctx); !ok {
			return nil, errs.ErrUnauthenticated
		}
	}

	for i, local := range pending {
		if local.ClientRequestID == "" {
			// cannot be correlated with a remote record
			result.Remaining = append(result.Remaining, local)
			continue
		}

		result.Attempted++
		req := reservation.CreateRequestFrom(local)
		var created reservation.Reservation
		if actor == auth.ActorAuthenticated {
			created, err = c.gateway.CreateAuthenticated(ctx, req, cred)
		} else {
			created, err = c.gateway.CreateGuest(ctx, req)
		}
		if err != nil {
			c.logger.Warn("resync stopped on remote failure", "reservation_id", local.ID, "error", err)
			result.Remaining = append(result.Remaining, pending[i:]...)
			return result, nil
		}

		created = created.Confirmed()
		if created.ClientRequestID == "" {
			created.ClientRequestID = local.ClientRequestID
		}
		if err := c.ledger.Append(ctx, actor, created); err != nil {
			c.logger.Error("failed to record resynced reservation", "reservation_id", created.ID, "error", err)
			result.Remaining = append(result.Remaining, local)
			continue
		}
		result.Synced = append(result.Synced, created)
		c.publish(ctx, shared.EventReservationResynced, actor, created)
	}
	return result, nil
}

func (c *reservationCommandsImpl) fillGuestContact(ctx context.Context, contact reservation.ContactInfo) reservation.ContactInfo {
	cached, ok, err := c.sessions.GuestContact(ctx)
	if err != nil {
		c.logger.Warn("failed to read cached guest contact info", "error", err)
		return contact
	}
	if !ok {
		return contact
	}
	return contact.FillFrom(cached)
}

func (c *reservationCommandsImpl) sessionUserID(ctx context.Context) string {
	session, err := c.sessions.Load(ctx)
	if err != nil {
		c.logger.Warn("failed to read session", "error", err)
		return ""
	}
	return session.UserID
}

func (c *reservationCommandsImpl) publish(ctx context.Context, eventType shared.EventType, actor auth.ActorClass, r reservation.Reservation) {
	event := shared.Event{
		Type:          eventType,
		ReservationID: r.ID,
		Actor:         actor,
		Status:        r.Status.String(),
		SyncState:     r.SyncState.String(),
		OccurredAt:    c.clock.Now().UTC(),
	}
	if err := c.publisher.Publish(ctx, event); err != nil {
		c.logger.Warn("failed to publish reservation event", "type", string(eventType), "error", err)
	}
}
