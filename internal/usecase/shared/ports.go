package shared

import (
	"context"
	"time"

	"savor-sync/internal/domain/auth"
	"savor-sync/internal/domain/reservation"
	"savor-sync/internal/domain/store"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports_mock.go -package=sharedmock

// ReservationGateway talks to the backend. It never retries and never falls back.
type ReservationGateway interface {
	CreateGuest(ctx context.Context, req reservation.CreateRequest) (reservation.Reservation, error)
	CreateAuthenticated(ctx context.Context, req reservation.CreateRequest, cred auth.Credential) (reservation.Reservation, error)
	ListGuest(ctx context.Context) (RemoteReservations, error)
	ListAuthenticated(ctx context.Context, cred auth.Credential) (RemoteReservations, error)
	UpdateStatus(ctx context.Context, id string, status reservation.Status, cred auth.Credential) (reservation.Reservation, error)
	DeleteGuest(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, cred auth.Credential) error
}

type StoreGateway interface {
	MyStore(ctx context.Context, cred auth.Credential) (store.Ownership, error)
}

// ReservationLedger is the device-local append log, one partition per actor class.
type ReservationLedger interface {
	Append(ctx context.Context, partition auth.ActorClass, r reservation.Reservation) error
	ReadAll(ctx context.Context, partition auth.ActorClass) ([]reservation.Reservation, error)
}

// CredentialResolver reports ok=false when no credential could be obtained.
// That outcome is a normal state, not an error.
type CredentialResolver interface {
	Resolve(ctx context.Context) (auth.Credential, bool)
}

type Session struct {
	Token          string
	UserID         string
	IsGuest        bool
	GuestSessionID string
}

func (s Session) IsAuthenticated() bool {
	return s.Token != "" && !s.IsGuest
}

type SessionStore interface {
	Load(ctx context.Context) (Session, error)
	SaveLogin(ctx context.Context, creds auth.SessionCredentials) error
	SaveGuest(ctx context.Context, guestSessionID string) error
	SaveUserID(ctx context.Context, userID string) error
	Clear(ctx context.Context) error
	GuestContact(ctx context.Context) (reservation.ContactInfo, bool, error)
	SaveGuestContact(ctx context.Context, contact reservation.ContactInfo) error
}

type OwnerStateStore interface {
	LoadOwnerState(ctx context.Context) (store.OwnerState, error)
	SaveOwnerState(ctx context.Context, state store.OwnerState) error
}

type EventType string

const (
	EventReservationCreated       EventType = "reservation.created"
	EventReservationQueuedLocally EventType = "reservation.queued_locally"
	EventReservationResynced      EventType = "reservation.resynced"
	EventReservationStatusChanged EventType = "reservation.status_changed"
	EventReservationDeleted       EventType = "reservation.deleted"
	EventOwnerModeChanged         EventType = "owner_mode.changed"
)

type Event struct {
	Type          EventType         `json:"type"`
	ReservationID string            `json:"reservationId,omitempty"`
	Actor         auth.ActorClass   `json:"actor,omitempty"`
	Status        string            `json:"status,omitempty"`
	SyncState     string            `json:"syncState,omitempty"`
	Attributes    map[string]string `json:"attributes,omitempty"`
	OccurredAt    time.Time         `json:"occurredAt"`
}

// EventPublisher failures are logged by callers and never fail an operation.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
