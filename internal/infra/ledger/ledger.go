package ledger

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"savor-sync/internal/domain/auth"
	"savor-sync/internal/domain/reservation"
	"savor-sync/internal/infra"
	"savor-sync/internal/infra/converter"
	"savor-sync/internal/infra/kvstore"
	"savor-sync/internal/pkg/errs"
)

const (
	GuestKey         = "localGuestReservations"
	AuthenticatedKey = "localAuthenticatedReservations"
)

// Ledger is an append-only log per actor class, stored as one JSON array per
// key. Appends are serialized within the process; concurrent writers from
// other processes are not supported.
type Ledger struct {
	mu     sync.Mutex
	store  kvstore.Store
	logger *slog.Logger
}

func NewLedger(store kvstore.Store, logger *slog.Logger) *Ledger {
	return &Ledger{store: store, logger: logger}
}

func keyFor(partition auth.ActorClass) (string, error) {
	switch partition {
	case auth.ActorGuest:
		return GuestKey, nil
	case auth.ActorAuthenticated:
		return AuthenticatedKey, nil
	default:
		return "", auth.ErrInvalidActorClass
	}
}

func (l *Ledger) Append(ctx context.Context, partition auth.ActorClass, r reservation.Reservation) error {
	key, err := keyFor(partition)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.load(ctx, key)
	if err != nil {
		return err
	}
	records = append(records, converter.DomainToRecord(r))

	body, err := json.Marshal(records)
	if err != nil {
		return infra.WrapErr(l.logger, infra.KindStorage, "encode ledger partition", err, errs.ErrStorageFailure)
	}
	if err := l.store.Set(ctx, key, string(body)); err != nil {
		return infra.WrapErr(l.logger, infra.KindStorage, "write ledger partition", err, errs.ErrStorageFailure)
	}
	return nil
}

// ReadAll returns the partition in insertion order. A missing key is an empty partition.
func (l *Ledger) ReadAll(ctx context.Context, partition auth.ActorClass) ([]reservation.Reservation, error) {
	key, err := keyFor(partition)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	records, err := l.load(ctx, key)
	l.mu.Unlock()
	if err != nil {
		return nil, err
	}

	out, err := converter.RecordsToDomain(records)
	if err != nil {
		return nil, infra.WrapErr(l.logger, infra.KindMalformed, "convert ledger records", err, errs.ErrStorageFailure)
	}
	return out, nil
}

func (l *Ledger) load(ctx context.Context, key string) ([]converter.Record, error) {
	raw, ok, err := l.store.Get(ctx, key)
	if err != nil {
		return nil, infra.WrapErr(l.logger, infra.KindStorage, "read ledger partition", err, errs.ErrStorageFailure)
	}
	if !ok || raw == "" || raw == "null" {
		return []converter.Record{}, nil
	}

	var records []converter.Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, infra.WrapErr(l.logger, infra.KindMalformed, "decode ledger partition "+key, err, errs.ErrStorageFailure)
	}
	if records == nil {
		records = []converter.Record{}
	}
	return records, nil
}
