package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"savor-sync/internal/domain/auth"
	"savor-sync/internal/domain/reservation"
	"savor-sync/internal/domain/store"
	"savor-sync/internal/infra"
	"savor-sync/internal/infra/kvstore"
	"savor-sync/internal/pkg/errs"
	"savor-sync/internal/usecase/shared"
)

const (
	KeyToken            = "token"
	KeyUserID           = "userId"
	KeyIsGuest          = "isGuest"
	KeyGuestSessionID   = "guestSessionId"
	KeyGuestContactInfo = "guestContactInfo"
	KeyIsStoreOwnerMode = "isStoreOwnerMode"
	KeyHasStore         = "hasStore"
	KeyStoreInfo        = "storeInfo"
)

// Store keeps the auth, session and owner-mode keys in device storage.
type Store struct {
	kv     kvstore.Store
	logger *slog.Logger
}

func NewStore(kv kvstore.Store, logger *slog.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

type contactRecord struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone"`
}

func (s *Store) Load(ctx context.Context) (shared.Session, error) {
	var (
		sess shared.Session
		err  error
	)
	if sess.Token, err = s.get(ctx, KeyToken); err != nil {
		return shared.Session{}, err
	}
	if sess.UserID, err = s.get(ctx, KeyUserID); err != nil {
		return shared.Session{}, err
	}
	if sess.IsGuest, err = s.getBool(ctx, KeyIsGuest); err != nil {
		return shared.Session{}, err
	}
	if sess.GuestSessionID, err = s.get(ctx, KeyGuestSessionID); err != nil {
		return shared.Session{}, err
	}
	return sess, nil
}

// Token implements the local credential source.
func (s *Store) Token(ctx context.Context) (string, bool) {
	token, err := s.get(ctx, KeyToken)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// GuestSessionID is sent by the gateway as the guest session cookie.
func (s *Store) GuestSessionID(ctx context.Context) (string, bool) {
	id, err := s.get(ctx, KeyGuestSessionID)
	if err != nil || id == "" {
		return "", false
	}
	return id, true
}

func (s *Store) SaveLogin(ctx context.Context, creds auth.SessionCredentials) error {
	if err := s.set(ctx, KeyToken, creds.Token()); err != nil {
		return err
	}
	if err := s.set(ctx, KeyUserID, creds.UserID()); err != nil {
		return err
	}
	return s.set(ctx, KeyIsGuest, strconv.FormatBool(false))
}

func (s *Store) SaveUserID(ctx context.Context, userID string) error {
	if err := s.set(ctx, KeyUserID, userID); err != nil {
		return err
	}
	return s.set(ctx, KeyIsGuest, strconv.FormatBool(false))
}

// SaveGuest removes the signed-in identity and marks the device as a guest.
func (s *Store) SaveGuest(ctx context.Context, guestSessionID string) error {
	if err := s.del(ctx, KeyToken, KeyUserID); err != nil {
		return err
	}
	if err := s.set(ctx, KeyGuestSessionID, guestSessionID); err != nil {
		return err
	}
	return s.set(ctx, KeyIsGuest, strconv.FormatBool(true))
}

// Clear signs out. The guest marker and cached guest contact stay so a later
// guest session keeps its history.
func (s *Store) Clear(ctx context.Context) error {
	return s.del(ctx, KeyToken, KeyUserID, KeyIsGuest)
}

func (s *Store) GuestContact(ctx context.Context) (reservation.ContactInfo, bool, error) {
	raw, err := s.get(ctx, KeyGuestContactInfo)
	if err != nil {
		return reservation.ContactInfo{}, false, err
	}
	if raw == "" {
		return reservation.ContactInfo{}, false, nil
	}
	var rec contactRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return reservation.ContactInfo{}, false, infra.WrapErr(s.logger, infra.KindMalformed, "decode guest contact", err, errs.ErrStorageFailure)
	}
	return reservation.ContactInfo{Name: rec.Name, Email: rec.Email, Phone: rec.Phone}, true, nil
}

func (s *Store) SaveGuestContact(ctx context.Context, contact reservation.ContactInfo) error {
	c := contact.Normalized()
	body, err := json.Marshal(contactRecord{Name: c.Name, Email: c.Email, Phone: c.Phone})
	if err != nil {
		return infra.WrapErr(s.logger, infra.KindStorage, "encode guest contact", err, errs.ErrStorageFailure)
	}
	return s.set(ctx, KeyGuestContactInfo, string(body))
}

func (s *Store) LoadOwnerState(ctx context.Context) (store.OwnerState, error) {
	var (
		state store.OwnerState
		err   error
	)
	if state.IsStoreOwnerMode, err = s.getBool(ctx, KeyIsStoreOwnerMode); err != nil {
		return store.OwnerState{}, err
	}
	if state.HasStore, err = s.getBool(ctx, KeyHasStore); err != nil {
		return store.OwnerState{}, err
	}
	raw, err := s.get(ctx, KeyStoreInfo)
	if err != nil {
		return store.OwnerState{}, err
	}
	if raw != "" && raw != "null" {
		var info store.Info
		if err := json.Unmarshal([]byte(raw), &info); err != nil {
			s.logger.Warn("discarding unreadable cached store info", "error", err)
		} else {
			state.StoreInfo = &info
		}
	}
	return state, nil
}

func (s *Store) SaveOwnerState(ctx context.Context, state store.OwnerState) error {
	if err := s.set(ctx, KeyIsStoreOwnerMode, strconv.FormatBool(state.IsStoreOwnerMode)); err != nil {
		return err
	}
	if err := s.set(ctx, KeyHasStore, strconv.FormatBool(state.HasStore)); err != nil {
		return err
	}
	if state.StoreInfo == nil {
		return s.del(ctx, KeyStoreInfo)
	}
	body, err := json.Marshal(state.StoreInfo)
	if err != nil {
		return infra.WrapErr(s.logger, infra.KindStorage, "encode store info", err, errs.ErrStorageFailure)
	}
	return s.set(ctx, KeyStoreInfo, string(body))
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	v, _, err := s.kv.Get(ctx, key)
	if err != nil {
		return "", infra.WrapErr(s.logger, infra.KindStorage, "read "+key, err, errs.ErrStorageFailure)
	}
	return v, nil
}

func (s *Store) getBool(ctx context.Context, key string) (bool, error) {
	v, err := s.get(ctx, key)
	if err != nil || v == "" {
		return false, err
	}
	b, parseErr := strconv.ParseBool(v)
	if parseErr != nil {
		s.logger.Warn("treating unreadable flag as false", "key", key, "value", v)
		return false, nil
	}
	return b, nil
}

func (s *Store) set(ctx context.Context, key, value string) error {
	if err := s.kv.Set(ctx, key, value); err != nil {
		return infra.WrapErr(s.logger, infra.KindStorage, "write "+key, err, errs.ErrStorageFailure)
	}
	return nil
}

func (s *Store) del(ctx context.Context, keys ...string) error {
	if err := s.kv.Delete(ctx, keys...); err != nil {
		return infra.WrapErr(s.logger, infra.KindStorage, "delete session keys", err, errs.ErrStorageFailure)
	}
	return nil
}
