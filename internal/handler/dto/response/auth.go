package response

import (
	"savor-sync/internal/domain/store"
	"savor-sync/internal/usecase/queries"
)

type OwnerStateResponse struct {
	IsStoreOwnerMode bool        `json:"isStoreOwnerMode"`
	HasStore         bool        `json:"hasStore"`
	StoreInfo        *store.Info `json:"storeInfo,omitempty"`
}

type OwnershipResponse struct {
	HasStore  bool        `json:"hasStore"`
	StoreInfo *store.Info `json:"storeInfo,omitempty"`
}

type SessionResponse struct {
	Actor          string             `json:"actor"`
	UserID         string             `json:"userId,omitempty"`
	IsGuest        bool               `json:"isGuest"`
	HasCredential  bool               `json:"hasCredential"`
	GuestSessionID string             `json:"guestSessionId,omitempty"`
	Owner          OwnerStateResponse `json:"owner"`
}

type GuestSessionResponse struct {
	GuestSessionID string `json:"guestSessionId"`
}

func FromOwnerState(s store.OwnerState) OwnerStateResponse {
	return OwnerStateResponse{
		IsStoreOwnerMode: s.IsStoreOwnerMode,
		HasStore:         s.HasStore,
		StoreInfo:        s.StoreInfo,
	}
}

func FromOwnership(o store.Ownership) OwnershipResponse {
	return OwnershipResponse{
		HasStore:  o.HasStore,
		StoreInfo: o.StoreInfo,
	}
}

func FromSessionView(v *queries.SessionView) *SessionResponse {
	return &SessionResponse{
		Actor:          v.Actor.String(),
		UserID:         v.UserID,
		IsGuest:        v.IsGuest,
		HasCredential:  v.HasCredential,
		GuestSessionID: v.GuestSessionID,
		Owner:          FromOwnerState(v.Owner),
	}
}
