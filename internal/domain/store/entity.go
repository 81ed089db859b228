package store

// Info is the store-info payload returned by the ownership endpoint. It is kept
// as received so the owner UI can render it without another round trip.
type Info struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address,omitempty"`
	ImageURL  string   `json:"imageUrl,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Ownership is the result of an ownership check.
type Ownership struct {
	HasStore  bool
	StoreInfo *Info
}

func NoStore() Ownership {
	return Ownership{}
}

func Owns(info Info) Ownership {
	return Ownership{HasStore: true, StoreInfo: &info}
}

// OwnerState is the persisted owner-mode flag with its cached ownership.
type OwnerState struct {
	IsStoreOwnerMode bool
	HasStore         bool
	StoreInfo        *Info
}

// Reset returns the state a guest or signed-out actor must have.
func Reset() OwnerState {
	return OwnerState{}
}

// CanEnterOwnerMode reports whether cached ownership allows entering owner mode.
func (s OwnerState) CanEnterOwnerMode() bool {
	return s.HasStore
}

func (s OwnerState) WithOwnership(o Ownership) OwnerState {
	s.HasStore = o.HasStore
	s.StoreInfo = o.StoreInfo
	if !o.HasStore {
		s.IsStoreOwnerMode = false
	}
	return s
}
