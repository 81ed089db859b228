package reservation

import (
	"strings"
	"time"
)

const LocalIDPrefix = "local_"

// Reservation is one customer commitment to pick up food, as seen by the device.
// Records arrive from the backend or from the local ledger, so fields are plain data.
type Reservation struct {
	ID              string
	StoreID         string
	StoreName       string
	StoreImage      string
	StoreAddress    string
	StoreLatitude   *float64
	StoreLongitude  *float64
	Quantity        int
	TotalAmount     float64
	OriginalPrice   float64
	DiscountedPrice float64
	Status          Status
	PaymentType     string
	PickupTime      string
	CreatedAt       time.Time
	Contact         ContactInfo
	UserID          string
	ClientRequestID string
	SyncState       SyncState
}

func IsLocalID(id string) bool {
	return strings.HasPrefix(id, LocalIDPrefix)
}

func (r Reservation) IsLocalOnly() bool {
	return r.SyncState == SyncPendingLocalOnly
}

func (r Reservation) IsCurrent() bool {
	return !r.Status.IsTerminal()
}

func (r Reservation) IsTombstone() bool {
	return r.SyncState == SyncDeleted
}

// Tombstone records that id was cancelled on the backend. The ledger is
// append-only, so this entry shadows any earlier copy of the same id.
func Tombstone(id string, at time.Time) Reservation {
	return Reservation{
		ID:        id,
		Status:    StatusCancelled,
		CreatedAt: at,
		SyncState: SyncDeleted,
	}
}

// Confirmed returns a copy tagged as accepted by the backend.
func (r Reservation) Confirmed() Reservation {
	r.SyncState = SyncConfirmed
	return r
}
