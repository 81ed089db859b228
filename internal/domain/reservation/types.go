package reservation

import (
	"errors"
	"strings"
)

var ErrIllegalTransition = errors.New("illegal status transition")

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
	StatusPickedUp  Status = "picked_up"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusExpired, StatusPickedUp:
		return true
	default:
		return false
	}
}

// NormalizeStatus folds backend spelling variants. Unknown values are kept
// lowercased so they still render; IsValid reports false for them.
func NormalizeStatus(s string) Status {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "canceled":
		return StatusCancelled
	case "picked-up", "pickedup", "picked up":
		return StatusPickedUp
	case "":
		return StatusPending
	}
	return Status(v)
}

func ParseStatus(s string) (Status, error) {
	st := NormalizeStatus(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// AllowedTransitions is the full lifecycle. Statuses with no entry are terminal.
var AllowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusExpired, StatusPickedUp},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusExpired, StatusPickedUp},
}

func CanTransition(from, to Status) bool {
	for _, allowed := range AllowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusPickedUp, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// ValidateClientTransition enforces that the device only ever writes picked_up.
// Every other status is set by the backend and is read-only here.
func ValidateClientTransition(from, to Status) error {
	if to != StatusPickedUp {
		return ErrIllegalTransition
	}
	if !CanTransition(from, to) {
		return ErrIllegalTransition
	}
	return nil
}

// OwnerStatus is the store-owner projection of Status.
type OwnerStatus string

const (
	OwnerStatusActive   OwnerStatus = "active"
	OwnerStatusPickedUp OwnerStatus = "picked_up"
	OwnerStatusClosed   OwnerStatus = "closed"
)

func (s Status) OwnerView() OwnerStatus {
	switch s {
	case StatusPending, StatusConfirmed:
		return OwnerStatusActive
	case StatusPickedUp:
		return OwnerStatusPickedUp
	default:
		return OwnerStatusClosed
	}
}

var ownerTransitions = map[OwnerStatus]OwnerStatus{
	OwnerStatusActive: OwnerStatusPickedUp,
}

func CanOwnerTransition(from, to OwnerStatus) bool {
	next, ok := ownerTransitions[from]
	return ok && next == to
}

// SyncState tells confirmed records apart from ones only this device has.
type SyncState string

const (
	SyncConfirmed        SyncState = "confirmed"
	SyncPendingLocalOnly SyncState = "pending_local_only"
	// SyncDeleted marks a ledger tombstone left after a confirmed cancel.
	SyncDeleted SyncState = "deleted"
)

func (s SyncState) String() string {
	return string(s)
}
