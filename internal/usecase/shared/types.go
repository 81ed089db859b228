package shared

import "savor-sync/internal/domain/reservation"

// ListShape records which response shape the backend answered with.
type ListShape string

const (
	ListShapePartitioned ListShape = "partitioned"
	ListShapeFlat        ListShape = "flat"
	ListShapeWrapped     ListShape = "wrapped"
)

// RemoteReservations is the normalized backend list. Slices are never nil.
type RemoteReservations struct {
	Shape        ListShape
	Current      []reservation.Reservation
	Past         []reservation.Reservation
	Flat         []reservation.Reservation
	CurrentCount int
	PastCount    int
}

func EmptyRemote() RemoteReservations {
	return RemoteReservations{
		Shape:   ListShapeFlat,
		Current: []reservation.Reservation{},
		Past:    []reservation.Reservation{},
		Flat:    []reservation.Reservation{},
	}
}

// All returns every record in arrival order: current, past, then flat.
func (r RemoteReservations) All() []reservation.Reservation {
	all := make([]reservation.Reservation, 0, len(r.Current)+len(r.Past)+len(r.Flat))
	all = append(all, r.Current...)
	all = append(all, r.Past...)
	all = append(all, r.Flat...)
	return all
}
