//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"savor-sync/internal/domain/reservation"
	"savor-sync/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func ids(records []reservation.Reservation) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestMerge(t *testing.T) {
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("remote shadows local with the same id", func(t *testing.T) {
		remote := builder.NewReservationBuilder().WithID("r-1").WithClientRequestID("").BuildDomain()
		local := builder.NewReservationBuilder().WithID("r-1").WithClientRequestID("").
			WithStatus(reservation.StatusCancelled).BuildDomain()

		got := reservation.Merge([]reservation.Reservation{remote}, []reservation.Reservation{local})

		assert.Len(t, got, 1)
		assert.Equal(t, reservation.StatusConfirmed, got[0].Status)
	})

	t.Run("keeps order remote then local and drops later duplicates", func(t *testing.T) {
		mk := func(id string) reservation.Reservation {
			return builder.NewReservationBuilder().WithID(id).WithClientRequestID("").BuildDomain()
		}
		remote := []reservation.Reservation{mk("a"), mk("b"), mk("a")}
		local := []reservation.Reservation{mk("c"), mk("b"), mk("d")}

		got := reservation.Merge(remote, local)

		if diff := cmp.Diff([]string{"a", "b", "c", "d"}, ids(got)); diff != "" {
			t.Errorf("merged ids mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("records without an id are all kept", func(t *testing.T) {
		noID := builder.NewReservationBuilder().WithID("").WithClientRequestID("").BuildDomain()
		got := reservation.Merge([]reservation.Reservation{noID}, []reservation.Reservation{noID})
		assert.Len(t, got, 2)
	})

	t.Run("a confirmed copy retires the local record with the same request id", func(t *testing.T) {
		local := builder.NewReservationBuilder().AsLocal("local_1").WithClientRequestID("req-1").BuildDomain()
		confirmed := builder.NewReservationBuilder().WithID("r-9").WithClientRequestID("req-1").BuildDomain()
		unrelated := builder.NewReservationBuilder().AsLocal("local_2").WithClientRequestID("req-2").BuildDomain()

		got := reservation.Merge(nil, []reservation.Reservation{local, unrelated, confirmed})

		assert.Equal(t, []string{"local_2", "r-9"}, ids(got))
	})

	t.Run("a tombstone hides the id from both sources", func(t *testing.T) {
		remote := builder.NewReservationBuilder().WithID("r-1").WithClientRequestID("").BuildDomain()
		cached := builder.NewReservationBuilder().WithID("r-1").WithStatus(reservation.StatusPending).BuildDomain()
		other := builder.NewReservationBuilder().WithID("r-2").WithClientRequestID("").BuildDomain()
		local := []reservation.Reservation{cached, other, reservation.Tombstone("r-1", base)}

		got := reservation.Merge([]reservation.Reservation{remote}, local)

		assert.Equal(t, []string{"r-2"}, ids(got))
	})

	t.Run("tombstones are never listed", func(t *testing.T) {
		got := reservation.Merge(nil, []reservation.Reservation{reservation.Tombstone("r-3", base)})
		assert.Empty(t, got)
	})

	t.Run("a remote tombstone-shaped record does not hide local data", func(t *testing.T) {
		local := builder.NewReservationBuilder().WithID("r-4").WithClientRequestID("").BuildDomain()

		got := reservation.Merge([]reservation.Reservation{reservation.Tombstone("r-4", base)}, []reservation.Reservation{local})

		assert.Equal(t, []string{"r-4"}, ids(got))
	})

	t.Run("empty inputs give an empty slice", func(t *testing.T) {
		got := reservation.Merge(nil, nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Group splits by terminal status and sorts newest first", func(t *testing.T) {
		records := []reservation.Reservation{
			builder.NewReservationBuilder().WithID("old-pending").WithStatus(reservation.StatusPending).WithCreatedAt(base).BuildDomain(),
			builder.NewReservationBuilder().WithID("done").WithStatus(reservation.StatusPickedUp).WithCreatedAt(base.Add(time.Hour)).BuildDomain(),
			builder.NewReservationBuilder().WithID("new-confirmed").WithStatus(reservation.StatusConfirmed).WithCreatedAt(base.Add(2 * time.Hour)).BuildDomain(),
			builder.NewReservationBuilder().WithID("odd").WithStatus(reservation.Status("refunded")).WithCreatedAt(base.Add(3 * time.Hour)).BuildDomain(),
			builder.NewReservationBuilder().WithID("gone").WithStatus(reservation.StatusCancelled).WithCreatedAt(base.Add(4 * time.Hour)).BuildDomain(),
		}

		current, past := reservation.Group(records)

		assert.Equal(t, []string{"odd", "new-confirmed", "old-pending"}, ids(current))
		assert.Equal(t, []string{"gone", "done"}, ids(past))
	})

	t.Run("Group of nothing returns non-nil slices", func(t *testing.T) {
		current, past := reservation.Group(nil)
		assert.NotNil(t, current)
		assert.NotNil(t, past)
	})

	t.Run("PendingLocalOnly filters on sync state", func(t *testing.T) {
		records := []reservation.Reservation{
			builder.NewReservationBuilder().AsLocal("local_1").BuildDomain(),
			builder.NewReservationBuilder().WithID("r-1").BuildDomain(),
		}
		assert.Equal(t, []string{"local_1"}, ids(reservation.PendingLocalOnly(records)))
	})
}
