//go:build unit

package reservation_test

import (
	"testing"

	"savor-sync/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []reservation.Status{
	reservation.StatusPending,
	reservation.StatusConfirmed,
	reservation.StatusCompleted,
	reservation.StatusCancelled,
	reservation.StatusExpired,
	reservation.StatusPickedUp,
}

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		in   string
		want reservation.Status
	}{
		{in: "pending", want: reservation.StatusPending},
		{in: "CONFIRMED", want: reservation.StatusConfirmed},
		{in: "canceled", want: reservation.StatusCancelled},
		{in: "Cancelled", want: reservation.StatusCancelled},
		{in: "picked-up", want: reservation.StatusPickedUp},
		{in: "pickedup", want: reservation.StatusPickedUp},
		{in: " picked_up ", want: reservation.StatusPickedUp},
		{in: "", want: reservation.StatusPending},
		{in: "Refunded", want: reservation.Status("refunded")},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, reservation.NormalizeStatus(tc.in))
		})
	}

	t.Run("ParseStatus rejects unknown values", func(t *testing.T) {
		_, err := reservation.ParseStatus("refunded")
		require.ErrorIs(t, err, reservation.ErrInvalidStatus)

		st, err := reservation.ParseStatus("canceled")
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCancelled, st)
	})
}

func TestTransitions(t *testing.T) {
	t.Run("terminal statuses have no outgoing transitions", func(t *testing.T) {
		for _, from := range []reservation.Status{
			reservation.StatusCompleted,
			reservation.StatusCancelled,
			reservation.StatusExpired,
			reservation.StatusPickedUp,
		} {
			assert.True(t, from.IsTerminal(), from)
			for _, to := range allStatuses {
				assert.False(t, reservation.CanTransition(from, to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("the client may only write picked_up", func(t *testing.T) {
		for _, from := range allStatuses {
			for _, to := range allStatuses {
				err := reservation.ValidateClientTransition(from, to)
				legal := to == reservation.StatusPickedUp &&
					(from == reservation.StatusPending || from == reservation.StatusConfirmed)
				if legal {
					assert.NoError(t, err, "%s -> %s", from, to)
				} else {
					assert.ErrorIs(t, err, reservation.ErrIllegalTransition, "%s -> %s", from, to)
				}
			}
		}
	})

	t.Run("unknown status cannot move to picked_up", func(t *testing.T) {
		err := reservation.ValidateClientTransition(reservation.Status("refunded"), reservation.StatusPickedUp)
		assert.ErrorIs(t, err, reservation.ErrIllegalTransition)
	})

	t.Run("backend-driven transitions stay legal in the full lifecycle", func(t *testing.T) {
		assert.True(t, reservation.CanTransition(reservation.StatusPending, reservation.StatusConfirmed))
		assert.True(t, reservation.CanTransition(reservation.StatusConfirmed, reservation.StatusCompleted))
		assert.True(t, reservation.CanTransition(reservation.StatusConfirmed, reservation.StatusExpired))
		assert.False(t, reservation.CanTransition(reservation.StatusPending, reservation.StatusCompleted))
	})
}

func TestOwnerView(t *testing.T) {
	assert.Equal(t, reservation.OwnerStatusActive, reservation.StatusPending.OwnerView())
	assert.Equal(t, reservation.OwnerStatusActive, reservation.StatusConfirmed.OwnerView())
	assert.Equal(t, reservation.OwnerStatusPickedUp, reservation.StatusPickedUp.OwnerView())
	assert.Equal(t, reservation.OwnerStatusClosed, reservation.StatusCancelled.OwnerView())
	assert.Equal(t, reservation.OwnerStatusClosed, reservation.StatusCompleted.OwnerView())

	assert.True(t, reservation.CanOwnerTransition(reservation.OwnerStatusActive, reservation.OwnerStatusPickedUp))
	assert.False(t, reservation.CanOwnerTransition(reservation.OwnerStatusPickedUp, reservation.OwnerStatusActive))
	assert.False(t, reservation.CanOwnerTransition(reservation.OwnerStatusClosed, reservation.OwnerStatusPickedUp))
}

func TestDisplay(t *testing.T) {
	t.Run("english labels", func(t *testing.T) {
		badge := reservation.StatusPickedUp.Display("en-US")
		assert.Equal(t, "Picked up", badge.Label)
		assert.Equal(t, "success", badge.Color)
	})

	t.Run("french labels", func(t *testing.T) {
		assert.Equal(t, "En attente", reservation.StatusPending.Display("fr").Label)
		assert.Equal(t, "Récupérée", reservation.StatusPickedUp.Display("fr-CA").Label)
		assert.Equal(t, "Clôturée", reservation.OwnerStatusClosed.Display("FR").Label)
	})

	t.Run("unsupported locale falls back to english", func(t *testing.T) {
		assert.Equal(t, "Cancelled", reservation.StatusCancelled.Display("de").Label)
	})

	t.Run("every known status has a color", func(t *testing.T) {
		for _, st := range allStatuses {
			badge := st.Display("en")
			assert.NotEmpty(t, badge.Label, st)
			assert.NotEqual(t, "neutral", badge.Color, st)
		}
	})

	t.Run("unknown status renders raw with neutral color", func(t *testing.T) {
		badge := reservation.Status("refunded").Display("en")
		assert.Equal(t, "refunded", badge.Label)
		assert.Equal(t, "neutral", badge.Color)
	})
}
