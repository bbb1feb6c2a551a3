package order

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/pkg/errs"
)

func TestStatusCodeRoundTrip(t *testing.T) {
	t.Run("should map every defined status to a unique code and back", func(t *testing.T) {
		statuses := []Status{
			Confirmed, DesignPhase, DesignAdded, PaymentPhase, PaymentReceived,
			ManufacturerSelected, InProduction, ProductReady, InTransit, Delivered,
		}

		seen := make(map[string]bool)
		for _, s := range statuses {
			code := s.Code()
			require.NotEmpty(t, code)
			assert.False(t, seen[code], "code %s assigned twice", code)
			seen[code] = true

			parsed, err := StatusFromCode(code)
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject an unknown code", func(t *testing.T) {
		_, err := StatusFromCode("ZZ")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusNext(t *testing.T) {
	t.Run("should walk the full chain from Confirmed to Delivered", func(t *testing.T) {
		current := Confirmed
		var visited []Status

		for {
			next, ok := current.Next()
			if !ok {
				break
			}
			visited = append(visited, next)
			current = next
		}

		assert.Equal(t, []Status{
			DesignPhase, DesignAdded, PaymentPhase, PaymentReceived,
			ManufacturerSelected, InProduction, ProductReady, InTransit, Delivered,
		}, visited)
	})

	t.Run("should have no successor after Delivered", func(t *testing.T) {
		_, ok := Delivered.Next()

		assert.False(t, ok)
	})
}

func TestStatusAdvance(t *testing.T) {
	t.Run("should advance when current matches expected", func(t *testing.T) {
		next, err := PaymentPhase.Advance(PaymentPhase)

		require.NoError(t, err)
		assert.Equal(t, PaymentReceived, next)
	})

	t.Run("should return status conflict with both states named", func(t *testing.T) {
		_, err := Confirmed.Advance(DesignAdded)

		require.ErrorIs(t, err, errs.ErrStatusConflict)
		var conflict *errs.StatusConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, "Confirmed", conflict.Current)
		assert.Equal(t, "DesignAdded", conflict.Expected)
	})

	t.Run("should refuse to advance past the final stage", func(t *testing.T) {
		_, err := Delivered.Advance(Delivered)

		assert.ErrorIs(t, err, errs.ErrStatusConflict)
	})
}

func TestRejectionState(t *testing.T) {
	t.Run("should round-trip every defined state through its code", func(t *testing.T) {
		states := []RejectionState{
			RejectionActive, RejectionPending, RejectionRejected, RejectionCancelled,
		}

		for _, s := range states {
			parsed, err := RejectionStateFromCode(s.Code())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should report frozen only for rejected and cancelled", func(t *testing.T) {
		assert.False(t, RejectionActive.IsFrozen())
		assert.False(t, RejectionPending.IsFrozen())
		assert.True(t, RejectionRejected.IsFrozen())
		assert.True(t, RejectionCancelled.IsFrozen())
	})
}
