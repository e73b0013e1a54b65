package delivery_test

import (
	"testing"

	"dispatch/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []delivery.Status {
	return []delivery.Status{
		delivery.StatusPending,
		delivery.StatusInTransit,
		delivery.StatusDelivered,
		delivery.StatusCancelled,
		delivery.StatusReturned,
	}
}

func TestStatus_TransitionTable(t *testing.T) {
	// The full (current, attempted) matrix. Every pair not explicitly
	// allowed must be rejected.
	allowed := map[delivery.Status]map[string]bool{
		delivery.StatusPending:   {"accept": true, "cancel": true},
		delivery.StatusInTransit: {"complete": true, "return": true, "cancel": true},
		delivery.StatusDelivered: {},
		delivery.StatusCancelled: {},
		delivery.StatusReturned:  {"accept": true},
	}

	transitions := map[string]func(delivery.Status) (delivery.Status, error){
		"accept":   delivery.Status.Accept,
		"complete": delivery.Status.Complete,
		"return":   delivery.Status.Return,
		"cancel":   delivery.Status.Cancel,
	}

	expected := map[string]delivery.Status{
		"accept":   delivery.StatusInTransit,
		"complete": delivery.StatusDelivered,
		"return":   delivery.StatusReturned,
		"cancel":   delivery.StatusCancelled,
	}

	for _, current := range allStatuses() {
		for name, transition := range transitions {
			t.Run(current.String()+"_"+name, func(t *testing.T) {
				next, err := transition(current)

				if allowed[current][name] {
					require.NoError(t, err)
					assert.Equal(t, expected[name], next)
					return
				}

				require.ErrorIs(t, err, delivery.ErrInvalidTransition)

				var transitionErr *delivery.InvalidTransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, current, transitionErr.From)
			})
		}
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for _, status := range allStatuses() {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		require.Error(t, delivery.StatusUnknown.Validate())
		require.Error(t, delivery.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", delivery.StatusPending.String())
	assert.Equal(t, "InTransit", delivery.StatusInTransit.String())
	assert.Equal(t, "Delivered", delivery.StatusDelivered.String())
	assert.Equal(t, "Cancelled", delivery.StatusCancelled.String())
	assert.Equal(t, "Returned", delivery.StatusReturned.String())
	assert.Equal(t, "Unknown", delivery.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round_trips_valid_names", func(t *testing.T) {
		for _, status := range allStatuses() {
			parsed, err := delivery.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects_unknown_names", func(t *testing.T) {
		_, err := delivery.StatusFromString("Teleported")
		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, delivery.StatusDelivered.IsTerminal())
	assert.True(t, delivery.StatusCancelled.IsTerminal())
	assert.False(t, delivery.StatusPending.IsTerminal())
	assert.False(t, delivery.StatusInTransit.IsTerminal())
	assert.False(t, delivery.StatusReturned.IsTerminal())
}

func TestStatus_ValidateCanHaveDriver(t *testing.T) {
	testCases := []struct {
		status    delivery.Status
		hasDriver bool
		wantErr   bool
	}{
		{delivery.StatusPending, false, false},
		{delivery.StatusPending, true, true},
		{delivery.StatusReturned, false, false},
		{delivery.StatusReturned, true, true},
		{delivery.StatusInTransit, true, false},
		{delivery.StatusInTransit, false, true},
		{delivery.StatusDelivered, true, false},
		{delivery.StatusDelivered, false, true},
		{delivery.StatusCancelled, true, false},
		{delivery.StatusCancelled, false, false},
	}

	for _, tc := range testCases {
		err := tc.status.ValidateCanHaveDriver(tc.hasDriver)
		if tc.wantErr {
			require.Error(t, err, "%s hasDriver=%v", tc.status, tc.hasDriver)
		} else {
			require.NoError(t, err, "%s hasDriver=%v", tc.status, tc.hasDriver)
		}
	}
}
