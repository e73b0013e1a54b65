package delivery_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRegion(t *testing.T, name string) kernel.Region {
	t.Helper()
	region, err := kernel.NewRegion(name)
	require.NoError(t, err)
	return region
}

func mustContact(t *testing.T, name, phone string) delivery.Contact {
	t.Helper()
	contact, err := delivery.NewContact(name, phone)
	require.NoError(t, err)
	return contact
}

func mustQuote(t *testing.T) delivery.Quote {
	t.Helper()
	quote, err := delivery.NewQuote(505.2, 1010, 10.1)
	require.NoError(t, err)
	return quote
}

func newTestDelivery(t *testing.T, senderID kernel.UUID) *delivery.Delivery {
	t.Helper()
	record, err := delivery.NewDelivery(
		kernel.NewUUID(),
		senderID,
		mustContact(t, "Amine", "+213550000001"),
		mustContact(t, "Yacine", "+213550000002"),
		mustRegion(t, "Algiers"),
		mustRegion(t, "Oran"),
		delivery.CategorySmall,
		delivery.TierStandard,
		mustQuote(t),
	)
	require.NoError(t, err)
	return record
}

func driverActor(t *testing.T, id kernel.UUID) delivery.Actor {
	t.Helper()
	actor, err := delivery.NewActor(id, delivery.RoleDriver)
	require.NoError(t, err)
	return actor
}

func senderActor(t *testing.T, id kernel.UUID) delivery.Actor {
	t.Helper()
	actor, err := delivery.NewActor(id, delivery.RoleSender)
	require.NoError(t, err)
	return actor
}

func adminActor(t *testing.T) delivery.Actor {
	t.Helper()
	actor, err := delivery.NewActor(kernel.NewUUID(), delivery.RoleAdmin)
	require.NoError(t, err)
	return actor
}

func TestNewDelivery(t *testing.T) {
	t.Run("starts_pending_without_driver", func(t *testing.T) {
		senderID := kernel.NewUUID()

		record := newTestDelivery(t, senderID)

		require.NoError(t, record.Validate())
		assert.Equal(t, delivery.StatusPending, record.Status())
		assert.Nil(t, record.Driver())
		assert.True(t, record.IsAvailable())
		assert.True(t, record.SenderID().IsEqual(senderID))
		assert.Equal(t, record.CreatedAt(), record.UpdatedAt())
	})

	t.Run("rejects_zero_distance_for_distinct_regions", func(t *testing.T) {
		quote, err := delivery.NewQuote(0, 500, 0)
		require.NoError(t, err)

		_, err = delivery.NewDelivery(
			kernel.NewUUID(),
			kernel.NewUUID(),
			mustContact(t, "Amine", "+213550000001"),
			mustContact(t, "Yacine", "+213550000002"),
			mustRegion(t, "Algiers"),
			mustRegion(t, "Oran"),
			delivery.CategorySmall,
			delivery.TierStandard,
			quote,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("allows_zero_distance_for_same_region", func(t *testing.T) {
		quote, err := delivery.NewQuote(0, 500, 0)
		require.NoError(t, err)

		record, err := delivery.NewDelivery(
			kernel.NewUUID(),
			kernel.NewUUID(),
			mustContact(t, "Amine", "+213550000001"),
			mustContact(t, "Yacine", "+213550000002"),
			mustRegion(t, "Algiers"),
			mustRegion(t, "Algiers"),
			delivery.CategorySmall,
			delivery.TierStandard,
			quote,
		)
		require.NoError(t, err)
		assert.InDelta(t, 0, record.Quote().DistanceKm(), 0)
	})

	t.Run("rejects_invalid_inputs", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.UUID{},
			kernel.NewUUID(),
			delivery.Contact{},
			mustContact(t, "Yacine", "+213550000002"),
			mustRegion(t, "Algiers"),
			mustRegion(t, "Oran"),
			delivery.CategoryUnknown,
			delivery.TierStandard,
			mustQuote(t),
		)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var record delivery.Delivery
		require.ErrorIs(t, record.Validate(), delivery.ErrDeliveryIsNotConstructed)
	})
}

func TestDelivery_Accept(t *testing.T) {
	t.Run("assigns_driver_and_moves_in_transit", func(t *testing.T) {
		record := newTestDelivery(t, kernel.NewUUID())
		driverID := kernel.NewUUID()

		err := record.Accept(driverID)

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusInTransit, record.Status())
		require.NotNil(t, record.Driver())
		assert.True(t, record.Driver().IsEqual(driverID))
		assert.False(t, record.IsAvailable())
	})

	t.Run("rejects_double_accept", func(t *testing.T) {
		record := newTestDelivery(t, kernel.NewUUID())
		require.NoError(t, record.Accept(kernel.NewUUID()))

		err := record.Accept(kernel.NewUUID())
		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})

	t.Run("accepts_returned_record_again", func(t *testing.T) {
		record := newTestDelivery(t, kernel.NewUUID())
		firstDriver := kernel.NewUUID()
		require.NoError(t, record.Accept(firstDriver))
		require.NoError(t, record.MarkReturned(driverActor(t, firstDriver)))
		assert.True(t, record.IsAvailable())

		secondDriver := kernel.NewUUID()
		require.NoError(t, record.Accept(secondDriver))
		assert.Equal(t, delivery.StatusInTransit, record.Status())
		assert.True(t, record.Driver().IsEqual(secondDriver))
	})

	t.Run("rejects_invalid_driver_id", func(t *testing.T) {
		record := newTestDelivery(t, kernel.NewUUID())
		require.Error(t, record.Accept(kernel.UUID{}))
	})
}

func TestDelivery_MarkDelivered(t *testing.T) {
	t.Run("assigned_driver_completes", func(t *testing.T) {
		record := newTestDelivery(t, kernel.NewUUID())
		driverID := kernel.NewUUID()
		require.NoError(t, record.Accept(driverID))

		err := record.MarkDelivered(driverActor(t, driverID))

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusDelivered, record.Status())
		// driver reference retained for history
		require.NotNil(t, record.Driver())
		assert.True(t, record.Driver().IsEqual(driverID))
	})

	t.Run("other_driver_is_unauthorized", func(t *testing.T) {
		record := newTestDelivery(t, kernel.NewUUID())
		require.NoError(t, record.Accept(kernel.NewUUID()))

		err := record.MarkDelivered(driverActor(t, kernel.NewUUID()))
		require.ErrorIs(t, err, delivery.ErrUnauthorized)
	})

	t.Run("unassigned_record_cannot_be_delivered", func(t *testing.T) {
		record := newTestDelivery(t, kernel.NewUUID())

		err := record.MarkDelivered(driverActor(t, kernel.NewUUID()))
		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})

	t.Run("sender_cannot_complete", func(t *testing.T) {
		senderID := kernel.NewUUID()
		record := newTestDelivery(t, senderID)
		require.NoError(t, record.Accept(kernel.NewUUID()))

		err := record.MarkDelivered(senderActor(t, senderID))
		require.ErrorIs(t, err, delivery.ErrUnauthorized)
	})
}

func TestDelivery_MarkReturned(t *testing.T) {
	t.Run("clears_driver_and_reopens_backlog", func(t *testing.T) {
		record := newTestDelivery(t, kernel.NewUUID())
		driverID := kernel.NewUUID()
		require.NoError(t, record.Accept(driverID))

		err := record.MarkReturned(driverActor(t, driverID))

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusReturned, record.Status())
		assert.Nil(t, record.Driver())
		assert.True(t, record.IsAvailable())
	})

	t.Run("other_driver_is_unauthorized", func(t *testing.T) {
		record := newTestDelivery(t, kernel.NewUUID())
		require.NoError(t, record.Accept(kernel.NewUUID()))

		err := record.MarkReturned(driverActor(t, kernel.NewUUID()))
		require.ErrorIs(t, err, delivery.ErrUnauthorized)
	})
}

func TestDelivery_ForceReturn(t *testing.T) {
	t.Run("admin_releases_in_transit_record", func(t *testing.T) {
		record := newTestDelivery(t, kernel.NewUUID())
		require.NoError(t, record.Accept(kernel.NewUUID()))

		err := record.ForceReturn(adminActor(t))

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusReturned, record.Status())
		assert.Nil(t, record.Driver())
		assert.True(t, record.IsAvailable())
	})

	t.Run("non_admin_is_unauthorized", func(t *testing.T) {
		record := newTestDelivery(t, kernel.NewUUID())
		driverID := kernel.NewUUID()
		require.NoError(t, record.Accept(driverID))

		err := record.ForceReturn(driverActor(t, driverID))
		require.ErrorIs(t, err, delivery.ErrUnauthorized)
	})

	t.Run("pending_record_cannot_be_released", func(t *testing.T) {
		record := newTestDelivery(t, kernel.NewUUID())

		err := record.ForceReturn(adminActor(t))
		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})
}

func TestDelivery_Cancel(t *testing.T) {
	t.Run("sender_cancels_own_pending_record", func(t *testing.T) {
		senderID := kernel.NewUUID()
		record := newTestDelivery(t, senderID)

		err := record.Cancel(senderActor(t, senderID))

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusCancelled, record.Status())
	})

	t.Run("admin_cancels_in_transit_record", func(t *testing.T) {
		record := newTestDelivery(t, kernel.NewUUID())
		require.NoError(t, record.Accept(kernel.NewUUID()))

		err := record.Cancel(adminActor(t))

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusCancelled, record.Status())
		// driver retained for history on a cancel during transit
		assert.NotNil(t, record.Driver())
	})

	t.Run("foreign_sender_is_unauthorized", func(t *testing.T) {
		record := newTestDelivery(t, kernel.NewUUID())

		err := record.Cancel(senderActor(t, kernel.NewUUID()))
		require.ErrorIs(t, err, delivery.ErrUnauthorized)
	})

	t.Run("driver_cannot_cancel", func(t *testing.T) {
		record := newTestDelivery(t, kernel.NewUUID())
		driverID := kernel.NewUUID()
		require.NoError(t, record.Accept(driverID))

		err := record.Cancel(driverActor(t, driverID))
		require.ErrorIs(t, err, delivery.ErrUnauthorized)
	})

	t.Run("cancelled_is_terminal", func(t *testing.T) {
		senderID := kernel.NewUUID()
		record := newTestDelivery(t, senderID)
		require.NoError(t, record.Cancel(senderActor(t, senderID)))

		err := record.Accept(kernel.NewUUID())
		require.ErrorIs(t, err, delivery.ErrInvalidTransition)

		err = record.Cancel(adminActor(t))
		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})
}

func TestDelivery_UpdateReceiver(t *testing.T) {
	t.Run("sender_edits_before_pickup", func(t *testing.T) {
		senderID := kernel.NewUUID()
		record := newTestDelivery(t, senderID)
		newReceiver := mustContact(t, "Lina", "+213550000099")

		err := record.UpdateReceiver(senderActor(t, senderID), newReceiver)

		require.NoError(t, err)
		assert.Equal(t, "Lina", record.Receiver().Name())
	})

	t.Run("locked_after_pickup", func(t *testing.T) {
		senderID := kernel.NewUUID()
		record := newTestDelivery(t, senderID)
		require.NoError(t, record.Accept(kernel.NewUUID()))

		err := record.UpdateReceiver(senderActor(t, senderID), mustContact(t, "Lina", "+213550000099"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("foreign_sender_is_unauthorized", func(t *testing.T) {
		record := newTestDelivery(t, kernel.NewUUID())

		err := record.UpdateReceiver(senderActor(t, kernel.NewUUID()), mustContact(t, "Lina", "+213550000099"))
		require.ErrorIs(t, err, delivery.ErrUnauthorized)
	})
}

func TestRestoreDelivery(t *testing.T) {
	baseArgs := func(t *testing.T) (kernel.UUID, kernel.UUID, delivery.Contact, delivery.Contact,
		kernel.Region, kernel.Region, delivery.PackageCategory, delivery.ServiceTier, delivery.Quote) {
		t.Helper()
		return kernel.NewUUID(), kernel.NewUUID(),
			mustContact(t, "Amine", "+213550000001"),
			mustContact(t, "Yacine", "+213550000002"),
			mustRegion(t, "Algiers"), mustRegion(t, "Oran"),
			delivery.CategorySmall, delivery.TierStandard, mustQuote(t)
	}

	t.Run("restores_in_transit_record", func(t *testing.T) {
		id, senderID, sender, receiver, origin, destination, category, tier, quote := baseArgs(t)
		driverID := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Hour)

		record, err := delivery.RestoreDelivery(
			id, senderID, sender, receiver, origin, destination, category, tier, quote,
			delivery.StatusInTransit, &driverID, createdAt, createdAt.Add(time.Minute),
		)

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusInTransit, record.Status())
		assert.True(t, record.Driver().IsEqual(driverID))
		assert.Equal(t, createdAt, record.CreatedAt())
	})

	t.Run("rejects_pending_record_with_driver", func(t *testing.T) {
		id, senderID, sender, receiver, origin, destination, category, tier, quote := baseArgs(t)
		driverID := kernel.NewUUID()

		_, err := delivery.RestoreDelivery(
			id, senderID, sender, receiver, origin, destination, category, tier, quote,
			delivery.StatusPending, &driverID, time.Now().UTC(), time.Now().UTC(),
		)
		require.Error(t, err)
	})

	t.Run("rejects_in_transit_record_without_driver", func(t *testing.T) {
		id, senderID, sender, receiver, origin, destination, category, tier, quote := baseArgs(t)

		_, err := delivery.RestoreDelivery(
			id, senderID, sender, receiver, origin, destination, category, tier, quote,
			delivery.StatusInTransit, nil, time.Now().UTC(), time.Now().UTC(),
		)
		require.Error(t, err)
	})
}
