// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

var (
	// ErrDeliveryUnavailable signals that an acceptance attempt lost the
	// race: the delivery is no longer open for pickup (already accepted,
	// cancelled or completed by the time the claim reached storage).
	ErrDeliveryUnavailable = errors.New("delivery is not available for acceptance")

	// ErrDriverBusy signals that the accepting driver already carries an
	// in-transit delivery and cannot claim another one.
	ErrDriverBusy = errors.New("driver already has an active delivery")
)

// DeliveryRepository defines the persistence contract for delivery
// aggregates. Provides methods for storing, retrieving, and claiming
// delivery entities.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate. The
	// write is conditional on the stored row still holding expectedStatus:
	// when another request changed the delivery in between, no row matches
	// and an ObjectIsStaleError is returned instead of silently clobbering
	// the newer state.
	Update(ctx context.Context, aggregate *delivery.Delivery, expectedStatus delivery.Status) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// Accept atomically claims an open delivery for a driver. The claim
	// succeeds only if the delivery is still awaiting pickup, carries no
	// driver, and the driver has no other in-transit delivery; all three
	// conditions are checked inside a single storage operation so that
	// concurrent claims cannot both win.
	//
	// Returns the delivery in its post-claim state on success,
	// ErrDeliveryUnavailable when the delivery was taken or closed first,
	// and ErrDriverBusy when the driver already carries a delivery.
	Accept(ctx context.Context, deliveryID kernel.UUID, driverID kernel.UUID) (*delivery.Delivery, error)

	// GetAllInTransitUpdatedBefore retrieves in-transit deliveries whose
	// last state change happened before the cutoff. Used by the stale
	// delivery reconciliation job.
	GetAllInTransitUpdatedBefore(ctx context.Context, cutoff time.Time) ([]*delivery.Delivery, error)
}
