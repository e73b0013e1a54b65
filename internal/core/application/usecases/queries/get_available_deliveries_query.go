// Package queries contains read-only operations over the delivery store.
// Query handlers bypass the domain aggregates and read projections
// straight from the database, per the CQRS split.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAvailableDeliveriesQueryIsNotConstructed = errors.New(
	"GetAvailableDeliveriesQuery must be created via NewGetAvailableDeliveriesQuery constructor",
)

// GetAvailableDeliveriesQuery retrieves the driver-facing backlog: every
// record open for pickup (Pending or Returned, no driver assigned).
//
// Example:
//
//	query := NewGetAvailableDeliveriesQuery()
//	handler := NewGetAvailableDeliveriesQueryHandler(db)
//
//	backlog, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load backlog: %w", err)
//	}
//	fmt.Printf("%d deliveries waiting for a driver\n", len(backlog))
type GetAvailableDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDeliveriesQuery creates a query for the open backlog.
// This is a parameterless query.
func NewGetAvailableDeliveriesQuery() GetAvailableDeliveriesQuery {
	return GetAvailableDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableDeliveriesQueryIsNotConstructed if validation fails.
func (q GetAvailableDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDeliveriesQueryIsNotConstructed)
}

// GetAvailableDeliveriesQueryResponse represents one open record as
// shown to browsing drivers: the route, the package, the tier, and the
// money the record is worth.
type GetAvailableDeliveriesQueryResponse struct {
	ID                   kernel.UUID
	Origin               string
	Destination          string
	Category             string
	Tier                 string
	DistanceKm           float64
	Price                int
	MaxDeliveryTimeHours float64
	Status               string
	CreatedAt            time.Time
}
