package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetDriverDeliveriesQueryIsNotConstructed = errors.New(
	"GetDriverDeliveriesQuery must be created via NewGetDriverDeliveriesQuery constructor",
)

// GetDriverDeliveriesQuery retrieves a driver's board: the delivery they
// are currently carrying plus their completed history, each row priced
// with the driver's cut.
type GetDriverDeliveriesQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverDeliveriesQuery creates a driver board query.
// Validates the driver identifier.
func NewGetDriverDeliveriesQuery(driverID kernel.UUID) (GetDriverDeliveriesQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverDeliveriesQuery{}, err
	}

	return GetDriverDeliveriesQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDriverDeliveriesQueryIsNotConstructed if validation fails.
func (q GetDriverDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverDeliveriesQueryIsNotConstructed)
}

// DriverID returns the driver whose board is requested.
func (q GetDriverDeliveriesQuery) DriverID() kernel.UUID {
	return q.driverID
}

// GetDriverDeliveriesQueryResponse represents one record on the driver's
// board. Earnings are derived from the price at read time and never
// persisted; for an in-transit record the value is the payout the driver
// stands to make.
type GetDriverDeliveriesQueryResponse struct {
	ID          kernel.UUID
	Origin      string
	Destination string
	Category    string
	Tier        string
	Price       int
	Earnings    int
	Status      string
	UpdatedAt   time.Time
}
