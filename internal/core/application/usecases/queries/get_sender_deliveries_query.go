package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetSenderDeliveriesQueryIsNotConstructed = errors.New(
	"GetSenderDeliveriesQuery must be created via NewGetSenderDeliveriesQuery constructor",
)

// GetSenderDeliveriesQuery retrieves a sender's board: every record they
// opened, in any lifecycle state, newest first.
type GetSenderDeliveriesQuery struct { //nolint:recvcheck //using for validation
	senderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSenderDeliveriesQuery creates a sender board query.
// Validates the sender identifier.
func NewGetSenderDeliveriesQuery(senderID kernel.UUID) (GetSenderDeliveriesQuery, error) {
	if err := senderID.Validate(); err != nil {
		return GetSenderDeliveriesQuery{}, err
	}

	return GetSenderDeliveriesQuery{
		senderID: senderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSenderDeliveriesQueryIsNotConstructed if validation fails.
func (q GetSenderDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetSenderDeliveriesQueryIsNotConstructed)
}

// SenderID returns the sender whose board is requested.
func (q GetSenderDeliveriesQuery) SenderID() kernel.UUID {
	return q.senderID
}

// GetSenderDeliveriesQueryResponse represents one record on the sender's
// board, including the receiver it is addressed to and its current state.
type GetSenderDeliveriesQueryResponse struct {
	ID            kernel.UUID
	ReceiverName  string
	ReceiverPhone string
	Origin        string
	Destination   string
	Category      string
	Tier          string
	Price         int
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
