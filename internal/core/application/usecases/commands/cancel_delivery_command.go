package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCancelDeliveryCommandIsNotConstructed = errors.New(
	"CancelDeliveryCommand must be created via NewCancelDeliveryCommand constructor",
)

// CancelDeliveryCommand represents a request to terminally cancel a
// delivery record. Senders may cancel their own records; administrators
// may cancel any. The role arrives as a raw string from the transport
// layer and is resolved here; ownership is checked by the aggregate.
type CancelDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actorID    kernel.UUID
	actorRole  delivery.Role

	guard guard.ConstructorGuard
}

// NewCancelDeliveryCommand creates a cancellation command.
// Validates both identifiers and resolves the actor role name.
func NewCancelDeliveryCommand(
	deliveryID kernel.UUID,
	actorID kernel.UUID,
	actorRole string,
) (CancelDeliveryCommand, error) {
	command := CancelDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setActor(actorID, actorRole),
	); err != nil {
		return CancelDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelDeliveryCommandIsNotConstructed if validation fails.
func (c CancelDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being cancelled.
func (c CancelDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ActorID returns the identity of the requesting actor.
func (c CancelDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the requesting actor's resolved role.
func (c CancelDeliveryCommand) ActorRole() delivery.Role {
	return c.actorRole
}

func (c *CancelDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CancelDeliveryCommand) setActor(actorID kernel.UUID, actorRole string) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	role, err := delivery.RoleFromString(actorRole)
	if err != nil {
		return err
	}

	c.actorID = actorID
	c.actorRole = role
	return nil
}
