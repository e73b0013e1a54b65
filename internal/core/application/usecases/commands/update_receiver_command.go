package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateReceiverCommandIsNotConstructed = errors.New(
	"UpdateReceiverCommand must be created via NewUpdateReceiverCommand constructor",
)

// UpdateReceiverCommand represents a sender's request to replace the
// receiver contact details on one of their records. The aggregate only
// permits the edit before pickup (Pending or Returned status).
type UpdateReceiverCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	senderID      kernel.UUID
	receiverName  string
	receiverPhone string

	guard guard.ConstructorGuard
}

// NewUpdateReceiverCommand creates a receiver edit command.
// Validates both identifiers and requires both contact fields.
func NewUpdateReceiverCommand(
	deliveryID kernel.UUID,
	senderID kernel.UUID,
	receiverName string,
	receiverPhone string,
) (UpdateReceiverCommand, error) {
	command := UpdateReceiverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setSenderID(senderID),
		command.setReceiver(receiverName, receiverPhone),
	); err != nil {
		return UpdateReceiverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateReceiverCommandIsNotConstructed if validation fails.
func (c UpdateReceiverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReceiverCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being edited.
func (c UpdateReceiverCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// SenderID returns the identity of the requesting sender.
func (c UpdateReceiverCommand) SenderID() kernel.UUID {
	return c.senderID
}

// ReceiverName returns the new receiver contact name.
func (c UpdateReceiverCommand) ReceiverName() string {
	return c.receiverName
}

// ReceiverPhone returns the new receiver contact phone.
func (c UpdateReceiverCommand) ReceiverPhone() string {
	return c.receiverPhone
}

func (c *UpdateReceiverCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateReceiverCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}

	c.senderID = senderID
	return nil
}

func (c *UpdateReceiverCommand) setReceiver(name, phone string) error {
	if name == "" {
		return ErrContactNameIsRequired
	}
	if phone == "" {
		return ErrContactPhoneIsRequired
	}

	c.receiverName = name
	c.receiverPhone = phone
	return nil
}
