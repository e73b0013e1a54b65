package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrContactNameIsRequired  = errors.New("contact name is required")
	ErrContactPhoneIsRequired = errors.New("contact phone is required")
	ErrOriginIsRequired       = errors.New("origin region is required")
	ErrDestinationIsRequired  = errors.New("destination region is required")
	ErrCategoryIsRequired     = errors.New("package category is required")
	ErrTierIsRequired         = errors.New("service tier is required")
)

// CreateDeliveryCommand represents a sender's request to open a new
// delivery record. Region, category and tier arrive as raw strings from
// the transport layer; the handler resolves them against the domain and
// recomputes the quote server-side, so any client-supplied price is
// ignored by construction.
//
// Example:
//
//	deliveryID := kernel.NewUUID()
//	cmd, err := NewCreateDeliveryCommand(
//	    deliveryID, senderID,
//	    "Amine", "+213550000001",
//	    "Yacine", "+213550000002",
//	    "Algiers", "Oran", "small", "standard",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery: %w", err)
//	}
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	senderID      kernel.UUID
	senderName    string
	senderPhone   string
	receiverName  string
	receiverPhone string
	origin        string
	destination   string
	category      string
	tier          string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to open a new delivery record.
// Validates that both IDs are valid and every textual field is present;
// semantic validation (known region, known tier) happens in the handler
// against the domain model.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	senderID kernel.UUID,
	senderName string,
	senderPhone string,
	receiverName string,
	receiverPhone string,
	origin string,
	destination string,
	category string,
	tier string,
) (CreateDeliveryCommand, error) {
	command := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setSenderID(senderID),
		command.setSenderContact(senderName, senderPhone),
		command.setReceiverContact(receiverName, receiverPhone),
		command.setRoute(origin, destination),
		command.setCategory(category),
		command.setTier(tier),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed if validation fails.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the new record.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// SenderID returns the identity of the sender opening the record.
func (c CreateDeliveryCommand) SenderID() kernel.UUID {
	return c.senderID
}

// SenderName returns the sender's contact name.
func (c CreateDeliveryCommand) SenderName() string {
	return c.senderName
}

// SenderPhone returns the sender's contact phone.
func (c CreateDeliveryCommand) SenderPhone() string {
	return c.senderPhone
}

// ReceiverName returns the receiver's contact name.
func (c CreateDeliveryCommand) ReceiverName() string {
	return c.receiverName
}

// ReceiverPhone returns the receiver's contact phone.
func (c CreateDeliveryCommand) ReceiverPhone() string {
	return c.receiverPhone
}

// Origin returns the requested pickup region name.
func (c CreateDeliveryCommand) Origin() string {
	return c.origin
}

// Destination returns the requested drop-off region name.
func (c CreateDeliveryCommand) Destination() string {
	return c.destination
}

// Category returns the requested package category name.
func (c CreateDeliveryCommand) Category() string {
	return c.category
}

// Tier returns the requested service tier name.
func (c CreateDeliveryCommand) Tier() string {
	return c.tier
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}

	c.senderID = senderID
	return nil
}

func (c *CreateDeliveryCommand) setSenderContact(name, phone string) error {
	if name == "" {
		return ErrContactNameIsRequired
	}
	if phone == "" {
		return ErrContactPhoneIsRequired
	}

	c.senderName = name
	c.senderPhone = phone
	return nil
}

func (c *CreateDeliveryCommand) setReceiverContact(name, phone string) error {
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

func (c *CreateDeliveryCommand) setRoute(origin, destination string) error {
	if origin == "" {
		return ErrOriginIsRequired
	}
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.origin = origin
	c.destination = destination
	return nil
}

func (c *CreateDeliveryCommand) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}

	c.category = category
	return nil
}

func (c *CreateDeliveryCommand) setTier(tier string) error {
	if tier == "" {
		return ErrTierIsRequired
	}

	c.tier = tier
	return nil
}
