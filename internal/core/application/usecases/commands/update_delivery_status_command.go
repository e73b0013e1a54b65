package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
		"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
	)
	ErrTargetStatusIsNotReachableByDriver = errors.New(
		"target status must be Delivered or Returned",
	)
)

// UpdateDeliveryStatusCommand represents the assigned driver reporting
// the outcome of an in-transit delivery: handed over (Delivered) or
// handed back (Returned). Cancellation is a separate command because it
// belongs to senders and administrators, not drivers.
//
// Example:
//
//	cmd, err := NewUpdateDeliveryStatusCommand(deliveryID, driverID, "Delivered")
//	if err != nil {
//	    return fmt.Errorf("invalid status report: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID   kernel.UUID
	driverID     kernel.UUID
	targetStatus delivery.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a status report command.
// The target status arrives as a raw string and must name either the
// Delivered or Returned state.
func NewUpdateDeliveryStatusCommand(
	deliveryID kernel.UUID,
	driverID kernel.UUID,
	targetStatus string,
) (UpdateDeliveryStatusCommand, error) {
	command := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setDriverID(driverID),
		command.setTargetStatus(targetStatus),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDeliveryStatusCommandIsNotConstructed if validation fails.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being reported on.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// DriverID returns the identity of the reporting driver.
func (c UpdateDeliveryStatusCommand) DriverID() kernel.UUID {
	return c.driverID
}

// TargetStatus returns the reported outcome state.
func (c UpdateDeliveryStatusCommand) TargetStatus() delivery.Status {
	return c.targetStatus
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setTargetStatus(targetStatus string) error {
	status, err := delivery.StatusFromString(targetStatus)
	if err != nil {
		return err
	}

	if status != delivery.StatusDelivered && status != delivery.StatusReturned {
		return ErrTargetStatusIsNotReachableByDriver
	}

	c.targetStatus = status
	return nil
}
