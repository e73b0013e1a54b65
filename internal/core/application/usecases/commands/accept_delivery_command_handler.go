package commands

import (
	"context"
)

// AcceptDeliveryCommandHandler orchestrates a driver's claim on an open
// delivery. The claim itself is a single conditional storage operation:
// the repository checks the delivery's availability and the driver's
// exclusivity inside one statement, so two drivers racing for the same
// record, or one driver racing for two records, cannot both win.
//
// Example:
//
//	handler := NewAcceptDeliveryCommandHandler(uowFactory)
//	cmd, _ := NewAcceptDeliveryCommand(deliveryID, driverID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ports.ErrDeliveryUnavailable):
//	    log.Println("Delivery already taken or closed")
//	case errors.Is(err, ports.ErrDriverBusy):
//	    log.Println("Driver has an active delivery")
//	case err != nil:
//	    log.Printf("Claim failed: %v", err)
//	}
type AcceptDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery claim operations.
func NewAcceptDeliveryCommandHandler(uowFactory DeliveryUoWFactory) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command. Returns ports.ErrDeliveryUnavailable
// when the record was taken or closed first and ports.ErrDriverBusy when
// the driver already carries an in-transit delivery.
func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, command AcceptDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.DeliveryRepository().Accept(ctx, command.DeliveryID(), command.DriverID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
