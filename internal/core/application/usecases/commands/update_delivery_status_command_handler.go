package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
)

// UpdateDeliveryStatusCommandHandler applies a driver's outcome report to
// the delivery record. Authorization (only the assigned driver) and the
// legality of the transition are decided by the aggregate; the handler
// persists the result with a write conditioned on the status it read, so
// a concurrent change surfaces as a staleness error instead of a lost
// update.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for driver status reports.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status report command.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, command UpdateDeliveryStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor, err := delivery.NewActor(command.DriverID(), delivery.RoleDriver)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()

	record, err := repo.Get(ctx, command.DeliveryID())
	if err != nil {
		return err
	}

	expectedStatus := record.Status()

	switch command.TargetStatus() {
	case delivery.StatusDelivered:
		err = record.MarkDelivered(actor)
	case delivery.StatusReturned:
		err = record.MarkReturned(actor)
	default:
		err = ErrTargetStatusIsNotReachableByDriver
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, record, expectedStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
