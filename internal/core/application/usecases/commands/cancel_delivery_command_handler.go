package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
)

// CancelDeliveryCommandHandler applies a cancellation to the delivery
// record. The aggregate decides who may cancel and from which states;
// the handler persists the result with a status-conditioned write.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCancelDeliveryCommandHandler creates a handler for cancellation operations.
func NewCancelDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h CancelDeliveryCommandHandler) Handle(ctx context.Context, command CancelDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor, err := delivery.NewActor(command.ActorID(), command.ActorRole())
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

	if err = record.Cancel(actor); err != nil {
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
