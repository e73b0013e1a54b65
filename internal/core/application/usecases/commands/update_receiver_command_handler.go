package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
)

// UpdateReceiverCommandHandler applies a receiver contact edit to the
// delivery record. Ownership and the before-pickup rule are decided by
// the aggregate.
type UpdateReceiverCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateReceiverCommandHandler creates a handler for receiver edits.
func NewUpdateReceiverCommandHandler(uowFactory DeliveryUoWFactory) UpdateReceiverCommandHandler {
	return UpdateReceiverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the receiver edit command.
func (h UpdateReceiverCommandHandler) Handle(ctx context.Context, command UpdateReceiverCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor, err := delivery.NewActor(command.SenderID(), delivery.RoleSender)
	if err != nil {
		return err
	}

	receiver, err := delivery.NewContact(command.ReceiverName(), command.ReceiverPhone())
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

	if err = record.UpdateReceiver(actor, receiver); err != nil {
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
