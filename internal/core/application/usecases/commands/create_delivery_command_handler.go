package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// CreateDeliveryCommandHandler handles the business logic for opening a
// delivery record. Resolves the requested regions against the closed
// region table, estimates the road distance, computes the binding quote
// and persists the record in Pending status.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory, estimator, pricing)
//	cmd, _ := NewCreateDeliveryCommand(...)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("delivery creation failed: %w", err)
//	}
//	// Record is now open and visible to drivers
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	estimator  services.DistanceEstimator
	pricing    services.PricingEngine
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation
// operations. Requires a DeliveryUoWFactory for transactional persistence
// and the two domain services for quote computation.
func NewCreateDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	estimator services.DistanceEstimator,
	pricing services.PricingEngine,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
		pricing:    pricing,
	}
}

// Handle processes the delivery creation command.
// Unknown regions, tiers or categories are rejected before any storage
// access. The quote is always recomputed here; nothing the client sent
// about price or distance survives into the record.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, command CreateDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	origin, err := kernel.NewRegion(command.Origin())
	if err != nil {
		return err
	}

	destination, err := kernel.NewRegion(command.Destination())
	if err != nil {
		return err
	}

	category, err := delivery.CategoryFromString(command.Category())
	if err != nil {
		return err
	}

	tier, err := delivery.TierFromString(command.Tier())
	if err != nil {
		return err
	}

	sender, err := delivery.NewContact(command.SenderName(), command.SenderPhone())
	if err != nil {
		return err
	}

	receiver, err := delivery.NewContact(command.ReceiverName(), command.ReceiverPhone())
	if err != nil {
		return err
	}

	distanceKm, err := h.estimator.Estimate(origin, destination)
	if err != nil {
		return err
	}

	quote, err := h.pricing.Price(distanceKm, tier, category)
	if err != nil {
		return err
	}

	record, err := delivery.NewDelivery(
		command.DeliveryID(), command.SenderID(),
		sender, receiver,
		origin, destination,
		category, tier, quote,
	)
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

	if err = uow.DeliveryRepository().Add(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
