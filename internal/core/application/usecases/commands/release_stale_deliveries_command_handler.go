package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ReleaseStaleDeliveriesCommandHandler sweeps in-transit records that
// have not moved within the threshold and force-returns them under an
// administrative identity. Each record is written with a
// status-conditioned update, so a driver completing the delivery while
// the sweep runs keeps their result; the stale copy simply loses the
// race and is skipped.
type ReleaseStaleDeliveriesCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewReleaseStaleDeliveriesCommandHandler creates a handler for stale sweeps.
func NewReleaseStaleDeliveriesCommandHandler(uowFactory DeliveryUoWFactory) ReleaseStaleDeliveriesCommandHandler {
	return ReleaseStaleDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command. Returns the number of records
// released back to the backlog.
func (h ReleaseStaleDeliveriesCommandHandler) Handle(
	ctx context.Context,
	command ReleaseStaleDeliveriesCommand,
) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	sweeper, err := delivery.NewActor(kernel.NewUUID(), delivery.RoleAdmin)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()

	cutoff := time.Now().UTC().Add(-command.StaleAfter())
	records, err := repo.GetAllInTransitUpdatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	released := 0
	for _, record := range records {
		expectedStatus := record.Status()

		if err = record.ForceReturn(sweeper); err != nil {
			return 0, err
		}

		err = repo.Update(ctx, record, expectedStatus)
		if errors.Is(err, errs.ErrObjectIsStale) {
			// the driver beat the sweep; their outcome wins
			continue
		}
		if err != nil {
			return 0, err
		}

		released++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return released, nil
}
