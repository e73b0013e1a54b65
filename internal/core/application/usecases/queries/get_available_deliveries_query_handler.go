package queries

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableDeliveriesQueryHandler reads the open backlog from the
// database. A record qualifies when it sits in Pending or Returned
// status with no driver attached; Returned records reappear here after
// a hand-back.
type GetAvailableDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDeliveriesQueryHandler creates a handler for backlog queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableDeliveriesQueryHandler(db *gorm.DB) GetAvailableDeliveriesQueryHandler {
	return GetAvailableDeliveriesQueryHandler{db: db}
}

// Handle executes the backlog query. Oldest records come first so
// long-waiting deliveries get picked up sooner.
func (h GetAvailableDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDeliveriesQuery,
) ([]GetAvailableDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	backlog := make([]GetAvailableDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			origin,
			destination,
			category,
			tier,
			distance_km,
			price,
			max_delivery_time_hours,
			status,
			created_at
		FROM deliveries
		WHERE status IN (?, ?) AND driver_id IS NULL
		ORDER BY created_at
	`, delivery.StatusPending.String(), delivery.StatusReturned.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailableDeliveriesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Origin,
			&resp.Destination,
			&resp.Category,
			&resp.Tier,
			&resp.DistanceKm,
			&resp.Price,
			&resp.MaxDeliveryTimeHours,
			&resp.Status,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = deliveryID

		backlog = append(backlog, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return backlog, nil
}
