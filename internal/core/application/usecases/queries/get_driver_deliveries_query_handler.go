package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverDeliveriesQueryHandler reads a driver's current and past
// deliveries and prices each row with the driver's share of the quote.
type GetDriverDeliveriesQueryHandler struct {
	db      *gorm.DB
	pricing services.PricingEngine
}

// NewGetDriverDeliveriesQueryHandler creates a handler for driver board queries.
// Requires a GORM database connection and the pricing engine for the
// earnings derivation.
func NewGetDriverDeliveriesQueryHandler(
	db *gorm.DB,
	pricing services.PricingEngine,
) GetDriverDeliveriesQueryHandler {
	return GetDriverDeliveriesQueryHandler{db: db, pricing: pricing}
}

// Handle executes the driver board query. Most recently touched records
// come first.
func (h GetDriverDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDriverDeliveriesQuery,
) ([]GetDriverDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	board := make([]GetDriverDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			origin,
			destination,
			category,
			tier,
			price,
			status,
			updated_at
		FROM deliveries
		WHERE driver_id = ?
		ORDER BY updated_at DESC
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDriverDeliveriesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Origin,
			&resp.Destination,
			&resp.Category,
			&resp.Tier,
			&resp.Price,
			&resp.Status,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = deliveryID
		resp.Earnings = h.pricing.Earnings(resp.Price)

		board = append(board, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}
