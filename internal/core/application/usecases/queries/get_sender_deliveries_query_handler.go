package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSenderDeliveriesQueryHandler reads everything a sender has shipped,
// from open records to terminal history.
type GetSenderDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetSenderDeliveriesQueryHandler creates a handler for sender board queries.
// Requires a GORM database connection for query execution.
func NewGetSenderDeliveriesQueryHandler(db *gorm.DB) GetSenderDeliveriesQueryHandler {
	return GetSenderDeliveriesQueryHandler{db: db}
}

// Handle executes the sender board query. Newest records come first.
func (h GetSenderDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetSenderDeliveriesQuery,
) ([]GetSenderDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	board := make([]GetSenderDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			receiver_name,
			receiver_phone,
			origin,
			destination,
			category,
			tier,
			price,
			status,
			created_at,
			updated_at
		FROM deliveries
		WHERE sender_id = ?
		ORDER BY created_at DESC
	`, query.SenderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetSenderDeliveriesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.ReceiverName,
			&resp.ReceiverPhone,
			&resp.Origin,
			&resp.Destination,
			&resp.Category,
			&resp.Tier,
			&resp.Price,
			&resp.Status,
			&resp.CreatedAt,
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

		board = append(board, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}
