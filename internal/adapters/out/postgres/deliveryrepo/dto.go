// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. This package implements the repository pattern
// for the delivery aggregate, handling the conversion between domain
// entities and database representations.
package deliveryrepo

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. Indexed for the three hot paths: sender boards, driver
// boards and backlog scans by status.
//
// Timestamps are domain-managed (the aggregate touches updated_at on
// every state change), so GORM's automatic time tracking is disabled.
type DeliveryDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderID uuid.UUID `gorm:"type:uuid;index"`

	SenderName    string
	SenderPhone   string
	ReceiverName  string
	ReceiverPhone string

	Origin      string
	Destination string
	Category    string
	Tier        string

	DistanceKm           float64
	Price                int
	MaxDeliveryTimeHours float64

	Status   string     `gorm:"index"`
	DriverID *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database
// representation, including the optional driver assignment.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return DeliveryDTO{
		ID:                   aggregate.ID().Bytes(),
		SenderID:             aggregate.SenderID().Bytes(),
		SenderName:           aggregate.Sender().Name(),
		SenderPhone:          aggregate.Sender().Phone(),
		ReceiverName:         aggregate.Receiver().Name(),
		ReceiverPhone:        aggregate.Receiver().Phone(),
		Origin:               aggregate.Origin().Name(),
		Destination:          aggregate.Destination().Name(),
		Category:             aggregate.Category().String(),
		Tier:                 aggregate.Tier().String(),
		DistanceKm:           aggregate.Quote().DistanceKm(),
		Price:                aggregate.Quote().Price(),
		MaxDeliveryTimeHours: aggregate.Quote().MaxDeliveryTimeHours(),
		Status:               aggregate.Status().String(),
		DriverID:             driverID,
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the complete aggregate including status and driver
// assignment using RestoreDelivery, which re-validates the row.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	sender, err := delivery.NewContact(dto.SenderName, dto.SenderPhone)
	if err != nil {
		return nil, err
	}

	receiver, err := delivery.NewContact(dto.ReceiverName, dto.ReceiverPhone)
	if err != nil {
		return nil, err
	}

	origin, err := kernel.NewRegion(dto.Origin)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewRegion(dto.Destination)
	if err != nil {
		return nil, err
	}

	category, err := delivery.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	tier, err := delivery.TierFromString(dto.Tier)
	if err != nil {
		return nil, err
	}

	quote, err := delivery.NewQuote(dto.DistanceKm, dto.Price, dto.MaxDeliveryTimeHours)
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, senderID, sender, receiver,
		origin, destination, category, tier, quote,
		status, driverID, dto.CreatedAt, dto.UpdatedAt,
	)
}
