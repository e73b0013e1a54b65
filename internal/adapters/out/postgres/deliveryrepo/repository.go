package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres error code raised when the partial
// unique index on active drivers rejects a second in-transit row.
const uniqueViolation = "23505"

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
//
// Two writes are deliberately conditional. Update only touches a row
// still holding the status the caller read, turning every lost race into
// an explicit staleness error. Accept claims a delivery in one statement
// that checks availability and driver exclusivity together, with the
// partial unique index on (driver_id) WHERE status = 'InTransit' as the
// cross-transaction backstop.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery, conditioned on the stored row still
// holding expectedStatus. Only the mutable columns are written; route,
// package and quote are immutable after creation. Returns an
// ObjectIsStaleError when the row changed underneath the caller.
func (r *GormDeliveryRepository) Update(
	ctx context.Context,
	aggregate *delivery.Delivery,
	expectedStatus delivery.Status,
) error {
	if err := errors.Join(aggregate.Validate(), expectedStatus.Validate()); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ? AND status = ?", dto.ID, expectedStatus.String()).
		Updates(map[string]any{
			"receiver_name":  dto.ReceiverName,
			"receiver_phone": dto.ReceiverPhone,
			"status":         dto.Status,
			"driver_id":      dto.DriverID,
			"updated_at":     dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectIsStaleError("delivery", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Accept atomically claims an open delivery for a driver. The claim is a
// single UPDATE whose WHERE clause re-checks everything the decision
// depends on, so the row is claimed exactly once no matter how many
// requests race for it.
func (r *GormDeliveryRepository) Accept(
	ctx context.Context,
	deliveryID kernel.UUID,
	driverID kernel.UUID,
) (*delivery.Delivery, error) {
	if err := errors.Join(deliveryID.Validate(), driverID.Validate()); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE deliveries
		SET status = ?, driver_id = ?, updated_at = ?
		WHERE id = ?
		  AND status IN (?, ?)
		  AND driver_id IS NULL
		  AND NOT EXISTS (
			SELECT 1 FROM deliveries busy
			WHERE busy.driver_id = ? AND busy.status = ?
		  )
	`,
		delivery.StatusInTransit.String(), driverID.Bytes(), time.Now().UTC(),
		deliveryID.Bytes(),
		delivery.StatusPending.String(), delivery.StatusReturned.String(),
		driverID.Bytes(), delivery.StatusInTransit.String(),
	)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ports.ErrDriverBusy
		}
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, r.classifyFailedClaim(ctx, deliveryID, driverID)
	}

	aggregate, err := r.Get(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// classifyFailedClaim distinguishes the two reasons a claim can match
// zero rows: the driver is busy, or the delivery is gone from the
// backlog. Checked in that order so a busy driver gets the actionable
// error even when both hold.
func (r *GormDeliveryRepository) classifyFailedClaim(
	ctx context.Context,
	deliveryID kernel.UUID,
	driverID kernel.UUID,
) error {
	var busy int64
	err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("driver_id = ? AND status = ?", driverID.Bytes(), delivery.StatusInTransit.String()).
		Count(&busy).Error
	if err != nil {
		return err
	}
	if busy > 0 {
		return ports.ErrDriverBusy
	}

	var exists int64
	err = r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ?", deliveryID.Bytes()).
		Count(&exists).Error
	if err != nil {
		return err
	}
	if exists == 0 {
		return errs.NewObjectNotFoundError("delivery", deliveryID.String())
	}

	return ports.ErrDeliveryUnavailable
}

// GetAllInTransitUpdatedBefore retrieves in-transit deliveries whose last
// state change happened before the cutoff.
func (r *GormDeliveryRepository) GetAllInTransitUpdatedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND updated_at < ?", delivery.StatusInTransit.String(), cutoff).
		Error
	if err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, aggregate)
	}

	return deliveries, nil
}
