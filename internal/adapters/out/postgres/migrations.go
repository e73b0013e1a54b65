package postgres

import (
	"dispatch/internal/adapters/out/postgres/deliveryrepo"

	"gorm.io/gorm"
)

// Migrate creates the delivery schema and the partial unique index that
// backs the one-active-delivery-per-driver rule across transactions. The
// index admits any number of terminal rows per driver but at most one
// InTransit row, so even two claims committed from separate connections
// cannot leave a driver with two active deliveries.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&deliveryrepo.DeliveryDTO{}); err != nil {
		return err
	}

	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_deliveries_active_driver
		ON deliveries (driver_id)
		WHERE status = 'InTransit'
	`).Error
}
