// Package persistence provides database storage implementations.
package persistence

import "github.com/wealthmap/wealthmap/internal/database"

// AutoMigrate runs GORM auto migration for all models.
func AutoMigrate(db database.Database) error {
	return db.GORM().AutoMigrate(
		&OwnerModel{},
		&PropertyModel{},
		&OwnershipLinkModel{},
	)
}
