package persistence

import (
	"context"
	"fmt"

	"github.com/wealthmap/wealthmap/internal/database"
	"gorm.io/gorm"
)

// LinkStore implements property.LinkStore using GORM.
type LinkStore struct {
	db database.Database
}

// NewLinkStore creates a new LinkStore.
func NewLinkStore(db database.Database) LinkStore {
	return LinkStore{db: db}
}

// Link inserts an ownership link if the (owner, property) pair does not
// already exist. Duplicate calls are a no-op, never an error.
func (s LinkStore) Link(ctx context.Context, ownerID, propertyID string) error {
	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&OwnershipLinkModel{}).
			Where("owner_id = ? AND property_id = ?", ownerID, propertyID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		link := OwnershipLinkModel{OwnerID: ownerID, PropertyID: propertyID}
		if err := tx.Create(&link).Error; err != nil {
			return fmt.Errorf("create ownership link: %w", err)
		}
		return nil
	})
}

// Exists reports whether the (owner, property) pair is linked.
func (s LinkStore) Exists(ctx context.Context, ownerID, propertyID string) (bool, error) {
	var count int64
	err := s.db.Session(ctx).Model(&OwnershipLinkModel{}).
		Where("owner_id = ? AND property_id = ?", ownerID, propertyID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
