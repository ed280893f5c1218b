package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wealthmap/wealthmap/domain/owner"
	"github.com/wealthmap/wealthmap/internal/database"
	"gorm.io/gorm"
)

// OwnerStore implements owner.Store using GORM. Every operation runs in its
// own short-lived transaction so a failure partway through an ingestion run
// leaves previously committed rows intact.
type OwnerStore struct {
	db     database.Database
	mapper OwnerMapper
}

// NewOwnerStore creates a new OwnerStore.
func NewOwnerStore(db database.Database) OwnerStore {
	return OwnerStore{
		db:     db,
		mapper: OwnerMapper{},
	}
}

// GetOrCreate resolves an owner by its normalized (name, address) pair,
// creating it when absent. The look-before-insert keeps the natural-key
// unique index from ever surfacing as a runtime integrity error.
func (s OwnerStore) GetOrCreate(ctx context.Context, fullName, mailingAddress string) (owner.Owner, error) {
	name := owner.NormalizeName(fullName)
	addr := owner.NormalizeAddress(mailingAddress)

	return database.WithTransactionResult(ctx, s.db, func(tx *gorm.DB) (owner.Owner, error) {
		var model OwnerModel
		err := tx.Where("full_name = ? AND mailing_address = ?", name, addr).First(&model).Error
		if err == nil {
			return s.mapper.ToDomain(model), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return owner.Owner{}, err
		}

		created, err := owner.NewOwner(name, addr)
		if err != nil {
			return owner.Owner{}, err
		}

		model = s.mapper.ToModel(created)
		model.CreatedAt = time.Now()
		if err := tx.Create(&model).Error; err != nil {
			return owner.Owner{}, fmt.Errorf("create owner: %w", err)
		}
		return s.mapper.ToDomain(model), nil
	})
}

// Get returns an owner by id.
func (s OwnerStore) Get(ctx context.Context, id string) (owner.Owner, error) {
	var model OwnerModel
	err := s.db.Session(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return owner.Owner{}, fmt.Errorf("%w: owner %s", database.ErrNotFound, id)
		}
		return owner.Owner{}, err
	}
	return s.mapper.ToDomain(model), nil
}

// Find returns owners matching the filter.
func (s OwnerStore) Find(ctx context.Context, filter owner.Filter) ([]owner.Owner, error) {
	query := s.applyFilter(s.db.Session(ctx), filter)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var models []OwnerModel
	if err := query.Order("full_name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	owners := make([]owner.Owner, 0, len(models))
	for _, m := range models {
		owners = append(owners, s.mapper.ToDomain(m))
	}
	return owners, nil
}

// Count returns the number of owners matching the filter, ignoring its
// limit and offset.
func (s OwnerStore) Count(ctx context.Context, filter owner.Filter) (int64, error) {
	var count int64
	err := s.applyFilter(s.db.Session(ctx).Model(&OwnerModel{}), filter).Count(&count).Error
	return count, err
}

// ByProperty returns the owners linked to a property.
func (s OwnerStore) ByProperty(ctx context.Context, propertyID string) ([]owner.Owner, error) {
	var models []OwnerModel
	err := s.db.Session(ctx).
		Joins("JOIN ownership_links ON ownership_links.owner_id = owners.id").
		Where("ownership_links.property_id = ?", propertyID).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	owners := make([]owner.Owner, 0, len(models))
	for _, m := range models {
		owners = append(owners, s.mapper.ToDomain(m))
	}
	return owners, nil
}

// UpdateWealth persists a recomputed estimate onto the owner.
func (s OwnerStore) UpdateWealth(ctx context.Context, id string, netWorth float64, confidence owner.ConfidenceTier, at time.Time) error {
	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		result := tx.Model(&OwnerModel{}).Where("id = ?", id).Updates(map[string]any{
			"estimated_net_worth": netWorth,
			"confidence_level":    string(confidence),
			"last_updated":        at,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: owner %s", database.ErrNotFound, id)
		}
		return nil
	})
}

// applyFilter adds the filter's WHERE conditions. Names and addresses are
// stored normalized (upper-cased), so substring matching upper-cases the
// needle instead of relying on a database-specific ILIKE.
func (s OwnerStore) applyFilter(db *gorm.DB, filter owner.Filter) *gorm.DB {
	if filter.Name != "" {
		db = db.Where("full_name LIKE ?", "%"+strings.ToUpper(filter.Name)+"%")
	}
	if filter.Address != "" {
		db = db.Where("mailing_address LIKE ?", "%"+strings.ToUpper(filter.Address)+"%")
	}
	if filter.MinNetWorth > 0 {
		db = db.Where("estimated_net_worth >= ?", filter.MinNetWorth)
	}
	return db
}
