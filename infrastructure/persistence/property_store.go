package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wealthmap/wealthmap/domain/property"
	"github.com/wealthmap/wealthmap/internal/database"
	"gorm.io/gorm"
)

// PropertyStore implements property.Store using GORM.
type PropertyStore struct {
	db     database.Database
	mapper PropertyMapper
}

// NewPropertyStore creates a new PropertyStore.
func NewPropertyStore(db database.Database) PropertyStore {
	return PropertyStore{
		db:     db,
		mapper: PropertyMapper{},
	}
}

// Upsert creates or updates the property identified by the record's external
// record id. Every mutable field is overwritten from the record
// (last-write-wins); the property id and external id never change.
func (s PropertyStore) Upsert(ctx context.Context, rec property.Record) (property.Property, error) {
	return database.WithTransactionResult(ctx, s.db, func(tx *gorm.DB) (property.Property, error) {
		var model PropertyModel
		err := tx.Where("external_id = ?", rec.ExternalID).First(&model).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created := property.NewProperty(rec.ExternalID, rec)
			model = s.mapper.ToModel(created)
			model.CreatedAt = time.Now()
			if err := tx.Create(&model).Error; err != nil {
				return property.Property{}, fmt.Errorf("create property: %w", err)
			}
			return s.mapper.ToDomain(model), nil

		case err != nil:
			return property.Property{}, err

		default:
			updated := s.mapper.ToDomain(model).WithRecord(rec)
			next := s.mapper.ToModel(updated)
			next.CreatedAt = model.CreatedAt
			if err := tx.Save(&next).Error; err != nil {
				return property.Property{}, fmt.Errorf("update property: %w", err)
			}
			return s.mapper.ToDomain(next), nil
		}
	})
}

// Get returns a property by id.
func (s PropertyStore) Get(ctx context.Context, id string) (property.Property, error) {
	var model PropertyModel
	err := s.db.Session(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return property.Property{}, fmt.Errorf("%w: property %s", database.ErrNotFound, id)
		}
		return property.Property{}, err
	}
	return s.mapper.ToDomain(model), nil
}

// Find returns properties matching the filter.
func (s PropertyStore) Find(ctx context.Context, filter property.Filter) ([]property.Property, error) {
	query := s.applyFilter(s.db.Session(ctx), filter)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var models []PropertyModel
	if err := query.Order("external_id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	props := make([]property.Property, 0, len(models))
	for _, m := range models {
		props = append(props, s.mapper.ToDomain(m))
	}
	return props, nil
}

// Count returns the number of properties matching the filter, ignoring its
// limit and offset.
func (s PropertyStore) Count(ctx context.Context, filter property.Filter) (int64, error) {
	var count int64
	err := s.applyFilter(s.db.Session(ctx).Model(&PropertyModel{}), filter).Count(&count).Error
	return count, err
}

// ByOwner returns an owner's full current portfolio via ownership links.
func (s PropertyStore) ByOwner(ctx context.Context, ownerID string) ([]property.Property, error) {
	var models []PropertyModel
	err := s.db.Session(ctx).
		Joins("JOIN ownership_links ON ownership_links.property_id = properties.id").
		Where("ownership_links.owner_id = ?", ownerID).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	props := make([]property.Property, 0, len(models))
	for _, m := range models {
		props = append(props, s.mapper.ToDomain(m))
	}
	return props, nil
}

func (s PropertyStore) applyFilter(db *gorm.DB, filter property.Filter) *gorm.DB {
	if filter.State != "" {
		db = db.Where("UPPER(state) = ?", strings.ToUpper(filter.State))
	}
	return db
}
