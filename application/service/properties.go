package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wealthmap/wealthmap/domain/owner"
	"github.com/wealthmap/wealthmap/domain/property"
)

// PropertyListing pairs a property with the owners holding an interest in it.
type PropertyListing struct {
	Property property.Property
	Owners   []owner.Owner
}

// Properties provides read-side property queries for the API.
type Properties struct {
	properties property.Store
	owners     owner.Store
	logger     *slog.Logger
}

// NewProperties creates a Properties service.
func NewProperties(properties property.Store, owners owner.Store, logger *slog.Logger) *Properties {
	if logger == nil {
		logger = slog.Default()
	}
	return &Properties{properties: properties, owners: owners, logger: logger}
}

// Find returns property listings matching the filter, each with its owners.
func (s *Properties) Find(ctx context.Context, filter property.Filter) ([]PropertyListing, error) {
	props, err := s.properties.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	listings := make([]PropertyListing, 0, len(props))
	for _, p := range props {
		owners, err := s.owners.ByProperty(ctx, p.ID())
		if err != nil {
			return nil, fmt.Errorf("load owners for property %s: %w", p.ID(), err)
		}
		listings = append(listings, PropertyListing{Property: p, Owners: owners})
	}
	return listings, nil
}

// Count returns the number of properties matching the filter.
func (s *Properties) Count(ctx context.Context, filter property.Filter) (int64, error) {
	return s.properties.Count(ctx, filter)
}

// Get returns one property listing by id, or database.ErrNotFound.
func (s *Properties) Get(ctx context.Context, id string) (PropertyListing, error) {
	p, err := s.properties.Get(ctx, id)
	if err != nil {
		return PropertyListing{}, err
	}

	owners, err := s.owners.ByProperty(ctx, p.ID())
	if err != nil {
		return PropertyListing{}, fmt.Errorf("load owners: %w", err)
	}

	return PropertyListing{Property: p, Owners: owners}, nil
}
