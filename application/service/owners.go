package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wealthmap/wealthmap/domain/owner"
	"github.com/wealthmap/wealthmap/domain/property"
)

// OwnerPortfolio pairs an owner with its full current property portfolio.
type OwnerPortfolio struct {
	Owner      owner.Owner
	Properties []property.Property
}

// Owners provides read-side owner queries for the API.
type Owners struct {
	owners     owner.Store
	properties property.Store
	logger     *slog.Logger
}

// NewOwners creates an Owners service.
func NewOwners(owners owner.Store, properties property.Store, logger *slog.Logger) *Owners {
	if logger == nil {
		logger = slog.Default()
	}
	return &Owners{owners: owners, properties: properties, logger: logger}
}

// Find returns owners matching the filter.
func (s *Owners) Find(ctx context.Context, filter owner.Filter) ([]owner.Owner, error) {
	return s.owners.Find(ctx, filter)
}

// Count returns the number of owners matching the filter.
func (s *Owners) Count(ctx context.Context, filter owner.Filter) (int64, error) {
	return s.owners.Count(ctx, filter)
}

// Get returns an owner with its portfolio, or database.ErrNotFound.
func (s *Owners) Get(ctx context.Context, id string) (OwnerPortfolio, error) {
	own, err := s.owners.Get(ctx, id)
	if err != nil {
		return OwnerPortfolio{}, err
	}

	portfolio, err := s.properties.ByOwner(ctx, own.ID())
	if err != nil {
		return OwnerPortfolio{}, fmt.Errorf("load portfolio: %w", err)
	}

	return OwnerPortfolio{Owner: own, Properties: portfolio}, nil
}
