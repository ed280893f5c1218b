package owner

import (
	"context"
	"time"
)

// Filter narrows owner listing queries. Zero values mean "no constraint".
type Filter struct {
	// Name matches the full name by case-insensitive substring.
	Name string
	// Address matches the mailing address by case-insensitive substring.
	Address string
	// MinNetWorth keeps only owners whose estimated net worth is at least
	// this value; owners without an estimate are excluded when set.
	MinNetWorth float64
	Limit       int
	Offset      int
}

// Store defines owner persistence operations.
type Store interface {
	// GetOrCreate resolves an owner by its normalized (name, address) pair,
	// creating it when absent. Repeated calls with equivalent input yield
	// the same owner; existing attributes are never mutated.
	GetOrCreate(ctx context.Context, fullName, mailingAddress string) (Owner, error)

	// Get returns an owner by id, or database.ErrNotFound.
	Get(ctx context.Context, id string) (Owner, error)

	// Find returns owners matching the filter.
	Find(ctx context.Context, filter Filter) ([]Owner, error)

	// Count returns the number of owners matching the filter, ignoring
	// its limit and offset.
	Count(ctx context.Context, filter Filter) (int64, error)

	// ByProperty returns the owners linked to a property.
	ByProperty(ctx context.Context, propertyID string) ([]Owner, error)

	// UpdateWealth persists a recomputed estimate onto the owner and
	// refreshes its last-updated timestamp.
	UpdateWealth(ctx context.Context, id string, netWorth float64, confidence ConfidenceTier, at time.Time) error
}
