package property

import "context"

// Filter narrows property listing queries. Zero values mean "no constraint".
type Filter struct {
	// State matches the state field exactly (case-insensitive).
	State  string
	Limit  int
	Offset int
}

// Store defines property persistence operations.
type Store interface {
	// Upsert creates or updates the property identified by the record's
	// external record id. All mutable fields are overwritten from the
	// record; the property id and external id never change.
	Upsert(ctx context.Context, rec Record) (Property, error)

	// Get returns a property by id, or database.ErrNotFound.
	Get(ctx context.Context, id string) (Property, error)

	// Find returns properties matching the filter.
	Find(ctx context.Context, filter Filter) ([]Property, error)

	// Count returns the number of properties matching the filter, ignoring
	// its limit and offset.
	Count(ctx context.Context, filter Filter) (int64, error)

	// ByOwner returns an owner's full current portfolio via ownership links.
	ByOwner(ctx context.Context, ownerID string) ([]Property, error)
}

// LinkStore defines ownership-link persistence operations.
type LinkStore interface {
	// Link records that the owner has an ownership interest in the
	// property. Inserting an existing pair is a no-op, never an error.
	Link(ctx context.Context, ownerID, propertyID string) error

	// Exists reports whether the (owner, property) pair is linked.
	Exists(ctx context.Context, ownerID, propertyID string) (bool, error)
}
