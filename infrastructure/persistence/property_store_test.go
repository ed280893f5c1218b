package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthmap/wealthmap/domain/property"
	"github.com/wealthmap/wealthmap/internal/database"
)

func TestPropertyStoreUpsertCreates(t *testing.T) {
	db := newTestDB(t)
	store := NewPropertyStore(db)
	ctx := context.Background()

	created, err := store.Upsert(ctx, property.Record{
		ExternalID:   1001,
		City:         "Springfield",
		State:        "CA",
		ZipCode:      "90210",
		PropertyType: "SFR",
		AVMValue:     480_000,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID())
	assert.Equal(t, int64(1001), created.ExternalID())
	assert.Equal(t, "Springfield", created.Address().City)
	assert.InDelta(t, 480_000, created.AVM().Value, 1e-6)

	count, err := store.Count(ctx, property.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPropertyStoreUpsertUpdates(t *testing.T) {
	db := newTestDB(t)
	store := NewPropertyStore(db)
	ctx := context.Background()

	created, err := store.Upsert(ctx, property.Record{ExternalID: 1001, City: "Old Town", AVMValue: 100_000, YearBuilt: 1950})
	require.NoError(t, err)

	updated, err := store.Upsert(ctx, property.Record{ExternalID: 1001, City: "New Town", AVMValue: 250_000})
	require.NoError(t, err)

	// Same row: the property id survives re-ingestion.
	assert.Equal(t, created.ID(), updated.ID())
	assert.Equal(t, "New Town", updated.Address().City)
	assert.InDelta(t, 250_000, updated.AVM().Value, 1e-6)
	// Last-write-wins: fields absent from the new record are cleared.
	assert.Equal(t, 0, updated.YearBuilt())

	count, err := store.Count(ctx, property.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPropertyStoreGet(t *testing.T) {
	db := newTestDB(t)
	store := NewPropertyStore(db)
	ctx := context.Background()

	created, err := store.Upsert(ctx, property.Record{ExternalID: 7, State: "NY"})
	require.NoError(t, err)

	got, err := store.Get(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, created.ID(), got.ID())
	assert.Equal(t, "NY", got.Address().State)

	_, err = store.Get(ctx, "missing-id")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestPropertyStoreFindByState(t *testing.T) {
	db := newTestDB(t)
	store := NewPropertyStore(db)
	ctx := context.Background()

	for i, state := range []string{"CA", "CA", "NY"} {
		_, err := store.Upsert(ctx, property.Record{ExternalID: int64(i + 1), State: state})
		require.NoError(t, err)
	}

	ca, err := store.Find(ctx, property.Filter{State: "ca"})
	require.NoError(t, err)
	assert.Len(t, ca, 2)

	ny, err := store.Find(ctx, property.Filter{State: "NY"})
	require.NoError(t, err)
	assert.Len(t, ny, 1)

	count, err := store.Count(ctx, property.Filter{State: "CA"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	paged, err := store.Find(ctx, property.Filter{Limit: 1, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, paged, 1)
}

func TestOwnershipLinks(t *testing.T) {
	db := newTestDB(t)
	owners := NewOwnerStore(db)
	properties := NewPropertyStore(db)
	links := NewLinkStore(db)
	ctx := context.Background()

	o, err := owners.GetOrCreate(ctx, "John Smith", "123 Main St")
	require.NoError(t, err)
	p1, err := properties.Upsert(ctx, property.Record{ExternalID: 1, State: "CA"})
	require.NoError(t, err)
	p2, err := properties.Upsert(ctx, property.Record{ExternalID: 2, State: "NY"})
	require.NoError(t, err)

	require.NoError(t, links.Link(ctx, o.ID(), p1.ID()))
	require.NoError(t, links.Link(ctx, o.ID(), p2.ID()))

	// Re-linking an existing pair is a no-op.
	require.NoError(t, links.Link(ctx, o.ID(), p1.ID()))

	exists, err := links.Exists(ctx, o.ID(), p1.ID())
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = links.Exists(ctx, o.ID(), "other-property")
	require.NoError(t, err)
	assert.False(t, exists)

	portfolio, err := properties.ByOwner(ctx, o.ID())
	require.NoError(t, err)
	assert.Len(t, portfolio, 2)

	holders, err := owners.ByProperty(ctx, p1.ID())
	require.NoError(t, err)
	require.Len(t, holders, 1)
	assert.Equal(t, o.ID(), holders[0].ID())
}
