package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthmap/wealthmap/domain/owner"
	"github.com/wealthmap/wealthmap/internal/database"
)

// newTestDB creates a migrated in-memory SQLite database for testing.
// Cannot use the testdb package here due to import cycle (testdb imports
// persistence).
func newTestDB(t *testing.T) database.Database {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewDatabase(ctx, "sqlite:///:memory:")
	require.NoError(t, err)
	// Pooled in-memory SQLite connections are separate databases; keep
	// every query on the single migrated connection.
	require.NoError(t, db.ConfigurePool(1, 1, 0))
	require.NoError(t, AutoMigrate(db))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOwnerStoreGetOrCreate(t *testing.T) {
	db := newTestDB(t)
	store := NewOwnerStore(db)
	ctx := context.Background()

	created, err := store.GetOrCreate(ctx, "John Smith", "123 Main St")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID())
	assert.Equal(t, "JOHN SMITH", created.FullName())
	assert.Equal(t, "123 MAIN ST", created.MailingAddress())

	// Case and whitespace variants resolve to the same owner.
	variants := []struct{ name, addr string }{
		{"JOHN SMITH", "123 MAIN ST"},
		{" john smith ", "123 main st"},
		{"John Smith", " 123 Main St "},
	}
	for _, v := range variants {
		got, err := store.GetOrCreate(ctx, v.name, v.addr)
		require.NoError(t, err)
		assert.Equal(t, created.ID(), got.ID(), "variant %q / %q", v.name, v.addr)
	}

	count, err := store.Count(ctx, owner.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Same name at a different address is a different owner.
	other, err := store.GetOrCreate(ctx, "John Smith", "456 Oak Ave")
	require.NoError(t, err)
	assert.NotEqual(t, created.ID(), other.ID())
}

func TestOwnerStoreGetOrCreateRejectsEmptyIdentity(t *testing.T) {
	db := newTestDB(t)
	store := NewOwnerStore(db)

	_, err := store.GetOrCreate(context.Background(), "  ", "123 Main St")
	assert.ErrorIs(t, err, owner.ErrMissingIdentity)
}

func TestOwnerStoreGet(t *testing.T) {
	db := newTestDB(t)
	store := NewOwnerStore(db)
	ctx := context.Background()

	created, err := store.GetOrCreate(ctx, "Jane Doe", "9 Elm St")
	require.NoError(t, err)

	got, err := store.Get(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, created.ID(), got.ID())
	assert.Equal(t, "JANE DOE", got.FullName())

	_, err = store.Get(ctx, "missing-id")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestOwnerStoreFind(t *testing.T) {
	db := newTestDB(t)
	store := NewOwnerStore(db)
	ctx := context.Background()

	smith, err := store.GetOrCreate(ctx, "John Smith", "123 Main St, Springfield CA")
	require.NoError(t, err)
	_, err = store.GetOrCreate(ctx, "Alice Jones", "456 Oak Ave, Portland OR")
	require.NoError(t, err)

	rich, err := store.GetOrCreate(ctx, "Bob Rich", "789 Gold Rd, Aspen CO")
	require.NoError(t, err)
	require.NoError(t, store.UpdateWealth(ctx, rich.ID(), 5_000_000, owner.ConfidenceHigh, time.Now().UTC()))

	t.Run("by name substring", func(t *testing.T) {
		got, err := store.Find(ctx, owner.Filter{Name: "smith"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, smith.ID(), got[0].ID())
	})

	t.Run("by address substring", func(t *testing.T) {
		got, err := store.Find(ctx, owner.Filter{Address: "portland"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "ALICE JONES", got[0].FullName())
	})

	t.Run("by minimum net worth", func(t *testing.T) {
		got, err := store.Find(ctx, owner.Filter{MinNetWorth: 1_000_000})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, rich.ID(), got[0].ID())
	})

	t.Run("no match", func(t *testing.T) {
		got, err := store.Find(ctx, owner.Filter{Name: "nobody"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("limit and offset", func(t *testing.T) {
		first, err := store.Find(ctx, owner.Filter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, first, 2)

		rest, err := store.Find(ctx, owner.Filter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, rest, 1)
	})
}

func TestOwnerStoreUpdateWealth(t *testing.T) {
	db := newTestDB(t)
	store := NewOwnerStore(db)
	ctx := context.Background()

	created, err := store.GetOrCreate(ctx, "Jane Doe", "9 Elm St")
	require.NoError(t, err)
	require.Nil(t, created.EstimatedNetWorth())

	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.UpdateWealth(ctx, created.ID(), 3_200_000, owner.ConfidenceMedium, at))

	got, err := store.Get(ctx, created.ID())
	require.NoError(t, err)
	require.NotNil(t, got.EstimatedNetWorth())
	assert.InDelta(t, 3_200_000, *got.EstimatedNetWorth(), 1e-6)
	assert.Equal(t, owner.ConfidenceMedium, got.Confidence())
	assert.WithinDuration(t, at, got.LastUpdated(), time.Second)

	err = store.UpdateWealth(ctx, "missing-id", 1, owner.ConfidenceLow, at)
	assert.ErrorIs(t, err, database.ErrNotFound)
}
