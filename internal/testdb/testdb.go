// Package testdb provides a shared test database helper for fast,
// realistic testing against an in-memory SQLite database.
package testdb

import (
	"context"
	"testing"

	"github.com/wealthmap/wealthmap/infrastructure/persistence"
	"github.com/wealthmap/wealthmap/internal/database"
)

// New creates an in-memory SQLite database with all migrations applied.
// The database is automatically closed when the test finishes.
func New(t *testing.T) database.Database {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewDatabase(ctx, "sqlite:///:memory:")
	if err != nil {
		t.Fatalf("testdb.New: open database: %v", err)
	}
	// A pooled in-memory SQLite connection is a database of its own; keep
	// every query on the single migrated connection.
	if err := db.ConfigurePool(1, 1, 0); err != nil {
		_ = db.Close()
		t.Fatalf("testdb.New: configure pool: %v", err)
	}
	if err := persistence.AutoMigrate(db); err != nil {
		_ = db.Close()
		t.Fatalf("testdb.New: auto migrate: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// NewPlain creates an in-memory SQLite database without running migrations.
func NewPlain(t *testing.T) database.Database {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewDatabase(ctx, "sqlite:///:memory:")
	if err != nil {
		t.Fatalf("testdb.NewPlain: open database: %v", err)
	}
	if err := db.ConfigurePool(1, 1, 0); err != nil {
		_ = db.Close()
		t.Fatalf("testdb.NewPlain: configure pool: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
