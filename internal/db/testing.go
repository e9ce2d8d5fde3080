package db

import (
	"context"
	"path/filepath"
	"testing"
)

// NewTestStore provides a migrated database in a temp dir for use in tests
// of other packages.
func NewTestStore(t testing.TB) *Store {
	t.Helper()

	ctx := context.Background()
	store, err := NewStore(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})

	if _, err := store.Migrate(ctx); err != nil {
		t.Fatalf("migrate test store: %v", err)
	}
	return store
}
