// Package testutil provides shared helpers for store tests.
package testutil

import (
	"context"
	"testing"

	"itinero-server/internal/repo"
	"itinero-server/internal/repo/sqlite"
)

// NewSQLiteStore opens an in-memory SQLite database with all embedded
// migrations applied. The store is closed automatically when the test (and
// all its subtests) finish. The in-memory database needs no environment
// setup, so these tests always run.
func NewSQLiteStore(t *testing.T) repo.Store {
	t.Helper()

	s, err := sqlite.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("testutil.NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.Repos()
}
