// Package testutil provides test helpers for seeding page stores.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pagekit/internal/infrastructure/sqlite"
)

// NewTestDB opens a migrated page store in a temp directory. It is closed
// when the test ends.
func NewTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	return OpenTestDB(t, filepath.Join(t.TempDir(), "pages.db"))
}

// OpenTestDB opens (or creates) the page store at path and closes it when the
// test ends. Use it to seed a store that a command under test opens later.
func OpenTestDB(t *testing.T, path string) *sqlite.DB {
	t.Helper()
	db, err := sqlite.NewDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}
