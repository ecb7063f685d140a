package core

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), LogLevelSilent)
	require.NoError(t, err)

	sqlDB, err := store.DB.DB()
	require.NoError(t, err)
	// a single connection keeps the in-memory database alive across queries
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, store.Migrate())
	t.Cleanup(func() { store.Close() })

	return store
}
