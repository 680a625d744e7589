package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skystack/flightform/internal"
)

func TestSQLiteStoreContract(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, internal.RunMigrations(db, "sqlite3"))

	runStoreContract(t, NewSQLiteStore(db))
}
