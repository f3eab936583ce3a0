package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"memberportal/internal/infrastructure/database"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })
	return db
}
