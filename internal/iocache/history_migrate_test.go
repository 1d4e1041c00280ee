package iocache

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/peakform/peakform/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteTableExists(t *testing.T, dbPath, table string) bool {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&count)
	require.NoError(t, err)
	return count > 0
}

func TestMigrateHistory_NoneBackend(t *testing.T) {
	err := MigrateHistory(schema.NoneBackend, "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations are not supported")
}

func TestMigrateHistory_UnsupportedBackend(t *testing.T) {
	err := MigrateHistory("garbage", "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}

func TestMigrateHistory_SQLite(t *testing.T) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test_migrate.db")

	// Migrate to the latest version
	err := MigrateHistory(schema.SQLiteBackend, dbPath, -1)
	require.NoError(t, err)
	assert.True(t, sqliteTableExists(t, dbPath, runsTable), "runs table should exist after migrating up")
	assert.True(t, sqliteTableExists(t, dbPath, dailyLoadsTable), "daily loads table should exist after migrating up")

	// Migrating again is a no-op
	err = MigrateHistory(schema.SQLiteBackend, dbPath, -1)
	assert.NoError(t, err)

	// Version 1 only has the runs table
	err = MigrateHistory(schema.SQLiteBackend, dbPath, 1)
	require.NoError(t, err)
	assert.True(t, sqliteTableExists(t, dbPath, runsTable))
	assert.False(t, sqliteTableExists(t, dbPath, dailyLoadsTable), "daily loads table should be dropped at version 1")

	// Roll back everything
	err = MigrateHistory(schema.SQLiteBackend, dbPath, 0)
	require.NoError(t, err)
	assert.False(t, sqliteTableExists(t, dbPath, runsTable), "runs table should be dropped at version 0")

	// And back up to a specific version
	err = MigrateHistory(schema.SQLiteBackend, dbPath, 2)
	require.NoError(t, err)
	assert.True(t, sqliteTableExists(t, dbPath, runsTable))
	assert.True(t, sqliteTableExists(t, dbPath, dailyLoadsTable))
}

func TestMigrateHistory_InMemory(t *testing.T) {
	err := MigrateHistory(schema.SQLiteBackend, ":memory:", -1)
	assert.NoError(t, err)
}
