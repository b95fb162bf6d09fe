package db_test

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"plughub/internal/db"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestMigrate(t *testing.T) {
	database := openTestDB(t)
	require.NoError(t, db.Migrate(database))

	for _, table := range []string{"plugins", "download_events"} {
		var name string
		err := database.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}

	for _, index := range []string{
		"idx_download_events_plugin_user",
		"idx_download_events_plugin_addr",
		"idx_download_events_occurred_at",
	} {
		var name string
		err := database.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'index' AND name = ?`, index).Scan(&name)
		require.NoError(t, err, "index %s should exist", index)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database := openTestDB(t)
	require.NoError(t, db.Migrate(database))
	require.NoError(t, db.Migrate(database))
}

func TestMigrate_AddsDescriptionColumn(t *testing.T) {
	database := openTestDB(t)

	// Simulate a pre-release schema without the description column.
	_, err := database.Exec(`
		CREATE TABLE plugins (
		  id INTEGER PRIMARY KEY,
		  name TEXT NOT NULL,
		  version TEXT NOT NULL,
		  file_path TEXT NOT NULL,
		  created_at TEXT NOT NULL,
		  updated_at TEXT NOT NULL,
		  UNIQUE (name, version)
		)
	`)
	require.NoError(t, err)

	require.NoError(t, db.Migrate(database))

	var count int
	err = database.QueryRow(`SELECT COUNT(*) FROM pragma_table_info('plugins') WHERE name = 'description'`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
