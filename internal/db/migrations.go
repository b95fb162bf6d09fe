package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS plugins (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  version TEXT NOT NULL,
  description TEXT,
  file_path TEXT NOT NULL,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  UNIQUE (name, version)
);

CREATE TABLE IF NOT EXISTS download_events (
  id INTEGER PRIMARY KEY,
  plugin_id INTEGER NOT NULL,
  user_id TEXT,
  address_key TEXT,
  occurred_at INTEGER NOT NULL,
  FOREIGN KEY (plugin_id) REFERENCES plugins(id) ON DELETE CASCADE
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: composite indexes for the windowed count query. The count
	// predicate is (plugin_id, identity column, occurred_at >= since), so both
	// identity columns get their own covering index.
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_download_events_plugin_user ON download_events(plugin_id, user_id, occurred_at)`); err != nil {
		return fmt.Errorf("create idx_download_events_plugin_user: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_download_events_plugin_addr ON download_events(plugin_id, address_key, occurred_at)`); err != nil {
		return fmt.Errorf("create idx_download_events_plugin_addr: %w", err)
	}

	// Migration 2: plain occurred_at index so retention pruning doesn't scan.
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_download_events_occurred_at ON download_events(occurred_at)`); err != nil {
		return fmt.Errorf("create idx_download_events_occurred_at: %w", err)
	}

	// Migration 3: add description column to plugins if missing (pre-release
	// databases were created without it).
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('plugins') WHERE name = 'description'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("check description column: %w", err)
	}
	if count == 0 {
		if _, err := db.Exec(`ALTER TABLE plugins ADD COLUMN description TEXT`); err != nil {
			return fmt.Errorf("add description column: %w", err)
		}
	}

	return nil
}
