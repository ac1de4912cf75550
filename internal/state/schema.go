package state

import (
	"database/sql"

	dbutil "github.com/llehouerou/openimg/internal/db"
)

const currentSchemaVersion = 2

func initSchema(db *sql.DB) error {
	err := dbutil.WithTx(db, createTables)
	if err != nil {
		return err
	}

	// Migration: add gallery sort column for databases created before it existed
	_, _ = db.Exec(`ALTER TABLE navigation_state ADD COLUMN sort TEXT`)

	return nil
}

func createTables(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS navigation_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			view_mode TEXT NOT NULL DEFAULT 'gallery',
			section TEXT NOT NULL,
			sort TEXT,
			selected_post_id TEXT
		);

		CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS uploaded_photos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			url TEXT NOT NULL,
			delete_hash TEXT,
			is_album INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_uploaded_photos_created_at ON uploaded_photos(created_at);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = tx.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
