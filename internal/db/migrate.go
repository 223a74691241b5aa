package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list re-runs safely on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS messages (
		id         TEXT PRIMARY KEY,
		role       TEXT NOT NULL CHECK(role IN ('user','assistant')),
		text       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages(created_at)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}
