package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultPath returns the database location: the HELLOGUYS_DB environment
// variable when set, otherwise ~/.helloguys/helloguys.db.
func DefaultPath() (string, error) {
	if p := os.Getenv("HELLOGUYS_DB"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".helloguys", "helloguys.db"), nil
}

// startupPragmas run on every open: WAL so the chat view can read history
// while an exchange is being written, foreign keys on, and a busy timeout
// so a second helloguys process waits instead of failing fast.
var startupPragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
}

// OpenDB opens the transcript and settings database at path, creating the
// parent directory on first run. ":memory:" opens a fresh in-memory
// database. The connection comes back with startup pragmas applied and
// all migrations run.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	for _, pragma := range startupPragmas {
		if _, err := database.Exec(pragma); err != nil {
			database.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}

	if err := Migrate(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return database, nil
}
