package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"messages", "settings"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMessagesRoleConstraint(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO messages (id, role, text, created_at) VALUES ('m1', 'system', 'x', '2026-01-01T00:00:00Z')`,
	)
	assert.Error(t, err)
}
