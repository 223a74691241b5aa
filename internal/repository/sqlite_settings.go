package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kiranj/helloguys/internal/domain"
)

// settingsKey is the single row under which preferences are stored.
const settingsKey = "settings"

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database. The
// whole Settings value is stored as one JSON snapshot.
type SQLiteSettingsRepo struct {
	db *sql.DB
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(db *sql.DB) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: db}
}

func (r *SQLiteSettingsRepo) Save(ctx context.Context, s domain.Settings) error {
	data, err := domain.Snapshot(s)
	if err != nil {
		return err
	}

	query := `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, query, settingsKey, string(data)); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

func (r *SQLiteSettingsRepo) Load(ctx context.Context) (domain.Settings, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, settingsKey,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Settings{}, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return domain.Settings{}, fmt.Errorf("loading settings: %w", err)
	}

	return domain.RestoreSettings([]byte(value))
}
