package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/kiranj/helloguys/internal/domain"
)

// SQLiteTranscriptRepo implements TranscriptRepo using a SQLite database.
type SQLiteTranscriptRepo struct {
	db *sql.DB
}

// NewSQLiteTranscriptRepo creates a new SQLiteTranscriptRepo.
func NewSQLiteTranscriptRepo(db *sql.DB) *SQLiteTranscriptRepo {
	return &SQLiteTranscriptRepo{db: db}
}

func (r *SQLiteTranscriptRepo) Append(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (id, role, text, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		string(m.Role),
		m.Text,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting message: %w", err)
	}
	return nil
}

// List returns up to limit messages in chronological order. A limit of 0
// or less means no limit; when a limit applies, the most recent messages
// are kept.
func (r *SQLiteTranscriptRepo) List(ctx context.Context, limit int) ([]*domain.Message, error) {
	// rowid breaks timestamp ties in insertion order, since RFC3339 has
	// only second precision.
	query := `SELECT id, role, text, created_at FROM messages ORDER BY created_at, rowid`
	var args []any
	if limit > 0 {
		query = `SELECT id, role, text, created_at FROM (
			SELECT rowid AS rid, id, role, text, created_at FROM messages
			ORDER BY created_at DESC, rowid DESC LIMIT ?
		) ORDER BY created_at, rid`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()
	return r.scanMessages(rows)
}

func (r *SQLiteTranscriptRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM messages`); err != nil {
		return fmt.Errorf("clearing messages: %w", err)
	}
	return nil
}

func (r *SQLiteTranscriptRepo) scanMessages(rows *sql.Rows) ([]*domain.Message, error) {
	var messages []*domain.Message
	for rows.Next() {
		var m domain.Message
		var role, createdAtStr string

		if err := rows.Scan(&m.ID, &role, &m.Text, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning message row: %w", err)
		}

		m.Role = domain.Role(role)
		createdAt, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		m.CreatedAt = createdAt

		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return messages, nil
}
