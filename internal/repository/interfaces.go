package repository

import (
	"context"
	"errors"

	"github.com/kiranj/helloguys/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// TranscriptRepo persists the chat transcript.
type TranscriptRepo interface {
	Append(ctx context.Context, m *domain.Message) error
	List(ctx context.Context, limit int) ([]*domain.Message, error)
	Clear(ctx context.Context) error
}

// SettingsRepo persists user preferences.
type SettingsRepo interface {
	Save(ctx context.Context, s domain.Settings) error
	Load(ctx context.Context) (domain.Settings, error)
}
