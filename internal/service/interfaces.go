package service

import (
	"context"

	"github.com/kiranj/helloguys/internal/domain"
)

// Exchange is the result of one chat turn.
type Exchange struct {
	User      *domain.Message
	Assistant *domain.Message
}

type ChatService interface {
	// Send records the user's message, produces a reply, and records it.
	// The reply is always present even when persistence fails.
	Send(ctx context.Context, text string) (*Exchange, error)

	History(ctx context.Context, limit int) ([]*domain.Message, error)
	ClearHistory(ctx context.Context) error
}

type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, s domain.Settings) error
}
