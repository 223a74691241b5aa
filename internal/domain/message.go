package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single chat transcript entry.
type Message struct {
	ID        string
	Role      Role
	Text      string
	CreatedAt time.Time
}

// NewMessage creates a Message with a fresh id and the current time.
func NewMessage(role Role, text string) *Message {
	return &Message{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}
