package cli

import (
	"github.com/kiranj/helloguys/internal/assistant"
	"github.com/kiranj/helloguys/internal/knowledge"
	"github.com/kiranj/helloguys/internal/llm"
	"github.com/kiranj/helloguys/internal/service"
)

// App holds references to all services used by CLI commands.
type App struct {
	Chat      service.ChatService
	Settings  service.SettingsService
	Responder *assistant.Responder
	Store     *knowledge.Store
	LLMConfig llm.Config

	// IsInteractive is true when stdout is a terminal; the bare root
	// command then opens the chat view instead of printing usage.
	IsInteractive bool
}
