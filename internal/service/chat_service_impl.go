package service

import (
	"context"

	"github.com/kiranj/helloguys/internal/domain"
	"github.com/kiranj/helloguys/internal/repository"
)

// replier is the slice of the responder the chat service needs.
type replier interface {
	Respond(ctx context.Context, userText string) string
}

type chatService struct {
	transcript repository.TranscriptRepo
	responder  replier
}

// NewChatService creates a ChatService that persists the transcript and
// delegates reply generation to the responder.
func NewChatService(transcript repository.TranscriptRepo, responder replier) ChatService {
	return &chatService{transcript: transcript, responder: responder}
}

func (s *chatService) Send(ctx context.Context, text string) (*Exchange, error) {
	userMsg := domain.NewMessage(domain.RoleUser, text)
	reply := s.responder.Respond(ctx, text)
	assistantMsg := domain.NewMessage(domain.RoleAssistant, reply)

	exchange := &Exchange{User: userMsg, Assistant: assistantMsg}

	// The reply is already computed; a persistence failure must not eat
	// it. The caller gets the exchange along with the error.
	if err := s.transcript.Append(ctx, userMsg); err != nil {
		return exchange, err
	}
	if err := s.transcript.Append(ctx, assistantMsg); err != nil {
		return exchange, err
	}
	return exchange, nil
}

func (s *chatService) History(ctx context.Context, limit int) ([]*domain.Message, error) {
	return s.transcript.List(ctx, limit)
}

func (s *chatService) ClearHistory(ctx context.Context) error {
	return s.transcript.Clear(ctx)
}
