package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranj/helloguys/internal/knowledge"
	"github.com/kiranj/helloguys/internal/llm"
)

// End-to-end pipeline test: real knowledge store, real HTTP client, fake
// backend. Verifies the composed prompt carries retrieved context and the
// reply makes it back to the caller.
func TestPipeline_RetrievalToBackendRoundTrip(t *testing.T) {
	var receivedPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		receivedPrompt = req.Contents[0].Parts[0].Text

		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": "MQTT is a lightweight messaging protocol for IoT. 📡"},
				}}},
			},
		})
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = srv.URL
	client := llm.NewGeminiClient(cfg, llm.NoopObserver{})

	store := knowledge.NewStore(knowledge.DefaultConfig())
	store.Initialize(testKB)

	r := NewResponder(store, client, Options{})
	got := r.Respond(context.Background(), "what is mqtt?")

	assert.Equal(t, "MQTT is a lightweight messaging protocol for IoT. 📡", got)
	assert.Contains(t, receivedPrompt, "Reference material:")
	assert.Contains(t, receivedPrompt, "MQTT is a lightweight pub/sub protocol.")
	assert.Contains(t, receivedPrompt, "User question: what is mqtt?")
}

func TestPipeline_BackendDownCollapsesToFallback(t *testing.T) {
	cfg := llm.DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = "http://127.0.0.1:1"
	cfg.MaxRetries = 0
	cfg.TimeoutMs = 1000
	client := llm.NewGeminiClient(cfg, llm.NoopObserver{})

	store := knowledge.NewStore(knowledge.DefaultConfig())
	store.Initialize(testKB)

	r := NewResponder(store, client, Options{})
	r.pick = firstPick

	got := r.Respond(context.Background(), "tell me about python")

	assert.Contains(t, got, "Python Programming")
}

func TestTestConnection_Unconfigured(t *testing.T) {
	r := NewResponder(nil, nil, Options{})
	result := r.TestConnection(context.Background())

	assert.False(t, result.OK)
	assert.Equal(t, llm.ProbeUnconfigured, result.Category)
}

func TestTestConnection_ReachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "pong"}}}},
			},
		})
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = srv.URL
	client := llm.NewGeminiClient(cfg, llm.NoopObserver{})

	r := NewResponder(nil, client, Options{})
	result := r.TestConnection(context.Background())

	assert.True(t, result.OK)
	assert.Equal(t, llm.ProbeOK, result.Category)
}
