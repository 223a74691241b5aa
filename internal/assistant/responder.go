package assistant

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/kiranj/helloguys/internal/knowledge"
	"github.com/kiranj/helloguys/internal/llm"
)

const (
	// maxInputChars bounds prompt size and cost; longer input is truncated.
	maxInputChars = 4000

	// contextTopK is how many knowledge entries are retrieved per query.
	contextTopK = 5
)

const emptyInputMessage = "I didn't catch that! Type a question or say hello and I'll do my best. 😊"

// Options tunes responder behavior.
type Options struct {
	// ShowSources appends a citation block listing the retrieved knowledge
	// entries to each reply that used them.
	ShowSources bool
}

// Responder turns a raw user message into displayable reply text. It never
// returns an error: backend failures collapse into canned fallback replies.
type Responder struct {
	store  *knowledge.Store
	client llm.Client
	opts   Options

	// pick selects a variant index in [0, n). Nil means random.
	pick func(n int) int
}

// NewResponder creates a Responder over the given knowledge store and
// generation client. client may be nil when no backend is configured.
func NewResponder(store *knowledge.Store, client llm.Client, opts Options) *Responder {
	return &Responder{store: store, client: client, opts: opts}
}

// Respond produces reply text for userText. The result is always non-empty
// and safe to display.
func (r *Responder) Respond(ctx context.Context, userText string) string {
	trimmed := strings.TrimSpace(userText)
	if trimmed == "" {
		return emptyInputMessage
	}

	// Credential probes are refused before any retrieval or network call.
	if isCredentialProbe(trimmed) {
		return RefusalMessage
	}

	truncated := trimmed
	if len(truncated) > maxInputChars {
		cut := maxInputChars
		// Back off to a rune boundary so the cut never splits a multi-byte
		// character.
		for cut > 0 && !utf8.RuneStart(truncated[cut]) {
			cut--
		}
		truncated = truncated[:cut]
	}

	var entries []knowledge.Entry
	if r.store != nil {
		entries = r.store.FindRelevant(truncated, contextTopK)
	}

	if r.client != nil && r.client.Available() {
		prompt := buildPrompt(truncated, entries)
		reply, err := r.client.Generate(ctx, prompt)
		if err == nil {
			reply = strings.TrimSpace(reply)
			if reply != "" {
				if r.opts.ShowSources {
					reply += formatSources(entries)
				}
				return reply
			}
		}
	}

	// Fallback selection scans the original text, not the composed prompt.
	return fallbackResponse(trimmed, r.pick)
}

// SetShowSources toggles citation blocks on subsequent replies.
func (r *Responder) SetShowSources(v bool) {
	r.opts.ShowSources = v
}

// ShowSources reports whether citation blocks are enabled.
func (r *Responder) ShowSources() bool {
	return r.opts.ShowSources
}

// Available reports whether a generation backend is configured.
func (r *Responder) Available() bool {
	return r.client != nil && r.client.Available()
}

// TestConnection performs a minimal backend round trip and classifies the
// outcome for display. It never affects how Respond behaves.
func (r *Responder) TestConnection(ctx context.Context) llm.ProbeResult {
	if r.client == nil {
		return llm.ProbeResult{
			Category: llm.ProbeUnconfigured,
			Detail:   "no API key configured",
		}
	}
	prober, ok := r.client.(llm.Prober)
	if !ok {
		if r.client.Available() {
			return llm.ProbeResult{OK: true, Category: llm.ProbeOK, Detail: "backend configured"}
		}
		return llm.ProbeResult{
			Category: llm.ProbeUnconfigured,
			Detail:   "no API key configured",
		}
	}
	return prober.Probe(ctx)
}
