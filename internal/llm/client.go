package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client provides access to a generative-language backend. The contract is
// deliberately minimal: one prompt string in, one text completion out.
type Client interface {
	// Generate sends a composed prompt and returns the raw text reply.
	Generate(ctx context.Context, prompt string) (string, error)

	// Available reports whether the client is configured to make calls.
	Available() bool
}

// geminiClient implements Client against the Generative Language API.
type geminiClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewGeminiClient creates a Client that talks to the Generative Language
// API described by cfg.
func NewGeminiClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &geminiClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// Wire types for POST /v1beta/models/{model}:generateContent.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *geminiClient) Available() bool {
	return c.cfg.APIKey != ""
}

func (c *geminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Available() {
		return "", ErrUnavailable
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		text, err := c.doRequest(ctx, body)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(CallEvent{
				Model:     c.cfg.Model,
				LatencyMs: latency,
				Success:   true,
			})
			return text, nil
		}
		lastErr = err

		// Context expiry is not worth retrying.
		if ctx.Err() != nil {
			break
		}
	}

	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(CallEvent{
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errorCode(lastErr, ctx),
	})

	if ctx.Err() != nil {
		return "", ErrTimeout
	}
	if isConnectionError(lastErr) {
		return "", ErrUnavailable
	}
	if errors.Is(lastErr, ErrEmptyResponse) {
		return "", lastErr
	}
	return "", fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (c *geminiClient) doRequest(ctx context.Context, body generateRequest) (string, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		c.cfg.Endpoint, url.PathEscape(c.cfg.Model))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return "", &apiError{Status: httpResp.StatusCode, Body: string(respBody)}
	}

	var resp generateResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	text := firstCandidateText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// firstCandidateText concatenates the parts of the first candidate.
func firstCandidateText(resp generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

// apiError carries the status and body of a non-200 backend reply so the
// connection probe can classify it.
type apiError struct {
	Status int
	Body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Body)
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error, ctx context.Context) string {
	switch {
	case ctx.Err() != nil:
		return "TIMEOUT"
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY_RESPONSE"
	case isConnectionError(err):
		return "UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}
