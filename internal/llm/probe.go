package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ProbeCategory is an advisory classification of a connection-test
// outcome, meant for display in configuration UI. It never changes how
// Generate behaves.
type ProbeCategory string

const (
	ProbeOK               ProbeCategory = "ok"
	ProbeUnconfigured     ProbeCategory = "unconfigured"
	ProbeInvalidKey       ProbeCategory = "invalid_key"
	ProbePermissionDenied ProbeCategory = "permission_denied"
	ProbeQuotaExceeded    ProbeCategory = "quota_exceeded"
	ProbeUnreachable      ProbeCategory = "unreachable"
	ProbeUnknown          ProbeCategory = "unknown"
)

// ProbeResult is the outcome of a minimal round trip to the backend.
type ProbeResult struct {
	OK       bool
	Category ProbeCategory
	Detail   string
}

// Prober is implemented by clients that can run a connection test.
type Prober interface {
	Probe(ctx context.Context) ProbeResult
}

// Probe performs a minimal generation round trip and classifies the
// failure, if any. The detail string is safe to show to the user: it
// never echoes the API key or request content.
func (c *geminiClient) Probe(ctx context.Context) ProbeResult {
	if !c.Available() {
		return ProbeResult{
			Category: ProbeUnconfigured,
			Detail:   "no API key configured",
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := c.doRequest(ctx, generateRequest{
		Contents: []content{{Parts: []part{{Text: "ping"}}}},
	})
	if err == nil || errors.Is(err, ErrEmptyResponse) {
		// An empty completion still proves the key and route work.
		return ProbeResult{OK: true, Category: ProbeOK, Detail: "backend reachable"}
	}

	return classifyProbeError(err, ctx)
}

func classifyProbeError(err error, ctx context.Context) ProbeResult {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Status == http.StatusBadRequest && strings.Contains(apiErr.Body, "API_KEY_INVALID"),
			apiErr.Status == http.StatusUnauthorized:
			return ProbeResult{
				Category: ProbeInvalidKey,
				Detail:   "the API key was rejected; check it in setup",
			}
		case apiErr.Status == http.StatusForbidden:
			return ProbeResult{
				Category: ProbePermissionDenied,
				Detail:   "the API key lacks permission for this model",
			}
		case apiErr.Status == http.StatusTooManyRequests:
			return ProbeResult{
				Category: ProbeQuotaExceeded,
				Detail:   "quota exceeded; try again later or check your plan",
			}
		default:
			return ProbeResult{
				Category: ProbeUnknown,
				Detail:   fmt.Sprintf("unexpected backend error (HTTP %d)", apiErr.Status),
			}
		}
	}

	if ctx.Err() != nil || isConnectionError(err) {
		return ProbeResult{
			Category: ProbeUnreachable,
			Detail:   "could not reach the backend; check network and endpoint",
		}
	}

	return ProbeResult{Category: ProbeUnknown, Detail: "connection test failed"}
}
