package llm

import "errors"

var (
	// ErrUnavailable indicates the backend is unreachable or the client
	// has no API key configured.
	ErrUnavailable = errors.New("generation backend unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrEmptyResponse indicates the backend answered but produced no
	// usable text.
	ErrEmptyResponse = errors.New("backend returned empty response")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("generation retry attempts exhausted")
)
