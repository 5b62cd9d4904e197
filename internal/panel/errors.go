package panel

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotConfigured         = errors.New("panel client is not configured")
	ErrUpstreamUnavailable   = errors.New("every panel endpoint failed")
	ErrNotFound              = errors.New("server not found on any panel endpoint")
	ErrInvalidAction         = errors.New("invalid power action")
	ErrUpstream              = errors.New("panel request failed")
	ErrTransientFetchFailure = errors.New("failed to fetch server status")
	ErrUnexpectedPayload     = errors.New("unexpected panel payload")
)

const maxErrorBodyLength = 512

// HTTPError is a non 2xx panel answer.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	body := e.Body
	if len(body) > maxErrorBodyLength {
		body = body[:maxErrorBodyLength] + "..."
	}

	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, body)
}

// AttemptError is the failure of one endpoint.
type AttemptError struct {
	Endpoint string
	Err      error
}

func (e AttemptError) Error() string {
	return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
}

func (e AttemptError) Unwrap() error {
	return e.Err
}

// StatusCode is 0 for transport errors.
func (e AttemptError) StatusCode() int {
	var httpErr *HTTPError
	if errors.As(e.Err, &httpErr) {
		return httpErr.StatusCode
	}

	return 0
}

// AttemptsError keeps every endpoint failure of one operation, in the order they were tried.
type AttemptsError struct {
	Op       string
	Attempts []AttemptError
}

func (e *AttemptsError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, attempt := range e.Attempts {
		parts = append(parts, attempt.Error())
	}

	return fmt.Sprintf("%s: tried %s", e.Op, strings.Join(parts, "; "))
}

func (e *AttemptsError) Unwrap() []error {
	ret := make([]error, 0, len(e.Attempts))
	for _, attempt := range e.Attempts {
		ret = append(ret, attempt)
	}

	return ret
}
