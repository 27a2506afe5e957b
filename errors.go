package capture

import (
	"errors"
	"fmt"
)

// Errors detected before any request leaves the process.
var (
	// ErrMissingCredentials is returned when the API key or secret is empty.
	ErrMissingCredentials = errors.New("capture: API key and secret are required")

	// ErrInvalidURL is returned when the target URL is empty or cannot be
	// parsed. Validation is syntactic only; reachability is never checked.
	ErrInvalidURL = errors.New("capture: invalid target URL")
)

// HTTPError describes a failed request: a non-2xx response from the capture
// service, or a transport-level failure (DNS, connection refused, timeout)
// in which case StatusCode is zero and Err holds the underlying error.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string // response body, truncated for long payloads
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("capture: request failed: %v", e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("capture: unexpected status %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("capture: unexpected status %s", e.Status)
}

func (e *HTTPError) Unwrap() error { return e.Err }

// ParseError indicates that a 2xx response body could not be decoded into
// the expected shape.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("capture: decoding response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
