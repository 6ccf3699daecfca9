// Package shared provides common utilities used across the codebase.
//
//nolint:revive // "shared" is an intentional package name for cross-cutting helpers.
package shared

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// ErrTimeout indicates an outbound request exceeded its deadline.
var ErrTimeout = errors.New("request timed out")

// UpstreamStatusError indicates an external service answered with a
// non-success HTTP status.
type UpstreamStatusError struct {
	Service    string
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Service, e.StatusCode)
}

// IsTimeoutError checks if the error is a deadline expiry, either from
// a client timeout or a canceled request context.
func IsTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}

// IsUpstreamStatusError checks if the error is a non-success status
// answer from an external service.
func IsUpstreamStatusError(err error) bool {
	var statusErr *UpstreamStatusError
	return errors.As(err, &statusErr)
}
