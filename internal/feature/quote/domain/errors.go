// Package domain defines domain-level errors for the quote feature.
package domain

import (
	"errors"
	"fmt"
)

// Errors of a single search operation. All of them are terminal for the
// current search: nothing is retried, and none of them corrupt state for
// subsequent searches.
var (
	// ErrUnsupportedSymbol is returned when the requested symbol is not in
	// the fixed free-tier allow-list. The check runs before any network call.
	ErrUnsupportedSymbol = errors.New("symbol is not supported")

	// ErrInvalidTicker is returned when the provider's symbol lookup has no
	// exact match for the requested ticker.
	ErrInvalidTicker = errors.New("ticker not found")

	// ErrNoData is returned when the provider delivers an empty quarterly
	// or price history sequence.
	ErrNoData = errors.New("no data available")

	// ErrRateLimited is returned for HTTP 429 responses and for provider
	// error bodies reporting the API call limit.
	ErrRateLimited = errors.New("provider rate limit reached")

	// ErrNotAuthorized is returned for HTTP 401/403 responses and for
	// provider error bodies reporting a not-authorized condition.
	ErrNotAuthorized = errors.New("not authorized by provider")

	// ErrNetwork is returned for timeouts, connectivity failures and
	// malformed responses.
	ErrNetwork = errors.New("network failure")
)

// StatusError reports a non-2xx provider response that maps to none of the
// sentinel errors above.
type StatusError struct {
	Code int // HTTP status code returned by the provider
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d", e.Code)
}
