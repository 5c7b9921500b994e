// ABOUTME: Error taxonomy for the assistant core
// ABOUTME: Configuration, input and provider failures get distinct types for HTTP mapping
package fault

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration and input problems. These are the
// only failures allowed to cross the system boundary as hard errors.
var (
	// ErrNoQuestion means the request carried no user message.
	ErrNoQuestion = errors.New("no user question in request")
	// ErrMissingAPIKey means no provider credential is configured.
	ErrMissingAPIKey = errors.New("missing provider API key")
	// ErrUnsupportedFormat means a resume upload had an unknown file type.
	ErrUnsupportedFormat = errors.New("unsupported resume file format")
)

// ProviderError is a non-success HTTP response from an external provider.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s error %d: %s", e.Provider, e.StatusCode, e.Body)
}

// Retryable reports whether the provider failure is worth retrying
// (rate limiting or a server-side error).
func (e *ProviderError) Retryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

// FormatError is a provider response whose shape did not match the
// expected structure. Treated like a provider failure for fallback purposes.
type FormatError struct {
	Provider string
	Detail   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s returned malformed response: %s", e.Provider, e.Detail)
}

// IsRetryable reports whether err is a retryable provider failure.
func IsRetryable(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Retryable()
}
