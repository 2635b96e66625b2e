// file: internal/metadata/errors.go
// version: 1.0.0
// guid: 0e8b4f2a-6c1d-4a9e-b357-d2f86a1c9e40

package metadata

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnavailable covers transport failures, timeouts, non-success
	// statuses and undecodable bodies from a single provider.
	ErrProviderUnavailable = errors.New("metadata provider unavailable")
	// ErrNotFound means the provider explicitly reported no such record.
	ErrNotFound = errors.New("book not found")
	// ErrAllProvidersUnavailable is returned by Lookup.Search when every
	// provider in the chain failed.
	ErrAllProvidersUnavailable = errors.New("all metadata providers unavailable")
	// ErrInvalidRequest rejects searches that could never be sent upstream.
	ErrInvalidRequest = errors.New("invalid search request")
)

// ProviderError describes a failed call to one provider. It matches
// ErrProviderUnavailable or ErrNotFound with errors.Is.
type ProviderError struct {
	Provider string
	Op       string
	Status   int
	Err      error
	kind     error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.kind)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the sentinel kind and the underlying cause.
func (e *ProviderError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.Err}
}

func unavailable(provider, op string, status int, err error) *ProviderError {
	return &ProviderError{Provider: provider, Op: op, Status: status, Err: err, kind: ErrProviderUnavailable}
}

func notFound(provider, op string, status int, err error) *ProviderError {
	return &ProviderError{Provider: provider, Op: op, Status: status, Err: err, kind: ErrNotFound}
}
