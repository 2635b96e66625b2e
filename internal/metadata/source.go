// file: internal/metadata/source.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7a8b-9c0d-e1f2a3b4c5d6

package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jdfalk/book-lookup/internal/models"
)

// DefaultRequestTimeout bounds every outbound provider call.
const DefaultRequestTimeout = 10 * time.Second

// SearchRequest carries a single search through the provider chain.
type SearchRequest struct {
	Query      string
	MaxResults int
	StartIndex int
	Filters    *models.SearchFilters
}

// BookSource is one provider in the lookup chain. Each source uses whatever
// part of the request it can express and ignores the rest.
type BookSource interface {
	Name() string
	SearchBooks(ctx context.Context, req SearchRequest) ([]models.Book, error)
}

// BookFetcher resolves a provider-specific identifier to a single book.
type BookFetcher interface {
	Name() string
	GetByID(ctx context.Context, id string) (models.Book, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &http.Client{Timeout: timeout}
}

// getJSON issues a GET and decodes a 2xx body into dst. Every failure comes
// back as a *ProviderError of kind ErrProviderUnavailable carrying the status.
func getJSON(ctx context.Context, client *http.Client, provider, op, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return unavailable(provider, op, 0, fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return unavailable(provider, op, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return unavailable(provider, op, resp.StatusCode, nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return unavailable(provider, op, resp.StatusCode, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

func stringPtr(s string) *string {
	return &s
}

// optionalString returns nil for an empty string.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nonNil keeps JSON output as [] rather than null.
func nonNil(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
