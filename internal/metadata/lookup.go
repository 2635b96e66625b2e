// file: internal/metadata/lookup.go
// version: 1.0.0
// guid: 4e6a2d8b-1c3f-4b57-9e02-a8d5c7f31b96

package metadata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jdfalk/book-lookup/internal/logger"
	"github.com/jdfalk/book-lookup/internal/metrics"
	"github.com/jdfalk/book-lookup/internal/models"
)

// Lookup is the single search/get entry point over the metadata providers.
// Searches walk the sources in order and return the first success; the
// chain is only ever walked forward, once. Lookup holds no mutable state and
// is safe for concurrent use.
type Lookup struct {
	sources []BookSource
	fetcher BookFetcher
}

// NewLookup wires Google Books as the primary source and fetcher with Open
// Library as the search fallback.
func NewLookup(primary *GoogleBooksClient, secondary *OpenLibraryClient) *Lookup {
	return NewLookupWithSources(primary, primary, secondary)
}

// NewLookupWithSources builds a Lookup from an explicit fetcher and ordered
// source list.
func NewLookupWithSources(fetcher BookFetcher, sources ...BookSource) *Lookup {
	return &Lookup{
		sources: sources,
		fetcher: fetcher,
	}
}

// Sources returns the provider names in fallback order.
func (l *Lookup) Sources() []string {
	names := make([]string, 0, len(l.sources))
	for _, src := range l.sources {
		names = append(names, src.Name())
	}
	return names
}

// Search returns the books from the first source that answers. Per-source
// failures are absorbed; only ErrAllProvidersUnavailable (or ErrInvalidRequest)
// reaches the caller.
func (l *Lookup) Search(ctx context.Context, query string, maxResults, startIndex int, filters *models.SearchFilters) ([]models.Book, error) {
	if maxResults < 0 || startIndex < 0 {
		return nil, fmt.Errorf("%w: maxResults and startIndex must be non-negative", ErrInvalidRequest)
	}

	log := logger.Component("lookup")
	req := SearchRequest{
		Query:      query,
		MaxResults: maxResults,
		StartIndex: startIndex,
		Filters:    filters,
	}

	var errs []error
	for i, src := range l.sources {
		if i > 0 {
			metrics.IncFallback()
			log.Warn().Str("provider", src.Name()).Str("query", query).Msg("falling back to next metadata provider")
		}

		start := time.Now()
		books, err := src.SearchBooks(ctx, req)
		elapsed := time.Since(start)
		if err == nil {
			metrics.ObserveProviderRequest(src.Name(), metrics.OutcomeSuccess, elapsed)
			log.Debug().Str("provider", src.Name()).Int("results", len(books)).Dur("elapsed", elapsed).Msg("search succeeded")
			return books, nil
		}

		metrics.ObserveProviderRequest(src.Name(), metrics.OutcomeError, elapsed)
		log.Warn().Err(err).Str("provider", src.Name()).Dur("elapsed", elapsed).Msg("search failed")
		errs = append(errs, err)
	}

	metrics.IncLookupFailure("search")
	return nil, fmt.Errorf("%w: %w", ErrAllProvidersUnavailable, errors.Join(errs...))
}

// GetByID asks the primary fetcher only. Any failure, not-found included,
// reports the book as absent; fallback ids are not comparable so there is no
// second attempt.
func (l *Lookup) GetByID(ctx context.Context, id string) (models.Book, bool) {
	if l.fetcher == nil {
		return models.Book{}, false
	}

	log := logger.Component("lookup")
	start := time.Now()
	book, err := l.fetcher.GetByID(ctx, id)
	elapsed := time.Since(start)
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, ErrNotFound) {
			outcome = metrics.OutcomeNotFound
		}
		metrics.ObserveProviderRequest(l.fetcher.Name(), outcome, elapsed)
		metrics.IncLookupFailure("get")
		log.Debug().Err(err).Str("provider", l.fetcher.Name()).Str("id", id).Msg("book lookup returned nothing")
		return models.Book{}, false
	}

	metrics.ObserveProviderRequest(l.fetcher.Name(), metrics.OutcomeSuccess, elapsed)
	return book, true
}
