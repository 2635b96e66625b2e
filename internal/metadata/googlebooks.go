// file: internal/metadata/googlebooks.go
// version: 2.0.0
// guid: b2c3d4e5-f6a7-8b9c-0d1e-f2a3b4c5d6e7

package metadata

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jdfalk/book-lookup/internal/models"
)

// DefaultGoogleBooksBaseURL is the public Google Books v1 endpoint.
const DefaultGoogleBooksBaseURL = "https://www.googleapis.com/books/v1"

// GoogleBooksClient fetches metadata from the Google Books Volume API.
// The API key is optional; without it requests run against the
// unauthenticated quota.
type GoogleBooksClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewGoogleBooksClient creates a Google Books client. An empty baseURL selects
// the public endpoint and a non-positive timeout selects DefaultRequestTimeout.
func NewGoogleBooksClient(baseURL, apiKey string, timeout time.Duration) *GoogleBooksClient {
	if baseURL == "" {
		baseURL = DefaultGoogleBooksBaseURL
	}
	return &GoogleBooksClient{
		httpClient: newHTTPClient(timeout),
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// NewGoogleBooksClientWithBaseURL creates a keyless client with a custom base URL (for testing).
func NewGoogleBooksClientWithBaseURL(baseURL string) *GoogleBooksClient {
	return NewGoogleBooksClient(baseURL, "", 0)
}

// Name returns the display name for this metadata source.
func (c *GoogleBooksClient) Name() string {
	return "Google Books"
}

type googleBooksResponse struct {
	Kind       string              `json:"kind"`
	TotalItems int                 `json:"totalItems"`
	Items      []googleBooksVolume `json:"items"`
}

type googleBooksVolume struct {
	ID         string                `json:"id"`
	VolumeInfo googleBooksVolumeInfo `json:"volumeInfo"`
}

type googleBooksVolumeInfo struct {
	Title               string                  `json:"title"`
	Authors             []string                `json:"authors"`
	Description         string                  `json:"description"`
	PublishedDate       string                  `json:"publishedDate"`
	PageCount           *int                    `json:"pageCount"`
	Categories          []string                `json:"categories"`
	IndustryIdentifiers []googleBooksIndustryID `json:"industryIdentifiers"`
	ImageLinks          *googleBooksImageLinks  `json:"imageLinks"`
}

type googleBooksIndustryID struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

type googleBooksImageLinks struct {
	Thumbnail      string `json:"thumbnail"`
	SmallThumbnail string `json:"smallThumbnail"`
}

// SearchBooks adapts the client to the lookup chain.
func (c *GoogleBooksClient) SearchBooks(ctx context.Context, req SearchRequest) ([]models.Book, error) {
	return c.Search(ctx, req.Query, req.MaxResults, req.StartIndex, req.Filters)
}

// Search runs a volumes query. Author and category filters become
// inauthor:/subject: terms appended to the free-text query, in that order.
func (c *GoogleBooksClient) Search(ctx context.Context, query string, maxResults, startIndex int, filters *models.SearchFilters) ([]models.Book, error) {
	if maxResults < 0 || startIndex < 0 {
		return nil, fmt.Errorf("%w: maxResults and startIndex must be non-negative", ErrInvalidRequest)
	}

	params := url.Values{}
	params.Set("q", buildGoogleBooksQuery(query, filters))
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("startIndex", strconv.Itoa(startIndex))
	params.Set("orderBy", googleBooksOrderBy(filters))
	params.Set("printType", "books")
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	var gbResp googleBooksResponse
	if err := getJSON(ctx, c.httpClient, c.Name(), "search", c.baseURL+"/volumes?"+params.Encode(), &gbResp); err != nil {
		return nil, err
	}

	books := make([]models.Book, 0, len(gbResp.Items))
	for _, item := range gbResp.Items {
		books = append(books, volumeToBook(item))
	}
	return books, nil
}

// GetByID fetches a single volume by its Google Books id.
func (c *GoogleBooksClient) GetByID(ctx context.Context, id string) (models.Book, error) {
	if strings.TrimSpace(id) == "" {
		return models.Book{}, notFound(c.Name(), "get", 0, errors.New("empty volume id"))
	}

	volumeURL := fmt.Sprintf("%s/volumes/%s", c.baseURL, url.PathEscape(id))
	if c.apiKey != "" {
		volumeURL += "?" + url.Values{"key": {c.apiKey}}.Encode()
	}

	var vol googleBooksVolume
	if err := getJSON(ctx, c.httpClient, c.Name(), "get", volumeURL, &vol); err != nil {
		var perr *ProviderError
		if errors.As(err, &perr) && perr.Status == http.StatusNotFound {
			return models.Book{}, notFound(c.Name(), "get", perr.Status, fmt.Errorf("volume %s", id))
		}
		return models.Book{}, err
	}
	return volumeToBook(vol), nil
}

// buildGoogleBooksQuery joins the terms with spaces; url encoding turns them
// into the '+' separators Google Books expects.
func buildGoogleBooksQuery(query string, filters *models.SearchFilters) string {
	terms := make([]string, 0, 3)
	if q := strings.TrimSpace(query); q != "" {
		terms = append(terms, q)
	}
	if filters != nil {
		if filters.Author != "" {
			terms = append(terms, "inauthor:"+filters.Author)
		}
		if filters.Category != "" {
			terms = append(terms, "subject:"+filters.Category)
		}
	}
	return strings.Join(terms, " ")
}

// googleBooksOrderBy maps the sort filter. Google Books has no oldest-first
// ordering, so "oldest" falls through to relevance.
func googleBooksOrderBy(filters *models.SearchFilters) string {
	if filters != nil && filters.SortBy == models.SortNewest {
		return "newest"
	}
	return "relevance"
}

func volumeToBook(vol googleBooksVolume) models.Book {
	vi := vol.VolumeInfo
	book := models.Book{
		ID:            vol.ID,
		GoogleBooksID: stringPtr(vol.ID),
		Title:         vi.Title,
		Authors:       nonNil(vi.Authors),
		Description:   optionalString(vi.Description),
		PublishedDate: optionalString(vi.PublishedDate),
		Categories:    nonNil(vi.Categories),
		ISBN:          pickISBN(vi.IndustryIdentifiers),
		Thumbnail:     pickThumbnail(vi.ImageLinks),
	}
	if vi.PageCount != nil {
		pages := *vi.PageCount
		book.PageCount = &pages
	}
	return book
}

// pickISBN prefers the first ISBN_13, then the first ISBN_10.
func pickISBN(ids []googleBooksIndustryID) *string {
	var isbn10 *string
	for _, id := range ids {
		switch id.Type {
		case "ISBN_13":
			return stringPtr(id.Identifier)
		case "ISBN_10":
			if isbn10 == nil {
				isbn10 = stringPtr(id.Identifier)
			}
		}
	}
	return isbn10
}

func pickThumbnail(links *googleBooksImageLinks) *string {
	if links == nil {
		return nil
	}
	if links.Thumbnail != "" {
		return stringPtr(links.Thumbnail)
	}
	return optionalString(links.SmallThumbnail)
}
