// file: internal/metadata/openlibrary.go
// version: 2.0.0
// guid: 1a2b3c4d-5e6f-7a8b-9c0d-1e2f3a4b5c6d

package metadata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jdfalk/book-lookup/internal/models"
)

const (
	// DefaultOpenLibraryBaseURL is the public Open Library host.
	DefaultOpenLibraryBaseURL = "https://openlibrary.org"

	openLibrarySearchFields = "key,title,author_name,first_publish_year,isbn,cover_i,subject"
	openLibraryCoverURL     = "https://covers.openlibrary.org/b/id/%d-M.jpg"
	openLibraryWorkPrefix   = "/works/"
	maxOpenLibrarySubjects  = 5
)

// OpenLibraryClient searches the Open Library catalogue. It only understands
// free text and a result cap.
type OpenLibraryClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewOpenLibraryClient creates an Open Library client. An empty baseURL selects
// the public host and a non-positive timeout selects DefaultRequestTimeout.
func NewOpenLibraryClient(baseURL string, timeout time.Duration) *OpenLibraryClient {
	if baseURL == "" {
		baseURL = DefaultOpenLibraryBaseURL
	}
	return &OpenLibraryClient{
		httpClient: newHTTPClient(timeout),
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// NewOpenLibraryClientWithBaseURL creates a client with a custom base URL.
func NewOpenLibraryClientWithBaseURL(baseURL string) *OpenLibraryClient {
	return NewOpenLibraryClient(baseURL, 0)
}

// Name returns the display name for this metadata source.
func (c *OpenLibraryClient) Name() string {
	return "Open Library"
}

type openLibrarySearchResponse struct {
	NumFound int              `json:"numFound"`
	Start    int              `json:"start"`
	Docs     []openLibraryDoc `json:"docs"`
}

type openLibraryDoc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear *int     `json:"first_publish_year"`
	ISBN             []string `json:"isbn"`
	CoverI           *int     `json:"cover_i"`
	Subject          []string `json:"subject"`
}

// SearchBooks adapts the client to the lookup chain. Filters and the start
// index have no Open Library equivalent and are dropped; MaxResults becomes
// the limit.
func (c *OpenLibraryClient) SearchBooks(ctx context.Context, req SearchRequest) ([]models.Book, error) {
	return c.Search(ctx, req.Query, req.MaxResults)
}

// Search runs a free-text query against search.json.
func (c *OpenLibraryClient) Search(ctx context.Context, query string, limit int) ([]models.Book, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must be non-negative", ErrInvalidRequest)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("fields", openLibrarySearchFields)

	var olResp openLibrarySearchResponse
	if err := getJSON(ctx, c.httpClient, c.Name(), "search", c.baseURL+"/search.json?"+params.Encode(), &olResp); err != nil {
		return nil, err
	}

	books := make([]models.Book, 0, len(olResp.Docs))
	for _, doc := range olResp.Docs {
		books = append(books, docToBook(doc))
	}
	return books, nil
}

func docToBook(doc openLibraryDoc) models.Book {
	subjects := doc.Subject
	if len(subjects) > maxOpenLibrarySubjects {
		subjects = subjects[:maxOpenLibrarySubjects]
	}
	book := models.Book{
		ID:         strings.TrimPrefix(doc.Key, openLibraryWorkPrefix),
		Title:      doc.Title,
		Authors:    nonNil(doc.AuthorName),
		Categories: nonNil(subjects),
	}
	if doc.FirstPublishYear != nil {
		book.PublishedDate = stringPtr(strconv.Itoa(*doc.FirstPublishYear))
	}
	if doc.CoverI != nil && *doc.CoverI > 0 {
		book.Thumbnail = stringPtr(fmt.Sprintf(openLibraryCoverURL, *doc.CoverI))
	}
	if len(doc.ISBN) > 0 {
		book.ISBN = stringPtr(doc.ISBN[0])
	}
	return book
}
