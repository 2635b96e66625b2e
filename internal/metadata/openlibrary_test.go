// file: internal/metadata/openlibrary_test.go
// version: 2.0.0
// guid: 2b3c4d5e-6f7a-8b9c-0d1e-2f3a4b5c6d7e

package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jdfalk/book-lookup/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenLibraryClient(t *testing.T) {
	client := NewOpenLibraryClient("", 0)
	require.NotNil(t, client)
	assert.Equal(t, "https://openlibrary.org", client.baseURL)
	assert.Equal(t, DefaultRequestTimeout, client.httpClient.Timeout)
	assert.Equal(t, "Open Library", client.Name())

	client = NewOpenLibraryClientWithBaseURL("http://mirror.example/")
	assert.Equal(t, "http://mirror.example", client.baseURL)
}

func TestOpenLibrarySearch(t *testing.T) {
	var q, limit, fields string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		q = r.URL.Query().Get("q")
		limit = r.URL.Query().Get("limit")
		fields = r.URL.Query().Get("fields")
		_, _ = w.Write([]byte(`{"numFound":2,"start":0,"docs":[
			{
				"key": "/works/OL27448W",
				"title": "The Lord of the Rings",
				"author_name": ["J.R.R. Tolkien"],
				"first_publish_year": 1954,
				"isbn": ["9780618640157", "0618640150"],
				"cover_i": 14625765,
				"subject": ["Fantasy", "Fiction", "Elves", "Dwarves", "Hobbits", "Wizards", "Quests"]
			},
			{
				"key": "/works/OL1W"
			}
		]}`))
	}))
	defer server.Close()

	client := NewOpenLibraryClientWithBaseURL(server.URL)
	books, err := client.Search(context.Background(), "lord of the rings", 20)
	require.NoError(t, err)
	require.Len(t, books, 2)

	assert.Equal(t, "lord of the rings", q)
	assert.Equal(t, "20", limit)
	assert.Equal(t, "key,title,author_name,first_publish_year,isbn,cover_i,subject", fields)

	lotr := books[0]
	assert.Equal(t, "OL27448W", lotr.ID)
	assert.Equal(t, "The Lord of the Rings", lotr.Title)
	assert.Equal(t, []string{"J.R.R. Tolkien"}, lotr.Authors)
	assert.Equal(t, []string{"Fantasy", "Fiction", "Elves", "Dwarves", "Hobbits"}, lotr.Categories)
	require.NotNil(t, lotr.Thumbnail)
	assert.Equal(t, "https://covers.openlibrary.org/b/id/14625765-M.jpg", *lotr.Thumbnail)
	require.NotNil(t, lotr.ISBN)
	assert.Equal(t, "9780618640157", *lotr.ISBN)
	require.NotNil(t, lotr.PublishedDate)
	assert.Equal(t, "1954", *lotr.PublishedDate)
	assert.Nil(t, lotr.Description)
	assert.Nil(t, lotr.GoogleBooksID)
	assert.Nil(t, lotr.PageCount)

	bare := books[1]
	assert.Equal(t, "OL1W", bare.ID)
	assert.Equal(t, "", bare.Title)
	assert.NotNil(t, bare.Authors)
	assert.NotNil(t, bare.Categories)
	assert.Nil(t, bare.Thumbnail)
	assert.Nil(t, bare.ISBN)
	assert.Nil(t, bare.PublishedDate)
}

func TestOpenLibrarySearchNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"numFound":0,"start":0,"docs":[]}`))
	}))
	defer server.Close()

	client := NewOpenLibraryClientWithBaseURL(server.URL)
	books, err := client.Search(context.Background(), "xyzabc123456789nonexistent", 5)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestOpenLibrarySearchFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>maintenance</html>`))
		}},
		{"docs not a list", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"docs": "nope"}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewOpenLibraryClientWithBaseURL(server.URL)
			books, err := client.Search(context.Background(), "test", 5)
			assert.ErrorIs(t, err, ErrProviderUnavailable)
			assert.Nil(t, books)
		})
	}
}

func TestDocToBookCategoryCap(t *testing.T) {
	subjects := []string{"a", "b", "c", "d", "e", "f", "g"}
	book := docToBook(openLibraryDoc{Key: "/works/OL2W", Subject: subjects})
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, book.Categories)
	assert.Len(t, subjects, 7)

	book = docToBook(openLibraryDoc{Key: "OL3W", Subject: []string{"x"}})
	assert.Equal(t, "OL3W", book.ID)
	assert.Equal(t, []string{"x"}, book.Categories)
}

func TestDocToBookZeroCover(t *testing.T) {
	zero := 0
	book := docToBook(openLibraryDoc{Key: "/works/OL4W", CoverI: &zero})
	assert.Nil(t, book.Thumbnail)
}

func TestOpenLibrarySearchBooksDropsFilters(t *testing.T) {
	var q, limit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q = r.URL.Query().Get("q")
		limit = r.URL.Query().Get("limit")
		assert.Empty(t, r.URL.Query().Get("author"))
		_, _ = w.Write([]byte(`{"docs":[]}`))
	}))
	defer server.Close()

	client := NewOpenLibraryClientWithBaseURL(server.URL)
	_, err := client.SearchBooks(context.Background(), SearchRequest{
		Query:      "dune",
		MaxResults: 7,
		StartIndex: 40,
		Filters:    &models.SearchFilters{Author: "Herbert", SortBy: models.SortNewest},
	})
	require.NoError(t, err)
	assert.Equal(t, "dune", q)
	assert.Equal(t, "7", limit)
}

var _ BookSource = (*OpenLibraryClient)(nil)
