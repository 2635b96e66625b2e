// file: internal/server/books_handlers.go
// version: 1.0.0
// guid: 6d2b9f4e-7a1c-4e38-b5d0-3c8e1a6f92d7

package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jdfalk/book-lookup/internal/metadata"
	"github.com/jdfalk/book-lookup/internal/models"
	"github.com/jdfalk/book-lookup/internal/server/middleware"
)

const (
	defaultMaxResults = 20
	// Google Books refuses pages larger than 40.
	maxMaxResults = 40
)

// searchBooks handles GET /api/books/search
func (s *Server) searchBooks(c *gin.Context) {
	opLog := NewOperationLogger("searchBooks", c.Request.Method, c.Request.URL.Path, middleware.GetRequestID(c))

	query := strings.TrimSpace(c.Query("q"))
	filters := &models.SearchFilters{
		Author:          strings.TrimSpace(c.Query("author")),
		Category:        strings.TrimSpace(c.Query("category")),
		PublishedAfter:  strings.TrimSpace(c.Query("publishedAfter")),
		PublishedBefore: strings.TrimSpace(c.Query("publishedBefore")),
	}

	sortBy, err := models.ParseSortBy(c.Query("sortBy"))
	if err != nil {
		RespondWithValidationError(c, "sortBy", err.Error())
		return
	}
	filters.SortBy = sortBy

	if query == "" && !filters.HasConstraints() {
		RespondWithValidationError(c, "q", "a search query, author or category is required")
		return
	}

	maxResults := ParseQueryInt(c, "maxResults", defaultMaxResults)
	if maxResults < 1 {
		maxResults = defaultMaxResults
	}
	if maxResults > maxMaxResults {
		maxResults = maxMaxResults
	}
	startIndex := ParseQueryInt(c, "startIndex", 0)
	if startIndex < 0 {
		startIndex = 0
	}

	opLog.AddDetail("query", query)
	opLog.AddDetail("max_results", maxResults)
	opLog.LogStart()

	books, err := s.lookup.Search(c.Request.Context(), query, maxResults, startIndex, filters)
	if err != nil {
		if errors.Is(err, metadata.ErrInvalidRequest) {
			opLog.LogError(http.StatusBadRequest, err)
			RespondWithBadRequest(c, err.Error())
			return
		}
		opLog.LogError(http.StatusInternalServerError, err)
		RespondWithInternalError(c, "Failed to search books")
		return
	}

	opLog.AddDetail("results", len(books))
	opLog.LogSuccess(http.StatusOK)
	c.JSON(http.StatusOK, gin.H{"books": books})
}

// getBook handles GET /api/books/:id
func (s *Server) getBook(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		RespondWithBadRequest(c, "Book ID is required")
		return
	}

	opLog := NewOperationLogger("getBook", c.Request.Method, c.Request.URL.Path, middleware.GetRequestID(c))
	opLog.SetResourceID(id)
	opLog.LogStart()

	book, ok := s.lookup.GetByID(c.Request.Context(), id)
	if !ok {
		opLog.LogError(http.StatusNotFound, metadata.ErrNotFound)
		RespondWithError(c, http.StatusNotFound, "Book not found", "NOT_FOUND")
		return
	}

	opLog.LogSuccess(http.StatusOK)
	c.JSON(http.StatusOK, gin.H{"book": book})
}
