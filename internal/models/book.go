// file: internal/models/book.go
// version: 1.0.0
// guid: 3f1d6a2e-8b4c-4e7a-9d05-2c6b8e1f4a73

package models

import (
	"fmt"
	"strings"
)

// Book is the normalized record every metadata provider maps into.
// Optional fields are nil when the upstream did not supply them.
type Book struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	Authors       []string `json:"authors" yaml:"authors"`
	Description   *string  `json:"description,omitempty" yaml:"description,omitempty"`
	Thumbnail     *string  `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	PublishedDate *string  `json:"publishedDate,omitempty" yaml:"publishedDate,omitempty"`
	PageCount     *int     `json:"pageCount,omitempty" yaml:"pageCount,omitempty"`
	Categories    []string `json:"categories" yaml:"categories"`
	ISBN          *string  `json:"isbn,omitempty" yaml:"isbn,omitempty"`
	// GoogleBooksID is only set for records sourced from Google Books.
	GoogleBooksID *string `json:"googleBooksId,omitempty" yaml:"googleBooksId,omitempty"`
}

// SortBy selects result ordering for a search.
type SortBy string

const (
	SortRelevance SortBy = "relevance"
	SortNewest    SortBy = "newest"
	SortOldest    SortBy = "oldest"
)

// ParseSortBy parses a sort option. An empty string yields an empty SortBy
// (no preference).
func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return "", nil
	case SortRelevance:
		return SortRelevance, nil
	case SortNewest:
		return SortNewest, nil
	case SortOldest:
		return SortOldest, nil
	default:
		return "", fmt.Errorf("invalid sort option %q (expected relevance, newest or oldest)", s)
	}
}

// SearchFilters narrows a search. Zero values mean "no constraint".
type SearchFilters struct {
	Author          string `json:"author,omitempty"`
	Category        string `json:"category,omitempty"`
	PublishedAfter  string `json:"publishedAfter,omitempty"`
	PublishedBefore string `json:"publishedBefore,omitempty"`
	SortBy          SortBy `json:"sortBy,omitempty"`
}

// HasConstraints reports whether the filters narrow the result set on their own.
func (f *SearchFilters) HasConstraints() bool {
	if f == nil {
		return false
	}
	return f.Author != "" || f.Category != ""
}

// ReadingStatus is the shelf a user keeps a book on.
type ReadingStatus string

const (
	StatusWantToRead ReadingStatus = "want_to_read"
	StatusReading    ReadingStatus = "reading"
	StatusRead       ReadingStatus = "read"
)

// Valid reports whether s is a known reading status.
func (s ReadingStatus) Valid() bool {
	switch s {
	case StatusWantToRead, StatusReading, StatusRead:
		return true
	}
	return false
}

// UserBook links a user to a book on one of their shelves.
// There is no storage for these yet.
type UserBook struct {
	ID     string        `json:"id"`
	UserID string        `json:"userId"`
	BookID string        `json:"bookId"`
	Status ReadingStatus `json:"status"`
	Rating *int          `json:"rating,omitempty"`
	Notes  *string       `json:"notes,omitempty"`
	Book   *Book         `json:"book,omitempty"`
}
