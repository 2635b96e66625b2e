// file: internal/models/book_test.go
// version: 1.0.0
// guid: 7c2a9e41-5d3b-4f86-a1e0-6b9d4c2f8e15

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortBy(t *testing.T) {
	tests := []struct {
		in      string
		want    SortBy
		wantErr bool
	}{
		{"", "", false},
		{"relevance", SortRelevance, false},
		{"NEWEST", SortNewest, false},
		{" oldest ", SortOldest, false},
		{"popular", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSortBy(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestSearchFilters_HasConstraints(t *testing.T) {
	var nilFilters *SearchFilters
	assert.False(t, nilFilters.HasConstraints())
	assert.False(t, (&SearchFilters{SortBy: SortNewest}).HasConstraints())
	assert.True(t, (&SearchFilters{Author: "Tolkien"}).HasConstraints())
	assert.True(t, (&SearchFilters{Category: "Fantasy"}).HasConstraints())
}

func TestReadingStatus_Valid(t *testing.T) {
	assert.True(t, StatusWantToRead.Valid())
	assert.True(t, StatusReading.Valid())
	assert.True(t, StatusRead.Valid())
	assert.False(t, ReadingStatus("abandoned").Valid())
}

func TestBookJSONOmitsAbsentFields(t *testing.T) {
	b := Book{ID: "x1", Title: "Dune", Authors: []string{}, Categories: []string{}}
	data, err := json.Marshal(b)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "x1", m["id"])
	assert.Equal(t, []any{}, m["authors"])
	assert.NotContains(t, m, "isbn")
	assert.NotContains(t, m, "thumbnail")
	assert.NotContains(t, m, "googleBooksId")
}
