// file: cmd/search.go
// version: 1.0.0
// guid: 3c9d1e7a-4f2b-4a86-b0d5-8e6f2c4a9b13

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jdfalk/book-lookup/internal/config"
	"github.com/jdfalk/book-lookup/internal/metadata"
	"github.com/jdfalk/book-lookup/internal/models"
	"github.com/spf13/cobra"
)

type searchOptions struct {
	query      string
	author     string
	category   string
	sortBy     string
	maxResults int
	startIndex int
	output     string
}

var searchOpts searchOptions
var getOutput string

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search for books",
	Long: `Search Google Books for matching volumes, falling back to Open Library
when Google Books is unavailable. The query may be empty when --author or
--category is given.`,
	Example: `  book-lookup search javascript good parts
  book-lookup search --author Tolkien --sort newest --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := searchOpts
		opts.query = strings.Join(args, " ")
		return runSearch(cmd.Context(), cmd.OutOrStdout(), newLookup(config.AppConfig), opts)
	},
}

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a single book by its Google Books volume id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(cmd.Context(), cmd.OutOrStdout(), newLookup(config.AppConfig), args[0], getOutput)
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchOpts.author, "author", "", "restrict results to this author")
	searchCmd.Flags().StringVar(&searchOpts.category, "category", "", "restrict results to this subject")
	searchCmd.Flags().StringVar(&searchOpts.sortBy, "sort", "", "sort order: relevance, newest, oldest")
	searchCmd.Flags().IntVar(&searchOpts.maxResults, "max", 20, "maximum number of results (1-40)")
	searchCmd.Flags().IntVar(&searchOpts.startIndex, "start", 0, "index of the first result")
	searchCmd.Flags().StringVarP(&searchOpts.output, "output", "o", outputTable, "output format: table, json, yaml")

	getCmd.Flags().StringVarP(&getOutput, "output", "o", outputTable, "output format: table, json, yaml")
}

func runSearch(ctx context.Context, out io.Writer, lookup *metadata.Lookup, opts searchOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := validateOutput(opts.output); err != nil {
		return err
	}

	sortBy, err := models.ParseSortBy(opts.sortBy)
	if err != nil {
		return err
	}
	filters := &models.SearchFilters{
		Author:   strings.TrimSpace(opts.author),
		Category: strings.TrimSpace(opts.category),
		SortBy:   sortBy,
	}

	query := strings.TrimSpace(opts.query)
	if query == "" && !filters.HasConstraints() {
		return fmt.Errorf("a search query, --author or --category is required")
	}
	if opts.maxResults < 1 || opts.maxResults > 40 {
		return fmt.Errorf("--max must be between 1 and 40, got %d", opts.maxResults)
	}
	if opts.startIndex < 0 {
		return fmt.Errorf("--start must not be negative, got %d", opts.startIndex)
	}

	books, err := lookup.Search(ctx, query, opts.maxResults, opts.startIndex, filters)
	if err != nil {
		return fmt.Errorf("failed to search books: %w", err)
	}
	return writeBooks(out, opts.output, books)
}

func runGet(ctx context.Context, out io.Writer, lookup *metadata.Lookup, id, output string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := validateOutput(output); err != nil {
		return err
	}

	book, ok := lookup.GetByID(ctx, strings.TrimSpace(id))
	if !ok {
		return fmt.Errorf("book %q not found", id)
	}
	return writeBook(out, output, book)
}
