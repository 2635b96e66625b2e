// file: cmd/output.go
// version: 1.0.0
// guid: 7e2a5c90-1b3d-4f68-a4c7-2d9e6b0f8a51

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jdfalk/book-lookup/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case outputTable, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want table, json or yaml)", format)
	}
}

func writeBooks(out io.Writer, format string, books []models.Book) error {
	switch format {
	case outputJSON:
		return writeJSON(out, map[string]any{"books": books})
	case outputYAML:
		return yaml.NewEncoder(out).Encode(map[string]any{"books": books})
	}

	if len(books) == 0 {
		_, err := fmt.Fprintln(out, "No books found.")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHORS\tPUBLISHED\tISBN")
	for _, b := range books {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			b.ID, truncate(b.Title, 60), strings.Join(b.Authors, ", "), deref(b.PublishedDate), deref(b.ISBN))
	}
	return tw.Flush()
}

func writeBook(out io.Writer, format string, book models.Book) error {
	switch format {
	case outputJSON:
		return writeJSON(out, map[string]any{"book": book})
	case outputYAML:
		return yaml.NewEncoder(out).Encode(map[string]any{"book": book})
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", book.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", book.Title)
	fmt.Fprintf(tw, "Authors:\t%s\n", strings.Join(book.Authors, ", "))
	fmt.Fprintf(tw, "Published:\t%s\n", deref(book.PublishedDate))
	if book.PageCount != nil {
		fmt.Fprintf(tw, "Pages:\t%d\n", *book.PageCount)
	}
	fmt.Fprintf(tw, "ISBN:\t%s\n", deref(book.ISBN))
	fmt.Fprintf(tw, "Categories:\t%s\n", strings.Join(book.Categories, ", "))
	fmt.Fprintf(tw, "Thumbnail:\t%s\n", deref(book.Thumbnail))
	if book.Description != nil {
		fmt.Fprintf(tw, "Description:\t%s\n", truncate(*book.Description, 200))
	}
	return tw.Flush()
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
