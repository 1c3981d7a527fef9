// Package metadata persists the article metadata table as CSV.
package metadata

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"onetscrape/internal/models"
)

// header is the contractual column order of the metadata file.
var header = []string{"date", "time", "url", "title"}

// WriteCSV writes the metadata table to <dir>/<filename>, creating the
// directory if needed, and returns the path of the written file. Any I/O
// error here is fatal for the run and propagates to the caller.
func WriteCSV(table models.MetadataTable, dir, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create metadata file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)

	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range table {
		if err := w.Write([]string{row.Date, row.Time, row.URL, row.Title}); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close metadata file: %w", err)
	}

	return path, nil
}
