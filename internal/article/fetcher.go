// Package article fetches full article pages and saves their text bodies.
package article

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"onetscrape/internal/config"
	"onetscrape/internal/logger"
	"onetscrape/internal/models"
	"onetscrape/pkg/textutil"
)

// leadSelector matches the article lead paragraph by its combined class
// signature. Some article types (galleries, video pages) have none.
const leadSelector = ".hyphenate.lead"

// ErrEmptyArticleID indicates a row whose URL has no usable last path segment.
var ErrEmptyArticleID = errors.New("article URL has no usable id segment")

// Stats summarizes one article-stage run.
type Stats struct {
	Saved         int
	SkippedNoLead int
	Failed        int
}

// Fetcher downloads article pages and writes their text to per-date files.
type Fetcher struct {
	client *http.Client
	log    *logger.Logger
}

// NewFetcher creates an article fetcher. Article fetches carry no custom
// headers; a zero article timeout in the configuration leaves the client
// without a deadline.
func NewFetcher(cfg *config.Config, log *logger.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.ArticleTimeout(),
		},
		log: log,
	}
}

// FetchAndSave processes every metadata row in table order. Each row is
// isolated: a fetch, parse, or write failure is logged with the offending
// URL and the loop moves on to the next row.
func (f *Fetcher) FetchAndSave(table models.MetadataTable, dir string) Stats {
	var stats Stats

	for _, row := range table {
		saved, err := f.fetchAndSaveOne(row, dir)
		if err != nil {
			f.log.Error("article processing failed", "url", row.URL, "error", err)
			stats.Failed++

			continue
		}

		if !saved {
			f.log.Warn("no lead found, skipping article", "url", row.URL)
			stats.SkippedNoLead++

			continue
		}

		stats.Saved++

		f.log.Info("article saved", "url", row.URL, "title", textutil.Truncate(row.Title, 60))
	}

	return stats
}

// fetchAndSaveOne returns (false, nil) when the page has no lead element.
func (f *Fetcher) fetchAndSaveOne(row models.ArchiveEntry, dir string) (bool, error) {
	resp, err := f.client.Get(row.URL)
	if err != nil {
		return false, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to parse HTML: %w", err)
	}

	lead := doc.Find(leadSelector).First()
	if lead.Length() == 0 {
		return false, nil
	}

	id := row.ArticleID()
	if id == "" {
		return false, ErrEmptyArticleID
	}

	dayDir := filepath.Join(dir, row.Date)
	if err := os.MkdirAll(dayDir, 0755); err != nil {
		return false, fmt.Errorf("failed to create article directory: %w", err)
	}

	path := filepath.Join(dayDir, id+".txt")
	if err := os.WriteFile(path, []byte(fullText(lead, doc)), 0644); err != nil {
		return false, fmt.Errorf("failed to write article file: %w", err)
	}

	return true, nil
}

// fullText joins the lead text with every paragraph text, single-spaced.
func fullText(lead *goquery.Selection, doc *goquery.Document) string {
	parts := []string{textutil.NormalizeWhitespace(lead.Text())}

	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, textutil.NormalizeWhitespace(s.Text()))
	})

	return strings.Join(parts, " ")
}
