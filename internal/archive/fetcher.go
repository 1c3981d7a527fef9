// Package archive fetches per-day archive pages and extracts article metadata.
package archive

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"onetscrape/internal/config"
	"onetscrape/internal/logger"
	"onetscrape/internal/models"
)

// Archive fetch errors.
var (
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrNoDayContainer       = errors.New("no day section on archive page")
)

// DayStats records what one archive day contributed to the table.
type DayStats struct {
	Date    string
	Rows    int
	Skipped bool
}

// Fetcher retrieves archive day pages and extracts (time, url, title) rows.
type Fetcher struct {
	client    *http.Client
	log       *logger.Logger
	baseURL   string
	userAgent string
}

// NewFetcher creates an archive fetcher from the scraper configuration.
func NewFetcher(cfg *config.Config, log *logger.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.ArchiveTimeout(),
		},
		log:       log,
		baseURL:   strings.TrimRight(cfg.Archive.BaseURL, "/"),
		userAgent: cfg.Archive.UserAgent,
	}
}

// DayURL returns the archive page URL for one day.
func (f *Fetcher) DayURL(date string) string {
	return f.baseURL + "/" + date
}

// FetchAll fetches every archive day in order and concatenates the per-day
// rows into one table. A day that fails to fetch or parse contributes zero
// rows and the remaining days are still processed.
func (f *Fetcher) FetchAll(dates []string) (models.MetadataTable, []DayStats) {
	var table models.MetadataTable

	stats := make([]DayStats, 0, len(dates))

	for _, date := range dates {
		rows, err := f.FetchDay(date)
		if err != nil {
			if errors.Is(err, ErrNoDayContainer) {
				f.log.Warn("no day section, skipping date", "url", f.DayURL(date))
			} else {
				f.log.Error("archive fetch failed", "url", f.DayURL(date), "error", err)
			}

			stats = append(stats, DayStats{Date: date, Skipped: true})

			continue
		}

		table = append(table, rows...)
		stats = append(stats, DayStats{Date: date, Rows: len(rows)})

		f.log.Info("archive day fetched", "date", date, "rows", len(rows))
	}

	return table, stats
}

// FetchDay fetches and parses a single archive day page.
func (f *Fetcher) FetchDay(date string) (models.MetadataTable, error) {
	req, err := http.NewRequest(http.MethodGet, f.DayURL(date), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return parseDay(doc, date)
}

// parseDay extracts one row per (time, title) pair found inside the day
// container. The extraction slices are scoped to this call, so a day can
// never pick up rows from a previously fetched one.
func parseDay(doc *goquery.Document, date string) (models.MetadataTable, error) {
	day := doc.Find(".dayInArchive").First()
	if day.Length() == 0 {
		return nil, ErrNoDayContainer
	}

	var times []string

	day.Find(".itemTime").Each(func(_ int, s *goquery.Selection) {
		times = append(times, strings.TrimSpace(s.Text()))
	})

	var urls, titles []string

	day.Find(".itemTitle").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}

		urls = append(urls, href)
		titles = append(titles, strings.TrimSpace(s.Text()))
	})

	// Pair by index; a time without a matching title (or vice versa) is dropped.
	n := len(times)
	if len(titles) < n {
		n = len(titles)
	}

	rows := make(models.MetadataTable, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, models.ArchiveEntry{
			Date:  date,
			Time:  times[i],
			URL:   urls[i],
			Title: titles[i],
		})
	}

	return rows, nil
}
