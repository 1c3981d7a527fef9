package archive

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"onetscrape/internal/config"
	"onetscrape/internal/logger"
)

func testFetcher(t *testing.T, baseURL string) *Fetcher {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Archive.BaseURL = baseURL

	return NewFetcher(cfg, logger.NewLogger("error"))
}

func dayPage(items ...[3]string) string {
	page := `<html><body><div class="dayInArchive">`
	for _, item := range items {
		page += fmt.Sprintf(`<span class="itemTime">%s</span>`, item[0])
	}

	for _, item := range items {
		page += fmt.Sprintf(`<a class="itemTitle" href="%s">%s</a>`, item[1], item[2])
	}

	page += `</div></body></html>`

	return page
}

func TestFetchDay_ExtractsRows(t *testing.T) {
	page := dayPage(
		[3]string{"08:15", "https://x/art-1", "First"},
		[3]string{"09:30", "https://x/art-2", "Second"},
		[3]string{"10:45", "https://x/art-3", "Third"},
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	defer srv.Close()

	rows, err := testFetcher(t, srv.URL).FetchDay("2024-01-01")
	if err != nil {
		t.Fatalf("FetchDay failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	for i, row := range rows {
		if row.Date != "2024-01-01" {
			t.Errorf("Row %d tagged %s, want 2024-01-01", i, row.Date)
		}
	}

	if rows[0].Time != "08:15" || rows[0].URL != "https://x/art-1" || rows[0].Title != "First" {
		t.Errorf("Unexpected first row: %+v", rows[0])
	}

	if rows[2].Title != "Third" {
		t.Errorf("Expected on-page order preserved, got last title %s", rows[2].Title)
	}
}

func TestFetchDay_SetsUserAgent(t *testing.T) {
	var gotUA string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, dayPage())
	}))
	defer srv.Close()

	cfg := config.DefaultConfig()
	cfg.Archive.BaseURL = srv.URL
	cfg.Archive.UserAgent = "test-agent/1.0"

	fetcher := NewFetcher(cfg, logger.NewLogger("error"))

	if _, err := fetcher.FetchDay("2024-01-01"); err != nil {
		t.Fatalf("FetchDay failed: %v", err)
	}

	if gotUA != "test-agent/1.0" {
		t.Errorf("Expected configured user agent, got %q", gotUA)
	}
}

func TestFetchDay_MissingContainer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p>nothing here</p></body></html>`)
	}))
	defer srv.Close()

	_, err := testFetcher(t, srv.URL).FetchDay("2024-01-01")
	if !errors.Is(err, ErrNoDayContainer) {
		t.Fatalf("Expected ErrNoDayContainer, got %v", err)
	}
}

func TestFetchDay_Non2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := testFetcher(t, srv.URL).FetchDay("2024-01-01")
	if !errors.Is(err, ErrUnexpectedStatusCode) {
		t.Fatalf("Expected ErrUnexpectedStatusCode, got %v", err)
	}
}

func TestFetchAll_NoCrossDayDuplication(t *testing.T) {
	pages := map[string]string{
		"/2024-01-01": dayPage(
			[3]string{"10:00", "https://x/a1", "Day one A"},
			[3]string{"11:00", "https://x/a2", "Day one B"},
		),
		"/2024-01-02": dayPage(
			[3]string{"12:00", "https://x/b1", "Day two A"},
		),
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)

			return
		}

		fmt.Fprint(w, page)
	}))
	defer srv.Close()

	table, stats := testFetcher(t, srv.URL).FetchAll([]string{"2024-01-01", "2024-01-02"})

	if len(table) != 3 {
		t.Fatalf("Expected 3 rows total, got %d", len(table))
	}

	for i, row := range table[:2] {
		if row.Date != "2024-01-01" {
			t.Errorf("Row %d tagged %s, want 2024-01-01", i, row.Date)
		}
	}

	if table[2].Date != "2024-01-02" || table[2].Title != "Day two A" {
		t.Errorf("Unexpected third row: %+v", table[2])
	}

	if len(stats) != 2 || stats[0].Rows != 2 || stats[1].Rows != 1 {
		t.Errorf("Unexpected day stats: %+v", stats)
	}
}

func TestFetchAll_SkipsFailedDayAndContinues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/2024-01-01" {
			http.NotFound(w, r)

			return
		}

		fmt.Fprint(w, dayPage([3]string{"09:00", "https://x/c1", "Survivor"}))
	}))
	defer srv.Close()

	table, stats := testFetcher(t, srv.URL).FetchAll([]string{"2024-01-01", "2024-01-02"})

	if len(table) != 1 {
		t.Fatalf("Expected 1 row after skipping failed day, got %d", len(table))
	}

	if table[0].Date != "2024-01-02" {
		t.Errorf("Expected surviving row from 2024-01-02, got %s", table[0].Date)
	}

	if !stats[0].Skipped || stats[0].Rows != 0 {
		t.Errorf("Expected first day skipped with zero rows, got %+v", stats[0])
	}
}

func TestFetchAll_EmptyDayContributesZeroRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, dayPage())
	}))
	defer srv.Close()

	table, stats := testFetcher(t, srv.URL).FetchAll([]string{"2024-01-01"})

	if len(table) != 0 {
		t.Fatalf("Expected empty table, got %d rows", len(table))
	}

	if stats[0].Skipped {
		t.Error("An empty day is not a skipped day")
	}
}

func TestFetchDay_AnchorWithoutHrefIsDropped(t *testing.T) {
	page := `<html><body><div class="dayInArchive">` +
		`<span class="itemTime">10:00</span>` +
		`<a class="itemTitle">No link</a>` +
		`</div></body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	defer srv.Close()

	rows, err := testFetcher(t, srv.URL).FetchDay("2024-01-01")
	if err != nil {
		t.Fatalf("FetchDay failed: %v", err)
	}

	if len(rows) != 0 {
		t.Errorf("Expected no rows for anchor without href, got %d", len(rows))
	}
}

func TestDayURL(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Archive.BaseURL = "https://wiadomosci.onet.pl/archiwum/"

	fetcher := NewFetcher(cfg, logger.NewLogger("error"))

	expected := "https://wiadomosci.onet.pl/archiwum/2024-01-01"
	if got := fetcher.DayURL("2024-01-01"); got != expected {
		t.Errorf("DayURL() = %s, want %s", got, expected)
	}
}
