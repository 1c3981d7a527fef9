// Package models defines data structures for the archive and article stages.
package models

import "strings"

// ArchiveEntry represents one news item found on an archive day page.
type ArchiveEntry struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// ArticleID returns the last path segment of the entry URL. It is used as
// the file stem when the article text is saved.
func (e ArchiveEntry) ArticleID() string {
	idx := strings.LastIndex(e.URL, "/")
	if idx < 0 {
		return e.URL
	}

	return e.URL[idx+1:]
}

// MetadataTable is an ordered, append-only collection of archive entries.
// Insertion order is day order, then on-page order. Duplicate titles or
// URLs are preserved as found.
type MetadataTable []ArchiveEntry
