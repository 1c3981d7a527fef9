// Package textutil provides small text cleanup helpers for scraped content.
package textutil

import "strings"

// NormalizeWhitespace collapses any run of whitespace into a single space
// and trims both ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens s to at most max bytes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max] + "..."
}
