// Package report renders the end-of-run summary.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"onetscrape/internal/archive"
	"onetscrape/internal/article"
)

// Summary renders a plain-text table of per-day archive results followed
// by the article-stage totals.
func Summary(days []archive.DayStats, totalRows int, stats article.Stats) string {
	rows := [][]string{{"date", "rows", "status"}}

	for _, d := range days {
		status := "ok"
		if d.Skipped {
			status = "skipped"
		}

		rows = append(rows, []string{d.Date, strconv.Itoa(d.Rows), status})
	}

	rows = append(rows, []string{"total", strconv.Itoa(totalRows), ""})

	var sb strings.Builder

	sb.WriteString(renderTable(rows))
	sb.WriteString(fmt.Sprintf("articles: %d saved, %d without lead, %d failed\n",
		stats.Saved, stats.SkippedNoLead, stats.Failed))

	return sb.String()
}

// renderTable aligns cells on display width so wide characters line up.
// The first row is treated as the header and followed by a separator.
func renderTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	colWidths := make([]int, colCount)
	for _, row := range rows {
		for i := 0; i < len(row) && i < colCount; i++ {
			width := runewidth.StringWidth(row[i])
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	var sb strings.Builder

	for rowIdx, row := range rows {
		sb.WriteString("|")

		for i := 0; i < colCount; i++ {
			content := ""
			if i < len(row) {
				content = row[i]
			}

			sb.WriteString(" ")
			sb.WriteString(content)

			padding := colWidths[i] - runewidth.StringWidth(content)
			if padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}

			sb.WriteString(" |")
		}

		sb.WriteString("\n")

		if rowIdx == 0 {
			sb.WriteString("|")

			for i := 0; i < colCount; i++ {
				sb.WriteString(" ")
				sb.WriteString(strings.Repeat("-", colWidths[i]))
				sb.WriteString(" |")
			}

			sb.WriteString("\n")
		}
	}

	return sb.String()
}
