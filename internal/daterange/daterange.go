// Package daterange expands calendar date ranges into archive day strings.
package daterange

import (
	"regexp"
	"time"
)

// DayFormat is the layout used for archive day strings.
const DayFormat = "2006-01-02"

var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate reports whether s matches the YYYY-MM-DD input format. The CLI
// rejects anything else before any network activity happens.
func Validate(s string) bool {
	return dayPattern.MatchString(s)
}

// Parse parses a YYYY-MM-DD string into a date.
func Parse(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

// Expand returns every day between start and end inclusive, formatted as
// YYYY-MM-DD in increasing order. An end before start yields no days.
func Expand(start, end time.Time) []string {
	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DayFormat))
	}

	return days
}
