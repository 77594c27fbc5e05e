// Package report holds the transformations shared by the live API and the
// static exporter: filename date parsing, the no-news classifier, link
// extraction and per-day aggregation.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFromFilename extracts the ISO date from a daily export filename such
// as "22.8.2025.csv" (day.month.year, parts not necessarily zero-padded).
// The second return is false for any filename that does not match; callers
// skip those files. Day and month are not range-checked.
func DateFromFilename(filename string) (string, bool) {
	stem := strings.TrimSuffix(filename, ".csv")
	parts := strings.Split(stem, ".")
	if len(parts) != 3 {
		return "", false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", false
	}

	return fmt.Sprintf("%d-%02d-%02d", year, month, day), true
}

// DisplayDate renders an ISO date as the long human form used by the
// dashboard, e.g. "Friday, August 22, 2025". Returns the input unchanged
// when it is not a valid calendar date.
func DisplayDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("Monday, January 02, 2006")
}
