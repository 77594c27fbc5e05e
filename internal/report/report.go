package report

import (
	"sort"
	"strings"
	"unicode/utf8"

	"niftynews/internal/model"
)

const maxNameLength = 50

// Merge-conflict delimiters that leak into corrupted CSV exports.
var conflictMarkers = []string{"=======", "<<<<<<<", ">>>>>>>"}

// Row is one raw CSV row after header mapping, before any cleanup.
type Row struct {
	Name  string
	Text  string
	Links string
}

// ValidName reports whether a trimmed company name is usable. Empty names,
// names over 50 characters and conflict-marker debris are dropped.
func ValidName(name string) bool {
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return false
	}
	for _, marker := range conflictMarkers {
		if strings.HasPrefix(name, marker) {
			return false
		}
	}
	return true
}

// Aggregate builds the daily report for one date from raw rows, in file
// order: invalid rows are silently dropped, the rest are classified and
// bucketed, and both buckets are sorted by company name.
func Aggregate(date string, rows []Row) *model.DailyReport {
	rep := &model.DailyReport{
		Date:     date,
		WithNews: []model.CompanyRecord{},
		NoNews:   []model.CompanyRecord{},
	}

	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if !ValidName(name) {
			continue
		}

		text := strings.TrimSpace(row.Text)
		record := model.CompanyRecord{
			Name:       name,
			Text:       text,
			Links:      ExtractLinks(row.Links),
			HasContent: text != "",
		}

		if HasNews(text) {
			rep.WithNews = append(rep.WithNews, record)
		} else {
			rep.NoNews = append(rep.NoNews, record)
		}
	}

	sort.Slice(rep.WithNews, func(i, j int) bool { return rep.WithNews[i].Name < rep.WithNews[j].Name })
	sort.Slice(rep.NoNews, func(i, j int) bool { return rep.NoNews[i].Name < rep.NoNews[j].Name })

	rep.NewsCount = len(rep.WithNews)
	rep.NoNewsCount = len(rep.NoNews)
	rep.TotalCompanies = rep.NewsCount + rep.NoNewsCount

	return rep
}

// FindCompany returns the first row whose trimmed name matches the query
// case-insensitively, either exactly or by substring in either direction.
func FindCompany(rows []Row, query string) (Row, bool) {
	want := strings.ToLower(strings.TrimSpace(query))
	for _, row := range rows {
		name := strings.ToLower(strings.TrimSpace(row.Name))
		if name == "" {
			continue
		}
		if strings.Contains(name, want) || strings.Contains(want, name) {
			return row, true
		}
	}
	return Row{}, false
}

// Details builds the drill-down view for one matched row.
func Details(date string, row Row) *model.CompanyDetails {
	linksRaw := strings.TrimSpace(row.Links)
	return &model.CompanyDetails{
		CompanyName:    strings.TrimSpace(row.Name),
		ExtractedText:  strings.TrimSpace(row.Text),
		LinksRaw:       linksRaw,
		ProcessedLinks: ExtractLinks(linksRaw),
		Date:           date,
	}
}
