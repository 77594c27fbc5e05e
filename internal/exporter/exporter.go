// Package exporter flattens the CSV directory into static JSON files so
// the dashboard can be hosted without a live backend.
package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"niftynews/internal/model"
	"niftynews/internal/report"
)

var unsafeFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

const maxSanitizedLength = 50

// SanitizeCompanyName makes a company name safe to embed in a filename:
// filesystem-hostile characters become underscores and the result is
// capped at 50 characters.
func SanitizeCompanyName(name string) string {
	safe := unsafeFilenameChars.ReplaceAllString(name, "_")
	runes := []rune(safe)
	if len(runes) > maxSanitizedLength {
		safe = string(runes[:maxSanitizedLength])
	}
	return safe
}

type Exporter struct {
	settings *Settings
}

func New(settings *Settings) *Exporter {
	return &Exporter{settings: settings}
}

// Run writes available-dates.json, one company-news file per date and one
// company-details file per company into the output directory. Unreadable
// CSVs are logged and skipped; the build keeps going.
func (e *Exporter) Run() error {
	if err := os.MkdirAll(e.settings.OutputDir, 0755); err != nil {
		return err
	}

	files, err := filepath.Glob(filepath.Join(e.settings.CSVDir, "*.csv"))
	if err != nil {
		return err
	}

	dates := []model.DateEntry{}
	for _, path := range files {
		filename := filepath.Base(path)
		date, ok := report.DateFromFilename(filename)
		if !ok {
			continue
		}
		dates = append(dates, model.DateEntry{
			Date:        date,
			Filename:    filename,
			DisplayDate: report.DisplayDate(date),
		})
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Date > dates[j].Date })

	if err := e.writeJSON("available-dates.json", dates); err != nil {
		return err
	}
	slog.Info("wrote available dates", "count", len(dates))

	for _, entry := range dates {
		if err := e.exportDate(entry); err != nil {
			slog.Error("error exporting date, skipping", "date", entry.Date, "error", err)
		}
	}

	return nil
}

func (e *Exporter) exportDate(entry model.DateEntry) error {
	rows, err := report.ReadFile(filepath.Join(e.settings.CSVDir, entry.Filename))
	if err != nil {
		return err
	}

	rep := report.Aggregate(entry.Date, rows)
	if err := e.writeJSON(fmt.Sprintf("company-news-%s.json", entry.Date), rep); err != nil {
		return err
	}

	extract := report.ExtractLinks
	if e.settings.LinkStrategy == LinkStrategySplit {
		extract = report.SplitLinks
	}

	// One detail file per kept row, keyed by the row's own name. Looking
	// records back up by name would conflate companies whose names overlap.
	written := 0
	for _, row := range rows {
		if !report.ValidName(strings.TrimSpace(row.Name)) {
			continue
		}
		details := report.Details(entry.Date, row)
		details.ProcessedLinks = extract(details.LinksRaw)

		name := fmt.Sprintf("company-details-%s-%s.json", entry.Date, SanitizeCompanyName(details.CompanyName))
		if err := e.writeJSON(name, details); err != nil {
			return err
		}
		written++
	}

	slog.Info("exported date", "date", entry.Date, "companies", rep.TotalCompanies, "detail_files", written)
	return nil
}

func (e *Exporter) writeJSON(name string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(e.settings.OutputDir, name), payload, 0644)
}
