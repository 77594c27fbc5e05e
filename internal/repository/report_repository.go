package repository

import (
	"path/filepath"
	"sort"

	"niftynews/internal/model"
	"niftynews/internal/report"
)

// ReportRepository serves daily reports straight from a directory of CSV
// exports. Every call re-reads the file; there is no caching and no write
// path, so concurrent requests are safe.
type ReportRepository struct {
	dir string
}

func NewReportRepository(dir string) *ReportRepository {
	return &ReportRepository{dir: dir}
}

// ListDates returns one entry per parseable CSV filename, newest first.
// A missing data directory yields an empty list, not an error.
func (r *ReportRepository) ListDates() ([]model.DateEntry, error) {
	files, err := filepath.Glob(filepath.Join(r.dir, "*.csv"))
	if err != nil {
		return nil, err
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
	return dates, nil
}

// ReportForDate returns the aggregated report for an ISO date, or
// (nil, nil) when no CSV matches it.
func (r *ReportRepository) ReportForDate(date string) (*model.DailyReport, error) {
	path, err := r.findCSV(date)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}

	rows, err := report.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return report.Aggregate(date, rows), nil
}

// CompanyDetails returns the drill-down view for one company on one date.
// (nil, nil) means either the date has no CSV or no row matched the name.
func (r *ReportRepository) CompanyDetails(date, company string) (*model.CompanyDetails, error) {
	path, err := r.findCSV(date)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}

	rows, err := report.ReadFile(path)
	if err != nil {
		return nil, err
	}

	row, ok := report.FindCompany(rows, company)
	if !ok {
		return nil, nil
	}

	return report.Details(date, row), nil
}

// findCSV locates the CSV file whose filename parses to the given ISO
// date. Filenames are matched by parsed date rather than reconstructed, so
// both "5.1.2026.csv" and "05.01.2026.csv" resolve.
func (r *ReportRepository) findCSV(date string) (string, error) {
	files, err := filepath.Glob(filepath.Join(r.dir, "*.csv"))
	if err != nil {
		return "", err
	}

	for _, path := range files {
		parsed, ok := report.DateFromFilename(filepath.Base(path))
		if ok && parsed == date {
			return path, nil
		}
	}
	return "", nil
}
