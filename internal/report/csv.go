package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile parses a daily CSV export into raw rows. Quoted multiline
// fields are handled by the reader; rows that fail to parse are skipped
// rather than failing the file. A file without a Company_Name header is
// unusable and returns an error.
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readRows(f, filepath.Base(path))
}

func readRows(r io.Reader, name string) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", name, err)
	}

	nameIdx, textIdx, linksIdx := -1, -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "Company_Name":
			nameIdx = i
		case "Extracted_Text":
			textIdx = i
		case "Extracted_Links":
			linksIdx = i
		}
	}
	if nameIdx == -1 {
		return nil, fmt.Errorf("%s has no Company_Name column", name)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Skip malformed rows, but a non-parse error means the file
			// itself is unreadable and would repeat forever.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if nameIdx >= len(record) {
			continue
		}

		row := Row{Name: record[nameIdx]}
		if textIdx != -1 && textIdx < len(record) {
			row.Text = record[textIdx]
		}
		if linksIdx != -1 && linksIdx < len(record) {
			row.Links = record[linksIdx]
		}
		rows = append(rows, row)
	}

	return rows, nil
}
