// Package cleaner strips git merge-conflict debris out of CSV exports that
// were corrupted by careless merges of the data directory.
package cleaner

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var conflictLine = regexp.MustCompile(`^(<<<<<<< HEAD|=======|>>>>>>> [a-f0-9]+)`)

// Clean removes conflict-marker lines and collapses the consecutive
// duplicate lines merges leave behind. Blank lines are kept.
func Clean(content string) string {
	lines := strings.Split(content, "\n")

	cleaned := make([]string, 0, len(lines))
	prev := ""
	for _, line := range lines {
		if conflictLine.MatchString(line) {
			continue
		}
		if strings.TrimSpace(line) == strings.TrimSpace(prev) && strings.TrimSpace(line) != "" {
			prev = line
			continue
		}
		cleaned = append(cleaned, line)
		prev = line
	}

	return strings.Join(cleaned, "\n")
}

// CleanFile rewrites one CSV in place.
func CleanFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return os.WriteFile(path, []byte(Clean(string(data))), 0644)
}

// CleanDir cleans every CSV in a directory and returns the paths touched.
func CleanDir(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, err
	}

	for _, path := range files {
		if err := CleanFile(path); err != nil {
			return nil, err
		}
	}
	return files, nil
}
