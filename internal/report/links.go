package report

import (
	"regexp"
	"strings"
)

const minLinkLength = 10

var (
	urlPattern      = regexp.MustCompile(`https?://[^\s"'<>\])]*`)
	trailingPunct   = regexp.MustCompile(`[.,;)}\]]+$`)
	linkDomainHints = []string{"http", "www.", ".com", ".org", ".net", ".in"}
	splitDelimiters = []string{",", ";", "\n", "|", "\t"}
)

// noLinks reports whether the field is a "no links found" placeholder or
// simply empty.
func noLinks(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || strings.HasPrefix(strings.ToLower(trimmed), "no links found")
}

// ExtractLinks pulls URLs out of a free-text links field by regex match.
// Trailing punctuation is stripped from each URL, matches of 10 characters
// or fewer are dropped, and duplicates are removed keeping first-seen
// order. This is the canonical strategy, used by both the API server and
// the default export.
func ExtractLinks(raw string) []string {
	links := []string{}
	if noLinks(raw) {
		return links
	}

	seen := make(map[string]bool)

	for _, url := range urlPattern.FindAllString(strings.TrimSpace(raw), -1) {
		url = trailingPunct.ReplaceAllString(url, "")
		if len(url) <= minLinkLength || seen[url] {
			continue
		}
		links = append(links, url)
		seen[url] = true
	}

	return links
}

// SplitLinks is the legacy delimiter-splitting strategy kept for
// compatibility with the original static build output. The field is split
// on the first delimiter found (comma, semicolon, newline, pipe, tab, in
// that priority), pieces without a scheme get https:// prepended when they
// look like hostnames, and only pieces containing a URL-ish substring
// survive.
func SplitLinks(raw string) []string {
	links := []string{}
	if noLinks(raw) {
		return links
	}

	field := strings.TrimSpace(raw)

	pieces := []string{field}
	for _, delim := range splitDelimiters {
		if strings.Contains(field, delim) {
			pieces = strings.Split(field, delim)
			break
		}
	}

	for _, link := range pieces {
		link = strings.TrimSpace(link)
		if len(link) <= minLinkLength {
			continue
		}

		if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
			if strings.HasPrefix(link, "www.") {
				link = "https://" + link
			} else if strings.Contains(link, ".") && !strings.HasPrefix(link, "no ") {
				link = "https://" + link
			}
		}

		for _, hint := range linkDomainHints {
			if strings.Contains(link, hint) {
				links = append(links, link)
				break
			}
		}
	}

	return links
}
