package report

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Scraper boilerplate for companies with an empty news day, e.g.
// "No significant corporate developments for Acme Corp on 22.08.2025".
var noNewsBoilerplate = regexp.MustCompile(`no significant corporate developments for .+ on \d{2}\.\d{2}\.\d{4}`)

// Phrases that mark a row as a no-news placeholder. Substring matched in
// order against the lowercased text; false positives on substantive
// headlines that merely contain one of these are accepted.
var noNewsPhrases = []string{
	"no significant corporate developments for",
	"no significant corporate developments",
	"no significant developments",
	"no significant news",
	"no significant",
	"no news found",
	"no news",
	"no updates",
	"no recent news",
	"no major news",
	"nothing significant",
	"no developments",
	"no announcements",
}

// Texts shorter than this are treated as no-news placeholders regardless
// of content.
const minNewsLength = 50

// HasNews reports whether the extracted text represents substantive news.
// The rules are checked in order and the first match wins: empty text, the
// boilerplate date pattern, very short text, then the phrase list all mean
// no news; anything else counts as news.
func HasNews(text string) bool {
	if text == "" {
		return false
	}

	lowered := strings.ToLower(strings.TrimSpace(text))

	if noNewsBoilerplate.MatchString(lowered) {
		return false
	}

	if utf8.RuneCountInString(lowered) < minNewsLength {
		return false
	}

	for _, phrase := range noNewsPhrases {
		if strings.Contains(lowered, phrase) {
			return false
		}
	}

	return true
}
