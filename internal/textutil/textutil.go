// Package textutil provides the text cleanup helpers shared by the
// classifiers and source adapters.
package textutil

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	// whitespaceRun matches any run of whitespace characters.
	whitespaceRun = regexp.MustCompile(`\s+`)

	// nonAlphanumeric matches everything that is not a lower-case letter
	// or digit. Input is lower-cased before this is applied.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
)

// Normalize collapses every whitespace run to a single space and trims both
// ends. It is total over any input; empty input yields the empty string.
func Normalize(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// Truncate hard-cuts s to at most max runes. A non-positive max yields the
// empty string.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// TitleKey reduces a title to its deduplication key: lower-cased with all
// non-alphanumeric characters stripped. Two headlines that differ only in
// punctuation, casing, or spacing produce the same key.
func TitleKey(s string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(s), "")
}

// StripHTML extracts the text content from an HTML fragment. Feed summaries
// and API descriptions frequently arrive as markup. When the fragment fails
// to parse the input is returned unchanged.
func StripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	return doc.Text()
}
