// Package classify computes deal type, monetary amount, and counterparties
// from free text. Every function is pure: lower-cased substring matching and
// a single regex, no network and no ambient state.
package classify

import (
	"regexp"
	"strings"

	"github.com/jonesrussell/dealwatch/internal/deal"
	"github.com/jonesrussell/dealwatch/internal/textutil"
)

// Deal-type keyword groups, evaluated in order. The ordering is a deliberate
// tie-break: an acquisition financed by a term loan classifies as M&A.
var dealTypeGroups = []struct {
	dealType deal.Type
	keywords []string
}{
	{deal.TypeMA, []string{
		"acquire", "acquired", "acquisition", "merger", "sold to", "purchase agreement",
	}},
	{deal.TypeCapitalRaise, []string{
		"raises", "raised", "funding", "series", "private placement", "pipe",
	}},
	{deal.TypeDebt, []string{
		"credit facility", "term loan", "notes", "convertible", "secured", "debt", "debenture",
	}},
}

// amountPattern matches an optional currency marker, a comma-grouped numeric
// literal with an optional decimal part, and an optional scale word. A bare
// number with neither marker nor scale word is not a monetary mention, so
// the two branches each require one of them. Only the first match in a text
// is used.
var amountPattern = regexp.MustCompile(
	`(?i)(?:\$|USD\s?)\s?(` + amountNumber + `)\s?(million|billion|m|bn)?` +
		`|(` + amountNumber + `)\s?(million|billion|bn|m)\b`,
)

// amountNumber is the numeric literal shared by both amountPattern branches.
const amountNumber = `[0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]+)?|[0-9]+(?:\.[0-9]+)?`

// cannabisHint is the loose root-form pattern used for sparse-text sources
// where requiring full keyword co-occurrence would over-filter.
var cannabisHint = regexp.MustCompile(`(cannab|marij|hemp|dispens|thc|cbd)`)

// DealType classifies text into one of the four deal types. The first
// keyword group with a hit wins; no hit yields TypeOther.
func DealType(text string) deal.Type {
	lower := strings.ToLower(text)

	for _, group := range dealTypeGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				return group.dealType
			}
		}
	}

	return deal.TypeOther
}

// Amount extracts the first monetary magnitude mentioned in text, formatted
// as "$<num>M", "$<num>B", or "$<num>" when no scale word is present.
// Returns the empty string when no numeric match exists.
func Amount(text string) string {
	match := amountPattern.FindStringSubmatch(text)
	if match == nil {
		return ""
	}

	num, scale := match[1], match[2]
	if num == "" {
		num, scale = match[3], match[4]
	}

	switch strings.ToLower(scale) {
	case "million", "m":
		return "$" + num + "M"
	case "billion", "bn":
		return "$" + num + "B"
	default:
		return "$" + num
	}
}

// Entities derives a best-effort "Party A | Party B" string from a headline.
// The first linking phrase (in phrase order) found case-insensitively in the
// title splits it into normalized left and right halves. When no phrase
// matches, the normalized title itself is returned. Output is capped at
// deal.MaxEntitiesLen.
func Entities(title string, splitPhrases []string) string {
	lower := strings.ToLower(title)

	for _, phrase := range splitPhrases {
		idx := strings.Index(lower, phrase)
		if idx < 0 {
			continue
		}

		left := textutil.Normalize(title[:idx])
		right := textutil.Normalize(title[idx+len(phrase):])

		return textutil.Truncate(left+" | "+right, deal.MaxEntitiesLen)
	}

	return textutil.Truncate(textutil.Normalize(title), deal.MaxEntitiesLen)
}

// MatchesTopic reports whether text contains at least one term from each of
// the two sets. Used as the relevance gate for generic feed sources.
func MatchesTopic(text string, topicTerms, dealTerms []string) bool {
	lower := strings.ToLower(text)

	return hasAnyTerm(lower, topicTerms) && hasAnyTerm(lower, dealTerms)
}

// HasAnyTerm reports whether text contains any of the terms,
// case-insensitively.
func HasAnyTerm(text string, terms []string) bool {
	return hasAnyTerm(strings.ToLower(text), terms)
}

// HasCannabisHint reports whether text matches the soft root-form cannabis
// pattern.
func HasCannabisHint(text string) bool {
	return cannabisHint.MatchString(strings.ToLower(text))
}

// hasAnyTerm assumes lower is already lower-cased.
func hasAnyTerm(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}

	return false
}
