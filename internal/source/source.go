// Package source implements the per-upstream fetch/parse adapters. Every
// adapter produces the same canonical deal.Record and degrades to an empty
// or partial result on upstream failure; errors never cross the adapter
// boundary except as log fields.
package source

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/jonesrussell/dealwatch/internal/classify"
	"github.com/jonesrussell/dealwatch/internal/deal"
	"github.com/jonesrussell/dealwatch/internal/textutil"
)

// Adapter is the single capability every upstream source implements.
type Adapter interface {
	// Name returns the human-readable source label used in logs and counts.
	Name() string
	// Fetch returns the candidate records published within the trailing
	// windowDays. Transport and parse failures yield empty or partial
	// results, not errors; the error return is reserved for conditions the
	// runner should log.
	Fetch(ctx context.Context, windowDays int) ([]deal.Record, error)
}

// cutoff returns the oldest admissible publish time for the window.
func cutoff(windowDays int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -windowDays)
}

// resolvePublished applies the "first present of published/updated" rule to
// a feed entry. Feed timestamps without a zone are parsed as UTC by the
// feed parser. The second return is false when no parseable timestamp
// exists, in which case the entry is dropped by its adapter.
func resolvePublished(item *gofeed.Item) (time.Time, bool) {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC(), true
	}

	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.UTC(), true
	}

	return time.Time{}, false
}

// parseArticleTime parses an API-supplied publish timestamp. Zoneless
// timestamps are assumed UTC. The second return is false when the value
// does not parse at all.
func parseArticleTime(raw string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), true
	}

	if t, err := time.ParseInLocation("2006-01-02T15:04:05", raw, time.UTC); err == nil {
		return t, true
	}

	return time.Time{}, false
}

// cleanText strips markup and normalizes whitespace. Every upstream text
// field passes through here before classification or storage.
func cleanText(s string) string {
	return textutil.Normalize(textutil.StripHTML(s))
}

// buildRecord assembles a canonical record from cleaned upstream fields.
// The combined title+summary blob drives deal-type and amount
// classification; the title alone drives entity extraction.
func buildRecord(
	label string,
	kind deal.SourceKind,
	publishedAt time.Time,
	title, url, summary string,
	vocab classify.Vocabulary,
) deal.Record {
	blob := title + " " + summary

	return deal.Record{
		Source:      label,
		SourceKind:  kind,
		PublishedAt: publishedAt,
		Title:       title,
		URL:         url,
		DealType:    classify.DealType(blob),
		Entities:    classify.Entities(title, vocab.EntitySplitPhrases),
		Amount:      classify.Amount(blob),
		Snippet:     textutil.Truncate(summary, deal.MaxSnippetLen),
	}
}
