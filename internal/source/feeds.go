package source

import (
	"context"
	"net/http"

	"github.com/mmcdole/gofeed"

	"github.com/jonesrussell/dealwatch/internal/classify"
	"github.com/jonesrussell/dealwatch/internal/deal"
	"github.com/jonesrussell/dealwatch/internal/logger"
)

// FeedsAdapter iterates an operator-supplied list of generic syndication
// feeds. Unlike the sparse filing feeds, generic feed entries must contain
// both a cannabis term and a deal term to be included.
type FeedsAdapter struct {
	feedURLs []string
	client   *Client
	vocab    classify.Vocabulary
	logger   logger.Interface
}

// NewFeeds creates a FeedsAdapter over the given feed URLs. The list may be
// empty, in which case Fetch returns no records.
func NewFeeds(feedURLs []string, client *Client, vocab classify.Vocabulary, log logger.Interface) *FeedsAdapter {
	return &FeedsAdapter{
		feedURLs: feedURLs,
		client:   client,
		vocab:    vocab,
		logger:   log,
	}
}

// Name returns the source label.
func (a *FeedsAdapter) Name() string { return "RSS" }

// Fetch returns in-window entries that pass the topic co-occurrence gate.
// A failing feed is skipped; the remaining feeds still contribute.
func (a *FeedsAdapter) Fetch(ctx context.Context, windowDays int) ([]deal.Record, error) {
	oldest := cutoff(windowDays)
	parser := gofeed.NewParser()
	records := make([]deal.Record, 0)

	for _, feedURL := range a.feedURLs {
		resp, err := a.client.Get(ctx, feedURL, nil)
		if err != nil {
			a.logger.Warn("news feed unreachable, skipping", "feed", feedURL, "error", err)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			a.logger.Warn("news feed returned non-200, skipping", "feed", feedURL, "status", resp.StatusCode)
			continue
		}

		parsed, parseErr := parser.ParseString(string(resp.Body))
		if parseErr != nil {
			a.logger.Warn("news feed failed to parse, skipping", "feed", feedURL, "error", parseErr)
			continue
		}

		label := "RSS (" + feedURL + ")"

		for _, entry := range parsed.Items {
			publishedAt, ok := resolvePublished(entry)
			if !ok {
				continue
			}

			if publishedAt.Before(oldest) {
				continue
			}

			title := cleanText(entry.Title)
			summary := cleanText(entry.Description)

			blob := title + " " + summary
			if !classify.MatchesTopic(blob, a.vocab.CannabisTerms, a.vocab.DealTerms) {
				continue
			}

			records = append(records, buildRecord(label, deal.KindNews,
				publishedAt, title, entry.Link, summary, a.vocab))
		}
	}

	return records, nil
}
