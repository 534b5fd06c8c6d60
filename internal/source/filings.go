package source

import (
	"context"
	"net/http"

	"github.com/mmcdole/gofeed"

	"github.com/jonesrussell/dealwatch/internal/classify"
	"github.com/jonesrussell/dealwatch/internal/deal"
	"github.com/jonesrussell/dealwatch/internal/logger"
)

// filingsLabel is the source label for regulatory-filing records.
const filingsLabel = "SEC EDGAR"

// FilingsAdapter reads one or more regulatory-filing feeds. Filing summaries
// are sparse, so an entry is kept when it has either a deal-term hit or a
// soft cannabis hint; requiring both would over-filter.
type FilingsAdapter struct {
	feedURLs []string
	client   *Client
	vocab    classify.Vocabulary
	logger   logger.Interface
}

// NewFilings creates a FilingsAdapter over the given feed URLs.
func NewFilings(feedURLs []string, client *Client, vocab classify.Vocabulary, log logger.Interface) *FilingsAdapter {
	return &FilingsAdapter{
		feedURLs: feedURLs,
		client:   client,
		vocab:    vocab,
		logger:   log,
	}
}

// Name returns the source label.
func (a *FilingsAdapter) Name() string { return filingsLabel }

// Fetch returns in-window filing entries that pass the relevance gate.
// A failing feed is skipped; the remaining feeds still contribute.
func (a *FilingsAdapter) Fetch(ctx context.Context, windowDays int) ([]deal.Record, error) {
	oldest := cutoff(windowDays)
	parser := gofeed.NewParser()
	records := make([]deal.Record, 0)

	for _, feedURL := range a.feedURLs {
		resp, err := a.client.Get(ctx, feedURL, nil)
		if err != nil {
			a.logger.Warn("filing feed unreachable, skipping", "feed", feedURL, "error", err)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			a.logger.Warn("filing feed returned non-200, skipping", "feed", feedURL, "status", resp.StatusCode)
			continue
		}

		parsed, parseErr := parser.ParseString(string(resp.Body))
		if parseErr != nil {
			a.logger.Warn("filing feed failed to parse, skipping", "feed", feedURL, "error", parseErr)
			continue
		}

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
			if !classify.HasAnyTerm(blob, a.vocab.DealTerms) && !classify.HasCannabisHint(blob) {
				continue
			}

			records = append(records, buildRecord(filingsLabel, deal.KindFiling,
				publishedAt, title, entry.Link, summary, a.vocab))
		}
	}

	return records, nil
}
