package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/jonesrussell/dealwatch/internal/classify"
	"github.com/jonesrussell/dealwatch/internal/deal"
	"github.com/jonesrussell/dealwatch/internal/logger"
	"github.com/jonesrussell/dealwatch/internal/textutil"
)

// newsAPILabel is the source label for primary keyword-search records.
const newsAPILabel = "Bing News"

// defaultQueryInterval is the politeness delay enforced between queries.
const defaultQueryInterval = 350 * time.Millisecond

// newsAPIPageSize is the article count requested per query.
const newsAPIPageSize = 50

// newsSearchQueries are the pre-built topical queries: deal-by-type and
// deal-by-region combinations. A single run issues all of them.
var newsSearchQueries = []string{
	`(cannabis OR marijuana OR dispensary OR cultivation OR hemp) (acquires OR acquired OR acquisition OR merger OR "asset purchase")`,
	`(cannabis OR marijuana OR dispensary OR cultivation OR hemp) (raises OR raised OR funding OR financing OR "private placement" OR "Series A" OR "Series B")`,
	`(cannabis OR marijuana OR dispensary OR cultivation OR hemp) ("credit facility" OR "term loan" OR notes OR debenture OR convertible OR "sale-leaseback")`,
	`(dispensary OR cannabis) (sold OR purchased OR buyer OR acquisition) (Michigan OR Colorado OR California OR Oregon OR Washington)`,
}

// newsAPIResponse is the keyword-search API response envelope.
type newsAPIResponse struct {
	Value []newsAPIArticle `json:"value"`
}

// newsAPIArticle is one article as returned by the keyword-search API.
// Fields the upstream may omit are plain strings that default to empty.
type newsAPIArticle struct {
	Name          string `json:"name"`
	URL           string `json:"url"`
	Description   string `json:"description"`
	DatePublished string `json:"datePublished"`
}

// NewsAPIParams configures a NewsAPIAdapter.
type NewsAPIParams struct {
	Endpoint string
	// Key is the API credential. When empty, Fetch returns an empty list
	// and logs a diagnostic instead of failing the run.
	Key    string
	Client *Client
	Vocab  classify.Vocabulary
	Logger logger.Interface
	// QueryInterval overrides the politeness delay between queries.
	// Zero means the default.
	QueryInterval time.Duration
}

// NewsAPIAdapter issues several pre-built topical queries against the
// keyword-search news API, rate-limited between queries, and dedupes its
// own output: one query set returns overlapping articles across queries.
type NewsAPIAdapter struct {
	endpoint string
	key      string
	client   *Client
	vocab    classify.Vocabulary
	logger   logger.Interface
	limiter  *rate.Limiter
}

// NewNewsAPI creates a NewsAPIAdapter.
func NewNewsAPI(p NewsAPIParams) *NewsAPIAdapter {
	interval := p.QueryInterval
	if interval <= 0 {
		interval = defaultQueryInterval
	}

	return &NewsAPIAdapter{
		endpoint: p.Endpoint,
		key:      p.Key,
		client:   p.Client,
		vocab:    p.Vocab,
		logger:   p.Logger,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Name returns the source label.
func (a *NewsAPIAdapter) Name() string { return newsAPILabel }

// Fetch runs every query within the lookback window. A missing credential
// or a failing query yields fewer results, never an error.
func (a *NewsAPIAdapter) Fetch(ctx context.Context, windowDays int) ([]deal.Record, error) {
	if a.key == "" {
		a.logger.Warn("news search API key is missing; returning empty list")
		return []deal.Record{}, nil
	}

	oldest := cutoff(windowDays)
	records := make([]deal.Record, 0)

	for _, query := range newsSearchQueries {
		if err := a.limiter.Wait(ctx); err != nil {
			return deal.Dedupe(records), nil
		}

		articles, ok := a.runQuery(ctx, query)
		if !ok {
			continue
		}

		for _, art := range articles {
			rec, keep := a.toRecord(art, oldest)
			if keep {
				records = append(records, rec)
			}
		}
	}

	return deal.Dedupe(records), nil
}

// runQuery issues one search query. Non-200 responses and malformed JSON
// are skipped, not fatal.
func (a *NewsAPIAdapter) runQuery(ctx context.Context, query string) ([]newsAPIArticle, bool) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(newsAPIPageSize))
	params.Set("freshness", "Week")
	params.Set("sortBy", "Date")
	params.Set("textFormat", "Raw")
	params.Set("safeSearch", "Off")

	resp, err := a.client.Get(ctx, a.endpoint+"?"+params.Encode(), map[string]string{
		"Ocp-Apim-Subscription-Key": a.key,
	})
	if err != nil {
		a.logger.Warn("news search query failed, skipping", "error", err)
		return nil, false
	}

	if resp.StatusCode != http.StatusOK {
		a.logger.Warn("news search query returned non-200, skipping",
			"status", resp.StatusCode,
			"body", textutil.Truncate(string(resp.Body), 200),
		)
		return nil, false
	}

	var parsed newsAPIResponse
	if jsonErr := json.Unmarshal(resp.Body, &parsed); jsonErr != nil {
		a.logger.Warn("news search response failed to parse, skipping", "error", jsonErr)
		return nil, false
	}

	return parsed.Value, true
}

// toRecord converts one article, applying the window filter. An article
// whose publish date fails to parse is kept and stamped with the ingestion
// time; one that parses outside the window is dropped.
func (a *NewsAPIAdapter) toRecord(art newsAPIArticle, oldest time.Time) (deal.Record, bool) {
	publishedAt := time.Now().UTC()

	if art.DatePublished != "" {
		if parsed, ok := parseArticleTime(art.DatePublished); ok {
			publishedAt = parsed
			if publishedAt.Before(oldest) {
				return deal.Record{}, false
			}
		}
	}

	title := cleanText(art.Name)
	desc := cleanText(art.Description)

	return buildRecord(newsAPILabel, deal.KindNews, publishedAt, title, art.URL, desc, a.vocab), true
}
