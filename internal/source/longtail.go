package source

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jonesrussell/dealwatch/internal/classify"
	"github.com/jonesrussell/dealwatch/internal/deal"
	"github.com/jonesrussell/dealwatch/internal/logger"
)

// Long-tail backoff bounds: on a 429 the adapter sleeps the base interval
// plus a random jitter, then retries exactly once.
const (
	defaultBackoffBase   = 2 * time.Second
	defaultBackoffJitter = 3 * time.Second
)

// longTailQuery is the single broad boolean query issued per run.
const longTailQuery = `(cannabis OR marijuana OR dispensary OR hemp) AND ` +
	`(acquisition OR merger OR raises OR financing OR "term loan" OR "private placement")`

// longTailResponse is the article-search API response envelope.
type longTailResponse struct {
	Articles []longTailArticle `json:"articles"`
}

// longTailArticle is one article as returned by the article-search API.
// Published is a compact numeric timestamp (unix seconds), sometimes
// delivered as a JSON string, and may be absent or garbage. It is decoded
// raw so one bad value cannot fail the whole response.
type longTailArticle struct {
	Title     string          `json:"title"`
	URL       string          `json:"url"`
	Excerpt   string          `json:"excerpt"`
	Published json.RawMessage `json:"published"`
}

// LongTailParams configures a LongTailAdapter.
type LongTailParams struct {
	Endpoint string
	Client   *Client
	Vocab    classify.Vocabulary
	Logger   logger.Interface
	// BackoffBase and BackoffJitter override the 429 backoff interval.
	// Zero means the defaults.
	BackoffBase   time.Duration
	BackoffJitter time.Duration
}

// LongTailAdapter issues one broad query against the long-tail
// article-search API. It tolerates upstream rate limiting with a single
// jittered retry; any other failure degrades to an empty result.
type LongTailAdapter struct {
	endpoint      string
	client        *Client
	vocab         classify.Vocabulary
	logger        logger.Interface
	backoffBase   time.Duration
	backoffJitter time.Duration
}

// NewLongTail creates a LongTailAdapter.
func NewLongTail(p LongTailParams) *LongTailAdapter {
	base := p.BackoffBase
	if base <= 0 {
		base = defaultBackoffBase
	}

	jitter := p.BackoffJitter
	if jitter <= 0 {
		jitter = defaultBackoffJitter
	}

	return &LongTailAdapter{
		endpoint:      p.Endpoint,
		client:        p.Client,
		vocab:         p.Vocab,
		logger:        p.Logger,
		backoffBase:   base,
		backoffJitter: jitter,
	}
}

// Name returns the source label.
func (a *LongTailAdapter) Name() string {
	if u, err := url.Parse(a.endpoint); err == nil && u.Host != "" {
		return "Long-tail (" + u.Host + ")"
	}
	return "Long-tail"
}

// Fetch issues the broad query over the lookback window. Rate limiting is
// retried once; every other failure returns an empty list.
func (a *LongTailAdapter) Fetch(ctx context.Context, windowDays int) ([]deal.Record, error) {
	oldest := cutoff(windowDays)

	queryURL := a.buildURL(windowDays)

	resp, err := a.client.Get(ctx, queryURL, nil)
	if err != nil {
		a.logger.Warn("long-tail query failed", "error", err)
		return []deal.Record{}, nil
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		backoff := a.backoffBase + time.Duration(rand.Int63n(int64(a.backoffJitter)))
		a.logger.Warn("long-tail API rate limited, retrying once", "backoff", backoff)

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return []deal.Record{}, nil
		}

		resp, err = a.client.Get(ctx, queryURL, nil)
		if err != nil {
			a.logger.Warn("long-tail retry failed", "error", err)
			return []deal.Record{}, nil
		}
	}

	if resp.StatusCode != http.StatusOK {
		a.logger.Warn("long-tail API returned non-200", "status", resp.StatusCode)
		return []deal.Record{}, nil
	}

	var parsed longTailResponse
	if jsonErr := json.Unmarshal(resp.Body, &parsed); jsonErr != nil {
		a.logger.Warn("long-tail response failed to parse", "error", jsonErr)
		return []deal.Record{}, nil
	}

	records := make([]deal.Record, 0, len(parsed.Articles))

	for _, art := range parsed.Articles {
		publishedAt := resolveNumericTime(art.Published)

		if publishedAt.Before(oldest) {
			continue
		}

		title := cleanText(art.Title)
		excerpt := cleanText(art.Excerpt)

		records = append(records, buildRecord(a.Name(), deal.KindNews,
			publishedAt, title, art.URL, excerpt, a.vocab))
	}

	return records, nil
}

// buildURL assembles the query URL with the lookback window.
func (a *LongTailAdapter) buildURL(windowDays int) string {
	params := url.Values{}
	params.Set("q", longTailQuery)
	params.Set("days", strconv.Itoa(windowDays))

	return a.endpoint + "?" + params.Encode()
}

// resolveNumericTime converts a compact numeric timestamp (unix seconds,
// bare or quoted) to a UTC instant. Absent or malformed values default to
// the ingestion time.
func resolveNumericTime(raw json.RawMessage) time.Time {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" {
		return time.Now().UTC()
	}

	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Now().UTC()
	}

	return time.Unix(secs, 0).UTC()
}
