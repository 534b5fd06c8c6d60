// Package pipeline merges the per-source record lists into the final ranked
// collection: sequential fetch, cross-source deduplication, recency sort.
package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonesrussell/dealwatch/internal/deal"
	"github.com/jonesrussell/dealwatch/internal/logger"
)

// Source is the adapter capability the runner consumes.
type Source interface {
	Name() string
	Fetch(ctx context.Context, windowDays int) ([]deal.Record, error)
}

// SourceCount pairs a source label with the number of records it produced.
type SourceCount struct {
	Source string
	Count  int
}

// Result is the outcome of one pipeline run.
type Result struct {
	// Records is the deduplicated collection, newest first.
	Records []deal.Record
	// Counts lists per-source record counts in fetch order, before
	// cross-source deduplication.
	Counts []SourceCount
}

// Runner executes the ingestion pipeline once. Sources run one after
// another; a broken source never prevents the report from being produced.
type Runner struct {
	sources []Source
	logger  logger.Interface
}

// NewRunner creates a Runner over the given sources.
func NewRunner(sources []Source, log logger.Interface) *Runner {
	return &Runner{sources: sources, logger: log}
}

// Run fetches every source with the shared lookback window, concatenates,
// deduplicates, and sorts by recency. It never fails: adapter errors are
// logged and that source contributes nothing.
func (r *Runner) Run(ctx context.Context, windowDays int) *Result {
	runLog := r.logger.With("run_id", uuid.NewString(), "window_days", windowDays)
	runLog.Info("starting ingestion run", "sources", len(r.sources))

	all := make([]deal.Record, 0)
	counts := make([]SourceCount, 0, len(r.sources))

	for _, src := range r.sources {
		records, err := src.Fetch(ctx, windowDays)
		if err != nil {
			runLog.Warn("source fetch degraded", "source", src.Name(), "error", err)
		}

		runLog.Info("source fetched", "source", src.Name(), "items", len(records))
		counts = append(counts, SourceCount{Source: src.Name(), Count: len(records)})
		all = append(all, records...)
	}

	deduped := deal.Dedupe(all)
	SortByPublished(deduped)

	runLog.Info("ingestion run complete",
		"fetched", len(all),
		"after_dedupe", len(deduped),
	)

	return &Result{Records: deduped, Counts: counts}
}
