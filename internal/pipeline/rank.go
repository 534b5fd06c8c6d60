package pipeline

import (
	"sort"

	"github.com/jonesrussell/dealwatch/internal/deal"
)

// SortByPublished orders records by publish time, newest first, in place.
// A record whose timestamp could not be parsed carries the zero time and
// sorts last. The sort is stable, so ties retain their input order.
func SortByPublished(records []deal.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PublishedAt.After(records[j].PublishedAt)
	})
}
