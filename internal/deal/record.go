// Package deal defines the canonical record every source adapter produces.
package deal

import "time"

// SourceKind identifies the class of upstream a record came from.
type SourceKind string

const (
	// KindFiling marks records originating from regulatory-filing feeds.
	KindFiling SourceKind = "regulatory-filing"
	// KindNews marks records originating from news sources.
	KindNews SourceKind = "news"
)

// Type is the coarse transaction classification derived from record text.
type Type string

const (
	// TypeMA covers mergers, acquisitions, and asset purchases.
	TypeMA Type = "M&A"
	// TypeCapitalRaise covers equity financings and placements.
	TypeCapitalRaise Type = "Capital Raise"
	// TypeDebt covers loans, notes, and other debt instruments.
	TypeDebt Type = "Debt"
	// TypeOther is the default when no deal keyword matches.
	TypeOther Type = "Other"
)

// Field-length caps applied when records are constructed.
const (
	// MaxSnippetLen is the hard truncation applied to evidence snippets.
	MaxSnippetLen = 280
	// MaxEntitiesLen is the hard truncation applied to entity strings.
	MaxEntitiesLen = 200
)

// Record represents one candidate transaction mention. Records are built
// once inside a source adapter and never mutated afterwards.
type Record struct {
	Source      string     `json:"source"`
	SourceKind  SourceKind `json:"source_type"`
	PublishedAt time.Time  `json:"published_at"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	DealType    Type       `json:"deal_type_guess"`
	Entities    string     `json:"entities_guess"`
	Amount      string     `json:"amount_guess"`
	Snippet     string     `json:"snippet"`
}

// FieldNames is the canonical serialization order shared by the CSV header
// and the JSON object keys.
var FieldNames = []string{
	"source",
	"source_type",
	"published_at",
	"title",
	"url",
	"deal_type_guess",
	"entities_guess",
	"amount_guess",
	"snippet",
}
