package classify

// Vocabulary holds the named term sets driving relevance gating and entity
// extraction. The sets are configuration data: they are loaded once at
// startup and passed explicitly to the functions that use them.
type Vocabulary struct {
	// CannabisTerms are the industry terms that mark an item as on-topic.
	CannabisTerms []string
	// DealTerms are the transaction terms that mark an item as deal-related.
	DealTerms []string
	// EntitySplitPhrases are the linking phrases used to split a headline
	// into its two counterparties. Order matters: first phrase with a hit
	// wins.
	EntitySplitPhrases []string
}

// DefaultCannabisTerms seeds the cannabis_terms configuration key.
func DefaultCannabisTerms() []string {
	return []string{
		"cannabis", "marijuana", "dispensary", "dispensaries", "hemp", "thc", "cbd",
		"cultivation", "grower", "processor", "processing", "extract", "extraction",
	}
}

// DefaultDealTerms seeds the deal_terms configuration key.
func DefaultDealTerms() []string {
	return []string{
		"acquire", "acquires", "acquired", "acquisition", "merge", "merger",
		"buyout", "purchased", "purchase", "sale", "sold", "transaction",
		"investment", "raises", "raised", "funding", "financing", "credit facility",
		"term loan", "notes", "convertible", "private placement", "pipe",
		"sale-leaseback", "strategic partnership", "joint venture",
	}
}

// DefaultEntitySplitPhrases seeds the entity_split_phrases configuration key.
func DefaultEntitySplitPhrases() []string {
	return []string{
		" acquires ", " acquisition of ", " to acquire ", " to be acquired by ",
		" merger with ", " raises ", " secures ",
	}
}
