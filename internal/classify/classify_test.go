package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/dealwatch/internal/classify"
	"github.com/jonesrussell/dealwatch/internal/deal"
)

func TestDealType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want deal.Type
	}{
		{
			"acquisition",
			"XYZ Corp to acquire ABC Inc for $50 million",
			deal.TypeMA,
		},
		{
			"acquisition keyword beats financing keyword",
			"GreenCo acquisition financed by a term loan",
			deal.TypeMA,
		},
		{
			"capital raise",
			"Company raises $10M in private placement",
			deal.TypeCapitalRaise,
		},
		{
			"debt",
			"Company secures $5M term loan",
			deal.TypeDebt,
		},
		{
			"no keyword",
			"Company opens new store in Denver",
			deal.TypeOther,
		},
		{
			"case insensitive",
			"MERGER OF EQUALS ANNOUNCED",
			deal.TypeMA,
		},
		{
			"empty",
			"",
			deal.TypeOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classify.DealType(tt.text))
		})
	}
}

func TestAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"dollar million", "deal valued at $12.5 million", "$12.5M"},
		{"no numbers", "no numbers here", ""},
		{"compact suffix", "raised $50M in equity", "$50M"},
		{"billion word", "a $1.2 billion merger", "$1.2B"},
		{"bn suffix", "USD 3bn facility", "$3B"},
		{"no scale word", "paid $750 per license", "$750"},
		{"comma grouped", "$1,250,000 purchase price", "$1,250,000"},
		{"bare number without marker", "valued at 12.5 million", "$12.5M"},
		{"only first match used", "$5M now and $10M later", "$5M"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classify.Amount(tt.text))
		})
	}
}

func TestEntities(t *testing.T) {
	t.Parallel()

	phrases := classify.DefaultEntitySplitPhrases()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			"to acquire",
			"GreenLeaf Inc to acquire BudCo LLC",
			"GreenLeaf Inc | BudCo LLC",
		},
		{
			"raises",
			"BudCo raises $10M Series A",
			"BudCo | $10M Series A",
		},
		{
			"case insensitive phrase",
			"GreenLeaf Inc TO ACQUIRE BudCo LLC",
			"GreenLeaf Inc | BudCo LLC",
		},
		{
			"no phrase returns cleaned title",
			"  Cannabis   market update  ",
			"Cannabis market update",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classify.Entities(tt.title, phrases))
		})
	}
}

func TestEntities_TruncatesLongOutput(t *testing.T) {
	t.Parallel()

	long := ""
	for i := 0; i < 30; i++ {
		long += "Very Long Company Name "
	}

	got := classify.Entities(long+" acquires "+long, classify.DefaultEntitySplitPhrases())

	assert.LessOrEqual(t, len(got), deal.MaxEntitiesLen)
}

func TestMatchesTopic(t *testing.T) {
	t.Parallel()

	cannabis := classify.DefaultCannabisTerms()
	deals := classify.DefaultDealTerms()

	assert.True(t, classify.MatchesTopic("Cannabis grower announces acquisition", cannabis, deals))
	assert.False(t, classify.MatchesTopic("Cannabis grower wins award", cannabis, deals))
	assert.False(t, classify.MatchesTopic("Tech company announces acquisition", cannabis, deals))
	assert.False(t, classify.MatchesTopic("", cannabis, deals))
}

func TestHasCannabisHint(t *testing.T) {
	t.Parallel()

	assert.True(t, classify.HasCannabisHint("Cannabinoid research expands"))
	assert.True(t, classify.HasCannabisHint("MARIJUANA dispensary sold"))
	assert.True(t, classify.HasCannabisHint("hemp processor files 8-K"))
	assert.False(t, classify.HasCannabisHint("software company files 8-K"))
}

func TestHasAnyTerm(t *testing.T) {
	t.Parallel()

	terms := []string{"term loan", "Credit Facility"}

	assert.True(t, classify.HasAnyTerm("secured a TERM LOAN today", terms))
	assert.True(t, classify.HasAnyTerm("new credit facility announced", terms))
	assert.False(t, classify.HasAnyTerm("equity offering announced", terms))
}
