package textutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/dealwatch/internal/textutil"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"already clean", "GreenLeaf acquires BudCo", "GreenLeaf acquires BudCo"},
		{"leading and trailing", "  padded out  ", "padded out"},
		{"internal runs", "too\t\tmany\n\n  spaces", "too many spaces"},
		{"only whitespace", " \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, textutil.Normalize(tt.input))
		})
	}
}

func TestNormalize_NoConsecutiveWhitespace(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"a  b\tc\nd\r\ne",
		"  leading nbsp",
		strings.Repeat(" x ", 50),
	}

	for _, input := range inputs {
		got := textutil.Normalize(input)

		assert.NotContains(t, got, "  ")
		assert.NotContains(t, got, "\t")
		assert.NotContains(t, got, "\n")
		assert.Equal(t, strings.TrimSpace(got), got)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", textutil.Truncate("abcdef", 3))
	assert.Equal(t, "abcdef", textutil.Truncate("abcdef", 10))
	assert.Equal(t, "abcdef", textutil.Truncate("abcdef", 6))
	assert.Equal(t, "", textutil.Truncate("abcdef", 0))
}

func TestTruncate_RuneSafe(t *testing.T) {
	t.Parallel()

	got := textutil.Truncate("caffè latte", 5)

	assert.Equal(t, "caffè", got)
}

func TestTitleKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dealcloses", textutil.TitleKey("Deal Closes!"))
	assert.Equal(t, "dealcloses", textutil.TitleKey("deal closes"))
	assert.Equal(t, "", textutil.TitleKey("!!! ---"))
	assert.Equal(t, "50mraise", textutil.TitleKey("$50M Raise"))
}

func TestStripHTML(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain text", textutil.StripHTML("plain text"))
	assert.Equal(t,
		"BudCo raises $10M",
		textutil.StripHTML("<p>BudCo raises <b>$10M</b></p>"),
	)
}
