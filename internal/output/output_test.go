package output_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/dealwatch/internal/deal"
	"github.com/jonesrussell/dealwatch/internal/output"
	"github.com/jonesrussell/dealwatch/internal/pipeline"
)

func sampleRecords() []deal.Record {
	return []deal.Record{
		{
			Source:      "SEC EDGAR",
			SourceKind:  deal.KindFiling,
			PublishedAt: time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC),
			Title:       "GreenLeaf Inc to acquire BudCo LLC",
			URL:         "https://filings.example.com/greenleaf",
			DealType:    deal.TypeMA,
			Entities:    "GreenLeaf Inc | BudCo LLC",
			Amount:      "$50M",
			Snippet:     "Material definitive agreement & plan of merger.",
		},
		{
			Source:      "Bing News",
			SourceKind:  deal.KindNews,
			PublishedAt: time.Date(2026, 8, 23, 18, 0, 0, 0, time.UTC),
			Title:       "Café Verde raises $5M",
			URL:         "https://news.example.com/cafe-verde",
			DealType:    deal.TypeCapitalRaise,
			Entities:    "Café Verde | $5M",
			Amount:      "$5M",
			Snippet:     "The región's largest dispensary chain.",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deals.csv")

	require.NoError(t, output.WriteCSV(path, sampleRecords()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, deal.FieldNames, rows[0])

	first := rows[1]
	assert.Equal(t, "SEC EDGAR", first[0])
	assert.Equal(t, "regulatory-filing", first[1])
	assert.Equal(t, "2026-08-24T09:30:00Z", first[2])
	assert.Equal(t, "GreenLeaf Inc to acquire BudCo LLC", first[3])
	assert.Equal(t, "M&A", first[5])
	assert.Equal(t, "$50M", first[7])
}

func TestWriteCSV_EmptyCollectionWritesHeaderOnly(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deals.csv")

	require.NoError(t, output.WriteCSV(path, nil))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, readErr := csv.NewReader(f).ReadAll()
	require.NoError(t, readErr)
	require.Len(t, rows, 1)
	assert.Equal(t, deal.FieldNames, rows[0])
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deals.json")

	require.NoError(t, output.WriteJSON(path, sampleRecords()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	// Human-readable indentation and unescaped non-ASCII.
	assert.Contains(t, string(raw), "\n  {")
	assert.Contains(t, string(raw), "Café Verde")
	assert.Contains(t, string(raw), "región")
	assert.Contains(t, string(raw), "M&A")
	assert.NotContains(t, string(raw), `\u0026`)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 2)

	for _, field := range deal.FieldNames {
		assert.Contains(t, decoded[0], field)
	}

	assert.Equal(t, "GreenLeaf Inc to acquire BudCo LLC", decoded[0]["title"])
	assert.Equal(t, "news", decoded[1]["source_type"])
}

func TestWriteJSON_EmptyCollectionWritesEmptyArray(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deals.json")

	require.NoError(t, output.WriteJSON(path, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(raw)))
}

func TestRenderSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	output.RenderSummary(&buf, []pipeline.SourceCount{
		{Source: "SEC EDGAR", Count: 3},
		{Source: "Bing News", Count: 12},
	}, 11)

	rendered := buf.String()
	assert.Contains(t, rendered, "SEC EDGAR")
	assert.Contains(t, rendered, "12")
	assert.Contains(t, rendered, "11")
}
