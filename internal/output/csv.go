// Package output serializes the final collection: a CSV file, a JSON file,
// and a console summary table. Writers are thin; all shaping happened in
// the pipeline.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/jonesrussell/dealwatch/internal/deal"
)

// WriteCSV writes the records to path, UTF-8, one row per record. The
// canonical header row is always written, even for an empty collection.
func WriteCSV(path string, records []deal.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if writeErr := w.Write(deal.FieldNames); writeErr != nil {
		return fmt.Errorf("write csv header: %w", writeErr)
	}

	for _, rec := range records {
		row := []string{
			rec.Source,
			string(rec.SourceKind),
			rec.PublishedAt.Format(time.RFC3339),
			rec.Title,
			rec.URL,
			string(rec.DealType),
			rec.Entities,
			rec.Amount,
			rec.Snippet,
		}
		if writeErr := w.Write(row); writeErr != nil {
			return fmt.Errorf("write csv row: %w", writeErr)
		}
	}

	w.Flush()
	if flushErr := w.Error(); flushErr != nil {
		return fmt.Errorf("flush csv output: %w", flushErr)
	}

	return nil
}
