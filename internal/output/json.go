package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonesrussell/dealwatch/internal/deal"
)

// WriteJSON writes the records to path as a single indented array of
// objects, UTF-8, with non-ASCII characters preserved unescaped. An empty
// collection writes an empty array.
func WriteJSON(path string, records []deal.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json output: %w", err)
	}
	defer f.Close()

	if records == nil {
		records = []deal.Record{}
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if encErr := enc.Encode(records); encErr != nil {
		return fmt.Errorf("encode json output: %w", encErr)
	}

	return nil
}
