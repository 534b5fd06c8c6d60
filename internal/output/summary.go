package output

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jonesrussell/dealwatch/internal/pipeline"
)

// RenderSummary prints the per-source item counts and the final written
// total as a formatted table.
func RenderSummary(w io.Writer, counts []pipeline.SourceCount, written int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Source", "Items"})

	for _, c := range counts {
		t.AppendRow(table.Row{c.Source, c.Count})
	}

	t.AppendFooter(table.Row{"Written (after dedupe)", written})

	t.Render()
}
