package diagfmt

import (
	"encoding/json"
	"io"

	"zigcore/internal/diag"
)

// jsonDiagnostic is the stable, machine-readable shape emitted for editor
// tooling. Field names are deliberately snake_case so they read naturally
// alongside other JSON tool output, independent of Go naming.
type jsonDiagnostic struct {
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	LineStart int    `json:"line_start"`
	ColStart  int    `json:"col_start"`
	LineEnd   int    `json:"line_end"`
	ColEnd    int    `json:"col_end"`
}

// FormatJSON writes bag's diagnostics as a JSON array, one object per
// diagnostic, in insertion order.
func FormatJSON(w io.Writer, bag *diag.Bag) error {
	out := make([]jsonDiagnostic, 0, bag.Len())
	for _, d := range bag.Items() {
		out = append(out, jsonDiagnostic{
			Severity:  d.Severity.String(),
			Message:   d.Message,
			LineStart: d.Span.LineStart,
			ColStart:  d.Span.ColStart,
			LineEnd:   d.Span.LineEnd,
			ColEnd:    d.Span.ColEnd,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
