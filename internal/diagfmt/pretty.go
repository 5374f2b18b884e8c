// Package diagfmt formats a diag.Bag for a terminal or as JSON. It makes no
// semantic decisions — it only renders what diag.Bag.Items() already
// contains.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"zigcore/internal/diag"
)

// PrettyOpts controls terminal rendering.
type PrettyOpts struct {
	Color   bool
	Context int // any positive value shows the reported line and a caret; no surrounding lines are shown; 0 disables previews
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	locationColor = color.New(color.FgCyan)
)

// Pretty writes one human-readable line per diagnostic in bag, in
// insertion order, optionally followed by a source preview with a caret
// under the reported column. sourceLines is the file's content split into
// lines, or nil if a preview should never be attempted.
func Pretty(w io.Writer, bag *diag.Bag, path string, sourceLines []string, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnosticHeader(w, d, path, opts)
		if opts.Context > 0 && sourceLines != nil {
			writePreview(w, d, sourceLines, opts)
		}
	}
}

func writeDiagnosticHeader(w io.Writer, d diag.Diagnostic, path string, opts PrettyOpts) {
	loc := fmt.Sprintf("%s:%d:%d", path, d.Span.LineStart, d.Span.ColStart)
	sev := d.Severity.String()
	if opts.Color {
		loc = locationColor.Sprint(loc)
		if d.Severity == diag.SevError {
			sev = errorColor.Sprint(sev)
		} else {
			sev = warningColor.Sprint(sev)
		}
	}
	fmt.Fprintf(w, "%s: %s: %s\n", loc, sev, d.Message)
}

// writePreview prints the offending source line followed by a caret line.
// Caret alignment accounts for wide/combining runes via go-runewidth so the
// caret lands under the right column even when the line contains
// double-width characters before the reported position.
func writePreview(w io.Writer, d diag.Diagnostic, sourceLines []string, opts PrettyOpts) {
	lineIdx := d.Span.LineStart - 1
	if lineIdx < 0 || lineIdx >= len(sourceLines) {
		return
	}
	line := sourceLines[lineIdx]
	fmt.Fprintf(w, "  %s\n", line)

	col := d.Span.ColStart - 1
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	caretOffset := runewidth.StringWidth(line[:col])
	fmt.Fprintf(w, "  %s^\n", strings.Repeat(" ", caretOffset))
}
