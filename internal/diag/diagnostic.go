package diag

import (
	"fmt"

	"zigcore/internal/token"
)

// Span is a diagnostic's source coordinates. End values of -1 mean
// "unknown" — every diagnostic this compiler emits today is a single
// point, so LineEnd/ColEnd are always -1, but the shape leaves room for a
// future diagnostic covering a range.
type Span struct {
	LineStart int
	ColStart  int
	LineEnd   int
	ColEnd    int
}

// PointSpan returns a Span anchored at pos with unknown end coordinates.
func PointSpan(pos token.Pos) Span {
	return Span{LineStart: pos.Line, ColStart: pos.Column, LineEnd: -1, ColEnd: -1}
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.LineStart, s.ColStart)
}

// Diagnostic is one recorded error or warning.
type Diagnostic struct {
	Severity Severity
	Message  string
	Span     Span
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Span, d.Severity, d.Message)
}
