package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"zigcore/internal/token"
)

// FormatTokensPretty writes one line per token: its 1-based index, kind,
// literal text (if any), and 1-based line:column position.
func FormatTokensPretty(w io.Writer, toks []token.Token) error {
	for i, tok := range toks {
		fmt.Fprintf(w, "%3d: %-10s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %s\n", tok.Pos)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

type tokenOutput struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
	Line int    `json:"line"`
	Col  int    `json:"col"`
}

// FormatTokensJSON writes toks as a JSON array.
func FormatTokensJSON(w io.Writer, toks []token.Token) error {
	out := make([]tokenOutput, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tokenOutput{Kind: tok.Kind.String(), Text: tok.Text, Line: tok.Pos.Line, Col: tok.Pos.Column})
		if tok.Kind == token.EOF {
			break
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
