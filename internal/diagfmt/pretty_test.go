package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"zigcore/internal/diag"
	"zigcore/internal/token"
)

func TestPrettyNoColor(t *testing.T) {
	bag := diag.NewBag(0)
	bag.Error(token.Pos{Line: 2, Column: 5}, "undefined function: '%s'", "nope")

	var buf bytes.Buffer
	Pretty(&buf, bag, "hello.zc", []string{"fn main() -> i32 {", "  nope();"}, PrettyOpts{Context: 1})

	out := buf.String()
	if !strings.Contains(out, "hello.zc:2:5: error: undefined function: 'nope'") {
		t.Fatalf("unexpected header line:\n%s", out)
	}
	if !strings.Contains(out, "  nope();") {
		t.Fatalf("expected source preview line:\n%s", out)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	toks := []token.Token{
		{Kind: token.KwFn, Pos: token.Pos{Line: 1, Column: 1}, Text: "fn"},
		{Kind: token.EOF, Pos: token.Pos{Line: 1, Column: 3}},
	}
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"kind": "fn"`) {
		t.Fatalf("unexpected JSON: %s", buf.String())
	}
}
