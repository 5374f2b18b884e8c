package lexer

import (
	"testing"

	"zigcore/internal/token"
)

// FuzzTokenize checks the lexer never panics and always terminates with an
// EOF token, regardless of input.
func FuzzTokenize(f *testing.F) {
	seeds := []string{
		`extern { fn puts(s: *const u8) -> i32; }`,
		`fn main() -> i32 { return 0; }`,
		`"\x00\xff"`,
		`"unterminated`,
		`fn ` + "\xff\xfe",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, src string) {
		toks := New(src).Tokenize()
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("tokenize(%q) did not end in EOF", src)
		}
	})
}
