package parser

import (
	"testing"

	"zigcore/internal/diag"
)

// FuzzParseFile checks the parser never panics on arbitrary input and
// always terminates, regardless of how malformed the source is — the
// resynchronization logic must give up cleanly rather than looping or
// crashing.
func FuzzParseFile(f *testing.F) {
	seeds := []string{
		`extern { fn puts(s: *const u8) -> i32; }`,
		`fn main() -> i32 { return 0; }`,
		`fn broken(`,
		`extern { fn`,
		`fn main() -> *mut *const unreachable { unreachable; }`,
		``,
		`}}}}{{{{`,
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, src string) {
		bag := diag.NewBag(1000)
		b := ParseFile("fuzz.zc", src, bag)
		if b == nil {
			t.Fatal("ParseFile returned a nil Builder")
		}
	})
}
