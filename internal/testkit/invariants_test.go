package testkit

import (
	"testing"

	"zigcore/internal/diag"
	"zigcore/internal/parser"
)

func TestCheckArenaInvariantsOnValidFile(t *testing.T) {
	src := `
extern {
	fn puts(s: *const u8) -> i32;
}

fn main() -> i32 {
	puts("hi");
	return 0;
}
`
	bag := diag.NewBag(0)
	b := parser.ParseFile("hello.zc", src, bag)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}
	if err := CheckArenaInvariants(b); err != nil {
		t.Fatalf("CheckArenaInvariants: %v", err)
	}
}
