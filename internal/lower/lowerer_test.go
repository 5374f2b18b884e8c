package lower

import (
	"strings"
	"testing"

	"zigcore/internal/diag"
	"zigcore/internal/irgen"
	"zigcore/internal/parser"
	"zigcore/internal/sema"
	"zigcore/internal/symbols"
	"zigcore/internal/types"
)

// pipeline runs parse → analyze → lower and returns the module plus the
// accumulated diagnostics, mirroring the Compilation Context's stage order
// at a scale small enough for a unit test.
func pipeline(t *testing.T, src string) (*irgen.Module, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(0)
	b := parser.ParseFile("t.zc", src, bag)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}

	mod := irgen.NewModule("ZigModule", 64)
	reg := types.NewRegistry(mod.Debug, 64)
	defs := symbols.NewDefs()
	fnTable := symbols.NewFnTable()
	pool := symbols.NewStringPool(mod)

	sema.New(b, reg, defs, fnTable, mod, bag).Run()
	New(b, reg, defs, fnTable, pool, mod, bag).Run()
	return mod, bag
}

func TestLowerHelloWorld(t *testing.T) {
	src := `
extern { fn puts(s: *const u8) -> i32; }
fn main() -> i32 { puts("hi"); return 0; }
`
	mod, bag := pipeline(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	irgen.VerifyOrAbort(mod)

	dump := mod.Dump()
	if !strings.Contains(dump, `c"hi"`) {
		t.Fatalf("expected the 'hi' string global, got:\n%s", dump)
	}
	if !strings.Contains(dump, "declare i32 @puts(i8*)") {
		t.Fatalf("expected an external declaration of puts, got:\n%s", dump)
	}
	if !strings.Contains(dump, "call i32 @puts(") {
		t.Fatalf("expected main to call puts, got:\n%s", dump)
	}
	if !strings.Contains(dump, "ret i32 0") {
		t.Fatalf("expected main to return 0, got:\n%s", dump)
	}
}

func TestLowerUndefinedCallee(t *testing.T) {
	src := `fn main() -> i32 { nope(); return 0; }`
	mod, bag := pipeline(t, src)
	if bag.Len() != 1 || bag.Items()[0].Message != "undefined function: 'nope'" {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
	irgen.VerifyOrAbort(mod)
}

func TestLowerArityMismatch(t *testing.T) {
	src := `
extern { fn f(a: i32, b: i32) -> i32; }
fn main() -> i32 { f(1); return 0; }
`
	_, bag := pipeline(t, src)
	want := "wrong number of arguments. Expected 2, got 1."
	if bag.Len() != 1 || bag.Items()[0].Message != want {
		t.Fatalf("diagnostics = %v, want %q", bag.Items(), want)
	}
}

func TestLowerNoReturnExtern(t *testing.T) {
	src := `
extern { fn exit(code: i32) -> unreachable; }
fn main() -> unreachable { exit(1); }
`
	mod, bag := pipeline(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	irgen.VerifyOrAbort(mod)

	dump := mod.Dump()
	if !strings.Contains(dump, "declare void @exit(i32) noreturn") {
		t.Fatalf("expected exit to be declared noreturn, got:\n%s", dump)
	}
	if !strings.Contains(dump, "define void @main() noreturn") {
		t.Fatalf("expected main to be defined noreturn, got:\n%s", dump)
	}
	if !strings.Contains(dump, "call void @exit(i32 1)\n  unreachable") {
		t.Fatalf("expected an unreachable terminator right after the call to exit, got:\n%s", dump)
	}
}

func TestLowerStringInterning(t *testing.T) {
	src := `
extern { fn puts(s: *const u8) -> i32; }
fn main() -> i32 { puts("x"); puts("x"); return 0; }
`
	mod, _ := pipeline(t, src)
	count := strings.Count(mod.Dump(), "@.str.")
	// Two references to the same literal should produce exactly one global
	// (interned once) referenced twice: one definition plus two uses.
	if count != 3 {
		t.Fatalf("expected one interned string global referenced twice (3 occurrences of @.str.), got %d", count)
	}
}
