package sema

import (
	"testing"

	"zigcore/internal/diag"
	"zigcore/internal/irgen"
	"zigcore/internal/parser"
	"zigcore/internal/symbols"
	"zigcore/internal/types"
)

func analyze(t *testing.T, src string) (*diag.Bag, *Analyzer) {
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

	a := New(b, reg, defs, fnTable, mod, bag)
	a.Run()
	return bag, a
}

func TestAnalyzeRedefinition(t *testing.T) {
	src := `
fn g() -> void { return 0; }
fn g() -> void { return 0; }
`
	bag, a := analyze(t, src)
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %v, want exactly 1", bag.Items())
	}
	if bag.Items()[0].Message != "redefinition of 'g'" {
		t.Fatalf("message = %q", bag.Items()[0].Message)
	}
	if a.defs.Len() != 1 {
		t.Fatalf("fn_defs should keep only the first definition")
	}
}

func TestAnalyzeInvalidTypeName(t *testing.T) {
	src := `fn main() -> bogus { return 0; }`
	bag, _ := analyze(t, src)
	if bag.Len() != 1 || bag.Items()[0].Message != "invalid type name: 'bogus'" {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
}

func TestAnalyzeExternRedeclaration(t *testing.T) {
	src := `
extern { fn f(a: i32) -> i32; }
extern { fn f(a: i32, b: i32) -> i32; }
fn main() -> i32 { return 0; }
`
	bag, a := analyze(t, src)
	if bag.Len() != 1 || bag.Items()[0].Message != "redefinition of extern 'f'" {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
	entry, ok := a.fnTable.Lookup("f")
	if !ok || len(entry.ProtoNode.Params) != 1 {
		t.Fatalf("fn_table should keep the first extern entry, got %+v", entry)
	}
}

func TestAnalyzePointerInterning(t *testing.T) {
	src := `extern { fn f(a: *const u8, b: *const u8, c: *mut u8) -> void; }`
	bag, a := analyze(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	entry, _ := a.fnTable.Lookup("f")
	paramTypes := entry.ProtoNode.Params
	aType := a.b.TypeRef(paramTypes[0].Type).Resolved
	bType := a.b.TypeRef(paramTypes[1].Type).Resolved
	cType := a.b.TypeRef(paramTypes[2].Type).Resolved
	if aType != bType {
		t.Fatalf("two identical *const u8 refs should share identity: %v != %v", aType, bType)
	}
	if aType == cType {
		t.Fatalf("*const u8 and *mut u8 must be distinct entities")
	}
}

func TestAnalyzeTrailingStatementWarning(t *testing.T) {
	src := `fn main() -> i32 { return 0; puts_unreachable_marker(); }`
	bag, _ := analyze(t, src)
	found := false
	for _, d := range bag.Items() {
		if d.Severity == diag.SevWarning && d.Message == "unreachable statement after return" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a trailing-statement warning, got %v", bag.Items())
	}
}
