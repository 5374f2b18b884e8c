package compiler

import (
	"strings"
	"testing"
)

func TestPipelineHelloWorld(t *testing.T) {
	src := `
extern { fn puts(s: *const u8) -> i32; }
fn main() -> i32 { puts("hi"); return 0; }
`
	ctx := NewContext("hello.zc", false, 0)
	ctx.Parse(src)
	if ctx.Bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", ctx.Bag.Items())
	}

	ctx.RunSemanticAnalysis()
	if ctx.Bag.HasErrors() {
		t.Fatalf("unexpected analysis errors: %v", ctx.Bag.Items())
	}

	ctx.RunCodegen("0.0.0-test")
	if ctx.Bag.HasErrors() {
		t.Fatalf("unexpected lowering errors: %v", ctx.Bag.Items())
	}
	ctx.Verify()

	dump := ctx.Module.Dump()
	if !strings.Contains(dump, "define i32 @main()") {
		t.Fatalf("expected a definition of main, got:\n%s", dump)
	}
	if ctx.Timings.Duration(StageParse) < 0 || ctx.Timings.Duration(StageAnalyze) < 0 || ctx.Timings.Duration(StageLower) < 0 {
		t.Fatalf("expected non-negative stage timings")
	}
}

func TestHostTripleNonEmpty(t *testing.T) {
	if hostTriple() == "" {
		t.Fatalf("hostTriple() should never be empty")
	}
}
