package compiler

import (
	"os"
	"runtime"
	"time"

	"zigcore/internal/diag"
	"zigcore/internal/irgen"
	"zigcore/internal/lower"
	"zigcore/internal/parser"
	"zigcore/internal/sema"
	"zigcore/internal/symbols"
	"zigcore/internal/types"
)

const targetPointerBits = 64

// Parse reads src and builds ctx.Builder, reporting lexical and syntax
// errors into ctx.Bag. It must run before RunSemanticAnalysis because the
// Analyzer needs a populated AST to walk.
func (ctx *Context) Parse(src string) {
	start := time.Now()
	ctx.Builder = parser.ParseFile(ctx.InputPath, src, ctx.Bag)
	ctx.Timings.Set(StageParse, time.Since(start))
}

// RunSemanticAnalysis creates the IR module named "ZigModule", records the
// host target triple, caches the pointer size, seeds primitive types, and
// runs the Analyzer. This backend emits portable textual IR and records
// runtime.GOARCH/GOOS as the "host" descriptor — there is no LLVM target
// library here to ask.
func (ctx *Context) RunSemanticAnalysis() {
	start := time.Now()

	ctx.Module = irgen.NewModule("ZigModule", targetPointerBits)
	ctx.Module.TargetTriple = hostTriple()
	exitIfMissingTarget(ctx.Module.TargetTriple)
	ctx.Types = types.NewRegistry(ctx.Module.Debug, targetPointerBits)
	ctx.Defs = symbols.NewDefs()
	ctx.FnTable = symbols.NewFnTable()
	ctx.Pool = symbols.NewStringPool(ctx.Module)

	a := sema.New(ctx.Builder, ctx.Types, ctx.Defs, ctx.FnTable, ctx.Module, ctx.Bag)
	a.Run()

	ctx.Timings.Set(StageAnalyze, time.Since(start))
}

// hostTriple returns an LLVM-style target triple derived from the running
// Go toolchain's arch/OS — a stand-in for the original's
// LLVMGetDefaultTargetTriple(), since this backend has no libLLVM to ask.
func hostTriple() string {
	arch := runtime.GOARCH
	switch arch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch64"
	}
	vendor := "unknown"
	sys := runtime.GOOS
	switch sys {
	case "linux":
		return arch + "-" + vendor + "-linux-gnu"
	case "darwin":
		return arch + "-apple-macosx"
	default:
		return arch + "-" + vendor + "-" + sys
	}
}

// RunCodegen creates the compile unit with DWARF language tag C99 and the
// producer string "zig <version>", then runs the Lowerer.
func (ctx *Context) RunCodegen(producerVersion string) {
	start := time.Now()

	ctx.Module.Debug.CreateCompileUnit(ctx.File, ctx.Dir, "zig "+producerVersion)
	l := lower.New(ctx.Builder, ctx.Types, ctx.Defs, ctx.FnTable, ctx.Pool, ctx.Module, ctx.Bag)
	l.Run()

	ctx.Timings.Set(StageLower, time.Since(start))
}

// Verify runs the backend's module verifier. A failure means the compiler
// itself produced a malformed module, so it aborts the process rather than
// returning a diagnosable error.
func (ctx *Context) Verify() {
	start := time.Now()
	irgen.VerifyOrAbort(ctx.Module)
	ctx.Timings.Set(StageVerify, time.Since(start))
}

// Diagnostics returns every diagnostic recorded so far, in insertion order.
func (ctx *Context) Diagnostics() []diag.Diagnostic {
	return ctx.Bag.Items()
}

// exitIfMissingTarget treats an unrecognized target triple as fatal; this
// backend never fails to produce one (hostTriple always returns
// something), so this exists only to guard against a future
// cross-compilation target going unrecognized.
func exitIfMissingTarget(triple string) {
	if triple == "" {
		os.Exit(2)
	}
}
