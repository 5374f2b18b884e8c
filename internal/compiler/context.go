// Package compiler owns the Compilation Context: the per-file state that
// threads through parsing, analysis, lowering, and linking. One Context
// serves exactly one compilation and is never reused.
package compiler

import (
	"path/filepath"

	"zigcore/internal/ast"
	"zigcore/internal/diag"
	"zigcore/internal/irgen"
	"zigcore/internal/symbols"
	"zigcore/internal/types"
)

// Context is the explicit value every stage operates on — never a process
// global, so that nothing about one compilation leaks into another.
type Context struct {
	InputPath string
	Dir       string
	File      string
	IsStatic  bool

	Bag     *diag.Bag
	Builder *ast.Builder

	Module  *irgen.Module
	Types   *types.Registry
	Defs    *symbols.Defs
	FnTable *symbols.FnTable
	Pool    *symbols.StringPool

	Timings Timings
}

// NewContext splits inputPath into directory and file components and
// installs an empty Context. It does not populate type tables — that
// happens in RunSemanticAnalysis, once the module exists to populate them
// into.
func NewContext(inputPath string, isStatic bool, maxDiagnostics int) *Context {
	return &Context{
		InputPath: inputPath,
		Dir:       filepath.Dir(inputPath),
		File:      filepath.Base(inputPath),
		IsStatic:  isStatic,
		Bag:       diag.NewBag(maxDiagnostics),
	}
}
