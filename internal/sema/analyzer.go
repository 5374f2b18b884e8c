// Package sema implements the Analyzer: a single top-down traversal of a
// parsed file that resolves every type reference, binds extern
// declarations and local definitions into the symbol tables, and records
// diagnostics. It does not lower or type-check a function body's statements
// — that is the Lowerer's job, once every function's signature is known; the
// one pass it makes over a body only looks for statements after a Return.
package sema

import (
	"fmt"

	"zigcore/internal/ast"
	"zigcore/internal/diag"
	"zigcore/internal/irgen"
	"zigcore/internal/symbols"
	"zigcore/internal/types"
)

// Analyzer runs a single recursive pass over a file's top-level items.
type Analyzer struct {
	b       *ast.Builder
	reg     *types.Registry
	defs    *symbols.Defs
	fnTable *symbols.FnTable
	mod     *irgen.Module
	bag     *diag.Bag
}

// New returns an Analyzer ready to walk b's File.
func New(b *ast.Builder, reg *types.Registry, defs *symbols.Defs, fnTable *symbols.FnTable, mod *irgen.Module, bag *diag.Bag) *Analyzer {
	return &Analyzer{b: b, reg: reg, defs: defs, fnTable: fnTable, mod: mod, bag: bag}
}

// Run visits every Item in the File in order.
func (a *Analyzer) Run() {
	for _, item := range a.b.File.Items {
		switch item.Kind {
		case ast.ItemExternBlock:
			a.visitExternBlock(item)
		case ast.ItemFnDef:
			a.visitFnDef(item)
		default:
			panic(fmt.Sprintf("sema: unhandled item kind %v", item.Kind))
		}
	}
}
