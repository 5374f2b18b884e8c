// Package lower implements the Lowerer: once the Analyzer has resolved
// every type and populated the symbol tables, it walks fn_defs and drives
// the IR backend to emit instructions, global strings, and debug metadata
// for every function body.
package lower

import (
	"zigcore/internal/ast"
	"zigcore/internal/diag"
	"zigcore/internal/irgen"
	"zigcore/internal/symbols"
	"zigcore/internal/types"
)

// Lowerer holds everything a function body needs to become IR.
type Lowerer struct {
	b       *ast.Builder
	reg     *types.Registry
	defs    *symbols.Defs
	fnTable *symbols.FnTable
	pool    *symbols.StringPool
	mod     *irgen.Module
	bag     *diag.Bag
}

// New returns a Lowerer over an already-analyzed file.
func New(b *ast.Builder, reg *types.Registry, defs *symbols.Defs, fnTable *symbols.FnTable, pool *symbols.StringPool, mod *irgen.Module, bag *diag.Bag) *Lowerer {
	return &Lowerer{b: b, reg: reg, defs: defs, fnTable: fnTable, pool: pool, mod: mod, bag: bag}
}

// Run walks fn_defs and lowers each one. Iteration order is the order
// names were first defined — unspecified but stable for a given run;
// correctness must not (and does not) depend on which function lowers
// first, since every extern/defined signature was already resolved by the
// Analyzer.
func (l *Lowerer) Run() {
	for _, name := range l.defs.Names() {
		def, _ := l.defs.Get(name)
		l.lowerFnDef(def)
	}
}
