package sema

import (
	"zigcore/internal/ast"
)

// visitFnDef registers a function definition and resolves its prototype
// (first writer wins; a collision is diagnosed as a redefinition and the
// second definition is neither registered nor resolved). The body's
// expressions are not visited here — the Lowerer walks them once every
// signature in the file is known; only checkTrailingStatements scans the
// body's statement kinds.
func (a *Analyzer) visitFnDef(item ast.Item) {
	assertItemKind(item.Kind, ast.ItemFnDef, "visitFnDef")
	def := item.Def
	if ok := a.defs.Insert(def.Proto.Name, def); !ok {
		a.bag.Error(def.Pos, "redefinition of '%s'", def.Proto.Name)
		return
	}
	a.resolveFnProto(def.Proto)
	a.checkTrailingStatements(def)
}

// checkTrailingStatements diagnoses a statement after a Return as a
// warning, at the first offending statement, so the Lowerer can simply
// skip it instead of emitting IR after a terminator (which the verifier
// would reject).
func (a *Analyzer) checkTrailingStatements(def ast.FnDef) {
	seenReturn := false
	for _, stmtID := range def.Body.Stmts {
		stmt := a.b.Stmt(stmtID)
		if seenReturn {
			a.bag.Warning(stmt.Pos, "unreachable statement after return")
			return
		}
		if stmt.Kind == ast.StmtReturn {
			seenReturn = true
		}
	}
}
