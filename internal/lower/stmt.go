package lower

import (
	"zigcore/internal/ast"
	"zigcore/internal/irgen"
)

// lowerBlock lowers def's statements in order. A statement after one the
// Analyzer already flagged as following a Return is skipped rather than
// lowered: once this loop emits a return, it stops, instead of emitting IR
// into a block that already has a terminator.
func (l *Lowerer) lowerBlock(b *irgen.Builder, body ast.Block, retType irgen.Type) {
	for _, stmtID := range body.Stmts {
		stmt := l.b.Stmt(stmtID)
		switch stmt.Kind {
		case ast.StmtReturn:
			v := l.lowerExpr(b, stmt.Expr)
			if retType.IsVoid() {
				b.RetVoid()
			} else {
				b.Ret(v)
			}
			return
		case ast.StmtExpr:
			l.lowerExpr(b, stmt.Expr)
		}
	}
}
