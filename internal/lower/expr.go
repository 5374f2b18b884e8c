package lower

import (
	"strconv"

	"fortio.org/safecast"

	"zigcore/internal/ast"
	"zigcore/internal/irgen"
)

// lowerExpr lowers a single expression node to an IR value.
func (l *Lowerer) lowerExpr(b *irgen.Builder, id ast.ExprID) irgen.Value {
	expr := l.b.Expr(id)
	switch expr.Kind {
	case ast.ExprNumber:
		return l.lowerNumber(expr)
	case ast.ExprString:
		g := l.pool.Intern([]byte(expr.Bytes))
		return b.StringPointer(g, irgen.U8Type())
	case ast.ExprFnCall:
		return l.lowerFnCall(b, expr)
	case ast.ExprUnreachable:
		b.Unreachable()
		return irgen.Value{}
	default:
		return irgen.Value{}
	}
}

// lowerNumber parses a decimal literal as an i32 constant. The literal is
// first widened to a uint64 (the grammar only allows unsigned digit runs),
// then narrowed to int32 with an overflow-checked conversion; overflow is
// diagnosed as a warning rather than truncated without comment, and
// lowering still proceeds with the truncated value so one bad literal does
// not stop the rest of the module.
func (l *Lowerer) lowerNumber(expr *ast.Expr) irgen.Value {
	wide, err := strconv.ParseUint(expr.Text, 10, 64)
	if err != nil {
		l.bag.Warning(expr.Pos, "integer literal truncated to i32: '%s'", expr.Text)
		return irgen.ConstI32(int32(wide))
	}
	narrow, err := safecast.Conv[int32](wide)
	if err != nil {
		l.bag.Warning(expr.Pos, "integer literal truncated to i32: '%s'", expr.Text)
		return irgen.ConstI32(int32(wide))
	}
	return irgen.ConstI32(narrow)
}

// lowerFnCall implements the FnCall lowering rules: undefined-callee and
// arity-mismatch are diagnosed and lowering continues with a placeholder
// null result; an unreachable-returning callee gets an unreachable
// terminator immediately after the call.
func (l *Lowerer) lowerFnCall(b *irgen.Builder, expr *ast.Expr) irgen.Value {
	entry, ok := l.fnTable.Lookup(expr.Callee)
	if !ok {
		l.bag.Error(expr.Pos, "undefined function: '%s'", expr.Callee)
		return irgen.ConstNullI32()
	}
	fn := entry.IRHandle.(*irgen.Func)

	if len(expr.Args) != len(fn.Sig.Params) {
		l.bag.Error(expr.Pos, "wrong number of arguments. Expected %d, got %d.", len(fn.Sig.Params), len(expr.Args))
		return irgen.ConstNullI32()
	}

	args := make([]irgen.Value, len(expr.Args))
	for i, argID := range expr.Args {
		args[i] = l.lowerExpr(b, argID)
	}

	result := b.Call(fn, args)
	if fn.NoReturn {
		b.Unreachable()
	}
	return result
}
