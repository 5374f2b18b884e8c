package lower

import (
	"zigcore/internal/ast"
	"zigcore/internal/irgen"
	"zigcore/internal/types"
)

// lowerFnDef lowers one function definition: resolve its IR signature,
// define the function, attach debug info, and lower its body.
func (l *Lowerer) lowerFnDef(def ast.FnDef) {
	sig, retID := l.irSignature(def.Proto)
	noReturn := l.reg.Get(retID).Kind == types.KindUnreachable

	// The Lowerer does not reuse the extern path's IR type: DefineFunction
	// always allocates a fresh Func entry, even if an extern of the same
	// name happened to exist (name collisions between extern and local
	// definitions are not modeled by this grammar).
	fn := l.mod.DefineFunction(def.Proto.Name, sig, noReturn)

	l.attachDebugInfo(fn, def, retID)

	block := fn.AppendBlock("entry")
	b := irgen.NewBuilder(fn, block)
	l.lowerBlock(b, def.Body, sig.Ret)
}

// irSignature resolves def's parameter and return types into the IR
// function signature, returning the resolved return TypeID alongside it.
func (l *Lowerer) irSignature(proto ast.FnProto) (irgen.FuncType, types.TypeID) {
	params := make([]irgen.Type, len(proto.Params))
	for i, p := range proto.Params {
		id := l.b.TypeRef(p.Type).Resolved
		params[i] = l.reg.Get(id).IR
	}
	retID := l.b.TypeRef(proto.ReturnType).Resolved
	return irgen.FuncType{Params: params, Ret: l.reg.Get(retID).IR}, retID
}

// attachDebugInfo creates the subroutine type and function record for fn:
// the subroutine type's first element is the return type's debug handle,
// followed by parameter handles in order; both declaration and scope line
// are the AST line unchanged — this parser already emits 1-based lines, so
// no adjustment is needed before handing them to the debug-info builder.
func (l *Lowerer) attachDebugInfo(fn *irgen.Func, def ast.FnDef, retID types.TypeID) {
	paramDebug := make([]irgen.DebugType, len(def.Proto.Params))
	for i, p := range def.Proto.Params {
		id := l.b.TypeRef(p.Type).Resolved
		paramDebug[i] = l.reg.Get(id).Debug
	}
	subroutine := l.mod.Debug.CreateSubroutineType(l.reg.Get(retID).Debug, paramDebug)
	fn.Debug = l.mod.Debug.CreateFunction(def.Proto.Name, def.Pos.Line, subroutine)
}
