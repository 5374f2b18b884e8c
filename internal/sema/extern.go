package sema

import (
	"zigcore/internal/ast"
	"zigcore/internal/irgen"
	"zigcore/internal/symbols"
	"zigcore/internal/types"
)

// visitExternBlock walks an ExternBlock's declarations in order: resolve
// each prototype, declare the IR function, and register a fn_table entry.
func (a *Analyzer) visitExternBlock(item ast.Item) {
	assertItemKind(item.Kind, ast.ItemExternBlock, "visitExternBlock")
	for _, decl := range item.Extern {
		a.visitFnDecl(decl)
	}
}

func (a *Analyzer) visitFnDecl(decl ast.FnDecl) {
	sig, retID := a.resolveFnProto(decl.Proto)
	noReturn := a.reg.Get(retID).Kind == types.KindUnreachable

	fn := a.mod.DeclareFunction(decl.Proto.Name, sig, noReturn)
	entry := symbols.FnEntry{IRHandle: fn, ProtoNode: decl.Proto}

	// A redeclared extern is diagnosed; the first entry is kept rather
	// than silently overwritten.
	if existed := a.fnTable.Declare(decl.Proto.Name, entry); existed {
		a.bag.Error(decl.Pos, "redefinition of extern '%s'", decl.Proto.Name)
	}
}

// resolveFnProto resolves every parameter type and the return type of
// proto, returning the IR function signature built from the resolved
// handles plus the resolved return TypeID (callers need it to decide
// no-return status).
func (a *Analyzer) resolveFnProto(proto ast.FnProto) (irgen.FuncType, types.TypeID) {
	params := make([]irgen.Type, len(proto.Params))
	for i, param := range proto.Params {
		id := a.resolveType(param.Type)
		params[i] = a.reg.Get(id).IR
	}
	retID := a.resolveType(proto.ReturnType)
	ret := a.reg.Get(retID).IR
	return irgen.FuncType{Params: params, Ret: ret}, retID
}
