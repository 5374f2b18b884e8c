package sema

import (
	"zigcore/internal/ast"
	"zigcore/internal/types"
)

// resolveType resolves a syntactic type reference down to a canonical
// entity. It writes the resolved TypeID back onto the TypeRef node (the one
// piece of side data the Analyzer attaches to the AST) and also returns it,
// since most callers need it immediately.
func (a *Analyzer) resolveType(id ast.TypeRefID) types.TypeID {
	node := a.b.TypeRef(id)

	switch node.Kind {
	case ast.TypeRefPrimitive:
		resolved, ok := a.reg.LookupPrimitive(node.Name)
		if !ok {
			a.bag.Error(node.Pos, "invalid type name: '%s'", node.Name)
			resolved = a.reg.InvalidTypeID()
		}
		node.Resolved = resolved
		return resolved

	case ast.TypeRefPointer:
		child := a.resolveType(node.Child)
		if a.reg.Get(child).Kind == types.KindUnreachable {
			a.bag.Error(node.Pos, "pointer to unreachable not allowed")
			// resolution still proceeds: the node ends up pointing at a
			// well-formed (if odd) *const/*mut unreachable entity.
		}
		resolved := a.reg.InternPointer(child, node.IsConst)
		node.Resolved = resolved
		return resolved

	default:
		node.Resolved = a.reg.InvalidTypeID()
		return node.Resolved
	}
}
