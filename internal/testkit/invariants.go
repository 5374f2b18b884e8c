// Package testkit holds small structural-invariant checks shared by test
// files across packages, so each package's tests don't redefine them.
package testkit

import (
	"fmt"

	"zigcore/internal/ast"
)

// CheckArenaInvariants walks every TypeRefID, ExprID, and StmtID reachable
// from b.File and verifies each resolves to a live arena slot: a pointer
// TypeRef's Child, a call expression's Args, a Return/Expr statement's
// Expr, and every parameter's Type and prototype's ReturnType. A parser bug
// that allocates an ID in the wrong arena, or forgets to allocate one at
// all, surfaces here as a nil Get() rather than downstream in sema or lower.
func CheckArenaInvariants(b *ast.Builder) error {
	for _, item := range b.File.Items {
		switch item.Kind {
		case ast.ItemExternBlock:
			for _, decl := range item.Extern {
				if err := checkFnProto(b, decl.Proto); err != nil {
					return fmt.Errorf("extern decl %q: %w", decl.Proto.Name, err)
				}
			}
		case ast.ItemFnDef:
			if err := checkFnProto(b, item.Def.Proto); err != nil {
				return fmt.Errorf("fn %q: %w", item.Def.Proto.Name, err)
			}
			for _, id := range item.Def.Body.Stmts {
				if err := checkStmt(b, id); err != nil {
					return fmt.Errorf("fn %q: %w", item.Def.Proto.Name, err)
				}
			}
		default:
			return fmt.Errorf("item has invalid kind %v", item.Kind)
		}
	}
	return nil
}

func checkFnProto(b *ast.Builder, proto ast.FnProto) error {
	for _, param := range proto.Params {
		if err := checkTypeRef(b, param.Type); err != nil {
			return fmt.Errorf("param %q: %w", param.Name, err)
		}
	}
	return checkTypeRef(b, proto.ReturnType)
}

func checkTypeRef(b *ast.Builder, id ast.TypeRefID) error {
	if !id.IsValid() {
		return fmt.Errorf("type ref id %d is not valid", id)
	}
	node := b.TypeRef(id)
	if node == nil {
		return fmt.Errorf("type ref id %d has no arena entry", id)
	}
	if node.Kind == ast.TypeRefPointer {
		return checkTypeRef(b, node.Child)
	}
	return nil
}

func checkStmt(b *ast.Builder, id ast.StmtID) error {
	if !id.IsValid() {
		return fmt.Errorf("stmt id %d is not valid", id)
	}
	node := b.Stmt(id)
	if node == nil {
		return fmt.Errorf("stmt id %d has no arena entry", id)
	}
	if !node.Expr.IsValid() {
		return nil // a bare `return;` has no expression
	}
	return checkExpr(b, node.Expr)
}

func checkExpr(b *ast.Builder, id ast.ExprID) error {
	node := b.Expr(id)
	if node == nil {
		return fmt.Errorf("expr id %d has no arena entry", id)
	}
	for _, argID := range node.Args {
		if err := checkExpr(b, argID); err != nil {
			return fmt.Errorf("call %q: %w", node.Callee, err)
		}
	}
	return nil
}
