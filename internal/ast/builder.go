package ast

import "zigcore/internal/token"

// Builder accumulates the arenas the parser allocates recursive nodes into,
// and the in-progress File. One Builder serves one source file.
type Builder struct {
	Types *Arena[TypeRef]
	Exprs *Arena[Expr]
	Stmts *Arena[Stmt]
	File  File
}

// NewBuilder returns an empty Builder for path.
func NewBuilder(path string) *Builder {
	return &Builder{
		Types: NewArena[TypeRef](16),
		Exprs: NewArena[Expr](32),
		Stmts: NewArena[Stmt](32),
		File:  File{Path: path},
	}
}

// NewPrimitiveType allocates a primitive TypeRef node.
func (b *Builder) NewPrimitiveType(pos token.Pos, name string) TypeRefID {
	return TypeRefID(b.Types.Alloc(TypeRef{Kind: TypeRefPrimitive, Pos: pos, Name: name}))
}

// NewPointerType allocates a pointer TypeRef node wrapping child.
func (b *Builder) NewPointerType(pos token.Pos, child TypeRefID, isConst bool) TypeRefID {
	return TypeRefID(b.Types.Alloc(TypeRef{Kind: TypeRefPointer, Pos: pos, Child: child, IsConst: isConst}))
}

// TypeRef returns the node at id.
func (b *Builder) TypeRef(id TypeRefID) *TypeRef {
	return b.Types.Get(uint32(id))
}

// NewNumberExpr allocates a Number expression node.
func (b *Builder) NewNumberExpr(pos token.Pos, text string) ExprID {
	return ExprID(b.Exprs.Alloc(Expr{Kind: ExprNumber, Pos: pos, Text: text}))
}

// NewStringExpr allocates a String expression node.
func (b *Builder) NewStringExpr(pos token.Pos, bytes string) ExprID {
	return ExprID(b.Exprs.Alloc(Expr{Kind: ExprString, Pos: pos, Bytes: bytes}))
}

// NewFnCallExpr allocates a FnCall expression node.
func (b *Builder) NewFnCallExpr(pos token.Pos, callee string, args []ExprID) ExprID {
	return ExprID(b.Exprs.Alloc(Expr{Kind: ExprFnCall, Pos: pos, Callee: callee, Args: args}))
}

// NewUnreachableExpr allocates an Unreachable expression node.
func (b *Builder) NewUnreachableExpr(pos token.Pos) ExprID {
	return ExprID(b.Exprs.Alloc(Expr{Kind: ExprUnreachable, Pos: pos}))
}

// Expr returns the node at id.
func (b *Builder) Expr(id ExprID) *Expr {
	return b.Exprs.Get(uint32(id))
}

// NewReturnStmt allocates a Return statement node.
func (b *Builder) NewReturnStmt(pos token.Pos, expr ExprID) StmtID {
	return StmtID(b.Stmts.Alloc(Stmt{Kind: StmtReturn, Pos: pos, Expr: expr}))
}

// NewExprStmt allocates an ExpressionStatement node.
func (b *Builder) NewExprStmt(pos token.Pos, expr ExprID) StmtID {
	return StmtID(b.Stmts.Alloc(Stmt{Kind: StmtExpr, Pos: pos, Expr: expr}))
}

// Stmt returns the node at id.
func (b *Builder) Stmt(id StmtID) *Stmt {
	return b.Stmts.Get(uint32(id))
}

// AddItem appends a top-level declaration to the File.
func (b *Builder) AddItem(item Item) {
	b.File.Items = append(b.File.Items, item)
}
