package ast

import (
	"zigcore/internal/token"
	"zigcore/internal/types"
)

// TypeRefKind distinguishes the two shapes a TypeRef can take.
type TypeRefKind uint8

const (
	TypeRefInvalid TypeRefKind = iota
	TypeRefPrimitive
	TypeRefPointer
)

// TypeRef is either a named primitive (by identifier text) or a pointer
// wrapping a child TypeRef, with a constness flag. Resolved is the one piece
// of side data the Analyzer attaches: a back-pointer to the canonical type
// entity this reference resolves to (possibly the invalid-type sentinel).
// It is written at most once, by Resolve, never mutated afterward.
type TypeRef struct {
	Kind     TypeRefKind
	Pos      token.Pos
	Name     string    // set when Kind == TypeRefPrimitive
	Child    TypeRefID // set when Kind == TypeRefPointer
	IsConst  bool      // set when Kind == TypeRefPointer
	Resolved types.TypeID
}
