package types

import "zigcore/internal/irgen"

// TypeID identifies a canonical type entity inside a Registry. The zero
// value, NoTypeID, never denotes a live entity — Registry indices start at
// 1, the same scheme internal/ast's arenas use and for the same reason: an
// index is not an owning pointer, so pointer/child references between type
// entities never form a reference cycle.
type TypeID uint32

const NoTypeID TypeID = 0

// Entity is the canonical representation of one type. Fields beyond Kind
// and DisplayName are meaningful only for the kind that uses them: Child
// and IsConst for KindPointer; constPtr/mutPtr (the two pointer-interning
// slots) for every non-pointer kind.
type Entity struct {
	Kind        Kind
	DisplayName string
	IR          irgen.Type
	Debug       irgen.DebugType

	Child   TypeID // KindPointer only
	IsConst bool   // KindPointer only

	constPtr TypeID // lazily populated *const parent, non-pointer kinds only
	mutPtr   TypeID // lazily populated *mut parent, non-pointer kinds only
}
