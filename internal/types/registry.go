package types

import "zigcore/internal/irgen"

// Builtins holds the TypeIDs of the four primitives every Registry seeds at
// construction.
type Builtins struct {
	U8          TypeID
	I32         TypeID
	Void        TypeID
	Unreachable TypeID
}

// Registry owns every canonical type entity for one compilation. It never
// frees an entity and never mutates one after insertion except for the two
// pointer-interning slots on a non-pointer entity.
//
// Resolving an ast.TypeRef — the recursive walk from a syntactic type down
// to a canonical entity — is performed by internal/sema, which calls only
// the narrow operations below; keeping the walk out of this package avoids
// an import cycle (ast.TypeRef stores a types.TypeID back-pointer, so types
// cannot import ast).
type Registry struct {
	entities []Entity // 1-based; entities[0] is an unused placeholder
	byName   map[string]TypeID
	builtins Builtins
	debug    *irgen.DebugInfo
	pointerBits uint32
}

// NewRegistry seeds u8, i32, void, and unreachable. debug is the backend's
// debug-info builder, used to create each primitive's DIBasicType; pointerBits
// is the target's pointer width, used to size every interned pointer type's
// debug record.
func NewRegistry(debug *irgen.DebugInfo, pointerBits uint32) *Registry {
	r := &Registry{
		entities:    make([]Entity, 1, 8),
		byName:      make(map[string]TypeID, 8),
		debug:       debug,
		pointerBits: pointerBits,
	}
	r.builtins.U8 = r.insert(Entity{
		Kind: KindU8, DisplayName: "u8",
		IR: irgen.U8Type(), Debug: debug.CreateBasicType("u8", 8, false),
	})
	r.builtins.I32 = r.insert(Entity{
		Kind: KindI32, DisplayName: "i32",
		IR: irgen.I32Type(), Debug: debug.CreateBasicType("i32", 32, true),
	})
	voidID := r.insert(Entity{
		Kind: KindVoid, DisplayName: "void",
		IR: irgen.VoidType(), Debug: debug.CreateBasicType("void", 0, false),
	})
	r.builtins.Void = voidID
	// unreachable reuses void's debug-info handle; both are zero-sized at
	// the IR level, but only unreachable-returning functions get the
	// no-return attribute.
	r.builtins.Unreachable = r.insert(Entity{
		Kind: KindUnreachable, DisplayName: "unreachable",
		IR: irgen.VoidType(), Debug: r.entities[voidID].Debug,
	})
	return r
}

func (r *Registry) insert(e Entity) TypeID {
	id := TypeID(len(r.entities))
	r.entities = append(r.entities, e)
	r.byName[e.DisplayName] = id
	return id
}

// Builtins returns the TypeIDs of the seeded primitives.
func (r *Registry) Builtins() Builtins { return r.builtins }

// InvalidTypeID returns the invalid-type sentinel — literally the void
// entity, reused rather than given a separate entry since both are
// zero-sized and carry no value.
func (r *Registry) InvalidTypeID() TypeID { return r.builtins.Void }

// Get returns the entity for id. It panics on an out-of-range id; every
// TypeID a caller holds should have come from this Registry.
func (r *Registry) Get(id TypeID) *Entity {
	return &r.entities[id]
}

// LookupPrimitive returns the TypeID registered under name, if any. At most
// one entity ever exists per primitive name, maintained simply by never
// inserting a second entity under the same display name.
func (r *Registry) LookupPrimitive(name string) (TypeID, bool) {
	id, ok := r.byName[name]
	return id, ok
}

// InternPointer returns the unique pointer entity over (child, isConst),
// creating it on first request and reusing it on every subsequent one. The
// diagnostic for "pointer to unreachable" is the caller's responsibility
// (resolution still proceeds so the returned entity is always well-formed);
// this method only performs the interning.
func (r *Registry) InternPointer(child TypeID, isConst bool) TypeID {
	childEntity := r.Get(child)
	slot := &childEntity.mutPtr
	constOrMut := "mut"
	if isConst {
		slot = &childEntity.constPtr
		constOrMut = "const"
	}
	if slot.IsValid() {
		return *slot
	}

	name := "*" + constOrMut + " " + childEntity.DisplayName
	debugType := r.debug.CreatePointerType(childEntity.Debug, name)
	id := r.insert(Entity{
		Kind:        KindPointer,
		DisplayName: name,
		IR:          irgen.PointerType(childEntity.IR),
		Debug:       debugType,
		Child:       child,
		IsConst:     isConst,
	})
	// childEntity was a pointer into r.entities taken before insert, which
	// may have reallocated the backing array; re-fetch before writing the
	// interning slot.
	childEntity = r.Get(child)
	if isConst {
		childEntity.constPtr = id
	} else {
		childEntity.mutPtr = id
	}
	return id
}

// IsValid reports whether id refers to a live, non-zero entity.
func (id TypeID) IsValid() bool { return id != NoTypeID }
