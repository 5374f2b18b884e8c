package types

import (
	"testing"

	"zigcore/internal/irgen"
)

func newTestRegistry() *Registry {
	mod := irgen.NewModule("test", 64)
	return NewRegistry(mod.Debug, 64)
}

func TestNewRegistrySeedsFourPrimitives(t *testing.T) {
	r := newTestRegistry()
	b := r.Builtins()

	for name, id := range map[string]TypeID{"u8": b.U8, "i32": b.I32, "void": b.Void, "unreachable": b.Unreachable} {
		if !id.IsValid() {
			t.Fatalf("%s: expected a valid TypeID", name)
		}
		got, ok := r.LookupPrimitive(name)
		if !ok || got != id {
			t.Fatalf("LookupPrimitive(%q) = %v, %v; want %v, true", name, got, ok, id)
		}
	}
}

func TestInvalidTypeIDIsVoid(t *testing.T) {
	r := newTestRegistry()
	if r.InvalidTypeID() != r.Builtins().Void {
		t.Fatalf("InvalidTypeID() = %v, want void (%v)", r.InvalidTypeID(), r.Builtins().Void)
	}
}

func TestInternPointerReusesSameChildAndConstness(t *testing.T) {
	r := newTestRegistry()
	u8 := r.Builtins().U8

	a := r.InternPointer(u8, true)
	b := r.InternPointer(u8, true)
	if a != b {
		t.Fatalf("InternPointer(u8, const) not interned: %v != %v", a, b)
	}

	mut := r.InternPointer(u8, false)
	if mut == a {
		t.Fatal("const and mut pointers over the same child must be distinct entities")
	}
}

func TestInternPointerDistinguishesChild(t *testing.T) {
	r := newTestRegistry()
	b := r.Builtins()

	p1 := r.InternPointer(b.U8, true)
	p2 := r.InternPointer(b.I32, true)
	if p1 == p2 {
		t.Fatal("pointers over different children must be distinct entities")
	}
}

func TestGetReturnsEntityByKind(t *testing.T) {
	r := newTestRegistry()
	e := r.Get(r.Builtins().I32)
	if e.Kind != KindI32 || e.DisplayName != "i32" {
		t.Fatalf("Get(i32) = %+v, want Kind=KindI32 DisplayName=i32", e)
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindU8: "u8", KindI32: "i32", KindVoid: "void",
		KindUnreachable: "unreachable", KindPointer: "pointer",
		KindUserDefined: "user-defined", KindInvalid: "invalid",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
