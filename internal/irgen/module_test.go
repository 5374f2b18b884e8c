package irgen

import (
	"strings"
	"testing"
)

func TestVerifyDetectsUnterminatedBlock(t *testing.T) {
	mod := NewModule("ZigModule", 64)
	fn := mod.DefineFunction("main", FuncType{Ret: I32Type()}, false)
	fn.AppendBlock("entry")

	problems := Verify(mod)
	if len(problems) != 1 || !strings.Contains(problems[0], "no terminator") {
		t.Fatalf("expected one unterminated-block violation, got %v", problems)
	}
}

func TestVerifyCleanOnTerminatedBlock(t *testing.T) {
	mod := NewModule("ZigModule", 64)
	fn := mod.DefineFunction("main", FuncType{Ret: I32Type()}, false)
	block := fn.AppendBlock("entry")
	b := NewBuilder(fn, block)
	b.Ret(ConstI32(0))

	if problems := Verify(mod); len(problems) != 0 {
		t.Fatalf("expected a clean module, got %v", problems)
	}
}

func TestInternStringReusesIdenticalBytes(t *testing.T) {
	mod := NewModule("ZigModule", 64)
	a := mod.InternString([]byte("hi"))
	b := mod.InternString([]byte("hi"))
	c := mod.InternString([]byte("bye"))

	if a.Name != b.Name {
		t.Fatalf("identical byte sequences should share one global: %q vs %q", a.Name, b.Name)
	}
	if a.Name == c.Name {
		t.Fatalf("distinct byte sequences must not share a global")
	}
}

func TestDeclareFunctionIsIdempotent(t *testing.T) {
	mod := NewModule("ZigModule", 64)
	sig := FuncType{Params: []Type{PointerType(U8Type())}, Ret: I32Type()}
	first := mod.DeclareFunction("puts", sig, false)
	second := mod.DeclareFunction("puts", FuncType{Ret: VoidType()}, true)

	if first != second {
		t.Fatal("redeclaring an extern must return the original handle")
	}
	if second.NoReturn {
		t.Fatal("redeclaration must not mutate the first entry's attributes")
	}
}

func TestDumpIncludesDeclAndDef(t *testing.T) {
	mod := NewModule("ZigModule", 64)
	mod.DeclareFunction("puts", FuncType{Params: []Type{PointerType(U8Type())}, Ret: I32Type()}, false)
	fn := mod.DefineFunction("main", FuncType{Ret: I32Type()}, false)
	block := fn.AppendBlock("entry")
	NewBuilder(fn, block).Ret(ConstI32(0))

	dump := mod.Dump()
	if !strings.Contains(dump, "declare i32 @puts(i8*)") {
		t.Fatalf("missing extern declaration in dump:\n%s", dump)
	}
	if !strings.Contains(dump, "define i32 @main()") {
		t.Fatalf("missing function definition in dump:\n%s", dump)
	}
}
