// Package irgen is the concrete IR backend the Analyzer/Lowerer target: it
// creates modules, functions, basic blocks, integer/pointer/function types,
// call/return/unreachable instructions, and emits a textual LLVM IR module
// to an object file. The rest of the compiler talks to it only through the
// operations on this page — nothing upstream depends on the textual
// representation chosen here.
package irgen

// Type is an IR type handle. It is a thin wrapper over LLVM's textual type
// syntax so the core never has to special-case "which backend": every
// concern (module, function, block, constant) below works purely in terms
// of Type and Value.
type Type struct {
	text string
	void bool
}

// VoidType returns the IR handle for LLVM's void type.
func VoidType() Type { return Type{text: "void", void: true} }

// I32Type returns the IR handle for a 32-bit signed integer.
func I32Type() Type { return Type{text: "i32"} }

// U8Type returns the IR handle for an 8-bit unsigned integer. LLVM has no
// native unsigned/signed distinction at the type level; signedness only
// affects which instructions operate on a value.
func U8Type() Type { return Type{text: "i8"} }

// PointerType returns the IR handle for a pointer to elem.
func PointerType(elem Type) Type { return Type{text: elem.text + "*"} }

// String returns the LLVM textual spelling of the type, e.g. "i32" or "i8*".
func (t Type) String() string { return t.text }

// IsVoid reports whether t is the void type.
func (t Type) IsVoid() bool { return t.void }

// FuncType describes a function's signature for declaration/definition.
type FuncType struct {
	Params []Type
	Ret    Type
}

func (ft FuncType) String() string {
	s := ft.Ret.String() + " ("
	for i, p := range ft.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	return s + ")"
}

func (t Type) equal(other Type) bool { return t.text == other.text }

func typeListEqual(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].equal(b[i]) {
			return false
		}
	}
	return true
}
