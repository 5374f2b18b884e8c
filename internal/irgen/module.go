package irgen

import "fmt"

// Linkage mirrors the handful of LLVM linkages the core ever requests.
type Linkage uint8

const (
	ExternalLinkage Linkage = iota
	PrivateLinkage
)

func (l Linkage) String() string {
	if l == PrivateLinkage {
		return "private"
	}
	return ""
}

// Func is one function declaration or definition.
type Func struct {
	Name     string
	Sig      FuncType
	Linkage  Linkage
	NoReturn bool
	NoUnwind bool
	Defined  bool
	Blocks   []*Block
	Debug    *FuncDebugInfo
}

// Block is one basic block of a Func body.
type Block struct {
	Name        string
	Instrs      []string
	terminated  bool
}

// GlobalString is a private, constant, unnamed-address global holding a
// string literal's raw bytes. It has no implicit terminator.
type GlobalString struct {
	Name  string
	Bytes []byte
}

// Module is the IR backend's compilation unit: one LLVM module, its
// function table, its string-literal globals, and its debug-info builder.
type Module struct {
	Name        string
	funcs       []*Func
	funcIndex   map[string]*Func
	globals     []*GlobalString
	globalIndex map[string]string // bytes -> global name
	nextGlobal  int
	Debug       *DebugInfo
	TargetTriple string
	PointerBits uint32
}

// NewModule creates an IR module named name. The Compilation Context always
// creates one named literally "ZigModule".
func NewModule(name string, pointerBits uint32) *Module {
	m := &Module{
		Name:        name,
		funcIndex:   make(map[string]*Func),
		globalIndex: make(map[string]string),
		PointerBits: pointerBits,
	}
	m.Debug = newDebugInfo(m)
	return m
}

// DeclareFunction adds an external-linkage, C-calling-convention function
// declaration (no body) to the module, returning its Func handle. If a
// function with this name is already declared, its existing handle is
// returned unchanged — the caller (the Analyzer, for extern redeclaration)
// decides whether that is itself a diagnosable condition.
func (m *Module) DeclareFunction(name string, sig FuncType, noReturn bool) *Func {
	if f, ok := m.funcIndex[name]; ok {
		return f
	}
	f := &Func{Name: name, Sig: sig, Linkage: ExternalLinkage, NoReturn: noReturn}
	m.funcIndex[name] = f
	m.funcs = append(m.funcs, f)
	return f
}

// DefineFunction adds a function with a body. Unlike DeclareFunction this
// always creates a new entry: the Lowerer recomputes the IR function type
// from the resolved prototype rather than reusing the extern path's type.
func (m *Module) DefineFunction(name string, sig FuncType, noReturn bool) *Func {
	f := &Func{Name: name, Sig: sig, Linkage: ExternalLinkage, NoReturn: noReturn, NoUnwind: true, Defined: true}
	m.funcIndex[name] = f
	m.funcs = append(m.funcs, f)
	return f
}

// LookupFunction returns the declared/defined function named name, if any.
func (m *Module) LookupFunction(name string) (*Func, bool) {
	f, ok := m.funcIndex[name]
	return f, ok
}

// AppendBlock appends a new basic block named name to f and returns it.
func (f *Func) AppendBlock(name string) *Block {
	b := &Block{Name: name}
	f.Blocks = append(f.Blocks, b)
	return b
}

// InternString returns the GlobalString backing raw, creating a new private
// constant unnamed-address global the first time this exact byte sequence
// is seen, and reusing it afterward. This is the module-level mechanism the
// string pool (internal/symbols) ultimately bottoms out in.
func (m *Module) InternString(raw []byte) *GlobalString {
	key := string(raw)
	if name, ok := m.globalIndex[key]; ok {
		return m.mustGlobal(name)
	}
	name := fmt.Sprintf(".str.%d", m.nextGlobal)
	m.nextGlobal++
	g := &GlobalString{Name: name, Bytes: append([]byte(nil), raw...)}
	m.globals = append(m.globals, g)
	m.globalIndex[key] = name
	return g
}

func (m *Module) mustGlobal(name string) *GlobalString {
	for _, g := range m.globals {
		if g.Name == name {
			return g
		}
	}
	panic("irgen: dangling global name " + name)
}

// ArrayType is the IR type of a string literal global: an array of n i8s.
func ArrayType(elemCount int) Type {
	return Type{text: fmt.Sprintf("[%d x i8]", elemCount)}
}
