package irgen

import "fmt"

// DebugType is a debug-info handle: an index into the owning DebugInfo's
// metadata node table, opaque to every caller outside this package.
type DebugType struct {
	id int
}

// FuncDebugInfo pins a function's debug record to a source line.
type FuncDebugInfo struct {
	subroutine DebugType
	line       int
	scopeLine  int
}

// DebugInfo accumulates LLVM debug-metadata nodes (!N = ...) for one
// Module, mirroring llvm::DIBuilder's compile-unit/subroutine-type/function
// records closely enough to let a downstream llc/clang step attach real
// DWARF to the object file.
type DebugInfo struct {
	mod          *Module
	nodes        []string
	compileUnit  int
	fileNode     int
	producer     string
	fileName     string
	dirName      string
}

func newDebugInfo(mod *Module) *DebugInfo {
	return &DebugInfo{mod: mod}
}

func (d *DebugInfo) alloc(text string) int {
	id := len(d.nodes) + 1
	d.nodes = append(d.nodes, fmt.Sprintf("!%d = %s", id, text))
	return id
}

// CreateCompileUnit creates the DWARF compile unit for the module, with
// language tag C99 and the given producer string (e.g. "zig <version>").
func (d *DebugInfo) CreateCompileUnit(fileName, dirName, producer string) {
	d.fileName = fileName
	d.dirName = dirName
	d.producer = producer
	d.fileNode = d.alloc(fmt.Sprintf("!DIFile(filename: %q, directory: %q)", fileName, dirName))
	d.compileUnit = d.alloc(fmt.Sprintf(
		"distinct !DICompileUnit(language: DW_LANG_C99, file: !%d, producer: %q, isOptimized: false, runtimeVersion: 0, emissionKind: FullDebug)",
		d.fileNode, producer))
}

// CreateBasicType creates a DW_ATE basic-type record for a primitive.
func (d *DebugInfo) CreateBasicType(name string, bits uint32, signed bool) DebugType {
	encoding := "DW_ATE_unsigned"
	if signed {
		encoding = "DW_ATE_signed"
	}
	id := d.alloc(fmt.Sprintf("!DIBasicType(name: %q, size: %d, encoding: %s)", name, bits, encoding))
	return DebugType{id: id}
}

// CreatePointerType creates a pointer debug type over elem, sized and
// aligned to the module's pointer width.
func (d *DebugInfo) CreatePointerType(elem DebugType, name string) DebugType {
	id := d.alloc(fmt.Sprintf("!DIDerivedType(tag: DW_TAG_pointer_type, baseType: !%d, size: %d, align: %d, name: %q)",
		elem.id, d.mod.PointerBits, d.mod.PointerBits, name))
	return DebugType{id: id}
}

// CreateSubroutineType creates a subroutine type whose first element is the
// return type's debug handle, followed by the parameter debug handles in
// order.
func (d *DebugInfo) CreateSubroutineType(ret DebugType, params []DebugType) DebugType {
	refs := fmt.Sprintf("!%d", ret.id)
	for _, p := range params {
		refs += fmt.Sprintf(", !%d", p.id)
	}
	arr := d.alloc(fmt.Sprintf("!{%s}", refs))
	id := d.alloc(fmt.Sprintf("!DISubroutineType(types: !%d)", arr))
	return DebugType{id: id}
}

// CreateFunction pins a debug function record to line for both its
// declaration and scope line.
func (d *DebugInfo) CreateFunction(name string, line int, subroutine DebugType) *FuncDebugInfo {
	d.alloc(fmt.Sprintf(
		"distinct !DISubprogram(name: %q, scope: !%d, file: !%d, line: %d, type: !%d, scopeLine: %d, unit: !%d)",
		name, d.fileNode, d.fileNode, line, subroutine.id, line, d.compileUnit))
	return &FuncDebugInfo{subroutine: subroutine, line: line, scopeLine: line}
}

// Finalize returns the accumulated metadata node text, one "!N = ..." line
// per node, ready to append to the module's textual dump.
func (d *DebugInfo) Finalize() []string {
	return d.nodes
}
