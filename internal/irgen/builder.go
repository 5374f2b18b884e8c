package irgen

import "fmt"

// Value is a typed IR operand: either a constant, a global reference, or the
// result of a prior instruction (an SSA temporary name).
type Value struct {
	Type Type
	Text string // textual operand, e.g. "5" or "%t3" or "@puts"
}

func (v Value) operand() string { return v.Type.String() + " " + v.Text }

// Builder emits instructions into one Func, positioned at its current
// (last-appended) Block.
type Builder struct {
	f     *Func
	block *Block
	temps int
}

// NewBuilder returns a Builder positioned at f's current block. Callers
// append a block with Func.AppendBlock and immediately position a Builder
// there, mirroring LLVMPositionBuilderAtEnd.
func NewBuilder(f *Func, block *Block) *Builder {
	return &Builder{f: f, block: block}
}

func (b *Builder) newTemp() string {
	b.temps++
	return fmt.Sprintf("%%t%d", b.temps)
}

func (b *Builder) emit(line string) {
	b.block.Instrs = append(b.block.Instrs, line)
}

// ConstI32 returns a constant i32 value holding n. It does no parsing: the
// Lowerer parses the decimal literal and applies any truncation policy;
// this just wraps the already-decided int32 value.
func ConstI32(n int32) Value {
	return Value{Type: I32Type(), Text: fmt.Sprintf("%d", n)}
}

// ConstNullI32 returns the i32 zero constant used as a placeholder result
// for calls that could not be lowered (undefined callee, arity mismatch).
func ConstNullI32() Value {
	return Value{Type: I32Type(), Text: "0"}
}

// Call emits a direct call to target with the C calling convention and
// returns its result value. If target's return type is void the returned
// Value is the zero Value and should not be used.
func (b *Builder) Call(target *Func, args []Value) Value {
	call := "call " + target.Sig.Ret.String() + " @" + target.Name + "("
	for i, a := range args {
		if i > 0 {
			call += ", "
		}
		call += a.operand()
	}
	call += ")"
	if target.Sig.Ret.IsVoid() {
		b.emit(call)
		return Value{}
	}
	tmp := b.newTemp()
	b.emit(tmp + " = " + call)
	return Value{Type: target.Sig.Ret, Text: tmp}
}

// Ret emits a return of v and terminates the current block.
func (b *Builder) Ret(v Value) {
	b.emit("ret " + v.operand())
	b.block.terminated = true
}

// RetVoid emits a void return and terminates the current block.
func (b *Builder) RetVoid() {
	b.emit("ret void")
	b.block.terminated = true
}

// Unreachable emits the unreachable terminator.
func (b *Builder) Unreachable() {
	b.emit("unreachable")
	b.block.terminated = true
}

// StringPointer computes a pointer to the first byte of g using a two-index
// in-bounds GEP (both indices zero), matching the original backend's
// pointer-to-array indexing for string references.
func (b *Builder) StringPointer(g *GlobalString, elem Type) Value {
	arrTy := ArrayType(len(g.Bytes))
	tmp := b.newTemp()
	b.emit(fmt.Sprintf("%s = getelementptr inbounds %s, %s* @%s, i32 0, i32 0", tmp, arrTy, arrTy, g.Name))
	return Value{Type: PointerType(elem), Text: tmp}
}
