package symbols

import "zigcore/internal/irgen"

// StringPool deduplicates string-literal byte contents against the backing
// IR module's global constants. The actual global creation/reuse logic
// lives on irgen.Module — that's where a global must be created, so that's
// where "insert or get-existing" is implemented; this type only keeps
// sema/lower from reaching past the symbol-table layer into the module
// directly.
type StringPool struct {
	mod *irgen.Module
}

// NewStringPool binds a pool to the module whose globals back it.
func NewStringPool(mod *irgen.Module) *StringPool {
	return &StringPool{mod: mod}
}

// Intern returns the interned global for raw, creating it on first sight.
func (p *StringPool) Intern(raw []byte) *irgen.GlobalString {
	return p.mod.InternString(raw)
}
