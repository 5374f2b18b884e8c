// Package symbols holds the three independent name-keyed mappings the
// Analyzer and Lowerer share: function definitions, the extern/defined
// function entry table, and the interned string-literal pool.
package symbols

import "zigcore/internal/ast"

// FnEntry is one row of the function table — an IR handle paired with the
// AST prototype node it was built from. IRHandle is typed as any (rather
// than *irgen.Func) so this package never has to import irgen; callers
// type-assert it back.
type FnEntry struct {
	IRHandle  any
	ProtoNode ast.FnProto
}

// Defs maps a function name to its single winning FnDef node — "insert or
// get-existing", first writer wins.
type Defs struct {
	byName map[string]ast.FnDef
	order  []string
}

// NewDefs returns an empty Defs table.
func NewDefs() *Defs {
	return &Defs{byName: make(map[string]ast.FnDef)}
}

// Insert records def under name if no entry exists yet. It reports ok=false
// and leaves the existing entry untouched when name is already taken — the
// caller (the Analyzer) is responsible for turning that into the
// "redefinition of '<name>'" diagnostic.
func (d *Defs) Insert(name string, def ast.FnDef) (ok bool) {
	if _, exists := d.byName[name]; exists {
		return false
	}
	d.byName[name] = def
	d.order = append(d.order, name)
	return true
}

// Get returns the winning definition for name, if any.
func (d *Defs) Get(name string) (ast.FnDef, bool) {
	def, ok := d.byName[name]
	return def, ok
}

// Names returns every recorded name in insertion order — the order the
// Lowerer walks fn_defs in. That order is otherwise unspecified but stable
// for a given run.
func (d *Defs) Names() []string { return d.order }

// Len reports the number of distinct function definitions recorded.
func (d *Defs) Len() int { return len(d.order) }
