package sema

import (
	"fmt"

	"zigcore/internal/ast"
)

// assertItemKind guards a visitor against being dispatched on the wrong
// Item kind. It panics (an internal-bug condition, not a diagnostic) rather
// than silently trusting the caller, since a mismatch here means Run's
// dispatch logic itself is broken, not anything a source file did.
func assertItemKind(got, want ast.ItemKind, label string) {
	if got != want {
		panic(fmt.Sprintf("sema: internal error: %s dispatched with item kind %v, want %v", label, got, want))
	}
}
