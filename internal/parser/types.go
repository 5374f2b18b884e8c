package parser

import (
	"zigcore/internal/ast"
	"zigcore/internal/token"
)

// parseTypeRef parses a primitive name or a pointer type:
// `*const T` / `*mut T` / `name`.
func (p *Parser) parseTypeRef() (ast.TypeRefID, bool) {
	if p.at(token.Star) {
		pos := p.advance().Pos
		isConst, ok := p.parseConstOrMut()
		if !ok {
			return ast.NoTypeRefID, false
		}
		child, ok := p.parseTypeRef()
		if !ok {
			return ast.NoTypeRefID, false
		}
		return p.b.NewPointerType(pos, child, isConst), true
	}

	// A primitive name is usually an Ident ("u8", "i32", "void"), but
	// "unreachable" also doubles as a type name even though the lexer
	// reserves it as a keyword everywhere else.
	if p.at(token.Ident) || p.at(token.KwUnreachable) {
		nameTok := p.advance()
		return p.b.NewPrimitiveType(nameTok.Pos, nameTok.Text), true
	}

	got := p.peek()
	p.bag.Error(got.Pos, "expected a type name, got '%s'", describeToken(got))
	return ast.NoTypeRefID, false
}

func (p *Parser) parseConstOrMut() (isConst bool, ok bool) {
	switch {
	case p.at(token.KwConst):
		p.advance()
		return true, true
	case p.at(token.KwMut):
		p.advance()
		return false, true
	default:
		got := p.peek()
		p.bag.Error(got.Pos, "expected 'const' or 'mut' after '*', got '%s'", describeToken(got))
		return false, false
	}
}
