package parser

import (
	"zigcore/internal/ast"
	"zigcore/internal/token"
)

// parseExternBlock parses `extern { fn decl; fn decl; ... }`.
func (p *Parser) parseExternBlock() (ast.Item, bool) {
	pos := p.advance().Pos // consume 'extern'
	if _, ok := p.expect(token.LBrace); !ok {
		return ast.Item{}, false
	}

	var decls []ast.FnDecl
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		decl, ok := p.parseFnDecl()
		if !ok {
			p.resyncUntil(token.Semicolon, token.RBrace)
			if p.at(token.Semicolon) {
				p.advance()
			}
			continue
		}
		decls = append(decls, decl)
	}
	if _, ok := p.expect(token.RBrace); !ok {
		return ast.Item{}, false
	}
	return ast.Item{Kind: ast.ItemExternBlock, Pos: pos, Extern: decls}, true
}

// parseFnDecl parses one `fn name(params) -> type;` inside an extern block.
func (p *Parser) parseFnDecl() (ast.FnDecl, bool) {
	proto, ok := p.parseFnProto()
	if !ok {
		return ast.FnDecl{}, false
	}
	if _, ok := p.expect(token.Semicolon); !ok {
		return ast.FnDecl{}, false
	}
	return ast.FnDecl{Pos: proto.Pos, Proto: proto}, true
}

// resyncUntil skips tokens until the next one of kinds or EOF.
func (p *Parser) resyncUntil(kinds ...token.Kind) {
	for !p.at(token.EOF) {
		cur := p.peek().Kind
		for _, k := range kinds {
			if cur == k {
				return
			}
		}
		p.advance()
	}
}
