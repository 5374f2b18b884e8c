package parser

import (
	"zigcore/internal/ast"
	"zigcore/internal/token"
)

// parseFnProto parses `fn name(param: type, ...) -> returnType`.
func (p *Parser) parseFnProto() (ast.FnProto, bool) {
	kw, ok := p.expect(token.KwFn)
	if !ok {
		return ast.FnProto{}, false
	}
	nameTok, ok := p.expect(token.Ident)
	if !ok {
		return ast.FnProto{}, false
	}
	if _, ok := p.expect(token.LParen); !ok {
		return ast.FnProto{}, false
	}

	var params []ast.Param
	for !p.at(token.RParen) && !p.at(token.EOF) {
		param, ok := p.parseParam()
		if !ok {
			return ast.FnProto{}, false
		}
		params = append(params, param)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(token.RParen); !ok {
		return ast.FnProto{}, false
	}
	if _, ok := p.expect(token.Arrow); !ok {
		return ast.FnProto{}, false
	}
	retType, ok := p.parseTypeRef()
	if !ok {
		return ast.FnProto{}, false
	}

	return ast.FnProto{Pos: kw.Pos, Name: nameTok.Text, Params: params, ReturnType: retType}, true
}

func (p *Parser) parseParam() (ast.Param, bool) {
	nameTok, ok := p.expect(token.Ident)
	if !ok {
		return ast.Param{}, false
	}
	if _, ok := p.expect(token.Colon); !ok {
		return ast.Param{}, false
	}
	typ, ok := p.parseTypeRef()
	if !ok {
		return ast.Param{}, false
	}
	return ast.Param{Pos: nameTok.Pos, Name: nameTok.Text, Type: typ}, true
}

// parseFnDef parses `fn name(params) -> type { block }`.
func (p *Parser) parseFnDef() (ast.Item, bool) {
	proto, ok := p.parseFnProto()
	if !ok {
		return ast.Item{}, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.Item{}, false
	}
	def := ast.FnDef{Pos: proto.Pos, Proto: proto, Body: body}
	return ast.Item{Kind: ast.ItemFnDef, Pos: proto.Pos, Def: def}, true
}
