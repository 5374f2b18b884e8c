// Package parser is a recursive-descent parser for the grammar of one item
// per top-level declaration: extern blocks and function definitions with
// straight-line bodies. It reports syntax errors into a diag.Bag and
// recovers by resynchronizing to the next top-level starter token, so one
// bad declaration does not stop the rest of the file from being parsed.
package parser

import (
	"zigcore/internal/ast"
	"zigcore/internal/diag"
	"zigcore/internal/lexer"
	"zigcore/internal/token"
)

// Parser holds the state of one file's parse.
type Parser struct {
	toks []token.Token
	pos  int
	b    *ast.Builder
	bag  *diag.Bag
}

// ParseFile tokenizes src (reporting lexical errors into bag) and parses it
// into an ast.Builder. Parsing always returns a Builder, even on error —
// callers inspect bag to decide whether to proceed.
func ParseFile(path, src string, bag *diag.Bag) *ast.Builder {
	lx := lexer.New(src)
	toks := lx.Tokenize()
	for _, lerr := range lx.Errors() {
		bag.Error(lerr.Pos, "%s", lerr.Msg)
	}

	p := &Parser{toks: toks, b: ast.NewBuilder(path), bag: bag}
	p.parseItems()
	return p.b
}

func (p *Parser) peek() token.Token { return p.toks[p.pos] }

func (p *Parser) at(k token.Kind) bool { return p.peek().Kind == k }

func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

// expect consumes a token of kind k, or reports a syntax error and returns
// the zero Token with ok=false without consuming anything.
func (p *Parser) expect(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	got := p.peek()
	p.bag.Error(got.Pos, "expected '%s', got '%s'", k, describeToken(got))
	return token.Token{}, false
}

func describeToken(t token.Token) string {
	if t.Text != "" {
		return t.Text
	}
	return t.Kind.String()
}

var topLevelStarters = []token.Kind{token.KwExtern, token.KwFn}

func isTopLevelStarter(k token.Kind) bool {
	for _, s := range topLevelStarters {
		if s == k {
			return true
		}
	}
	return false
}

// parseItems is the top-level loop: parse one Item at a time until EOF,
// resynchronizing to the next top-level starter after a parse error.
func (p *Parser) parseItems() {
	for !p.at(token.EOF) {
		if !p.parseItem() {
			p.resyncTop()
		}
	}
}

func (p *Parser) parseItem() bool {
	switch p.peek().Kind {
	case token.KwExtern:
		item, ok := p.parseExternBlock()
		if ok {
			p.b.AddItem(item)
		}
		return ok
	case token.KwFn:
		item, ok := p.parseFnDef()
		if ok {
			p.b.AddItem(item)
		}
		return ok
	default:
		p.bag.Error(p.peek().Pos, "unexpected top-level token '%s'", describeToken(p.peek()))
		return false
	}
}

// resyncTop skips tokens until the next top-level starter or EOF, so a
// single malformed declaration does not cascade into spurious errors for
// the rest of the file.
func (p *Parser) resyncTop() {
	for !p.at(token.EOF) && !isTopLevelStarter(p.peek().Kind) {
		p.advance()
	}
}
