package parser

import (
	"ecmaparse/internal/ast"
	"ecmaparse/internal/diag"
	"ecmaparse/internal/source"
	"ecmaparse/internal/token"
)

// parseTypeMembers parses the members of an interface body or an object
// type up to (not including) the closing token. Members separate with ';',
// ',' or just a line break.
func (p *Parser) parseTypeMembers(closing token.Kind) ([]*ast.TSTypeMember, bool) {
	members := []*ast.TSTypeMember{}
	for !p.at(closing) && !p.at(token.EOF) {
		m, ok := p.parseTypeMember()
		if !ok {
			return nil, false
		}
		members = append(members, m)
		for p.atOr(token.Semicolon, token.Comma) {
			p.advance()
		}
	}
	return members, true
}

func (p *Parser) parseTypeMember() (*ast.TSTypeMember, bool) {
	start := p.lx.Peek().Span
	m := &ast.TSTypeMember{}

	if p.atContextual("readonly") && p.memberFollows() {
		p.advance()
		m.Readonly = true
	}

	tok := p.lx.Peek()
	switch {
	// call signature: (a: A): R
	case tok.Kind == token.LParen || tok.Kind == token.Lt:
		m.Kind = "call"
		return p.parseSignatureRest(m, start)

	// construct signature: new (a: A): R
	case tok.Kind == token.KwNew && p.parenFollows():
		p.advance()
		m.Kind = "construct"
		return p.parseSignatureRest(m, start)

	// index signature or computed key
	case tok.Kind == token.LBracket:
		if p.indexSignatureAhead() {
			return p.parseIndexSignature(m, start)
		}
		p.advance()
		key, ok := p.parseAssign()
		if !ok {
			return nil, false
		}
		p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after computed key")
		m.Key = key
		m.Computed = true
		return p.parseMemberTail(m, start)
	}

	// accessor members parse as methods named get/set when another key
	// follows
	if (p.atContextual("get") || p.atContextual("set")) && p.memberFollows() {
		p.advance()
		key, computed, ok := p.parsePropertyKey()
		if !ok {
			return nil, false
		}
		m.Key = key
		m.Computed = computed
		m.Kind = "method"
		if p.at(token.Question) {
			p.advance()
			m.Optional = true
		}
		return p.parseSignatureRest(m, start)
	}

	key, computed, ok := p.parsePropertyKey()
	if !ok {
		p.err(diag.SynExpectTypeMember, "expected interface or object type member")
		return nil, false
	}
	m.Key = key
	m.Computed = computed
	return p.parseMemberTail(m, start)
}

// parseMemberTail finishes a keyed member: optional marker, then either a
// method signature or a property type.
func (p *Parser) parseMemberTail(m *ast.TSTypeMember, start source.Span) (*ast.TSTypeMember, bool) {
	if p.at(token.Question) {
		p.advance()
		m.Optional = true
	}
	if p.at(token.LParen) || p.at(token.Lt) {
		m.Kind = "method"
		return p.parseSignatureRest(m, start)
	}
	m.Kind = "property"
	if p.at(token.Colon) {
		p.advance()
		t, ok := p.parseType()
		if !ok {
			return nil, false
		}
		m.TypeAnn = t
	}
	m.Span = p.spanFrom(start)
	return m, true
}

// parseSignatureRest parses "(params): R" with optional type parameters.
func (p *Parser) parseSignatureRest(m *ast.TSTypeMember, start source.Span) (*ast.TSTypeMember, bool) {
	if p.at(token.Lt) {
		if _, ok := p.parseTypeParams(); !ok {
			return nil, false
		}
	}
	params, ok := p.parseParams(paramFlags{})
	if !ok {
		return nil, false
	}
	m.Params = params
	if p.at(token.Colon) {
		p.advance()
		ret, ok := p.parseReturnType()
		if !ok {
			return nil, false
		}
		m.TypeAnn = ret
	}
	m.Span = p.spanFrom(start)
	return m, true
}

// parseIndexSignature parses "[key: K]: V".
func (p *Parser) parseIndexSignature(m *ast.TSTypeMember, start source.Span) (*ast.TSTypeMember, bool) {
	p.advance() // '['
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected index signature parameter")
	if !ok {
		return nil, false
	}
	keyParam := &ast.Param{Span: nameTok.Span, Pat: &ast.Ident{Span: nameTok.Span, Name: nameTok.Text}}
	if _, ok := p.expect(token.Colon, diag.SynExpectType, "expected ':' in index signature"); !ok {
		return nil, false
	}
	keyType, ok := p.parseType()
	if !ok {
		return nil, false
	}
	attachTypeAnn(keyParam.Pat, keyType)
	p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' in index signature")

	m.Kind = "index"
	m.Params = []*ast.Param{keyParam}
	if p.at(token.Question) {
		p.advance()
		m.Optional = true
	}
	if p.at(token.Colon) {
		p.advance()
		t, ok := p.parseType()
		if !ok {
			return nil, false
		}
		m.TypeAnn = t
	}
	m.Span = p.spanFrom(start)
	return m, true
}

// indexSignatureAhead distinguishes "[key: string]" from a computed key.
func (p *Parser) indexSignatureAhead() bool {
	isIndex := false
	speculate(p, func() (struct{}, bool) {
		p.advance() // '['
		if p.at(token.Ident) {
			p.advance()
			isIndex = p.at(token.Colon)
		}
		return struct{}{}, false // rewind, decision only
	})
	return isIndex
}

func (p *Parser) parenFollows() bool {
	st := p.lx.State()
	saved := p.lastSpan
	p.advance()
	ok := p.at(token.LParen) || p.at(token.Lt)
	p.lx.Restore(st)
	p.lastSpan = saved
	return ok
}
