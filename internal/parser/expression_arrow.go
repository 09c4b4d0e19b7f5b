package parser

import (
	"ecmaparse/internal/ast"
	"ecmaparse/internal/token"
)

// arrowHead is everything before '=>', recognized speculatively.
type arrowHead struct {
	start      token.Token
	async      bool
	params     []*ast.Param
	typeParams []*ast.TSTypeParam
	returnType ast.TSType
}

// tryArrow attempts an arrow function at assignment-expression start.
// matched reports whether the input committed to an arrow; when false,
// nothing was consumed. The head (through '=>') parses silently so a plain
// parenthesized expression does not collect bogus diagnostics; the body
// parses with reporting back on.
func (p *Parser) tryArrow() (ast.Expr, bool, bool) {
	switch {
	case p.at(token.Ident):
	case p.at(token.LParen):
	case p.opts.TypeScript && p.at(token.Lt):
	default:
		return nil, false, false
	}

	head, ok := speculate(p, p.parseArrowHead)
	if !ok {
		return nil, false, false
	}

	fn := &ast.ArrowFunc{
		Params:     head.params,
		Async:      head.async,
		TypeParams: head.typeParams,
		ReturnType: head.returnType,
	}
	if p.at(token.LBrace) {
		body, ok := p.parseBlock()
		if !ok {
			return nil, false, true
		}
		fn.Body = body
	} else {
		body, ok := p.parseAssign()
		if !ok {
			return nil, false, true
		}
		fn.Body = body
	}
	fn.Span = p.spanFrom(head.start.Span)
	return fn, true, true
}

// parseArrowHead consumes "async? typeparams? params returntype? =>".
// It fails without diagnostics; the caller rewinds.
func (p *Parser) parseArrowHead() (arrowHead, bool) {
	head := arrowHead{start: p.lx.Peek()}

	if p.atContextual("async") {
		st := p.lx.State()
		p.advance()
		next := p.lx.Peek()
		headStarter := next.Kind == token.Ident || next.Kind == token.LParen ||
			(p.opts.TypeScript && next.Kind == token.Lt)
		if next.NewlineBefore() || !headStarter {
			p.lx.Restore(st)
		} else {
			head.async = true
		}
	}

	if p.opts.TypeScript && p.at(token.Lt) {
		tps, ok := p.parseTypeParams()
		if !ok {
			return head, false
		}
		head.typeParams = tps
	}

	switch {
	case p.at(token.Ident):
		tok := p.advance()
		id := &ast.Ident{Span: tok.Span, Name: tok.Text}
		head.params = []*ast.Param{{Span: tok.Span, Pat: id}}
	case p.at(token.LParen):
		params, ok := p.parseParams(paramFlags{})
		if !ok {
			return head, false
		}
		head.params = params
	default:
		return head, false
	}

	if p.opts.TypeScript && p.at(token.Colon) {
		p.advance()
		t, ok := p.parseReturnType()
		if !ok {
			return head, false
		}
		head.returnType = t
	}

	if !p.at(token.Arrow) || p.lx.Peek().NewlineBefore() {
		return head, false
	}
	p.advance()
	return head, true
}
