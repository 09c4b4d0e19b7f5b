package parser

import (
	"ecmaparse/internal/ast"
	"ecmaparse/internal/diag"
	"ecmaparse/internal/lexer"
	"ecmaparse/internal/token"
)

func (p *Parser) parseObjectLit() (ast.Expr, bool) {
	lb := p.advance()
	props := []ast.Node{}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		prop, ok := p.parseObjectProp()
		if !ok {
			return nil, false
		}
		props = append(props, prop)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close object literal")
	return &ast.ObjectLit{Span: p.spanFrom(lb.Span), Props: props}, true
}

func (p *Parser) parseObjectProp() (ast.Node, bool) {
	start := p.lx.Peek()

	if p.at(token.DotDotDot) {
		dots := p.advance()
		arg, ok := p.parseAssign()
		if !ok {
			return nil, false
		}
		return &ast.SpreadElement{Span: dots.Span.Cover(arg.Pos()), Arg: arg}, true
	}

	async := false
	generator := false
	kind := ""

	// get/set/async are ordinary names unless another key follows
	if p.at(token.Ident) && (start.Text == "get" || start.Text == "set" || start.Text == "async") {
		st := p.lx.State()
		p.advance()
		if p.atPropertyKey() || p.at(token.Star) {
			switch start.Text {
			case "get":
				kind = "get"
			case "set":
				kind = "set"
			case "async":
				async = true
			}
		} else {
			p.lx.Restore(st)
		}
	}
	if p.at(token.Star) {
		p.advance()
		generator = true
	}

	key, computed, ok := p.parsePropertyKey()
	if !ok {
		return nil, false
	}

	switch {
	case p.at(token.LParen) || (p.opts.TypeScript && p.at(token.Lt)) || kind != "" || async || generator:
		fn, ok := p.parseFunctionRest(key.Pos(), async, generator)
		if !ok {
			return nil, false
		}
		return &ast.Property{
			Span:     p.spanFrom(start.Span),
			Key:      key,
			Value:    &ast.FuncExpr{Span: fn.Span, Fn: fn},
			Computed: computed,
			Method:   kind == "",
			Kind:     kind,
		}, true

	case p.at(token.Colon):
		p.advance()
		val, ok := p.parseAssign()
		if !ok {
			return nil, false
		}
		return &ast.Property{
			Span:     p.spanFrom(start.Span),
			Key:      key,
			Value:    val,
			Computed: computed,
		}, true

	case p.at(token.Assign):
		// cover grammar: {a = 1} only makes sense as a destructuring
		// target, represent the default with an assignment pattern
		id, isIdent := key.(*ast.Ident)
		if !isIdent {
			p.err(diag.SynExpectProperty, "unexpected '=' after property key")
			return nil, false
		}
		p.advance()
		def, ok := p.parseAssign()
		if !ok {
			return nil, false
		}
		return &ast.Property{
			Span:      p.spanFrom(start.Span),
			Key:       key,
			Value:     &ast.AssignPat{Span: p.spanFrom(id.Span), Left: id, Right: def},
			Shorthand: true,
		}, true

	default:
		id, isIdent := key.(*ast.Ident)
		if !isIdent || computed {
			p.err(diag.SynExpectProperty, "expected ':' after property key")
			return nil, false
		}
		return &ast.Property{
			Span:      p.spanFrom(start.Span),
			Key:       key,
			Value:     id,
			Shorthand: true,
		}, true
	}
}

// parsePropertyKey parses an object or class member key: identifier-like
// word, string, number, private name or a computed [expr].
func (p *Parser) parsePropertyKey() (ast.Expr, bool, bool) {
	tok := p.lx.Peek()
	switch {
	case tok.Kind == token.LBracket:
		p.advance()
		key, ok := p.parseAssign()
		if !ok {
			return nil, false, false
		}
		p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after computed key")
		return key, true, true
	case tok.Kind == token.StringLit:
		p.advance()
		return &ast.StringLit{Span: tok.Span, Value: lexer.Unquote(tok.Text), Raw: tok.Text}, false, true
	case tok.Kind == token.NumberLit:
		p.advance()
		return &ast.NumberLit{Span: tok.Span, Value: numberValue(tok.Text), Raw: tok.Text}, false, true
	case tok.IsIdentLike():
		p.advance()
		return &ast.Ident{Span: tok.Span, Name: tok.Text}, false, true
	}
	p.err(diag.SynExpectProperty, "expected property name, got "+tok.Kind.String())
	return nil, false, false
}

func (p *Parser) atPropertyKey() bool {
	tok := p.lx.Peek()
	return tok.IsIdentLike() ||
		tok.Kind == token.StringLit || tok.Kind == token.NumberLit ||
		tok.Kind == token.LBracket || tok.Kind == token.PrivateIdent
}
