package parser

import (
	"ecmaparse/internal/ast"
	"ecmaparse/internal/diag"
	"ecmaparse/internal/source"
	"ecmaparse/internal/token"
)

func (p *Parser) parseVarStmt(declare bool) (ast.Stmt, bool) {
	kindTok := p.advance()
	decl := &ast.VarDecl{Kind: kindTok.Text, Declare: declare}
	for {
		d, ok := p.parseVarDeclarator()
		if !ok {
			return nil, false
		}
		decl.Decls = append(decl.Decls, d)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	decl.Span = p.spanFrom(kindTok.Span)
	p.semicolon("variable declaration")
	return decl, true
}

func (p *Parser) parseVarDeclarator() (*ast.VarDeclarator, bool) {
	pat, ok := p.parseBindingPat()
	if !ok {
		return nil, false
	}
	d := &ast.VarDeclarator{ID: pat}
	if p.opts.TypeScript && p.at(token.Bang) && !p.lx.Peek().NewlineBefore() {
		p.advance()
		d.Definite = true
	}
	if p.at(token.Colon) {
		t, ok := p.parseTypeAnnotation()
		if !ok {
			return nil, false
		}
		attachTypeAnn(pat, t)
	}
	if p.at(token.Assign) {
		p.advance()
		init, ok := p.parseAssign()
		if !ok {
			return nil, false
		}
		d.Init = init
	}
	d.Span = p.spanFrom(pat.Pos())
	return d, true
}

func (p *Parser) parseFuncDecl(start source.Span, async, declare bool) (ast.Stmt, bool) {
	if _, ok := p.expect(token.KwFunction, diag.SynUnexpectedToken, "expected 'function'"); !ok {
		return nil, false
	}
	generator := false
	if p.at(token.Star) {
		p.advance()
		generator = true
	}
	id, ok := p.parseIdentRef()
	if !ok {
		return nil, false
	}
	fn, ok := p.parseFunctionRest(start, async, generator)
	if !ok {
		return nil, false
	}
	return &ast.FuncDecl{
		Span:    p.spanFrom(start),
		ID:      id,
		Fn:      fn,
		Declare: declare,
	}, true
}

func (p *Parser) parseFuncExpr(start source.Span, async bool) (ast.Expr, bool) {
	if _, ok := p.expect(token.KwFunction, diag.SynUnexpectedToken, "expected 'function'"); !ok {
		return nil, false
	}
	generator := false
	if p.at(token.Star) {
		p.advance()
		generator = true
	}
	n := &ast.FuncExpr{}
	if p.at(token.Ident) {
		tok := p.advance()
		n.ID = &ast.Ident{Span: tok.Span, Name: tok.Text}
	}
	fn, ok := p.parseFunctionRest(start, async, generator)
	if !ok {
		return nil, false
	}
	n.Fn = fn
	n.Span = fn.Span
	return n, true
}

// parseFunctionRest parses type parameters, the parameter list, the return
// type and the body. Body may be absent for TS overload signatures and
// ambient declarations.
func (p *Parser) parseFunctionRest(start source.Span, async, generator bool) (*ast.Function, bool) {
	fn := &ast.Function{Async: async, Generator: generator}

	if p.opts.TypeScript && p.at(token.Lt) {
		tps, ok := p.parseTypeParams()
		if !ok {
			return nil, false
		}
		fn.TypeParams = tps
	}
	params, ok := p.parseParams(paramFlags{})
	if !ok {
		return nil, false
	}
	fn.Params = params

	if p.at(token.Colon) {
		if !p.opts.TypeScript {
			p.err(diag.SynTypeSyntaxDisabled, "type annotations require the TypeScript syntax")
		}
		p.advance()
		ret, ok := p.parseReturnType()
		if !ok {
			return nil, false
		}
		fn.ReturnType = ret
	}

	if p.at(token.LBrace) {
		body, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		fn.Body = body
	} else if p.opts.TypeScript {
		p.semicolon("function signature")
	} else {
		p.err(diag.SynUnexpectedToken, "expected '{' to open function body")
	}

	fn.Span = p.spanFrom(start)
	return fn, true
}

type paramFlags struct {
	// ctor permits TS parameter properties: constructor(private x: T).
	ctor bool
}

func (p *Parser) parseParams(flags paramFlags) ([]*ast.Param, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' to open parameter list"); !ok {
		return nil, false
	}
	params := []*ast.Param{}
	for !p.at(token.RParen) && !p.at(token.EOF) {
		param, ok := p.parseParam(flags)
		if !ok {
			return nil, false
		}
		params = append(params, param)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close parameter list"); !ok {
		return params, false
	}
	return params, true
}

func (p *Parser) parseParam(flags paramFlags) (*ast.Param, bool) {
	start := p.lx.Peek().Span
	param := &ast.Param{}

	// parameter decorators are consumed and dropped
	for p.at(token.At) {
		p.advance()
		if _, ok := p.parseCallMember(); !ok {
			return nil, false
		}
	}

	if flags.ctor && p.opts.TypeScript {
		for {
			tok := p.lx.Peek()
			if tok.Kind != token.Ident {
				break
			}
			switch tok.Text {
			case "public", "private", "protected":
				if !p.nextStartsBinding() {
					break
				}
				p.advance()
				param.Accessibility = tok.Text
				continue
			case "readonly":
				if !p.nextStartsBinding() {
					break
				}
				p.advance()
				param.Readonly = true
				continue
			case "override":
				if !p.nextStartsBinding() {
					break
				}
				p.advance()
				continue
			}
			break
		}
	}

	rest := false
	if p.at(token.DotDotDot) {
		p.advance()
		rest = true
	}

	// TS 'this' parameter
	var pat ast.Pat
	if p.opts.TypeScript && p.at(token.KwThis) {
		tok := p.advance()
		pat = &ast.Ident{Span: tok.Span, Name: "this"}
	} else {
		var ok bool
		pat, ok = p.parseBindingPat()
		if !ok {
			return nil, false
		}
	}

	if p.at(token.Question) {
		if !p.opts.TypeScript {
			p.err(diag.SynTypeSyntaxDisabled, "optional parameters require the TypeScript syntax")
		}
		p.advance()
		param.Optional = true
	}
	if p.at(token.Colon) {
		t, ok := p.parseTypeAnnotation()
		if !ok {
			return nil, false
		}
		attachTypeAnn(pat, t)
	}
	if rest {
		pat = &ast.RestElement{Span: p.spanFrom(start), Arg: pat}
	}
	if p.at(token.Assign) {
		p.advance()
		def, ok := p.parseAssign()
		if !ok {
			return nil, false
		}
		pat = &ast.AssignPat{Span: p.spanFrom(start), Left: pat, Right: def}
	}

	param.Pat = pat
	param.Span = p.spanFrom(start)
	return param, true
}

// nextStartsBinding peeks past the current modifier word to check that a
// binding actually follows; "readonly" alone can be a parameter name.
func (p *Parser) nextStartsBinding() bool {
	st := p.lx.State()
	saved := p.lastSpan
	p.advance()
	tok := p.lx.Peek()
	p.lx.Restore(st)
	p.lastSpan = saved
	switch tok.Kind {
	case token.Ident, token.LBrace, token.LBracket, token.KwThis, token.DotDotDot:
		return true
	default:
		return false
	}
}
