package parser

import (
	"ecmaparse/internal/ast"
	"ecmaparse/internal/diag"
	"ecmaparse/internal/lexer"
	"ecmaparse/internal/token"
)

// parseImportDecl parses a static import; the 'import' keyword is already
// consumed.
func (p *Parser) parseImportDecl(impTok token.Token) (ast.Stmt, bool) {
	n := &ast.ImportDecl{}

	// side-effect import: import "m";
	if p.at(token.StringLit) {
		src, _ := p.parseModuleSpecifier()
		n.Source = src
		n.Span = p.spanFrom(impTok.Span)
		p.semicolon("import declaration")
		return n, true
	}

	// import type ... unless 'type' is itself the imported binding
	if p.opts.TypeScript && p.atContextual("type") {
		st := p.lx.State()
		p.advance()
		if p.at(token.Ident) || p.at(token.LBrace) || p.at(token.Star) {
			n.TypeOnly = true
		} else {
			p.lx.Restore(st)
		}
	}

	hasSpecifiers := false
	if p.at(token.Ident) {
		tok := p.advance()
		local := &ast.Ident{Span: tok.Span, Name: tok.Text}
		n.Specifiers = append(n.Specifiers, &ast.ImportDefaultSpec{Span: tok.Span, Local: local})
		hasSpecifiers = true
		if p.at(token.Comma) {
			p.advance()
		} else if !p.atContextual("from") {
			p.err(diag.SynExpectFromClause, "expected 'from' after import binding")
		}
	}

	switch {
	case p.at(token.Star):
		starTok := p.advance()
		if !p.atContextual("as") {
			p.err(diag.SynExpectImportBinding, "expected 'as' after '*' in import")
			return nil, false
		}
		p.advance()
		local, ok := p.parseIdentRef()
		if !ok {
			return nil, false
		}
		n.Specifiers = append(n.Specifiers, &ast.ImportNamespaceSpec{
			Span:  p.spanFrom(starTok.Span),
			Local: local,
		})
		hasSpecifiers = true

	case p.at(token.LBrace):
		p.advance()
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			spec, ok := p.parseImportSpec()
			if !ok {
				return nil, false
			}
			n.Specifiers = append(n.Specifiers, spec)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
		p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close import clause")
		hasSpecifiers = true
	}

	if !hasSpecifiers {
		p.err(diag.SynExpectImportBinding, "expected import bindings or a module string")
	}

	if !p.atContextual("from") {
		p.err(diag.SynExpectFromClause, "expected 'from' in import declaration")
		return nil, false
	}
	p.advance()
	src, ok := p.parseModuleSpecifier()
	if !ok {
		return nil, false
	}
	n.Source = src
	p.parseImportAttributes()
	n.Span = p.spanFrom(impTok.Span)
	p.semicolon("import declaration")
	return n, true
}

// parseImportSpec parses one entry of an import clause:
// a, a as b, "str" as b, type a.
func (p *Parser) parseImportSpec() (ast.ImportSpec, bool) {
	start := p.lx.Peek().Span
	spec := &ast.ImportNamedSpec{}

	if p.opts.TypeScript && p.atContextual("type") {
		st := p.lx.State()
		p.advance()
		if p.lx.Peek().IsIdentLike() || p.at(token.StringLit) {
			spec.TypeOnly = true
		} else {
			p.lx.Restore(st)
		}
	}

	var imported ast.Expr
	switch {
	case p.at(token.StringLit):
		tok := p.advance()
		imported = &ast.StringLit{Span: tok.Span, Value: lexer.Unquote(tok.Text), Raw: tok.Text}
	case p.lx.Peek().IsIdentLike():
		tok := p.advance()
		imported = &ast.Ident{Span: tok.Span, Name: tok.Text}
	default:
		p.err(diag.SynExpectImportBinding, "expected import name")
		return nil, false
	}

	if p.atContextual("as") {
		p.advance()
		local, ok := p.parseIdentRef()
		if !ok {
			return nil, false
		}
		spec.Imported = imported
		spec.Local = local
	} else {
		id, isIdent := imported.(*ast.Ident)
		if !isIdent {
			p.err(diag.SynExpectImportBinding, "string import names need an 'as' alias")
			return nil, false
		}
		spec.Local = id
	}
	spec.Span = p.spanFrom(start)
	return spec, true
}

// parseImportAttributes consumes a trailing "with { ... }" or legacy
// "assert { ... }" clause; the attributes themselves are not retained.
func (p *Parser) parseImportAttributes() {
	if !p.at(token.KwWith) && !p.atContextual("assert") {
		return
	}
	if p.lx.Peek().NewlineBefore() {
		return
	}
	p.advance()
	if !p.at(token.LBrace) {
		return
	}
	p.advance()
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		p.advance()
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close import attributes")
}

func (p *Parser) parseModuleSpecifier() (*ast.StringLit, bool) {
	tok, ok := p.expect(token.StringLit, diag.SynExpectModuleSpecifier, "expected module specifier string")
	if !ok {
		return nil, false
	}
	return &ast.StringLit{Span: tok.Span, Value: lexer.Unquote(tok.Text), Raw: tok.Text}, true
}

func (p *Parser) parseExportDecl() (ast.Stmt, bool) {
	expTok := p.advance()

	switch p.lx.Peek().Kind {
	case token.Star:
		p.advance()
		n := &ast.ExportAllDecl{}
		if p.atContextual("as") {
			p.advance()
			exported, ok := p.parseIdentRef()
			if !ok {
				return nil, false
			}
			n.Exported = exported
		}
		if !p.atContextual("from") {
			p.err(diag.SynExpectFromClause, "expected 'from' in export * declaration")
			return nil, false
		}
		p.advance()
		src, ok := p.parseModuleSpecifier()
		if !ok {
			return nil, false
		}
		n.Source = src
		p.parseImportAttributes()
		n.Span = p.spanFrom(expTok.Span)
		p.semicolon("export declaration")
		return n, true

	case token.KwDefault:
		p.advance()
		n := &ast.ExportDefaultDecl{}
		switch {
		case p.at(token.KwFunction):
			decl, ok := p.parseExportDefaultFunc(false)
			if !ok {
				return nil, false
			}
			n.Decl = decl
		case p.atContextual("async"):
			st := p.lx.State()
			p.advance()
			if p.at(token.KwFunction) && !p.lx.Peek().NewlineBefore() {
				decl, ok := p.parseExportDefaultFunc(true)
				if !ok {
					return nil, false
				}
				n.Decl = decl
				break
			}
			p.lx.Restore(st)
			expr, ok := p.parseAssign()
			if !ok {
				return nil, false
			}
			n.Decl = expr
			p.semicolon("export default")
		case p.at(token.KwClass):
			decl, ok := p.parseExportDefaultClass()
			if !ok {
				return nil, false
			}
			n.Decl = decl
		case p.opts.TypeScript && p.atContextual("abstract"):
			st := p.lx.State()
			absTok := p.advance()
			if p.at(token.KwClass) {
				decl, ok := p.parseClassDecl(absTok.Span, false, true)
				if !ok {
					return nil, false
				}
				n.Decl = decl
			} else {
				p.lx.Restore(st)
				expr, ok := p.parseAssign()
				if !ok {
					return nil, false
				}
				n.Decl = expr
				p.semicolon("export default")
			}
		default:
			expr, ok := p.parseAssign()
			if !ok {
				return nil, false
			}
			n.Decl = expr
			p.semicolon("export default")
		}
		n.Span = p.spanFrom(expTok.Span)
		return n, true

	case token.LBrace:
		return p.parseExportClause(expTok, false)

	case token.KwVar, token.KwConst, token.KwLet, token.KwFunction, token.KwClass:
		decl, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		return &ast.ExportNamedDecl{Span: p.spanFrom(expTok.Span), Decl: decl}, true

	case token.Ident:
		text := p.lx.Peek().Text
		if p.opts.TypeScript && text == "type" {
			st := p.lx.State()
			p.advance()
			if p.at(token.LBrace) {
				return p.parseExportClause(expTok, true)
			}
			p.lx.Restore(st)
		}
		switch text {
		case "async", "interface", "type", "enum", "namespace", "module", "declare", "abstract":
			decl, ok := p.parseStatement()
			if !ok {
				return nil, false
			}
			return &ast.ExportNamedDecl{Span: p.spanFrom(expTok.Span), Decl: decl}, true
		}

	case token.Assign:
		// TS export assignment: export = expr
		if p.opts.TypeScript {
			p.advance()
			expr, ok := p.parseAssign()
			if !ok {
				return nil, false
			}
			p.semicolon("export assignment")
			return &ast.ExportDefaultDecl{Span: p.spanFrom(expTok.Span), Decl: expr}, true
		}
	}

	p.err(diag.SynExpectExportTarget, "expected declaration or export clause after 'export'")
	return nil, false
}

func (p *Parser) parseExportDefaultFunc(async bool) (ast.Stmt, bool) {
	fnTok := p.lx.Peek()
	p.advance() // function
	generator := false
	if p.at(token.Star) {
		p.advance()
		generator = true
	}
	decl := &ast.FuncDecl{}
	if p.at(token.Ident) {
		tok := p.advance()
		decl.ID = &ast.Ident{Span: tok.Span, Name: tok.Text}
	}
	fn, ok := p.parseFunctionRest(fnTok.Span, async, generator)
	if !ok {
		return nil, false
	}
	decl.Fn = fn
	decl.Span = fn.Span
	return decl, true
}

func (p *Parser) parseExportDefaultClass() (ast.Stmt, bool) {
	classTok := p.advance()
	decl := &ast.ClassDecl{}
	if p.at(token.Ident) {
		tok := p.advance()
		decl.ID = &ast.Ident{Span: tok.Span, Name: tok.Text}
	}
	cls, ok := p.parseClassRest(classTok.Span, false)
	if !ok {
		return nil, false
	}
	decl.Class = cls
	decl.Span = cls.Span
	return decl, true
}

// parseExportClause parses "export { ... }" with an optional re-export
// source.
func (p *Parser) parseExportClause(expTok token.Token, typeOnly bool) (ast.Stmt, bool) {
	p.advance() // '{'
	n := &ast.ExportNamedDecl{TypeOnly: typeOnly}

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		start := p.lx.Peek().Span
		spec := &ast.ExportSpec{}

		var local ast.Expr
		switch {
		case p.at(token.StringLit):
			tok := p.advance()
			local = &ast.StringLit{Span: tok.Span, Value: lexer.Unquote(tok.Text), Raw: tok.Text}
		case p.lx.Peek().IsIdentLike():
			tok := p.advance()
			local = &ast.Ident{Span: tok.Span, Name: tok.Text}
		default:
			p.err(diag.SynExpectExportTarget, "expected export name")
			return nil, false
		}
		spec.Local = local

		if p.atContextual("as") {
			p.advance()
			tok := p.lx.Peek()
			switch {
			case tok.Kind == token.StringLit:
				p.advance()
				spec.Exported = &ast.StringLit{Span: tok.Span, Value: lexer.Unquote(tok.Text), Raw: tok.Text}
			case tok.IsIdentLike():
				p.advance()
				spec.Exported = &ast.Ident{Span: tok.Span, Name: tok.Text}
			default:
				p.err(diag.SynExpectExportTarget, "expected exported name after 'as'")
				return nil, false
			}
		}
		spec.Span = p.spanFrom(start)
		n.Specifiers = append(n.Specifiers, spec)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close export clause")

	if p.atContextual("from") {
		p.advance()
		src, ok := p.parseModuleSpecifier()
		if !ok {
			return nil, false
		}
		n.Source = src
		p.parseImportAttributes()
	}
	n.Span = p.spanFrom(expTok.Span)
	p.semicolon("export declaration")
	return n, true
}
