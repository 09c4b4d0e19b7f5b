package parser

import (
	"ecmaparse/internal/ast"
	"ecmaparse/internal/diag"
	"ecmaparse/internal/token"
)

// parseForStmt disambiguates the three for-statement flavors. The header is
// parsed with 'in' disabled as a binary operator so that "for (x in y)"
// resolves to for-in rather than a containing expression.
func (p *Parser) parseForStmt() (ast.Stmt, bool) {
	forTok := p.advance()

	isAwait := false
	if p.at(token.KwAwait) {
		p.advance()
		isAwait = true
	}
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'for'"); !ok {
		return nil, false
	}

	// empty init
	if p.at(token.Semicolon) {
		p.advance()
		return p.parseForClassic(forTok, nil)
	}

	if p.atOr(token.KwVar, token.KwLet, token.KwConst) {
		kindTok := p.advance()
		pat, ok := p.parseBindingPatWithType()
		if !ok {
			return nil, false
		}
		firstDecl := &ast.VarDeclarator{Span: pat.Pos(), ID: pat}
		decl := &ast.VarDecl{
			Span:  kindTok.Span.Cover(pat.Pos()),
			Kind:  kindTok.Text,
			Decls: []*ast.VarDeclarator{firstDecl},
		}

		switch {
		case p.at(token.KwIn):
			p.advance()
			return p.parseForInOf(forTok, decl, false, isAwait)
		case p.atContextual("of"):
			p.advance()
			return p.parseForInOf(forTok, decl, true, isAwait)
		}

		// classic for with declarations
		if p.at(token.Assign) {
			p.advance()
			p.noIn = true
			init, ok := p.parseAssign()
			p.noIn = false
			if !ok {
				return nil, false
			}
			firstDecl.Init = init
			firstDecl.Span = p.spanFrom(firstDecl.Span)
		}
		for p.at(token.Comma) {
			p.advance()
			d, ok := p.parseVarDeclarator()
			if !ok {
				return nil, false
			}
			decl.Decls = append(decl.Decls, d)
		}
		decl.Span = p.spanFrom(kindTok.Span)
		if _, ok := p.expect(token.Semicolon, diag.SynBadForHeader, "expected ';' after for-loop initializer"); !ok {
			return nil, false
		}
		return p.parseForClassic(forTok, decl)
	}

	p.noIn = true
	init, ok := p.parseExpression()
	p.noIn = false
	if !ok {
		return nil, false
	}

	switch {
	case p.at(token.KwIn):
		p.advance()
		return p.parseForInOf(forTok, forHeadTarget(init), false, isAwait)
	case p.atContextual("of"):
		p.advance()
		return p.parseForInOf(forTok, forHeadTarget(init), true, isAwait)
	}
	if _, ok := p.expect(token.Semicolon, diag.SynBadForHeader, "expected ';' after for-loop initializer"); !ok {
		return nil, false
	}
	return p.parseForClassic(forTok, init)
}

// forHeadTarget converts a destructuring literal on the left of in/of into
// its pattern form; anything else stays as parsed.
func forHeadTarget(e ast.Expr) ast.Node {
	switch e.(type) {
	case *ast.ArrayLit, *ast.ObjectLit:
		if pat, ok := exprToPat(e); ok {
			return pat
		}
	}
	return e
}

func (p *Parser) parseForInOf(forTok token.Token, left ast.Node, isOf, isAwait bool) (ast.Stmt, bool) {
	var right ast.Expr
	var ok bool
	if isOf {
		right, ok = p.parseAssign()
	} else {
		right, ok = p.parseExpression()
	}
	if !ok {
		return nil, false
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close for-loop header")
	body, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	sp := p.spanFrom(forTok.Span)
	if isOf {
		return &ast.ForOfStmt{Span: sp, Await: isAwait, Left: left, Right: right, Body: body}, true
	}
	if isAwait {
		p.report(diag.SynBadForHeader, diag.SevError, forTok.Span, "'for await' requires a for-of loop")
	}
	return &ast.ForInStmt{Span: sp, Left: left, Right: right, Body: body}, true
}

// parseForClassic continues after the first ';' of a three-clause for.
func (p *Parser) parseForClassic(forTok token.Token, init ast.Node) (ast.Stmt, bool) {
	n := &ast.ForStmt{Init: init}

	if !p.at(token.Semicolon) {
		test, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		n.Test = test
	}
	if _, ok := p.expect(token.Semicolon, diag.SynBadForHeader, "expected ';' after for-loop condition"); !ok {
		return nil, false
	}
	if !p.at(token.RParen) {
		update, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		n.Update = update
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close for-loop header")

	body, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	n.Body = body
	n.Span = p.spanFrom(forTok.Span)
	return n, true
}
