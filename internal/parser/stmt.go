package parser

import (
	"ecmaparse/internal/ast"
	"ecmaparse/internal/diag"
	"ecmaparse/internal/token"
)

func (p *Parser) parseStatement() (ast.Stmt, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.LBrace:
		return p.parseBlockStmt()
	case token.Semicolon:
		p.advance()
		return &ast.EmptyStmt{Span: tok.Span}, true
	case token.KwDebugger:
		p.advance()
		p.semicolon("debugger")
		return &ast.DebuggerStmt{Span: tok.Span}, true
	case token.KwVar, token.KwLet:
		return p.parseVarStmt(false)
	case token.KwConst:
		if p.opts.TypeScript {
			st := p.lx.State()
			p.advance()
			if p.atContextual("enum") {
				p.advance()
				return p.parseEnumDecl(tok.Span, true, false)
			}
			p.lx.Restore(st)
		}
		return p.parseVarStmt(false)
	case token.KwFunction:
		return p.parseFuncDecl(tok.Span, false, false)
	case token.KwClass:
		return p.parseClassDecl(tok.Span, false, false)
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwDo:
		return p.parseDoWhileStmt()
	case token.KwSwitch:
		return p.parseSwitchStmt()
	case token.KwTry:
		return p.parseTryStmt()
	case token.KwThrow:
		return p.parseThrowStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwBreak, token.KwContinue:
		return p.parseBreakContinue()
	case token.KwImport, token.KwExport:
		// nested module syntax; parseModuleItem handles the rewind for
		// import expressions
		return p.parseModuleItem()
	case token.At:
		return p.parseDecoratedStmt()
	case token.Ident:
		return p.parseIdentStatement()
	}

	expr, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	p.semicolon("expression")
	return &ast.ExprStmt{Span: p.spanFrom(expr.Pos()), Expr: expr}, true
}

// parseIdentStatement disambiguates the statements that begin with an
// identifier: labels, async functions, the TypeScript declaration keywords,
// and plain expression statements.
func (p *Parser) parseIdentStatement() (ast.Stmt, bool) {
	tok := p.lx.Peek()

	switch tok.Text {
	case "async":
		st := p.lx.State()
		p.advance()
		if p.at(token.KwFunction) && !p.lx.Peek().NewlineBefore() {
			return p.parseFuncDecl(tok.Span, true, false)
		}
		p.lx.Restore(st)
	case "interface":
		if p.opts.TypeScript {
			st := p.lx.State()
			p.advance()
			if p.at(token.Ident) {
				return p.parseInterfaceDecl(tok.Span, false)
			}
			p.lx.Restore(st)
		}
	case "type":
		if p.opts.TypeScript {
			st := p.lx.State()
			p.advance()
			if p.at(token.Ident) {
				nameTok := p.lx.Peek()
				idSt := p.lx.State()
				p.advance()
				if p.at(token.Assign) || p.at(token.Lt) {
					p.lx.Restore(idSt)
					return p.parseTypeAliasDecl(tok.Span, nameTok, false)
				}
			}
			p.lx.Restore(st)
		}
	case "enum":
		if p.opts.TypeScript {
			st := p.lx.State()
			p.advance()
			if p.at(token.Ident) {
				return p.parseEnumDecl(tok.Span, false, false)
			}
			p.lx.Restore(st)
		}
	case "namespace", "module":
		if p.opts.TypeScript {
			st := p.lx.State()
			p.advance()
			if p.at(token.Ident) || p.at(token.StringLit) {
				return p.parseModuleDecl(tok.Span, false)
			}
			p.lx.Restore(st)
		}
	case "declare":
		if p.opts.TypeScript {
			st := p.lx.State()
			p.advance()
			if decl, ok, matched := p.parseDeclareBody(tok.Span); matched {
				return decl, ok
			}
			p.lx.Restore(st)
		}
	case "abstract":
		if p.opts.TypeScript {
			st := p.lx.State()
			p.advance()
			if p.at(token.KwClass) && !p.lx.Peek().NewlineBefore() {
				return p.parseClassDecl(tok.Span, false, true)
			}
			p.lx.Restore(st)
		}
	}

	// label?
	st := p.lx.State()
	idTok := p.advance()
	if p.at(token.Colon) {
		p.advance()
		body, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		return &ast.LabeledStmt{
			Span:  p.spanFrom(idTok.Span),
			Label: &ast.Ident{Span: idTok.Span, Name: idTok.Text},
			Body:  body,
		}, true
	}
	p.lx.Restore(st)

	expr, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	p.semicolon("expression")
	return &ast.ExprStmt{Span: p.spanFrom(expr.Pos()), Expr: expr}, true
}

// parseDecoratedStmt consumes leading decorators and requires a class
// declaration after them.
func (p *Parser) parseDecoratedStmt() (ast.Stmt, bool) {
	start := p.lx.Peek().Span
	for p.at(token.At) {
		p.advance()
		if _, ok := p.parseCallMember(); !ok {
			return nil, false
		}
	}
	abstract := false
	if p.opts.TypeScript && p.atContextual("abstract") {
		p.advance()
		abstract = true
	}
	if p.at(token.KwClass) {
		return p.parseClassDecl(start, false, abstract)
	}
	if p.at(token.KwExport) {
		return p.parseExportDecl()
	}
	p.err(diag.SynUnexpectedToken, "expected class declaration after decorators")
	return nil, false
}

func (p *Parser) parseBlockStmt() (ast.Stmt, bool) {
	return p.parseBlock()
}

func (p *Parser) parseBlock() (*ast.BlockStmt, bool) {
	lb, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")
	if !ok {
		return nil, false
	}
	body := []ast.Stmt{}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.lx.Peek()
		stmt, ok := p.parseStatement()
		if ok && stmt != nil {
			body = append(body, stmt)
		}
		if !ok {
			p.resyncStmt()
		}
		after := p.lx.Peek()
		if ok && after.Kind == before.Kind && after.Span == before.Span && !p.at(token.RBrace) && !p.at(token.EOF) {
			p.advance()
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block")
	return &ast.BlockStmt{Span: p.spanFrom(lb.Span), Body: body}, true
}

func (p *Parser) parseIfStmt() (ast.Stmt, bool) {
	ifTok := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'if'"); !ok {
		return nil, false
	}
	test, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after if condition")
	cons, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	n := &ast.IfStmt{Test: test, Cons: cons}
	if p.at(token.KwElse) {
		p.advance()
		alt, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		n.Alt = alt
	}
	n.Span = p.spanFrom(ifTok.Span)
	return n, true
}

func (p *Parser) parseWhileStmt() (ast.Stmt, bool) {
	whileTok := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'while'"); !ok {
		return nil, false
	}
	test, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after while condition")
	body, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	return &ast.WhileStmt{Span: p.spanFrom(whileTok.Span), Test: test, Body: body}, true
}

func (p *Parser) parseDoWhileStmt() (ast.Stmt, bool) {
	doTok := p.advance()
	body, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwWhile, diag.SynUnexpectedToken, "expected 'while' after do body"); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'while'"); !ok {
		return nil, false
	}
	test, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after do-while condition")
	// the trailing semicolon is always optional here
	if p.at(token.Semicolon) {
		p.advance()
	}
	return &ast.DoWhileStmt{Span: p.spanFrom(doTok.Span), Body: body, Test: test}, true
}

func (p *Parser) parseThrowStmt() (ast.Stmt, bool) {
	throwTok := p.advance()
	if p.lx.Peek().NewlineBefore() {
		p.err(diag.SynExpectExpression, "line break not allowed between 'throw' and its argument")
		return nil, false
	}
	arg, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	p.semicolon("throw statement")
	return &ast.ThrowStmt{Span: p.spanFrom(throwTok.Span), Arg: arg}, true
}

func (p *Parser) parseReturnStmt() (ast.Stmt, bool) {
	retTok := p.advance()
	n := &ast.ReturnStmt{Span: retTok.Span}
	if !p.canInsertSemicolon() && p.atExprStart() {
		arg, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		n.Arg = arg
	}
	p.semicolon("return statement")
	n.Span = p.spanFrom(retTok.Span)
	return n, true
}

func (p *Parser) parseBreakContinue() (ast.Stmt, bool) {
	tok := p.advance()
	var label *ast.Ident
	if p.at(token.Ident) && !p.lx.Peek().NewlineBefore() {
		labTok := p.advance()
		label = &ast.Ident{Span: labTok.Span, Name: labTok.Text}
	}
	what := "break"
	if tok.Kind == token.KwContinue {
		what = "continue"
	}
	p.semicolon(what)
	sp := p.spanFrom(tok.Span)
	if tok.Kind == token.KwBreak {
		return &ast.BreakStmt{Span: sp, Label: label}, true
	}
	return &ast.ContinueStmt{Span: sp, Label: label}, true
}

func (p *Parser) parseSwitchStmt() (ast.Stmt, bool) {
	swTok := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'switch'"); !ok {
		return nil, false
	}
	disc, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after switch discriminant")
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open switch body"); !ok {
		return nil, false
	}

	cases := []*ast.SwitchCase{}
	sawDefault := false
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		caseTok := p.lx.Peek()
		var test ast.Expr
		switch caseTok.Kind {
		case token.KwCase:
			p.advance()
			t, ok := p.parseExpression()
			if !ok {
				return nil, false
			}
			test = t
		case token.KwDefault:
			p.advance()
			if sawDefault {
				p.report(diag.SynDuplicateDefault, diag.SevError, caseTok.Span,
					"switch statement already has a default clause")
			}
			sawDefault = true
		default:
			p.err(diag.SynExpectCase, "expected 'case' or 'default' in switch body")
			p.resyncStmt()
			continue
		}
		p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after case clause")

		cons := []ast.Stmt{}
		for !p.atOr(token.KwCase, token.KwDefault, token.RBrace, token.EOF) {
			stmt, ok := p.parseStatement()
			if ok && stmt != nil {
				cons = append(cons, stmt)
			} else {
				p.resyncStmt()
			}
		}
		cases = append(cases, &ast.SwitchCase{
			Span: p.spanFrom(caseTok.Span),
			Test: test,
			Cons: cons,
		})
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close switch body")
	return &ast.SwitchStmt{Span: p.spanFrom(swTok.Span), Disc: disc, Cases: cases}, true
}

func (p *Parser) parseTryStmt() (ast.Stmt, bool) {
	tryTok := p.advance()
	block, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	n := &ast.TryStmt{Block: block}

	if p.at(token.KwCatch) {
		catchTok := p.advance()
		clause := &ast.CatchClause{}
		if p.at(token.LParen) {
			p.advance()
			param, ok := p.parseBindingPatWithType()
			if !ok {
				return nil, false
			}
			clause.Param = param
			p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after catch binding")
		}
		body, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		clause.Body = body
		clause.Span = p.spanFrom(catchTok.Span)
		n.Handler = clause
	}
	if p.at(token.KwFinally) {
		p.advance()
		fin, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		n.Finalizer = fin
	}
	if n.Handler == nil && n.Finalizer == nil {
		p.err(diag.SynExpectCatchOrFinally, "try statement needs a catch or finally clause")
	}
	n.Span = p.spanFrom(tryTok.Span)
	return n, true
}
