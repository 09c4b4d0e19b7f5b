package parser

import (
	"ecmaparse/internal/ast"
	"ecmaparse/internal/diag"
	"ecmaparse/internal/lexer"
	"ecmaparse/internal/source"
	"ecmaparse/internal/token"
)

// parseInterfaceDecl parses an interface; the 'interface' word is consumed
// and an identifier is known to follow.
func (p *Parser) parseInterfaceDecl(start source.Span, declare bool) (ast.Stmt, bool) {
	id, ok := p.parseIdentRef()
	if !ok {
		return nil, false
	}
	n := &ast.TSInterfaceDecl{ID: id, Declare: declare}

	if p.at(token.Lt) {
		tps, ok := p.parseTypeParams()
		if !ok {
			return nil, false
		}
		n.TypeParams = tps
	}
	if p.at(token.KwExtends) {
		p.advance()
		for {
			t, ok := p.parseTypeRef()
			if !ok {
				return nil, false
			}
			n.Extends = append(n.Extends, t)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, ok := p.expect(token.LBrace, diag.SynExpectInterfaceBody, "expected '{' to open interface body"); !ok {
		return nil, false
	}
	members, ok := p.parseTypeMembers(token.RBrace)
	if !ok {
		return nil, false
	}
	n.Body = members
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close interface body")
	n.Span = p.spanFrom(start)
	return n, true
}

// parseTypeAliasDecl parses "type X<...> = T;". The 'type' word is consumed
// and nameTok is the next token (not yet consumed).
func (p *Parser) parseTypeAliasDecl(start source.Span, nameTok token.Token, declare bool) (ast.Stmt, bool) {
	p.advance() // name
	n := &ast.TSTypeAliasDecl{
		ID:      &ast.Ident{Span: nameTok.Span, Name: nameTok.Text},
		Declare: declare,
	}
	if p.at(token.Lt) {
		tps, ok := p.parseTypeParams()
		if !ok {
			return nil, false
		}
		n.TypeParams = tps
	}
	if _, ok := p.expect(token.Assign, diag.SynExpectType, "expected '=' in type alias"); !ok {
		return nil, false
	}
	t, ok := p.parseType()
	if !ok {
		return nil, false
	}
	n.TypeAnn = t
	p.semicolon("type alias")
	n.Span = p.spanFrom(start)
	return n, true
}

// parseEnumDecl parses an enum body; the 'enum' word is consumed.
func (p *Parser) parseEnumDecl(start source.Span, isConst, declare bool) (ast.Stmt, bool) {
	id, ok := p.parseIdentRef()
	if !ok {
		return nil, false
	}
	n := &ast.TSEnumDecl{ID: id, Const: isConst, Declare: declare}

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open enum body"); !ok {
		return nil, false
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		memberStart := p.lx.Peek()
		var memberID ast.Expr
		switch {
		case memberStart.Kind == token.StringLit:
			p.advance()
			memberID = &ast.StringLit{
				Span:  memberStart.Span,
				Value: lexer.Unquote(memberStart.Text),
				Raw:   memberStart.Text,
			}
		case memberStart.IsIdentLike():
			p.advance()
			memberID = &ast.Ident{Span: memberStart.Span, Name: memberStart.Text}
		default:
			p.err(diag.SynExpectEnumMember, "expected enum member name")
			p.resyncStmt()
			continue
		}
		member := &ast.TSEnumMember{ID: memberID}
		if p.at(token.Assign) {
			p.advance()
			init, ok := p.parseAssign()
			if !ok {
				return nil, false
			}
			member.Init = init
		}
		member.Span = p.spanFrom(memberStart.Span)
		n.Members = append(n.Members, member)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close enum body")
	n.Span = p.spanFrom(start)
	return n, true
}

// parseModuleDecl parses "namespace A.B { ... }" or "module 'm' { ... }";
// the namespace/module word is consumed.
func (p *Parser) parseModuleDecl(start source.Span, declare bool) (ast.Stmt, bool) {
	n := &ast.TSModuleDecl{Declare: declare}

	if p.at(token.StringLit) {
		tok := p.advance()
		n.ID = &ast.StringLit{Span: tok.Span, Value: lexer.Unquote(tok.Text), Raw: tok.Text}
	} else {
		first, ok := p.parseIdentRef()
		if !ok {
			return nil, false
		}
		name := first.Name
		for p.at(token.Dot) {
			p.advance()
			part, ok := p.parseIdentName()
			if !ok {
				return nil, false
			}
			name += "." + part.Name
		}
		n.ID = &ast.Ident{Span: p.spanFrom(first.Span), Name: name}
	}

	// ambient "declare module 'm';" has no body
	if !p.at(token.LBrace) {
		p.semicolon("module declaration")
		n.Span = p.spanFrom(start)
		return n, true
	}

	p.advance() // '{'
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, ok := p.parseModuleItem()
		if ok && stmt != nil {
			n.Body = append(n.Body, stmt)
		}
		if !ok {
			p.resyncStmt()
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close namespace body")
	n.Span = p.spanFrom(start)
	return n, true
}

// parseDeclareBody parses what follows the 'declare' word. matched=false
// means the word was not a modifier here and the caller should rewind.
func (p *Parser) parseDeclareBody(start source.Span) (ast.Stmt, bool, bool) {
	tok := p.lx.Peek()
	if tok.NewlineBefore() {
		return nil, false, false
	}
	switch tok.Kind {
	case token.KwVar, token.KwLet:
		return withDeclare(p.parseVarStmt(true))
	case token.KwConst:
		st := p.lx.State()
		p.advance()
		if p.atContextual("enum") {
			p.advance()
			stmt, ok := p.parseEnumDecl(start, true, true)
			return stmt, ok, true
		}
		p.lx.Restore(st)
		return withDeclare(p.parseVarStmt(true))
	case token.KwFunction:
		stmt, ok := p.parseFuncDecl(start, false, true)
		return stmt, ok, true
	case token.KwClass:
		stmt, ok := p.parseClassDecl(start, true, false)
		return stmt, ok, true
	case token.Ident:
		switch tok.Text {
		case "interface":
			p.advance()
			stmt, ok := p.parseInterfaceDecl(start, true)
			return stmt, ok, true
		case "type":
			st := p.lx.State()
			p.advance()
			if p.at(token.Ident) {
				nameTok := p.lx.Peek()
				stmt, ok := p.parseTypeAliasDecl(start, nameTok, true)
				return stmt, ok, true
			}
			p.lx.Restore(st)
		case "enum":
			p.advance()
			stmt, ok := p.parseEnumDecl(start, false, true)
			return stmt, ok, true
		case "namespace", "module":
			p.advance()
			stmt, ok := p.parseModuleDecl(start, true)
			return stmt, ok, true
		case "global":
			// 'global' stays unconsumed: it doubles as the module name
			stmt, ok := p.parseModuleDecl(start, true)
			return stmt, ok, true
		case "abstract":
			st := p.lx.State()
			p.advance()
			if p.at(token.KwClass) {
				stmt, ok := p.parseClassDecl(start, true, true)
				return stmt, ok, true
			}
			p.lx.Restore(st)
		case "async":
			st := p.lx.State()
			p.advance()
			if p.at(token.KwFunction) {
				stmt, ok := p.parseFuncDecl(start, true, true)
				return stmt, ok, true
			}
			p.lx.Restore(st)
		}
	}
	return nil, false, false
}

func withDeclare(stmt ast.Stmt, ok bool) (ast.Stmt, bool, bool) {
	return stmt, ok, true
}
