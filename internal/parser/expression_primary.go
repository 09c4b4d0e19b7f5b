package parser

import (
	"strconv"
	"strings"

	"ecmaparse/internal/ast"
	"ecmaparse/internal/diag"
	"ecmaparse/internal/lexer"
	"ecmaparse/internal/token"
)

func (p *Parser) parsePrimary() (ast.Expr, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		if tok.Text == "async" {
			st := p.lx.State()
			asyncTok := p.advance()
			if p.at(token.KwFunction) && !p.lx.Peek().NewlineBefore() {
				return p.parseFuncExpr(asyncTok.Span, true)
			}
			p.lx.Restore(st)
		}
		p.advance()
		return &ast.Ident{Span: tok.Span, Name: tok.Text}, true

	case token.KwYield, token.KwAwait, token.KwLet:
		// tolerated as plain identifiers outside their special contexts
		p.advance()
		return &ast.Ident{Span: tok.Span, Name: tok.Text}, true

	case token.KwThis:
		p.advance()
		return &ast.ThisExpr{Span: tok.Span}, true

	case token.KwSuper:
		p.advance()
		return &ast.SuperExpr{Span: tok.Span}, true

	case token.KwTrue, token.KwFalse:
		p.advance()
		return &ast.BoolLit{Span: tok.Span, Value: tok.Kind == token.KwTrue}, true

	case token.KwNull:
		p.advance()
		return &ast.NullLit{Span: tok.Span}, true

	case token.NumberLit:
		p.advance()
		return &ast.NumberLit{Span: tok.Span, Value: numberValue(tok.Text), Raw: tok.Text}, true

	case token.BigIntLit:
		p.advance()
		return &ast.BigIntLit{Span: tok.Span, Raw: tok.Text}, true

	case token.StringLit:
		p.advance()
		return &ast.StringLit{Span: tok.Span, Value: lexer.Unquote(tok.Text), Raw: tok.Text}, true

	case token.RegexLit:
		p.advance()
		pattern, flags := splitRegex(tok.Text)
		return &ast.RegexLit{Span: tok.Span, Pattern: pattern, Flags: flags}, true

	case token.TemplateNoSub, token.TemplateHead:
		return p.parseTemplateExpr()

	case token.LParen:
		p.advance()
		savedNoIn := p.noIn
		p.noIn = false
		inner, ok := p.parseExpression()
		p.noIn = savedNoIn
		if !ok {
			return nil, false
		}
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
		return inner, true

	case token.LBracket:
		return p.parseArrayLit()

	case token.LBrace:
		return p.parseObjectLit()

	case token.KwFunction:
		return p.parseFuncExpr(tok.Span, false)

	case token.KwClass:
		return p.parseClassExpr()

	case token.KwImport:
		return p.parseImportExprOrMeta()

	case token.PrivateIdent:
		// valid only as "#x in obj", the binary ladder takes it from here
		p.advance()
		return &ast.PrivateName{Span: tok.Span, Name: strings.TrimPrefix(tok.Text, "#")}, true

	case token.At:
		// decorator on a class expression
		for p.at(token.At) {
			p.advance()
			if _, ok := p.parseCallMember(); !ok {
				return nil, false
			}
		}
		if p.at(token.KwClass) {
			return p.parseClassExpr()
		}
		p.err(diag.SynExpectExpression, "expected class after decorators")
		return nil, false
	}

	p.err(diag.SynExpectExpression, "expected expression, got "+tok.Kind.String())
	return nil, false
}

// parseImportExprOrMeta handles import(...) and import.meta in expression
// position; the 'import' keyword itself is still unconsumed.
func (p *Parser) parseImportExprOrMeta() (ast.Expr, bool) {
	impTok := p.advance()
	if p.at(token.Dot) {
		p.advance()
		id, ok := p.parseIdentName()
		if !ok {
			return nil, false
		}
		return &ast.MetaProp{Span: p.spanFrom(impTok.Span), Meta: "import", Prop: id.Name}, true
	}
	if !p.at(token.LParen) {
		p.err(diag.SynUnexpectedToken, "expected '(' or '.' after 'import' in expression position")
		return nil, false
	}
	if !p.opts.DynamicImport {
		p.report(diag.SynDynamicImportDisabled, diag.SevError, impTok.Span,
			"dynamic import is not enabled for this parse")
	}
	args, ok := p.parseArguments()
	if !ok {
		return nil, false
	}
	return &ast.ImportExpr{Span: p.spanFrom(impTok.Span), Args: args}, true
}

func (p *Parser) parseArrayLit() (ast.Expr, bool) {
	lb := p.advance()
	elems := []ast.Expr{}
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if p.at(token.Comma) {
			p.advance()
			elems = append(elems, nil) // hole
			continue
		}
		var elem ast.Expr
		if p.at(token.DotDotDot) {
			dots := p.advance()
			arg, ok := p.parseAssign()
			if !ok {
				return nil, false
			}
			elem = &ast.SpreadElement{Span: dots.Span.Cover(arg.Pos()), Arg: arg}
		} else {
			var ok bool
			elem, ok = p.parseAssign()
			if !ok {
				return nil, false
			}
		}
		elems = append(elems, elem)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close array literal")
	return &ast.ArrayLit{Span: p.spanFrom(lb.Span), Elements: elems}, true
}

// parseTemplateExpr parses a template literal; substitutions hand the '}'
// back to the lexer so it can rescan the continuation chunk.
func (p *Parser) parseTemplateExpr() (ast.Expr, bool) {
	return p.parseTemplate()
}

func (p *Parser) parseTemplate() (*ast.TemplateLiteral, bool) {
	head := p.advance()
	lit := &ast.TemplateLiteral{Span: head.Span}

	if head.Kind == token.TemplateNoSub {
		lit.Quasis = []*ast.TemplateElement{templateElem(head, true)}
		return lit, true
	}

	lit.Quasis = []*ast.TemplateElement{templateElem(head, false)}
	for {
		expr, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		lit.Exprs = append(lit.Exprs, expr)
		if !p.at(token.RBrace) {
			p.err(diag.SynTemplateExpected, "expected '}' to close template substitution")
			return nil, false
		}
		cont := p.lx.ScanTemplateContinuation(p.lx.Peek())
		p.lastSpan = cont.Span
		tail := cont.Kind == token.TemplateTail
		lit.Quasis = append(lit.Quasis, templateElem(cont, tail))
		if tail || cont.Kind == token.Invalid {
			break
		}
	}
	lit.Span = p.spanFrom(head.Span)
	return lit, true
}

func templateElem(tok token.Token, tail bool) *ast.TemplateElement {
	raw := lexer.TemplateCooked(tok.Kind, tok.Text)
	return &ast.TemplateElement{Span: tok.Span, Raw: raw, Cooked: raw, Tail: tail}
}

// numberValue decodes a numeric literal the way the runtime would; a value
// the lexer already flagged decodes to 0.
func numberValue(raw string) float64 {
	s := strings.ReplaceAll(raw, "_", "")
	if len(s) > 2 && s[0] == '0' {
		var base int
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if v, err := strconv.ParseUint(s[2:], base, 64); err == nil {
				return float64(v)
			}
			return 0
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// splitRegex separates /pattern/flags at the last slash.
func splitRegex(raw string) (pattern, flags string) {
	idx := strings.LastIndexByte(raw, '/')
	if idx <= 0 {
		return raw, ""
	}
	return raw[1:idx], raw[idx+1:]
}
