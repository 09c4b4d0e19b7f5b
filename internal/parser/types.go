package parser

import (
	"strings"

	"ecmaparse/internal/ast"
	"ecmaparse/internal/diag"
	"ecmaparse/internal/lexer"
	"ecmaparse/internal/token"
)

// parseTypeAnnotation consumes ': Type'. In JavaScript mode the annotation
// is still parsed for recovery, but flagged.
func (p *Parser) parseTypeAnnotation() (ast.TSType, bool) {
	if !p.opts.TypeScript {
		p.err(diag.SynTypeSyntaxDisabled, "type annotations require the TypeScript syntax")
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectType, "expected ':' before type"); !ok {
		return nil, false
	}
	return p.parseType()
}

// parseType parses a full type, conditional types included.
func (p *Parser) parseType() (ast.TSType, bool) {
	t, ok := p.parseNonConditionalType()
	if !ok {
		return nil, false
	}
	if !p.at(token.KwExtends) {
		return t, true
	}
	p.advance()
	ext, ok := p.parseNonConditionalType()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Question, diag.SynExpectType, "expected '?' in conditional type"); !ok {
		return nil, false
	}
	tru, ok := p.parseType()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectType, "expected ':' in conditional type"); !ok {
		return nil, false
	}
	fls, ok := p.parseType()
	if !ok {
		return nil, false
	}
	return &ast.TSConditionalType{
		Span:    t.Pos().Cover(fls.Pos()),
		Check:   t,
		Extends: ext,
		True:    tru,
		False:   fls,
	}, true
}

func (p *Parser) parseNonConditionalType() (ast.TSType, bool) {
	switch p.lx.Peek().Kind {
	case token.KwNew:
		return p.parseFuncType()
	case token.Lt:
		return p.parseFuncType()
	case token.LParen:
		// '(' opens either a function type or a parenthesized type; a
		// silent scan for ') =>' settles it before committing
		if p.funcTypeAhead() {
			return p.parseFuncType()
		}
	}
	return p.parseUnionType()
}

// funcTypeAhead reports whether a '(' starts a function type. The scan
// parses the parameter list silently, checks for '=>' and always rewinds.
func (p *Parser) funcTypeAhead() bool {
	isFunc := false
	speculate(p, func() (struct{}, bool) {
		if _, ok := p.parseParams(paramFlags{}); !ok {
			return struct{}{}, false
		}
		isFunc = p.at(token.Arrow)
		return struct{}{}, false // rewind either way, decision only
	})
	return isFunc
}

func (p *Parser) parseFuncType() (ast.TSType, bool) {
	start := p.lx.Peek().Span
	n := &ast.TSFuncType{}

	if p.at(token.KwNew) {
		p.advance()
	}
	if p.at(token.Lt) {
		tps, ok := p.parseTypeParams()
		if !ok {
			return nil, false
		}
		n.TypeParams = tps
	}
	params, ok := p.parseParams(paramFlags{})
	if !ok {
		return nil, false
	}
	n.Params = params
	if _, ok := p.expect(token.Arrow, diag.SynExpectType, "expected '=>' in function type"); !ok {
		return nil, false
	}
	ret, ok := p.parseReturnType()
	if !ok {
		return nil, false
	}
	n.ReturnType = ret
	n.Span = p.spanFrom(start)
	return n, true
}

// parseReturnType handles type predicates in addition to ordinary types:
// "x is T", "asserts x", "asserts x is T".
func (p *Parser) parseReturnType() (ast.TSType, bool) {
	if !p.opts.TypeScript {
		// reached from the JS recovery path
		return p.parseType()
	}

	if p.atContextual("asserts") {
		st := p.lx.State()
		assertsTok := p.advance()
		if p.at(token.Ident) || p.at(token.KwThis) {
			nameTok := p.advance()
			pred := &ast.TSTypePredicate{Asserts: true, Param: nameTok.Text}
			if p.atContextual("is") {
				p.advance()
				t, ok := p.parseType()
				if !ok {
					return nil, false
				}
				pred.TypeAnn = t
			}
			pred.Span = p.spanFrom(assertsTok.Span)
			return pred, true
		}
		p.lx.Restore(st)
	}

	if p.at(token.Ident) || p.at(token.KwThis) {
		st := p.lx.State()
		nameTok := p.advance()
		if p.atContextual("is") {
			p.advance()
			t, ok := p.parseType()
			if !ok {
				return nil, false
			}
			return &ast.TSTypePredicate{
				Span:    p.spanFrom(nameTok.Span),
				Param:   nameTok.Text,
				TypeAnn: t,
			}, true
		}
		p.lx.Restore(st)
	}
	return p.parseType()
}

func (p *Parser) parseUnionType() (ast.TSType, bool) {
	if p.at(token.Pipe) {
		p.advance() // leading '|' is allowed
	}
	first, ok := p.parseIntersectionType()
	if !ok {
		return nil, false
	}
	if !p.at(token.Pipe) {
		return first, true
	}
	types := []ast.TSType{first}
	for p.at(token.Pipe) {
		p.advance()
		t, ok := p.parseIntersectionType()
		if !ok {
			return nil, false
		}
		types = append(types, t)
	}
	return &ast.TSUnion{Span: first.Pos().Cover(p.lastSpan), Types: types}, true
}

func (p *Parser) parseIntersectionType() (ast.TSType, bool) {
	if p.at(token.Amp) {
		p.advance()
	}
	first, ok := p.parsePostfixType()
	if !ok {
		return nil, false
	}
	if !p.at(token.Amp) {
		return first, true
	}
	types := []ast.TSType{first}
	for p.at(token.Amp) {
		p.advance()
		t, ok := p.parsePostfixType()
		if !ok {
			return nil, false
		}
		types = append(types, t)
	}
	return &ast.TSIntersection{Span: first.Pos().Cover(p.lastSpan), Types: types}, true
}

// parsePostfixType parses array and indexed-access suffixes: T[], T[K].
func (p *Parser) parsePostfixType() (ast.TSType, bool) {
	t, ok := p.parsePrimaryType()
	if !ok {
		return nil, false
	}
	for p.at(token.LBracket) && !p.lx.Peek().NewlineBefore() {
		p.advance()
		if p.at(token.RBracket) {
			rb := p.advance()
			t = &ast.TSArrayType{Span: t.Pos().Cover(rb.Span), Elem: t}
			continue
		}
		idx, ok := p.parseType()
		if !ok {
			return nil, false
		}
		p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' in indexed access type")
		t = &ast.TSIndexedAccess{Span: p.spanFrom(t.Pos()), Obj: t, Index: idx}
	}
	return t, true
}

func (p *Parser) parsePrimaryType() (ast.TSType, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		switch tok.Text {
		case "keyof", "unique", "infer":
			p.advance()
			inner, ok := p.parsePostfixType()
			if !ok {
				return nil, false
			}
			return &ast.TSTypeOperator{Span: p.spanFrom(tok.Span), Op: tok.Text, TypeAnn: inner}, true
		case "readonly":
			p.advance()
			inner, ok := p.parsePostfixType()
			if !ok {
				return nil, false
			}
			return &ast.TSTypeOperator{Span: p.spanFrom(tok.Span), Op: "readonly", TypeAnn: inner}, true
		}
		return p.parseTypeRef()

	case token.KwThis, token.KwNull, token.KwVoid:
		p.advance()
		return &ast.TSTypeRef{Span: tok.Span, Name: tok.Text}, true

	case token.KwTypeof:
		p.advance()
		inner, ok := p.parseTypeRef()
		if !ok {
			return nil, false
		}
		return &ast.TSTypeOperator{Span: p.spanFrom(tok.Span), Op: "typeof", TypeAnn: inner}, true

	case token.KwTrue, token.KwFalse:
		p.advance()
		return &ast.TSLiteralType{
			Span: tok.Span,
			Lit:  &ast.BoolLit{Span: tok.Span, Value: tok.Kind == token.KwTrue},
		}, true

	case token.StringLit:
		p.advance()
		return &ast.TSLiteralType{
			Span: tok.Span,
			Lit:  &ast.StringLit{Span: tok.Span, Value: lexer.Unquote(tok.Text), Raw: tok.Text},
		}, true

	case token.NumberLit:
		p.advance()
		return &ast.TSLiteralType{
			Span: tok.Span,
			Lit:  &ast.NumberLit{Span: tok.Span, Value: numberValue(tok.Text), Raw: tok.Text},
		}, true

	case token.BigIntLit:
		p.advance()
		return &ast.TSLiteralType{
			Span: tok.Span,
			Lit:  &ast.BigIntLit{Span: tok.Span, Raw: tok.Text},
		}, true

	case token.Minus:
		p.advance()
		num, ok := p.expect(token.NumberLit, diag.SynExpectType, "expected number after '-' in type")
		if !ok {
			return nil, false
		}
		return &ast.TSLiteralType{
			Span: p.spanFrom(tok.Span),
			Lit: &ast.UnaryExpr{
				Span: p.spanFrom(tok.Span),
				Op:   "-",
				Arg:  &ast.NumberLit{Span: num.Span, Value: numberValue(num.Text), Raw: num.Text},
			},
		}, true

	case token.TemplateNoSub, token.TemplateHead:
		lit, ok := p.parseTemplate()
		if !ok {
			return nil, false
		}
		return &ast.TSLiteralType{Span: lit.Span, Lit: lit}, true

	case token.LBrace:
		return p.parseTypeLit()

	case token.LBracket:
		return p.parseTupleType()

	case token.LParen:
		p.advance()
		inner, ok := p.parseType()
		if !ok {
			return nil, false
		}
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' in parenthesized type")
		return inner, true

	case token.KwImport:
		return p.parseImportType()
	}

	p.err(diag.SynExpectType, "expected type, got "+tok.Kind.String())
	return nil, false
}

// parseTypeRef parses a dotted type name with optional type arguments.
func (p *Parser) parseTypeRef() (ast.TSType, bool) {
	first, ok := p.parseIdentName()
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
	ref := &ast.TSTypeRef{Span: p.spanFrom(first.Span), Name: name}
	if p.at(token.Lt) {
		args, ok := p.parseTypeArgs()
		if !ok {
			return nil, false
		}
		ref.TypeArgs = args
		ref.Span = p.spanFrom(first.Span)
	}
	return ref, true
}

// parseImportType parses import("m").A.B<T>, rendered as a type reference
// whose name keeps the import specifier.
func (p *Parser) parseImportType() (ast.TSType, bool) {
	impTok := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynExpectType, "expected '(' in import type"); !ok {
		return nil, false
	}
	src, ok := p.parseModuleSpecifier()
	if !ok {
		return nil, false
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' in import type")

	var sb strings.Builder
	sb.WriteString("import(")
	sb.WriteString(src.Raw)
	sb.WriteString(")")
	for p.at(token.Dot) {
		p.advance()
		part, ok := p.parseIdentName()
		if !ok {
			return nil, false
		}
		sb.WriteString(".")
		sb.WriteString(part.Name)
	}
	ref := &ast.TSTypeRef{Span: p.spanFrom(impTok.Span), Name: sb.String()}
	if p.at(token.Lt) {
		args, ok := p.parseTypeArgs()
		if !ok {
			return nil, false
		}
		ref.TypeArgs = args
		ref.Span = p.spanFrom(impTok.Span)
	}
	return ref, true
}

func (p *Parser) parseTupleType() (ast.TSType, bool) {
	lb := p.advance()
	n := &ast.TSTupleType{}
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		// labeled member: name?: T, the label is dropped
		if p.at(token.Ident) {
			if _, isLabeled := speculate(p, func() (struct{}, bool) {
				p.advance()
				if p.at(token.Question) {
					p.advance()
				}
				return struct{}{}, p.at(token.Colon)
			}); isLabeled {
				p.advance()
				p.expect(token.Colon, diag.SynExpectType, "expected ':' after tuple label")
			}
		}
		if p.at(token.DotDotDot) {
			dots := p.advance()
			inner, ok := p.parseType()
			if !ok {
				return nil, false
			}
			n.Elems = append(n.Elems, &ast.TSTypeOperator{
				Span:    p.spanFrom(dots.Span),
				Op:      "rest",
				TypeAnn: inner,
			})
		} else {
			t, ok := p.parseType()
			if !ok {
				return nil, false
			}
			n.Elems = append(n.Elems, t)
		}
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close tuple type")
	n.Span = p.spanFrom(lb.Span)
	return n, true
}

func (p *Parser) parseTypeLit() (ast.TSType, bool) {
	lb := p.advance()
	members, ok := p.parseTypeMembers(token.RBrace)
	if !ok {
		return nil, false
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close object type")
	return &ast.TSTypeLit{Span: p.spanFrom(lb.Span), Members: members}, true
}

// parseTypeParams parses <T extends C = D, ...> at a declaration site.
func (p *Parser) parseTypeParams() ([]*ast.TSTypeParam, bool) {
	if _, ok := p.expect(token.Lt, diag.SynExpectTypeParam, "expected '<' to open type parameters"); !ok {
		return nil, false
	}
	params := []*ast.TSTypeParam{}
	for !p.atGtLike() && !p.at(token.EOF) {
		start := p.lx.Peek().Span
		// variance annotations and 'const' modifiers are consumed and
		// dropped
		for p.atOr(token.KwIn, token.KwConst) || p.atContextual("out") {
			p.advance()
		}
		nameTok, ok := p.expect(token.Ident, diag.SynExpectTypeParam, "expected type parameter name")
		if !ok {
			return nil, false
		}
		tp := &ast.TSTypeParam{Name: nameTok.Text}
		if p.at(token.KwExtends) {
			p.advance()
			c, ok := p.parseType()
			if !ok {
				return nil, false
			}
			tp.Constraint = c
		}
		if p.at(token.Assign) {
			p.advance()
			d, ok := p.parseType()
			if !ok {
				return nil, false
			}
			tp.Default = d
		}
		tp.Span = p.spanFrom(start)
		params = append(params, tp)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if !p.expectGt() {
		return params, false
	}
	if len(params) == 0 {
		p.err(diag.SynExpectTypeParam, "type parameter list cannot be empty")
	}
	return params, true
}

// parseTypeArgs parses <T, U> at a use site.
func (p *Parser) parseTypeArgs() ([]ast.TSType, bool) {
	if _, ok := p.expect(token.Lt, diag.SynExpectType, "expected '<' to open type arguments"); !ok {
		return nil, false
	}
	args := []ast.TSType{}
	for !p.atGtLike() && !p.at(token.EOF) {
		t, ok := p.parseType()
		if !ok {
			return nil, false
		}
		args = append(args, t)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if !p.expectGt() {
		return args, false
	}
	return args, true
}

// atGtLike reports whether the next token begins with '>': nested generic
// closers lex as shifts and compound operators.
func (p *Parser) atGtLike() bool {
	switch p.lx.Peek().Kind {
	case token.Gt, token.Shr, token.UShr, token.GtEq, token.ShrAssign, token.UShrAssign:
		return true
	default:
		return false
	}
}

// expectGt consumes one '>' worth of the next token, splitting compound
// operators like '>>' so that nested generics close one level at a time.
func (p *Parser) expectGt() bool {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Gt:
		p.advance()
		return true
	case token.Shr, token.UShr, token.GtEq, token.ShrAssign, token.UShrAssign:
		gt := p.lx.SplitGt(tok)
		p.lastSpan = gt.Span
		return true
	}
	p.err(diag.SynExpectType, "expected '>' to close type argument list")
	return false
}
