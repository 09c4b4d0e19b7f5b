package parser

import (
	"ecmaparse/internal/ast"
	"ecmaparse/internal/diag"
	"ecmaparse/internal/source"
	"ecmaparse/internal/token"
)

func (p *Parser) parseClassDecl(start source.Span, declare, abstract bool) (ast.Stmt, bool) {
	if _, ok := p.expect(token.KwClass, diag.SynUnexpectedToken, "expected 'class'"); !ok {
		return nil, false
	}
	id, ok := p.parseIdentRef()
	if !ok {
		return nil, false
	}
	cls, ok := p.parseClassRest(start, abstract)
	if !ok {
		return nil, false
	}
	return &ast.ClassDecl{
		Span:    p.spanFrom(start),
		ID:      id,
		Class:   cls,
		Declare: declare,
	}, true
}

func (p *Parser) parseClassExpr() (ast.Expr, bool) {
	classTok, ok := p.expect(token.KwClass, diag.SynUnexpectedToken, "expected 'class'")
	if !ok {
		return nil, false
	}
	n := &ast.ClassExpr{}
	if p.at(token.Ident) {
		tok := p.advance()
		n.ID = &ast.Ident{Span: tok.Span, Name: tok.Text}
	}
	cls, ok := p.parseClassRest(classTok.Span, false)
	if !ok {
		return nil, false
	}
	n.Class = cls
	n.Span = cls.Span
	return n, true
}

// parseClassRest parses everything after the class name: heritage clauses
// and the member body.
func (p *Parser) parseClassRest(start source.Span, abstract bool) (*ast.Class, bool) {
	cls := &ast.Class{Abstract: abstract}

	if p.opts.TypeScript && p.at(token.Lt) {
		tps, ok := p.parseTypeParams()
		if !ok {
			return nil, false
		}
		cls.TypeParams = tps
	}

	if p.at(token.KwExtends) {
		p.advance()
		super, ok := p.parseCallMember()
		if !ok {
			return nil, false
		}
		// the superclass expression tail already consumed <...> as type
		// arguments when they were followed by a call; a bare "extends
		// Base<T>" needs its own speculative scan
		if p.opts.TypeScript && p.at(token.Lt) {
			if args, ok := speculate(p, func() ([]ast.TSType, bool) {
				args, ok := p.parseTypeArgs()
				if !ok {
					return nil, false
				}
				if !p.atOr(token.LBrace, token.Ident) && !p.atContextual("implements") {
					return nil, false
				}
				return args, true
			}); ok {
				cls.SuperTypeArgs = args
			}
		}
		cls.SuperClass = super
	}

	if p.opts.TypeScript && p.atContextual("implements") {
		p.advance()
		for {
			t, ok := p.parseType()
			if !ok {
				return nil, false
			}
			cls.Implements = append(cls.Implements, t)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open class body"); !ok {
		return nil, false
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.at(token.Semicolon) {
			p.advance()
			continue
		}
		member, ok := p.parseClassMember()
		if ok && member != nil {
			cls.Body = append(cls.Body, member)
		}
		if !ok {
			p.resyncStmt()
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close class body")
	cls.Span = p.spanFrom(start)
	return cls, true
}

// classModifiers collects the (mostly TS) member modifiers in source order.
type classModifiers struct {
	static        bool
	accessibility string
	abstract      bool
	readonly      bool
	declare       bool
	async         bool
	generator     bool
	kind          string // "get" | "set" | ""
}

func (p *Parser) parseClassMember() (ast.ClassMember, bool) {
	start := p.lx.Peek().Span

	for p.at(token.At) {
		p.advance()
		if _, ok := p.parseCallMember(); !ok {
			return nil, false
		}
	}

	var mods classModifiers

	// "static { ... }" block
	if p.atContextual("static") {
		st := p.lx.State()
		p.advance()
		if p.at(token.LBrace) {
			body, ok := p.parseBlock()
			if !ok {
				return nil, false
			}
			return &ast.StaticBlock{Span: p.spanFrom(start), Body: body}, true
		}
		if p.atMemberStart() {
			mods.static = true
		} else {
			p.lx.Restore(st)
		}
	}

modifiers:
	for p.at(token.Ident) {
		tok := p.lx.Peek()
		switch tok.Text {
		case "public", "private", "protected":
			if !p.opts.TypeScript || !p.memberFollows() {
				break modifiers
			}
			p.advance()
			mods.accessibility = tok.Text
		case "abstract":
			if !p.opts.TypeScript || !p.memberFollows() {
				break modifiers
			}
			p.advance()
			mods.abstract = true
		case "readonly":
			if !p.opts.TypeScript || !p.memberFollows() {
				break modifiers
			}
			p.advance()
			mods.readonly = true
		case "declare":
			if !p.opts.TypeScript || !p.memberFollows() {
				break modifiers
			}
			p.advance()
			mods.declare = true
		case "override", "accessor":
			if !p.opts.TypeScript || !p.memberFollows() {
				break modifiers
			}
			p.advance()
		case "static":
			if !p.memberFollows() {
				break modifiers
			}
			p.advance()
			mods.static = true
		case "async":
			if p.lx.Peek().NewlineBefore() {
				break modifiers
			}
			if !p.memberFollows() && !p.starFollows() {
				break modifiers
			}
			p.advance()
			mods.async = true
		case "get", "set":
			if !p.memberFollows() {
				break modifiers
			}
			p.advance()
			mods.kind = tok.Text
		default:
			break modifiers
		}
	}

	if p.at(token.Star) {
		p.advance()
		mods.generator = true
	}

	key, computed, ok := p.parseClassKey()
	if !ok {
		return nil, false
	}

	optional := false
	if p.at(token.Question) {
		if !p.opts.TypeScript {
			p.err(diag.SynTypeSyntaxDisabled, "optional members require the TypeScript syntax")
		}
		p.advance()
		optional = true
	}

	if p.at(token.LParen) || (p.opts.TypeScript && p.at(token.Lt)) {
		return p.parseMethodRest(start, key, computed, optional, mods)
	}
	return p.parsePropRest(start, key, computed, optional, mods)
}

func (p *Parser) parseMethodRest(start source.Span, key ast.Expr, computed, optional bool, mods classModifiers) (ast.ClassMember, bool) {
	kind := mods.kind
	if kind == "" {
		kind = "method"
		if !computed {
			if id, isIdent := key.(*ast.Ident); isIdent && id.Name == "constructor" {
				kind = "constructor"
			}
			if s, isStr := key.(*ast.StringLit); isStr && s.Value == "constructor" {
				kind = "constructor"
			}
		}
	}

	fn := &ast.Function{Async: mods.async, Generator: mods.generator}
	if p.opts.TypeScript && p.at(token.Lt) {
		tps, ok := p.parseTypeParams()
		if !ok {
			return nil, false
		}
		fn.TypeParams = tps
	}
	params, ok := p.parseParams(paramFlags{ctor: kind == "constructor"})
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
		// overload signature or abstract member
		p.semicolon("method signature")
	} else {
		p.err(diag.SynUnexpectedToken, "expected '{' to open method body")
	}
	fn.Span = p.spanFrom(start)

	return &ast.MethodDef{
		Span:          p.spanFrom(start),
		Key:           key,
		Computed:      computed,
		Kind:          kind,
		Static:        mods.static,
		Fn:            fn,
		Accessibility: mods.accessibility,
		Abstract:      mods.abstract,
		Optional:      optional,
	}, true
}

func (p *Parser) parsePropRest(start source.Span, key ast.Expr, computed, optional bool, mods classModifiers) (ast.ClassMember, bool) {
	prop := &ast.PropDef{
		Key:           key,
		Computed:      computed,
		Static:        mods.static,
		Readonly:      mods.readonly,
		Accessibility: mods.accessibility,
		Declare:       mods.declare,
		Optional:      optional,
	}
	if p.opts.TypeScript && p.at(token.Bang) && !p.lx.Peek().NewlineBefore() {
		p.advance()
		prop.Definite = true
	}
	if p.at(token.Colon) {
		t, ok := p.parseTypeAnnotation()
		if !ok {
			return nil, false
		}
		prop.TypeAnn = t
	}
	if p.at(token.Assign) {
		p.advance()
		val, ok := p.parseAssign()
		if !ok {
			return nil, false
		}
		prop.Value = val
	}
	p.semicolon("class field")
	prop.Span = p.spanFrom(start)
	return prop, true
}

// parseClassKey is parsePropertyKey plus private names.
func (p *Parser) parseClassKey() (ast.Expr, bool, bool) {
	tok := p.lx.Peek()
	if tok.Kind == token.PrivateIdent {
		p.advance()
		name := tok.Text
		if len(name) > 0 && name[0] == '#' {
			name = name[1:]
		}
		return &ast.PrivateName{Span: tok.Span, Name: name}, false, true
	}
	key, computed, ok := p.parsePropertyKey()
	if !ok {
		p.err(diag.SynExpectClassMember, "expected class member name")
		return nil, false, false
	}
	return key, computed, ok
}

func (p *Parser) atMemberStart() bool {
	tok := p.lx.Peek()
	return tok.IsIdentLike() ||
		tok.Kind == token.StringLit || tok.Kind == token.NumberLit ||
		tok.Kind == token.LBracket || tok.Kind == token.PrivateIdent ||
		tok.Kind == token.Star
}

// memberFollows checks whether the token after the current word still looks
// like a member, which is what separates a modifier from a member named
// like one ("static = 1" is a field called static).
func (p *Parser) memberFollows() bool {
	st := p.lx.State()
	saved := p.lastSpan
	p.advance()
	ok := p.atMemberStart() && !p.lx.Peek().NewlineBefore()
	p.lx.Restore(st)
	p.lastSpan = saved
	return ok
}

func (p *Parser) starFollows() bool {
	st := p.lx.State()
	saved := p.lastSpan
	p.advance()
	ok := p.at(token.Star)
	p.lx.Restore(st)
	p.lastSpan = saved
	return ok
}
