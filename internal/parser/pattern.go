package parser

import (
	"ecmaparse/internal/ast"
	"ecmaparse/internal/diag"
	"ecmaparse/internal/token"
)

// parseBindingPat parses a binding target: an identifier, an array pattern
// or an object pattern. Defaults and type annotations are the caller's
// business.
func (p *Parser) parseBindingPat() (ast.Pat, bool) {
	switch p.lx.Peek().Kind {
	case token.Ident, token.KwYield, token.KwAwait, token.KwLet:
		tok := p.advance()
		return &ast.Ident{Span: tok.Span, Name: tok.Text}, true
	case token.LBracket:
		return p.parseArrayPat()
	case token.LBrace:
		return p.parseObjectPat()
	}
	p.err(diag.SynExpectBindingTarget, "expected binding target, got "+p.lx.Peek().Kind.String())
	return nil, false
}

// parseBindingPatWithType additionally takes an optional type annotation;
// used where the pattern stands alone, like a catch binding.
func (p *Parser) parseBindingPatWithType() (ast.Pat, bool) {
	pat, ok := p.parseBindingPat()
	if !ok {
		return nil, false
	}
	if p.at(token.Colon) {
		t, ok := p.parseTypeAnnotation()
		if !ok {
			return nil, false
		}
		attachTypeAnn(pat, t)
	}
	return pat, true
}

func (p *Parser) parseArrayPat() (ast.Pat, bool) {
	lb := p.advance()
	elems := []ast.Pat{}
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if p.at(token.Comma) {
			p.advance()
			elems = append(elems, nil) // hole
			continue
		}
		var elem ast.Pat
		if p.at(token.DotDotDot) {
			dots := p.advance()
			arg, ok := p.parseBindingPat()
			if !ok {
				return nil, false
			}
			elem = &ast.RestElement{Span: p.spanFrom(dots.Span), Arg: arg}
		} else {
			inner, ok := p.parseBindingPat()
			if !ok {
				return nil, false
			}
			elem = inner
			if p.at(token.Assign) {
				p.advance()
				def, ok := p.parseAssign()
				if !ok {
					return nil, false
				}
				elem = &ast.AssignPat{Span: p.spanFrom(inner.Pos()), Left: inner, Right: def}
			}
		}
		elems = append(elems, elem)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close array pattern")
	return &ast.ArrayPat{Span: p.spanFrom(lb.Span), Elements: elems}, true
}

func (p *Parser) parseObjectPat() (ast.Pat, bool) {
	lb := p.advance()
	props := []ast.Node{}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.at(token.DotDotDot) {
			dots := p.advance()
			arg, ok := p.parseBindingPat()
			if !ok {
				return nil, false
			}
			props = append(props, &ast.RestElement{Span: p.spanFrom(dots.Span), Arg: arg})
		} else {
			prop, ok := p.parseObjectPatProp()
			if !ok {
				return nil, false
			}
			props = append(props, prop)
		}
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close object pattern")
	return &ast.ObjectPat{Span: p.spanFrom(lb.Span), Props: props}, true
}

func (p *Parser) parseObjectPatProp() (*ast.PatProperty, bool) {
	start := p.lx.Peek().Span
	key, computed, ok := p.parsePropertyKey()
	if !ok {
		return nil, false
	}

	prop := &ast.PatProperty{Key: key, Computed: computed}
	if p.at(token.Colon) {
		p.advance()
		val, ok := p.parseBindingPat()
		if !ok {
			return nil, false
		}
		prop.Value = val
		if p.at(token.Assign) {
			p.advance()
			def, ok := p.parseAssign()
			if !ok {
				return nil, false
			}
			prop.Value = &ast.AssignPat{Span: p.spanFrom(val.Pos()), Left: val, Right: def}
		}
	} else {
		id, isIdent := key.(*ast.Ident)
		if !isIdent || computed {
			p.err(diag.SynExpectBindingTarget, "expected ':' after object pattern key")
			return nil, false
		}
		prop.Shorthand = true
		prop.Value = id
		if p.at(token.Assign) {
			p.advance()
			def, ok := p.parseAssign()
			if !ok {
				return nil, false
			}
			prop.Value = &ast.AssignPat{Span: p.spanFrom(id.Span), Left: id, Right: def}
		}
	}
	prop.Span = p.spanFrom(start)
	return prop, true
}

// exprToPat reinterprets an expression parsed under the cover grammar as a
// destructuring pattern. Conversion is all-or-nothing: a member expression
// inside keeps the whole target in expression form.
func exprToPat(e ast.Expr) (ast.Pat, bool) {
	switch n := e.(type) {
	case *ast.Ident:
		return n, true

	case *ast.AssignExpr:
		if n.Op != "=" {
			return nil, false
		}
		target, ok := n.Target.(ast.Expr)
		if !ok {
			if pat, isPat := n.Target.(ast.Pat); isPat {
				return &ast.AssignPat{Span: n.Span, Left: pat, Right: n.Value}, true
			}
			return nil, false
		}
		left, ok := exprToPat(target)
		if !ok {
			return nil, false
		}
		return &ast.AssignPat{Span: n.Span, Left: left, Right: n.Value}, true

	case *ast.ArrayLit:
		pat := &ast.ArrayPat{Span: n.Span}
		for _, elem := range n.Elements {
			if elem == nil {
				pat.Elements = append(pat.Elements, nil)
				continue
			}
			if spread, isSpread := elem.(*ast.SpreadElement); isSpread {
				arg, ok := exprToPat(spread.Arg)
				if !ok {
					return nil, false
				}
				pat.Elements = append(pat.Elements, &ast.RestElement{Span: spread.Span, Arg: arg})
				continue
			}
			inner, ok := exprToPat(elem)
			if !ok {
				return nil, false
			}
			pat.Elements = append(pat.Elements, inner)
		}
		return pat, true

	case *ast.ObjectLit:
		pat := &ast.ObjectPat{Span: n.Span}
		for _, prop := range n.Props {
			switch m := prop.(type) {
			case *ast.SpreadElement:
				arg, ok := exprToPat(m.Arg)
				if !ok {
					return nil, false
				}
				pat.Props = append(pat.Props, &ast.RestElement{Span: m.Span, Arg: arg})
			case *ast.Property:
				if m.Method || m.Kind != "" {
					return nil, false
				}
				var val ast.Pat
				switch v := m.Value.(type) {
				case ast.Pat:
					val = v
				case ast.Expr:
					converted, ok := exprToPat(v)
					if !ok {
						return nil, false
					}
					val = converted
				default:
					return nil, false
				}
				pat.Props = append(pat.Props, &ast.PatProperty{
					Span:      m.Span,
					Key:       m.Key,
					Value:     val,
					Computed:  m.Computed,
					Shorthand: m.Shorthand,
				})
			default:
				return nil, false
			}
		}
		return pat, true
	}
	return nil, false
}

// attachTypeAnn hangs a type annotation off the patterns that can carry one.
func attachTypeAnn(pat ast.Pat, t ast.TSType) {
	switch n := pat.(type) {
	case *ast.Ident:
		n.TypeAnn = t
	case *ast.ObjectPat:
		n.TypeAnn = t
	case *ast.ArrayPat:
		n.TypeAnn = t
	case *ast.RestElement:
		n.TypeAnn = t
	case *ast.AssignPat:
		attachTypeAnn(n.Left, t)
	}
}
