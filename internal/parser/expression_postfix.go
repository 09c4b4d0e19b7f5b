package parser

import (
	"strings"

	"ecmaparse/internal/ast"
	"ecmaparse/internal/diag"
	"ecmaparse/internal/token"
)

// parseCallMember parses a left-hand-side expression: new-expressions,
// then the member/call/template tail.
func (p *Parser) parseCallMember() (ast.Expr, bool) {
	var expr ast.Expr
	var ok bool
	if p.at(token.KwNew) {
		expr, ok = p.parseNewExpr()
	} else {
		expr, ok = p.parsePrimary()
	}
	if !ok {
		return nil, false
	}
	return p.parseCallTail(expr)
}

func (p *Parser) parseCallTail(expr ast.Expr) (ast.Expr, bool) {
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.Dot:
			p.advance()
			prop, ok := p.parseMemberProp()
			if !ok {
				return expr, false
			}
			expr = &ast.MemberExpr{Span: p.spanFrom(expr.Pos()), Obj: expr, Prop: prop}

		case token.QuestionDot:
			p.advance()
			switch p.lx.Peek().Kind {
			case token.LParen:
				args, ok := p.parseArguments()
				if !ok {
					return expr, false
				}
				expr = &ast.CallExpr{Span: p.spanFrom(expr.Pos()), Callee: expr, Args: args, Optional: true}
			case token.LBracket:
				p.advance()
				idx, ok := p.parseExpression()
				if !ok {
					return expr, false
				}
				p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after computed member")
				expr = &ast.MemberExpr{Span: p.spanFrom(expr.Pos()), Obj: expr, Prop: idx, Computed: true, Optional: true}
			default:
				prop, ok := p.parseMemberProp()
				if !ok {
					return expr, false
				}
				expr = &ast.MemberExpr{Span: p.spanFrom(expr.Pos()), Obj: expr, Prop: prop, Optional: true}
			}

		case token.LBracket:
			p.advance()
			idx, ok := p.parseExpression()
			if !ok {
				return expr, false
			}
			p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after computed member")
			expr = &ast.MemberExpr{Span: p.spanFrom(expr.Pos()), Obj: expr, Prop: idx, Computed: true}

		case token.LParen:
			args, ok := p.parseArguments()
			if !ok {
				return expr, false
			}
			expr = &ast.CallExpr{Span: p.spanFrom(expr.Pos()), Callee: expr, Args: args}

		case token.TemplateNoSub, token.TemplateHead:
			quasi, ok := p.parseTemplate()
			if !ok {
				return expr, false
			}
			expr = &ast.TaggedTemplate{Span: expr.Pos().Cover(quasi.Span), Tag: expr, Quasi: quasi}

		case token.Bang:
			if !p.opts.TypeScript || tok.NewlineBefore() {
				return expr, true
			}
			p.advance()
			expr = &ast.TSNonNull{Span: expr.Pos().Cover(tok.Span), Expr: expr}

		case token.Lt, token.Shl:
			if !p.opts.TypeScript {
				return expr, true
			}
			// foo<T>(x) needs a speculative scan: '<' is comparison far
			// more often than explicit call type arguments
			typed, ok := speculate(p, func() (*ast.CallExpr, bool) {
				args, ok := p.parseTypeArgs()
				if !ok || !p.at(token.LParen) {
					return nil, false
				}
				callArgs, ok := p.parseArguments()
				if !ok {
					return nil, false
				}
				return &ast.CallExpr{Args: callArgs, TypeArgs: args}, true
			})
			if !ok {
				return expr, true
			}
			typed.Callee = expr
			typed.Span = p.spanFrom(expr.Pos())
			expr = typed

		default:
			return expr, true
		}
	}
}

// parseMemberProp parses the name after '.': any identifier-like word or a
// private name.
func (p *Parser) parseMemberProp() (ast.Expr, bool) {
	tok := p.lx.Peek()
	if tok.Kind == token.PrivateIdent {
		p.advance()
		return &ast.PrivateName{Span: tok.Span, Name: strings.TrimPrefix(tok.Text, "#")}, true
	}
	return p.parseIdentName()
}

// parseArguments parses a parenthesized argument list, spread included.
func (p *Parser) parseArguments() ([]ast.Expr, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('"); !ok {
		return nil, false
	}
	args := []ast.Expr{}
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if p.at(token.DotDotDot) {
			dots := p.advance()
			arg, ok := p.parseAssign()
			if !ok {
				return nil, false
			}
			args = append(args, &ast.SpreadElement{Span: dots.Span.Cover(arg.Pos()), Arg: arg})
		} else {
			arg, ok := p.parseAssign()
			if !ok {
				return nil, false
			}
			args = append(args, arg)
		}
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	_, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arguments")
	return args, ok
}

// parseNewExpr parses new-expressions and new.target. The callee tail only
// takes member accesses so that "new a.b.C(x).d" groups as "(new a.b.C(x)).d".
func (p *Parser) parseNewExpr() (ast.Expr, bool) {
	newTok := p.advance()

	if p.at(token.Dot) {
		p.advance()
		id, ok := p.parseIdentName()
		if !ok {
			return nil, false
		}
		return &ast.MetaProp{Span: p.spanFrom(newTok.Span), Meta: "new", Prop: id.Name}, true
	}

	var callee ast.Expr
	var ok bool
	if p.at(token.KwNew) {
		callee, ok = p.parseNewExpr()
	} else {
		callee, ok = p.parsePrimary()
	}
	if !ok {
		return nil, false
	}

memberTail:
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.Dot:
			p.advance()
			prop, ok := p.parseMemberProp()
			if !ok {
				return nil, false
			}
			callee = &ast.MemberExpr{Span: p.spanFrom(callee.Pos()), Obj: callee, Prop: prop}
		case token.LBracket:
			p.advance()
			idx, ok := p.parseExpression()
			if !ok {
				return nil, false
			}
			p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after computed member")
			callee = &ast.MemberExpr{Span: p.spanFrom(callee.Pos()), Obj: callee, Prop: idx, Computed: true}
		case token.Bang:
			if !p.opts.TypeScript || tok.NewlineBefore() {
				break memberTail
			}
			p.advance()
			callee = &ast.TSNonNull{Span: callee.Pos().Cover(tok.Span), Expr: callee}
		default:
			break memberTail
		}
	}

	n := &ast.NewExpr{Callee: callee}
	if p.opts.TypeScript && p.at(token.Lt) {
		if args, ok := speculate(p, func() ([]ast.TSType, bool) {
			args, ok := p.parseTypeArgs()
			if !ok || !p.at(token.LParen) {
				return nil, false
			}
			return args, true
		}); ok {
			n.TypeArgs = args
		}
	}
	if p.at(token.LParen) {
		args, ok := p.parseArguments()
		if !ok {
			return nil, false
		}
		n.Args = args
	}
	n.Span = p.spanFrom(newTok.Span)
	return n, true
}
