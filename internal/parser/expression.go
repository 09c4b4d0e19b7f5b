package parser

import (
	"ecmaparse/internal/ast"
	"ecmaparse/internal/diag"
	"ecmaparse/internal/token"
)

// parseExpression parses a full expression including the comma operator.
func (p *Parser) parseExpression() (ast.Expr, bool) {
	first, ok := p.parseAssign()
	if !ok {
		return nil, false
	}
	if !p.at(token.Comma) {
		return first, true
	}
	exprs := []ast.Expr{first}
	for p.at(token.Comma) {
		p.advance()
		next, ok := p.parseAssign()
		if !ok {
			return nil, false
		}
		exprs = append(exprs, next)
	}
	return &ast.SeqExpr{
		Span:  first.Pos().Cover(p.lastSpan),
		Exprs: exprs,
	}, true
}

// parseAssign parses an assignment-level expression: arrows, yield, the
// ternary and the assignment operators (right-associative).
func (p *Parser) parseAssign() (ast.Expr, bool) {
	if p.at(token.KwYield) {
		return p.parseYield()
	}
	if arrow, ok, matched := p.tryArrow(); matched {
		return arrow, ok
	}

	left, ok := p.parseConditional()
	if !ok {
		return nil, false
	}
	tok := p.lx.Peek()
	if !tok.IsAssignOp() {
		return left, true
	}
	op := p.advance()
	target := p.assignTarget(left, op.Kind)
	right, ok := p.parseAssign()
	if !ok {
		return nil, false
	}
	return &ast.AssignExpr{
		Span:   left.Pos().Cover(right.Pos()),
		Op:     opText(op.Kind),
		Target: target,
		Value:  right,
	}, true
}

// assignTarget reinterprets the left side of '=' as a pattern when it is a
// destructuring literal. Compound operators keep plain expression targets.
func (p *Parser) assignTarget(left ast.Expr, op token.Kind) ast.Node {
	if op == token.Assign {
		switch left.(type) {
		case *ast.ArrayLit, *ast.ObjectLit:
			if pat, ok := exprToPat(left); ok {
				return pat
			}
		}
	}
	switch left.(type) {
	case *ast.Ident, *ast.MemberExpr, *ast.TSNonNull, *ast.TSAsExpr,
		*ast.ArrayLit, *ast.ObjectLit:
	default:
		p.report(diag.SynBadAssignTarget, diag.SevError, left.Pos(), "invalid assignment target")
	}
	return left
}

func (p *Parser) parseYield() (ast.Expr, bool) {
	tok := p.advance()
	n := &ast.YieldExpr{Span: tok.Span}
	if p.at(token.Star) && !p.lx.Peek().NewlineBefore() {
		p.advance()
		n.Delegate = true
	}
	if !p.canInsertSemicolon() && p.atExprStart() {
		arg, ok := p.parseAssign()
		if !ok {
			return nil, false
		}
		n.Arg = arg
	}
	n.Span = p.spanFrom(tok.Span)
	return n, true
}

// atExprStart is the rough "can an expression begin here" check used by
// yield and return, where the argument is optional.
func (p *Parser) atExprStart() bool {
	switch p.lx.Peek().Kind {
	case token.RParen, token.RBrace, token.RBracket,
		token.Comma, token.Semicolon, token.Colon, token.EOF,
		token.KwCase, token.KwDefault:
		return false
	default:
		return true
	}
}

func (p *Parser) parseConditional() (ast.Expr, bool) {
	test, ok := p.parseBinary(precNullish)
	if !ok {
		return nil, false
	}
	if !p.at(token.Question) {
		return test, true
	}
	p.advance()
	savedNoIn := p.noIn
	p.noIn = false
	cons, ok := p.parseAssign()
	p.noIn = savedNoIn
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' in conditional expression"); !ok {
		return nil, false
	}
	alt, ok := p.parseAssign()
	if !ok {
		return nil, false
	}
	return &ast.CondExpr{
		Span: test.Pos().Cover(alt.Pos()),
		Test: test,
		Cons: cons,
		Alt:  alt,
	}, true
}

func (p *Parser) parseBinary(minPrec int) (ast.Expr, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	return p.parseBinaryRHS(left, minPrec)
}

func (p *Parser) parseBinaryRHS(left ast.Expr, minPrec int) (ast.Expr, bool) {
	for {
		// TS as-expression binds like a relational operator
		if p.opts.TypeScript && minPrec <= precRelational &&
			p.atContextual("as") && !p.lx.Peek().NewlineBefore() {
			p.advance()
			t, ok := p.parseAsType()
			if !ok {
				return nil, false
			}
			left = &ast.TSAsExpr{Span: p.spanFrom(left.Pos()), Expr: left, TypeAnn: t}
			continue
		}

		k := p.lx.Peek().Kind
		if k == token.KwIn && p.noIn {
			return left, true
		}
		prec, isBin := binaryPrec[k]
		if !isBin || prec < minPrec {
			return left, true
		}
		op := p.advance()

		right, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		nextMin := prec + 1
		if k == token.StarStar {
			nextMin = prec // right-associative
		}
		right, ok = p.parseBinaryRHS(right, nextMin)
		if !ok {
			return nil, false
		}

		sp := left.Pos().Cover(right.Pos())
		if isLogicalOp(k) {
			left = &ast.LogicalExpr{Span: sp, Op: opText(op.Kind), Left: left, Right: right}
		} else {
			left = &ast.BinaryExpr{Span: sp, Op: opText(op.Kind), Left: left, Right: right}
		}
	}
}

// parseAsType parses the type after 'as', which additionally allows the
// 'as const' form.
func (p *Parser) parseAsType() (ast.TSType, bool) {
	if p.at(token.KwConst) {
		tok := p.advance()
		return &ast.TSTypeRef{Span: tok.Span, Name: "const"}, true
	}
	return p.parseType()
}

func (p *Parser) parseUnary() (ast.Expr, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.KwDelete, token.KwVoid, token.KwTypeof,
		token.Plus, token.Minus, token.Tilde, token.Bang:
		op := p.advance()
		arg, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return &ast.UnaryExpr{
			Span: op.Span.Cover(arg.Pos()),
			Op:   opText(op.Kind),
			Arg:  arg,
		}, true
	case token.PlusPlus, token.MinusMinus:
		op := p.advance()
		arg, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return &ast.UpdateExpr{
			Span:   op.Span.Cover(arg.Pos()),
			Op:     opText(op.Kind),
			Prefix: true,
			Arg:    arg,
		}, true
	case token.KwAwait:
		op := p.advance()
		arg, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return &ast.AwaitExpr{Span: op.Span.Cover(arg.Pos()), Arg: arg}, true
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() (ast.Expr, bool) {
	expr, ok := p.parseCallMember()
	if !ok {
		return nil, false
	}
	tok := p.lx.Peek()
	if (tok.Kind == token.PlusPlus || tok.Kind == token.MinusMinus) && !tok.NewlineBefore() {
		p.advance()
		return &ast.UpdateExpr{
			Span:   expr.Pos().Cover(tok.Span),
			Op:     opText(tok.Kind),
			Prefix: false,
			Arg:    expr,
		}, true
	}
	return expr, true
}
