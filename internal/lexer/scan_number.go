package lexer

import (
	"ecmaparse/internal/diag"
	"ecmaparse/internal/token"
)

// scanNumber handles the ECMAScript numeric grammar:
// 0, 123, 0b..., 0o..., 0x..., 1.5, .5, 1e-3, 1_000, and the bigint 'n'
// suffix. Malformed forms are reported but the token is still completed so
// parsing can continue.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.NumberLit
	sawDigits := false

	// leading dot: ".digits" (caller checked isNumberAfterDot)
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.eatDecDigits()
		lx.eatExponent(start)
		return lx.emitNumber(start, kind)
	}

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			for {
				b := lx.cursor.Peek()
				if b == '0' || b == '1' || b == '_' {
					sawDigits = sawDigits || b != '_'
					lx.cursor.Bump()
				} else {
					break
				}
			}
			if !sawDigits {
				lx.report(diag.LexBadNumber, lx.cursor.SpanFrom(start), "missing digits after '0b'")
			}
			return lx.emitMaybeBigInt(start)
		case 'o', 'O':
			lx.cursor.Bump()
			for {
				b := lx.cursor.Peek()
				if (b >= '0' && b <= '7') || b == '_' {
					sawDigits = sawDigits || b != '_'
					lx.cursor.Bump()
				} else {
					break
				}
			}
			if !sawDigits {
				lx.report(diag.LexBadNumber, lx.cursor.SpanFrom(start), "missing digits after '0o'")
			}
			return lx.emitMaybeBigInt(start)
		case 'x', 'X':
			lx.cursor.Bump()
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				sawDigits = sawDigits || lx.cursor.Peek() != '_'
				lx.cursor.Bump()
			}
			if !sawDigits {
				lx.report(diag.LexBadNumber, lx.cursor.SpanFrom(start), "missing digits after '0x'")
			}
			return lx.emitMaybeBigInt(start)
		}
		// plain 0, 0.5, 0e1, 01 (legacy octal is lexed as decimal digits)
	}

	lx.eatDecDigits()

	if lx.cursor.Peek() == 'n' {
		lx.cursor.Bump()
		return lx.emitNumber(start, token.BigIntLit)
	}

	if lx.isNumberAfterDot() {
		lx.cursor.Bump() // '.'
		lx.eatDecDigits()
	} else if lx.cursor.Peek() == '.' {
		// trailing dot is legal: "1."
		lx.cursor.Bump()
	}

	lx.eatExponent(start)
	return lx.emitNumber(start, kind)
}

func (lx *Lexer) eatDecDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) eatExponent(start Mark) {
	b := lx.cursor.Peek()
	if b != 'e' && b != 'E' {
		return
	}
	lx.cursor.Bump()
	if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
		lx.cursor.Bump()
	}
	if !isDec(lx.cursor.Peek()) {
		lx.report(diag.LexBadNumber, lx.cursor.SpanFrom(start), "missing exponent digits")
		return
	}
	lx.eatDecDigits()
}

func (lx *Lexer) emitMaybeBigInt(start Mark) token.Token {
	if lx.cursor.Peek() == 'n' {
		lx.cursor.Bump()
		return lx.emitNumber(start, token.BigIntLit)
	}
	return lx.emitNumber(start, token.NumberLit)
}

func (lx *Lexer) emitNumber(start Mark, kind token.Kind) token.Token {
	// a number must not run straight into an identifier: "3in" is an error
	if b := lx.cursor.Peek(); isIdentStartByte(b) || isDec(b) {
		idStart := lx.cursor.Mark()
		lx.scanIdentContinue()
		lx.report(diag.LexBadNumber, lx.cursor.SpanFrom(idStart), "identifier starts immediately after numeric literal")
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
