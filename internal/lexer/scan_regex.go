package lexer

import (
	"ecmaparse/internal/diag"
	"ecmaparse/internal/token"
)

// scanRegex scans a regular expression literal, the cursor sitting on the
// opening '/'. Character classes and escapes are honored so '/' inside
// [...] or after '\' does not close the literal. Flags are any identifier
// characters after the closing '/'.
func (lx *Lexer) scanRegex() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	inClass := false
	closed := false

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' || b == '\r' {
			break
		}
		if b == '\\' {
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.bumpRune()
			}
			continue
		}
		switch b {
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				lx.cursor.Bump()
				closed = true
			}
		}
		if closed {
			break
		}
		lx.bumpRune()
	}

	if !closed {
		lx.report(diag.LexUnterminatedRegex, lx.cursor.SpanFrom(start), "unterminated regular expression literal")
	} else {
		// flags
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.RegexLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
