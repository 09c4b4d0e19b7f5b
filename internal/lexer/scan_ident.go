package lexer

import (
	"ecmaparse/internal/token"
)

// scanIdentOrKeyword scans an identifier and checks LookupKeyword.
// Token.Text is exactly the source slice (interned when an interner is set).
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
		lx.scanIdentContinue()
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
		lx.scanIdentContinue()
	}

	sp := lx.cursor.SpanFrom(start)
	lex := lx.file.Content[sp.Start:sp.End]
	text := lx.internText(lex)

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanPrivateIdent scans a '#name' class-private identifier. The cursor is
// on the '#'.
func (lx *Lexer) scanPrivateIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	lx.scanIdentContinue()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.PrivateIdent,
		Span: sp,
		Text: lx.internText(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) scanIdentContinue() {
	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				return
			}
			lx.cursor.Bump()
			continue
		}
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			return
		}
		lx.bumpRune()
	}
}

func (lx *Lexer) internText(lex []byte) string {
	if lx.opts.Interner != nil {
		id := lx.opts.Interner.InternBytes(lex)
		s, _ := lx.opts.Interner.Lookup(id)
		return s
	}
	return string(lex)
}
