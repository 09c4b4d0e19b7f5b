package lexer

import (
	"ecmaparse/internal/diag"
	"ecmaparse/internal/token"
)

// scanTemplate scans from an opening backtick to either the closing backtick
// (TemplateNoSub) or the first '${' (TemplateHead). The parser then parses
// the substitution expression and asks for the continuation with
// ScanTemplateContinuation.
func (lx *Lexer) scanTemplate() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '`'
	return lx.scanTemplateRest(start, token.TemplateNoSub, token.TemplateHead)
}

// ScanTemplateContinuation rescans from the '}' that closed a template
// substitution. The parser hands in its buffered '}' token; the lexer
// rewinds there and lexes the next template chunk (TemplateMiddle or
// TemplateTail). Any lookahead past the '}' is discarded.
func (lx *Lexer) ScanTemplateContinuation(rbrace token.Token) token.Token {
	lx.look = nil
	lx.cursor.Reset(Mark(rbrace.Span.Start))
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '}'
	tok := lx.scanTemplateRest(start, token.TemplateTail, token.TemplateMiddle)
	lx.prev = tok.Kind
	return tok
}

// scanTemplateRest consumes template characters until '`' or '${'.
func (lx *Lexer) scanTemplateRest(start Mark, closedKind, headKind token.Kind) token.Token {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '`' {
			lx.cursor.Bump()
			return lx.emitTemplate(start, closedKind)
		}
		if b == '\\' {
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.bumpRune()
			}
			continue
		}
		if b == '$' {
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '{' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				return lx.emitTemplate(start, headKind)
			}
		}
		lx.bumpRune()
	}

	lx.report(diag.LexUnterminatedTemplate, lx.cursor.SpanFrom(start), "unterminated template literal")
	return lx.emitTemplate(start, closedKind)
}

func (lx *Lexer) emitTemplate(start Mark, kind token.Kind) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// TemplateCooked strips the delimiters from a template chunk's raw text:
// `...`, `...${, }...${ or }...` become just the inner characters.
func TemplateCooked(kind token.Kind, raw string) string {
	switch kind {
	case token.TemplateNoSub:
		return trimDelims(raw, 1, 1)
	case token.TemplateHead:
		return trimDelims(raw, 1, 2)
	case token.TemplateMiddle:
		return trimDelims(raw, 1, 2)
	case token.TemplateTail:
		return trimDelims(raw, 1, 1)
	}
	return raw
}

func trimDelims(s string, head, tail int) string {
	if len(s) < head+tail {
		return ""
	}
	return s[head : len(s)-tail]
}
