package lexer

import (
	"ecmaparse/internal/source"
	"ecmaparse/internal/token"
)

// Lexer produces ECMAScript tokens on demand. It keeps a one-token
// lookahead buffer for the parser's Peek and tracks the previous
// significant token to disambiguate regex literals from division.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look     *token.Token   // one-token lookahead buffer
	hold     []token.Trivia // leading trivia accumulated for the next token
	prev     token.Kind     // last significant token handed out
	tokStart uint32         // where the current token's trivia run began
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		prev:   token.Invalid,
	}
}

// Next returns the next significant token with its Leading trivia attached.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		lx.prev = tok.Kind
		return tok
	}

	lx.tokStart = lx.cursor.Off
	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		tok := token.Token{Kind: token.EOF, Span: lx.EmptySpan(), Leading: lx.hold}
		lx.hold = nil
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"' || ch == '\'':
		tok = lx.scanString()

	case ch == '`':
		tok = lx.scanTemplate()

	case ch == '/' && lx.regexAllowed():
		tok = lx.scanRegex()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	lx.prev = tok.Kind
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	prev := lx.prev
	t := lx.Next()
	lx.look = &t
	// the buffered token has not been handed out yet
	lx.prev = prev
	return t
}

// State captures the lexer position so a caller can rewind after a
// speculative scan. Restoring re-reads trivia, so trivia sinks may see
// the same comments twice; callers that care should snapshot around it.
type State struct {
	off  uint32
	prev token.Kind
}

// State returns a restore point at the start of the next unconsumed token.
func (lx *Lexer) State() State {
	if lx.look != nil {
		return State{off: lx.tokStart, prev: lx.prev}
	}
	return State{off: lx.cursor.Off, prev: lx.prev}
}

// Restore rewinds the lexer to a previously captured state.
func (lx *Lexer) Restore(st State) {
	lx.look = nil
	lx.hold = nil
	lx.cursor.Reset(Mark(st.off))
	lx.prev = st.prev
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// File returns the file this lexer reads from.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// regexAllowed decides whether '/' starts a regex literal at this point.
// The previous significant token tells expression position from operator
// position apart; this is the usual heuristic, not a full cover grammar.
func (lx *Lexer) regexAllowed() bool {
	switch lx.prev {
	case token.Ident, token.PrivateIdent,
		token.NumberLit, token.BigIntLit, token.StringLit, token.RegexLit,
		token.TemplateNoSub, token.TemplateTail,
		token.RParen, token.RBracket, token.RBrace,
		token.PlusPlus, token.MinusMinus,
		token.KwThis, token.KwSuper, token.KwTrue, token.KwFalse, token.KwNull:
		return false
	default:
		return true
	}
}
