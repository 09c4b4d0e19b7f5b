package lexer

import (
	"fmt"

	"ecmaparse/internal/diag"
	"ecmaparse/internal/source"
	"ecmaparse/internal/token"
)

// scanOperatorOrPunct scans punctuation and operators with greedy matching:
// the longest operator wins ('>>>=' before '>>>' before '>>').
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Peek()

	var kind token.Kind

	switch b {
	case '(':
		lx.cursor.Bump()
		kind = token.LParen
	case ')':
		lx.cursor.Bump()
		kind = token.RParen
	case '{':
		lx.cursor.Bump()
		kind = token.LBrace
	case '}':
		lx.cursor.Bump()
		kind = token.RBrace
	case '[':
		lx.cursor.Bump()
		kind = token.LBracket
	case ']':
		lx.cursor.Bump()
		kind = token.RBracket
	case ';':
		lx.cursor.Bump()
		kind = token.Semicolon
	case ':':
		lx.cursor.Bump()
		kind = token.Colon
	case ',':
		lx.cursor.Bump()
		kind = token.Comma
	case '~':
		lx.cursor.Bump()
		kind = token.Tilde
	case '@':
		lx.cursor.Bump()
		kind = token.At
	case '#':
		return lx.scanPrivateIdent()

	case '.':
		switch {
		case lx.try3('.', '.', '.'):
			kind = token.DotDotDot
		default:
			lx.cursor.Bump()
			kind = token.Dot
		}

	case '?':
		switch {
		case lx.try3('?', '?', '='):
			kind = token.QuestionQuestionAssign
		case lx.try2('?', '?'):
			kind = token.QuestionQuestion
		case lx.try2('?', '.'):
			kind = token.QuestionDot
		default:
			lx.cursor.Bump()
			kind = token.Question
		}

	case '=':
		switch {
		case lx.try3('=', '=', '='):
			kind = token.EqEqEq
		case lx.try2('=', '='):
			kind = token.EqEq
		case lx.try2('=', '>'):
			kind = token.Arrow
		default:
			lx.cursor.Bump()
			kind = token.Assign
		}

	case '!':
		switch {
		case lx.try3('!', '=', '='):
			kind = token.BangEqEq
		case lx.try2('!', '='):
			kind = token.BangEq
		default:
			lx.cursor.Bump()
			kind = token.Bang
		}

	case '+':
		switch {
		case lx.try2('+', '+'):
			kind = token.PlusPlus
		case lx.try2('+', '='):
			kind = token.PlusAssign
		default:
			lx.cursor.Bump()
			kind = token.Plus
		}

	case '-':
		switch {
		case lx.try2('-', '-'):
			kind = token.MinusMinus
		case lx.try2('-', '='):
			kind = token.MinusAssign
		default:
			lx.cursor.Bump()
			kind = token.Minus
		}

	case '*':
		switch {
		case lx.try3('*', '*', '='):
			kind = token.StarStarAssign
		case lx.try2('*', '*'):
			kind = token.StarStar
		case lx.try2('*', '='):
			kind = token.StarAssign
		default:
			lx.cursor.Bump()
			kind = token.Star
		}

	case '/':
		// comments were consumed as trivia, regex handled by the caller
		switch {
		case lx.try2('/', '='):
			kind = token.SlashAssign
		default:
			lx.cursor.Bump()
			kind = token.Slash
		}

	case '%':
		switch {
		case lx.try2('%', '='):
			kind = token.PercentAssign
		default:
			lx.cursor.Bump()
			kind = token.Percent
		}

	case '<':
		switch {
		case lx.try3('<', '<', '='):
			kind = token.ShlAssign
		case lx.try2('<', '<'):
			kind = token.Shl
		case lx.try2('<', '='):
			kind = token.LtEq
		default:
			lx.cursor.Bump()
			kind = token.Lt
		}

	case '>':
		switch {
		case lx.try3('>', '>', '>'):
			if lx.cursor.Eat('=') {
				kind = token.UShrAssign
			} else {
				kind = token.UShr
			}
		case lx.try3('>', '>', '='):
			kind = token.ShrAssign
		case lx.try2('>', '>'):
			kind = token.Shr
		case lx.try2('>', '='):
			kind = token.GtEq
		default:
			lx.cursor.Bump()
			kind = token.Gt
		}

	case '&':
		switch {
		case lx.try3('&', '&', '='):
			kind = token.AndAndAssign
		case lx.try2('&', '&'):
			kind = token.AndAnd
		case lx.try2('&', '='):
			kind = token.AmpAssign
		default:
			lx.cursor.Bump()
			kind = token.Amp
		}

	case '|':
		switch {
		case lx.try3('|', '|', '='):
			kind = token.OrOrAssign
		case lx.try2('|', '|'):
			kind = token.OrOr
		case lx.try2('|', '='):
			kind = token.PipeAssign
		default:
			lx.cursor.Bump()
			kind = token.Pipe
		}

	case '^':
		switch {
		case lx.try2('^', '='):
			kind = token.CaretAssign
		default:
			lx.cursor.Bump()
			kind = token.Caret
		}

	default:
		r, _ := lx.peekRune()
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", r))
		return token.Token{
			Kind: token.Invalid,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// SplitGt splits a multi-'>' token when a type argument list needs a single
// '>'. The parser hands in its buffered token ('>>', '>>>', '>=', '>>=' or
// '>>>='); the lexer rewinds to one byte past the first '>' and returns a
// plain Gt covering that byte.
func (lx *Lexer) SplitGt(tok token.Token) token.Token {
	lx.look = nil
	lx.cursor.Reset(Mark(tok.Span.Start + 1))
	lx.prev = token.Gt
	return token.Token{
		Kind: token.Gt,
		Span: source.Span{File: tok.Span.File, Start: tok.Span.Start, End: tok.Span.Start + 1},
		Text: ">",
	}
}
