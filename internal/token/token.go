package token

import (
	"ecmaparse/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, BigIntLit, StringLit, RegexLit,
		TemplateNoSub, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwBreak && t.Kind <= KwYield
}

// IsAssignOp reports whether the token is an assignment operator.
func (t Token) IsAssignOp() bool {
	return t.Kind >= Assign && t.Kind <= QuestionQuestionAssign
}

// NewlineBefore reports whether a line terminator occurs in the token's
// leading trivia. The parser's semicolon insertion hangs off this.
func (t Token) NewlineBefore() bool {
	for _, tr := range t.Leading {
		if tr.Kind == TriviaNewline {
			return true
		}
		// multi-line comments count as line terminators for ASI
		if tr.Kind == TriviaBlockComment && containsNewline(tr.Text) {
			return true
		}
	}
	return false
}

// IsIdentLike reports whether the token can act as a property name or
// contextual identifier (identifiers and every reserved word).
func (t Token) IsIdentLike() bool {
	return t.Kind == Ident || t.IsKeyword()
}

func containsNewline(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return true
		}
	}
	return false
}
