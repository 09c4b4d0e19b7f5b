package lexer

import (
	"ecmaparse/internal/diag"
	"ecmaparse/internal/source"
	"ecmaparse/internal/token"
)

// CommentSink receives comment trivia as the lexer encounters it. The parse
// context plugs its comment registry in here.
type CommentSink interface {
	AddComment(tr token.Trivia)
}

// Options configures a Lexer.
type Options struct {
	// Reporter may be nil: errors are then dropped, but lexing continues.
	Reporter diag.Reporter
	// Comments may be nil: comment trivia still appears in Token.Leading,
	// it is just not registered anywhere.
	Comments CommentSink
	// Interner dedupes identifier text. May be nil.
	Interner *source.Interner
}

// SetReporter swaps the diagnostic sink and returns the previous one. The
// parser silences the lexer during speculative scans so that a rewound
// region is not reported twice.
func (lx *Lexer) SetReporter(r diag.Reporter) diag.Reporter {
	old := lx.opts.Reporter
	lx.opts.Reporter = r
	return old
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
