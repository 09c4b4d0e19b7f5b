package parser

import (
	"ecmaparse/internal/ast"
	"ecmaparse/internal/diag"
	"ecmaparse/internal/source"
	"ecmaparse/internal/token"
)

// advance eats the next token and updates lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// spanFrom covers from a start span to the last consumed token.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}

// getDiagnosticSpan picks the best span for a diagnostic. A zero-length EOF
// token points just past the last consumed token instead.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if (peek.Kind == token.EOF || peek.Kind == token.Invalid) && peek.Span.Start == peek.Span.End {
		if p.lastSpan.End > 0 {
			return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
		}
	}
	return peek.Span
}

// expect consumes the wanted token or reports and returns (invalid, false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.getDiagnosticSpan()
	p.report(code, diag.SevError, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: p.lx.Peek().Text}, false
}

func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() && sev == diag.SevError && p.opts.CurrentErrors > p.opts.MaxErrors {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

// parseIdentRef parses an identifier in expression/binding position.
// Contextual keywords arrive as Ident already; yield/await/let are let
// through for tolerance, real parsers in sloppy mode accept them too.
func (p *Parser) parseIdentRef() (*ast.Ident, bool) {
	if p.atOr(token.Ident, token.KwYield, token.KwAwait, token.KwLet) {
		tok := p.advance()
		return &ast.Ident{Span: tok.Span, Name: tok.Text}, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got "+p.lx.Peek().Kind.String())
	return nil, false
}

// parseIdentName parses a property-name position identifier, where every
// reserved word is allowed (obj.default, { new: 1 }).
func (p *Parser) parseIdentName() (*ast.Ident, bool) {
	tok := p.lx.Peek()
	if tok.IsIdentLike() {
		p.advance()
		return &ast.Ident{Span: tok.Span, Name: tok.Text}, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got "+tok.Kind.String())
	return nil, false
}

// speculate runs fn with diagnostics silenced; when fn fails the lexer is
// rewound as if nothing happened.
func speculate[T any](p *Parser, fn func() (T, bool)) (T, bool) {
	st := p.lx.State()
	oldLex := p.lx.SetReporter(diag.NopReporter{})
	oldRep := p.opts.Reporter
	oldErrs := p.opts.CurrentErrors
	oldLast := p.lastSpan
	p.opts.Reporter = diag.NopReporter{}

	v, ok := fn()

	p.opts.Reporter = oldRep
	p.opts.CurrentErrors = oldErrs
	p.lx.SetReporter(oldLex)
	if !ok {
		p.lx.Restore(st)
		p.lastSpan = oldLast
	}
	return v, ok
}
