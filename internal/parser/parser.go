// Package parser turns a token stream into an ast.Module. It is a
// recursive-descent parser with one-token lookahead, precedence climbing
// for binary expressions and a bounded speculative rescan for the few
// constructs one token cannot disambiguate (arrow heads, call type
// arguments, labeled tuple members).
//
// The parser never stops on the first error: every parse function reports
// through the configured Reporter and then resynchronizes, so a broken
// file still yields as much tree as the input supports.
package parser

import (
	"slices"

	"ecmaparse/internal/ast"
	"ecmaparse/internal/diag"
	"ecmaparse/internal/lexer"
	"ecmaparse/internal/source"
	"ecmaparse/internal/token"
)

// Options configures a single parse.
type Options struct {
	// TypeScript enables the TS grammar: type annotations, interfaces,
	// enums, namespaces, as-expressions and the rest.
	TypeScript bool
	// DynamicImport permits import(...) expressions. When false they are
	// still parsed, but reported as SynDynamicImportDisabled.
	DynamicImport bool
	// MaxErrors caps the number of reported errors; 0 means unlimited.
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is spent.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser holds the state for one file.
type Parser struct {
	lx       *lexer.Lexer
	opts     Options
	lastSpan source.Span // span of the last consumed token
	noIn     bool        // inside a for-header: 'in' is not a binary operator
}

// New creates a parser over an already constructed lexer.
func New(lx *lexer.Lexer, opts Options) *Parser {
	return &Parser{
		lx:       lx,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
}

// ParseModule parses the whole file as an ES module and returns the root.
// The returned module is never nil, no matter how broken the input was.
func (p *Parser) ParseModule() *ast.Module {
	start := p.lx.Peek().Span
	mod := &ast.Module{Body: []ast.Stmt{}}
	for !p.at(token.EOF) {
		before := p.lx.Peek()
		stmt, ok := p.parseModuleItem()
		if ok && stmt != nil {
			mod.Body = append(mod.Body, stmt)
		}
		if !ok {
			p.resyncStmt()
		}
		// zero progress would loop forever: resyncStmt stops in front of an
		// unmatched '}' and, at module level, nobody else will consume it
		after := p.lx.Peek()
		if after.Kind == before.Kind && after.Span == before.Span && !p.at(token.EOF) {
			p.advance()
		}
	}
	mod.Span = start.Cover(p.lx.Peek().Span)
	return mod
}

// IsError reports whether any error was emitted so far.
func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// atContextual reports whether the next token is the identifier text.
// Contextual keywords (async, of, as, from, type, ...) lex as Ident.
func (p *Parser) atContextual(text string) bool {
	tok := p.lx.Peek()
	return tok.Kind == token.Ident && tok.Text == text
}

// parseModuleItem handles import/export declarations and falls through to
// parseStatement for everything else. `import(` and `import.meta` open an
// expression, not a declaration, so those rewind into the statement path.
func (p *Parser) parseModuleItem() (ast.Stmt, bool) {
	switch p.lx.Peek().Kind {
	case token.KwImport:
		st := p.lx.State()
		impTok := p.advance()
		if p.at(token.LParen) || p.at(token.Dot) {
			p.lx.Restore(st)
			return p.parseStatement()
		}
		return p.parseImportDecl(impTok)
	case token.KwExport:
		return p.parseExportDecl()
	default:
		return p.parseStatement()
	}
}

// semicolon consumes a statement terminator, applying automatic semicolon
// insertion: a real ';', or a '}' / EOF / line break before the next token.
func (p *Parser) semicolon(what string) {
	if p.at(token.Semicolon) {
		p.advance()
		return
	}
	if p.canInsertSemicolon() {
		return
	}
	p.err(diag.SynExpectSemicolon, "expected ';' after "+what)
}

func (p *Parser) canInsertSemicolon() bool {
	peek := p.lx.Peek()
	return peek.Kind == token.RBrace || peek.Kind == token.EOF || peek.NewlineBefore()
}

// resyncStmt skips tokens after a failed statement: up to and including the
// next ';', or up to a '}'/EOF, or up to a token on a fresh line that can
// begin a statement.
func (p *Parser) resyncStmt() {
	for {
		switch p.lx.Peek().Kind {
		case token.EOF, token.RBrace:
			return
		case token.Semicolon:
			p.advance()
			return
		}
		p.advance()
		next := p.lx.Peek()
		if next.NewlineBefore() && isStmtStarter(next.Kind) {
			return
		}
	}
}

func isStmtStarter(k token.Kind) bool {
	switch k {
	case token.KwIf, token.KwFor, token.KwWhile, token.KwDo, token.KwSwitch,
		token.KwTry, token.KwReturn, token.KwBreak, token.KwContinue,
		token.KwThrow, token.KwFunction, token.KwClass,
		token.KwVar, token.KwConst, token.KwLet,
		token.KwImport, token.KwExport, token.KwDebugger,
		token.LBrace, token.Semicolon:
		return true
	default:
		return false
	}
}
