// Package engine ties the lexer and parser together behind a small
// parse-one-module API. Callers hand it source text plus a Context and get
// back the module AST and, on failure, a SyntaxError built from the
// context's diagnostic buffer.
package engine

import (
	"strings"

	"ecmaparse/internal/ast"
	"ecmaparse/internal/diag"
	"ecmaparse/internal/lexer"
	"ecmaparse/internal/parser"
)

// SyntaxError is the caller-facing parse failure. It snapshots the
// diagnostic buffer at the moment the parse finished; the records stay
// available for structured rendering while Error() flattens them for
// plain error paths.
type SyntaxError struct {
	Diagnostics []diag.Diagnostic
}

func (e *SyntaxError) Error() string {
	msgs := make([]string, len(e.Diagnostics))
	for i := range e.Diagnostics {
		msgs[i] = e.Diagnostics[i].Message
	}
	return strings.Join(msgs, ",")
}

// Parse parses src as one ES module. The returned module is never nil:
// broken input yields the recovered partial tree alongside a *SyntaxError.
// Empty input is a successful empty module.
func Parse(ctx *Context, fileName string, src []byte, syn Syntax) (*ast.Module, error) {
	fileID := ctx.Files.AddVirtual(fileName, src)
	file := ctx.Files.Get(fileID)

	lx := lexer.New(file, lexer.Options{
		Reporter: ctx.Diags,
		Comments: ctx.Comments,
		Interner: ctx.Interner,
	})
	p := parser.New(lx, parser.Options{
		TypeScript:    syn.Language == LangTypeScript,
		DynamicImport: syn.DynamicImport,
		MaxErrors:     ctx.MaxDiagnostics,
		Reporter:      ctx.Diags,
	})

	before := ctx.Diags.ErrorCount()
	mod := p.ParseModule()
	if ctx.Diags.ErrorCount() > before {
		return mod, &SyntaxError{Diagnostics: ctx.Diags.Snapshot()}
	}
	return mod, nil
}

// ParseModule is the callback form of Parse: the module and error are
// handed to cb and its result returned. The shape keeps result handling
// next to the parse when the caller immediately transforms the tree.
func ParseModule[R any](ctx *Context, fileName string, src []byte, syn Syntax, cb func(*ast.Module, error) R) R {
	mod, err := Parse(ctx, fileName, src, syn)
	return cb(mod, err)
}
