package driver

import (
	"fortio.org/safecast"

	"ecmaparse/internal/ast"
	"ecmaparse/internal/diag"
	"ecmaparse/internal/engine"
	"ecmaparse/internal/lexer"
	"ecmaparse/internal/parser"
	"ecmaparse/internal/source"
	"ecmaparse/internal/token"
)

// ParseResult bundles everything the CLI needs to render one parsed file.
type ParseResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Module   *ast.Module
	Bag      *diag.Bag
	Comments []token.Trivia
}

// HasErrors reports whether the parse produced error diagnostics.
func (r *ParseResult) HasErrors() bool {
	return r.Bag.HasErrors()
}

// Parse loads a file from disk and parses it with a fresh file set.
func Parse(filePath string, syn engine.Syntax, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, fileID, syn, maxDiagnostics)
}

// ParseBytes parses in-memory source: stdin, editor buffers, op payloads.
func ParseBytes(name string, src []byte, syn engine.Syntax, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return parseLoaded(fs, fileID, syn, maxDiagnostics)
}

func parseLoaded(fs *source.FileSet, fileID source.FileID, syn engine.Syntax, maxDiagnostics int) (*ParseResult, error) {
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	comments := engine.NewCommentRegistry()

	lx := lexer.New(file, lexer.Options{
		Reporter: reporter,
		Comments: comments,
		Interner: source.NewInterner(),
	})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	p := parser.New(lx, parser.Options{
		TypeScript:    syn.Language == engine.LangTypeScript,
		DynamicImport: syn.DynamicImport,
		MaxErrors:     maxErrors,
		Reporter:      reporter,
	})

	return &ParseResult{
		FileSet:  fs,
		File:     file,
		Module:   p.ParseModule(),
		Bag:      bag,
		Comments: comments.All(),
	}, nil
}
