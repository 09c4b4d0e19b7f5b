// Package analyzer extracts module dependencies from source text: static
// imports, re-exports, CommonJS require calls and dynamic import
// expressions. It sits on top of the engine and walks the recovered AST,
// so it shares the parser's error tolerance up to the point where the
// parse fails outright.
package analyzer

import (
	"ecmaparse/internal/ast"
	"ecmaparse/internal/engine"
	"ecmaparse/internal/source"
)

// DependencyKind classifies how a specifier is referenced.
type DependencyKind string

const (
	KindImport  DependencyKind = "import"
	KindExport  DependencyKind = "export"
	KindRequire DependencyKind = "require"
	KindDynamic DependencyKind = "dynamic"
)

// Dependency is one module reference found in the source.
type Dependency struct {
	Specifier string         `json:"specifier"`
	Kind      DependencyKind `json:"kind"`
	Span      source.Span    `json:"span"`
}

// Analyze parses src under the TypeScript grammar and lists its
// dependencies in source order. Dynamic import() references are only
// collected when dynamic is true; require() calls count only with a
// single string-literal argument. A failed parse returns the engine's
// *engine.SyntaxError unchanged.
func Analyze(src string, dynamic bool) ([]Dependency, error) {
	ctx := engine.NewContext()
	mod, err := engine.Parse(ctx, "module.ts", []byte(src), engine.TypeScript())
	if err != nil {
		return nil, err
	}
	return Extract(mod, dynamic), nil
}

// Extract walks an already parsed module.
func Extract(mod *ast.Module, dynamic bool) []Dependency {
	deps := []Dependency{}
	ast.Inspect(mod, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.ImportDecl:
			if n.Source != nil {
				deps = append(deps, Dependency{
					Specifier: n.Source.Value,
					Kind:      KindImport,
					Span:      n.Source.Span,
				})
			}
			return false
		case *ast.ExportNamedDecl:
			if n.Source != nil {
				deps = append(deps, Dependency{
					Specifier: n.Source.Value,
					Kind:      KindExport,
					Span:      n.Source.Span,
				})
				return false
			}
			return true
		case *ast.ExportAllDecl:
			if n.Source != nil {
				deps = append(deps, Dependency{
					Specifier: n.Source.Value,
					Kind:      KindExport,
					Span:      n.Source.Span,
				})
			}
			return false
		case *ast.CallExpr:
			if lit, ok := requireTarget(n); ok {
				deps = append(deps, Dependency{
					Specifier: lit.Value,
					Kind:      KindRequire,
					Span:      lit.Span,
				})
			}
			return true
		case *ast.ImportExpr:
			if !dynamic {
				return true
			}
			if lit, ok := n.Source(); ok {
				deps = append(deps, Dependency{
					Specifier: lit.Value,
					Kind:      KindDynamic,
					Span:      lit.Span,
				})
			}
			return true
		}
		return true
	})
	return deps
}

// requireTarget matches require("...") with exactly one string-literal
// argument and an unqualified callee.
func requireTarget(call *ast.CallExpr) (*ast.StringLit, bool) {
	id, ok := call.Callee.(*ast.Ident)
	if !ok || id.Name != "require" || call.Optional {
		return nil, false
	}
	if len(call.Args) != 1 {
		return nil, false
	}
	lit, ok := call.Args[0].(*ast.StringLit)
	return lit, ok
}
