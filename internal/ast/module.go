package ast

import "ecmaparse/internal/source"

// Module is the root of every parse result.
type Module struct {
	Span source.Span `json:"span"`
	Body []Stmt      `json:"body"`
}

func (m *Module) Pos() source.Span { return m.Span }

func (m *Module) MarshalJSON() ([]byte, error) {
	type alias Module
	if m.Body == nil {
		m.Body = []Stmt{}
	}
	return marshalNode("Module", (*alias)(m))
}

// ImportDecl is a static import declaration.
type ImportDecl struct {
	Span       source.Span `json:"span"`
	Specifiers []ImportSpec `json:"specifiers"`
	Source     *StringLit   `json:"source"`
	TypeOnly   bool         `json:"typeOnly,omitempty"`
}

func (n *ImportDecl) Pos() source.Span { return n.Span }
func (n *ImportDecl) stmtNode()        {}

func (n *ImportDecl) MarshalJSON() ([]byte, error) {
	type alias ImportDecl
	if n.Specifiers == nil {
		n.Specifiers = []ImportSpec{}
	}
	return marshalNode("ImportDeclaration", (*alias)(n))
}

// ImportSpec is one binding introduced by an import declaration.
type ImportSpec interface {
	Node
	importSpecNode()
}

// ImportDefaultSpec binds the default export: import X from "...".
type ImportDefaultSpec struct {
	Span  source.Span `json:"span"`
	Local *Ident      `json:"local"`
}

func (n *ImportDefaultSpec) Pos() source.Span { return n.Span }
func (n *ImportDefaultSpec) importSpecNode()  {}

func (n *ImportDefaultSpec) MarshalJSON() ([]byte, error) {
	type alias ImportDefaultSpec
	return marshalNode("ImportDefaultSpecifier", (*alias)(n))
}

// ImportNamespaceSpec binds the module object: import * as X from "...".
type ImportNamespaceSpec struct {
	Span  source.Span `json:"span"`
	Local *Ident      `json:"local"`
}

func (n *ImportNamespaceSpec) Pos() source.Span { return n.Span }
func (n *ImportNamespaceSpec) importSpecNode()  {}

func (n *ImportNamespaceSpec) MarshalJSON() ([]byte, error) {
	type alias ImportNamespaceSpec
	return marshalNode("ImportNamespaceSpecifier", (*alias)(n))
}

// ImportNamedSpec binds one named export: import { a as b } from "...".
// Imported may be a string literal name ("import { 'x' as y }").
type ImportNamedSpec struct {
	Span     source.Span `json:"span"`
	Local    *Ident      `json:"local"`
	Imported Expr        `json:"imported,omitempty"`
	TypeOnly bool        `json:"typeOnly,omitempty"`
}

func (n *ImportNamedSpec) Pos() source.Span { return n.Span }
func (n *ImportNamedSpec) importSpecNode()  {}

func (n *ImportNamedSpec) MarshalJSON() ([]byte, error) {
	type alias ImportNamedSpec
	return marshalNode("ImportSpecifier", (*alias)(n))
}

// ExportNamedDecl covers "export { a, b }", "export { a } from 'm'" and
// "export <declaration>".
type ExportNamedDecl struct {
	Span       source.Span   `json:"span"`
	Decl       Stmt          `json:"declaration,omitempty"`
	Specifiers []*ExportSpec `json:"specifiers"`
	Source     *StringLit    `json:"source,omitempty"`
	TypeOnly   bool          `json:"typeOnly,omitempty"`
}

func (n *ExportNamedDecl) Pos() source.Span { return n.Span }
func (n *ExportNamedDecl) stmtNode()        {}

func (n *ExportNamedDecl) MarshalJSON() ([]byte, error) {
	type alias ExportNamedDecl
	if n.Specifiers == nil {
		n.Specifiers = []*ExportSpec{}
	}
	return marshalNode("ExportNamedDeclaration", (*alias)(n))
}

// ExportSpec is one name in an export clause.
type ExportSpec struct {
	Span     source.Span `json:"span"`
	Local    Expr        `json:"local"`
	Exported Expr        `json:"exported,omitempty"`
}

func (n *ExportSpec) Pos() source.Span { return n.Span }

func (n *ExportSpec) MarshalJSON() ([]byte, error) {
	type alias ExportSpec
	return marshalNode("ExportSpecifier", (*alias)(n))
}

// ExportDefaultDecl is "export default <expr or declaration>".
type ExportDefaultDecl struct {
	Span source.Span `json:"span"`
	Decl Node        `json:"declaration"`
}

func (n *ExportDefaultDecl) Pos() source.Span { return n.Span }
func (n *ExportDefaultDecl) stmtNode()        {}

func (n *ExportDefaultDecl) MarshalJSON() ([]byte, error) {
	type alias ExportDefaultDecl
	return marshalNode("ExportDefaultDeclaration", (*alias)(n))
}

// ExportAllDecl is "export * from 'm'" or "export * as ns from 'm'".
type ExportAllDecl struct {
	Span     source.Span `json:"span"`
	Source   *StringLit  `json:"source"`
	Exported *Ident      `json:"exported,omitempty"`
}

func (n *ExportAllDecl) Pos() source.Span { return n.Span }
func (n *ExportAllDecl) stmtNode()        {}

func (n *ExportAllDecl) MarshalJSON() ([]byte, error) {
	type alias ExportAllDecl
	return marshalNode("ExportAllDeclaration", (*alias)(n))
}
