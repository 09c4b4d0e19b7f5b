package ast

import "ecmaparse/internal/source"

// TSInterfaceDecl is an interface declaration.
type TSInterfaceDecl struct {
	Span       source.Span     `json:"span"`
	ID         *Ident          `json:"identifier"`
	TypeParams []*TSTypeParam  `json:"typeParameters,omitempty"`
	Extends    []TSType        `json:"extends,omitempty"`
	Body       []*TSTypeMember `json:"body"`
	Declare    bool            `json:"declare,omitempty"`
}

func (n *TSInterfaceDecl) Pos() source.Span { return n.Span }
func (n *TSInterfaceDecl) stmtNode()        {}

func (n *TSInterfaceDecl) MarshalJSON() ([]byte, error) {
	type alias TSInterfaceDecl
	if n.Body == nil {
		n.Body = []*TSTypeMember{}
	}
	return marshalNode("TSInterfaceDeclaration", (*alias)(n))
}

// TSTypeAliasDecl is "type X = T".
type TSTypeAliasDecl struct {
	Span       source.Span    `json:"span"`
	ID         *Ident         `json:"identifier"`
	TypeParams []*TSTypeParam `json:"typeParameters,omitempty"`
	TypeAnn    TSType         `json:"typeAnnotation"`
	Declare    bool           `json:"declare,omitempty"`
}

func (n *TSTypeAliasDecl) Pos() source.Span { return n.Span }
func (n *TSTypeAliasDecl) stmtNode()        {}

func (n *TSTypeAliasDecl) MarshalJSON() ([]byte, error) {
	type alias TSTypeAliasDecl
	return marshalNode("TSTypeAliasDeclaration", (*alias)(n))
}

// TSEnumDecl is an enum declaration.
type TSEnumDecl struct {
	Span    source.Span     `json:"span"`
	ID      *Ident          `json:"identifier"`
	Const   bool            `json:"const,omitempty"`
	Members []*TSEnumMember `json:"members"`
	Declare bool            `json:"declare,omitempty"`
}

func (n *TSEnumDecl) Pos() source.Span { return n.Span }
func (n *TSEnumDecl) stmtNode()        {}

func (n *TSEnumDecl) MarshalJSON() ([]byte, error) {
	type alias TSEnumDecl
	if n.Members == nil {
		n.Members = []*TSEnumMember{}
	}
	return marshalNode("TSEnumDeclaration", (*alias)(n))
}

// TSEnumMember is one enum constant, with an optional initializer.
type TSEnumMember struct {
	Span source.Span `json:"span"`
	ID   Expr        `json:"id"`
	Init Expr        `json:"init,omitempty"`
}

func (n *TSEnumMember) Pos() source.Span { return n.Span }

func (n *TSEnumMember) MarshalJSON() ([]byte, error) {
	type alias TSEnumMember
	return marshalNode("TSEnumMember", (*alias)(n))
}

// TSModuleDecl is "namespace X { ... }" or "declare module 'm' { ... }".
type TSModuleDecl struct {
	Span    source.Span `json:"span"`
	ID      Expr        `json:"id"` // *Ident or *StringLit
	Body    []Stmt      `json:"body"`
	Declare bool        `json:"declare,omitempty"`
}

func (n *TSModuleDecl) Pos() source.Span { return n.Span }
func (n *TSModuleDecl) stmtNode()        {}

func (n *TSModuleDecl) MarshalJSON() ([]byte, error) {
	type alias TSModuleDecl
	if n.Body == nil {
		n.Body = []Stmt{}
	}
	return marshalNode("TSModuleDeclaration", (*alias)(n))
}
