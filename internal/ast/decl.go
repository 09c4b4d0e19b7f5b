package ast

import "ecmaparse/internal/source"

// VarDecl is a var/let/const declaration with one or more declarators.
type VarDecl struct {
	Span    source.Span      `json:"span"`
	Kind    string           `json:"kind"` // "var" | "let" | "const"
	Decls   []*VarDeclarator `json:"declarations"`
	Declare bool             `json:"declare,omitempty"`
}

func (n *VarDecl) Pos() source.Span { return n.Span }
func (n *VarDecl) stmtNode()        {}

func (n *VarDecl) MarshalJSON() ([]byte, error) {
	type alias VarDecl
	if n.Decls == nil {
		n.Decls = []*VarDeclarator{}
	}
	return marshalNode("VariableDeclaration", (*alias)(n))
}

// VarDeclarator is one binding of a VarDecl.
type VarDeclarator struct {
	Span source.Span `json:"span"`
	ID   Pat         `json:"id"`
	Init Expr        `json:"init,omitempty"`
	// Definite is the TS definite-assignment marker: let x!: T.
	Definite bool `json:"definite,omitempty"`
}

func (n *VarDeclarator) Pos() source.Span { return n.Span }

func (n *VarDeclarator) MarshalJSON() ([]byte, error) {
	type alias VarDeclarator
	return marshalNode("VariableDeclarator", (*alias)(n))
}

// Function carries everything shared by function declarations, function
// expressions and class methods.
type Function struct {
	Span       source.Span    `json:"span"`
	Params     []*Param       `json:"params"`
	Body       *BlockStmt     `json:"body,omitempty"` // nil for overloads/ambient
	Async      bool           `json:"async,omitempty"`
	Generator  bool           `json:"generator,omitempty"`
	TypeParams []*TSTypeParam `json:"typeParameters,omitempty"`
	ReturnType TSType         `json:"returnType,omitempty"`
}

func (n *Function) Pos() source.Span { return n.Span }

func (n *Function) MarshalJSON() ([]byte, error) {
	type alias Function
	if n.Params == nil {
		n.Params = []*Param{}
	}
	return marshalNode("Function", (*alias)(n))
}

// Param is one function parameter. Accessibility/Readonly appear only on
// TS constructor parameter properties.
type Param struct {
	Span          source.Span `json:"span"`
	Pat           Pat         `json:"pat"`
	Optional      bool        `json:"optional,omitempty"`
	Accessibility string      `json:"accessibility,omitempty"`
	Readonly      bool        `json:"readonly,omitempty"`
}

func (n *Param) Pos() source.Span { return n.Span }

func (n *Param) MarshalJSON() ([]byte, error) {
	type alias Param
	return marshalNode("Parameter", (*alias)(n))
}

// FuncDecl declares a named function.
type FuncDecl struct {
	Span    source.Span `json:"span"`
	ID      *Ident      `json:"identifier"`
	Fn      *Function   `json:"function"`
	Declare bool        `json:"declare,omitempty"`
}

func (n *FuncDecl) Pos() source.Span { return n.Span }
func (n *FuncDecl) stmtNode()        {}

func (n *FuncDecl) MarshalJSON() ([]byte, error) {
	type alias FuncDecl
	return marshalNode("FunctionDeclaration", (*alias)(n))
}

// ClassDecl declares a named class.
type ClassDecl struct {
	Span    source.Span `json:"span"`
	ID      *Ident      `json:"identifier"`
	Class   *Class      `json:"class"`
	Declare bool        `json:"declare,omitempty"`
}

func (n *ClassDecl) Pos() source.Span { return n.Span }
func (n *ClassDecl) stmtNode()        {}

func (n *ClassDecl) MarshalJSON() ([]byte, error) {
	type alias ClassDecl
	return marshalNode("ClassDeclaration", (*alias)(n))
}

// Class carries the shared body of class declarations and expressions.
type Class struct {
	Span       source.Span    `json:"span"`
	SuperClass Expr           `json:"superClass,omitempty"`
	SuperTypeArgs []TSType    `json:"superTypeArguments,omitempty"`
	Implements []TSType       `json:"implements,omitempty"`
	TypeParams []*TSTypeParam `json:"typeParameters,omitempty"`
	Body       []ClassMember  `json:"body"`
	Abstract   bool           `json:"abstract,omitempty"`
}

func (n *Class) Pos() source.Span { return n.Span }

func (n *Class) MarshalJSON() ([]byte, error) {
	type alias Class
	if n.Body == nil {
		n.Body = []ClassMember{}
	}
	return marshalNode("Class", (*alias)(n))
}

// ClassMember is a method, property or static block inside a class body.
type ClassMember interface {
	Node
	classMemberNode()
}

// MethodDef is a class method, getter, setter or constructor.
type MethodDef struct {
	Span          source.Span `json:"span"`
	Key           Expr        `json:"key"`
	Computed      bool        `json:"computed,omitempty"`
	Kind          string      `json:"kind"` // "method" | "get" | "set" | "constructor"
	Static        bool        `json:"static,omitempty"`
	Fn            *Function   `json:"function"`
	Accessibility string      `json:"accessibility,omitempty"`
	Abstract      bool        `json:"abstract,omitempty"`
	Optional      bool        `json:"optional,omitempty"`
}

func (n *MethodDef) Pos() source.Span { return n.Span }
func (n *MethodDef) classMemberNode() {}

func (n *MethodDef) MarshalJSON() ([]byte, error) {
	type alias MethodDef
	return marshalNode("MethodDefinition", (*alias)(n))
}

// PropDef is a class field.
type PropDef struct {
	Span          source.Span `json:"span"`
	Key           Expr        `json:"key"`
	Computed      bool        `json:"computed,omitempty"`
	Static        bool        `json:"static,omitempty"`
	Value         Expr        `json:"value,omitempty"`
	TypeAnn       TSType      `json:"typeAnnotation,omitempty"`
	Readonly      bool        `json:"readonly,omitempty"`
	Accessibility string      `json:"accessibility,omitempty"`
	Declare       bool        `json:"declare,omitempty"`
	Optional      bool        `json:"optional,omitempty"`
	Definite      bool        `json:"definite,omitempty"`
}

func (n *PropDef) Pos() source.Span { return n.Span }
func (n *PropDef) classMemberNode() {}

func (n *PropDef) MarshalJSON() ([]byte, error) {
	type alias PropDef
	return marshalNode("PropertyDefinition", (*alias)(n))
}

// StaticBlock is a class static initialization block.
type StaticBlock struct {
	Span source.Span `json:"span"`
	Body *BlockStmt  `json:"body"`
}

func (n *StaticBlock) Pos() source.Span { return n.Span }
func (n *StaticBlock) classMemberNode() {}

func (n *StaticBlock) MarshalJSON() ([]byte, error) {
	type alias StaticBlock
	return marshalNode("StaticBlock", (*alias)(n))
}
