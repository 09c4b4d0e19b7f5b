package ast

import "ecmaparse/internal/source"

// TSTypeRef is a (possibly dotted) type name with optional type arguments:
// number, Foo.Bar, Map<string, T>.
type TSTypeRef struct {
	Span     source.Span `json:"span"`
	Name     string      `json:"name"`
	TypeArgs []TSType    `json:"typeArguments,omitempty"`
}

func (n *TSTypeRef) Pos() source.Span { return n.Span }
func (n *TSTypeRef) tsTypeNode()      {}

func (n *TSTypeRef) MarshalJSON() ([]byte, error) {
	type alias TSTypeRef
	return marshalNode("TSTypeReference", (*alias)(n))
}

// TSUnion is A | B | C.
type TSUnion struct {
	Span  source.Span `json:"span"`
	Types []TSType    `json:"types"`
}

func (n *TSUnion) Pos() source.Span { return n.Span }
func (n *TSUnion) tsTypeNode()      {}

func (n *TSUnion) MarshalJSON() ([]byte, error) {
	type alias TSUnion
	return marshalNode("TSUnionType", (*alias)(n))
}

// TSIntersection is A & B & C.
type TSIntersection struct {
	Span  source.Span `json:"span"`
	Types []TSType    `json:"types"`
}

func (n *TSIntersection) Pos() source.Span { return n.Span }
func (n *TSIntersection) tsTypeNode()      {}

func (n *TSIntersection) MarshalJSON() ([]byte, error) {
	type alias TSIntersection
	return marshalNode("TSIntersectionType", (*alias)(n))
}

// TSArrayType is T[].
type TSArrayType struct {
	Span source.Span `json:"span"`
	Elem TSType      `json:"elementType"`
}

func (n *TSArrayType) Pos() source.Span { return n.Span }
func (n *TSArrayType) tsTypeNode()      {}

func (n *TSArrayType) MarshalJSON() ([]byte, error) {
	type alias TSArrayType
	return marshalNode("TSArrayType", (*alias)(n))
}

// TSTupleType is [A, B, C].
type TSTupleType struct {
	Span  source.Span `json:"span"`
	Elems []TSType    `json:"elementTypes"`
}

func (n *TSTupleType) Pos() source.Span { return n.Span }
func (n *TSTupleType) tsTypeNode()      {}

func (n *TSTupleType) MarshalJSON() ([]byte, error) {
	type alias TSTupleType
	if n.Elems == nil {
		n.Elems = []TSType{}
	}
	return marshalNode("TSTupleType", (*alias)(n))
}

// TSFuncType is (a: A) => R.
type TSFuncType struct {
	Span       source.Span    `json:"span"`
	Params     []*Param       `json:"params"`
	TypeParams []*TSTypeParam `json:"typeParameters,omitempty"`
	ReturnType TSType         `json:"returnType"`
}

func (n *TSFuncType) Pos() source.Span { return n.Span }
func (n *TSFuncType) tsTypeNode()      {}

func (n *TSFuncType) MarshalJSON() ([]byte, error) {
	type alias TSFuncType
	if n.Params == nil {
		n.Params = []*Param{}
	}
	return marshalNode("TSFunctionType", (*alias)(n))
}

// TSTypeLit is an inline object type: { a: number; b?: string }.
type TSTypeLit struct {
	Span    source.Span     `json:"span"`
	Members []*TSTypeMember `json:"members"`
}

func (n *TSTypeLit) Pos() source.Span { return n.Span }
func (n *TSTypeLit) tsTypeNode()      {}

func (n *TSTypeLit) MarshalJSON() ([]byte, error) {
	type alias TSTypeLit
	if n.Members == nil {
		n.Members = []*TSTypeMember{}
	}
	return marshalNode("TSTypeLiteral", (*alias)(n))
}

// TSTypeMember is one member of an object type or interface body.
// Kind is "property", "method", "index", "call" or "construct".
type TSTypeMember struct {
	Span     source.Span `json:"span"`
	Kind     string      `json:"kind"`
	Key      Expr        `json:"key,omitempty"`
	Computed bool        `json:"computed,omitempty"`
	Optional bool        `json:"optional,omitempty"`
	Readonly bool        `json:"readonly,omitempty"`
	Params   []*Param    `json:"params,omitempty"`
	TypeAnn  TSType      `json:"typeAnnotation,omitempty"`
}

func (n *TSTypeMember) Pos() source.Span { return n.Span }

func (n *TSTypeMember) MarshalJSON() ([]byte, error) {
	type alias TSTypeMember
	return marshalNode("TSTypeMember", (*alias)(n))
}

// TSLiteralType is a literal in type position: "up" | 1 | true.
type TSLiteralType struct {
	Span source.Span `json:"span"`
	Lit  Expr        `json:"literal"`
}

func (n *TSLiteralType) Pos() source.Span { return n.Span }
func (n *TSLiteralType) tsTypeNode()      {}

func (n *TSLiteralType) MarshalJSON() ([]byte, error) {
	type alias TSLiteralType
	return marshalNode("TSLiteralType", (*alias)(n))
}

// TSTypeOperator is keyof/typeof/readonly/unique applied to a type.
type TSTypeOperator struct {
	Span    source.Span `json:"span"`
	Op      string      `json:"operator"`
	TypeAnn TSType      `json:"typeAnnotation"`
}

func (n *TSTypeOperator) Pos() source.Span { return n.Span }
func (n *TSTypeOperator) tsTypeNode()      {}

func (n *TSTypeOperator) MarshalJSON() ([]byte, error) {
	type alias TSTypeOperator
	return marshalNode("TSTypeOperator", (*alias)(n))
}

// TSIndexedAccess is T[K].
type TSIndexedAccess struct {
	Span  source.Span `json:"span"`
	Obj   TSType      `json:"objectType"`
	Index TSType      `json:"indexType"`
}

func (n *TSIndexedAccess) Pos() source.Span { return n.Span }
func (n *TSIndexedAccess) tsTypeNode()      {}

func (n *TSIndexedAccess) MarshalJSON() ([]byte, error) {
	type alias TSIndexedAccess
	return marshalNode("TSIndexedAccessType", (*alias)(n))
}

// TSConditionalType is Check extends Extends ? True : False.
type TSConditionalType struct {
	Span    source.Span `json:"span"`
	Check   TSType      `json:"checkType"`
	Extends TSType      `json:"extendsType"`
	True    TSType      `json:"trueType"`
	False   TSType      `json:"falseType"`
}

func (n *TSConditionalType) Pos() source.Span { return n.Span }
func (n *TSConditionalType) tsTypeNode()      {}

func (n *TSConditionalType) MarshalJSON() ([]byte, error) {
	type alias TSConditionalType
	return marshalNode("TSConditionalType", (*alias)(n))
}

// TSTypePredicate is "x is T" or "asserts x" in return-type position.
type TSTypePredicate struct {
	Span    source.Span `json:"span"`
	Param   string      `json:"parameterName"`
	Asserts bool        `json:"asserts,omitempty"`
	TypeAnn TSType      `json:"typeAnnotation,omitempty"`
}

func (n *TSTypePredicate) Pos() source.Span { return n.Span }
func (n *TSTypePredicate) tsTypeNode()      {}

func (n *TSTypePredicate) MarshalJSON() ([]byte, error) {
	type alias TSTypePredicate
	return marshalNode("TSTypePredicate", (*alias)(n))
}

// TSTypeParam is one generic parameter: T extends U = D.
type TSTypeParam struct {
	Span       source.Span `json:"span"`
	Name       string      `json:"name"`
	Constraint TSType      `json:"constraint,omitempty"`
	Default    TSType      `json:"default,omitempty"`
}

func (n *TSTypeParam) Pos() source.Span { return n.Span }

func (n *TSTypeParam) MarshalJSON() ([]byte, error) {
	type alias TSTypeParam
	return marshalNode("TSTypeParameter", (*alias)(n))
}
