package ast

import "ecmaparse/internal/source"

// Ident is an identifier. It doubles as a binding pattern, in which case
// Optional and TypeAnn may be set (TypeScript).
type Ident struct {
	Span     source.Span `json:"span"`
	Name     string      `json:"name"`
	Optional bool        `json:"optional,omitempty"`
	TypeAnn  TSType      `json:"typeAnnotation,omitempty"`
}

func (n *Ident) Pos() source.Span { return n.Span }
func (n *Ident) exprNode()        {}
func (n *Ident) patNode()         {}

func (n *Ident) MarshalJSON() ([]byte, error) {
	type alias Ident
	return marshalNode("Identifier", (*alias)(n))
}

// PrivateName is a #name inside a class body.
type PrivateName struct {
	Span source.Span `json:"span"`
	Name string      `json:"name"`
}

func (n *PrivateName) Pos() source.Span { return n.Span }
func (n *PrivateName) exprNode()        {}

func (n *PrivateName) MarshalJSON() ([]byte, error) {
	type alias PrivateName
	return marshalNode("PrivateName", (*alias)(n))
}

// ThisExpr is `this`.
type ThisExpr struct {
	Span source.Span `json:"span"`
}

func (n *ThisExpr) Pos() source.Span { return n.Span }
func (n *ThisExpr) exprNode()        {}

func (n *ThisExpr) MarshalJSON() ([]byte, error) {
	type alias ThisExpr
	return marshalNode("ThisExpression", (*alias)(n))
}

// SuperExpr is `super` in call or member position.
type SuperExpr struct {
	Span source.Span `json:"span"`
}

func (n *SuperExpr) Pos() source.Span { return n.Span }
func (n *SuperExpr) exprNode()        {}

func (n *SuperExpr) MarshalJSON() ([]byte, error) {
	type alias SuperExpr
	return marshalNode("Super", (*alias)(n))
}

// MetaProp is import.meta or new.target.
type MetaProp struct {
	Span source.Span `json:"span"`
	Meta string      `json:"meta"`
	Prop string      `json:"property"`
}

func (n *MetaProp) Pos() source.Span { return n.Span }
func (n *MetaProp) exprNode()        {}

func (n *MetaProp) MarshalJSON() ([]byte, error) {
	type alias MetaProp
	return marshalNode("MetaProperty", (*alias)(n))
}

// ArrayLit is an array literal; nil elements are holes.
type ArrayLit struct {
	Span     source.Span `json:"span"`
	Elements []Expr      `json:"elements"`
}

func (n *ArrayLit) Pos() source.Span { return n.Span }
func (n *ArrayLit) exprNode()        {}

func (n *ArrayLit) MarshalJSON() ([]byte, error) {
	type alias ArrayLit
	if n.Elements == nil {
		n.Elements = []Expr{}
	}
	return marshalNode("ArrayExpression", (*alias)(n))
}

// ObjectLit is an object literal; Props holds *Property and *SpreadElement.
type ObjectLit struct {
	Span  source.Span `json:"span"`
	Props []Node      `json:"properties"`
}

func (n *ObjectLit) Pos() source.Span { return n.Span }
func (n *ObjectLit) exprNode()        {}

func (n *ObjectLit) MarshalJSON() ([]byte, error) {
	type alias ObjectLit
	if n.Props == nil {
		n.Props = []Node{}
	}
	return marshalNode("ObjectExpression", (*alias)(n))
}

// Property is one key-value member of an object literal.
type Property struct {
	Span      source.Span `json:"span"`
	Key       Expr        `json:"key"`
	Value     Node        `json:"value,omitempty"` // Expr, or Pat in destructuring
	Computed  bool        `json:"computed,omitempty"`
	Shorthand bool        `json:"shorthand,omitempty"`
	Method    bool        `json:"method,omitempty"`
	Kind      string      `json:"kind,omitempty"` // "get" | "set" for accessors
}

func (n *Property) Pos() source.Span { return n.Span }

func (n *Property) MarshalJSON() ([]byte, error) {
	type alias Property
	return marshalNode("Property", (*alias)(n))
}

// SpreadElement is ...expr in calls, arrays and object literals.
type SpreadElement struct {
	Span source.Span `json:"span"`
	Arg  Expr        `json:"argument"`
}

func (n *SpreadElement) Pos() source.Span { return n.Span }
func (n *SpreadElement) exprNode()        {}

func (n *SpreadElement) MarshalJSON() ([]byte, error) {
	type alias SpreadElement
	return marshalNode("SpreadElement", (*alias)(n))
}

// FuncExpr is a (possibly named) function expression.
type FuncExpr struct {
	Span source.Span `json:"span"`
	ID   *Ident      `json:"identifier,omitempty"`
	Fn   *Function   `json:"function"`
}

func (n *FuncExpr) Pos() source.Span { return n.Span }
func (n *FuncExpr) exprNode()        {}

func (n *FuncExpr) MarshalJSON() ([]byte, error) {
	type alias FuncExpr
	return marshalNode("FunctionExpression", (*alias)(n))
}

// ArrowFunc is an arrow function; Body is a BlockStmt or an Expr.
type ArrowFunc struct {
	Span       source.Span    `json:"span"`
	Params     []*Param       `json:"params"`
	Body       Node           `json:"body"`
	Async      bool           `json:"async,omitempty"`
	TypeParams []*TSTypeParam `json:"typeParameters,omitempty"`
	ReturnType TSType         `json:"returnType,omitempty"`
}

func (n *ArrowFunc) Pos() source.Span { return n.Span }
func (n *ArrowFunc) exprNode()        {}

func (n *ArrowFunc) MarshalJSON() ([]byte, error) {
	type alias ArrowFunc
	if n.Params == nil {
		n.Params = []*Param{}
	}
	return marshalNode("ArrowFunctionExpression", (*alias)(n))
}

// ClassExpr is a class in expression position.
type ClassExpr struct {
	Span  source.Span `json:"span"`
	ID    *Ident      `json:"identifier,omitempty"`
	Class *Class      `json:"class"`
}

func (n *ClassExpr) Pos() source.Span { return n.Span }
func (n *ClassExpr) exprNode()        {}

func (n *ClassExpr) MarshalJSON() ([]byte, error) {
	type alias ClassExpr
	return marshalNode("ClassExpression", (*alias)(n))
}

// UnaryExpr is a prefix operator: !x, -x, typeof x, void x, delete x, ~x.
type UnaryExpr struct {
	Span source.Span `json:"span"`
	Op   string      `json:"operator"`
	Arg  Expr        `json:"argument"`
}

func (n *UnaryExpr) Pos() source.Span { return n.Span }
func (n *UnaryExpr) exprNode()        {}

func (n *UnaryExpr) MarshalJSON() ([]byte, error) {
	type alias UnaryExpr
	return marshalNode("UnaryExpression", (*alias)(n))
}

// UpdateExpr is ++/-- in prefix or postfix position.
type UpdateExpr struct {
	Span   source.Span `json:"span"`
	Op     string      `json:"operator"`
	Prefix bool        `json:"prefix"`
	Arg    Expr        `json:"argument"`
}

func (n *UpdateExpr) Pos() source.Span { return n.Span }
func (n *UpdateExpr) exprNode()        {}

func (n *UpdateExpr) MarshalJSON() ([]byte, error) {
	type alias UpdateExpr
	return marshalNode("UpdateExpression", (*alias)(n))
}

// BinaryExpr covers arithmetic, comparison, bitwise, in and instanceof.
type BinaryExpr struct {
	Span  source.Span `json:"span"`
	Op    string      `json:"operator"`
	Left  Expr        `json:"left"`
	Right Expr        `json:"right"`
}

func (n *BinaryExpr) Pos() source.Span { return n.Span }
func (n *BinaryExpr) exprNode()        {}

func (n *BinaryExpr) MarshalJSON() ([]byte, error) {
	type alias BinaryExpr
	return marshalNode("BinaryExpression", (*alias)(n))
}

// LogicalExpr is &&, || or ??.
type LogicalExpr struct {
	Span  source.Span `json:"span"`
	Op    string      `json:"operator"`
	Left  Expr        `json:"left"`
	Right Expr        `json:"right"`
}

func (n *LogicalExpr) Pos() source.Span { return n.Span }
func (n *LogicalExpr) exprNode()        {}

func (n *LogicalExpr) MarshalJSON() ([]byte, error) {
	type alias LogicalExpr
	return marshalNode("LogicalExpression", (*alias)(n))
}

// AssignExpr is assignment, plain or compound. Target is a Pat for
// destructuring assignments, otherwise an Expr.
type AssignExpr struct {
	Span   source.Span `json:"span"`
	Op     string      `json:"operator"`
	Target Node        `json:"left"`
	Value  Expr        `json:"right"`
}

func (n *AssignExpr) Pos() source.Span { return n.Span }
func (n *AssignExpr) exprNode()        {}

func (n *AssignExpr) MarshalJSON() ([]byte, error) {
	type alias AssignExpr
	return marshalNode("AssignmentExpression", (*alias)(n))
}

// CondExpr is the ternary operator.
type CondExpr struct {
	Span source.Span `json:"span"`
	Test Expr        `json:"test"`
	Cons Expr        `json:"consequent"`
	Alt  Expr        `json:"alternate"`
}

func (n *CondExpr) Pos() source.Span { return n.Span }
func (n *CondExpr) exprNode()        {}

func (n *CondExpr) MarshalJSON() ([]byte, error) {
	type alias CondExpr
	return marshalNode("ConditionalExpression", (*alias)(n))
}

// CallExpr is a call; Optional marks ?.() calls.
type CallExpr struct {
	Span     source.Span `json:"span"`
	Callee   Expr        `json:"callee"`
	Args     []Expr      `json:"arguments"`
	Optional bool        `json:"optional,omitempty"`
	TypeArgs []TSType    `json:"typeArguments,omitempty"`
}

func (n *CallExpr) Pos() source.Span { return n.Span }
func (n *CallExpr) exprNode()        {}

func (n *CallExpr) MarshalJSON() ([]byte, error) {
	type alias CallExpr
	if n.Args == nil {
		n.Args = []Expr{}
	}
	return marshalNode("CallExpression", (*alias)(n))
}

// ImportExpr is a dynamic import(...) call.
type ImportExpr struct {
	Span source.Span `json:"span"`
	Args []Expr      `json:"arguments"`
}

func (n *ImportExpr) Pos() source.Span { return n.Span }
func (n *ImportExpr) exprNode()        {}

func (n *ImportExpr) MarshalJSON() ([]byte, error) {
	type alias ImportExpr
	if n.Args == nil {
		n.Args = []Expr{}
	}
	return marshalNode("ImportExpression", (*alias)(n))
}

// Source returns the first argument if it is a string literal.
func (n *ImportExpr) Source() (*StringLit, bool) {
	if len(n.Args) == 0 {
		return nil, false
	}
	s, ok := n.Args[0].(*StringLit)
	return s, ok
}

// NewExpr is a new-expression.
type NewExpr struct {
	Span     source.Span `json:"span"`
	Callee   Expr        `json:"callee"`
	Args     []Expr      `json:"arguments"`
	TypeArgs []TSType    `json:"typeArguments,omitempty"`
}

func (n *NewExpr) Pos() source.Span { return n.Span }
func (n *NewExpr) exprNode()        {}

func (n *NewExpr) MarshalJSON() ([]byte, error) {
	type alias NewExpr
	if n.Args == nil {
		n.Args = []Expr{}
	}
	return marshalNode("NewExpression", (*alias)(n))
}

// MemberExpr is property access; Computed marks a[b], Optional marks a?.b.
type MemberExpr struct {
	Span     source.Span `json:"span"`
	Obj      Expr        `json:"object"`
	Prop     Expr        `json:"property"`
	Computed bool        `json:"computed,omitempty"`
	Optional bool        `json:"optional,omitempty"`
}

func (n *MemberExpr) Pos() source.Span { return n.Span }
func (n *MemberExpr) exprNode()        {}

func (n *MemberExpr) MarshalJSON() ([]byte, error) {
	type alias MemberExpr
	return marshalNode("MemberExpression", (*alias)(n))
}

// SeqExpr is the comma operator.
type SeqExpr struct {
	Span  source.Span `json:"span"`
	Exprs []Expr      `json:"expressions"`
}

func (n *SeqExpr) Pos() source.Span { return n.Span }
func (n *SeqExpr) exprNode()        {}

func (n *SeqExpr) MarshalJSON() ([]byte, error) {
	type alias SeqExpr
	return marshalNode("SequenceExpression", (*alias)(n))
}

// YieldExpr is yield / yield*.
type YieldExpr struct {
	Span     source.Span `json:"span"`
	Arg      Expr        `json:"argument,omitempty"`
	Delegate bool        `json:"delegate,omitempty"`
}

func (n *YieldExpr) Pos() source.Span { return n.Span }
func (n *YieldExpr) exprNode()        {}

func (n *YieldExpr) MarshalJSON() ([]byte, error) {
	type alias YieldExpr
	return marshalNode("YieldExpression", (*alias)(n))
}

// AwaitExpr is await expr.
type AwaitExpr struct {
	Span source.Span `json:"span"`
	Arg  Expr        `json:"argument"`
}

func (n *AwaitExpr) Pos() source.Span { return n.Span }
func (n *AwaitExpr) exprNode()        {}

func (n *AwaitExpr) MarshalJSON() ([]byte, error) {
	type alias AwaitExpr
	return marshalNode("AwaitExpression", (*alias)(n))
}

// TaggedTemplate is tag`...`.
type TaggedTemplate struct {
	Span  source.Span      `json:"span"`
	Tag   Expr             `json:"tag"`
	Quasi *TemplateLiteral `json:"quasi"`
}

func (n *TaggedTemplate) Pos() source.Span { return n.Span }
func (n *TaggedTemplate) exprNode()        {}

func (n *TaggedTemplate) MarshalJSON() ([]byte, error) {
	type alias TaggedTemplate
	return marshalNode("TaggedTemplateExpression", (*alias)(n))
}

// TSAsExpr is "expr as Type" (also covers "expr as const").
type TSAsExpr struct {
	Span    source.Span `json:"span"`
	Expr    Expr        `json:"expression"`
	TypeAnn TSType      `json:"typeAnnotation"`
}

func (n *TSAsExpr) Pos() source.Span { return n.Span }
func (n *TSAsExpr) exprNode()        {}

func (n *TSAsExpr) MarshalJSON() ([]byte, error) {
	type alias TSAsExpr
	return marshalNode("TSAsExpression", (*alias)(n))
}

// TSNonNull is the postfix "!" assertion.
type TSNonNull struct {
	Span source.Span `json:"span"`
	Expr Expr        `json:"expression"`
}

func (n *TSNonNull) Pos() source.Span { return n.Span }
func (n *TSNonNull) exprNode()        {}

func (n *TSNonNull) MarshalJSON() ([]byte, error) {
	type alias TSNonNull
	return marshalNode("TSNonNullExpression", (*alias)(n))
}
