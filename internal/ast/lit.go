package ast

import "ecmaparse/internal/source"

// StringLit is a string literal; Value is the decoded text, Raw keeps the
// quotes and escapes.
type StringLit struct {
	Span  source.Span `json:"span"`
	Value string      `json:"value"`
	Raw   string      `json:"raw"`
}

func (n *StringLit) Pos() source.Span { return n.Span }
func (n *StringLit) exprNode()        {}

func (n *StringLit) MarshalJSON() ([]byte, error) {
	type alias StringLit
	return marshalNode("StringLiteral", (*alias)(n))
}

// NumberLit is a numeric literal.
type NumberLit struct {
	Span  source.Span `json:"span"`
	Value float64     `json:"value"`
	Raw   string      `json:"raw"`
}

func (n *NumberLit) Pos() source.Span { return n.Span }
func (n *NumberLit) exprNode()        {}

func (n *NumberLit) MarshalJSON() ([]byte, error) {
	type alias NumberLit
	return marshalNode("NumericLiteral", (*alias)(n))
}

// BigIntLit is a bigint literal; the value stays textual.
type BigIntLit struct {
	Span source.Span `json:"span"`
	Raw  string      `json:"raw"`
}

func (n *BigIntLit) Pos() source.Span { return n.Span }
func (n *BigIntLit) exprNode()        {}

func (n *BigIntLit) MarshalJSON() ([]byte, error) {
	type alias BigIntLit
	return marshalNode("BigIntLiteral", (*alias)(n))
}

// BoolLit is true or false.
type BoolLit struct {
	Span  source.Span `json:"span"`
	Value bool        `json:"value"`
}

func (n *BoolLit) Pos() source.Span { return n.Span }
func (n *BoolLit) exprNode()        {}

func (n *BoolLit) MarshalJSON() ([]byte, error) {
	type alias BoolLit
	return marshalNode("BooleanLiteral", (*alias)(n))
}

// NullLit is null.
type NullLit struct {
	Span source.Span `json:"span"`
}

func (n *NullLit) Pos() source.Span { return n.Span }
func (n *NullLit) exprNode()        {}

func (n *NullLit) MarshalJSON() ([]byte, error) {
	type alias NullLit
	return marshalNode("NullLiteral", (*alias)(n))
}

// RegexLit is a regular expression literal.
type RegexLit struct {
	Span    source.Span `json:"span"`
	Pattern string      `json:"pattern"`
	Flags   string      `json:"flags"`
}

func (n *RegexLit) Pos() source.Span { return n.Span }
func (n *RegexLit) exprNode()        {}

func (n *RegexLit) MarshalJSON() ([]byte, error) {
	type alias RegexLit
	return marshalNode("RegExpLiteral", (*alias)(n))
}

// TemplateLiteral is a template string; Quasis always has one more element
// than Exprs.
type TemplateLiteral struct {
	Span   source.Span        `json:"span"`
	Quasis []*TemplateElement `json:"quasis"`
	Exprs  []Expr             `json:"expressions"`
}

func (n *TemplateLiteral) Pos() source.Span { return n.Span }
func (n *TemplateLiteral) exprNode()        {}

func (n *TemplateLiteral) MarshalJSON() ([]byte, error) {
	type alias TemplateLiteral
	if n.Quasis == nil {
		n.Quasis = []*TemplateElement{}
	}
	if n.Exprs == nil {
		n.Exprs = []Expr{}
	}
	return marshalNode("TemplateLiteral", (*alias)(n))
}

// TemplateElement is one raw chunk of a template literal.
type TemplateElement struct {
	Span   source.Span `json:"span"`
	Raw    string      `json:"raw"`
	Cooked string      `json:"cooked"`
	Tail   bool        `json:"tail"`
}

func (n *TemplateElement) Pos() source.Span { return n.Span }

func (n *TemplateElement) MarshalJSON() ([]byte, error) {
	type alias TemplateElement
	return marshalNode("TemplateElement", (*alias)(n))
}
