package ast

import "ecmaparse/internal/source"

// ObjectPat is an object destructuring pattern.
type ObjectPat struct {
	Span    source.Span `json:"span"`
	Props   []Node      `json:"properties"` // *PatProperty and *RestElement
	TypeAnn TSType      `json:"typeAnnotation,omitempty"`
}

func (n *ObjectPat) Pos() source.Span { return n.Span }
func (n *ObjectPat) patNode()         {}

func (n *ObjectPat) MarshalJSON() ([]byte, error) {
	type alias ObjectPat
	if n.Props == nil {
		n.Props = []Node{}
	}
	return marshalNode("ObjectPattern", (*alias)(n))
}

// PatProperty is one member of an object pattern.
type PatProperty struct {
	Span      source.Span `json:"span"`
	Key       Expr        `json:"key"`
	Value     Pat         `json:"value"`
	Computed  bool        `json:"computed,omitempty"`
	Shorthand bool        `json:"shorthand,omitempty"`
}

func (n *PatProperty) Pos() source.Span { return n.Span }

func (n *PatProperty) MarshalJSON() ([]byte, error) {
	type alias PatProperty
	return marshalNode("Property", (*alias)(n))
}

// ArrayPat is an array destructuring pattern; nil elements are holes.
type ArrayPat struct {
	Span     source.Span `json:"span"`
	Elements []Pat       `json:"elements"`
	TypeAnn  TSType      `json:"typeAnnotation,omitempty"`
}

func (n *ArrayPat) Pos() source.Span { return n.Span }
func (n *ArrayPat) patNode()         {}

func (n *ArrayPat) MarshalJSON() ([]byte, error) {
	type alias ArrayPat
	if n.Elements == nil {
		n.Elements = []Pat{}
	}
	return marshalNode("ArrayPattern", (*alias)(n))
}

// AssignPat is a default value in a pattern: {a = 1} or (x = 2) => ...
type AssignPat struct {
	Span  source.Span `json:"span"`
	Left  Pat         `json:"left"`
	Right Expr        `json:"right"`
}

func (n *AssignPat) Pos() source.Span { return n.Span }
func (n *AssignPat) patNode()         {}

func (n *AssignPat) MarshalJSON() ([]byte, error) {
	type alias AssignPat
	return marshalNode("AssignmentPattern", (*alias)(n))
}

// RestElement is ...pat in a pattern or parameter list.
type RestElement struct {
	Span    source.Span `json:"span"`
	Arg     Pat         `json:"argument"`
	TypeAnn TSType      `json:"typeAnnotation,omitempty"`
}

func (n *RestElement) Pos() source.Span { return n.Span }
func (n *RestElement) patNode()         {}

func (n *RestElement) MarshalJSON() ([]byte, error) {
	type alias RestElement
	return marshalNode("RestElement", (*alias)(n))
}
