// Package ast defines the ECMAScript/TypeScript syntax tree produced by the
// parser. Nodes are plain pointer structs shaped after ESTree; every node
// serializes to JSON with a "type" discriminator and a byte-offset "span",
// which is the whole contract the parse result promises.
package ast

import (
	"encoding/json"
	"strconv"

	"ecmaparse/internal/source"
)

// Node is anything with a source location.
type Node interface {
	Pos() source.Span
}

// Stmt is a statement or declaration.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression.
type Expr interface {
	Node
	exprNode()
}

// Pat is a binding pattern. Identifiers are both Expr and Pat.
type Pat interface {
	Node
	patNode()
}

// TSType is a TypeScript type annotation node.
type TSType interface {
	Node
	tsTypeNode()
}

// marshalNode splices {"type": kind} in front of the node's own fields.
// Every node's MarshalJSON funnels through here via the alias-type trick,
// so the discriminator can never be forgotten or misspelled in a literal.
func marshalNode(kind string, v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(b) < 2 || b[0] != '{' {
		return b, nil
	}
	prefix := []byte(`{"type":` + strconv.Quote(kind))
	if len(b) == 2 { // "{}"
		return append(prefix, '}'), nil
	}
	out := make([]byte, 0, len(prefix)+len(b))
	out = append(out, prefix...)
	out = append(out, ',')
	out = append(out, b[1:]...)
	return out, nil
}
