package ast

import "ecmaparse/internal/source"

// ExprStmt is an expression in statement position.
type ExprStmt struct {
	Span source.Span `json:"span"`
	Expr Expr        `json:"expression"`
}

func (n *ExprStmt) Pos() source.Span { return n.Span }
func (n *ExprStmt) stmtNode()        {}

func (n *ExprStmt) MarshalJSON() ([]byte, error) {
	type alias ExprStmt
	return marshalNode("ExpressionStatement", (*alias)(n))
}

// BlockStmt is a braced statement list.
type BlockStmt struct {
	Span source.Span `json:"span"`
	Body []Stmt      `json:"body"`
}

func (n *BlockStmt) Pos() source.Span { return n.Span }
func (n *BlockStmt) stmtNode()        {}

func (n *BlockStmt) MarshalJSON() ([]byte, error) {
	type alias BlockStmt
	if n.Body == nil {
		n.Body = []Stmt{}
	}
	return marshalNode("BlockStatement", (*alias)(n))
}

// EmptyStmt is a lone semicolon.
type EmptyStmt struct {
	Span source.Span `json:"span"`
}

func (n *EmptyStmt) Pos() source.Span { return n.Span }
func (n *EmptyStmt) stmtNode()        {}

func (n *EmptyStmt) MarshalJSON() ([]byte, error) {
	type alias EmptyStmt
	return marshalNode("EmptyStatement", (*alias)(n))
}

// DebuggerStmt is the debugger statement.
type DebuggerStmt struct {
	Span source.Span `json:"span"`
}

func (n *DebuggerStmt) Pos() source.Span { return n.Span }
func (n *DebuggerStmt) stmtNode()        {}

func (n *DebuggerStmt) MarshalJSON() ([]byte, error) {
	type alias DebuggerStmt
	return marshalNode("DebuggerStatement", (*alias)(n))
}

// ReturnStmt returns from a function, with an optional argument.
type ReturnStmt struct {
	Span source.Span `json:"span"`
	Arg  Expr        `json:"argument,omitempty"`
}

func (n *ReturnStmt) Pos() source.Span { return n.Span }
func (n *ReturnStmt) stmtNode()        {}

func (n *ReturnStmt) MarshalJSON() ([]byte, error) {
	type alias ReturnStmt
	return marshalNode("ReturnStatement", (*alias)(n))
}

// IfStmt is if/else.
type IfStmt struct {
	Span source.Span `json:"span"`
	Test Expr        `json:"test"`
	Cons Stmt        `json:"consequent"`
	Alt  Stmt        `json:"alternate,omitempty"`
}

func (n *IfStmt) Pos() source.Span { return n.Span }
func (n *IfStmt) stmtNode()        {}

func (n *IfStmt) MarshalJSON() ([]byte, error) {
	type alias IfStmt
	return marshalNode("IfStatement", (*alias)(n))
}

// ForStmt is the classic three-clause for loop. Init is a VarDecl or an
// expression statement's expression; any clause may be nil.
type ForStmt struct {
	Span   source.Span `json:"span"`
	Init   Node        `json:"init,omitempty"`
	Test   Expr        `json:"test,omitempty"`
	Update Expr        `json:"update,omitempty"`
	Body   Stmt        `json:"body"`
}

func (n *ForStmt) Pos() source.Span { return n.Span }
func (n *ForStmt) stmtNode()        {}

func (n *ForStmt) MarshalJSON() ([]byte, error) {
	type alias ForStmt
	return marshalNode("ForStatement", (*alias)(n))
}

// ForInStmt is for-in. Left is a VarDecl or a pattern.
type ForInStmt struct {
	Span  source.Span `json:"span"`
	Left  Node        `json:"left"`
	Right Expr        `json:"right"`
	Body  Stmt        `json:"body"`
}

func (n *ForInStmt) Pos() source.Span { return n.Span }
func (n *ForInStmt) stmtNode()        {}

func (n *ForInStmt) MarshalJSON() ([]byte, error) {
	type alias ForInStmt
	return marshalNode("ForInStatement", (*alias)(n))
}

// ForOfStmt is for-of, with the for-await variant flagged.
type ForOfStmt struct {
	Span  source.Span `json:"span"`
	Await bool        `json:"await,omitempty"`
	Left  Node        `json:"left"`
	Right Expr        `json:"right"`
	Body  Stmt        `json:"body"`
}

func (n *ForOfStmt) Pos() source.Span { return n.Span }
func (n *ForOfStmt) stmtNode()        {}

func (n *ForOfStmt) MarshalJSON() ([]byte, error) {
	type alias ForOfStmt
	return marshalNode("ForOfStatement", (*alias)(n))
}

// WhileStmt is the while loop.
type WhileStmt struct {
	Span source.Span `json:"span"`
	Test Expr        `json:"test"`
	Body Stmt        `json:"body"`
}

func (n *WhileStmt) Pos() source.Span { return n.Span }
func (n *WhileStmt) stmtNode()        {}

func (n *WhileStmt) MarshalJSON() ([]byte, error) {
	type alias WhileStmt
	return marshalNode("WhileStatement", (*alias)(n))
}

// DoWhileStmt is the do-while loop.
type DoWhileStmt struct {
	Span source.Span `json:"span"`
	Body Stmt        `json:"body"`
	Test Expr        `json:"test"`
}

func (n *DoWhileStmt) Pos() source.Span { return n.Span }
func (n *DoWhileStmt) stmtNode()        {}

func (n *DoWhileStmt) MarshalJSON() ([]byte, error) {
	type alias DoWhileStmt
	return marshalNode("DoWhileStatement", (*alias)(n))
}

// BreakStmt exits a loop or labeled statement.
type BreakStmt struct {
	Span  source.Span `json:"span"`
	Label *Ident      `json:"label,omitempty"`
}

func (n *BreakStmt) Pos() source.Span { return n.Span }
func (n *BreakStmt) stmtNode()        {}

func (n *BreakStmt) MarshalJSON() ([]byte, error) {
	type alias BreakStmt
	return marshalNode("BreakStatement", (*alias)(n))
}

// ContinueStmt continues a loop.
type ContinueStmt struct {
	Span  source.Span `json:"span"`
	Label *Ident      `json:"label,omitempty"`
}

func (n *ContinueStmt) Pos() source.Span { return n.Span }
func (n *ContinueStmt) stmtNode()        {}

func (n *ContinueStmt) MarshalJSON() ([]byte, error) {
	type alias ContinueStmt
	return marshalNode("ContinueStatement", (*alias)(n))
}

// LabeledStmt is "label: stmt".
type LabeledStmt struct {
	Span  source.Span `json:"span"`
	Label *Ident      `json:"label"`
	Body  Stmt        `json:"body"`
}

func (n *LabeledStmt) Pos() source.Span { return n.Span }
func (n *LabeledStmt) stmtNode()        {}

func (n *LabeledStmt) MarshalJSON() ([]byte, error) {
	type alias LabeledStmt
	return marshalNode("LabeledStatement", (*alias)(n))
}

// ThrowStmt throws its argument.
type ThrowStmt struct {
	Span source.Span `json:"span"`
	Arg  Expr        `json:"argument"`
}

func (n *ThrowStmt) Pos() source.Span { return n.Span }
func (n *ThrowStmt) stmtNode()        {}

func (n *ThrowStmt) MarshalJSON() ([]byte, error) {
	type alias ThrowStmt
	return marshalNode("ThrowStatement", (*alias)(n))
}

// TryStmt is try/catch/finally. At least one of Handler and Finalizer is set
// in well-formed input.
type TryStmt struct {
	Span      source.Span  `json:"span"`
	Block     *BlockStmt   `json:"block"`
	Handler   *CatchClause `json:"handler,omitempty"`
	Finalizer *BlockStmt   `json:"finalizer,omitempty"`
}

func (n *TryStmt) Pos() source.Span { return n.Span }
func (n *TryStmt) stmtNode()        {}

func (n *TryStmt) MarshalJSON() ([]byte, error) {
	type alias TryStmt
	return marshalNode("TryStatement", (*alias)(n))
}

// CatchClause binds the caught value (optionally) and handles it.
type CatchClause struct {
	Span  source.Span `json:"span"`
	Param Pat         `json:"param,omitempty"`
	Body  *BlockStmt  `json:"body"`
}

func (n *CatchClause) Pos() source.Span { return n.Span }

func (n *CatchClause) MarshalJSON() ([]byte, error) {
	type alias CatchClause
	return marshalNode("CatchClause", (*alias)(n))
}

// SwitchStmt is switch with its cases.
type SwitchStmt struct {
	Span  source.Span   `json:"span"`
	Disc  Expr          `json:"discriminant"`
	Cases []*SwitchCase `json:"cases"`
}

func (n *SwitchStmt) Pos() source.Span { return n.Span }
func (n *SwitchStmt) stmtNode()        {}

func (n *SwitchStmt) MarshalJSON() ([]byte, error) {
	type alias SwitchStmt
	if n.Cases == nil {
		n.Cases = []*SwitchCase{}
	}
	return marshalNode("SwitchStatement", (*alias)(n))
}

// SwitchCase is one case clause; Test == nil marks default.
type SwitchCase struct {
	Span source.Span `json:"span"`
	Test Expr        `json:"test,omitempty"`
	Cons []Stmt      `json:"consequent"`
}

func (n *SwitchCase) Pos() source.Span { return n.Span }

func (n *SwitchCase) MarshalJSON() ([]byte, error) {
	type alias SwitchCase
	if n.Cons == nil {
		n.Cons = []Stmt{}
	}
	return marshalNode("SwitchCase", (*alias)(n))
}
