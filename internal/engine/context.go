package engine

import (
	"sync"

	"ecmaparse/internal/diag"
	"ecmaparse/internal/source"
	"ecmaparse/internal/token"
)

// Context carries the per-parse state the engine otherwise would have to
// keep global: the file registry, the comment registry, the string
// interner scratch and the diagnostic buffer. Two contexts never share
// anything, so work done in one cannot leak identifiers, diagnostics or
// source maps into another.
//
// A Context is cheap to create and the recommended pattern is one fresh
// Context per file (driver.ParseDir does exactly that). A single Context
// may serve several sequential parses; it is not safe for concurrent ones.
type Context struct {
	Files    *source.FileSet
	Comments *CommentRegistry
	Interner *source.Interner
	Diags    *diag.Buffer

	// MaxDiagnostics caps how many errors the parser reports per parse;
	// 0 means unlimited.
	MaxDiagnostics uint
}

// NewContext creates an isolated parse context.
func NewContext() *Context {
	return &Context{
		Files:    source.NewFileSet(),
		Comments: NewCommentRegistry(),
		Interner: source.NewInterner(),
		Diags:    diag.NewBuffer(),
	}
}

// CommentRegistry accumulates the comment trivia of every parse run in a
// context, in source order. It satisfies lexer.CommentSink.
type CommentRegistry struct {
	mu       sync.Mutex
	comments []token.Trivia
}

func NewCommentRegistry() *CommentRegistry {
	return &CommentRegistry{}
}

// AddComment implements lexer.CommentSink.
func (r *CommentRegistry) AddComment(tr token.Trivia) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments = append(r.comments, tr)
}

// All returns a clone of the registered comments.
func (r *CommentRegistry) All() []token.Trivia {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]token.Trivia, len(r.comments))
	copy(out, r.comments)
	return out
}

// Len returns the number of registered comments.
func (r *CommentRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.comments)
}
