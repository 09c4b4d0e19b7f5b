package diag

import (
	"sync"

	"ecmaparse/internal/source"
)

// Buffer is the append-only diagnostic sink wired into the parse context.
// It implements Reporter, so the lexer and parser emit straight into it
// instead of printing or aborting. The lock exists to satisfy the Reporter
// contract's thread-safety requirement; within one parse, writes are
// sequential by construction.
//
// Records are never removed. A failed parse takes Snapshot(), a clone of
// the records accumulated so far, leaving the live buffer untouched.
type Buffer struct {
	mu    sync.RWMutex
	items []Diagnostic
}

// NewBuffer creates an empty diagnostic buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Report implements Reporter. Insertion order is detection order.
func (b *Buffer) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Notes: notes,
	})
}

// Snapshot returns a clone of all records accumulated so far, in emission
// order.
func (b *Buffer) Snapshot() []Diagnostic {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

// ErrorCount returns the number of records with Severity >= Error.
func (b *Buffer) ErrorCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 0
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			n++
		}
	}
	return n
}

// Len returns the number of recorded diagnostics.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}
