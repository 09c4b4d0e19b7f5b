package diag

import (
	"ecmaparse/internal/source"
)

// Note attaches a secondary labeled span to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one lexer or parser complaint. Immutable once recorded.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// WithNote returns a copy of the diagnostic with an extra note.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(append([]Note(nil), d.Notes...), Note{Span: sp, Msg: msg})
	return d
}
