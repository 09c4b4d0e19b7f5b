package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ecmaparse/internal/diag"
	"ecmaparse/internal/source"
)

// Pretty renders diagnostics for a terminal. Walks bag.Items() in order
// (callers Sort() first). Each diagnostic prints as
//
//	<path>:<line>:<col>: <severity>[<code>]: <message>
//
// followed by the source line and a caret underline covering the span,
// then notes in the same shape when ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeading(w, fs, d.Primary, d.Severity, d.Code, d.Message, opts)
		writeUnderline(w, fs, d.Primary, d.Severity, opts)

		if opts.ShowNotes {
			for _, note := range d.Notes {
				writeNote(w, fs, note, opts)
			}
		}
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func writeHeading(w io.Writer, fs *source.FileSet, span source.Span, sev diag.Severity, code diag.Code, msg string, opts PrettyOpts) {
	f := fs.Get(span.File)
	pos := fs.Resolve(span.File, span.Start)

	label := fmt.Sprintf("%s[%s]", sev.String(), code.ID())
	if opts.Color {
		label = severityColor(sev).Sprint(label)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", formatPath(f, opts.PathMode), pos.Line, pos.Col, label, msg)
}

// writeUnderline prints the offending source line with a ^~~~ marker under
// the span. Widths are measured with runewidth so the caret lands under the
// right column for tabs and wide runes.
func writeUnderline(w io.Writer, fs *source.FileSet, span source.Span, sev diag.Severity, opts PrettyOpts) {
	line := fs.Snippet(span.File, span.Start)
	if line == "" {
		return
	}
	pos := fs.Resolve(span.File, span.Start)

	// column is 1-based; the prefix is everything on the line before the span
	prefixEnd := int(pos.Col) - 1
	if prefixEnd > len(line) {
		prefixEnd = len(line)
	}
	pad := displayWidth(line[:prefixEnd])

	spanLen := int(span.Len())
	remainder := len(line) - prefixEnd
	if spanLen > remainder {
		spanLen = remainder
	}
	markWidth := displayWidth(line[prefixEnd : prefixEnd+spanLen])
	if markWidth < 1 {
		markWidth = 1
	}

	marker := "^" + strings.Repeat("~", markWidth-1)
	if opts.Color {
		marker = severityColor(sev).Sprint(marker)
	}

	fmt.Fprintf(w, "  %s\n", expandTabs(line))
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}

func writeNote(w io.Writer, fs *source.FileSet, note diag.Note, opts PrettyOpts) {
	f := fs.Get(note.Span.File)
	pos := fs.Resolve(note.Span.File, note.Span.Start)

	label := "note"
	if opts.Color {
		label = color.New(color.FgCyan).Sprint(label)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", formatPath(f, opts.PathMode), pos.Line, pos.Col, label, note.Msg)
}

const tabWidth = 4

// displayWidth measures text as rendered, with tabs expanded.
func displayWidth(s string) int {
	width := 0
	for _, r := range s {
		if r == '\t' {
			width += tabWidth - width%tabWidth
			continue
		}
		width += runewidth.RuneWidth(r)
	}
	return width
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	width := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - width%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			width += n
			continue
		}
		b.WriteRune(r)
		width += runewidth.RuneWidth(r)
	}
	return b.String()
}
