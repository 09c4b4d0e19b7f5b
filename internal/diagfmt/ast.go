package diagfmt

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"ecmaparse/internal/ast"
	"ecmaparse/internal/source"
)

// FormatASTTree writes a box-drawing tree of the module: each line carries
// the field label, node type, inline scalar attributes and the resolved
// line:col range. Driven by reflection so new node kinds render without
// touching the printer.
func FormatASTTree(w io.Writer, mod *ast.Module, fs *source.FileSet) error {
	if mod == nil {
		return fmt.Errorf("nil module")
	}
	p := &treePrinter{w: w, fs: fs}
	p.writeRoot(mod)
	return p.err
}

type treePrinter struct {
	w   io.Writer
	fs  *source.FileSet
	err error
}

type astChild struct {
	label string
	node  ast.Node // nil for elided slots (array holes, omitted clauses)
}

func (p *treePrinter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *treePrinter) writeRoot(mod *ast.Module) {
	p.printf("Module %s\n", p.position(mod.Pos()))
	_, children := nodeParts(mod)
	p.writeChildren(children, "")
}

func (p *treePrinter) writeChildren(children []astChild, prefix string) {
	for i, c := range children {
		last := i == len(children)-1
		connector, childPrefix := "├─ ", prefix+"│  "
		if last {
			connector, childPrefix = "└─ ", prefix+"   "
		}

		if c.node == nil {
			p.printf("%s%s%s: <empty>\n", prefix, connector, c.label)
			continue
		}

		attrs, grandchildren := nodeParts(c.node)
		line := fmt.Sprintf("%s%s%s: %s", prefix, connector, c.label, nodeTypeName(c.node))
		if len(attrs) > 0 {
			line += " (" + strings.Join(attrs, ", ") + ")"
		}
		p.printf("%s %s\n", line, p.position(c.node.Pos()))
		p.writeChildren(grandchildren, childPrefix)
	}
}

func (p *treePrinter) position(span source.Span) string {
	start := p.fs.Resolve(span.File, span.Start)
	end := p.fs.Resolve(span.File, span.End)
	return fmt.Sprintf("@%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func nodeTypeName(n ast.Node) string {
	t := reflect.TypeOf(n)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

var nodeInterface = reflect.TypeOf((*ast.Node)(nil)).Elem()

// nodeParts splits a node's exported fields into inline attributes
// (strings, bools, numbers) and child nodes (Node fields and slices of
// them). Span is positional and skipped.
func nodeParts(n ast.Node) (attrs []string, children []astChild) {
	v := reflect.ValueOf(n)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || field.Name == "Span" {
			continue
		}
		fv := v.Field(i)

		if child, ok := asNode(fv); ok {
			// absent optional clauses are skipped; holes in slices are kept
			if child != nil {
				children = append(children, astChild{field.Name, child})
			}
			continue
		}

		if fv.Kind() == reflect.Slice && field.Type.Elem().Implements(nodeInterface) {
			for j := 0; j < fv.Len(); j++ {
				label := fmt.Sprintf("%s[%d]", field.Name, j)
				child, _ := asNode(fv.Index(j))
				children = append(children, astChild{label, child})
			}
			continue
		}

		if s, ok := fv.Interface().(fmt.Stringer); ok {
			if !fv.IsZero() {
				attrs = append(attrs, fmt.Sprintf("%s=%s", field.Name, s))
			}
			continue
		}

		switch fv.Kind() {
		case reflect.String:
			if s := fv.String(); s != "" {
				attrs = append(attrs, fmt.Sprintf("%s=%q", field.Name, s))
			}
		case reflect.Bool:
			if fv.Bool() {
				attrs = append(attrs, field.Name)
			}
		case reflect.Float64:
			if fv.Float() != 0 {
				attrs = append(attrs, fmt.Sprintf("%s=%v", field.Name, fv.Float()))
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if fv.Uint() != 0 {
				attrs = append(attrs, fmt.Sprintf("%s=%d", field.Name, fv.Uint()))
			}
		}
	}
	return attrs, children
}

// asNode extracts a non-nil ast.Node from an interface or pointer field.
// The second return is false when the field holds something else entirely.
func asNode(fv reflect.Value) (ast.Node, bool) {
	if !fv.Type().Implements(nodeInterface) {
		return nil, false
	}
	switch fv.Kind() {
	case reflect.Interface, reflect.Pointer:
		if fv.IsNil() {
			return nil, true
		}
	}
	n, ok := fv.Interface().(ast.Node)
	if !ok {
		return nil, true
	}
	return n, true
}
