package ast_test

import (
	"encoding/json"
	"strings"
	"testing"

	"ecmaparse/internal/ast"
	"ecmaparse/internal/source"
)

func TestMarshalInjectsTypeTag(t *testing.T) {
	n := &ast.Ident{Span: source.Span{Start: 6, End: 7}, Name: "x"}
	b, err := json.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if m["type"] != "Identifier" || m["name"] != "x" {
		t.Errorf("unexpected shape: %s", b)
	}
	span, ok := m["span"].(map[string]any)
	if !ok || span["start"] != float64(6) || span["end"] != float64(7) {
		t.Errorf("span not serialized: %s", b)
	}
}

func TestMarshalEmptyModule(t *testing.T) {
	b, err := json.Marshal(&ast.Module{})
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	if !strings.Contains(s, `"type":"Module"`) || !strings.Contains(s, `"body":[]`) {
		t.Errorf("empty module must serialize with an empty body array: %s", s)
	}
}

func TestMarshalNestedStatement(t *testing.T) {
	mod := &ast.Module{Body: []ast.Stmt{
		&ast.VarDecl{
			Kind: "const",
			Decls: []*ast.VarDeclarator{{
				ID:   &ast.Ident{Name: "x"},
				Init: &ast.NumberLit{Value: 1, Raw: "1"},
			}},
		},
	}}
	b, err := json.Marshal(mod)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`"type":"VariableDeclaration"`,
		`"kind":"const"`,
		`"type":"VariableDeclarator"`,
		`"type":"NumericLiteral"`,
	} {
		if !strings.Contains(string(b), want) {
			t.Errorf("missing %s in %s", want, b)
		}
	}
}
