package parser_test

import (
	"testing"
	"time"

	"ecmaparse/internal/ast"
	"ecmaparse/internal/parser"
)

func TestRecoverAcrossStatements(t *testing.T) {
	// the broken statement is dropped, its neighbors survive
	mod, rep := parseSource("let a = 1;\nlet = ;\nlet b = 2;", parser.Options{})
	if len(rep.errors()) == 0 {
		t.Fatal("expected diagnostics")
	}
	var kept []string
	for _, stmt := range mod.Body {
		if vd, ok := stmt.(*ast.VarDecl); ok && len(vd.Decls) > 0 {
			if id, ok := vd.Decls[0].ID.(*ast.Ident); ok {
				kept = append(kept, id.Name)
			}
		}
	}
	if len(kept) != 2 || kept[0] != "a" || kept[1] != "b" {
		t.Fatalf("survivors: %v", kept)
	}
}

func TestRecoverInsideBlock(t *testing.T) {
	mod, _ := parseSource("function f() { let = 1; good() }", parser.Options{})
	fd, ok := mod.Body[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("got %T", mod.Body[0])
	}
	found := false
	for _, stmt := range fd.Fn.Body.Body {
		es, ok := stmt.(*ast.ExprStmt)
		if !ok {
			continue
		}
		if call, ok := es.Expr.(*ast.CallExpr); ok {
			if id, ok := call.Callee.(*ast.Ident); ok && id.Name == "good" {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("statement after the broken one was lost")
	}
}

func TestRecoverInsideSwitch(t *testing.T) {
	mod, rep := parseSource(`
switch (x) {
  case 1: a(); break
  garbage ~~~
  case 2: b()
}`, parser.Options{})
	if len(rep.errors()) == 0 {
		t.Fatal("expected diagnostics")
	}
	sw, ok := mod.Body[0].(*ast.SwitchStmt)
	if !ok {
		t.Fatalf("got %T", mod.Body[0])
	}
	if len(sw.Cases) < 2 {
		t.Fatalf("%d cases survived", len(sw.Cases))
	}
}

func TestRecoverImports(t *testing.T) {
	// a broken import must not take the next declaration with it
	mod, rep := parseSource("import { a from 'x'\nimport { b } from 'y'", parser.Options{})
	if len(rep.errors()) == 0 {
		t.Fatal("expected diagnostics")
	}
	foundY := false
	for _, stmt := range mod.Body {
		if d, ok := stmt.(*ast.ImportDecl); ok && d.Source != nil && d.Source.Value == "y" {
			foundY = true
		}
	}
	if !foundY {
		t.Fatal("second import lost")
	}
}

func TestNoInfiniteLoopOnGarbage(t *testing.T) {
	// pathological inputs must terminate; the anti-stall guards force
	// progress even when nothing parses
	inputs := []string{
		"}{)(][",
		"?.?.?.",
		"case case case",
		"else else",
		": : :",
		"=> => =>",
		"~~~~~~~~",
		"<<<<<<<<",
		"ial%^&*()",
		"\x00\x01\x02",
	}
	for _, src := range inputs {
		mod, _ := parseSource(src, parser.Options{TypeScript: true, MaxErrors: 50})
		if mod == nil {
			t.Errorf("%q: nil module", src)
		}
	}
}

func TestStrayCloseBraceTerminates(t *testing.T) {
	// an unmatched '}' at module level belongs to no statement; it must be
	// reported and consumed, never spun on
	inputs := []string{
		"}",
		"1 }",
		"} } }",
		"let x = 1 } let y = 2",
	}
	for _, src := range inputs {
		done := make(chan *ast.Module, 1)
		go func() {
			mod, _ := parseSource(src, parser.Options{MaxErrors: 50})
			done <- mod
		}()
		select {
		case mod := <-done:
			if mod == nil {
				t.Errorf("%q: nil module", src)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("%q: parser did not return", src)
		}
	}
}

func TestStrayCloseBraceKeepsNeighbors(t *testing.T) {
	mod, rep := parseSource("let x = 1 } let y = 2", parser.Options{})
	if len(rep.errors()) == 0 {
		t.Fatal("expected diagnostics")
	}
	var kept []string
	for _, stmt := range mod.Body {
		if vd, ok := stmt.(*ast.VarDecl); ok && len(vd.Decls) > 0 {
			if id, ok := vd.Decls[0].ID.(*ast.Ident); ok {
				kept = append(kept, id.Name)
			}
		}
	}
	if len(kept) != 2 || kept[0] != "x" || kept[1] != "y" {
		t.Fatalf("survivors: %v", kept)
	}
}

func TestUnterminatedConstructs(t *testing.T) {
	inputs := []string{
		"function f( {",
		"class C { m(",
		"if (a { b }",
		"while (",
		"let x = [1, 2",
		"let y = { a: 1",
		"`unterminated ${x",
		"'open",
	}
	for _, src := range inputs {
		mod, rep := parseSource(src, parser.Options{})
		if mod == nil {
			t.Errorf("%q: nil module", src)
		}
		if len(rep.diagnostics) == 0 {
			t.Errorf("%q: no diagnostics at all", src)
		}
	}
}

func TestSpeculationLeavesNoTrace(t *testing.T) {
	// a paren expression walks the arrow-head speculation and fails it;
	// no diagnostics may leak from the rejected attempt
	mod := parseJS(t, "(a + b) * c")
	if _, ok := exprOf(t, mod, 0).(*ast.BinaryExpr); !ok {
		t.Fatal("misparsed")
	}

	mod = parseTS(t, "(a < b) && (c > d)")
	if _, ok := exprOf(t, mod, 0).(*ast.LogicalExpr); !ok {
		t.Fatal("misparsed")
	}
}

func TestErrorCountSurvivesSpeculation(t *testing.T) {
	// errors reported before a speculative rescan still count afterwards
	src := "let = 1; (x) => x; let = 2"
	_, rep := parseSource(src, parser.Options{})
	if got := len(rep.errors()); got < 2 {
		t.Fatalf("got %d errors, want at least 2", got)
	}
}
