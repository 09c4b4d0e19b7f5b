package engine_test

import (
	"errors"
	"strings"
	"testing"

	"ecmaparse/internal/ast"
	"ecmaparse/internal/engine"
)

func TestParseSuccess(t *testing.T) {
	ctx := engine.NewContext()
	mod, err := engine.Parse(ctx, "a.ts", []byte("export const x: number = 1"), engine.TypeScript())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mod.Body) != 1 {
		t.Fatalf("%d statements", len(mod.Body))
	}
	if _, ok := mod.Body[0].(*ast.ExportNamedDecl); !ok {
		t.Fatalf("statement is %T", mod.Body[0])
	}
}

func TestParseEmptyInput(t *testing.T) {
	ctx := engine.NewContext()
	mod, err := engine.Parse(ctx, "empty.ts", nil, engine.TypeScript())
	if err != nil {
		t.Fatalf("empty input must succeed, got %v", err)
	}
	if mod == nil || len(mod.Body) != 0 {
		t.Fatalf("module: %#v", mod)
	}
}

func TestParseFailureYieldsSyntaxError(t *testing.T) {
	ctx := engine.NewContext()
	mod, err := engine.Parse(ctx, "bad.ts", []byte("const = ;"), engine.TypeScript())
	if err == nil {
		t.Fatal("expected an error")
	}
	var synErr *engine.SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("error is %T", err)
	}
	if len(synErr.Diagnostics) == 0 {
		t.Fatal("no diagnostics in the error")
	}
	if mod == nil {
		t.Fatal("failed parse still returns the partial module")
	}
}

func TestSyntaxErrorMessageJoinsDiagnostics(t *testing.T) {
	ctx := engine.NewContext()
	_, err := engine.Parse(ctx, "bad.ts", []byte("let = 1\nlet = 2"), engine.TypeScript())
	if err == nil {
		t.Fatal("expected an error")
	}
	msg := err.Error()
	if !strings.Contains(msg, ",") {
		t.Fatalf("two diagnostics must join with a comma: %q", msg)
	}
}

func TestContextIsolation(t *testing.T) {
	broken := engine.NewContext()
	engine.ParseModule(broken, "bad.ts", []byte("]]]"), engine.TypeScript(), func(m *ast.Module, err error) struct{} {
		if err == nil {
			t.Error("expected an error")
		}
		return struct{}{}
	})

	clean := engine.NewContext()
	if _, err := engine.Parse(clean, "ok.ts", []byte("let a = 1"), engine.TypeScript()); err != nil {
		t.Fatalf("a fresh context must not see the other context's state: %v", err)
	}
	if clean.Diags.Len() != 0 {
		t.Fatalf("clean context has %d diagnostics", clean.Diags.Len())
	}
	if broken.Diags.Len() == 0 {
		t.Fatal("broken context lost its diagnostics")
	}
}

func TestDiagnosticsAccumulateAcrossParses(t *testing.T) {
	ctx := engine.NewContext()
	_, _ = engine.Parse(ctx, "one.ts", []byte("let = 1"), engine.TypeScript())
	first := ctx.Diags.Len()
	if first == 0 {
		t.Fatal("first parse produced no diagnostics")
	}
	_, err := engine.Parse(ctx, "two.ts", []byte("let = 2"), engine.TypeScript())
	if err == nil {
		t.Fatal("expected an error")
	}
	var synErr *engine.SyntaxError
	errors.As(err, &synErr)
	if len(synErr.Diagnostics) <= first {
		t.Fatal("a reused context snapshots earlier records too")
	}
}

func TestSecondParseCleanAfterFailure(t *testing.T) {
	// a failure does not poison the context for a following clean parse
	ctx := engine.NewContext()
	_, _ = engine.Parse(ctx, "bad.ts", []byte("+++++"), engine.TypeScript())
	if _, err := engine.Parse(ctx, "ok.ts", []byte("let a = 1"), engine.TypeScript()); err != nil {
		t.Fatalf("clean parse failed: %v", err)
	}
}

func TestDynamicImportGate(t *testing.T) {
	ctx := engine.NewContext()
	if _, err := engine.Parse(ctx, "a.ts", []byte("import('./m')"), engine.TypeScript()); err != nil {
		t.Fatalf("TS syntax allows dynamic import: %v", err)
	}

	ctx = engine.NewContext()
	if _, err := engine.Parse(ctx, "a.js", []byte("import('./m')"), engine.JavaScript()); err == nil {
		t.Fatal("plain JS syntax must report import()")
	}
}

func TestTypeSyntaxUnderJS(t *testing.T) {
	ctx := engine.NewContext()
	_, err := engine.Parse(ctx, "a.js", []byte("let x: number = 1"), engine.JavaScript())
	if err == nil {
		t.Fatal("type annotation under JS syntax must be a diagnostic")
	}
}

func TestCommentsLandInRegistry(t *testing.T) {
	ctx := engine.NewContext()
	src := "// top\nconst a = 1 /* mid */\n"
	if _, err := engine.Parse(ctx, "c.ts", []byte(src), engine.TypeScript()); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if ctx.Comments.Len() != 2 {
		t.Fatalf("%d comments registered", ctx.Comments.Len())
	}
}

func TestMaxDiagnostics(t *testing.T) {
	ctx := engine.NewContext()
	ctx.MaxDiagnostics = 1
	_, err := engine.Parse(ctx, "bad.ts", []byte("let = 1; let = 2; let = 3"), engine.TypeScript())
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := ctx.Diags.ErrorCount(); got != 1 {
		t.Fatalf("%d errors recorded, want 1", got)
	}
}

func TestCallbackResultPassesThrough(t *testing.T) {
	ctx := engine.NewContext()
	n := engine.ParseModule(ctx, "a.ts", []byte("a; b; c"), engine.TypeScript(), func(m *ast.Module, err error) int {
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		return len(m.Body)
	})
	if n != 3 {
		t.Fatalf("callback result = %d", n)
	}
}
