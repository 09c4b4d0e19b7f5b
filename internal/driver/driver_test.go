package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"ecmaparse/internal/driver"
	"ecmaparse/internal/engine"
	"ecmaparse/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.ts", "let x: number = 1;\n")

	res, err := driver.Parse(path, engine.TypeScript(), 32)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.HasErrors() {
		t.Fatalf("unexpected diagnostics: %d", res.Bag.Len())
	}
	if len(res.Module.Body) != 1 {
		t.Fatalf("body = %d statements, want 1", len(res.Module.Body))
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := driver.Parse(filepath.Join(t.TempDir(), "absent.ts"), engine.TypeScript(), 32)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestParseBytesCollectsDiagnostics(t *testing.T) {
	res, err := driver.ParseBytes("stdin.ts", []byte("const = 1;"), engine.TypeScript(), 32)
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if !res.HasErrors() {
		t.Fatal("expected diagnostics")
	}
	if res.Module == nil {
		t.Fatal("module must be non-nil even on failure")
	}
}

func TestParseBytesComments(t *testing.T) {
	res, err := driver.ParseBytes("stdin.ts", []byte("// heading\nlet x = 1; /* tail */"), engine.TypeScript(), 32)
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if len(res.Comments) != 2 {
		t.Fatalf("comments = %d, want 2", len(res.Comments))
	}
}

func TestTokenizeBytes(t *testing.T) {
	res := driver.TokenizeBytes("stdin.js", []byte("let x = 1"), 32)
	if got := len(res.Tokens); got != 5 {
		t.Fatalf("tokens = %d, want 5 (let x = 1 eof)", got)
	}
	if last := res.Tokens[len(res.Tokens)-1]; last.Kind != token.EOF {
		t.Fatalf("last token = %v, want EOF", last.Kind)
	}
}

func TestTokenizeReportsLexErrors(t *testing.T) {
	res := driver.TokenizeBytes("stdin.js", []byte("let s = 'unterminated"), 32)
	if !res.Bag.HasErrors() {
		t.Fatal("expected a lexical diagnostic")
	}
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.ts", "export const b = 2;\n")
	writeFile(t, dir, "a.ts", "export const a = 1;\n")
	writeFile(t, dir, "sub/c.js", "module.exports = 3;\n")
	writeFile(t, dir, "notes.txt", "not a script\n")
	writeFile(t, dir, "node_modules/dep/index.js", "ignored\n")

	results, err := driver.ParseDir(context.Background(), dir, engine.TypeScript(), 32, 2)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}

	wantOrder := []string{"a.ts", "b.ts", filepath.Join("sub", "c.js")}
	for i, want := range wantOrder {
		got, rerr := filepath.Rel(dir, results[i].Path)
		if rerr != nil {
			t.Fatal(rerr)
		}
		if got != want {
			t.Errorf("results[%d] = %s, want %s", i, got, want)
		}
		if results[i].Err != nil {
			t.Errorf("results[%d] error: %v", i, results[i].Err)
		}
	}
}

func TestParseDirIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.ts", "const = ;\n")
	writeFile(t, dir, "good.ts", "const ok = 1;\n")

	results, err := driver.ParseDir(context.Background(), dir, engine.TypeScript(), 32, 0)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if !results[0].Result.HasErrors() {
		t.Error("bad.ts should carry diagnostics")
	}
	if results[1].Result.HasErrors() {
		t.Error("good.ts should parse clean")
	}
}

func TestParseDirEmpty(t *testing.T) {
	results, err := driver.ParseDir(context.Background(), t.TempDir(), engine.TypeScript(), 32, 0)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if results != nil {
		t.Fatalf("results = %v, want nil", results)
	}
}

func TestParseDirCancelled(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.ts", "b.ts", "c.ts"} {
		writeFile(t, dir, name, "let x = 1;\n")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := driver.ParseDir(ctx, dir, engine.TypeScript(), 32, 1); err == nil {
		t.Fatal("expected a cancellation error")
	}
}
