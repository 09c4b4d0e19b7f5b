package source_test

import (
	"testing"

	"ecmaparse/internal/source"
)

func TestAddVirtualAssignsSequentialIDs(t *testing.T) {
	fs := source.NewFileSet()
	a := fs.AddVirtual("a.ts", []byte("const a = 1;"))
	b := fs.AddVirtual("b.ts", []byte("const b = 2;"))
	if a == b {
		t.Fatalf("expected distinct file IDs, got %d and %d", a, b)
	}
	if fs.Len() != 2 {
		t.Fatalf("expected 2 files, got %d", fs.Len())
	}
	if got := string(fs.Get(a).Content); got != "const a = 1;" {
		t.Errorf("unexpected content for a.ts: %q", got)
	}
	if fs.Get(a).Flags&source.FileVirtual == 0 {
		t.Errorf("virtual file missing FileVirtual flag")
	}
}

func TestAddVirtualNormalizesInput(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("in.ts", []byte("\xEF\xBB\xBFlet a\r\nlet b\r\n"))
	if got := string(fs.Get(id).Content); got != "let a\nlet b\n" {
		t.Fatalf("expected normalized content, got %q", got)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.ts", []byte("let a;\nlet bb;\nlet c;"))

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{4, 1, 5},
		{7, 2, 1},
		{11, 2, 5},
		{15, 3, 1},
	}
	for _, tt := range tests {
		lc := fs.Resolve(id, tt.off)
		if lc.Line != tt.line || lc.Col != tt.col {
			t.Errorf("Resolve(%d) = %d:%d, want %d:%d", tt.off, lc.Line, lc.Col, tt.line, tt.col)
		}
	}
}

func TestSnippetReturnsFullLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.ts", []byte("first\nsecond line\nthird"))
	if got := fs.Snippet(id, 8); got != "second line" {
		t.Errorf("Snippet(8) = %q, want %q", got, "second line")
	}
	if got := fs.Snippet(id, 0); got != "first" {
		t.Errorf("Snippet(0) = %q, want %q", got, "first")
	}
	if got := fs.Snippet(id, 20); got != "third" {
		t.Errorf("Snippet(20) = %q, want %q", got, "third")
	}
}

func TestGetByPathReturnsLatest(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("dup.ts", []byte("old"))
	fs.AddVirtual("dup.ts", []byte("new"))
	f, ok := fs.GetByPath("dup.ts")
	if !ok {
		t.Fatal("expected dup.ts to be registered")
	}
	if string(f.Content) != "new" {
		t.Errorf("expected latest registration, got %q", f.Content)
	}
}
