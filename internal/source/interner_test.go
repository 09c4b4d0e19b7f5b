package source_test

import (
	"testing"

	"ecmaparse/internal/source"
)

func TestInternDedup(t *testing.T) {
	in := source.NewInterner()
	a := in.Intern("require")
	b := in.Intern("require")
	if a != b {
		t.Fatalf("expected same ID for same string, got %d and %d", a, b)
	}
	c := in.InternBytes([]byte("require"))
	if c != a {
		t.Fatalf("InternBytes returned %d, want %d", c, a)
	}
	if s, ok := in.Lookup(a); !ok || s != "require" {
		t.Fatalf("Lookup(%d) = %q, %v", a, s, ok)
	}
}

func TestInternerIsolation(t *testing.T) {
	a := source.NewInterner()
	b := source.NewInterner()
	a.Intern("one")
	a.Intern("two")
	id := b.Intern("three")
	// IDs are per-interner: "three" lands at slot 1 in a fresh interner
	// no matter what another interner has seen.
	if id != 1 {
		t.Fatalf("fresh interner assigned ID %d, want 1", id)
	}
	if s, _ := a.Lookup(id); s != "one" {
		t.Fatalf("interner state leaked: a.Lookup(1) = %q", s)
	}
}

func TestNoStringIDIsEmpty(t *testing.T) {
	in := source.NewInterner()
	if s, ok := in.Lookup(source.NoStringID); !ok || s != "" {
		t.Fatalf("NoStringID lookup = %q, %v", s, ok)
	}
}
