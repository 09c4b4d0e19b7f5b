package source_test

import (
	"testing"

	"ecmaparse/internal/source"
)

func TestSpanCover(t *testing.T) {
	a := source.Span{File: 1, Start: 4, End: 10}
	b := source.Span{File: 1, Start: 8, End: 20}
	got := a.Cover(b)
	if got.Start != 4 || got.End != 20 {
		t.Errorf("Cover = %v, want 1:4-20", got)
	}

	other := source.Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files must be a no-op, got %v", got)
	}
}

func TestSpanEmptyLen(t *testing.T) {
	s := source.Span{File: 0, Start: 5, End: 5}
	if !s.Empty() || s.Len() != 0 {
		t.Errorf("expected empty span, got Len=%d", s.Len())
	}
	s.End = 9
	if s.Empty() || s.Len() != 4 {
		t.Errorf("expected Len=4, got %d", s.Len())
	}
}
