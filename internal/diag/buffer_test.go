package diag_test

import (
	"sync"
	"testing"

	"ecmaparse/internal/diag"
	"ecmaparse/internal/source"
)

func TestBufferPreservesEmissionOrder(t *testing.T) {
	buf := diag.NewBuffer()
	spans := []source.Span{
		{Start: 0, End: 1},
		{Start: 5, End: 6},
		{Start: 2, End: 3},
	}
	for i, sp := range spans {
		buf.Report(diag.SynUnexpectedToken, diag.SevError, sp, string(rune('a'+i)), nil)
	}

	snap := buf.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3 records, got %d", len(snap))
	}
	for i, d := range snap {
		if d.Message != string(rune('a'+i)) {
			t.Errorf("record %d out of order: %q", i, d.Message)
		}
	}
}

func TestSnapshotIsAClone(t *testing.T) {
	buf := diag.NewBuffer()
	buf.Report(diag.LexUnknownChar, diag.SevError, source.Span{}, "first", nil)

	snap := buf.Snapshot()
	buf.Report(diag.LexUnknownChar, diag.SevError, source.Span{}, "second", nil)

	if len(snap) != 1 {
		t.Fatalf("snapshot grew with the live buffer: %d records", len(snap))
	}
	if buf.Len() != 2 {
		t.Fatalf("live buffer should hold 2 records, got %d", buf.Len())
	}
}

func TestBufferCountsOnlyErrors(t *testing.T) {
	buf := diag.NewBuffer()
	buf.Report(diag.SynInfo, diag.SevWarning, source.Span{}, "warn", nil)
	buf.Report(diag.SynUnexpectedToken, diag.SevError, source.Span{}, "err", nil)
	if buf.ErrorCount() != 1 {
		t.Errorf("ErrorCount = %d, want 1", buf.ErrorCount())
	}
	if buf.Len() != 2 {
		t.Errorf("Len = %d, want 2", buf.Len())
	}
}

func TestBufferConcurrentEmit(t *testing.T) {
	buf := diag.NewBuffer()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				buf.Report(diag.SynUnexpectedToken, diag.SevError, source.Span{}, "x", nil)
			}
		}()
	}
	wg.Wait()
	if buf.Len() != 800 {
		t.Fatalf("expected 800 records after concurrent emit, got %d", buf.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := diag.NewBag(16)
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SynUnexpectedToken, Primary: source.Span{Start: 9, End: 10}})
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SynUnexpectedToken, Primary: source.Span{Start: 2, End: 3}})
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SynUnexpectedToken, Primary: source.Span{Start: 2, End: 3}})
	bag.Sort()
	bag.Dedup()

	if bag.Len() != 2 {
		t.Fatalf("expected 2 after dedup, got %d", bag.Len())
	}
	if bag.Items()[0].Primary.Start != 2 {
		t.Errorf("expected span-sorted order, first start = %d", bag.Items()[0].Primary.Start)
	}
}

func TestBagLimit(t *testing.T) {
	bag := diag.NewBag(1)
	if !bag.Add(diag.Diagnostic{}) {
		t.Fatal("first add should succeed")
	}
	if bag.Add(diag.Diagnostic{}) {
		t.Fatal("second add should be dropped by the limit")
	}
}
