package alloc

import "testing"

func TestWalk_FoldsAccumulator(t *testing.T) {
	tr := NewTracking(nil)
	mustAlloc(t, tr, "a", 0, 2, 8)
	mustAlloc(t, tr, "b", 4, 1, 16)
	mustAlloc(t, tr, "c", 0, 3, 32)

	total := tr.Walk(0, func(acc any, info EntryInfo) any {
		return acc.(int) + info.Head + info.Count*info.Size
	})
	if total != 16+20+96 {
		t.Fatalf("accumulator mismatch: %v", total)
	}
}

func TestWalk_Restartable(t *testing.T) {
	tr := NewTracking(nil)
	mustAlloc(t, tr, "a", 0, 1, 8)
	mustAlloc(t, tr, "b", 0, 1, 8)

	first := labels(tr)
	second := labels(tr)
	if len(first) != 2 || len(second) != 2 || first[0] != second[0] || first[1] != second[1] {
		t.Fatalf("walk is not restartable: %v vs %v", first, second)
	}
}

func TestWalk_EmptyRegistry(t *testing.T) {
	tr := NewTracking(nil)
	got := tr.Walk("seed", func(acc any, info EntryInfo) any {
		t.Fatal("visitor must not run on an empty registry")
		return acc
	})
	if got != "seed" {
		t.Fatalf("initial accumulator not returned: %v", got)
	}
}

func TestWalk_ReportsBlockAndProvenance(t *testing.T) {
	tr := NewTracking(nil)
	blk := mustAlloc(t, tr, "obj", 8, 2, 4)

	tr.Walk(nil, func(acc any, info EntryInfo) any {
		if info.Label != "obj" || info.File != "tracking_test.go" || info.Func != "testcase" {
			t.Fatalf("provenance lost: %+v", info)
		}
		if info.Block == nil || info.Block.Len() != blk.Len() {
			t.Fatalf("block not reported: %+v", info.Block)
		}
		return acc
	})
}
