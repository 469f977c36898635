package linebuf

import (
	"strings"
	"testing"
)

func TestAppendfFits(t *testing.T) {
	b := New(32)
	if !b.Appendf("x=%d", 42) {
		t.Fatal("expected append to fit")
	}
	if got := string(b.Bytes()); got != "x=42" {
		t.Fatalf("unexpected contents: %q", got)
	}
	if b.Len() != 4 || b.Avail() != 28 {
		t.Fatalf("unexpected accounting: len=%d avail=%d", b.Len(), b.Avail())
	}
}

func TestAppendfTruncates(t *testing.T) {
	b := New(8)
	if b.Appendf("%s", strings.Repeat("a", 20)) {
		t.Fatal("expected truncation")
	}
	if got := string(b.Bytes()); got != "aaaaaaaa" {
		t.Fatalf("truncated contents wrong: %q", got)
	}
	if b.Avail() != 0 {
		t.Fatalf("expected full buffer, avail=%d", b.Avail())
	}

	// Further appends stay bounded and keep reporting truncation.
	if b.Appendf("more") {
		t.Fatal("expected truncation on full buffer")
	}
	if b.Len() != 8 {
		t.Fatalf("buffer overran: len=%d", b.Len())
	}
}

func TestAppendStringBoundary(t *testing.T) {
	b := New(4)
	if !b.AppendString("abcd") {
		t.Fatal("exact fit should not truncate")
	}
	if b.AppendString("e") {
		t.Fatal("expected truncation past capacity")
	}
	if got := string(b.Bytes()); got != "abcd" {
		t.Fatalf("unexpected contents: %q", got)
	}
}

func TestReset(t *testing.T) {
	b := New(8)
	b.AppendString("junk")
	b.Reset()
	if b.Len() != 0 || b.Avail() != 8 {
		t.Fatalf("reset did not clear: len=%d avail=%d", b.Len(), b.Avail())
	}
	if !b.Appendf("ok") {
		t.Fatal("append after reset should fit")
	}
	if got := string(b.Bytes()); got != "ok" {
		t.Fatalf("unexpected contents after reset: %q", got)
	}
}
