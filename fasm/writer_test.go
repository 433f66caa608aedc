package fasm

import (
	"strings"
	"testing"
)

func TestPushPopBalance(t *testing.T) {
	w := New(&strings.Builder{})
	w.Push("A")
	w.Push("B")
	if w.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", w.Depth())
	}
	w.Pop()
	if w.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", w.Depth())
	}
	w.PopN(1)
	if w.Depth() != 0 {
		t.Fatalf("depth = %d, want 0", w.Depth())
	}
}

func TestScopeCloserPops(t *testing.T) {
	w := New(&strings.Builder{})
	close := w.Scope("TILE")
	if w.Depth() != 1 {
		t.Fatalf("depth after Scope = %d, want 1", w.Depth())
	}
	close()
	if w.Depth() != 0 {
		t.Fatalf("depth after close = %d, want 0", w.Depth())
	}
}

func TestFeatureJoin(t *testing.T) {
	w := New(&strings.Builder{})
	w.Push("CLBLL_L_X2Y10")
	w.Push("SLICEL_X0")
	got := w.Feature("ALUT.INIT")
	want := "CLBLL_L_X2Y10.SLICEL_X0.ALUT.INIT"
	if got != want {
		t.Errorf("Feature() = %q, want %q", got, want)
	}
}

func TestWriteBitConditional(t *testing.T) {
	var sb strings.Builder
	w := New(&sb)
	w.Push("TILE")
	w.WriteBit("ZINI", true)
	w.WriteBit("SKIPPED", false)
	want := "TILE.ZINI\n"
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}

func TestBlankCollapses(t *testing.T) {
	var sb strings.Builder
	w := New(&sb)
	w.Push("T")
	w.WriteBit("A", true)
	w.Blank()
	w.Blank()
	w.Blank()
	w.WriteBit("B", true)
	got := sb.String()
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("consecutive blank lines collapsed incorrectly: %q", got)
	}
	if strings.Count(got, "\n\n") != 1 {
		t.Errorf("expected exactly one blank separator, got %q", got)
	}
}

func TestBlankBeforeAnyLineIsNoop(t *testing.T) {
	var sb strings.Builder
	w := New(&sb)
	w.Blank()
	if sb.Len() != 0 {
		t.Errorf("Blank before any line should emit nothing, got %q", sb.String())
	}
}

func TestWriteIntVectorMSBFirst(t *testing.T) {
	var sb strings.Builder
	w := New(&sb)
	w.WriteIntVector("X[3:0]", 0b1010, 4, false)
	want := "X[3:0] = 4'b1010\n"
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}

func TestWriteVectorInvert(t *testing.T) {
	var sb strings.Builder
	w := New(&sb)
	w.WriteVector("X[1:0]", []bool{true, false}, true)
	want := "X[1:0] = 2'b01\n"
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}

func TestVectorRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 0xAAAA, 0xFFFFFFFF, 0x123456789ABCDEF0} {
		var sb strings.Builder
		w := New(&sb)
		w.WriteIntVector("X[63:0]", v, 64, false)
		line := strings.TrimSuffix(sb.String(), "\n")
		parts := strings.SplitN(line, " = ", 2)
		bits, err := ParseVector(parts[1])
		if err != nil {
			t.Fatalf("ParseVector: %v", err)
		}
		var got uint64
		for i, b := range bits {
			if b {
				got |= 1 << uint(len(bits)-1-i)
			}
		}
		if got != v {
			t.Errorf("round trip: got %#x, want %#x", got, v)
		}
	}
}

func TestNoConsecutiveBlankLines(t *testing.T) {
	var sb strings.Builder
	w := New(&sb)
	w.Push("T")
	w.WriteBit("A", true)
	w.Blank()
	w.WriteBit("B", true)
	w.Blank()
	w.Blank()
	w.WriteBit("C", true)
	if strings.Contains(sb.String(), "\n\n\n") {
		t.Errorf("found 2+ consecutive newlines in %q", sb.String())
	}
}
