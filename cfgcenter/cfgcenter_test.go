package cfgcenter

import (
	"strings"
	"testing"

	"github.com/rcornwell/xc7fasm/fasm"
	"github.com/rcornwell/xc7fasm/pnr"
)

func TestEmitBSCANValidChain(t *testing.T) {
	var sb strings.Builder
	w := fasm.New(&sb)
	cell := &pnr.CellInfo{Name: "b", OrigType: "BSCAN", Params: map[string]string{"JTAG_CHAIN": "2"}}
	if err := Emit(w, cell); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sb.String(), "BSCAN.JTAG_CHAIN.JTAG_CHAIN2") {
		t.Errorf("expected JTAG_CHAIN2, got:\n%s", sb.String())
	}
}

func TestEmitBSCANRejectsOutOfRangeChain(t *testing.T) {
	var sb strings.Builder
	w := fasm.New(&sb)
	cell := &pnr.CellInfo{Name: "b", OrigType: "BSCAN", Params: map[string]string{"JTAG_CHAIN": "5"}}
	if err := Emit(w, cell); err == nil {
		t.Error("expected an error for JTAG_CHAIN out of range")
	}
}

func TestEmitICAPDefaultWidth(t *testing.T) {
	var sb strings.Builder
	w := fasm.New(&sb)
	cell := &pnr.CellInfo{Name: "i", OrigType: "ICAP_ICAP"}
	if err := Emit(w, cell); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sb.String(), "ICAP_WIDTH.X32") {
		t.Errorf("expected default ICAP_WIDTH.X32, got:\n%s", sb.String())
	}
}

func TestEmitICAPRejectsBadWidth(t *testing.T) {
	var sb strings.Builder
	w := fasm.New(&sb)
	cell := &pnr.CellInfo{Name: "i", OrigType: "ICAP_ICAP", Params: map[string]string{"ICAP_WIDTH": "X64"}}
	if err := Emit(w, cell); err == nil {
		t.Error("expected an error for an invalid ICAP_WIDTH")
	}
}

func TestEmitStartup(t *testing.T) {
	var sb strings.Builder
	w := fasm.New(&sb)
	cell := &pnr.CellInfo{Name: "s", OrigType: "STARTUP_STARTUP", Params: map[string]string{"GSR_SYNC": "YES"}}
	if err := Emit(w, cell); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sb.String(), "STARTUP.GSR_SYNC.YES") {
		t.Errorf("expected GSR_SYNC.YES, got:\n%s", sb.String())
	}
}

func TestEmitRejectsUnsupportedType(t *testing.T) {
	var sb strings.Builder
	w := fasm.New(&sb)
	cell := &pnr.CellInfo{Name: "x", OrigType: "BOGUS"}
	if err := Emit(w, cell); err == nil {
		t.Error("expected an error for an unsupported cell type")
	}
}
