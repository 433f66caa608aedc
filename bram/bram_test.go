package bram

import (
	"strings"
	"testing"

	"github.com/rcornwell/xc7fasm/fasm"
	"github.com/rcornwell/xc7fasm/pnr"
	"github.com/rcornwell/xc7fasm/pnr/memdb"
	"github.com/rcornwell/xc7fasm/router"
)

func TestEmitNilStatusIsNoop(t *testing.T) {
	db := memdb.New()
	var sb strings.Builder
	w := fasm.New(&sb)
	if err := Emit(w, db, nil, router.PipsByTile{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sb.Len() != 0 {
		t.Errorf("expected no output for a nil tile status, got %q", sb.String())
	}
}

func TestEmitRAMB18Halves(t *testing.T) {
	db := memdb.New()
	db.Tiles[0] = &pnr.Tile{Index: 0, Type: "BRAM_L", Name: "BRAM_L_X0Y0"}

	cellA := &pnr.CellInfo{Name: "ramA", OrigType: "RAMB18E1", Params: map[string]string{
		"READ_WIDTH_A": "18", "WRITE_WIDTH_A": "18",
		"READ_WIDTH_B": "18", "WRITE_WIDTH_B": "18",
		"WRITE_MODE_A": "READ_FIRST",
	}}
	ts := &pnr.TileStatus{Tile: 0, BRAMCells: map[int]*pnr.CellInfo{0: cellA}}

	var sb strings.Builder
	w := fasm.New(&sb)
	if err := Emit(w, db, ts, router.PipsByTile{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "RAMB18E1_Y0") {
		t.Errorf("expected a RAMB18E1_Y0 scope, got:\n%s", out)
	}
	if strings.Contains(out, "RAMB36E1") {
		t.Errorf("single half should not emit a RAMB36E1 scope, got:\n%s", out)
	}
}

func TestEmitRAMB36Spanning(t *testing.T) {
	db := memdb.New()
	db.Tiles[0] = &pnr.Tile{Index: 0, Type: "BRAM_L", Name: "BRAM_L_X0Y0"}

	cell := &pnr.CellInfo{Name: "ram36", OrigType: "RAMB36E1", Params: map[string]string{
		"READ_WIDTH_A": "36", "WRITE_WIDTH_A": "36",
	}}
	ts := &pnr.TileStatus{Tile: 0, BRAMCells: map[int]*pnr.CellInfo{0: cell, 1: cell}}

	var sb strings.Builder
	w := fasm.New(&sb)
	if err := Emit(w, db, ts, router.PipsByTile{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "RAMB36E1") {
		t.Errorf("expected a RAMB36E1 scope, got:\n%s", out)
	}
	if !strings.Contains(out, "SDP_READ_WIDTH_A_36") {
		t.Errorf("width 36 should emit the SDP companion bit, got:\n%s", out)
	}
}

func TestEmitCascadeActive(t *testing.T) {
	db := memdb.New()
	db.Tiles[0] = &pnr.Tile{
		Index: 0, Type: "BRAM_L", Name: "BRAM_L_X0Y0",
		Wires:   []pnr.Wire{{Tile: 0, Index: 0, Name: "BRAM_CASCOUT_ADDRARDADDRU0"}, {Tile: 0, Index: 1, Name: "SRC"}},
		PipList: []pnr.Pip{{Tile: 0, Index: 0, SrcWire: 1, DstWire: 0}},
	}
	cell := &pnr.CellInfo{Name: "ram", OrigType: "RAMB18E1"}
	ts := &pnr.TileStatus{Tile: 0, BRAMCells: map[int]*pnr.CellInfo{0: cell}}
	pips := router.PipsByTile{0: {0}}

	var sb strings.Builder
	w := fasm.New(&sb)
	if err := Emit(w, db, ts, pips); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sb.String(), "CASCOUT_ARD_ACTIVE") {
		t.Errorf("expected CASCOUT_ARD_ACTIVE, got:\n%s", sb.String())
	}
}
