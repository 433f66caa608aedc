package router

import (
	"strings"
	"testing"

	"github.com/rcornwell/xc7fasm/fasm"
	"github.com/rcornwell/xc7fasm/pnr"
	"github.com/rcornwell/xc7fasm/pnr/memdb"
	"github.com/rcornwell/xc7fasm/ppip"
)

func TestEmitPseudoPipSubstitution(t *testing.T) {
	db := memdb.New()
	tile := &pnr.Tile{
		Index: 0,
		Type:  "LIOI3",
		Name:  "LIOI3_X0Y100",
		Wires: []pnr.Wire{
			{Tile: 0, Index: 0, Name: "LIOI_OLOGIC0_OQ"},
			{Tile: 0, Index: 1, Name: "IOI_OLOGIC0_D1"},
		},
		PipList: []pnr.Pip{
			{Tile: 0, Index: 0, SrcWire: 1, DstWire: 0, Flags: pnr.FlagTileRouting},
		},
	}
	db.Tiles[0] = tile
	db.HclkIoi[0] = 50 // pip.Tile(0) < hclk(50): top half semantics don't matter, tile isn't a SING type.

	net := &pnr.NetInfo{
		ID: 1,
		UsedWires: []pnr.UsedWire{
			{Tile: 0, Index: 0, DrivenByPip: true, Pip: 0},
		},
	}

	tbl := ppip.Build()
	var sb strings.Builder
	w := fasm.New(&sb)
	Emit(w, db, tbl, []*pnr.NetInfo{net})

	out := sb.String()
	for _, want := range []string{
		"LIOI3_X0Y100.OLOGIC0_Y0.OMUX.D1",
		"LIOI3_X0Y100.OLOGIC0_Y0.OQUSED",
		"LIOI3_X0Y100.OLOGIC0_Y0.OSERDES.DATA_RATE_TQ.BUF",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "LIOI_OLOGIC0_OQ.IOI_OLOGIC0_D1") {
		t.Errorf("natural tile.dst.src line should not be emitted on pseudo-pip hit, got:\n%s", out)
	}
}

func TestEmitSkipsPseudoGNDDst(t *testing.T) {
	db := memdb.New()
	tile := &pnr.Tile{
		Index: 0, Type: "CLBLL_L", Name: "CLBLL_L_X0Y0",
		Wires: []pnr.Wire{
			{Tile: 0, Index: 0, Name: "GND_DST", Intent: pnr.IntentPseudoGND},
			{Tile: 0, Index: 1, Name: "SRC"},
		},
		PipList: []pnr.Pip{{Tile: 0, Index: 0, SrcWire: 1, DstWire: 0, Flags: pnr.FlagTileRouting}},
	}
	db.Tiles[0] = tile
	net := &pnr.NetInfo{ID: 1, UsedWires: []pnr.UsedWire{{Tile: 0, Index: 0, DrivenByPip: true, Pip: 0}}}

	var sb strings.Builder
	w := fasm.New(&sb)
	pipsByTile := Emit(w, db, ppip.Build(), []*pnr.NetInfo{net})

	if sb.Len() != 0 {
		t.Errorf("expected no output for PSEUDO_GND destination, got %q", sb.String())
	}
	if len(pipsByTile[0]) != 1 {
		t.Errorf("pip should still be recorded in pips_by_tile even when skipped")
	}
}

func TestEmitSkipsNonTileRoutingPip(t *testing.T) {
	db := memdb.New()
	tile := &pnr.Tile{
		Index: 0, Type: "CLBLL_L", Name: "CLBLL_L_X0Y0",
		Wires: []pnr.Wire{
			{Tile: 0, Index: 0, Name: "DST"},
			{Tile: 0, Index: 1, Name: "SRC"},
		},
		PipList: []pnr.Pip{{Tile: 0, Index: 0, SrcWire: 1, DstWire: 0, Flags: 0}},
	}
	db.Tiles[0] = tile
	net := &pnr.NetInfo{ID: 1, UsedWires: []pnr.UsedWire{{Tile: 0, Index: 0, DrivenByPip: true, Pip: 0}}}

	var sb strings.Builder
	w := fasm.New(&sb)
	Emit(w, db, ppip.Build(), []*pnr.NetInfo{net})
	if sb.Len() != 0 {
		t.Errorf("expected no output for non-TILE_ROUTING pip, got %q", sb.String())
	}
}

func TestEmitNaturalLineOnMiss(t *testing.T) {
	db := memdb.New()
	tile := &pnr.Tile{
		Index: 0, Type: "CLBLL_L", Name: "CLBLL_L_X2Y10",
		Wires: []pnr.Wire{
			{Tile: 0, Index: 0, Name: "CLBLL_LOGIC_OUTS0"},
			{Tile: 0, Index: 1, Name: "CLBLL_L_A6"},
		},
		PipList: []pnr.Pip{{Tile: 0, Index: 0, SrcWire: 1, DstWire: 0, Flags: pnr.FlagTileRouting}},
	}
	db.Tiles[0] = tile
	net := &pnr.NetInfo{ID: 1, UsedWires: []pnr.UsedWire{{Tile: 0, Index: 0, DrivenByPip: true, Pip: 0}}}

	var sb strings.Builder
	w := fasm.New(&sb)
	Emit(w, db, ppip.Build(), []*pnr.NetInfo{net})
	want := "CLBLL_L_X2Y10.CLBLL_LOGIC_OUTS0.CLBLL_L_A6\n"
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}

func TestEmitSkipsDSPTileOnMiss(t *testing.T) {
	db := memdb.New()
	tile := &pnr.Tile{
		Index: 0, Type: "DSP_L", Name: "DSP_L_X0Y0",
		Wires: []pnr.Wire{
			{Tile: 0, Index: 0, Name: "SOME_DST"},
			{Tile: 0, Index: 1, Name: "SOME_SRC"},
		},
		PipList: []pnr.Pip{{Tile: 0, Index: 0, SrcWire: 1, DstWire: 0, Flags: pnr.FlagTileRouting}},
	}
	db.Tiles[0] = tile
	net := &pnr.NetInfo{ID: 1, UsedWires: []pnr.UsedWire{{Tile: 0, Index: 0, DrivenByPip: true, Pip: 0}}}

	var sb strings.Builder
	w := fasm.New(&sb)
	Emit(w, db, ppip.Build(), []*pnr.NetInfo{net})
	if sb.Len() != 0 {
		t.Errorf("DSP tile should be skipped entirely on natural-pip miss, got %q", sb.String())
	}
}
