package ioenc

import (
	"strings"
	"testing"

	"github.com/rcornwell/xc7fasm/fasm"
	"github.com/rcornwell/xc7fasm/pnr"
	"github.com/rcornwell/xc7fasm/pnr/memdb"
)

func TestEmitPadRejectsSSTL12OnIOB33(t *testing.T) {
	db := memdb.New()
	bel := pnr.BelID{Tile: 0, Index: 0}
	db.SitePlace[bel] = "IOB33_X0Y0"
	cell := &pnr.CellInfo{Name: "pad", Params: map[string]string{"IOSTANDARD": "SSTL12"}}

	var sb strings.Builder
	w := fasm.New(&sb)
	accum := map[pnr.TileIndex]*BankAccum{}
	if err := EmitPad(w, db, cell, bel, accum); err == nil {
		t.Error("expected an error for SSTL12 on an IOB33 pad")
	}
}

func TestEmitPadRejectsLVCMOS33OnRIOB18(t *testing.T) {
	db := memdb.New()
	bel := pnr.BelID{Tile: 0, Index: 0}
	db.SitePlace[bel] = "RIOB18_X0Y0"
	cell := &pnr.CellInfo{Name: "pad", Params: map[string]string{"IOSTANDARD": "LVCMOS33"}}

	var sb strings.Builder
	w := fasm.New(&sb)
	accum := map[pnr.TileIndex]*BankAccum{}
	if err := EmitPad(w, db, cell, bel, accum); err == nil {
		t.Error("expected an error for LVCMOS33 on an RIOB18 pad")
	}
}

func TestEmitPadAccumulatesBank(t *testing.T) {
	db := memdb.New()
	bel := pnr.BelID{Tile: 0, Index: 0}
	db.SitePlace[bel] = "IOB33_X0Y0"
	db.HclkIob[bel] = 5
	cell := &pnr.CellInfo{Name: "pad", Params: map[string]string{
		"IOSTANDARD": "TMDS_33", "STEPDOWN": "TRUE",
	}}

	var sb strings.Builder
	w := fasm.New(&sb)
	accum := map[pnr.TileIndex]*BankAccum{}
	if err := EmitPad(w, db, cell, bel, accum); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := accum[5]
	if a == nil {
		t.Fatal("expected a bank accumulator for HCLK tile 5")
	}
	if !a.Stepdown || !a.Tmds33InUse {
		t.Errorf("expected Stepdown and Tmds33InUse set, got %+v", a)
	}
}

func TestFlushBanksEmitsPerTile(t *testing.T) {
	db := memdb.New()
	db.Tiles[5] = &pnr.Tile{Index: 5, Name: "HCLK_IOI3_X0Y10"}

	var sb strings.Builder
	w := fasm.New(&sb)
	accum := map[pnr.TileIndex]*BankAccum{5: {Stepdown: true, Vref: "0.75"}}
	FlushBanks(w, db, accum)

	out := sb.String()
	if !strings.Contains(out, "HCLK_IOI3_X0Y10.STEPDOWN") {
		t.Errorf("expected STEPDOWN under the HCLK tile scope, got:\n%s", out)
	}
	if !strings.Contains(out, "VREF.0.75") {
		t.Errorf("expected VREF.0.75, got:\n%s", out)
	}
}

func TestEmitIologicUnsupportedType(t *testing.T) {
	var sb strings.Builder
	w := fasm.New(&sb)
	cell := &pnr.CellInfo{Name: "x", OrigType: "BOGUS"}
	if err := EmitIologic(w, cell); err == nil {
		t.Error("expected an error for an unsupported IOLOGIC cell type")
	}
}

func TestEmitIologicIdelayMuxOnBoundIdelay(t *testing.T) {
	var sb strings.Builder
	w := fasm.New(&sb)
	net := &pnr.NetInfo{ID: 1, Driver: "IDELAYE2"}
	cell := &pnr.CellInfo{Name: "iserdes", OrigType: "ISERDESE2", Ports: map[string]*pnr.NetInfo{"D": net}}
	if err := EmitIologic(w, cell); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sb.String(), "IDELMUXE3.P0") {
		t.Errorf("expected IDELMUXE3.P0, got:\n%s", sb.String())
	}
}
