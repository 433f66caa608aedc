package dsp

import (
	"strings"
	"testing"

	"github.com/rcornwell/xc7fasm/fasm"
	"github.com/rcornwell/xc7fasm/pnr"
	"github.com/rcornwell/xc7fasm/pnr/memdb"
)

func TestEmitSubSitePick(t *testing.T) {
	db := memdb.New()
	bel := pnr.BelID{Tile: 0, Index: 1}
	db.SiteLoc[bel] = [2]int{0, 1}
	cell := &pnr.CellInfo{Name: "dsp", Params: map[string]string{"AREG": "2", "BREG": "2"}}

	var sb strings.Builder
	w := fasm.New(&sb)
	if err := Emit(w, db, cell, bel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sb.String(), "DSP_1.AREG_2") {
		t.Errorf("expected DSP_1 sub-site scope, got:\n%s", sb.String())
	}
}

func TestEmitRejectsUnsupportedSelMask(t *testing.T) {
	db := memdb.New()
	bel := pnr.BelID{Tile: 0, Index: 0}
	cell := &pnr.CellInfo{Name: "dsp", Params: map[string]string{"SEL_MASK": "BOGUS"}}

	var sb strings.Builder
	w := fasm.New(&sb)
	if err := Emit(w, db, cell, bel); err == nil {
		t.Error("expected an error for an unsupported SEL_MASK")
	}
}

func TestEmitMaskTruncatesTo46Bits(t *testing.T) {
	db := memdb.New()
	bel := pnr.BelID{Tile: 0, Index: 0}
	cell := &pnr.CellInfo{Name: "dsp", Params: map[string]string{"MASK": "48'b" + strings.Repeat("1", 48)}}

	var sb strings.Builder
	w := fasm.New(&sb)
	if err := Emit(w, db, cell, bel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sb.String(), "MASK[45:0] = 46'b"+strings.Repeat("1", 46)) {
		t.Errorf("expected a 46-bit truncated MASK, got:\n%s", sb.String())
	}
}

func TestEmitGroundVccPinsFlippedByInversion(t *testing.T) {
	db := memdb.New()
	db.Tiles[0] = &pnr.Tile{Index: 0, Name: "DSP_L_X10Y20"}
	bel := pnr.BelID{Tile: 0, Index: 0}
	cell := &pnr.CellInfo{Name: "dsp", Attrs: map[string]string{
		"DSP_GND_PINS":      "ALUMODE2",
		"IS_ALUMODE2_INVERTED": "1",
	}}

	var sb strings.Builder
	w := fasm.New(&sb)
	if err := Emit(w, db, cell, bel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sb.String(), "DSP_0_ALUMODE2.DSP_VCC_L") {
		t.Errorf("expected an inverted GND pin tied to VCC on the L side, got:\n%s", sb.String())
	}
}

func TestEmitRegisterEnablesBypass(t *testing.T) {
	db := memdb.New()
	bel := pnr.BelID{Tile: 0, Index: 0}
	cell := &pnr.CellInfo{Name: "dsp", Params: map[string]string{"PREG": "0"}}

	var sb strings.Builder
	w := fasm.New(&sb)
	if err := Emit(w, db, cell, bel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sb.String(), "ZPREG") {
		t.Errorf("expected ZPREG when PREG is bypassed, got:\n%s", sb.String())
	}
}
