/*
 * xc7fasm - Global clocking encoder (BUFGCTRL, HCLK rows, CLK_HROW, CMT).
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package clocking encodes the global clock distribution network:
// BUFGCTRL sites, HCLK row buffer enables, CLK_HROW distribution and
// the CLK_BUFG_REBUF/HCLK_CMT bank-aggregation passes that follow them.
package clocking

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rcornwell/xc7fasm/fasm"
	"github.com/rcornwell/xc7fasm/pll"
	"github.com/rcornwell/xc7fasm/pnr"
)

// Emit runs the three clocking passes over every tile in the design:
// BUFGCTRL/PLL/MMCM cells, per-tile row/distribution buffers, then the
// bank-aggregated REBUF/CMT pass that depends on what pass 2 observed.
func Emit(w *fasm.Writer, db pnr.Database, cells []*pnr.CellInfo) error {
	if err := pass1(w, cells); err != nil {
		return err
	}
	gclks, hclkByRow := pass2(w, db)
	pass3(w, db, gclks, hclkByRow)
	return nil
}

// pass1 encodes every BUFGCTRL cell and dispatches PLLE2_ADV/MMCME2_ADV
// cells to their sub-encoders.
func pass1(w *fasm.Writer, cells []*pnr.CellInfo) error {
	for _, cell := range cells {
		switch cell.OrigType {
		case "BUFGCTRL":
			emitBufgctrl(w, cell)
		case "PLLE2_ADV":
			if err := emitPLLCell(w, cell); err != nil {
				return err
			}
		case "MMCME2_ADV":
			if err := emitMMCMCell(w, cell); err != nil {
				return err
			}
		}
	}
	return nil
}

func emitBufgctrl(w *fasm.Writer, cell *pnr.CellInfo) {
	close := w.Scope("BUFGCTRL")
	defer close()
	site := cell.Param("BEL_SITE")
	if site == "" {
		site = cell.Name
	}
	closeSite := w.Scope(site)
	defer closeSite()

	w.WriteBit("IN_USE", true)
	w.WriteBit("INIT_OUT."+cell.Param("INIT_OUT"), cell.Param("INIT_OUT") != "" && cell.Param("INIT_OUT") != "0")
	w.WriteBit("IS_IGNORE0_INVERTED", cell.Attr("IS_IGNORE0_INVERTED") == "1")
	w.WriteBit("IS_IGNORE1_INVERTED", cell.Attr("IS_IGNORE1_INVERTED") == "1")
	w.WriteBit("ZINV_CE0", cell.Attr("IS_CE0_INVERTED") != "1")
	w.WriteBit("ZINV_CE1", cell.Attr("IS_CE1_INVERTED") != "1")
	w.WriteBit("ZINV_S0", cell.Attr("IS_S0_INVERTED") != "1")
	w.WriteBit("ZINV_S1", cell.Attr("IS_S1_INVERTED") != "1")
}

func emitPLLCell(w *fasm.Writer, cell *pnr.CellInfo) error {
	return pll.EmitPLL(w, cell, clockOuts(cell, []string{"CLKOUT0", "CLKOUT1", "CLKOUT2",
		"CLKOUT3", "CLKOUT4", "CLKOUT5", "CLKFBOUT"}))
}

func emitMMCMCell(w *fasm.Writer, cell *pnr.CellInfo) error {
	return pll.EmitMMCM(w, cell, clockOuts(cell, []string{"CLKOUT0", "CLKOUT1", "CLKOUT2",
		"CLKOUT3", "CLKOUT4", "CLKOUT5", "CLKOUT6", "CLKFBOUT"}))
}

func clockOuts(cell *pnr.CellInfo, names []string) []pll.ClockOut {
	outs := make([]pll.ClockOut, 0, len(names))
	for _, name := range names {
		divide := atof(cell.Param(name + "_DIVIDE"))
		if divide == 0 {
			divide = 1
		}
		outs = append(outs, pll.ClockOut{
			Name:   name,
			Divide: divide,
			Phase:  atof(cell.Param(name + "_PHASE")),
			Used:   cell.Port(name) != nil || name == "CLKFBOUT",
		})
	}
	return outs
}

// pass2 walks every tile once, encoding HCLK row buffers, CLK_HROW
// distribution and HCLK_CMT aggregation, returning what pass3 needs:
// the set of driven global clocks and the per-row HCLK-bank usage.
func pass2(w *fasm.Writer, db pnr.Database) (gclks map[string]bool, hclkByRow map[pnr.TileIndex]bool) {
	gclks = map[string]bool{}
	hclkByRow = map[pnr.TileIndex]bool{}

	for _, tile := range db.TilesAndTypes() {
		switch {
		case isHclkRow(tile.Type):
			emitHclkRow(w, db, tile, hclkByRow)
		case strings.HasPrefix(tile.Type, "CLK_HROW"):
			emitClkHrow(w, db, tile, gclks)
		case strings.HasPrefix(tile.Type, "HCLK_CMT"):
			emitHclkCmtUsage(w, db, tile)
		}
	}
	return gclks, hclkByRow
}

func isHclkRow(tileType string) bool {
	switch tileType {
	case "HCLK_L", "HCLK_R", "HCLK_L_BOT_UTURN", "HCLK_R_BOT_UTURN":
		return true
	}
	return false
}

func emitHclkRow(w *fasm.Writer, db pnr.Database, tile pnr.Tile, hclkByRow map[pnr.TileIndex]bool) {
	close := w.Scope(tile.Name)
	defer close()
	used := false
	for i, wire := range tile.Wires {
		if db.BoundWireNet(tile.Index, pnr.WireIndex(i)) == nil {
			continue
		}
		w.WriteBit("ENABLE_BUFFER."+wire.Name, true)
		used = true
	}
	if used {
		hclkByRow[tile.Index] = true
	}
}

func emitClkHrow(w *fasm.Writer, db pnr.Database, tile pnr.Tile, gclks map[string]bool) {
	close := w.Scope(tile.Name)
	defer close()
	for i, wire := range tile.Wires {
		if !strings.Contains(wire.Name, "CK_GCLK") && !strings.Contains(wire.Name, "CK_IN") {
			continue
		}
		if db.BoundWireNet(tile.Index, pnr.WireIndex(i)) == nil {
			continue
		}
		w.WriteBit(wire.Name+"_ACTIVE", true)
		if strings.Contains(wire.Name, "CK_GCLK") {
			gclks[wire.Name] = true
		}
	}
}

func emitHclkCmtUsage(w *fasm.Writer, db pnr.Database, tile pnr.Tile) {
	close := w.Scope(tile.Name)
	defer close()
	for i, wire := range tile.Wires {
		if !strings.Contains(wire.Name, "CCIO") && !strings.Contains(wire.Name, "BUFHCLK") {
			continue
		}
		if db.BoundWireNet(tile.Index, pnr.WireIndex(i)) == nil {
			continue
		}
		w.WriteBit(wire.Name+"_ACTIVE", true)
		w.WriteBit(wire.Name+"_USED", true)
	}
}

// pass3 emits the CLK_BUFG_REBUF and HCLK_CMT bank-aggregation features
// that depend on the whole-design state pass2 collected.
func pass3(w *fasm.Writer, db pnr.Database, gclks map[string]bool, hclkByRow map[pnr.TileIndex]bool) {
	for _, tile := range db.TilesAndTypes() {
		if tile.Type == "CLK_BUFG_REBUF" {
			emitRebuf(w, tile, gclks)
		}
		if strings.HasPrefix(tile.Type, "HCLK_CMT") {
			emitCmtBankUsage(w, tile, hclkByRow)
		}
	}
}

func emitRebuf(w *fasm.Writer, tile pnr.Tile, gclks map[string]bool) {
	close := w.Scope(tile.Name)
	defer close()
	for _, gclk := range sortedKeys(gclks) {
		w.WriteBit(gclk+"_ENABLE_ABOVE", true)
		w.WriteBit(gclk+"_ENABLE_BELOW", true)
	}
}

func emitCmtBankUsage(w *fasm.Writer, tile pnr.Tile, hclkByRow map[pnr.TileIndex]bool) {
	close := w.Scope(tile.Name)
	defer close()
	for _, hclk := range sortedTileIndices(hclkByRow) {
		w.WriteBit("HCLK_CMT_CK_"+strconv.Itoa(int(hclk))+"_USED", true)
	}
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedTileIndices(m map[pnr.TileIndex]bool) []pnr.TileIndex {
	out := make([]pnr.TileIndex, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func atof(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
