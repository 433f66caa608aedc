/*
 * xc7fasm - I/O pad encoder.
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

// Package ioenc encodes PAD cells (electrical standard, drive, slew,
// termination) and their IOLOGIC companions (ISERDES/OSERDES/IDELAY/
// ODELAY), and accumulates bank-wide settings flushed at the owning HCLK
// tile.
package ioenc

import (
	"fmt"
	"strings"

	"github.com/rcornwell/xc7fasm/fasm"
	"github.com/rcornwell/xc7fasm/pnr"
	"github.com/rcornwell/xc7fasm/util/warn"
)

// BankAccum collects the bank-aggregated features of every PAD sharing an
// HCLK tile, flushed once by FlushBanks.
type BankAccum struct {
	Stepdown      bool
	Vref          string
	OnlyDiffInUse bool
	Tmds33InUse   bool
	Lvds25InUse   bool
}

var diffStandards = map[string]bool{
	"DIFF_SSTL135": true, "DIFF_SSTL15": true, "DIFF_HSTL_I": true,
	"LVDS": true, "LVDS_25": true, "TMDS_33": true,
}

func isDifferential(standard string) bool {
	if strings.HasPrefix(standard, "DIFF_") {
		return true
	}
	return diffStandards[standard]
}

// EmitPad encodes one PAD cell's electrical settings and folds its
// bank-wide contribution into accum, keyed by the pad's owning HCLK tile.
func EmitPad(w *fasm.Writer, db pnr.Database, cell *pnr.CellInfo, bel pnr.BelID, accum map[pnr.TileIndex]*BankAccum) error {
	site := db.BelSite(bel)
	riob18 := strings.HasPrefix(site, "IOB18") || strings.HasPrefix(site, "RIOB18")

	standard := cell.Param("IOSTANDARD")
	if riob18 && (standard == "LVCMOS33" || standard == "LVTTL") {
		return fmt.Errorf("ioenc: %s is not supported on an RIOB18 pad", standard)
	}
	if !riob18 && standard == "SSTL12" {
		return fmt.Errorf("ioenc: SSTL12 is not supported on an IOB33 pad")
	}

	half := "Y1"
	hclk := db.HclkForIob(bel)
	_, y := db.SiteLocInTile(bel)
	if y < int(hclk) {
		half = "Y0"
	}

	kind := "IOB33"
	if riob18 {
		kind = "RIOB18"
	}
	close := w.Scope(kind + "_" + half)
	defer close()

	w.WriteBit("ISTANDARD."+standard, !isDifferential(standard))
	w.WriteBit("DIFF_ISTANDARD."+standard, isDifferential(standard))
	w.WriteBit("PULLTYPE."+cell.Param("PULLTYPE"), cell.Param("PULLTYPE") != "")
	w.WriteBit("SLEW."+cell.Param("SLEW"), cell.Param("SLEW") != "")
	w.WriteBit("DRIVE."+cell.Param("DRIVE"), cell.Param("DRIVE") != "")
	w.WriteBit("IN_TERM."+cell.Param("IN_TERM"), cell.Param("IN_TERM") != "")
	w.WriteBit("IOBDELAY."+cell.Param("IOBDELAY"), cell.Param("IOBDELAY") != "")

	a := accum[hclk]
	if a == nil {
		a = &BankAccum{}
		accum[hclk] = a
	}
	if cell.Param("STEPDOWN") == "TRUE" {
		a.Stepdown = true
	}
	if v := cell.Param("VREF"); v != "" {
		a.Vref = v
	}
	switch standard {
	case "TMDS_33":
		a.Tmds33InUse = true
	case "LVDS_25":
		a.Lvds25InUse = true
	}
	if isDifferential(standard) && cell.Port("O") == nil {
		a.OnlyDiffInUse = true
	}
	return nil
}

// FlushBanks emits the accumulated per-bank features at each bank's HCLK
// tile, once I/O emission is complete.
func FlushBanks(w *fasm.Writer, db pnr.Database, accum map[pnr.TileIndex]*BankAccum) {
	hclks := make([]pnr.TileIndex, 0, len(accum))
	for hclk := range accum {
		hclks = append(hclks, hclk)
	}
	sortTileIndices(hclks)

	for _, hclk := range hclks {
		tile := db.Tile(hclk)
		if tile == nil {
			warn.Warnf("ioenc", "bank accumulator references unknown tile %d", hclk)
			continue
		}
		a := accum[hclk]
		close := w.Scope(tile.Name)
		w.WriteBit("STEPDOWN", a.Stepdown)
		w.WriteBit("VREF."+a.Vref, a.Vref != "")
		w.WriteBit("ONLY_DIFF_IN_USE", a.OnlyDiffInUse)
		w.WriteBit("TMDS_33_IN_USE", a.Tmds33InUse)
		w.WriteBit("LVDS_25_IN_USE", a.Lvds25InUse)
		close()
	}
}

func sortTileIndices(s []pnr.TileIndex) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
