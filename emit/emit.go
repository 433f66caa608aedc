/*
 * xc7fasm - top-level emission driver.
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

// Package emit is the single entry point that drives every encoder over
// a bound design, in the fixed order logic, config-center, I/O, routing,
// BRAM, clocking, then DSP, and writes the result as FASM text.
package emit

import (
	"fmt"
	"os"

	"github.com/rcornwell/xc7fasm/bram"
	"github.com/rcornwell/xc7fasm/cfgcenter"
	"github.com/rcornwell/xc7fasm/clocking"
	"github.com/rcornwell/xc7fasm/dsp"
	"github.com/rcornwell/xc7fasm/fasm"
	"github.com/rcornwell/xc7fasm/ioenc"
	"github.com/rcornwell/xc7fasm/logic"
	"github.com/rcornwell/xc7fasm/pnr"
	"github.com/rcornwell/xc7fasm/ppip"
	"github.com/rcornwell/xc7fasm/router"
)

var cfgCenterTypes = map[string]bool{
	"BSCAN": true, "DCIRESET_DCIRESET": true, "ICAP_ICAP": true, "STARTUP_STARTUP": true,
}

var padTypes = map[string]bool{"IOB33": true, "IOB33M": true, "IOB33S": true, "RIOB18": true}

var iologicTypes = map[string]bool{
	"ILOGICE3_IFF": true, "ISERDESE2": true, "OLOGICE2_OUTFF": true,
	"OLOGICE3_OUTFF": true, "OSERDESE2": true, "IDELAYE2": true, "ODELAYE2": true,
}

// Design drives every encoder over db and writes the result to outPath.
func Design(db pnr.Database, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("emit: cannot open output file %q: %w", outPath, err)
	}
	defer f.Close()

	w := fasm.New(f)
	tbl := ppip.Build()
	cells := db.SortedCells()
	nets := db.SortedNets()

	for _, tile := range db.TilesAndTypes() {
		if err := logic.Emit(w, db, db.TileStatusFor(tile.Index)); err != nil {
			return fmt.Errorf("emit: logic: %w", err)
		}
	}

	for _, cell := range cells {
		if cfgCenterTypes[cell.OrigType] {
			if err := cfgcenter.Emit(w, cell); err != nil {
				return fmt.Errorf("emit: cfgcenter: %w", err)
			}
		}
	}

	accum := map[pnr.TileIndex]*ioenc.BankAccum{}
	for _, cell := range cells {
		switch {
		case padTypes[cell.OrigType]:
			if err := ioenc.EmitPad(w, db, cell, cell.Bel, accum); err != nil {
				return fmt.Errorf("emit: ioenc: %w", err)
			}
		case iologicTypes[cell.OrigType]:
			if err := ioenc.EmitIologic(w, cell); err != nil {
				return fmt.Errorf("emit: ioenc: %w", err)
			}
		}
	}
	ioenc.FlushBanks(w, db, accum)

	pips := router.Emit(w, db, tbl, nets)

	for _, tile := range db.TilesAndTypes() {
		if err := bram.Emit(w, db, db.TileStatusFor(tile.Index), pips); err != nil {
			return fmt.Errorf("emit: bram: %w", err)
		}
	}

	if err := clocking.Emit(w, db, cells); err != nil {
		return fmt.Errorf("emit: clocking: %w", err)
	}

	for _, cell := range cells {
		if cell.OrigType == "DSP48E1" {
			if err := dsp.Emit(w, db, cell, cell.Bel); err != nil {
				return fmt.Errorf("emit: dsp: %w", err)
			}
		}
	}

	return nil
}
