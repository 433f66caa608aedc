/*
 * xc7fasm - SLICE flip-flop encoding.
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

package logic

import (
	"fmt"
	"strings"

	"github.com/rcornwell/xc7fasm/fasm"
	"github.com/rcornwell/xc7fasm/pnr"
)

// ffMode describes the decoded shape of one FDxx primitive, common to every
// FF in a half-slice: all eight must agree on latch mode, sync/async reset,
// clock polarity and SR/CE usage, a rule every FF in a half-slice must
// agree on.
type ffMode struct {
	isLatch    bool // FDPE/FDCE family is a latch when LATCH attr is set
	syncReset  bool // FDRE/FDSE vs FDCE/FDPE
	clkInverted bool
	srUsed     bool
	ceUsed     bool
	srHigh     bool // FDSE/FDPE set on SR, FDRE/FDCE clear on SR
}

func decodeFFMode(cell *pnr.CellInfo) (ffMode, error) {
	var m ffMode
	switch cell.OrigType {
	case "FDRE", "FDRE_1":
		m.syncReset, m.srHigh = true, false
	case "FDSE", "FDSE_1":
		m.syncReset, m.srHigh = true, true
	case "FDCE", "FDCE_1":
		m.syncReset, m.srHigh = false, false
	case "FDPE", "FDPE_1":
		m.syncReset, m.srHigh = false, true
	default:
		return m, fmt.Errorf("logic: unsupported FF cell type %q", cell.OrigType)
	}
	m.isLatch = cell.Attr("X_ORIG_LATCH") == "1"
	// The "IS_CLK_INVERTED" attribute and the "_1" negedge-clock naming
	// both select the inverted-clock FASM bit; this is the existing,
	// as-documented behaviour rather than a normalized single source of
	// truth (an intentional carry-over of observed FASM-database behaviour).
	m.clkInverted = cell.Attr("IS_CLK_INVERTED") == "1" || strings.HasSuffix(cell.OrigType, "_1")
	m.srUsed = cell.Port("S") != nil || cell.Port("R") != nil || cell.Port("CLR") != nil || cell.Port("PRE") != nil
	m.ceUsed = cell.Port("CE") != nil
	return m, nil
}

// encodeFFs encodes up to eight flip-flops of one half-slice. ffs is indexed
//0-7 by beletter/AFF..DFF2 slot; nil entries are unused slots.
func encodeFFs(w *fasm.Writer, ffs []*pnr.CellInfo) error {
	var mode ffMode
	haveMode := false

	ffLetters := [8]string{"A", "A2", "B", "B2", "C", "C2", "D", "D2"}

	for i, cell := range ffs {
		if cell == nil {
			continue
		}
		m, err := decodeFFMode(cell)
		if err != nil {
			return err
		}
		if !haveMode {
			mode, haveMode = m, true
		} else if m != mode {
			return fmt.Errorf("logic: flip-flops in one half-slice disagree on mode (%s vs slot %d)", cell.Name, i)
		}

		w.WriteBit(ffLetters[i]+"FF.ZINI", cell.Attr("INIT") == "INIT1")
	}

	if !haveMode {
		return nil
	}

	w.WriteBit("LATCH", mode.isLatch)
	w.WriteBit("FFSYNC", mode.syncReset)
	w.WriteBit("CLKINV", mode.clkInverted)
	w.WriteBit("SRUSEDMUX", mode.srUsed)
	w.WriteBit("CEUSEDMUX", mode.ceUsed)
	w.WriteBit("SRHIGH", mode.srHigh)
	return nil
}
