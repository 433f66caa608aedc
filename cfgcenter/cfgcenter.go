/*
 * xc7fasm - Configuration-center cell encoder.
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

// Package cfgcenter encodes the fixed-function cells placed in
// CFG_CENTER_* tiles: BSCAN, DCIRESET, ICAP and STARTUP.
package cfgcenter

import (
	"fmt"

	"github.com/rcornwell/xc7fasm/fasm"
	"github.com/rcornwell/xc7fasm/pnr"
)

// Emit encodes one config-center cell, dispatching on its original type.
func Emit(w *fasm.Writer, cell *pnr.CellInfo) error {
	switch cell.OrigType {
	case "BSCAN":
		return emitBSCAN(w, cell)
	case "DCIRESET_DCIRESET":
		emitDCIReset(w, cell)
	case "ICAP_ICAP":
		return emitICAP(w, cell)
	case "STARTUP_STARTUP":
		emitStartup(w, cell)
	default:
		return fmt.Errorf("cfgcenter: unsupported cell type %q", cell.OrigType)
	}
	return nil
}

func emitBSCAN(w *fasm.Writer, cell *pnr.CellInfo) error {
	chain := atoi(cell.Param("JTAG_CHAIN"))
	if chain < 1 || chain > 4 {
		return fmt.Errorf("cfgcenter: JTAG_CHAIN %d out of range [1,4]", chain)
	}
	close := w.Scope("BSCAN")
	defer close()
	w.WriteBit(fmt.Sprintf("JTAG_CHAIN.JTAG_CHAIN%d", chain), true)
	w.WriteBit("JTAG_TEST", cell.Param("JTAG_TEST") == "TRUE")
	w.WriteBit("DISABLE_JTAG.DISABLE_JTAG", cell.Param("DISABLE_JTAG") == "TRUE")
	return nil
}

func emitDCIReset(w *fasm.Writer, cell *pnr.CellInfo) {
	close := w.Scope("DCIRESET")
	defer close()
	w.WriteBit("IN_USE", true)
}

var icapWidths = map[string]bool{"X32": true, "X16": true, "X8": true}

func emitICAP(w *fasm.Writer, cell *pnr.CellInfo) error {
	width := cell.Param("ICAP_WIDTH")
	if width == "" {
		width = "X32"
	}
	if !icapWidths[width] {
		return fmt.Errorf("cfgcenter: ICAP_WIDTH %q out of range {X32,X16,X8}", width)
	}
	close := w.Scope("ICAP")
	defer close()
	w.WriteBit("IN_USE", true)
	w.WriteBit("ICAP_WIDTH."+width, true)
	return nil
}

func emitStartup(w *fasm.Writer, cell *pnr.CellInfo) {
	close := w.Scope("STARTUP")
	defer close()
	w.WriteBit("IN_USE", true)
	w.WriteBit("GSR_SYNC."+cell.Param("GSR_SYNC"), cell.Param("GSR_SYNC") != "")
	w.WriteBit("GTS_SYNC."+cell.Param("GTS_SYNC"), cell.Param("GTS_SYNC") != "")
	w.WriteBit("PROG_USR."+cell.Param("PROG_USR"), cell.Param("PROG_USR") != "")
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return -1
		}
		n = n*10 + int(c-'0')
	}
	if s == "" {
		return -1
	}
	return n
}
