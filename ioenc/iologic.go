/*
 * xc7fasm - IOLOGIC (ISERDES/OSERDES/IDELAY/ODELAY) encoder.
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

package ioenc

import (
	"fmt"

	"github.com/rcornwell/xc7fasm/fasm"
	"github.com/rcornwell/xc7fasm/pnr"
)

// EmitIologic encodes one IOLOGIC-family cell: ILOGICE3_IFF,
// OLOGICE2/3_OUTFF, OSERDESE2, ISERDESE2, IDELAYE2, ODELAYE2.
func EmitIologic(w *fasm.Writer, cell *pnr.CellInfo) error {
	switch cell.OrigType {
	case "ILOGICE3_IFF", "ISERDESE2":
		emitInputLogic(w, cell)
	case "OLOGICE2_OUTFF", "OLOGICE3_OUTFF", "OSERDESE2":
		emitOutputLogic(w, cell)
	case "IDELAYE2":
		emitDelay(w, cell, "IDELAY")
	case "ODELAYE2":
		emitDelay(w, cell, "ODELAY")
	default:
		return fmt.Errorf("ioenc: unsupported IOLOGIC cell type %q", cell.OrigType)
	}

	if cell.OrigType == "ILOGICE3_IFF" || cell.OrigType == "ISERDESE2" {
		if drv := cell.Port("D"); drv != nil && drv.Driver == "IDELAYE2" {
			w.WriteBit("IDELMUXE3.P0", true)
		}
	}
	return nil
}

func emitInputLogic(w *fasm.Writer, cell *pnr.CellInfo) {
	srtype := cell.Param("SRTYPE")
	w.WriteBit("SRTYPE.ASYNC", srtype == "ASYNC")
	w.WriteBit("SRTYPE.SYNC", srtype == "SYNC")
	w.WriteBit("ZINV_C", cell.Attr("IS_CLK_INVERTED") != "1")
	w.WriteBit("ZINV_CLKB", cell.Attr("IS_CLKB_INVERTED") != "1")
	w.WriteBit("INIT_Q1", cell.Param("INIT_Q1") == "1")
	w.WriteBit("SRVAL_Q1", cell.Param("SRVAL_Q1") == "1")
	emitWidth(w, cell.Param("DATA_WIDTH"))
	emitDataRate(w, cell.Param("DATA_RATE"))
}

func emitOutputLogic(w *fasm.Writer, cell *pnr.CellInfo) {
	srtype := cell.Param("SRTYPE")
	w.WriteBit("SRTYPE.ASYNC", srtype == "ASYNC")
	w.WriteBit("SRTYPE.SYNC", srtype == "SYNC")
	w.WriteBit("ZINV_CLK", cell.Attr("IS_CLK_INVERTED") != "1")
	w.WriteBit("INIT_OQ", cell.Param("INIT_OQ") == "1")
	w.WriteBit("SRVAL_OQ", cell.Param("SRVAL_OQ") == "1")
	emitWidth(w, cell.Param("DATA_WIDTH"))
	emitDataRate(w, cell.Param("DATA_RATE_OQ"))
}

func emitDelay(w *fasm.Writer, cell *pnr.CellInfo, prefix string) {
	w.WriteBit(prefix+".HIGH_PERFORMANCE_MODE", cell.Param("HIGH_PERFORMANCE_MODE") == "TRUE")
	w.WriteBit(prefix+".DELAY_SRC."+cell.Param("DELAY_SRC"), cell.Param("DELAY_SRC") != "")
	w.WriteBit(prefix+".IDELAY_TYPE."+cell.Param("IDELAY_TYPE"), cell.Param("IDELAY_TYPE") != "")
	value := cell.Param("IDELAY_VALUE")
	if value == "" {
		value = cell.Param("ODELAY_VALUE")
	}
	w.WriteBit(prefix+".IDELAY_VALUE."+value, value != "" && value != "0")
}

func emitWidth(w *fasm.Writer, width string) {
	w.WriteBit("DATA_WIDTH."+width, width != "")
}

func emitDataRate(w *fasm.Writer, rate string) {
	w.WriteBit("DATA_RATE_TQ."+rate, rate != "")
}
