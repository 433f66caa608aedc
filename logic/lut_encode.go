/*
 * xc7fasm - Per-letter LUT feature encoding.
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
	"github.com/rcornwell/xc7fasm/util/warn"
)

func parseLogicalInit(cell *pnr.CellInfo) uint64 {
	init := cell.Param("INIT")
	bits, err := fasm.ParseVector(init)
	if err != nil || len(bits) == 0 {
		return 0
	}
	var v uint64
	for i, b := range bits {
		if b {
			v |= 1 << uint(len(bits)-1-i)
		}
	}
	return v
}

func attrFor(cell *pnr.CellInfo) func(string) string {
	return func(name string) string { return cell.Attr("X_ORIG_PORT_" + name) }
}

// encodeLUT emits the INIT vector and mode bits for one A-D LUT position.
// Either lut6 or lut5 (or both, fractured) may be present.
func encodeLUT(w *fasm.Writer, letter string, lut6, lut5 *pnr.CellInfo) error {
	var physInit uint64

	if lut5 != nil {
		m := PhysToLogMap(attrFor(lut5))
		hi := 64
		if lut6 != nil {
			hi = 32 // fractured: LUT5 only writes its own half.
		}
		physInit = PermuteInit(physInit, m, parseLogicalInit(lut5), 0, hi)
	}
	if lut6 != nil {
		m := PhysToLogMap(attrFor(lut6))
		lo := 0
		if lut5 != nil {
			lo = 32
		}
		physInit = PermuteInit(physInit, m, parseLogicalInit(lut6), lo, 64)
	}

	w.WriteIntVector(letter+"LUT.INIT[63:0]", physInit, 64, false)

	primary := lut6
	if primary == nil {
		primary = lut5
	}
	if primary == nil {
		return nil
	}

	small := lut5 != nil && lut6 == nil
	ram := false
	srl := false
	switch primary.OrigType {
	case "RAMD64E", "RAMD32":
		ram = true
	case "SRL16E", "SRLC32E":
		srl = true
	}
	w.WriteBit(letter+"LUT.SMALL", small)
	w.WriteBit(letter+"LUT.RAM", ram)
	w.WriteBit(letter+"LUT.SRL", srl)

	w.WriteBit(letter+"LUT.WA7USED", primary.Port("WA7") != nil)
	w.WriteBit(letter+"LUT.WA8USED", primary.Port("WA8") != nil)

	if logicalInputCount(primary.OrigType) == 0 {
		return fmt.Errorf("logic: unsupported LUT cell type for %sLUT", letter)
	}
	return nil
}

// encodeWideMux scans a SLICEM ?DI1MUX_OUT/WEMUX_OUT site wire for a bound
// uphill pip and emits the driving bel's name as a bit. WEMUX fed from its
// own WE pin is the default (unrouted) state and is suppressed rather than
// emitted.
func encodeWideMux(w *fasm.Writer, db pnr.Database, tile pnr.TileIndex, wireName string) {
	wireIdx, ok := findWire(db, tile, wireName)
	if !ok {
		return
	}
	for _, pipIdx := range db.PipsUphill(wireIdx, tile) {
		pip := db.Pip(tile, pipIdx)
		if pip == nil || db.BoundWireNet(tile, pip.SrcWire) == nil {
			continue
		}
		srcWire := db.Wire(tile, pip.SrcWire)
		if srcWire == nil {
			continue
		}
		belName := srcWire.Name
		if belName == "WEMUX_WE" {
			return
		}
		if strings.HasPrefix(belName, "?") {
			belName = belName[1:]
		}
		w.WriteBit(belName, true)
		return
	}
	warn.Warnf("logic", "wide mux %q uphill of a bound pip with no driving net", wireName)
}

func findWire(db pnr.Database, tile pnr.TileIndex, name string) (pnr.WireIndex, bool) {
	t := db.Tile(tile)
	if t == nil {
		return 0, false
	}
	for _, wire := range t.Wires {
		if wire.Name == name {
			return wire.Index, true
		}
	}
	return 0, false
}
