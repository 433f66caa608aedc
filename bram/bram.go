/*
 * xc7fasm - BRAM tile encoder.
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

// Package bram encodes BRAM_L/BRAM_R tiles: RAMB36E1 vs 2xRAMB18E1
// occupancy, width/mode features and the INIT/INITP content vectors.
package bram

import (
	"strconv"
	"strings"

	"github.com/rcornwell/xc7fasm/fasm"
	"github.com/rcornwell/xc7fasm/pnr"
	"github.com/rcornwell/xc7fasm/router"
)

// Emit encodes the BRAM cells bound to one tile, if any.
func Emit(w *fasm.Writer, db pnr.Database, ts *pnr.TileStatus, pips router.PipsByTile) error {
	if ts == nil || ts.BRAMCells == nil {
		return nil
	}
	tile := db.Tile(ts.Tile)
	if tile == nil {
		return nil
	}
	lo, hi := ts.BRAMCells[0], ts.BRAMCells[1]
	if lo == nil && hi == nil {
		return nil
	}

	close := w.Scope(tile.Name)
	defer close()

	is36 := lo != nil && lo == hi
	if is36 {
		bclose := w.Scope("RAMB36E1")
		defer bclose()
		emitHalf(w, lo, "A", is36, false)
		emitHalf(w, lo, "B", is36, true)
		emitCascade(w, db, ts.Tile, pips)
		return nil
	}

	for half, cell := range []*pnr.CellInfo{lo, hi} {
		if cell == nil {
			continue
		}
		bclose := w.Scope("RAMB18E1_Y" + strconv.Itoa(half))
		emitHalf(w, cell, "A", false, false)
		emitHalf(w, cell, "B", false, false)
		bclose()
	}
	cclose := w.Scope("RAMB18E1_Y0")
	emitCascade(w, db, ts.Tile, pips)
	cclose()
	return nil
}

func emitHalf(w *fasm.Writer, cell *pnr.CellInfo, letter string, is36, upperHalf bool) {
	w.WriteBit("IN_USE", true)

	readWidth := atoi(cell.Param("READ_WIDTH_" + letter))
	writeWidth := atoi(cell.Param("WRITE_WIDTH_" + letter))
	emitWidth(w, "READ_WIDTH_"+letter, readWidth, is36, upperHalf)
	emitWidth(w, "WRITE_WIDTH_"+letter, writeWidth, is36, false)

	w.WriteBit("DO"+letter+"_REG", cell.Param("DOA_REG") == "1" && letter == "A" ||
		cell.Param("DOB_REG") == "1" && letter == "B")

	mode := cell.Param("WRITE_MODE_" + letter)
	w.WriteBit("WRITE_MODE_"+letter+"_READ_FIRST", mode == "READ_FIRST")
	w.WriteBit("WRITE_MODE_"+letter+"_NO_CHANGE", mode == "NO_CHANGE")

	w.WriteIntVector("ZINIT_"+letter+"[17:0]", 0x3FFFF, 18, true)
	w.WriteIntVector("ZSRVAL_"+letter+"[17:0]", 0x3FFFF, 18, true)

	for _, pin := range strings.Fields(cell.Attr("invertible_pins")) {
		if strings.HasSuffix(pin, letter) {
			w.WriteBit("ZINV_"+pin, true)
		}
	}

	emitInit(w, cell, is36, upperHalf)
}

// emitWidth halves the nominal width for a 36k instance (each RAMB18E1
// half only carries half the data path) and special-cases the 36-bit
// SDP configuration, which is only reachable pre-halving.
func emitWidth(w *fasm.Writer, prefix string, width int, is36, upperHalf bool) {
	if width == 36 {
		w.WriteBit("SDP_"+prefix+"_36", true)
		w.WriteBit(prefix+"_18", true)
		if upperHalf {
			w.WriteBit(prefix+"_18", true)
		}
		return
	}
	if is36 {
		width /= 2
	}
	if width == 0 {
		return
	}
	w.WriteIntVector(prefix+"[4:0]", uint64(widthCode(width)), 5, false)
}

func widthCode(width int) int {
	switch width {
	case 1:
		return 0
	case 2:
		return 1
	case 4:
		return 2
	case 9:
		return 3
	case 18:
		return 4
	case 36:
		return 5
	}
	return 0
}

// emitInit assembles the 64x256-bit data and 8x256-bit parity vectors. For
// a 36k instance each output vector interleaves the bits of the
// corresponding lower/upper-half source vectors: even bits from one half,
// odd from the other, selected by upperHalf.
func emitInit(w *fasm.Writer, cell *pnr.CellInfo, is36, upperHalf bool) {
	for i := 0; i < 64; i++ {
		name := initParamName("INIT", i)
		bits, err := ParseBits(cell.Param(name))
		if err != nil {
			continue
		}
		bits = interleaveIfNeeded(bits, is36, upperHalf)
		w.WriteVector("INIT_"+hex2(i)+"[255:0]", bits, false)
	}
	for i := 0; i < 8; i++ {
		name := initParamName("INITP", i)
		bits, err := ParseBits(cell.Param(name))
		if err != nil {
			continue
		}
		bits = interleaveIfNeeded(bits, is36, upperHalf)
		w.WriteVector("INITP_"+hex2(i)+"[255:0]", bits, false)
	}
}

func interleaveIfNeeded(bits []bool, is36, upperHalf bool) []bool {
	if !is36 {
		return bits
	}
	out := make([]bool, len(bits))
	for i, b := range bits {
		if (i%2 == 1) == upperHalf {
			out[i] = b
		}
	}
	return out
}

func initParamName(base string, i int) string {
	return base + hex2(i)
}

func hex2(i int) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[(i>>4)&0xF], digits[i&0xF]})
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// emitCascade emits CASCOUT_{ARD,BWR}_ACTIVE on half 0 based on whether any
// pip in this tile drives a BRAM_CASCOUT_ADDR{A,B}... destination wire.
func emitCascade(w *fasm.Writer, db pnr.Database, tile pnr.TileIndex, pips router.PipsByTile) {
	ardActive, bwrActive := false, false
	for _, pipIdx := range pips[tile] {
		pip := db.Pip(tile, pipIdx)
		if pip == nil {
			continue
		}
		dst := db.Wire(tile, pip.DstWire)
		if dst == nil {
			continue
		}
		switch {
		case strings.HasPrefix(dst.Name, "BRAM_CASCOUT_ADDRA"):
			ardActive = true
		case strings.HasPrefix(dst.Name, "BRAM_CASCOUT_ADDRB"):
			bwrActive = true
		}
	}
	w.WriteBit("CASCOUT_ARD_ACTIVE", ardActive)
	w.WriteBit("CASCOUT_BWR_ACTIVE", bwrActive)
}
