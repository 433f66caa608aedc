/*
 * xc7fasm - Logic-tile encoder entry point.
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

// Package logic encodes the SLICE logic tiles: LUT INIT/mode, flip-flops
// and carry chains.
package logic

import (
	"strconv"
	"strings"

	"github.com/rcornwell/xc7fasm/fasm"
	"github.com/rcornwell/xc7fasm/pnr"
)

// Sub-slot kinds packed into pnr.TileStatus.LogicCells, per the
// (half<<6)|(beletter<<4)|subkind convention. beletter ranges
// 0-3 for A-D on LUT/FF slots and doubles as the FF index (0-7) for FF
// sub-slots, and 0 for the single CARRY4 per half.
const (
	subLUT6 = iota
	subLUT5
	subFF
	subCarry
)

var letters = [4]string{"A", "B", "C", "D"}

// Emit encodes every bound logic cell in a tile hosting at least one.
func Emit(w *fasm.Writer, db pnr.Database, ts *pnr.TileStatus) error {
	if ts == nil || ts.LogicCells == nil {
		return nil
	}
	tile := db.Tile(ts.Tile)
	if tile == nil {
		return nil
	}
	close := w.Scope(tile.Name)
	defer close()

	for half := 0; half < 2; half++ {
		sliceName := sliceLabel(tile.Type, half)
		sliceClose := w.Scope(sliceName)

		for letterIdx, letter := range letters {
			lut6 := ts.LogicCells[pnr.PackIndex(half, letterIdx, subLUT6)]
			lut5 := ts.LogicCells[pnr.PackIndex(half, letterIdx, subLUT5)]
			if lut6 == nil && lut5 == nil {
				continue
			}
			if err := encodeLUT(w, letter, lut6, lut5); err != nil {
				return err
			}
		}

		ffs := make([]*pnr.CellInfo, 8)
		any := false
		for i := 0; i < 8; i++ {
			ffs[i] = ts.LogicCells[pnr.PackIndex(half, i, subFF)]
			if ffs[i] != nil {
				any = true
			}
		}
		if any {
			if err := encodeFFs(w, ffs); err != nil {
				return err
			}
		}

		if carry := ts.LogicCells[pnr.PackIndex(half, 0, subCarry)]; carry != nil {
			encodeCarry(w, carry)
		}

		if sliceName == "SLICEM_X0" {
			for _, letter := range letters {
				encodeWideMux(w, db, ts.Tile, letter+"DI1MUX_OUT")
			}
			encodeWideMux(w, db, ts.Tile, "WEMUX_OUT")
		}

		sliceClose()
	}
	return nil
}

func sliceLabel(tileType string, half int) string {
	kind := "SLICEL"
	if strings.Contains(tileType, "CLBLM") && half == 0 {
		kind = "SLICEM"
	}
	return kind + "_X" + strconv.Itoa(half)
}
