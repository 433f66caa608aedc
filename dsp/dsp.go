/*
 * xc7fasm - DSP48E1 encoder.
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

// Package dsp encodes DSP48E1 cells: sub-site pick, register/port-mode
// features, the PATTERN/MASK detector, polarity-inverted enables and
// ground/VCC pin tie-offs.
package dsp

import (
	"fmt"
	"strings"

	"github.com/rcornwell/xc7fasm/fasm"
	"github.com/rcornwell/xc7fasm/pnr"
)

// Emit encodes one DSP48E1 cell placed at bel, picking its DSP_0/DSP_1
// sub-site from the bel's site-local Y parity.
func Emit(w *fasm.Writer, db pnr.Database, cell *pnr.CellInfo, bel pnr.BelID) error {
	_, y := db.SiteLocInTile(bel)
	sub := "DSP_0"
	if y%2 == 1 {
		sub = "DSP_1"
	}
	close := w.Scope(sub)
	defer close()

	w.WriteBit("AREG_2", cell.Param("AREG") == "2")
	w.WriteBit("AREG_0", cell.Param("AREG") == "0")
	w.WriteBit("BREG_2", cell.Param("BREG") == "2")
	w.WriteBit("BREG_0", cell.Param("BREG") == "0")
	w.WriteBit("A_INPUT.DIRECT", cell.Param("A_INPUT") != "CASCADE")
	w.WriteBit("A_INPUT.CASCADE", cell.Param("A_INPUT") == "CASCADE")
	w.WriteBit("B_INPUT.DIRECT", cell.Param("B_INPUT") != "CASCADE")
	w.WriteBit("B_INPUT.CASCADE", cell.Param("B_INPUT") == "CASCADE")
	w.WriteBit("USE_DPORT", cell.Param("USE_DPORT") == "TRUE")

	simd := cell.Param("USE_SIMD")
	if simd == "" {
		simd = "ONE48"
	}
	w.WriteBit("USE_SIMD."+simd, true)

	if err := emitPatternMask(w, cell); err != nil {
		return err
	}
	if err := emitSelMask(w, cell); err != nil {
		return err
	}
	emitRegisterEnables(w, cell)
	emitInversions(w, cell)

	return emitGroundVccPins(w, db, cell, bel)
}

func emitPatternMask(w *fasm.Writer, cell *pnr.CellInfo) error {
	if pattern := cell.Param("PATTERN"); pattern != "" {
		bits, err := fasm.ParseVector(pattern)
		if err != nil {
			return fmt.Errorf("dsp: invalid PATTERN literal: %w", err)
		}
		w.WriteVector("PATTERN[47:0]", padOrTruncate(bits, 48), false)
	}
	mask := cell.Param("MASK")
	if mask == "" {
		return nil
	}
	bits, err := fasm.ParseVector(mask)
	if err != nil {
		return fmt.Errorf("dsp: invalid MASK literal: %w", err)
	}
	w.WriteVector("MASK[45:0]", padOrTruncate(bits, 46), false)
	return nil
}

// padOrTruncate keeps the rightmost (least significant) width bits of
// bits, truncating a longer source or zero-extending a shorter one on
// the left.
func padOrTruncate(bits []bool, width int) []bool {
	if len(bits) == width {
		return bits
	}
	if len(bits) > width {
		return bits[len(bits)-width:]
	}
	out := make([]bool, width)
	copy(out[width-len(bits):], bits)
	return out
}

var selMasks = map[string]bool{"MASK": true, "C": true, "ROUNDING_MODE1": true, "ROUNDING_MODE2": true}

func emitSelMask(w *fasm.Writer, cell *pnr.CellInfo) error {
	sel := cell.Param("SEL_MASK")
	if sel == "" {
		return nil
	}
	if !selMasks[sel] {
		return fmt.Errorf("dsp: unsupported SEL_MASK %q", sel)
	}
	w.WriteBit("SEL_MASK."+sel, true)
	return nil
}

func emitRegisterEnables(w *fasm.Writer, cell *pnr.CellInfo) {
	for _, reg := range []string{"ACASCREG", "ADREG", "ALUMODEREG", "BCASCREG",
		"CARRYINREG", "CARRYINSELREG", "CREG", "DREG", "INMODEREG",
		"MREG", "OPMODEREG", "PREG"} {
		present := cell.Param(reg) != "0" && cell.Param(reg) != ""
		w.WriteBit("Z"+reg, !present)
	}
}

func emitInversions(w *fasm.Writer, cell *pnr.CellInfo) {
	emitInvertedBits(w, cell, "ALUMODE", 4)
	emitInvertedBits(w, cell, "INMODE", 5)
	emitInvertedBits(w, cell, "OPMODE", 7)
	w.WriteBit("ZINV_CLK", cell.Attr("IS_CLK_INVERTED") != "1")
	w.WriteBit("ZINV_CARRYIN", cell.Attr("IS_CARRYIN_INVERTED") != "1")
}

func emitInvertedBits(w *fasm.Writer, cell *pnr.CellInfo, signal string, width int) {
	field := cell.Attr("IS_" + signal + "_INVERTED")
	for i := 0; i < width; i++ {
		bitInverted := i < len(field) && field[len(field)-1-i] == '1'
		flagInverted := cell.Attr(fmt.Sprintf("IS_%s%d_INVERTED", signal, i)) == "1"
		w.WriteBit(fmt.Sprintf("ZIS_%s_INVERTED[%d]", signal, i), !(bitInverted || flagInverted))
	}
}

func emitGroundVccPins(w *fasm.Writer, db pnr.Database, cell *pnr.CellInfo, bel pnr.BelID) error {
	tile := db.Tile(bel.Tile)
	side := "R"
	if tile != nil && strings.Contains(tile.Name, "_L_") {
		side = "L"
	}
	n := dspIndex(bel)

	for _, kind := range []struct {
		attr, net string
	}{{"DSP_GND_PINS", "GND"}, {"DSP_VCC_PINS", "VCC"}} {
		pins := cell.Attr(kind.attr)
		if pins == "" {
			continue
		}
		for _, pin := range strings.Split(pins, ",") {
			pin = strings.TrimSpace(pin)
			if pin == "" {
				continue
			}
			net := kind.net
			if cell.Attr("IS_"+pin+"_INVERTED") == "1" {
				if net == "GND" {
					net = "VCC"
				} else {
					net = "GND"
				}
			}
			w.WriteBit(fmt.Sprintf("DSP_%d_%s.DSP_%s_%s", n, pin, net, side), true)
		}
	}
	return nil
}

func dspIndex(bel pnr.BelID) int {
	return bel.Index % 2
}
