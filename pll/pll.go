/*
 * xc7fasm - PLLE2_ADV / MMCME2_ADV encoder.
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

// Package pll computes the divider/phase register fields shared by
// PLLE2_ADV and MMCME2_ADV clock outputs and encodes both primitives'
// static lookup-table features.
package pll

import (
	"fmt"
	"math"

	"github.com/rcornwell/xc7fasm/fasm"
	"github.com/rcornwell/xc7fasm/pnr"
)

// Divider computes the high/low count-register halves for one clock
// output from its real-valued divide ratio.
func Divider(divide float64) (high, low int, edge, noCount bool) {
	if divide <= 1 {
		return 0, 0, false, true
	}
	high = int(math.Floor(divide / 2))
	low = int(math.Floor(divide)) - high
	edge = high != low
	return high, low, edge, false
}

// Frac computes the eighths-of-a-cycle fractional remainder of divide,
// valid only for the clock outputs that carry fractional division
// (CLKOUT1/CLKFBOUT on PLLE2, CLKOUT0/CLKFBOUT on MMCME2).
func Frac(divide float64) int {
	return int(math.Floor(divide*8)) - int(math.Floor(divide))*8
}

// PhaseMux computes the phase-shift mux selection and integer delay count
// for a clock output of the given divide ratio and phase (in degrees).
func PhaseMux(phase, divide float64) (mux, delay int) {
	phaseEights := int(math.Floor((phase / 360) * divide * 8))
	mux = phaseEights % 8
	if mux < 0 {
		mux += 8
	}
	delay = phaseEights / 8
	return mux, delay
}

// ClockOut describes one PLL/MMCM clock output to encode.
type ClockOut struct {
	Name   string // e.g. "CLKOUT0", "CLKFBOUT"
	Divide float64
	Phase  float64
	Used   bool
}

// EmitPLL encodes a PLLE2_ADV cell's clock-output registers, compensation
// mode and static lookup tables.
func EmitPLL(w *fasm.Writer, cell *pnr.CellInfo, outs []ClockOut) error {
	for _, out := range outs {
		emitClockOut(w, out, "PLLE2", out.Name == "CLKOUT1" || out.Name == "CLKFBOUT")
	}
	if err := emitCompensation(w, cell, true); err != nil {
		return err
	}
	mult, err := clkfboutMult(cell)
	if err != nil {
		return err
	}
	emitLookupTables(w, pllLockTable, pllFilterTable, mult, 0x3B4)
	return nil
}

// EmitMMCM encodes an MMCME2_ADV cell's clock-output registers,
// compensation mode and static lookup tables.
func EmitMMCM(w *fasm.Writer, cell *pnr.CellInfo, outs []ClockOut) error {
	for _, out := range outs {
		fractional := out.Name == "CLKOUT0" || out.Name == "CLKFBOUT"
		emitClockOut(w, out, "MMCME2", fractional)
		if fractional {
			frac := Frac(out.Divide)
			w.WriteBit("CLKOUT5_CLKOUT2_FRAC_EN", frac != 0)
			w.WriteBit("CLKOUT6_CLKOUT2_FRAC_EN", frac != 0)
		}
	}
	if err := emitCompensation(w, cell, false); err != nil {
		return err
	}
	mult, err := clkfboutMult(cell)
	if err != nil {
		return err
	}
	bandwidth := cell.Param("BANDWIDTH")
	filter, ok := mmcmFilterTable[bandwidth]
	if !ok {
		return fmt.Errorf("pll: unsupported MMCM BANDWIDTH %q", bandwidth)
	}
	emitLookupTables(w, mmcmLockTable, filter, mult, 0x3D4)
	return nil
}

func emitClockOut(w *fasm.Writer, out ClockOut, family string, fractional bool) {
	if !out.Used && out.Name != "DIVCLK" && out.Name != "CLKFBOUT" {
		return
	}
	close := w.Scope(out.Name)
	defer close()

	high, low, edge, noCount := Divider(out.Divide)
	if noCount {
		w.WriteBit("NO_COUNT", true)
		return
	}
	if fractional {
		if frac := Frac(out.Divide); frac != 0 {
			high--
			low--
		}
	}
	w.WriteIntVector("HIGH_TIME[5:0]", uint64(high), 6, false)
	w.WriteIntVector("LOW_TIME[5:0]", uint64(low), 6, false)
	w.WriteBit("EDGE", edge)

	mux, delay := PhaseMux(out.Phase, out.Divide)
	w.WriteIntVector("MX[1:0]", uint64(mux), 2, false)
	w.WriteIntVector("DT", uint64(delay), 6, false)
}

func emitCompensation(w *fasm.Writer, cell *pnr.CellInfo, isPLL bool) error {
	mode := cell.Param("COMPENSATION")
	switch mode {
	case "INTERNAL":
		w.WriteBit("Z_ZHOLD_OR_CLKIN_BUF", true)
	case "ZHOLD":
		if isPLL {
			return fmt.Errorf("pll: ZHOLD compensation is not valid on PLLE2_ADV")
		}
		w.WriteBit("Z_ZHOLD", true)
	case "":
	default:
		return fmt.Errorf("pll: unsupported COMPENSATION mode %q", mode)
	}
	return nil
}

func clkfboutMult(cell *pnr.CellInfo) (int, error) {
	mult := atoi(cell.Param("CLKFBOUT_MULT"))
	if mult < 1 || mult > 64 {
		return 0, fmt.Errorf("pll: CLKFBOUT_MULT %d out of range [1,64]", mult)
	}
	return mult - 1, nil
}

func emitLookupTables(w *fasm.Writer, lockTable [64]uint64, filterTable [64]uint16, idx int, staticTable uint64) {
	w.WriteIntVector("LKTABLE[39:0]", lockTable[idx], 40, false)
	w.WriteIntVector("FILTREG1_RESERVED[11:0]", uint64(filterTable[idx]), 12, false)
	w.WriteIntVector("TABLE[9:0]", staticTable, 10, false)
	w.WriteBit("LOCKREG3_RESERVED[0]", true)
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}
