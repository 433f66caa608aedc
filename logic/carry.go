/*
 * xc7fasm - CARRY4 encoding.
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
	"github.com/rcornwell/xc7fasm/fasm"
	"github.com/rcornwell/xc7fasm/pnr"
)

// encodeCarry emits the CARRY4's PRECYINIT mux and the four per-lane CY0
// muxes.
func encodeCarry(w *fasm.Writer, carry *pnr.CellInfo) {
	close := w.Scope("CARRY4")
	defer close()

	precyinit := "AX" // default: carry chain floats from the fabric AX input.
	switch {
	case carry.Port("CYINIT") != nil:
		precyinit = "CYINIT"
	case carry.Port("CIN") != nil:
		precyinit = "CIN"
		w.WriteBit("PRECYINIT.CIN", true)
	}
	w.WriteBit("PRECYINIT."+precyinit, true)

	for lane, letter := range letters {
		di := carry.Port(di4Name(lane))
		s := carry.Port(s4Name(lane))
		w.WriteBit(letter+"CY0", di != nil && s == nil)
	}
}

func di4Name(lane int) string {
	return [4]string{"DI0", "DI1", "DI2", "DI3"}[lane]
}

func s4Name(lane int) string {
	return [4]string{"S0", "S1", "S2", "S3"}[lane]
}
