/*
 * xc7fasm - LUT INIT permutation and fracturable-LUT encoding.
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

import "strings"

// logicalInputCount returns the number of logical address lines for the
// named LUT-kind cell: LUT1..6, RAMD64E, RAMD32, SRL16E, SRLC32E.
func logicalInputCount(origType string) int {
	switch origType {
	case "LUT1":
		return 1
	case "LUT2":
		return 2
	case "LUT3":
		return 3
	case "LUT4":
		return 4
	case "LUT5", "RAMD32":
		return 5
	case "LUT6", "RAMD64E", "SRLC32E":
		return 6
	case "SRL16E":
		return 4
	}
	return 0
}

// PhysToLogMap returns, for each physical pin p (0-indexed A1..A6), the
// list of logical pin indices it feeds. attr(name) looks up the
// whitespace-separated X_ORIG_PORT_Ap attribute ("A1".."A6"); an empty
// string means that physical pin feeds nothing.
func PhysToLogMap(attr func(name string) string) (mapping [6][]int) {
	for p := 0; p < 6; p++ {
		val := attr([]string{"A1", "A2", "A3", "A4", "A5", "A6"}[p])
		if val == "" {
			continue
		}
		for _, tok := range strings.Fields(val) {
			idx := logicalPinIndex(tok)
			if idx >= 0 {
				mapping[p] = append(mapping[p], idx)
			}
		}
	}
	return mapping
}

// logicalPinIndex extracts the 0-based index from a logical pin name like
// "I0".."I5".
func logicalPinIndex(tok string) int {
	if len(tok) < 2 || tok[0] != 'I' {
		return -1
	}
	n := 0
	for _, c := range tok[1:] {
		if c < '0' || c > '9' {
			return -1
		}
		n = n*10 + int(c-'0')
	}
	return n
}

// PermuteInit computes the output bit for physical position j across
// [loJ, hiJ) by OR-ing in the logical-address bits fed by each asserted
// physical input bit of j, then reading logicalInit at that address. This
// is the isolated pure function worth testing on its own:
// (phys_to_log_mapping, logical_init_bits) -> physical_init_bits.
//
// dst accumulates results; callers pass the same dst across two calls (one
// per fractured half) so a LUT5 in the lower half and a LUT6 sharing the
// upper half compose correctly.
func PermuteInit(dst uint64, physToLog [6][]int, logicalInit uint64, loJ, hiJ int) uint64 {
	for j := loJ; j < hiJ; j++ {
		addr := 0
		for p := 0; p < 6; p++ {
			if (j>>uint(p))&1 == 0 {
				continue
			}
			for _, logPin := range physToLog[p] {
				addr |= 1 << uint(logPin)
			}
		}
		if (logicalInit>>uint(addr))&1 != 0 {
			dst |= 1 << uint(j)
		}
	}
	return dst
}
