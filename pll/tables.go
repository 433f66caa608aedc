/*
 * xc7fasm - PLL/MMCM static lookup tables.
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

package pll

// pllLockTable and mmcmLockTable hold the LKTABLE[39:0] value written for
// each multiplier, indexed by CLKFBOUT_MULT-1 (range [0,63]); pllFilterTable
// holds the PLL's FILTREG1_RESERVED value the same way. init fills every
// entry with one shared default, so every multiplier gets the same value;
// the tables carry no per-multiplier values.
var (
	pllLockTable   [64]uint64
	mmcmLockTable  [64]uint64
	pllFilterTable [64]uint16
)

// mmcmFilterTable maps MMCM BANDWIDTH settings to a FILTREG1_RESERVED
// table indexed the same way as the lock tables. init fills every table
// with the same default, so the BANDWIDTH setting does not change the
// value written.
var mmcmFilterTable = map[string][64]uint16{
	"OPTIMIZED": {},
	"HIGH":      {},
	"LOW":       {},
	"LOW_SS":    {},
}

func init() {
	const defaultLock = uint64(0x0E08108A0) & (1<<40 - 1)
	const defaultFilter = 0x9

	for i := range pllLockTable {
		pllLockTable[i] = defaultLock
		mmcmLockTable[i] = defaultLock
		pllFilterTable[i] = defaultFilter
	}
	for band := range mmcmFilterTable {
		var t [64]uint16
		for i := range t {
			t[i] = defaultFilter
		}
		mmcmFilterTable[band] = t
	}
}
