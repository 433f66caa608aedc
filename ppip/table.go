/*
 * xc7fasm - Pseudo-PIP table.
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

// Package ppip holds the static pseudo-PIP table: a tile type plus a
// destination/source wire pair maps to the ordered list of feature lines a
// pseudo-PIP expands to. The table is tile-type generic; tile-position
// fix-ups (SING top/bottom rewrites) are applied by callers, never baked in
// here, so the same key can serve many tile instances.
package ppip

import "fmt"

// Key identifies a pseudo-PIP by tile type and wire names. Order
// sensitive: dst and src are distinct fields.
type Key struct {
	TileType string
	Dst      string
	Src      string
}

// Table maps a Key to an ordered list of feature suffixes. An entry with
// an empty slice is valid: the PIP is known and legal but emits nothing.
type Table map[Key][]string

// Lookup reports the suffix list and whether the key is present at all
// (a present-but-empty entry returns ok=true, suffixes=nil).
func (t Table) Lookup(k Key) (suffixes []string, ok bool) {
	s, ok := t[k]
	return s, ok
}

// Build constructs the static pseudo-PIP table once per emission run.
func Build() Table {
	t := Table{}

	// IOI3 OLOGIC/ILOGIC data-path pseudo-PIPs.
	for _, half := range []string{"OLOGIC0", "OLOGIC1"} {
		t[Key{"LIOI3", "LIOI_" + half + "_OQ", "IOI_" + half + "_D1"}] = []string{
			half + "_Y" + yFor(half) + ".OMUX.D1",
			half + "_Y" + yFor(half) + ".OQUSED",
			half + "_Y" + yFor(half) + ".OSERDES.DATA_RATE_TQ.BUF",
		}
	}
	for _, base := range []string{"LIOI3", "RIOI3"} {
		t[Key{base, "IOI_ILOGIC0_D", "IOI_ILOGIC0_IOB_DIFFI"}] = []string{"ILOGIC_Y0.ZINV_D"}
		t[Key{base, "IOI_ILOGIC1_D", "IOI_ILOGIC1_IOB_DIFFI"}] = []string{"ILOGIC_Y1.ZINV_D"}
	}

	// RIOI variants mirror LIOI3.
	for _, half := range []string{"OLOGIC0", "OLOGIC1"} {
		t[Key{"RIOI3", "RIOI_" + half + "_OQ", "IOI_" + half + "_D1"}] = []string{
			half + "_Y" + yFor(half) + ".OMUX.D1",
			half + "_Y" + yFor(half) + ".OQUSED",
			half + "_Y" + yFor(half) + ".OSERDES.DATA_RATE_TQ.BUF",
		}
	}

	// IOB33/RIOB18 bidirectional pad/diff pseudo-paths: known legal,
	// emit nothing.
	for _, tt := range []string{"IOB33", "IOB33_Y0", "IOB33_Y1", "IOB33M", "IOB33S"} {
		t[Key{tt, "IOB_PADOUT", "IOB_O"}] = nil
		t[Key{tt, "IOB_DIFFI_IN", "IOB_PADOUT"}] = nil
	}
	for _, tt := range []string{"RIOB18", "RIOB18_PAIR"} {
		t[Key{tt, "IOB_PADOUT", "IOB_O"}] = nil
		t[Key{tt, "IOB_DIFFI_IN", "IOB_PADOUT"}] = nil
	}

	// CLK_HROW BUFH mux activations, TOP/BOT x L/R x 0..11.
	for _, half := range []string{"TOP", "BOT"} {
		for _, side := range []string{"L", "R"} {
			for i := 0; i < 12; i++ {
				dst := fmt.Sprintf("CLK_HROW_CK_HCLK_%s_%s%d", half, side, i)
				for j := 0; j < 12; j++ {
					src := fmt.Sprintf("CLK_HROW_CK_IN_%s%d", side, j)
					suffix := fmt.Sprintf("BUFHCE_%s_%s%d.IN_USE", half, side, i)
					t[Key{"CLK_HROW_TOP_R", dst, src}] = []string{suffix}
					t[Key{"CLK_HROW_BOT_R", dst, src}] = []string{suffix}
				}
			}
		}
	}

	// CLK_BUFG BUFGCTRL I0/I1 mux activations, 0..15, asserting the
	// inverter ZINV bit on the *opposite* input.
	for i := 0; i < 16; i++ {
		dst0 := fmt.Sprintf("CLK_BUFG_BUFGCTRL%d_I0", i)
		dst1 := fmt.Sprintf("CLK_BUFG_BUFGCTRL%d_I1", i)
		for j := 0; j < 16; j++ {
			src := fmt.Sprintf("CLK_BUFG_CK_MUXED_HROW%d", j)
			t[Key{"CLK_BUFG", dst0, src}] = []string{
				fmt.Sprintf("BUFGCTRL.BUFGCTRL_X0Y%d.IN_USE", i),
				fmt.Sprintf("BUFGCTRL.BUFGCTRL_X0Y%d.ZINV_S1", i),
			}
			t[Key{"CLK_BUFG", dst1, src}] = []string{
				fmt.Sprintf("BUFGCTRL.BUFGCTRL_X0Y%d.IN_USE", i),
				fmt.Sprintf("BUFGCTRL.BUFGCTRL_X0Y%d.ZINV_S0", i),
			}
		}
	}

	// HCLK_IOI BUFR bypass.
	for i := 0; i < 4; i++ {
		dst := fmt.Sprintf("HCLK_IOI_BUFR_CK_I%d", i)
		src := fmt.Sprintf("HCLK_IOI_CK_BUFR_BYPASS%d", i)
		t[Key{"HCLK_IOI", dst, src}] = []string{fmt.Sprintf("BUFR.BUFR_X0Y%d.BYPASS", i)}
	}

	return t
}

func yFor(half string) string {
	if half == "OLOGIC1" {
		return "1"
	}
	return "0"
}
