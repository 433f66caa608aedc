/*
 * xc7fasm - BRAM INIT/INITP bitstring parameter parsing.
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

package bram

import (
	"fmt"
	"strconv"
	"strings"
)

var hexMap = "0123456789ABCDEF"

// ParseBits parses a Verilog-style sized bitstring parameter ("256'h...",
// "64'b...") into a most-significant-bit-first []bool of exactly the
// declared width. hexMap's digit-to-nibble lookup runs the usual
// hex-formatting table in reverse: hex digit in, 4 bits out.
func ParseBits(literal string) ([]bool, error) {
	idx := strings.IndexByte(literal, '\'')
	if idx < 0 {
		return nil, fmt.Errorf("bram: not a sized bitstring literal: %q", literal)
	}
	width, err := strconv.Atoi(strings.TrimSpace(literal[:idx]))
	if err != nil {
		return nil, fmt.Errorf("bram: bad width in %q: %w", literal, err)
	}
	if idx+1 >= len(literal) {
		return nil, fmt.Errorf("bram: missing base/digits in %q", literal)
	}
	base := literal[idx+1]
	digits := literal[idx+2:]

	var bits []bool
	switch base {
	case 'b', 'B':
		bits = make([]bool, 0, len(digits))
		for _, c := range digits {
			if c != '0' && c != '1' {
				continue
			}
			bits = append(bits, c == '1')
		}
	case 'h', 'H':
		bits = make([]bool, 0, len(digits)*4)
		for _, c := range digits {
			nibble := hexNibble(byte(c))
			if nibble < 0 {
				continue
			}
			for shift := 3; shift >= 0; shift-- {
				bits = append(bits, (nibble>>uint(shift))&1 != 0)
			}
		}
	default:
		return nil, fmt.Errorf("bram: unsupported base %q in %q", base, literal)
	}

	if len(bits) > width {
		bits = bits[len(bits)-width:]
	}
	for len(bits) < width {
		bits = append([]bool{false}, bits...)
	}
	return bits, nil
}

func hexNibble(c byte) int {
	idx := strings.IndexByte(hexMap, upper(c))
	if idx < 0 {
		return -1
	}
	return idx
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
