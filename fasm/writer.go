/*
 * xc7fasm - FASM feature-line emission context.
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

// Package fasm implements the hierarchical prefix stack and line writer
// shared by every tile/cell encoder.
package fasm

import (
	"fmt"
	"io"
	"strings"
)

// Writer emits FASM feature lines through a hierarchical dotted prefix.
// It is single-threaded; callers serialize their own access.
type Writer struct {
	out       io.Writer
	prefix    []string
	lastBlank bool
	lines     int
}

// New returns a Writer with an empty prefix stack.
func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Push appends a component to the prefix stack.
func (w *Writer) Push(s string) {
	w.prefix = append(w.prefix, s)
}

// Pop removes the most recently pushed component.
func (w *Writer) Pop() {
	w.PopN(1)
}

// PopN removes the n most recently pushed components.
// Popping more than the stack holds is a caller defect; it clamps instead
// of panicking so an unbalanced encoder fails on its test assertions
// rather than crashing the whole run.
func (w *Writer) PopN(n int) {
	if n > len(w.prefix) {
		n = len(w.prefix)
	}
	w.prefix = w.prefix[:len(w.prefix)-n]
}

// Depth reports how many components are currently on the prefix stack.
// Used by callers/tests to assert the stack returns to its entry depth.
func (w *Writer) Depth() int {
	return len(w.prefix)
}

// Scope pushes s and returns a closer that pops it: a scoped acquisition
// that guarantees the pop runs on every exit path. Callers write
// `defer w.Scope("TILE")()`.
func (w *Writer) Scope(s string) func() {
	w.Push(s)
	return w.Pop
}

// Feature joins the current prefix stack and name with ".".
func (w *Writer) Feature(name string) string {
	if len(w.prefix) == 0 {
		return name
	}
	return strings.Join(w.prefix, ".") + "." + name
}

// WriteBit emits a feature line iff cond is true.
func (w *Writer) WriteBit(name string, cond bool) {
	if !cond {
		return
	}
	w.writeLine(w.Feature(name))
}

// WriteLine emits a fully-formed feature line (caller already applied the
// prefix, e.g. a pseudo-PIP suffix list or routing pip line).
func (w *Writer) WriteLine(line string) {
	w.writeLine(line)
}

// WriteVector emits a Verilog-style sized binary literal, bits[0] is the
// most significant bit.
func (w *Writer) WriteVector(name string, bits []bool, invert bool) {
	var sb strings.Builder
	sb.WriteString(w.Feature(name))
	sb.WriteString(" = ")
	sb.WriteString(fmt.Sprintf("%d'b", len(bits)))
	for _, b := range bits {
		if b != invert {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	w.writeLine(sb.String())
}

// WriteIntVector builds the bit slice for an integer value (MSB first,
// width wide) and writes it as a vector literal.
func (w *Writer) WriteIntVector(name string, value uint64, width int, invert bool) {
	bits := make([]bool, width)
	for i := 0; i < width; i++ {
		shift := width - 1 - i
		bits[i] = (value>>uint(shift))&1 != 0
	}
	w.WriteVector(name, bits, invert)
}

// Blank emits a single blank-line separator. Consecutive calls collapse
// to one line.
func (w *Writer) Blank() {
	if w.lastBlank || w.lines == 0 {
		return
	}
	fmt.Fprintln(w.out)
	w.lastBlank = true
}

func (w *Writer) writeLine(line string) {
	fmt.Fprintln(w.out, line)
	w.lastBlank = false
	w.lines++
}

// ParseVector is the inverse of WriteVector's literal body ("W'bBBBB..."),
// used by tests asserting the write/parse round trip.
func ParseVector(literal string) ([]bool, error) {
	idx := strings.IndexByte(literal, 'b')
	if idx < 0 {
		return nil, fmt.Errorf("not a binary vector literal: %q", literal)
	}
	body := literal[idx+1:]
	bits := make([]bool, len(body))
	for i, c := range body {
		switch c {
		case '1':
			bits[i] = true
		case '0':
			bits[i] = false
		default:
			return nil, fmt.Errorf("invalid bit %q in literal %q", c, literal)
		}
	}
	return bits, nil
}
