/*
 * xc7fasm - Non-fatal diagnostics for the emission core.
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

// Package warn reports conditions that the encoders recover from (a
// route-thru pip left unprocessed, a wide-mux wire with no resolvable
// driver) without aborting emission: the run continues and stays
// byte-reproducible.
package warn

import (
	"fmt"
	"log/slog"
)

// Warnf logs a recoverable condition tagged with the emitting module.
func Warnf(module, format string, a ...interface{}) {
	slog.Warn(module, "detail", fmt.Sprintf(format, a...))
}

// Fatalf logs an unrecoverable condition and terminates the process, for
// malformed input that violates an invariant the emission core depends on.
func Fatalf(module, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	slog.Error(module, "detail", msg)
	panic(module + ": " + msg)
}
