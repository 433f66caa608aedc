/*
 * xc7fasm - Emitter options file parser.
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

// Package config loads the emitter's small options file: '#' comments,
// one "key value[,value...]" directive per line. Keys are either plain
// options consumed directly into Options, or registered quirks handled by
// per-device-family extension points (RegisterQuirk), following a
// registration-at-init-time shape.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Options holds the directives a run of the emitter reads before it starts.
type Options struct {
	LogFile       string
	WarnRouteThru bool
	Quirks        map[string][]string
}

type quirkFunc func(values []string) error

var quirks = map[string]quirkFunc{}

// RegisterQuirk registers a per-device-family extension point, called from
// an init function.
func RegisterQuirk(name string, fn func(values []string) error) {
	quirks[strings.ToUpper(name)] = fn
}

var lineNumber int

// Load reads and applies a configuration file, returning the accumulated
// plain options. Registered quirks are invoked as their lines are parsed.
func Load(name string) (*Options, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	opts := &Options{Quirks: map[string][]string{}}
	lineNumber = 0
	reader := bufio.NewReader(file)
	for {
		raw, err := reader.ReadString('\n')
		lineNumber++
		if len(raw) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if perr := parseLine(raw, opts); perr != nil {
			return nil, perr
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
	}
	return opts, nil
}

func parseLine(raw string, opts *Options) error {
	line := stripComment(raw)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	key := strings.ToUpper(fields[0])
	rest := fields[1:]

	switch key {
	case "LOGFILE":
		if len(rest) != 1 {
			return fmt.Errorf("config: LOGFILE wants exactly one value, line %d", lineNumber)
		}
		opts.LogFile = rest[0]
	case "WARNROUTETHRU":
		opts.WarnRouteThru = true
	default:
		fn, ok := quirks[key]
		if !ok {
			return fmt.Errorf("config: unknown directive %q, line %d", fields[0], lineNumber)
		}
		values := splitCommaValues(rest)
		opts.Quirks[key] = values
		return fn(values)
	}
	return nil
}

func stripComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	return line
}

func splitCommaValues(fields []string) []string {
	joined := strings.Join(fields, " ")
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimFunc(p, unicode.IsSpace)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
