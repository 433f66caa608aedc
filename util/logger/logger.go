/*
 * xc7fasm - slog.Handler wrapper for the emitter's log file.
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

// Package logger wraps slog.Handler with a mutex-guarded writer and a
// stderr mirror: every record goes to the run's log file, and warnings
// and above (such as unprocessed route-thrus) are also copied to the
// operator's terminal. Info lines reach the terminal only when the
// handler is built to mirror every record.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Handler formats records as "<time> <LEVEL>: <message> <attrs...>" and
// writes them to a log file, optionally mirroring to stderr.
type Handler struct {
	out        io.Writer
	inner      slog.Handler
	mu         *sync.Mutex
	mirrorErrs bool
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{out: h.out, inner: h.inner.WithAttrs(attrs), mu: h.mu, mirrorErrs: h.mirrorErrs}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{out: h.out, inner: h.inner.WithGroup(name), mu: h.mu, mirrorErrs: h.mirrorErrs}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	fields := []string{r.Time.Format("2006/01/02 15:04:05"), r.Level.String() + ":", r.Message}
	if r.NumAttrs() != 0 {
		r.Attrs(func(a slog.Attr) bool {
			fields = append(fields, a.Value.String())
			return true
		})
	}
	line := []byte(strings.Join(fields, " ") + "\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if h.out != nil {
		_, err = h.out.Write(line)
	}
	if h.mirrorErrs || r.Level >= slog.LevelWarn {
		_, err = os.Stderr.Write(line)
	}
	return err
}

// NewHandler wraps file in a Handler using opts (nil for defaults).
// mirrorErrs additionally echoes every record, not just warnings and
// above, to stderr.
func NewHandler(file io.Writer, opts *slog.HandlerOptions, mirrorErrs bool) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &Handler{
		out:        file,
		inner:      slog.NewTextHandler(file, opts),
		mu:         &sync.Mutex{},
		mirrorErrs: mirrorErrs,
	}
}

// Open creates (or truncates) path and installs a Handler writing to it
// as the default slog logger, returning the file so the caller can close
// it once the run completes. An empty path logs to stderr only.
func Open(path string, verbose bool) (*os.File, error) {
	if path == "" {
		slog.SetDefault(slog.New(NewHandler(nil, nil, true)))
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(NewHandler(f, nil, verbose)))
	return f, nil
}
