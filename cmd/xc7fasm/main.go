/*
 * xc7fasm - Main process.
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

package main

import (
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/rcornwell/xc7fasm/config"
	"github.com/rcornwell/xc7fasm/emit"
	"github.com/rcornwell/xc7fasm/pnr/memdb"
	"github.com/rcornwell/xc7fasm/util/logger"
)

func main() {
	optConfig := getopt.StringLong("config", 'c', "xc7fasm.cfg", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optInput := getopt.StringLong("input", 'i', "", "Bound design JSON file")
	optOutput := getopt.StringLong("output", 'o', "out.fasm", "Output FASM file")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	opts := &config.Options{}
	if _, err := os.Stat(*optConfig); err == nil {
		loaded, err := config.Load(*optConfig)
		if err != nil {
			slog.Error("loading configuration", "file", *optConfig, "error", err)
			os.Exit(1)
		}
		opts = loaded
	}

	logFile := *optLogFile
	if logFile == "" {
		logFile = opts.LogFile
	}
	logf, err := logger.Open(logFile, false)
	if err != nil {
		slog.Error("opening log file", "file", logFile, "error", err)
		os.Exit(1)
	}
	if logf != nil {
		defer logf.Close()
	}

	slog.Info("xc7fasm started")

	if *optInput == "" {
		slog.Error("no bound design input specified (-i/--input)")
		os.Exit(1)
	}

	db, err := memdb.Load(*optInput)
	if err != nil {
		slog.Error("loading bound design", "error", err)
		os.Exit(1)
	}

	if err := emit.Design(db, *optOutput); err != nil {
		slog.Error("emission failed", "error", err)
		os.Exit(1)
	}

	slog.Info("xc7fasm finished", "output", *optOutput)
}
