/*
 * xc7fasm - Routing emitter.
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

// Package router walks routed nets and emits one feature (or pseudo-PIP
// feature set) per used PIP.
package router

import (
	"strings"

	"github.com/rcornwell/xc7fasm/fasm"
	"github.com/rcornwell/xc7fasm/pnr"
	"github.com/rcornwell/xc7fasm/ppip"
	"github.com/rcornwell/xc7fasm/util/warn"
)

// PipsByTile records every PIP observed used, grouped by owning tile, in
// walk order, for callers that need a second pass over the same routing.
type PipsByTile map[pnr.TileIndex][]pnr.PipIndex

func isSingIOITile(tileType string) bool {
	return strings.HasPrefix(tileType, "RIOI3_SING") ||
		strings.HasPrefix(tileType, "LIOI3_SING") ||
		strings.HasPrefix(tileType, "RIOI_SING") ||
		strings.HasPrefix(tileType, "LIOI_SING") ||
		strings.HasPrefix(tileType, "RIOI_SING") ||
		strings.Contains(tileType, "IOI_SING")
}

func isTopHalfSing(tileType string) bool {
	return strings.HasPrefix(tileType, "RIOI3_SING") ||
		strings.HasPrefix(tileType, "LIOI3_SING") ||
		strings.HasPrefix(tileType, "RIOI_SING")
}

// Emit walks every net (sorted by ID) and every used wire (sorted by wire
// index), emitting the routing feature for each wire driven by a
// TILE_ROUTING pip. It returns pipsByTile for later encoders.
func Emit(w *fasm.Writer, db pnr.Database, tbl ppip.Table, nets []*pnr.NetInfo) PipsByTile {
	pipsByTile := PipsByTile{}

	for _, net := range nets {
		usedWires := append([]pnr.UsedWire{}, net.UsedWires...)
		sortUsedWires(usedWires)

		for _, uw := range usedWires {
			if !uw.DrivenByPip {
				continue
			}
			tile := db.Tile(uw.Tile)
			if tile == nil {
				continue
			}
			pip := db.Pip(uw.Tile, uw.Pip)
			if pip == nil {
				continue
			}

			pipsByTile[uw.Tile] = append(pipsByTile[uw.Tile], uw.Pip)

			dstWire := db.Wire(uw.Tile, pip.DstWire)
			if dstWire == nil {
				continue
			}
			if dstWire.Intent == pnr.IntentPseudoGND || dstWire.Intent == pnr.IntentPseudoVCC {
				continue
			}
			if pip.Flags&pnr.FlagTileRouting == 0 {
				continue
			}

			srcWire := db.Wire(uw.Tile, pip.SrcWire)
			if srcWire == nil {
				continue
			}

			emitOne(w, db, tbl, tile, pip, dstWire, srcWire)
		}
	}
	return pipsByTile
}

func emitOne(w *fasm.Writer, db pnr.Database, tbl ppip.Table, tile *pnr.Tile, pip *pnr.Pip, dstWire, srcWire *pnr.Wire) {
	key := ppip.Key{TileType: tile.Type, Dst: dstWire.Name, Src: srcWire.Name}
	if suffixes, ok := tbl.Lookup(key); ok {
		topHalf := isTopHalfSing(tile.Type) && int(pip.Tile) < int(db.HclkForIoi(pip.Tile))
		for _, suffix := range suffixes {
			if topHalf {
				suffix = strings.ReplaceAll(suffix, "Y0", "Y1")
			}
			w.WriteLine(tile.Name + "." + suffix)
		}
		return
	}

	// Miss: natural tile.dst.src line, with tile-type/position fix-ups.
	if strings.HasPrefix(tile.Type, "DSP_L") || strings.HasPrefix(tile.Type, "DSP_R") {
		return
	}

	dst := dstWire.Name
	src := srcWire.Name

	if isSingIOITile(tile.Type) {
		src = strings.ReplaceAll(src, "_SING_", "_")
		if isTopHalfSing(tile.Type) && int(pip.Tile) < int(db.HclkForIoi(pip.Tile)) {
			dst = strings.ReplaceAll(dst, "_0", "_1")
			dst = strings.ReplaceAll(dst, "OLOGIC0", "OLOGIC1")
			if strings.Contains(src, "OLOGIC0") {
				src = strings.ReplaceAll(src, "OLOGIC0", "OLOGIC1")
				src = strings.ReplaceAll(src, "_0", "_1")
			}
		}
	}

	if pip.ExtraData == 1 {
		warn.Warnf("router", "unprocessed route-thru at tile %s pip %d", tile.Name, pip.Index)
	}

	// Narrow IOI override suppresses OCLKB...IOI_OCLKM_... pseudo-PIPs entirely.
	if strings.HasPrefix(src, "OCLKB") && strings.Contains(dst, "IOI_OCLKM_") {
		return
	}

	if strings.HasPrefix(dst, "IOI_OCLK_") {
		w.WriteLine(tile.Name + "." + dst + "." + src)
		mDst := strings.Replace(dst, "OCLK", "OCLKM", 1)
		if mWire, ok := findWireByName(db, tile.Index, mDst); ok {
			if db.BoundWireNet(tile.Index, mWire) == nil {
				w.WriteLine(tile.Name + "." + mDst + "." + src)
			}
		}
		return
	}

	w.WriteLine(tile.Name + "." + dst + "." + src)
}

func findWireByName(db pnr.Database, tile pnr.TileIndex, name string) (pnr.WireIndex, bool) {
	t := db.Tile(tile)
	if t == nil {
		return 0, false
	}
	for _, wire := range t.Wires {
		if wire.Name == name {
			return wire.Index, true
		}
	}
	return 0, false
}

func sortUsedWires(uw []pnr.UsedWire) {
	for i := 1; i < len(uw); i++ {
		for j := i; j > 0 && uw[j].Index < uw[j-1].Index; j-- {
			uw[j], uw[j-1] = uw[j-1], uw[j]
		}
	}
}
