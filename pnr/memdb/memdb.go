/*
 * xc7fasm - In-memory Database fake for tests.
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

// Package memdb is a minimal in-memory pnr.Database. Encoder tests
// hand-populate a DB directly; the CLI driver populates one from a JSON
// bound-design document via Load, since constructing the database from
// an upstream place-and-route tool's native format is outside this
// emission core's scope.
package memdb

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/rcornwell/xc7fasm/pnr"
)

// DB is a hand-populated pnr.Database.
type DB struct {
	Tiles      map[pnr.TileIndex]*pnr.Tile
	Cells      []*pnr.CellInfo
	Nets       []*pnr.NetInfo
	Statuses   map[pnr.TileIndex]*pnr.TileStatus
	HclkIoi    map[pnr.TileIndex]pnr.TileIndex
	HclkIob    map[pnr.BelID]pnr.TileIndex
	SiteLoc    map[pnr.BelID][2]int
	SitePlace  map[pnr.BelID]string
	Uphill     map[pnr.TileIndex]map[pnr.WireIndex][]pnr.PipIndex
	LogicBel   map[pnr.BelID]bool
	BelNames   map[string]pnr.BelID
}

// New returns an empty DB ready for population by a test.
func New() *DB {
	return &DB{
		Tiles:     map[pnr.TileIndex]*pnr.Tile{},
		Statuses:  map[pnr.TileIndex]*pnr.TileStatus{},
		HclkIoi:   map[pnr.TileIndex]pnr.TileIndex{},
		HclkIob:   map[pnr.BelID]pnr.TileIndex{},
		SiteLoc:   map[pnr.BelID][2]int{},
		SitePlace: map[pnr.BelID]string{},
		Uphill:    map[pnr.TileIndex]map[pnr.WireIndex][]pnr.PipIndex{},
		LogicBel:  map[pnr.BelID]bool{},
		BelNames:  map[string]pnr.BelID{},
	}
}

func (d *DB) HclkForIoi(t pnr.TileIndex) pnr.TileIndex { return d.HclkIoi[t] }
func (d *DB) HclkForIob(b pnr.BelID) pnr.TileIndex     { return d.HclkIob[b] }

func (d *DB) SiteLocInTile(b pnr.BelID) (int, int) {
	xy := d.SiteLoc[b]
	return xy[0], xy[1]
}

func (d *DB) BelSite(b pnr.BelID) string { return d.SitePlace[b] }

func (d *DB) PipsUphill(w pnr.WireIndex, tile pnr.TileIndex) []pnr.PipIndex {
	return d.Uphill[tile][w]
}

func (d *DB) BoundPipNet(tile pnr.TileIndex, p pnr.PipIndex) *pnr.NetInfo {
	t := d.Tiles[tile]
	if t == nil || int(p) >= len(t.PipList) {
		return nil
	}
	return d.BoundWireNet(tile, t.PipList[p].DstWire)
}

func (d *DB) BoundWireNet(tile pnr.TileIndex, w pnr.WireIndex) *pnr.NetInfo {
	for _, n := range d.Nets {
		for _, uw := range n.UsedWires {
			if uw.Tile == tile && uw.Index == w {
				return n
			}
		}
	}
	return nil
}

func (d *DB) WireIntent(tile pnr.TileIndex, w pnr.WireIndex) string {
	t := d.Tiles[tile]
	if t == nil || int(w) >= len(t.Wires) {
		return pnr.IntentNormal
	}
	return t.Wires[w].Intent
}

func (d *DB) IsLogicTile(b pnr.BelID) bool { return d.LogicBel[b] }

func (d *DB) TilesAndTypes() []pnr.Tile {
	out := make([]pnr.Tile, 0, len(d.Tiles))
	for _, t := range d.Tiles {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

func (d *DB) BelByName(name string) (pnr.BelID, bool) {
	b, ok := d.BelNames[name]
	return b, ok
}

func (d *DB) SortedCells() []*pnr.CellInfo {
	out := append([]*pnr.CellInfo{}, d.Cells...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (d *DB) SortedNets() []*pnr.NetInfo {
	out := append([]*pnr.NetInfo{}, d.Nets...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (d *DB) Tile(t pnr.TileIndex) *pnr.Tile { return d.Tiles[t] }

func (d *DB) Wire(tile pnr.TileIndex, w pnr.WireIndex) *pnr.Wire {
	t := d.Tiles[tile]
	if t == nil || int(w) >= len(t.Wires) {
		return nil
	}
	return &t.Wires[w]
}

func (d *DB) Pip(tile pnr.TileIndex, p pnr.PipIndex) *pnr.Pip {
	t := d.Tiles[tile]
	if t == nil || int(p) >= len(t.PipList) {
		return nil
	}
	return &t.PipList[p]
}

func (d *DB) TileStatusFor(t pnr.TileIndex) *pnr.TileStatus { return d.Statuses[t] }

var _ pnr.Database = (*DB)(nil)

// Load reads a JSON-encoded bound design into a DB. The document shape
// mirrors DB's exported fields directly; it is this module's own
// interchange format, not a vendor wire format.
func Load(path string) (*DB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("memdb: reading %q: %w", path, err)
	}
	db := New()
	if err := json.Unmarshal(data, db); err != nil {
		return nil, fmt.Errorf("memdb: parsing %q: %w", path, err)
	}
	return db, nil
}
