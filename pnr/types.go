/*
 * xc7fasm - Read-only physical-design model.
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

// Package pnr holds the read-only types the place-and-route database and
// bound design expose to the emission core. The PNR database itself is an
// external collaborator; this package models
// just enough of its shape for the encoders to compile and be tested
// against a fake (pnr/memdb).
package pnr

// TileIndex identifies a tile within the device grid.
type TileIndex int

// WireIndex identifies a wire within its owning tile.
type WireIndex int

// PipIndex identifies a pip within its owning tile.
type PipIndex int

// BelID identifies a site instance within its owning tile.
type BelID struct {
	Tile  TileIndex
	Index int
}

// Wire intent sentinels.
const (
	IntentNormal    = ""
	IntentPseudoGND = "PSEUDO_GND"
	IntentPseudoVCC = "PSEUDO_VCC"
)

// Pip flags.
const (
	FlagTileRouting uint32 = 1 << iota
)

// Tile describes one physical tile instance.
type Tile struct {
	Index    TileIndex
	Type     string // e.g. "CLBLM_L", "BRAM_R", "LIOI3"
	Name     string // e.g. "CLBLM_L_X10Y100"
	GridX    int
	GridY    int
	Wires    []Wire
	Bels     []BelID
	PipList  []Pip
}

// Wire is (tile, index) plus its name/site/intent.
type Wire struct {
	Tile   TileIndex
	Index  WireIndex
	Name   string
	Site   string
	Intent string
}

// Pip is a (tile, index) programmable interconnect point.
type Pip struct {
	Tile      TileIndex
	Index     PipIndex
	SrcWire   WireIndex
	DstWire   WireIndex
	Flags     uint32
	ExtraData int // route-thru marker (1), or bel-pin id for site pips
	Bel       BelID
	FromBel   bool // true if this pip has site-pip provenance (has a Bel)
}

// CellInfo is a placed cell.
type CellInfo struct {
	Name       string
	OrigType   string // X_ORIG_TYPE, e.g. "LUT6", "FDRE", "RAMB36E1"
	Bel        BelID
	Params     map[string]string
	Attrs      map[string]string
	Ports      map[string]*NetInfo // port name -> connected net, nil if unconnected
}

// Param returns a cell parameter, defaulting to "" when absent.
func (c *CellInfo) Param(name string) string {
	if c.Params == nil {
		return ""
	}
	return c.Params[name]
}

// Attr returns a cell attribute, defaulting to "" when absent.
func (c *CellInfo) Attr(name string) string {
	if c.Attrs == nil {
		return ""
	}
	return c.Attrs[name]
}

// Port returns the net connected to a port, or nil if unconnected.
func (c *CellInfo) Port(name string) *NetInfo {
	if c.Ports == nil {
		return nil
	}
	return c.Ports[name]
}

// UsedWire annotates a wire used by a net with the pip (if any) that
// drove onto it.
type UsedWire struct {
	Tile    TileIndex
	Index   WireIndex
	DrivenByPip bool
	Pip     PipIndex
}

// NetInfo is a routed net.
type NetInfo struct {
	ID        int
	Name      string
	IsGND     bool // packer's constant-0 net
	IsVCC     bool // packer's constant-1 net
	Driver    string
	Users     []string
	UsedWires []UsedWire
}

// TileStatus holds per-tile logic/BRAM sub-slot cell placement, indexed by
// a packed bit encoding (half<<6)|(beletter<<4)|subkind.
type TileStatus struct {
	Tile       TileIndex
	LogicCells map[int]*CellInfo // lts->cells[index]
	BRAMCells  map[int]*CellInfo // bts->cells[index]
}

// PackIndex builds the (half<<6)|(beletter<<4)|subkind packed key.
func PackIndex(half, beletter, subkind int) int {
	return (half << 6) | (beletter << 4) | subkind
}

// Database is the subset of the PNR layer the emission core reads from.
type Database interface {
	HclkForIoi(t TileIndex) TileIndex
	HclkForIob(b BelID) TileIndex
	SiteLocInTile(b BelID) (x, y int)
	BelSite(b BelID) string
	PipsUphill(w WireIndex, tile TileIndex) []PipIndex
	BoundPipNet(tile TileIndex, p PipIndex) *NetInfo
	BoundWireNet(tile TileIndex, w WireIndex) *NetInfo
	WireIntent(tile TileIndex, w WireIndex) string
	IsLogicTile(b BelID) bool
	TilesAndTypes() []Tile
	BelByName(name string) (BelID, bool)

	// Accessors guaranteeing deterministic, sorted iteration so repeated
	// runs over the same design emit byte-identical output.
	SortedCells() []*CellInfo
	SortedNets() []*NetInfo
	Tile(t TileIndex) *Tile
	Wire(tile TileIndex, w WireIndex) *Wire
	Pip(tile TileIndex, p PipIndex) *Pip
	TileStatusFor(t TileIndex) *TileStatus
}
