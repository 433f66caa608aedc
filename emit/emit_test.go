package emit

import (
	"os"
	"strings"
	"testing"

	"github.com/rcornwell/xc7fasm/pnr"
	"github.com/rcornwell/xc7fasm/pnr/memdb"
)

func TestDesignEndToEnd(t *testing.T) {
	db := memdb.New()
	db.Tiles[0] = &pnr.Tile{Index: 0, Type: "CLBLL_L", Name: "CLBLL_L_X2Y10"}
	lut := &pnr.CellInfo{
		Name: "mylut", OrigType: "LUT2", Bel: pnr.BelID{Tile: 0, Index: 0},
		Params: map[string]string{"INIT": "4'b1000"},
	}
	db.Cells = []*pnr.CellInfo{lut}
	db.Statuses[0] = &pnr.TileStatus{
		Tile: 0,
		LogicCells: map[int]*pnr.CellInfo{
			pnr.PackIndex(0, 0, 0): lut,
		},
	}

	out, err := os.CreateTemp(t.TempDir(), "design-*.fasm")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	path := out.Name()
	out.Close()

	if err := Design(db, path); err != nil {
		t.Fatalf("Design returned an error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "CLBLL_L_X2Y10") {
		t.Errorf("expected the CLBLL tile to appear in the output, got:\n%s", data)
	}
}

func TestDesignRejectsUnopenableOutput(t *testing.T) {
	db := memdb.New()
	if err := Design(db, "/nonexistent-dir/out.fasm"); err == nil {
		t.Error("expected an error when the output path cannot be created")
	}
}
