package memdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rcornwell/xc7fasm/pnr"
)

func TestLoadRoundTripsTiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "design.json")
	doc := `{"Tiles":{"0":{"Index":0,"Type":"CLBLL_L","Name":"CLBLL_L_X2Y10"}}}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	db, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tile := db.Tile(pnr.TileIndex(0))
	if tile == nil || tile.Name != "CLBLL_L_X2Y10" {
		t.Errorf("expected the tile to round-trip, got %+v", tile)
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/design.json"); err == nil {
		t.Error("expected an error for a missing input file")
	}
}
