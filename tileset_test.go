package tmx

import (
	"image"
	"testing"
)

func TestTilesetGidRange(t *testing.T) {
	ts := &Tileset{FirstGID: 10, TileCount: 8}

	if ts.ContainsGid(9) || !ts.ContainsGid(10) || !ts.ContainsGid(17) || ts.ContainsGid(18) {
		t.Errorf("range check wrong for [10,18)")
	}

	local, ok := ts.GidToLocalID(13)
	if !ok || local != 3 {
		t.Errorf("GidToLocalID(13) = %d, %v, want 3, true", local, ok)
	}
	if _, ok := ts.GidToLocalID(18); ok {
		t.Error("GidToLocalID(18) reported in range")
	}
	if _, ok := ts.GidToLocalID(0); ok {
		t.Error("GidToLocalID(0) reported in range")
	}
}

func TestGetTileRect(t *testing.T) {
	ts := &Tileset{TileWidth: 16, TileHeight: 16, Columns: 4}

	tests := []struct {
		localID uint32
		want    image.Rectangle
	}{
		{0, image.Rect(0, 0, 16, 16)},
		{3, image.Rect(48, 0, 64, 16)},
		{5, image.Rect(16, 16, 32, 32)},
	}
	for _, tt := range tests {
		if got := ts.GetTileRect(tt.localID); got != tt.want {
			t.Errorf("GetTileRect(%d) = %v, want %v", tt.localID, got, tt.want)
		}
	}
}

func TestGetTileRectSpacingAndMargin(t *testing.T) {
	ts := &Tileset{TileWidth: 16, TileHeight: 16, Columns: 4, Spacing: 2, Margin: 1}
	// Tile 5 sits at row 1, column 1; each step advances 18 pixels past the
	// 1-pixel margin.
	want := image.Rect(19, 19, 35, 35)
	if got := ts.GetTileRect(5); got != want {
		t.Errorf("GetTileRect(5) = %v, want %v", got, want)
	}
}

func TestGetTileRectNoAtlas(t *testing.T) {
	ts := &Tileset{TileWidth: 16, TileHeight: 16}
	if got := ts.GetTileRect(0); got != (image.Rectangle{}) {
		t.Errorf("image-collection tileset GetTileRect = %v, want zero", got)
	}
}

func TestTileByID(t *testing.T) {
	ts := &Tileset{
		Tiles: []*TilesetTile{
			{ID: 2, Type: "spike"},
			{ID: 7, Type: "door"},
		},
	}
	if got := ts.TileByID(7); got == nil || got.Type != "door" {
		t.Errorf("TileByID(7) = %+v", got)
	}
	if got := ts.TileByID(3); got != nil {
		t.Errorf("TileByID(3) = %+v, want nil", got)
	}
}
