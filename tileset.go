package tmx

import "image"

// Tileset describes one tile atlas and the contiguous GID range
// [FirstGID, FirstGID+TileCount) it owns within a map.
type Tileset struct {
	FirstGID   uint32
	Source     string // resolved path of the external .tsx, if any
	Name       string
	TileWidth  int
	TileHeight int
	Spacing    int
	Margin     int
	TileCount  int
	Columns    int

	OffsetX int
	OffsetY int

	Image      *Image
	Terrains   []*Terrain
	Tiles      []*TilesetTile
	Properties Properties
}

// ContainsGid reports whether gid falls inside the tileset's GID range.
func (ts *Tileset) ContainsGid(gid uint32) bool {
	return gid >= ts.FirstGID && gid < ts.FirstGID+uint32(ts.TileCount)
}

// GidToLocalID converts a global tile ID to this tileset's local tile ID.
// The second return value is false when gid lies outside the tileset's
// range.
func (ts *Tileset) GidToLocalID(gid uint32) (uint32, bool) {
	if !ts.ContainsGid(gid) {
		return 0, false
	}
	return gid - ts.FirstGID, true
}

// GetTileRect returns the pixel rectangle of the tile with the given local
// ID inside the tileset's atlas image. The zero rectangle is returned for
// image-collection tilesets, which have no atlas.
func (ts *Tileset) GetTileRect(localID uint32) image.Rectangle {
	if ts.Columns <= 0 {
		return image.Rectangle{}
	}
	row := int(localID) / ts.Columns
	col := int(localID) % ts.Columns
	x := ts.Margin + col*(ts.TileWidth+ts.Spacing)
	y := ts.Margin + row*(ts.TileHeight+ts.Spacing)
	return image.Rect(x, y, x+ts.TileWidth, y+ts.TileHeight)
}

// TileByID returns the per-tile override record for a local tile ID, or nil
// when the tile carries no overrides.
func (ts *Tileset) TileByID(localID uint32) *TilesetTile {
	for _, t := range ts.Tiles {
		if t.ID == localID {
			return t
		}
	}
	return nil
}

// TilesetTile carries the optional per-tile overrides a tileset may declare:
// terrain corners, an animation, collision shapes, a probability weight, a
// replacement image and custom properties.
type TilesetTile struct {
	ID          uint32
	Type        string
	Probability float64 // default 1.0

	// Terrain holds the terrain-type index for each corner in the order
	// top-left, top-right, bottom-left, bottom-right; -1 means no terrain.
	Terrain [4]int

	Animation   []Frame
	ObjectGroup *ObjectGroup
	Image       *Image
	Properties  Properties
}

// Frame is one step of a tile animation.
type Frame struct {
	TileID   uint32
	Duration int // milliseconds
}

// Terrain is one named terrain type of a tileset.
type Terrain struct {
	Name       string
	Tile       int // representative local tile ID
	Properties Properties
}
