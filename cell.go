package tmx

// Bitmasks for the flip flags packed into the high bits of a raw tile cell.
// The remaining low 29 bits hold the global tile ID.
const (
	FlippedHorizontallyFlag uint32 = 0x80000000
	FlippedVerticallyFlag   uint32 = 0x40000000
	FlippedDiagonallyFlag   uint32 = 0x20000000

	flipMask = FlippedHorizontallyFlag | FlippedVerticallyFlag | FlippedDiagonallyFlag
	gidMask  = ^flipMask
)

// Cell is one decoded tile-grid entry. GID has the flip flags already
// stripped; a GID of zero means the cell is empty.
type Cell struct {
	GID            uint32
	HorizontalFlip bool
	VerticalFlip   bool
	DiagonalFlip   bool
}

// decodeCell splits a raw 32-bit cell value into its GID and flip flags.
func decodeCell(raw uint32) Cell {
	return Cell{
		GID:            raw & gidMask,
		HorizontalFlip: raw&FlippedHorizontallyFlag != 0,
		VerticalFlip:   raw&FlippedVerticallyFlag != 0,
		DiagonalFlip:   raw&FlippedDiagonallyFlag != 0,
	}
}

// IsNil reports whether the cell holds no tile.
func (c Cell) IsNil() bool {
	return c.GID == 0
}
