package tmx

// LayerInfo holds the attributes shared by all four layer kinds.
type LayerInfo struct {
	ID      int
	Name    string
	Key     string // Name made unique among siblings, "_1"/"_2"/... on duplicates
	Opacity float64
	Visible bool
	OffsetX float64
	OffsetY float64

	TintColor  *Color
	Properties Properties
}

// Layer is one entry of a map's (or group's) ordered layer list. The
// concrete type is *TileLayer, *ObjectGroup, *ImageLayer or *Group.
type Layer interface {
	// Info returns the attributes common to every layer kind.
	Info() *LayerInfo
}

// TileLayer is a grid of tile cells. For finite maps Cells holds
// Width*Height entries row-major; infinite maps carry their cells in Chunks
// instead.
type TileLayer struct {
	LayerInfo
	Width  int
	Height int
	Cells  []Cell
	Chunks []Chunk
}

// Info implements Layer.
func (l *TileLayer) Info() *LayerInfo { return &l.LayerInfo }

// TileAt returns the cell at (x, y). Out-of-range coordinates and chunked
// layers yield the empty cell.
func (l *TileLayer) TileAt(x, y int) Cell {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return Cell{}
	}
	i := y*l.Width + x
	if i >= len(l.Cells) {
		return Cell{}
	}
	return l.Cells[i]
}

// Chunk is one block of cells in an infinite map's tile layer. X and Y are
// the chunk origin in tile coordinates and may be negative.
type Chunk struct {
	X      int
	Y      int
	Width  int
	Height int
	Cells  []Cell
}

// TileAt returns the cell at map tile coordinates (x, y), which must lie
// inside the chunk.
func (c Chunk) TileAt(x, y int) Cell {
	cx, cy := x-c.X, y-c.Y
	if cx < 0 || cy < 0 || cx >= c.Width || cy >= c.Height {
		return Cell{}
	}
	return c.Cells[cy*c.Width+cx]
}

// ImageLayer is a layer holding a single background image.
type ImageLayer struct {
	LayerInfo
	Image   *Image
	RepeatX bool
	RepeatY bool
}

// Info implements Layer.
func (l *ImageLayer) Info() *LayerInfo { return &l.LayerInfo }

// Group nests an ordered list of child layers of any kind.
type Group struct {
	LayerInfo
	Layers []Layer
}

// Info implements Layer.
func (g *Group) Info() *LayerInfo { return &g.LayerInfo }

// LayerByKey returns the direct child with the given unique key, or nil.
func (g *Group) LayerByKey(key string) Layer {
	return layerByKey(g.Layers, key)
}

func layerByKey(layers []Layer, key string) Layer {
	for _, l := range layers {
		if l.Info().Key == key {
			return l
		}
	}
	return nil
}
