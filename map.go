package tmx

// Orientation is the tile layout of a map.
type Orientation string

// Map orientations. Unrecognized or absent orientation attributes parse as
// OrientationUnknown rather than failing.
const (
	OrientationUnknown    Orientation = "unknown"
	OrientationOrthogonal Orientation = "orthogonal"
	OrientationIsometric  Orientation = "isometric"
	OrientationStaggered  Orientation = "staggered"
	OrientationHexagonal  Orientation = "hexagonal"
)

// RenderOrder is the corner-start direction tiles are meant to be drawn in.
type RenderOrder string

// Render orders; RenderRightDown is the format default.
const (
	RenderRightDown RenderOrder = "right-down"
	RenderRightUp   RenderOrder = "right-up"
	RenderLeftDown  RenderOrder = "left-down"
	RenderLeftUp    RenderOrder = "left-up"
)

// StaggerAxis is the axis that alternates offsets on staggered and
// hexagonal maps.
type StaggerAxis string

// Stagger axes.
const (
	StaggerX StaggerAxis = "x"
	StaggerY StaggerAxis = "y"
)

// StaggerIndex selects whether odd or even rows/columns are offset.
type StaggerIndex string

// Stagger indexes.
const (
	StaggerOdd  StaggerIndex = "odd"
	StaggerEven StaggerIndex = "even"
)

// Map is a fully parsed TMX document. It is immutable once a load call
// returns; loading another document never touches an existing Map.
type Map struct {
	Version      string
	TiledVersion string

	Orientation   Orientation
	RenderOrder   RenderOrder
	Width         int // in tiles
	Height        int // in tiles
	TileWidth     int // in pixels
	TileHeight    int // in pixels
	HexSideLength int
	StaggerAxis   StaggerAxis
	StaggerIndex  StaggerIndex
	Infinite      bool

	BackgroundColor *Color
	NextObjectID    uint32

	Properties Properties
	Tilesets   []*Tileset
	Layers     []Layer // all four kinds, in document order
}

// TilesetForGID returns the tileset owning the given global tile ID: the
// first tileset in document order whose [FirstGID, FirstGID+TileCount)
// range contains it. Returns nil for GID 0 and for GIDs no tileset owns.
func (m *Map) TilesetForGID(gid uint32) *Tileset {
	if gid == 0 {
		return nil
	}
	for _, ts := range m.Tilesets {
		if ts.ContainsGid(gid) {
			return ts
		}
	}
	return nil
}

// LayerByKey returns the top-level layer with the given unique key, or nil.
func (m *Map) LayerByKey(key string) Layer {
	return layerByKey(m.Layers, key)
}

// TileLayers returns every tile layer in the map, including those nested in
// groups, in document order.
func (m *Map) TileLayers() []*TileLayer {
	var out []*TileLayer
	walkLayers(m.Layers, func(l Layer) {
		if tl, ok := l.(*TileLayer); ok {
			out = append(out, tl)
		}
	})
	return out
}

// ObjectGroups returns every object group in the map, including those nested
// in groups, in document order.
func (m *Map) ObjectGroups() []*ObjectGroup {
	var out []*ObjectGroup
	walkLayers(m.Layers, func(l Layer) {
		if og, ok := l.(*ObjectGroup); ok {
			out = append(out, og)
		}
	})
	return out
}

// ImageLayers returns every image layer in the map, including those nested
// in groups, in document order.
func (m *Map) ImageLayers() []*ImageLayer {
	var out []*ImageLayer
	walkLayers(m.Layers, func(l Layer) {
		if il, ok := l.(*ImageLayer); ok {
			out = append(out, il)
		}
	})
	return out
}

// walkLayers visits layers depth-first in document order, descending into
// groups after visiting the group node itself.
func walkLayers(layers []Layer, visit func(Layer)) {
	for _, l := range layers {
		visit(l)
		if g, ok := l.(*Group); ok {
			walkLayers(g.Layers, visit)
		}
	}
}
