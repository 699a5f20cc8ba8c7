package tmx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ObjectKind discriminates the shape of an Object. It is computed once at
// parse time; consumers switch on it instead of probing optional fields.
type ObjectKind int

// Object kinds, in discrimination priority order.
const (
	ObjectRectangle ObjectKind = iota
	ObjectTile
	ObjectEllipse
	ObjectPolygon
	ObjectPolyline
	ObjectText
	ObjectPoint
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectRectangle:
		return "rectangle"
	case ObjectTile:
		return "tile"
	case ObjectEllipse:
		return "ellipse"
	case ObjectPolygon:
		return "polygon"
	case ObjectPolyline:
		return "polyline"
	case ObjectText:
		return "text"
	case ObjectPoint:
		return "point"
	}
	return "unknown"
}

// Point is a coordinate pair relative to an object's position.
type Point struct {
	X float64
	Y float64
}

// ParsePoints parses an "x,y x,y ..." polygon or polyline attribute. Tokens
// that do not parse as a coordinate pair are skipped, and the first bad one
// is reported as an ErrInvalidPointFormat error alongside the points that
// did parse; the loader ignores it so that minor authoring-tool glitches do
// not abort a load.
func ParsePoints(s string) ([]Point, error) {
	var firstErr error
	fields := strings.Fields(s)
	points := make([]Point, 0, len(fields))
	for _, field := range fields {
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: %q", ErrInvalidPointFormat, field)
			}
			continue
		}
		x, errX := strconv.ParseFloat(xs, 64)
		y, errY := strconv.ParseFloat(ys, 64)
		if errX != nil || errY != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: %q", ErrInvalidPointFormat, field)
			}
			continue
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, firstErr
}

// Object is a single placed map object. Kind selects which of the optional
// fields are meaningful: Cell for tile objects, Points for polygons and
// polylines, Text for text objects.
type Object struct {
	ID       uint32
	Name     string
	Type     string
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Rotation float64
	Visible  bool

	Kind   ObjectKind
	Cell   Cell
	Points []Point
	Text   *Text

	Properties Properties
}

// TilePosition returns the object's position rounded to the nearest integer
// tile-pixel coordinates, which is how tile objects are placed.
func (o *Object) TilePosition() (int, int) {
	return int(math.Round(o.X)), int(math.Round(o.Y))
}

// Text holds the content and styling of a text object.
type Text struct {
	FontFamily string
	PixelSize  int
	Wrap       bool
	Color      Color
	Bold       bool
	Italic     bool
	Underline  bool
	Strikeout  bool
	Kerning    bool
	HAlign     string
	VAlign     string
	Text       string
}

// ObjectGroup is a layer holding an ordered list of objects. It also appears
// nested under tileset tiles to describe per-tile collision shapes.
type ObjectGroup struct {
	LayerInfo
	Color     *Color
	DrawOrder string
	Objects   []*Object
}

// Info implements Layer.
func (g *ObjectGroup) Info() *LayerInfo { return &g.LayerInfo }
