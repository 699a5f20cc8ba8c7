package tmx

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// Raw document types. These mirror the XML element hierarchy exactly and are
// turned into the public model by the loader's build pass, which is where
// defaults, validation and data decoding happen.

type rawMap struct {
	Version         string
	TiledVersion    string
	Orientation     string
	RenderOrder     string
	Width           *int
	Height          *int
	TileWidth       *int
	TileHeight      *int
	HexSideLength   int
	StaggerAxis     string
	StaggerIndex    string
	BackgroundColor string
	NextObjectID    uint32
	Infinite        bool

	Properties []rawProperty
	Tilesets   []rawTileset
	Nodes      []rawNode
}

// rawNode is one ordered child of a <map> or <group>; exactly one field is
// set.
type rawNode struct {
	tileLayer   *rawTileLayer
	objectGroup *rawObjectGroup
	imageLayer  *rawImageLayer
	group       *rawGroup
}

// UnmarshalXML walks the map's children by hand so the four layer kinds stay
// interleaved in document order. Unknown elements are skipped, not errors.
func (m *rawMap) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "version":
			m.Version = a.Value
		case "tiledversion":
			m.TiledVersion = a.Value
		case "orientation":
			m.Orientation = a.Value
		case "renderorder":
			m.RenderOrder = a.Value
		case "width":
			v, err := strconv.Atoi(a.Value)
			if err != nil {
				return fmt.Errorf("tmx: map width: %w", err)
			}
			m.Width = &v
		case "height":
			v, err := strconv.Atoi(a.Value)
			if err != nil {
				return fmt.Errorf("tmx: map height: %w", err)
			}
			m.Height = &v
		case "tilewidth":
			v, err := strconv.Atoi(a.Value)
			if err != nil {
				return fmt.Errorf("tmx: map tilewidth: %w", err)
			}
			m.TileWidth = &v
		case "tileheight":
			v, err := strconv.Atoi(a.Value)
			if err != nil {
				return fmt.Errorf("tmx: map tileheight: %w", err)
			}
			m.TileHeight = &v
		case "hexsidelength":
			m.HexSideLength, _ = strconv.Atoi(a.Value)
		case "staggeraxis":
			m.StaggerAxis = a.Value
		case "staggerindex":
			m.StaggerIndex = a.Value
		case "backgroundcolor":
			m.BackgroundColor = a.Value
		case "nextobjectid":
			v, _ := strconv.ParseUint(a.Value, 10, 32)
			m.NextObjectID = uint32(v)
		case "infinite":
			m.Infinite = a.Value == "1" || a.Value == "true"
		}
	}

	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			node, ok, err := decodeLayerNode(d, el)
			if err != nil {
				return err
			}
			if ok {
				m.Nodes = append(m.Nodes, node)
				continue
			}
			switch el.Name.Local {
			case "properties":
				var props rawProperties
				if err := d.DecodeElement(&props, &el); err != nil {
					return err
				}
				m.Properties = props.Properties
			case "tileset":
				var ts rawTileset
				if err := d.DecodeElement(&ts, &el); err != nil {
					return err
				}
				m.Tilesets = append(m.Tilesets, ts)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// decodeLayerNode decodes el into a rawNode if it is one of the four layer
// elements. The second return value is false for any other element.
func decodeLayerNode(d *xml.Decoder, el xml.StartElement) (rawNode, bool, error) {
	switch el.Name.Local {
	case "layer":
		var l rawTileLayer
		if err := d.DecodeElement(&l, &el); err != nil {
			return rawNode{}, false, err
		}
		return rawNode{tileLayer: &l}, true, nil
	case "objectgroup":
		var og rawObjectGroup
		if err := d.DecodeElement(&og, &el); err != nil {
			return rawNode{}, false, err
		}
		return rawNode{objectGroup: &og}, true, nil
	case "imagelayer":
		var il rawImageLayer
		if err := d.DecodeElement(&il, &el); err != nil {
			return rawNode{}, false, err
		}
		return rawNode{imageLayer: &il}, true, nil
	case "group":
		var g rawGroup
		if err := d.DecodeElement(&g, &el); err != nil {
			return rawNode{}, false, err
		}
		return rawNode{group: &g}, true, nil
	}
	return rawNode{}, false, nil
}

type rawGroup struct {
	ID        int
	Name      string
	Opacity   *float64
	Visible   *bool
	OffsetX   float64
	OffsetY   float64
	TintColor string

	Properties []rawProperty
	Nodes      []rawNode
}

// UnmarshalXML decodes a <group> with the same ordered child walk as the map
// root, so nesting behaves identically at every depth.
func (g *rawGroup) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "id":
			g.ID, _ = strconv.Atoi(a.Value)
		case "name":
			g.Name = a.Value
		case "opacity":
			v, err := strconv.ParseFloat(a.Value, 64)
			if err == nil {
				g.Opacity = &v
			}
		case "visible":
			v, err := strconv.ParseBool(a.Value)
			if err == nil {
				g.Visible = &v
			}
		case "offsetx":
			g.OffsetX, _ = strconv.ParseFloat(a.Value, 64)
		case "offsety":
			g.OffsetY, _ = strconv.ParseFloat(a.Value, 64)
		case "tintcolor":
			g.TintColor = a.Value
		}
	}

	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			node, ok, err := decodeLayerNode(d, el)
			if err != nil {
				return err
			}
			if ok {
				g.Nodes = append(g.Nodes, node)
				continue
			}
			if el.Name.Local == "properties" {
				var props rawProperties
				if err := d.DecodeElement(&props, &el); err != nil {
					return err
				}
				g.Properties = props.Properties
				continue
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

type rawProperties struct {
	Properties []rawProperty `xml:"property"`
}

type rawProperty struct {
	Name  string  `xml:"name,attr"`
	Type  string  `xml:"type,attr"`
	Value *string `xml:"value,attr"`
	Body  string  `xml:",chardata"`
}

type rawTileLayer struct {
	ID      int      `xml:"id,attr"`
	Name    string   `xml:"name,attr"`
	Width   *int     `xml:"width,attr"`
	Height  *int     `xml:"height,attr"`
	Opacity *float64 `xml:"opacity,attr"`
	Visible *bool    `xml:"visible,attr"`
	OffsetX float64  `xml:"offsetx,attr"`
	OffsetY float64  `xml:"offsety,attr"`
	Tint    string   `xml:"tintcolor,attr"`

	Properties rawProperties `xml:"properties"`
	Data       *rawData      `xml:"data"`
}

type rawData struct {
	Encoding    string     `xml:"encoding,attr"`
	Compression string     `xml:"compression,attr"`
	Chunks      []rawChunk `xml:"chunk"`
	Content     string     `xml:",chardata"`
}

type rawChunk struct {
	X       int    `xml:"x,attr"`
	Y       int    `xml:"y,attr"`
	Width   int    `xml:"width,attr"`
	Height  int    `xml:"height,attr"`
	Content string `xml:",chardata"`
}

type rawObjectGroup struct {
	ID        int      `xml:"id,attr"`
	Name      string   `xml:"name,attr"`
	Color     string   `xml:"color,attr"`
	Opacity   *float64 `xml:"opacity,attr"`
	Visible   *bool    `xml:"visible,attr"`
	OffsetX   float64  `xml:"offsetx,attr"`
	OffsetY   float64  `xml:"offsety,attr"`
	Tint      string   `xml:"tintcolor,attr"`
	DrawOrder string   `xml:"draworder,attr"`

	Properties rawProperties `xml:"properties"`
	Objects    []rawObject   `xml:"object"`
}

type rawObject struct {
	ID       uint32  `xml:"id,attr"`
	Name     string  `xml:"name,attr"`
	Type     string  `xml:"type,attr"`
	Class    string  `xml:"class,attr"`
	X        float64 `xml:"x,attr"`
	Y        float64 `xml:"y,attr"`
	Width    float64 `xml:"width,attr"`
	Height   float64 `xml:"height,attr"`
	Rotation float64 `xml:"rotation,attr"`
	GID      *uint32 `xml:"gid,attr"`
	Visible  *bool   `xml:"visible,attr"`

	Ellipse  *struct{}  `xml:"ellipse"`
	Point    *struct{}  `xml:"point"`
	Polygon  *rawPoints `xml:"polygon"`
	Polyline *rawPoints `xml:"polyline"`
	Text     *rawText   `xml:"text"`

	Properties rawProperties `xml:"properties"`
}

type rawPoints struct {
	Points string `xml:"points,attr"`
}

type rawText struct {
	FontFamily string `xml:"fontfamily,attr"`
	PixelSize  *int   `xml:"pixelsize,attr"`
	Wrap       bool   `xml:"wrap,attr"`
	Color      string `xml:"color,attr"`
	Bold       bool   `xml:"bold,attr"`
	Italic     bool   `xml:"italic,attr"`
	Underline  bool   `xml:"underline,attr"`
	Strikeout  bool   `xml:"strikeout,attr"`
	Kerning    *bool  `xml:"kerning,attr"`
	HAlign     string `xml:"halign,attr"`
	VAlign     string `xml:"valign,attr"`
	Body       string `xml:",chardata"`
}

type rawImageLayer struct {
	ID      int      `xml:"id,attr"`
	Name    string   `xml:"name,attr"`
	Opacity *float64 `xml:"opacity,attr"`
	Visible *bool    `xml:"visible,attr"`
	OffsetX float64  `xml:"offsetx,attr"`
	OffsetY float64  `xml:"offsety,attr"`
	Tint    string   `xml:"tintcolor,attr"`
	RepeatX bool     `xml:"repeatx,attr"`
	RepeatY bool     `xml:"repeaty,attr"`

	Properties rawProperties `xml:"properties"`
	Image      *rawImage     `xml:"image"`
}

type rawImage struct {
	Format string   `xml:"format,attr"`
	Source string   `xml:"source,attr"`
	Trans  string   `xml:"trans,attr"`
	Width  int      `xml:"width,attr"`
	Height int      `xml:"height,attr"`
	Data   *rawData `xml:"data"`
}

type rawTileset struct {
	FirstGID   uint32 `xml:"firstgid,attr"`
	Source     string `xml:"source,attr"`
	Name       string `xml:"name,attr"`
	TileWidth  int    `xml:"tilewidth,attr"`
	TileHeight int    `xml:"tileheight,attr"`
	Spacing    int    `xml:"spacing,attr"`
	Margin     int    `xml:"margin,attr"`
	TileCount  int    `xml:"tilecount,attr"`
	Columns    int    `xml:"columns,attr"`

	TileOffset *struct {
		X int `xml:"x,attr"`
		Y int `xml:"y,attr"`
	} `xml:"tileoffset"`

	Image      *rawImage        `xml:"image"`
	Terrains   []rawTerrain     `xml:"terraintypes>terrain"`
	Tiles      []rawTilesetTile `xml:"tile"`
	Properties rawProperties    `xml:"properties"`
}

type rawTerrain struct {
	Name       string        `xml:"name,attr"`
	Tile       int           `xml:"tile,attr"`
	Properties rawProperties `xml:"properties"`
}

type rawTilesetTile struct {
	ID          uint32   `xml:"id,attr"`
	Type        string   `xml:"type,attr"`
	Class       string   `xml:"class,attr"`
	Terrain     string   `xml:"terrain,attr"`
	Probability *float64 `xml:"probability,attr"`

	Image       *rawImage       `xml:"image"`
	Animation   []rawFrame      `xml:"animation>frame"`
	ObjectGroup *rawObjectGroup `xml:"objectgroup"`
	Properties  rawProperties   `xml:"properties"`
}

type rawFrame struct {
	TileID   uint32 `xml:"tileid,attr"`
	Duration int    `xml:"duration,attr"`
}
