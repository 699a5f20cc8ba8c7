package tmx

import (
	"fmt"
	"strconv"
	"strings"
)

// The build pass turns raw XML structs into the public model: it applies
// format defaults, validates required attributes, resolves external
// tilesets and decodes layer data. Numeric attributes were already parsed
// by strconv, which always uses '.' as the decimal separator; host locale
// never matters.

func (l *loader) buildMap(rm *rawMap) (*Map, error) {
	for _, req := range []struct {
		name string
		val  *int
	}{
		{"width", rm.Width},
		{"height", rm.Height},
		{"tilewidth", rm.TileWidth},
		{"tileheight", rm.TileHeight},
	} {
		if req.val == nil {
			return nil, fmt.Errorf("%w: map %s", ErrMissingRequiredAttr, req.name)
		}
	}
	if *rm.TileWidth <= 0 || *rm.TileHeight <= 0 {
		return nil, fmt.Errorf("tmx: map tile size %dx%d must be positive", *rm.TileWidth, *rm.TileHeight)
	}

	m := &Map{
		Version:       rm.Version,
		TiledVersion:  rm.TiledVersion,
		Orientation:   parseOrientation(rm.Orientation),
		RenderOrder:   parseRenderOrder(rm.RenderOrder),
		Width:         *rm.Width,
		Height:        *rm.Height,
		TileWidth:     *rm.TileWidth,
		TileHeight:    *rm.TileHeight,
		HexSideLength: rm.HexSideLength,
		StaggerAxis:   StaggerAxis(rm.StaggerAxis),
		StaggerIndex:  StaggerIndex(rm.StaggerIndex),
		Infinite:      rm.Infinite,

		BackgroundColor: parseOptionalColor(rm.BackgroundColor),
		NextObjectID:    rm.NextObjectID,
		Properties:      buildProperties(rm.Properties),
	}

	for i := range rm.Tilesets {
		ts, err := l.buildTileset(&rm.Tilesets[i])
		if err != nil {
			return nil, err
		}
		m.Tilesets = append(m.Tilesets, ts)
	}

	layers, err := l.buildLayers(rm.Nodes, m.Width, m.Height)
	if err != nil {
		return nil, err
	}
	m.Layers = layers
	return m, nil
}

func parseOrientation(s string) Orientation {
	switch Orientation(s) {
	case OrientationOrthogonal, OrientationIsometric, OrientationStaggered, OrientationHexagonal:
		return Orientation(s)
	}
	return OrientationUnknown
}

func parseRenderOrder(s string) RenderOrder {
	switch RenderOrder(s) {
	case RenderRightUp, RenderLeftDown, RenderLeftUp:
		return RenderOrder(s)
	}
	return RenderRightDown
}

// buildProperties flattens <property> children, preferring the value
// attribute over element body text.
func buildProperties(raw []rawProperty) Properties {
	if len(raw) == 0 {
		return nil
	}
	props := make(Properties, 0, len(raw))
	for _, rp := range raw {
		value := strings.TrimSpace(rp.Body)
		if rp.Value != nil {
			value = *rp.Value
		}
		props = append(props, Property{Name: rp.Name, Type: rp.Type, Value: value})
	}
	return props
}

// buildLayers converts the ordered child nodes of a map or group. It is the
// single shared path for both, so nesting behaves identically at any depth.
// Unique lookup keys are assigned per sibling list, after all names are
// known.
func (l *loader) buildLayers(nodes []rawNode, mapW, mapH int) ([]Layer, error) {
	layers := make([]Layer, 0, len(nodes))
	for _, node := range nodes {
		switch {
		case node.tileLayer != nil:
			tl, err := l.buildTileLayer(node.tileLayer, mapW, mapH)
			if err != nil {
				return nil, err
			}
			layers = append(layers, tl)
		case node.objectGroup != nil:
			layers = append(layers, buildObjectGroup(node.objectGroup))
		case node.imageLayer != nil:
			layers = append(layers, l.buildImageLayer(node.imageLayer))
		case node.group != nil:
			g, err := l.buildGroup(node.group, mapW, mapH)
			if err != nil {
				return nil, err
			}
			layers = append(layers, g)
		}
	}

	names := make([]string, len(layers))
	for i, layer := range layers {
		names[i] = layer.Info().Name
	}
	for i, key := range assignUniqueKeys(names) {
		layers[i].Info().Key = key
	}
	return layers, nil
}

func buildLayerInfo(id int, name string, opacity *float64, visible *bool, offX, offY float64, tint string, props rawProperties) LayerInfo {
	info := LayerInfo{
		ID:         id,
		Name:       name,
		Opacity:    1,
		Visible:    true,
		OffsetX:    offX,
		OffsetY:    offY,
		TintColor:  parseOptionalColor(tint),
		Properties: buildProperties(props.Properties),
	}
	if opacity != nil {
		info.Opacity = *opacity
	}
	if visible != nil {
		info.Visible = *visible
	}
	return info
}

func (l *loader) buildTileLayer(rl *rawTileLayer, mapW, mapH int) (*TileLayer, error) {
	tl := &TileLayer{
		LayerInfo: buildLayerInfo(rl.ID, rl.Name, rl.Opacity, rl.Visible, rl.OffsetX, rl.OffsetY, rl.Tint, rl.Properties),
		Width:     mapW,
		Height:    mapH,
	}
	if rl.Width != nil {
		tl.Width = *rl.Width
	}
	if rl.Height != nil {
		tl.Height = *rl.Height
	}

	switch {
	case rl.Data == nil:
		tl.Cells = make([]Cell, tl.Width*tl.Height)
	case len(rl.Data.Chunks) > 0:
		for _, rc := range rl.Data.Chunks {
			payload, err := decodePayload(rl.Data.Encoding, rl.Data.Compression, rc.Content)
			if err != nil {
				return nil, fmt.Errorf("tmx: layer %q chunk (%d,%d): %w", rl.Name, rc.X, rc.Y, err)
			}
			cells, err := decodeCells(payload, rc.Width*rc.Height)
			if err != nil {
				return nil, fmt.Errorf("tmx: layer %q chunk (%d,%d): %w", rl.Name, rc.X, rc.Y, err)
			}
			tl.Chunks = append(tl.Chunks, Chunk{
				X: rc.X, Y: rc.Y,
				Width: rc.Width, Height: rc.Height,
				Cells: cells,
			})
		}
	default:
		payload, err := decodePayload(rl.Data.Encoding, rl.Data.Compression, rl.Data.Content)
		if err != nil {
			return nil, fmt.Errorf("tmx: layer %q: %w", rl.Name, err)
		}
		cells, err := decodeCells(payload, tl.Width*tl.Height)
		if err != nil {
			return nil, fmt.Errorf("tmx: layer %q: %w", rl.Name, err)
		}
		tl.Cells = cells
	}
	return tl, nil
}

func buildObjectGroup(rog *rawObjectGroup) *ObjectGroup {
	og := &ObjectGroup{
		LayerInfo: buildLayerInfo(rog.ID, rog.Name, rog.Opacity, rog.Visible, rog.OffsetX, rog.OffsetY, rog.Tint, rog.Properties),
		Color:     parseOptionalColor(rog.Color),
		DrawOrder: rog.DrawOrder,
	}
	for i := range rog.Objects {
		og.Objects = append(og.Objects, buildObject(&rog.Objects[i]))
	}
	return og
}

// buildObject computes the object's kind once, from the attributes and
// child elements present, in fixed priority order.
func buildObject(ro *rawObject) *Object {
	o := &Object{
		ID:         ro.ID,
		Name:       ro.Name,
		Type:       ro.Type,
		X:          ro.X,
		Y:          ro.Y,
		Width:      ro.Width,
		Height:     ro.Height,
		Rotation:   ro.Rotation,
		Visible:    true,
		Kind:       ObjectRectangle,
		Properties: buildProperties(ro.Properties.Properties),
	}
	if o.Type == "" {
		o.Type = ro.Class
	}
	if ro.Visible != nil {
		o.Visible = *ro.Visible
	}

	switch {
	case ro.GID != nil:
		o.Kind = ObjectTile
		o.Cell = decodeCell(*ro.GID)
	case ro.Ellipse != nil:
		o.Kind = ObjectEllipse
	case ro.Polygon != nil:
		o.Kind = ObjectPolygon
		o.Points, _ = ParsePoints(ro.Polygon.Points)
	case ro.Polyline != nil:
		o.Kind = ObjectPolyline
		o.Points, _ = ParsePoints(ro.Polyline.Points)
	case ro.Text != nil:
		o.Kind = ObjectText
		o.Text = buildText(ro.Text)
	case ro.Point != nil:
		o.Kind = ObjectPoint
	}
	return o
}

func buildText(rt *rawText) *Text {
	t := &Text{
		FontFamily: "sans-serif",
		PixelSize:  16,
		Wrap:       rt.Wrap,
		Color:      Color{A: 0xff},
		Bold:       rt.Bold,
		Italic:     rt.Italic,
		Underline:  rt.Underline,
		Strikeout:  rt.Strikeout,
		Kerning:    true,
		HAlign:     "left",
		VAlign:     "top",
		Text:       rt.Body,
	}
	if rt.FontFamily != "" {
		t.FontFamily = rt.FontFamily
	}
	if rt.PixelSize != nil {
		t.PixelSize = *rt.PixelSize
	}
	if rt.Kerning != nil {
		t.Kerning = *rt.Kerning
	}
	if c, err := ParseColor(rt.Color); err == nil {
		t.Color = c
	}
	if rt.HAlign != "" {
		t.HAlign = rt.HAlign
	}
	if rt.VAlign != "" {
		t.VAlign = rt.VAlign
	}
	return t
}

func (l *loader) buildImageLayer(ril *rawImageLayer) *ImageLayer {
	return &ImageLayer{
		LayerInfo: buildLayerInfo(ril.ID, ril.Name, ril.Opacity, ril.Visible, ril.OffsetX, ril.OffsetY, ril.Tint, ril.Properties),
		Image:     l.buildImage(ril.Image),
		RepeatX:   ril.RepeatX,
		RepeatY:   ril.RepeatY,
	}
}

func (l *loader) buildGroup(rg *rawGroup, mapW, mapH int) (*Group, error) {
	g := &Group{
		LayerInfo: buildLayerInfo(rg.ID, rg.Name, rg.Opacity, rg.Visible, rg.OffsetX, rg.OffsetY, rg.TintColor, rawProperties{Properties: rg.Properties}),
	}
	children, err := l.buildLayers(rg.Nodes, mapW, mapH)
	if err != nil {
		return nil, err
	}
	g.Layers = children
	return g, nil
}

// buildImage resolves an <image> element to either a path joined with the
// document's base directory or, for embedded images, the decoded bytes.
func (l *loader) buildImage(ri *rawImage) *Image {
	if ri == nil {
		return nil
	}
	img := &Image{
		Format: ri.Format,
		Width:  ri.Width,
		Height: ri.Height,
		Trans:  parseOptionalColor(ri.Trans),
	}
	if ri.Source != "" {
		img.Source = l.join(ri.Source)
		return img
	}
	if ri.Data != nil {
		data, err := decodePayload(ri.Data.Encoding, ri.Data.Compression, ri.Data.Content)
		if err == nil {
			img.Data = data
		}
	}
	return img
}

func (l *loader) buildTileset(rt *rawTileset) (*Tileset, error) {
	sub := l
	source := ""
	if rt.Source != "" {
		tsxPath := l.join(rt.Source)
		ext, err := l.loadTileset(tsxPath)
		if err != nil {
			return nil, err
		}
		ext.FirstGID = rt.FirstGID
		rt = ext
		source = tsxPath
		sub = &loader{fsys: l.fsys, baseDir: l.dir(tsxPath)}
	}

	if rt.TileWidth <= 0 || rt.TileHeight <= 0 {
		return nil, fmt.Errorf("%w: tileset %q tile size %dx%d", ErrInvalidTilesetDimensions, rt.Name, rt.TileWidth, rt.TileHeight)
	}

	ts := &Tileset{
		FirstGID:   rt.FirstGID,
		Source:     source,
		Name:       rt.Name,
		TileWidth:  rt.TileWidth,
		TileHeight: rt.TileHeight,
		Spacing:    rt.Spacing,
		Margin:     rt.Margin,
		TileCount:  rt.TileCount,
		Columns:    rt.Columns,
		Image:      sub.buildImage(rt.Image),
		Properties: buildProperties(rt.Properties.Properties),
	}
	if rt.TileOffset != nil {
		ts.OffsetX = rt.TileOffset.X
		ts.OffsetY = rt.TileOffset.Y
	}

	// Older documents omit columns; derive it from the atlas image when
	// possible. A tileset with an atlas but no usable column count cannot
	// answer GetTileRect, which is a structural problem.
	if ts.Columns <= 0 && ts.Image != nil {
		if ts.Image.Width > 0 {
			ts.Columns = (ts.Image.Width - 2*ts.Margin + ts.Spacing) / (ts.TileWidth + ts.Spacing)
		}
		if ts.Columns <= 0 && ts.TileCount > 0 {
			return nil, fmt.Errorf("%w: tileset %q has no columns", ErrInvalidTilesetDimensions, rt.Name)
		}
	}

	for i := range rt.Terrains {
		raw := &rt.Terrains[i]
		ts.Terrains = append(ts.Terrains, &Terrain{
			Name:       raw.Name,
			Tile:       raw.Tile,
			Properties: buildProperties(raw.Properties.Properties),
		})
	}

	for i := range rt.Tiles {
		tile, err := buildTilesetTile(&rt.Tiles[i], sub)
		if err != nil {
			return nil, fmt.Errorf("tmx: tileset %q: %w", rt.Name, err)
		}
		ts.Tiles = append(ts.Tiles, tile)
	}
	return ts, nil
}

func buildTilesetTile(rt *rawTilesetTile, l *loader) (*TilesetTile, error) {
	tile := &TilesetTile{
		ID:          rt.ID,
		Type:        rt.Type,
		Probability: 1,
		Terrain:     [4]int{-1, -1, -1, -1},
		Image:       l.buildImage(rt.Image),
		Properties:  buildProperties(rt.Properties.Properties),
	}
	if tile.Type == "" {
		tile.Type = rt.Class
	}
	if rt.Probability != nil {
		tile.Probability = *rt.Probability
	}

	// Corner markers come as a 4-entry comma list ("0,,1,1"); empty or
	// unparsable entries mean no terrain at that corner.
	if rt.Terrain != "" {
		for i, part := range strings.SplitN(rt.Terrain, ",", 4) {
			if idx, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
				tile.Terrain[i] = idx
			}
		}
	}

	for _, rf := range rt.Animation {
		tile.Animation = append(tile.Animation, Frame{TileID: rf.TileID, Duration: rf.Duration})
	}
	if rt.ObjectGroup != nil {
		tile.ObjectGroup = buildObjectGroup(rt.ObjectGroup)
	}
	return tile, nil
}
