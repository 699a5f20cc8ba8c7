// Package tmx parses Tiled map editor TMX and TSX documents into a plain
// data model. It decodes base64 tile payloads (raw, gzip, zlib or zstd),
// splits packed cells into tile IDs plus flip flags, resolves external
// tilesets, and preserves the document order of the four layer kinds,
// including arbitrarily nested groups.
//
// The package only parses. It does not render, load image pixels, or watch
// files; callers feed the model to whatever drawing or collision code they
// have.
package tmx
