package tmx

import "errors"

// Errors reported while loading a map document. Structural errors abort the
// whole load; callers can match them with errors.Is since load errors wrap
// these sentinels with element context.
var (
	ErrDocumentNotFound         = errors.New("tmx: document not found")
	ErrMalformedXML             = errors.New("tmx: malformed XML")
	ErrMissingRequiredAttr      = errors.New("tmx: missing required attribute")
	ErrUnsupportedEncoding      = errors.New("tmx: unsupported encoding")
	ErrUnsupportedCompression   = errors.New("tmx: unsupported compression")
	ErrTruncatedZlib            = errors.New("tmx: truncated zlib data")
	ErrTileCountMismatch        = errors.New("tmx: tile count mismatch")
	ErrInvalidTilesetDimensions = errors.New("tmx: invalid tileset dimensions")
	ErrInvalidPointFormat       = errors.New("tmx: invalid point format")
	ErrInvalidColorFormat       = errors.New("tmx: invalid color format")
)
