package tmx

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// zlib payloads carry a 2-byte header and a 4-byte Adler-32 trailer, so any
// stream shorter than 7 bytes cannot hold even one byte of data.
const minZlibLen = 7

// decodePayload decodes the base64 body of a <data> or <chunk> element and
// runs it through the declared compression codec. Only base64 encoding is
// supported; the empty compression string means the decoded bytes are the
// payload. Decompression is fully drained before returning.
func decodePayload(encoding, compression, content string) ([]byte, error) {
	if encoding != "base64" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, encoding)
	}

	// Editors wrap base64 bodies in whitespace and newlines freely.
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(content))
	if err != nil {
		return nil, fmt.Errorf("tmx: decode base64 layer data: %w", err)
	}

	var zr io.Reader
	switch compression {
	case "":
		return raw, nil
	case "gzip":
		gz, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("tmx: open gzip layer data: %w", err)
		}
		defer gz.Close()
		zr = gz
	case "zlib":
		if len(raw) < minZlibLen {
			return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedZlib, len(raw))
		}
		z, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("tmx: open zlib layer data: %w", err)
		}
		defer z.Close()
		zr = z
	case "zstd":
		zs, err := zstd.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("tmx: open zstd layer data: %w", err)
		}
		defer zs.Close()
		zr = zs
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCompression, compression)
	}

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("tmx: decompress layer data: %w", err)
	}
	return out, nil
}

// decodeCells reads count little-endian uint32 cells from data, splitting
// each into its GID and flip flags. A byte count that does not match the
// declared grid size fails rather than silently misaligning rows.
func decodeCells(data []byte, count int) ([]Cell, error) {
	if len(data) != count*4 {
		return nil, fmt.Errorf("%w: want %d cells, got %d bytes", ErrTileCountMismatch, count, len(data))
	}

	cells := make([]Cell, count)
	for i := range cells {
		raw := uint32(data[i*4]) |
			uint32(data[i*4+1])<<8 |
			uint32(data[i*4+2])<<16 |
			uint32(data[i*4+3])<<24
		cells[i] = decodeCell(raw)
	}
	return cells, nil
}
