package tmx

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func packCells(gids ...uint32) []byte {
	buf := make([]byte, 4*len(gids))
	for i, gid := range gids {
		binary.LittleEndian.PutUint32(buf[i*4:], gid)
	}
	return buf
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func zlibBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}
	return buf.Bytes()
}

func zstdBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("zstd write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zstd close: %v", err)
	}
	return buf.Bytes()
}

func TestDecodePayloadCompressions(t *testing.T) {
	want := packCells(1, 2, 3, 4)

	tests := []struct {
		name        string
		compression string
		payload     []byte
	}{
		{"uncompressed", "", want},
		{"gzip", "gzip", gzipBytes(t, want)},
		{"zlib", "zlib", zlibBytes(t, want)},
		{"zstd", "zstd", zstdBytes(t, want)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := base64.StdEncoding.EncodeToString(tt.payload)
			got, err := decodePayload("base64", tt.compression, content)
			if err != nil {
				t.Fatalf("decodePayload: %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestDecodePayloadTrimsWhitespace(t *testing.T) {
	want := packCells(7)
	content := "\n\t  " + base64.StdEncoding.EncodeToString(want) + "  \n"
	got, err := decodePayload("base64", "", content)
	if err != nil {
		t.Fatalf("decodePayload: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDecodePayloadUnsupportedEncoding(t *testing.T) {
	for _, encoding := range []string{"csv", "xml", "hex"} {
		if _, err := decodePayload(encoding, "", "1,2,3"); !errors.Is(err, ErrUnsupportedEncoding) {
			t.Errorf("encoding %q: got %v, want ErrUnsupportedEncoding", encoding, err)
		}
	}
}

func TestDecodePayloadUnsupportedCompression(t *testing.T) {
	content := base64.StdEncoding.EncodeToString(packCells(1))
	if _, err := decodePayload("base64", "lzma", content); !errors.Is(err, ErrUnsupportedCompression) {
		t.Errorf("got %v, want ErrUnsupportedCompression", err)
	}
}

func TestDecodePayloadTruncatedZlib(t *testing.T) {
	content := base64.StdEncoding.EncodeToString([]byte{0x78, 0x9c, 0x01})
	if _, err := decodePayload("base64", "zlib", content); !errors.Is(err, ErrTruncatedZlib) {
		t.Errorf("got %v, want ErrTruncatedZlib", err)
	}
}

func TestDecodeCells(t *testing.T) {
	cells, err := decodeCells(packCells(5, 0, 0x80000005, 0xE0000001), 4)
	if err != nil {
		t.Fatalf("decodeCells: %v", err)
	}

	if cells[0].GID != 5 || cells[0].HorizontalFlip {
		t.Errorf("cell 0 = %+v, want plain GID 5", cells[0])
	}
	if !cells[1].IsNil() {
		t.Errorf("cell 1 = %+v, want empty", cells[1])
	}
	if cells[2].GID != 5 || !cells[2].HorizontalFlip || cells[2].VerticalFlip || cells[2].DiagonalFlip {
		t.Errorf("cell 2 = %+v, want GID 5 with horizontal flip", cells[2])
	}
	c := cells[3]
	if c.GID != 1 || !c.HorizontalFlip || !c.VerticalFlip || !c.DiagonalFlip {
		t.Errorf("cell 3 = %+v, want GID 1 with all flips", c)
	}
}

func TestDecodeCellsCountMismatch(t *testing.T) {
	if _, err := decodeCells(packCells(1, 2, 3), 4); !errors.Is(err, ErrTileCountMismatch) {
		t.Errorf("short data: got %v, want ErrTileCountMismatch", err)
	}
	if _, err := decodeCells(packCells(1, 2, 3, 4, 5), 4); !errors.Is(err, ErrTileCountMismatch) {
		t.Errorf("long data: got %v, want ErrTileCountMismatch", err)
	}
}
