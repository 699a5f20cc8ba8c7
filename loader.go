package tmx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// LoadOption configures a load call.
type LoadOption func(*loader)

// WithFileSystem makes the loader resolve the map path, external tilesets
// and relative image paths against fsys instead of the OS filesystem.
// Callers pass embed.FS for bundled maps or os.DirFS on servers; tests pass
// fstest.MapFS.
func WithFileSystem(fsys fs.FS) LoadOption {
	return func(l *loader) {
		l.fsys = fsys
	}
}

// LoadFile reads and parses the TMX map at path. Relative resource paths
// inside the document resolve against the path's containing directory.
func LoadFile(path string, opts ...LoadOption) (*Map, error) {
	l := newLoader(opts)
	f, err := l.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l.baseDir = l.dir(path)
	return l.readMap(f)
}

// LoadReader parses a TMX map from r. baseDir is the directory relative
// resource paths resolve against; pass "" when the document references no
// external resources.
func LoadReader(baseDir string, r io.Reader, opts ...LoadOption) (*Map, error) {
	l := newLoader(opts)
	l.baseDir = baseDir
	return l.readMap(r)
}

// loader carries the per-load state: the resource-resolution seam and the
// base directory of the document currently being parsed. A fresh loader is
// built per load call, so concurrent loads never share state.
type loader struct {
	fsys    fs.FS
	baseDir string
}

func newLoader(opts []LoadOption) *loader {
	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// open opens a document through the configured filesystem seam. A path that
// exists nowhere reports ErrDocumentNotFound regardless of the backing
// filesystem's own error type.
func (l *loader) open(name string) (io.ReadCloser, error) {
	var (
		f   io.ReadCloser
		err error
	)
	if l.fsys != nil {
		f, err = l.fsys.Open(filepath.ToSlash(name))
	} else {
		f, err = os.Open(name)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, name)
		}
		return nil, fmt.Errorf("tmx: open %s: %w", name, err)
	}
	return f, nil
}

// dir returns the containing directory of name using the path convention of
// the active filesystem.
func (l *loader) dir(name string) string {
	if l.fsys != nil {
		return path.Dir(filepath.ToSlash(name))
	}
	return filepath.Dir(name)
}

// join resolves a document-relative resource path against the base
// directory.
func (l *loader) join(rel string) string {
	if l.baseDir == "" || l.baseDir == "." {
		return rel
	}
	if l.fsys != nil {
		return path.Join(l.baseDir, rel)
	}
	return filepath.Join(l.baseDir, rel)
}

// readMap parses the XML document on r and builds the public Map from it.
func (l *loader) readMap(r io.Reader) (*Map, error) {
	var rm rawMap
	if err := xml.NewDecoder(r).Decode(&rm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedXML, err)
	}
	return l.buildMap(&rm)
}

// loadTileset reads and parses the external tileset document at path (a
// .tsx file already resolved against the referencing document's base
// directory).
func (l *loader) loadTileset(path string) (*rawTileset, error) {
	f, err := l.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rt rawTileset
	if err := xml.NewDecoder(f).Decode(&rt); err != nil {
		return nil, fmt.Errorf("%w: tileset %s: %v", ErrMalformedXML, path, err)
	}
	return &rt, nil
}
