package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

var (
	// ErrUnsupportedFamily is returned for a family tag other than HZK or ASC.
	ErrUnsupportedFamily = errors.New("unsupported font family")
	// ErrUnsupportedSize is returned when the (family, size) pair is not in
	// the geometry table.
	ErrUnsupportedSize = errors.New("unsupported font size")
	// ErrStoreNotFound is returned when the backing store file is absent.
	ErrStoreNotFound = errors.New("font store not found")
)

// Geometry describes the fixed cell layout of one font store.
type Geometry struct {
	Width         int
	Height        int
	BytesPerGlyph int
}

// BytesPerRow returns the number of bytes that encode one glyph row.
func (g Geometry) BytesPerRow() int {
	return (g.Width + 7) / 8
}

func newGeometry(width, height int) Geometry {
	return Geometry{
		Width:         width,
		Height:        height,
		BytesPerGlyph: (width*height + 7) / 8,
	}
}

type key struct {
	family Family
	size   int
}

// geometries is the closed table of supported stores. Adding a size means
// adding a row here.
var geometries = map[key]Geometry{
	{HZK, 12}: newGeometry(16, 12),
	{ASC, 12}: newGeometry(8, 12), // ASC width is fixed at 8, height = size
}

// Lookup returns the geometry for a (family, size) pair.
func Lookup(family Family, size int) (Geometry, error) {
	if family != HZK && family != ASC {
		return Geometry{}, fmt.Errorf("%w: %s", ErrUnsupportedFamily, family)
	}
	g, ok := geometries[key{family, size}]
	if !ok {
		return Geometry{}, fmt.Errorf("%w: %s%d", ErrUnsupportedSize, family, size)
	}
	return g, nil
}

// Supported returns the supported sizes per family tag, e.g.
// {"HZK": [12], "ASC": [12]}.
func Supported() map[string][]int {
	out := map[string][]int{
		HZK.String(): {},
		ASC.String(): {},
	}
	for k := range geometries {
		out[k.family.String()] = append(out[k.family.String()], k.size)
	}
	for _, sizes := range out {
		sort.Ints(sizes)
	}
	return out
}

// Store is a loaded font store. It is never modified after construction and
// may be shared freely between goroutines.
type Store struct {
	Family Family
	Size   int
	Geometry

	data []byte
}

// New creates a Store from raw store bytes. The slice is retained, not
// copied; the caller must not modify it afterwards.
func New(family Family, size int, data []byte) (*Store, error) {
	g, err := Lookup(family, size)
	if err != nil {
		return nil, err
	}
	return &Store{
		Family:   family,
		Size:     size,
		Geometry: g,
		data:     data,
	}, nil
}

// Path returns the location of a store file below the assets root,
// e.g. <root>/HZK/HZK12.
func Path(root string, family Family, size int) string {
	return filepath.Join(root, family.Dir(), family.FileName(size))
}

// Load reads the store for (family, size) from the assets root.
func Load(root string, family Family, size int) (*Store, error) {
	if _, err := Lookup(family, size); err != nil {
		return nil, err
	}
	return readStore(Path(root, family, size), family, size)
}

// Open reads a store file whose family and size are taken from its name,
// e.g. "fonts/ASC12".
func Open(filename string) (*Store, error) {
	family, size := Detect(filename)
	if family == Unknown {
		return nil, fmt.Errorf("%w: cannot detect family from %q", ErrUnsupportedFamily, filename)
	}
	if _, err := Lookup(family, size); err != nil {
		return nil, err
	}
	return readStore(filename, family, size)
}

func readStore(path string, family Family, size int) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, path)
		}
		return nil, fmt.Errorf("failed to read font store: %w", err)
	}
	return New(family, size, data)
}

// Len returns the size of the store in bytes.
func (s *Store) Len() int {
	return len(s.data)
}

// GlyphCount returns the number of complete glyph cells in the store.
func (s *Store) GlyphCount() int {
	return len(s.data) / s.BytesPerGlyph
}

// Glyph returns the raw cell starting at offset. The returned slice aliases
// the store buffer. ok is false if the cell does not fit in the store.
func (s *Store) Glyph(offset int) (cell []byte, ok bool) {
	end := offset + s.BytesPerGlyph
	if offset < 0 || end > len(s.data) {
		return nil, false
	}
	return s.data[offset:end:end], true
}

// String returns the family and size tag, e.g. "HZK12".
func (s *Store) String() string {
	return s.Family.FileName(s.Size)
}
