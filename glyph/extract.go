package glyph

import (
	"fmt"
	"strings"

	"github.com/tsawler/fontcode/store"
)

// decodeFunc unpacks one raw cell into m, which is already sized
// Height x Width.
type decodeFunc func(g store.Geometry, cell []byte, m *Matrix)

type layoutKey struct {
	family store.Family
	size   int
}

// layouts maps a store to its cell layout. Stores without an entry use
// decodeRows.
var layouts = map[layoutKey]decodeFunc{
	{store.HZK, 12}: decodeWordRows,
	{store.ASC, 12}: decodeByteRows,
}

// Extract returns the bit matrix of r: exactly Height rows of Width pixels.
func Extract(s *store.Store, r rune) (*Matrix, error) {
	offset, err := Locate(s, r)
	if err != nil {
		return nil, err
	}
	cell, ok := s.Glyph(offset)
	if !ok {
		return nil, &CharError{Char: r, Family: s.Family, Offset: offset, Err: ErrOffsetOutOfBounds}
	}
	return Decode(s.Family, s.Size, cell)
}

// Decode unpacks a raw cell of the given store type into a bit matrix.
// Bytes beyond BytesPerGlyph are ignored.
func Decode(family store.Family, size int, cell []byte) (*Matrix, error) {
	g, err := store.Lookup(family, size)
	if err != nil {
		return nil, err
	}
	if len(cell) < g.BytesPerGlyph {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrTruncatedGlyph, len(cell), g.BytesPerGlyph)
	}

	decode, ok := layouts[layoutKey{family, size}]
	if !ok {
		decode = decodeRows
	}

	m := NewMatrix(g.Height, g.Width)
	decode(g, cell, m)
	return m, nil
}

// decodeWordRows reads two bytes per row, MSB first, as a 16 bit row
// truncated to the glyph width.
func decodeWordRows(g store.Geometry, cell []byte, m *Matrix) {
	for row := 0; row < g.Height; row++ {
		word := uint16(cell[row*2])<<8 | uint16(cell[row*2+1])
		for col := 0; col < g.Width && col < 16; col++ {
			m.bits[row*m.Cols+col] = uint8(word>>(15-col)) & 1
		}
	}
}

// decodeByteRows reads one byte per row, MSB first.
func decodeByteRows(g store.Geometry, cell []byte, m *Matrix) {
	for row := 0; row < g.Height; row++ {
		b := cell[row]
		for col := 0; col < g.Width && col < 8; col++ {
			m.bits[row*m.Cols+col] = (b >> (7 - col)) & 1
		}
	}
}

// decodeRows is the generic layout: ceil(Width/8) bytes per row, MSB first,
// stopping mid-byte once the row is full.
func decodeRows(g store.Geometry, cell []byte, m *Matrix) {
	bytesPerRow := g.BytesPerRow()
	for row := 0; row < g.Height; row++ {
		col := 0
		for i := 0; i < bytesPerRow; i++ {
			pos := row*bytesPerRow + i
			if pos >= len(cell) {
				break
			}
			b := cell[pos]
			for bit := 0; bit < 8 && col < g.Width; bit++ {
				m.bits[row*m.Cols+col] = (b >> (7 - bit)) & 1
				col++
			}
		}
	}
}

// Arrangement selects the orientation a glyph is packed in.
type Arrangement int

const (
	// Horizontal packs the glyph row by row.
	Horizontal Arrangement = iota
	// Vertical transposes the glyph first, so columns are packed.
	Vertical
)

// String returns the arrangement name.
func (a Arrangement) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Arrangement(%d)", int(a))
	}
}

// ParseArrangement converts "horizontal" or "vertical" to an Arrangement.
// The empty string selects Horizontal.
func ParseArrangement(s string) (Arrangement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("%w: %q", ErrUnknownArrangement, s)
	}
}

// Orient returns m unchanged for Horizontal and transposed for Vertical.
func Orient(m *Matrix, a Arrangement) *Matrix {
	if a == Vertical {
		return m.Transpose()
	}
	return m
}

// ExtractGB2312 returns the bit matrix of the cell addressed by an encoded
// GB2312 byte pair in an HZK store.
func ExtractGB2312(s *store.Store, hi, lo byte) (*Matrix, error) {
	offset, err := LocateGB2312(s, hi, lo)
	if err != nil {
		return nil, err
	}
	cell, _ := s.Glyph(offset)
	return Decode(s.Family, s.Size, cell)
}
