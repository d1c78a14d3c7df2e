// Package pack serializes glyph bit matrices into bytes.
//
// Every matrix row is cut into 8 pixel chunks and each chunk becomes one
// byte. The [Mode] decides where pixel i of a row lands inside its byte:
//
//	VerticalUpper    1 << (7 - i%8)
//	VerticalLower    1 << (i%8)
//	HorizontalUpper  1 << (7 - i)   for i < 8, dropped otherwise
//	HorizontalLower  1 << i         for i < 8, dropped otherwise
//
// The horizontal modes use the absolute position within the row, so for rows
// wider than 8 pixels every chunk after the first packs to 0x00.
package pack

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsawler/fontcode/glyph"
)

// ErrUnknownMode is returned by ParseMode and Unpack.
var ErrUnknownMode = errors.New("unknown packing mode")

// Mode is a bit-ordering policy.
type Mode int

const (
	// VerticalUpper places the first pixel of each chunk in the MSB.
	VerticalUpper Mode = iota
	// VerticalLower places the first pixel of each chunk in the LSB.
	VerticalLower
	// HorizontalUpper places row pixel i at bit 7-i.
	HorizontalUpper
	// HorizontalLower places row pixel i at bit i.
	HorizontalLower
)

var modeNames = [...]string{
	VerticalUpper:   "vertical_upper",
	VerticalLower:   "vertical_lower",
	HorizontalUpper: "horizontal_upper",
	HorizontalLower: "horizontal_lower",
}

// String returns the mode name, e.g. "vertical_upper".
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m >= VerticalUpper && m <= HorizontalLower
}

// Modes returns all modes in declaration order.
func Modes() []Mode {
	return []Mode{VerticalUpper, VerticalLower, HorizontalUpper, HorizontalLower}
}

// ParseMode converts a mode name to a Mode. The empty string selects
// VerticalUpper.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return VerticalUpper, nil
	}
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return VerticalUpper, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// shift returns the bit index of row pixel i, or -1 if the pixel is dropped.
func (m Mode) shift(i int) int {
	switch m {
	case VerticalUpper:
		return 7 - i%8
	case VerticalLower:
		return i % 8
	case HorizontalUpper:
		if i > 7 {
			return -1
		}
		return 7 - i
	case HorizontalLower:
		if i > 7 {
			return -1
		}
		return i
	default:
		return -1
	}
}

// BytesPerRow returns the number of bytes one row of cols pixels packs to.
func BytesPerRow(cols int) int {
	return (cols + 7) / 8
}

// Size returns the number of bytes Pack produces for m.
func Size(m *glyph.Matrix) int {
	return m.Rows * BytesPerRow(m.Cols)
}

// Pack serializes m row by row. With invert set every pixel is flipped
// before placement. A trailing partial chunk is padded with zero bits, which
// are never inverted.
func Pack(m *glyph.Matrix, mode Mode, invert bool) []byte {
	return AppendPack(make([]byte, 0, Size(m)), m, mode, invert)
}

// AppendPack appends the packed form of m to dst and returns the extended
// slice.
func AppendPack(dst []byte, m *glyph.Matrix, mode Mode, invert bool) []byte {
	for r := 0; r < m.Rows; r++ {
		row := m.Row(r)
		for start := 0; start < len(row); start += 8 {
			var b byte
			end := start + 8
			if end > len(row) {
				end = len(row)
			}
			for i := start; i < end; i++ {
				pixel := row[i]
				if invert {
					pixel = 1 - pixel
				}
				if pixel == 0 {
					continue
				}
				if s := mode.shift(i); s >= 0 {
					b |= 1 << uint(s)
				}
			}
			dst = append(dst, b)
		}
	}
	return dst
}

// Unpack reverses Pack for a rows x cols matrix by testing each pixel's bit.
// Pixels that the mode drops decode as background. With invert set the
// decoded pixels are flipped back.
func Unpack(data []byte, rows, cols int, mode Mode, invert bool) (*glyph.Matrix, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
	stride := BytesPerRow(cols)
	if len(data) < rows*stride {
		return nil, fmt.Errorf("packed data is %d bytes, want %d for %dx%d", len(data), rows*stride, rows, cols)
	}

	m := glyph.NewMatrix(rows, cols)
	for r := 0; r < rows; r++ {
		for i := 0; i < cols; i++ {
			s := mode.shift(i)
			if s < 0 {
				continue
			}
			pixel := (data[r*stride+i/8] >> uint(s)) & 1
			if invert {
				pixel = 1 - pixel
			}
			m.Set(r, i, pixel)
		}
	}
	return m, nil
}
