package glyph

import (
	"fmt"
	"strings"
)

// Matrix is a rectangular bit matrix stored row-major in a single buffer,
// one byte (0 or 1) per pixel.
type Matrix struct {
	Rows int
	Cols int
	bits []uint8
}

// NewMatrix returns an all-background matrix of the given size.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Matrix{
		Rows: rows,
		Cols: cols,
		bits: make([]uint8, rows*cols),
	}
}

// FromRows builds a matrix from nested rows. Every row must have the same
// length; non-zero values are stored as 1.
func FromRows(rows [][]uint8) (*Matrix, error) {
	if len(rows) == 0 {
		return NewMatrix(0, 0), nil
	}
	m := NewMatrix(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != m.Cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", r, len(row), m.Cols)
		}
		for c, v := range row {
			if v != 0 {
				m.bits[r*m.Cols+c] = 1
			}
		}
	}
	return m, nil
}

// At returns the pixel at (row, col).
func (m *Matrix) At(row, col int) uint8 {
	return m.bits[row*m.Cols+col]
}

// Set sets the pixel at (row, col). Any non-zero value is stored as 1.
func (m *Matrix) Set(row, col int, v uint8) {
	if v != 0 {
		v = 1
	}
	m.bits[row*m.Cols+col] = v
}

// Row returns a view of one row. The slice aliases the matrix.
func (m *Matrix) Row(row int) []uint8 {
	start := row * m.Cols
	return m.bits[start : start+m.Cols : start+m.Cols]
}

// Transpose returns a new Cols x Rows matrix with out[i][j] = m[j][i].
func (m *Matrix) Transpose() *Matrix {
	t := NewMatrix(m.Cols, m.Rows)
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			t.bits[c*t.Cols+r] = m.bits[r*m.Cols+c]
		}
	}
	return t
}

// Equal reports whether m and o have the same shape and pixels.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.Rows != o.Rows || m.Cols != o.Cols {
		return false
	}
	for i := range m.bits {
		if m.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}

// Count returns the number of foreground pixels.
func (m *Matrix) Count() int {
	n := 0
	for _, b := range m.bits {
		n += int(b)
	}
	return n
}

// String renders the matrix with 'X' for foreground and '.' for background,
// one line per row.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.Grow(m.Rows * (m.Cols + 1))
	for r := 0; r < m.Rows; r++ {
		for _, b := range m.Row(r) {
			if b != 0 {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
