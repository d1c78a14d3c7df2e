// Package preview renders glyph matrices for humans: as text rows, as a
// scaled PNG image, or as an HTML table.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/fontcode/glyph"
)

// Pixel runes used by Rows.
const (
	On  = '■'
	Off = '□'
)

// Rows renders m one string per row, On for foreground and Off for
// background.
func Rows(m *glyph.Matrix) []string {
	rows := make([]string, m.Rows)
	var sb strings.Builder
	for r := 0; r < m.Rows; r++ {
		sb.Reset()
		for _, b := range m.Row(r) {
			if b != 0 {
				sb.WriteRune(On)
			} else {
				sb.WriteRune(Off)
			}
		}
		rows[r] = sb.String()
	}
	return rows
}

// Image renders m as black pixels on white, each glyph pixel scaled to a
// scale x scale block. Scales below 1 are treated as 1.
func Image(m *glyph.Matrix, scale int) *image.Gray {
	if scale < 1 {
		scale = 1
	}

	src := image.NewGray(image.Rect(0, 0, m.Cols, m.Rows))
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			v := color.Gray{Y: 0xFF}
			if m.At(r, c) != 0 {
				v = color.Gray{Y: 0x00}
			}
			src.SetGray(c, r, v)
		}
	}
	if scale == 1 {
		return src
	}

	dst := image.NewGray(image.Rect(0, 0, m.Cols*scale, m.Rows*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG encodes Image(m, scale) as PNG.
func WritePNG(w io.Writer, m *glyph.Matrix, scale int) error {
	if err := png.Encode(w, Image(m, scale)); err != nil {
		return fmt.Errorf("failed to encode preview: %w", err)
	}
	return nil
}

// HTML writes m as a <table class="glyph"> with one <td class="on"> or
// <td class="off"> per pixel, captioned with the character.
func HTML(w io.Writer, char rune, m *glyph.Matrix) error {
	table := element(atom.Table, "glyph")
	caption := element(atom.Caption, "")
	caption.AppendChild(&html.Node{Type: html.TextNode, Data: string(char)})
	table.AppendChild(caption)

	body := element(atom.Tbody, "")
	for r := 0; r < m.Rows; r++ {
		tr := element(atom.Tr, "")
		for _, b := range m.Row(r) {
			class := "off"
			if b != 0 {
				class = "on"
			}
			tr.AppendChild(element(atom.Td, class))
		}
		body.AppendChild(tr)
	}
	table.AppendChild(body)

	if err := html.Render(w, table); err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	return nil
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
