// Package glyph locates characters inside a font store and unpacks their
// cells into bit matrices.
//
// # Locating
//
// [Locate] maps a rune to the byte offset of its cell:
//
//	offset, err := glyph.Locate(s, '中')
//
// HZK stores are addressed through the character's GB2312 encoding:
// zone = high-0xA0, position = low-0xA0 and
// offset = ((zone-1)*94 + position-1) * BytesPerGlyph. ASC stores use
// offset = (codepoint-32) * BytesPerGlyph for codepoints 32 through 126.
//
// # Extracting
//
// [Extract] locates and unpacks in one step. The result always has
// Height rows of Width pixels, most significant bit first:
//
//	m, err := glyph.Extract(s, 'A')
//	vertical := glyph.Orient(m, glyph.Vertical)
//
// Lookup failures are *[CharError] values wrapping
// [ErrUnsupportedCharacter] or [ErrOffsetOutOfBounds]. Characters outside
// GB2312, GBK additions included, are unsupported. [LocateGB2312] and
// [ExtractGB2312] take raw byte pairs and report bytes below 0xA1 as
// [ErrOutOfRange].
package glyph
