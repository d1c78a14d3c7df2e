// Package store loads the raw binary glyph stores used by fontcode.
//
// Two fixed layouts are supported, both addressed by plain offset arithmetic:
//
//   - [HZK] - GB2312 ideographs, one cell per (zone, position) pair
//   - [ASC] - printable ASCII, one cell per codepoint starting at 0x20
//
// Stores are located below an assets root as <root>/<FAMILY>/<FAMILY><SIZE>:
//
//	s, err := store.Load("assets", store.HZK, 12)
//
// The geometry of each (family, size) pair comes from a static table:
//
//	g, err := store.Lookup(store.ASC, 12) // 8x12, 12 bytes per glyph
//
// A loaded [Store] is read-only and safe for concurrent use.
package store
