package glyph

import (
	"fmt"

	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/tsawler/fontcode/store"
)

const (
	gbBase      = 0xA1 // first printable GB2312 zone/position byte
	gbPositions = 94   // positions per zone

	asciiFirst = 32
	asciiLast  = 126
)

// Locate returns the offset of r's cell inside s.
//
// HZK stores are addressed by the character's GB2312 zone and position;
// ASC stores by codepoint-32. Failures are reported as *CharError.
func Locate(s *store.Store, r rune) (int, error) {
	switch s.Family {
	case store.HZK:
		hi, lo, err := EncodeGB2312(r)
		if err != nil {
			return 0, &CharError{Char: r, Family: s.Family, Offset: -1, Err: err}
		}
		offset, err := locateGB2312(s, hi, lo)
		if err != nil {
			return 0, &CharError{Char: r, Family: s.Family, Offset: offset, Err: err}
		}
		return offset, nil

	case store.ASC:
		if r < asciiFirst || r > asciiLast {
			return 0, &CharError{Char: r, Family: s.Family, Offset: -1, Err: ErrUnsupportedCharacter}
		}
		offset := int(r-asciiFirst) * s.BytesPerGlyph
		if offset+s.BytesPerGlyph > s.Len() {
			return 0, &CharError{Char: r, Family: s.Family, Offset: offset, Err: ErrOffsetOutOfBounds}
		}
		return offset, nil

	default:
		return 0, fmt.Errorf("%w: %s", store.ErrUnsupportedFamily, s.Family)
	}
}

// LocateGB2312 returns the offset of the cell addressed by an already
// encoded GB2312 byte pair.
func LocateGB2312(s *store.Store, hi, lo byte) (int, error) {
	offset, err := locateGB2312(s, hi, lo)
	if err != nil {
		return 0, fmt.Errorf("GB2312 0x%02X%02X: %w", hi, lo, err)
	}
	return offset, nil
}

// locateGB2312 returns the computed offset alongside ErrOffsetOutOfBounds so
// callers can report it; it is -1 for ErrOutOfRange.
func locateGB2312(s *store.Store, hi, lo byte) (int, error) {
	if hi < gbBase || lo < gbBase {
		return -1, ErrOutOfRange
	}
	zone := int(hi-gbBase) + 1
	pos := int(lo-gbBase) + 1
	offset := ((zone-1)*gbPositions + (pos - 1)) * s.BytesPerGlyph
	if offset+s.BytesPerGlyph > s.Len() {
		return offset, ErrOffsetOutOfBounds
	}
	return offset, nil
}

// EncodeGB2312 returns the two EUC-CN bytes of r. Characters that do not
// encode to a cell of the GB2312 character set fail with
// ErrUnsupportedCharacter, including the GBK additions that share its byte
// range.
func EncodeGB2312(r rune) (hi, lo byte, err error) {
	// Encoders are stateful; use a fresh one per call.
	b, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(string(r)))
	if err != nil || len(b) != 2 || !inGB2312(b[0], b[1]) {
		return 0, 0, ErrUnsupportedCharacter
	}
	return b[0], b[1], nil
}

// gbRows lists the assigned positions of each non-hanzi GB2312 row as
// inclusive low-byte ranges. Rows 10-15 and 88-94 are empty.
var gbRows = map[byte][][2]byte{
	0xA1: {{0xA1, 0xFE}},
	0xA2: {{0xB1, 0xE2}, {0xE5, 0xEE}, {0xF1, 0xFC}},
	0xA3: {{0xA1, 0xFE}},
	0xA4: {{0xA1, 0xF3}},
	0xA5: {{0xA1, 0xF6}},
	0xA6: {{0xA1, 0xB8}, {0xC1, 0xD8}},
	0xA7: {{0xA1, 0xC1}, {0xD1, 0xF1}},
	0xA8: {{0xA1, 0xBA}, {0xC5, 0xE9}},
	0xA9: {{0xA4, 0xEF}},
}

// inGB2312 reports whether hi, lo address an assigned GB2312 cell.
func inGB2312(hi, lo byte) bool {
	if lo < gbBase || lo > 0xFE {
		return false
	}
	switch {
	case hi >= 0xB0 && hi < 0xD7, hi >= 0xD8 && hi <= 0xF7:
		return true
	case hi == 0xD7:
		return lo <= 0xF9
	}
	for _, span := range gbRows[hi] {
		if lo >= span[0] && lo <= span[1] {
			return true
		}
	}
	return false
}
