package glyph

import (
	"errors"
	"fmt"

	"github.com/tsawler/fontcode/store"
)

var (
	// ErrUnsupportedCharacter is returned when a character has no cell in the
	// store's family: a non-GB2312 or single-byte character for HZK, a
	// codepoint outside [32, 126] for ASC.
	ErrUnsupportedCharacter = errors.New("unsupported character")
	// ErrOutOfRange is returned by LocateGB2312 and ExtractGB2312 when a
	// byte of the pair lies below 0xA1.
	ErrOutOfRange = errors.New("character outside GB2312 printable region")
	// ErrOffsetOutOfBounds is returned when the computed cell does not fit in
	// the store.
	ErrOffsetOutOfBounds = errors.New("glyph offset out of bounds")
	// ErrTruncatedGlyph is returned when a raw cell is shorter than the
	// geometry requires.
	ErrTruncatedGlyph = errors.New("truncated glyph data")
	// ErrUnknownArrangement is returned by ParseArrangement.
	ErrUnknownArrangement = errors.New("unknown arrangement")
)

// CharError records a failed glyph lookup.
type CharError struct {
	Char   rune
	Family store.Family
	Offset int // -1 if no offset was computed
	Err    error
}

func (e *CharError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s %q (U+%04X): %v", e.Family, e.Char, e.Char, e.Err)
	}
	return fmt.Sprintf("%s %q (U+%04X) at offset %d: %v", e.Family, e.Char, e.Char, e.Offset, e.Err)
}

func (e *CharError) Unwrap() error {
	return e.Err
}
