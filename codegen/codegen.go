// Package codegen formats packed glyph bytes as C array literals for
// firmware builds, and reads such literals back.
//
//	a, err := codegen.New("", store.HZK, 12, data)
//	fmt.Println(a) // unsigned char code font_HZK12[] = { ... };
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/fontcode/internal/hexlit"
	"github.com/tsawler/fontcode/store"
)

// PerLine is the number of byte literals on each output line.
const PerLine = 16

var (
	// ErrEmptyArtifact is returned when there are no bytes to emit.
	ErrEmptyArtifact = errors.New("empty code artifact")
	// ErrMalformedArtifact is returned by Parse for input that is not a C
	// byte array definition.
	ErrMalformedArtifact = errors.New("malformed array literal")
)

// Dialect selects the array declaration emitted around the data.
type Dialect int

const (
	// C51 declares the array in 8051 code memory (Keil C51).
	C51 Dialect = iota
	// AVR declares a PROGMEM array for avr-gcc.
	AVR
	// C declares a plain const array.
	C
)

// String returns the dialect name.
func (d Dialect) String() string {
	switch d {
	case C51:
		return "c51"
	case AVR:
		return "avr"
	case C:
		return "c"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// ParseDialect converts a dialect name to a Dialect. The empty string
// selects C51.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "c51":
		return C51, nil
	case "avr":
		return AVR, nil
	case "c":
		return C, nil
	default:
		return C51, fmt.Errorf("unknown dialect %q", s)
	}
}

func (d Dialect) declaration(name string) string {
	switch d {
	case AVR:
		return "const uint8_t " + name + "[] PROGMEM = {"
	case C:
		return "const unsigned char " + name + "[] = {"
	default:
		return "unsigned char code " + name + "[] = {"
	}
}

// Artifact is a named, non-empty byte sequence ready to be emitted.
type Artifact struct {
	Name string
	Data []byte
}

// DefaultName returns the array name used when none is given, e.g.
// "font_HZK12".
func DefaultName(family store.Family, size int) string {
	return fmt.Sprintf("font_%s%d", family, size)
}

// New creates an Artifact. An empty name is replaced by
// DefaultName(family, size).
func New(name string, family store.Family, size int, data []byte) (*Artifact, error) {
	if len(data) == 0 {
		return nil, ErrEmptyArtifact
	}
	if name == "" {
		name = DefaultName(family, size)
	}
	return &Artifact{Name: name, Data: data}, nil
}

// Format returns the array definition in the given dialect: a declaration
// line, the data as 0xNN literals, PerLine to a line, and a closing "};".
func (a *Artifact) Format(d Dialect) string {
	var sb strings.Builder
	sb.Grow(len(a.Name) + 40 + len(a.Data)*6)

	sb.WriteString(d.declaration(a.Name))
	sb.WriteByte('\n')

	lit := make([]byte, 0, 4)
	for i, b := range a.Data {
		if i > 0 {
			if i%PerLine == 0 {
				sb.WriteString(",\n")
			} else {
				sb.WriteString(", ")
			}
		}
		lit = hexlit.Append(lit[:0], b)
		sb.Write(lit)
	}

	sb.WriteString("\n};")
	return sb.String()
}

// String returns the C51 form of the artifact.
func (a *Artifact) String() string {
	return a.Format(C51)
}

// WriteTo writes the C51 form of the artifact followed by a newline.
func (a *Artifact) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, a.String()+"\n")
	return int64(n), err
}

// Parse reads the first byte array definition in src, in any dialect
// Format produces.
func Parse(src []byte) (*Artifact, error) {
	open := bytes.IndexByte(src, '{')
	if open < 0 {
		return nil, fmt.Errorf("%w: missing '{'", ErrMalformedArtifact)
	}
	closing := bytes.IndexByte(src[open:], '}')
	if closing < 0 {
		return nil, fmt.Errorf("%w: missing '}'", ErrMalformedArtifact)
	}
	closing += open

	name, err := arrayName(src[:open])
	if err != nil {
		return nil, err
	}

	data, err := hexlit.Decode(src[open+1 : closing])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArtifact, err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyArtifact
	}

	return &Artifact{Name: name, Data: data}, nil
}

// arrayName extracts the identifier in front of "[...]" in a declaration.
func arrayName(decl []byte) (string, error) {
	bracket := bytes.LastIndexByte(decl, '[')
	if bracket < 0 {
		return "", fmt.Errorf("%w: missing '[' in declaration", ErrMalformedArtifact)
	}

	end := bracket
	for end > 0 && isSpace(decl[end-1]) {
		end--
	}
	start := end
	for start > 0 && isIdent(decl[start-1]) {
		start--
	}
	if start == end || (decl[start] >= '0' && decl[start] <= '9') {
		return "", fmt.Errorf("%w: missing array name", ErrMalformedArtifact)
	}
	return string(decl[start:end]), nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isIdent(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
