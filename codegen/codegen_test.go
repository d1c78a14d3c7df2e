package codegen

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/fontcode/store"
)

func seq(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestDefaultName(t *testing.T) {
	if got := DefaultName(store.ASC, 12); got != "font_ASC12" {
		t.Errorf("DefaultName(ASC, 12) = %q", got)
	}
	if got := DefaultName(store.HZK, 12); got != "font_HZK12" {
		t.Errorf("DefaultName(HZK, 12) = %q", got)
	}
}

func TestNew(t *testing.T) {
	a, err := New("", store.ASC, 12, []byte{1})
	if err != nil {
		t.Fatal(err)
	}
	if a.Name != "font_ASC12" {
		t.Errorf("Name = %q, want font_ASC12", a.Name)
	}

	a, err = New("logo", store.ASC, 12, []byte{1})
	if err != nil {
		t.Fatal(err)
	}
	if a.Name != "logo" {
		t.Errorf("Name = %q, want logo", a.Name)
	}

	if _, err := New("x", store.HZK, 12, nil); !errors.Is(err, ErrEmptyArtifact) {
		t.Errorf("empty data: error = %v, want ErrEmptyArtifact", err)
	}
}

func TestString(t *testing.T) {
	a := &Artifact{Name: "font_ASC12", Data: seq(18)}

	want := "unsigned char code font_ASC12[] = {\n" +
		"0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,\n" +
		"0x10, 0x11\n" +
		"};"

	if got := a.String(); got != want {
		t.Errorf("String() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestStringExactLines(t *testing.T) {
	a := &Artifact{Name: "g", Data: bytes.Repeat([]byte{0xAB}, 32)}
	lines := strings.Split(a.String(), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), a)
	}
	for _, line := range lines[1:3] {
		if n := strings.Count(line, "0xAB"); n != PerLine {
			t.Errorf("line %q has %d literals, want %d", line, n, PerLine)
		}
	}
	if strings.HasSuffix(lines[2], ",") {
		t.Error("last data line must not end with a comma")
	}
	if !strings.HasSuffix(lines[1], ",") {
		t.Error("inner data lines must end with a comma")
	}
}

func TestFormatDialects(t *testing.T) {
	a := &Artifact{Name: "f", Data: []byte{0xFF}}

	tests := []struct {
		d    Dialect
		want string
	}{
		{C51, "unsigned char code f[] = {\n0xFF\n};"},
		{AVR, "const uint8_t f[] PROGMEM = {\n0xFF\n};"},
		{C, "const unsigned char f[] = {\n0xFF\n};"},
	}

	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			if got := a.Format(tt.d); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDialect(t *testing.T) {
	for _, d := range []Dialect{C51, AVR, C} {
		got, err := ParseDialect(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDialect(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseDialect("rust"); err == nil {
		t.Error("expected error for unknown dialect")
	}
}

func TestWriteTo(t *testing.T) {
	a := &Artifact{Name: "f", Data: []byte{0x01, 0x02}}
	var buf bytes.Buffer
	n, err := a.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if int(n) != buf.Len() {
		t.Errorf("WriteTo returned %d, wrote %d", n, buf.Len())
	}
	if buf.String() != a.String()+"\n" {
		t.Errorf("WriteTo wrote %q", buf.String())
	}
}

func TestParseRoundTrip(t *testing.T) {
	a := &Artifact{Name: "font_HZK12", Data: seq(100)}

	for _, d := range []Dialect{C51, AVR, C} {
		got, err := Parse([]byte(a.Format(d)))
		if err != nil {
			t.Fatalf("%s: Parse failed: %v", d, err)
		}
		if got.Name != a.Name {
			t.Errorf("%s: Name = %q, want %q", d, got.Name, a.Name)
		}
		if !bytes.Equal(got.Data, a.Data) {
			t.Errorf("%s: data mismatch", d)
		}
	}
}

func TestParseHandWritten(t *testing.T) {
	src := `/* generated */
#include <avr/pgmspace.h>

const uint8_t font8x16_top [8] PROGMEM = {
    0x00,  0x3c,  0x42,  0x81,    // [0x20] ' '
    0x81,  0x42,  0x3C,  0x00,
};
`
	a, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if a.Name != "font8x16_top" {
		t.Errorf("Name = %q", a.Name)
	}
	want := []byte{0x00, 0x3C, 0x42, 0x81, 0x81, 0x42, 0x3C, 0x00}
	if !bytes.Equal(a.Data, want) {
		t.Errorf("Data = % X, want % X", a.Data, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"no brace", "unsigned char code x[] = 0x01;", ErrMalformedArtifact},
		{"unclosed", "unsigned char code x[] = { 0x01,", ErrMalformedArtifact},
		{"no bracket", "unsigned char x = { 0x01 };", ErrMalformedArtifact},
		{"no name", "[] = { 0x01 };", ErrMalformedArtifact},
		{"bad literal", "unsigned char code x[] = { 0xZZ };", ErrMalformedArtifact},
		{"empty", "unsigned char code x[] = { };", ErrEmptyArtifact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.src)); !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}
