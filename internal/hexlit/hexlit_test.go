package hexlit

import (
	"bytes"
	"testing"
)

// TestFormat tests literal formatting
func TestFormat(t *testing.T) {
	tests := []struct {
		in   byte
		want string
	}{
		{0x00, "0x00"},
		{0x0A, "0x0A"},
		{0x3c, "0x3C"},
		{0xFF, "0xFF"},
	}

	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestDecodeBasic tests decoding a simple list
func TestDecodeBasic(t *testing.T) {
	decoded, err := Decode([]byte("0x48, 0x65, 0x6C, 0x6C, 0x6F"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if !bytes.Equal(decoded, []byte("Hello")) {
		t.Errorf("decoded data doesn't match\ngot:  %s\nwant: Hello", decoded)
	}
}

// TestDecodeMixed tests case, single digits, newlines and comments
func TestDecodeMixed(t *testing.T) {
	input := "0xff,0X0a,\n  0xF, /* row 2 */ 0x00, // trailing\n0x1"
	want := []byte{0xFF, 0x0A, 0x0F, 0x00, 0x01}

	decoded, err := Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if !bytes.Equal(decoded, want) {
		t.Errorf("decoded data doesn't match\ngot:  % X\nwant: % X", decoded, want)
	}
}

// TestDecodeRoundTrip tests Append followed by Decode
func TestDecodeRoundTrip(t *testing.T) {
	var buf []byte
	for i := 0; i < 256; i++ {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = Append(buf, byte(i))
	}

	decoded, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(decoded) != 256 {
		t.Fatalf("decoded %d bytes, want 256", len(decoded))
	}
	for i, b := range decoded {
		if int(b) != i {
			t.Fatalf("byte %d = 0x%02X", i, b)
		}
	}
}

// TestDecodeErrors tests error handling for malformed input
func TestDecodeErrors(t *testing.T) {
	tests := []string{
		"0x",
		"0xG1",
		"0x100",
		"12",
		"0x12; 0x34",
		"/* open",
	}

	for _, input := range tests {
		if _, err := Decode([]byte(input)); err == nil {
			t.Errorf("Decode(%q): expected error", input)
		}
	}
}

// TestDecodeEmpty tests that empty input decodes to nothing
func TestDecodeEmpty(t *testing.T) {
	decoded, err := Decode([]byte(" \n\t"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("expected no bytes, got % X", decoded)
	}
}
