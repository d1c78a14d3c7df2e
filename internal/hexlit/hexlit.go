package hexlit

import (
	"bytes"
	"fmt"
)

const digits = "0123456789ABCDEF"

// Append appends the literal form of b ("0xNN") to dst.
func Append(dst []byte, b byte) []byte {
	return append(dst, '0', 'x', digits[b>>4], digits[b&0x0F])
}

// Format returns the literal form of b.
func Format(b byte) string {
	return string(Append(make([]byte, 0, 4), b))
}

// Decode decodes a list of 0xNN literals separated by commas and
// whitespace. /* */ and // comments are ignored.
func Decode(data []byte) ([]byte, error) {
	var result bytes.Buffer

	i := 0
	for i < len(data) {
		c := data[i]

		// Skip separators
		if isWhitespace(c) || c == ',' {
			i++
			continue
		}

		// Skip comments
		if c == '/' && i+1 < len(data) {
			switch data[i+1] {
			case '/':
				end := bytes.IndexByte(data[i:], '\n')
				if end < 0 {
					return result.Bytes(), nil
				}
				i += end + 1
				continue
			case '*':
				end := bytes.Index(data[i+2:], []byte("*/"))
				if end < 0 {
					return nil, fmt.Errorf("unterminated comment at byte %d", i)
				}
				i += end + 4
				continue
			}
		}

		// Read the 0x prefix
		if c != '0' || i+1 >= len(data) || (data[i+1] != 'x' && data[i+1] != 'X') {
			return nil, fmt.Errorf("expected hex literal at byte %d, found %q", i, c)
		}
		i += 2

		// Read one or two hex digits
		var value byte
		n := 0
		for i < len(data) && n < 3 {
			d, err := hexDigitToByte(data[i])
			if err != nil {
				break
			}
			value = value<<4 | d
			n++
			i++
		}
		if n == 0 {
			return nil, fmt.Errorf("hex literal without digits at byte %d", i)
		}
		if n > 2 {
			return nil, fmt.Errorf("hex literal at byte %d does not fit in a byte", i)
		}

		result.WriteByte(value)
	}

	return result.Bytes(), nil
}

// hexDigitToByte converts a hexadecimal character to its numeric value (0-15).
func hexDigitToByte(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit: %c", c)
	}
}

// isWhitespace reports whether c is a C whitespace character.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == '\v'
}
