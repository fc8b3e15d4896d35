// Package charset converts delimited text between UTF-8 and the encodings
// offered by the option registry.
package charset

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding symbols understood by Lookup.
const (
	UTF8   = "utf-8"
	UTF16  = "utf-16"
	Latin1 = "latin_1"
	ASCII  = "ascii"
)

// Charset decodes file contents to UTF-8 text and encodes text back.
type Charset struct {
	name string
	enc  encoding.Encoding
}

// Lookup returns the charset for an encoding symbol.
func Lookup(symbol string) (*Charset, error) {
	switch symbol {
	case UTF8:
		// The BOM variant skips a leading byte order mark when decoding.
		return &Charset{name: symbol, enc: unicode.UTF8BOM}, nil
	case UTF16:
		return &Charset{name: symbol, enc: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)}, nil
	case Latin1:
		return &Charset{name: symbol, enc: charmap.ISO8859_1}, nil
	case ASCII:
		return &Charset{name: symbol}, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", symbol)
	}
}

// Name returns the encoding symbol.
func (c *Charset) Name() string {
	return c.name
}

// Decode converts raw file contents to a UTF-8 string.
// Byte sequences that are invalid for the encoding are an error.
func (c *Charset) Decode(raw []byte) (string, error) {
	switch c.name {
	case ASCII:
		for i, b := range raw {
			if b >= utf8.RuneSelf {
				return "", fmt.Errorf("byte 0x%02x at offset %d is not ascii", b, i)
			}
		}
		return string(raw), nil
	case UTF8:
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("invalid utf-8 byte sequence")
		}
	}

	out, err := c.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", c.name, err)
	}
	return string(out), nil
}

// Encode converts a UTF-8 string to the charset.
// Characters the encoding cannot represent are an error.
func (c *Charset) Encode(text string) ([]byte, error) {
	switch c.name {
	case ASCII:
		for i, r := range text {
			if r >= utf8.RuneSelf {
				return nil, fmt.Errorf("character %q at offset %d is not ascii", r, i)
			}
		}
		return []byte(text), nil
	case UTF8:
		// No byte order mark on output.
		return []byte(text), nil
	}

	out, err := c.enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", c.name, err)
	}
	return out, nil
}
