package charset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/paluigi/csv2excel/internal/charset"
)

func TestLookup_Unknown(t *testing.T) {
	_, err := charset.Lookup("ebcdic")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		symbol string
		text   string
	}{
		{charset.UTF8, "name;città\nRoma;1,5\n"},
		{charset.UTF16, "name;città\nRoma;1,5\n"},
		{charset.Latin1, "name;città\nRoma;1,5\n"},
		{charset.ASCII, "name;city\nRome;1,5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			cs, err := charset.Lookup(tt.symbol)
			require.NoError(t, err)

			raw, err := cs.Encode(tt.text)
			require.NoError(t, err)

			text, err := cs.Decode(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.text, text)
		})
	}
}

func TestUTF8_SkipsBOMAndRejectsInvalid(t *testing.T) {
	cs, err := charset.Lookup(charset.UTF8)
	require.NoError(t, err)

	text, err := cs.Decode([]byte("\xef\xbb\xbfa,b"))
	require.NoError(t, err)
	assert.Equal(t, "a,b", text)

	_, err = cs.Decode([]byte{'a', 0xff, 0xfe, 'b'})
	assert.Error(t, err)
}

func TestUTF16_WritesBOM(t *testing.T) {
	cs, err := charset.Lookup(charset.UTF16)
	require.NoError(t, err)

	raw, err := cs.Encode("a")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xfe, 'a', 0x00}, raw)

	be, _, err := unicodeBE("ab")
	require.NoError(t, err)
	text, err := cs.Decode(be)
	require.NoError(t, err)
	assert.Equal(t, "ab", text)
}

func TestLatin1_RejectsUnrepresentable(t *testing.T) {
	cs, err := charset.Lookup(charset.Latin1)
	require.NoError(t, err)

	_, err = cs.Encode("price €")
	assert.Error(t, err)

	text, err := cs.Decode([]byte{'c', 'a', 'f', 0xe9})
	require.NoError(t, err)
	assert.Equal(t, "café", text)
}

func TestASCII_Strict(t *testing.T) {
	cs, err := charset.Lookup(charset.ASCII)
	require.NoError(t, err)

	_, err = cs.Decode([]byte{'c', 0xe9})
	assert.Error(t, err)

	_, err = cs.Encode("café")
	assert.Error(t, err)
}

// unicodeBE encodes text as big-endian UTF-16 with a byte order mark.
func unicodeBE(text string) ([]byte, int, error) {
	out, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))
	return out, len(out), err
}
