package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		value   string
		decimal string
		want    float64
		ok      bool
	}{
		{"42", ".", 42, true},
		{"-1.5", ".", -1.5, true},
		{"+3", ".", 3, true},
		{"1e3", ".", 1000, true},
		{" 2.5 ", ".", 2.5, true},
		{"0.25", ".", 0.25, true},
		{"1,5", ",", 1.5, true},
		{"-0,125", ",", -0.125, true},
		{"12", ",", 12, true},

		{"", ".", 0, false},
		{"abc", ".", 0, false},
		{"007", ".", 0, false},
		{"1,5", ".", 0, false},
		{"1.5", ",", 0, false},
		{"1.234,5", ",", 0, false},
		{"1.2.3", ".", 0, false},
		{".5", ".", 0, false},
		{"NaN", ".", 0, false},
		{"Inf", ".", 0, false},
		{"0x1F", ".", 0, false},
		{"1234567890123456", ".", 0, false},
		{"123456789012345", ".", 123456789012345, true},
	}

	for _, tt := range tests {
		got, ok := parseNumber(tt.value, tt.decimal)
		assert.Equal(t, tt.ok, ok, "parseNumber(%q, %q)", tt.value, tt.decimal)
		if tt.ok {
			assert.InDelta(t, tt.want, got, 1e-12, "parseNumber(%q, %q)", tt.value, tt.decimal)
		}
	}
}

func TestToWorkbookRow(t *testing.T) {
	assert.Equal(t,
		[]interface{}{"id", "2024", nil},
		toWorkbookRow([]string{"id", "2024", ""}, ".", true),
		"header cells stay text")

	assert.Equal(t,
		[]interface{}{"x", 1.5, nil, "007"},
		toWorkbookRow([]string{"x", "1.5", "", "007"}, ".", false))

	assert.Equal(t,
		[]interface{}{2.75, "2.75"},
		toWorkbookRow([]string{"2,75", "2.75"}, ",", false))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1,5", formatNumber("1.5", ","))
	assert.Equal(t, "1.5", formatNumber("1.5", "."))
	assert.Equal(t, "42", formatNumber("42", ","))
	assert.Equal(t, "v1.5", formatNumber("v1.5", ","))
	assert.Equal(t, "1.5.2", formatNumber("1.5.2", ","))
}

func TestToTextRows(t *testing.T) {
	rows := [][]string{
		{"rate", "1.5"},
		{"a", "0.25"},
	}
	assert.Equal(t, [][]string{
		{"rate", "1.5"},
		{"a", "0,25"},
	}, toTextRows(rows, ","))
}
