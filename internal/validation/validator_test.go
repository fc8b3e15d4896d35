package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paluigi/csv2excel/internal/types"
)

func TestValidate_Ordering(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		code string
	}{
		{
			name: "nothing set reports no files",
			in:   Input{},
			code: "001",
		},
		{
			name: "no files wins over missing destination",
			in:   Input{Matching: nil, Destination: ""},
			code: "001",
		},
		{
			name: "no matching files",
			in:   Input{Selected: []string{"/in/a.xlsx"}, Destination: "/out"},
			code: "002",
		},
		{
			name: "mismatch wins over missing destination",
			in:   Input{Selected: []string{"/in/a.xlsx"}},
			code: "002",
		},
		{
			name: "missing destination",
			in:   Input{Selected: []string{"/in/a.csv"}, Matching: []string{"/in/a.csv"}},
			code: "003",
		},
		{
			name: "blank destination",
			in:   Input{Selected: []string{"/in/a.csv"}, Matching: []string{"/in/a.csv"}, Destination: "  "},
			code: "003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			require.Error(t, err)

			var coded interface{ Code() string }
			require.True(t, errors.As(err, &coded))
			assert.Equal(t, tt.code, coded.Code())
		})
	}
}

func TestValidate_Kinds(t *testing.T) {
	var selErr *types.SelectionError
	require.True(t, errors.As(Validate(Input{}), &selErr))
	assert.Equal(t, types.NoFiles, selErr.Reason)

	require.True(t, errors.As(Validate(Input{Selected: []string{"x.txt"}}), &selErr))
	assert.Equal(t, types.ModeMismatch, selErr.Reason)

	var destErr *types.DestinationError
	assert.True(t, errors.As(Validate(Input{Selected: []string{"a.csv"}, Matching: []string{"a.csv"}}), &destErr))
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, Validate(Input{
		Selected:    []string{"/in/a.csv", "/in/b.xlsx"},
		Matching:    []string{"/in/a.csv"},
		Destination: "/out",
	}))
}
