package options_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paluigi/csv2excel/internal/options"
	"github.com/paluigi/csv2excel/internal/types"
)

func TestResolve_AllCombinations(t *testing.T) {
	reg := options.NewRegistry()

	modes := map[string][2]string{
		"CSV to Excel (xlsx)": {"csv", "xlsx"},
		"CSV to Excel (xls)":  {"csv", "xls"},
		"Excel (xlsx) to CSV": {"xlsx", "csv"},
		"Excel (xls) to CSV":  {"xls", "csv"},
	}
	separators := map[string]string{
		"Comma (,)":     ",",
		"Semicolon (;)": ";",
		"Pipe (|)":      "|",
		"Tab (-->)":     "\t",
	}
	decimals := map[string]string{
		"Period (.)": ".",
		"Comma (,)":  ",",
	}
	quotes := map[string]string{
		"Single Quotes (')":  "'",
		"Double Quotes (\")": "\"",
	}
	encodings := map[string]string{
		"UTF-8":  "utf-8",
		"UTF-16": "utf-16",
		"Latin":  "latin_1",
		"ASCII":  "ascii",
	}

	count := 0
	for modeLabel, exts := range modes {
		for sepLabel, sep := range separators {
			for decLabel, dec := range decimals {
				for quoteLabel, quote := range quotes {
					for encLabel, enc := range encodings {
						sel := types.Selection{
							Separator: sepLabel,
							Decimal:   decLabel,
							QuoteChar: quoteLabel,
							Encoding:  encLabel,
						}
						params, err := reg.Resolve(modeLabel, sel)
						require.NoError(t, err)
						assert.Equal(t, types.Parameters{
							OriginExt: exts[0],
							TargetExt: exts[1],
							Separator: sep,
							Decimal:   dec,
							QuoteChar: quote,
							Encoding:  enc,
						}, params)
						count++
					}
				}
			}
		}
	}
	assert.Equal(t, 256, count)
}

func TestResolve_UnknownLabel(t *testing.T) {
	reg := options.NewRegistry()
	sel := reg.Defaults()
	sel.Encoding = "EBCDIC"

	_, err := reg.Resolve("CSV to Excel (xlsx)", sel)

	var cfgErr *types.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "encoding", cfgErr.Category)
	assert.Equal(t, "EBCDIC", cfgErr.Label)
}

func TestResolve_UnknownMode(t *testing.T) {
	reg := options.NewRegistry()

	_, err := reg.Resolve("PDF to CSV", reg.Defaults())

	var cfgErr *types.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, options.CategoryMode, cfgErr.Category)
}

func TestDefaults_FirstEntryOfEveryTable(t *testing.T) {
	reg := options.NewRegistry()

	assert.Equal(t, types.Selection{
		Separator: "Comma (,)",
		Decimal:   "Period (.)",
		QuoteChar: "Single Quotes (')",
		Encoding:  "UTF-8",
	}, reg.Defaults())

	filled := reg.Fill(types.Selection{Decimal: "Comma (,)"})
	assert.Equal(t, "Comma (,)", filled.Decimal)
	assert.Equal(t, "Comma (,)", filled.Separator)
	assert.Equal(t, "UTF-8", filled.Encoding)
}

func TestLabel_AcceptsLabelOrSymbol(t *testing.T) {
	reg := options.NewRegistry()

	tests := []struct {
		category types.Category
		value    string
		want     string
	}{
		{types.CategorySeparator, ";", "Semicolon (;)"},
		{types.CategorySeparator, "Pipe (|)", "Pipe (|)"},
		{types.CategorySeparator, `\t`, "Tab (-->)"},
		{types.CategorySeparator, "tab", "Tab (-->)"},
		{types.CategoryDecimal, ",", "Comma (,)"},
		{types.CategoryQuoteChar, "\"", "Double Quotes (\")"},
		{types.CategoryEncoding, "LATIN_1", "Latin"},
	}
	for _, tt := range tests {
		got, err := reg.Label(tt.category, tt.value)
		require.NoError(t, err, tt.value)
		assert.Equal(t, tt.want, got)
	}

	_, err := reg.Label(types.CategoryDecimal, "#")
	assert.Error(t, err)
}

func TestModeLabel(t *testing.T) {
	reg := options.NewRegistry()

	got, err := reg.ModeLabel("xls-csv")
	require.NoError(t, err)
	assert.Equal(t, "Excel (xls) to CSV", got)

	got, err = reg.ModeLabel("CSV to Excel (xlsx)")
	require.NoError(t, err)
	assert.Equal(t, "CSV to Excel (xlsx)", got)

	_, err = reg.ModeLabel("csv-json")
	assert.Error(t, err)
}

func TestMode_OriginTarget(t *testing.T) {
	m := options.Mode{Label: "x", Symbol: "xlsx-csv"}
	assert.Equal(t, "xlsx", m.Origin())
	assert.Equal(t, "csv", m.Target())
}
