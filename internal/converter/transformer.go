// =============================================================================
// CSV/Excel Converter - Cell Value Transforms
// =============================================================================
//
// This module converts cell values between their delimited-text form and
// their workbook form.
//
// TEXT -> WORKBOOK:
//   A data field that is a plain decimal number written with the configured
//   decimal mark becomes a numeric cell. Everything else stays text:
//   - integers with leading zeros ("007") keep their zeros
//   - numbers with more than 15 significant digits keep their precision
//   - with decimal mark "," a value containing "." is not a number
//
// WORKBOOK -> TEXT:
//   Numeric-looking values are written with the configured decimal mark.
//
// =============================================================================

package converter

import (
	"regexp"
	"strconv"
	"strings"
)

// maxDigits is the precision of an Excel number.
const maxDigits = 15

// numberPattern matches a plain decimal number using "." as decimal mark.
var numberPattern = regexp.MustCompile(`^[+-]?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// =============================================================================
// TEXT TO WORKBOOK
// =============================================================================

// parseNumber reports whether a text field is a number and returns its value.
//
// PARAMETERS:
//   - value: The field as read from the delimited file.
//   - decimal: The decimal mark symbol ("." or ",").
func parseNumber(value, decimal string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	if decimal != "" && decimal != "." {
		if strings.Contains(value, ".") {
			return 0, false
		}
		value = strings.Replace(value, decimal, ".", 1)
	}

	if !numberPattern.MatchString(value) || significantDigits(value) > maxDigits {
		return 0, false
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// significantDigits counts the mantissa digits, ignoring leading zeros.
func significantDigits(value string) int {
	mantissa, _, _ := strings.Cut(strings.ToLower(value), "e")
	digits := strings.TrimLeft(strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, mantissa), "0")
	return len(digits)
}

// toWorkbookRow converts a delimited record into workbook cell values.
// Header rows are kept as text. Empty fields become empty cells.
func toWorkbookRow(record []string, decimal string, header bool) []interface{} {
	row := make([]interface{}, len(record))
	for i, field := range record {
		if field == "" {
			continue
		}
		if !header {
			if f, ok := parseNumber(field, decimal); ok {
				row[i] = f
				continue
			}
		}
		row[i] = field
	}
	return row
}

// =============================================================================
// WORKBOOK TO TEXT
// =============================================================================

// formatNumber rewrites a numeric-looking cell with the given decimal mark.
// Other values are returned unchanged.
func formatNumber(value, decimal string) string {
	if decimal == "" || decimal == "." || !numberPattern.MatchString(value) {
		return value
	}
	return strings.Replace(value, ".", decimal, 1)
}

// toTextRows converts workbook rows into delimited records.
// The first row is the header and is kept verbatim.
func toTextRows(rows [][]string, decimal string) [][]string {
	records := make([][]string, len(rows))
	for i, row := range rows {
		if i == 0 {
			records[i] = row
			continue
		}
		record := make([]string, len(row))
		for j, value := range row {
			record[j] = formatNumber(value, decimal)
		}
		records[i] = record
	}
	return records
}
