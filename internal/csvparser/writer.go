package csvparser

import (
	"fmt"
	"io"
	"strings"

	"github.com/paluigi/csv2excel/internal/charset"
)

// =============================================================================
// WRITER FUNCTIONS
// =============================================================================

// Format renders records as delimited text.
//
// Fields containing the delimiter, the quote character, CR or LF are quoted;
// embedded quote characters are doubled.
func Format(records [][]string, settings Settings) (string, error) {
	d, err := configureDialect(settings)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, record := range records {
		for i, field := range record {
			if i > 0 {
				b.WriteRune(d.comma)
			}
			b.WriteString(d.formatField(field))
		}
		b.WriteString(d.eol)
	}
	return b.String(), nil
}

// Write renders records as delimited text in the configured encoding.
//
// PARAMETERS:
//   - w: The destination writer.
//   - records: The records to write, header first.
//   - settings: The delimiter, quote character and encoding to use.
//
// RETURNS:
//   - An error if a character cannot be encoded or the write fails.
func Write(w io.Writer, records [][]string, settings Settings) error {
	text, err := Format(records, settings)
	if err != nil {
		return err
	}

	cs, err := charset.Lookup(settings.Encoding)
	if err != nil {
		return err
	}

	raw, err := cs.Encode(text)
	if err != nil {
		return err
	}

	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}

func (d dialect) formatField(field string) string {
	if !d.needsQuote(field) {
		return field
	}
	q := string(d.quote)
	return q + strings.ReplaceAll(field, q, q+q) + q
}

func (d dialect) needsQuote(field string) bool {
	return strings.ContainsRune(field, d.comma) ||
		strings.ContainsRune(field, d.quote) ||
		strings.ContainsAny(field, "\r\n")
}
